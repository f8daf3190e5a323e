package domain

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

const MessageDateConstraints = "Date should be in the format DD/MM/YYYY"

var datePattern = regexp.MustCompile(`^(\d{2})/(\d{2})/(\d{4})$`)

// Date is the calendar day a transaction happened on.
//
// It is held as a civil date rather than a time.Time. Leap years follow the
// year%4 rule, so 29/02/1900 is a valid Date even though time.Date would
// roll it over to 1 March.
type Date struct {
	year  int
	month time.Month
	day   int
}

// NewDate creates a Date from a valid DD/MM/YYYY string
func NewDate(s string) (Date, error) {
	day, month, year, ok := splitDate(s)
	if !ok || !isCalendarDay(day, month, year) {
		return Date{}, invalidArgument(MessageDateConstraints)
	}
	return Date{year: year, month: time.Month(month), day: day}, nil
}

// IsValidDate returns true if s is a real day written as DD/MM/YYYY.
// February 29 is accepted whenever the year is divisible by 4.
func IsValidDate(s string) bool {
	day, month, year, ok := splitDate(s)
	return ok && isCalendarDay(day, month, year)
}

func splitDate(s string) (day, month, year int, ok bool) {
	m := datePattern.FindStringSubmatch(s)
	if m == nil {
		return 0, 0, 0, false
	}
	// The pattern guarantees short digit runs, so Atoi cannot fail.
	day, _ = strconv.Atoi(m[1])
	month, _ = strconv.Atoi(m[2])
	year, _ = strconv.Atoi(m[3])
	return day, month, year, true
}

func isCalendarDay(day, month, year int) bool {
	if year < 1 || month < 1 || month > 12 || day < 1 || day > 31 {
		return false
	}
	switch time.Month(month) {
	case time.February:
		if day == 29 {
			return year%4 == 0
		}
		return day < 29
	case time.April, time.June, time.September, time.November:
		return day < 31
	}
	return true
}

// Year returns the year
func (d Date) Year() int { return d.year }

// Month returns the month
func (d Date) Month() time.Month { return d.month }

// Day returns the day of the month
func (d Date) Day() int { return d.day }

// String returns the display form, e.g. "7 Jan 2024"
func (d Date) String() string {
	return fmt.Sprintf("%d %s %04d", d.day, d.month.String()[:3], d.year)
}

// Canonical returns the DD/MM/YYYY form
func (d Date) Canonical() string {
	return fmt.Sprintf("%02d/%02d/%04d", d.day, int(d.month), d.year)
}

// Time returns midnight UTC on the date
func (d Date) Time() time.Time {
	return time.Date(d.year, d.month, d.day, 0, 0, 0, 0, time.UTC)
}

// Before reports whether d is earlier than other
func (d Date) Before(other Date) bool {
	if d.year != other.year {
		return d.year < other.year
	}
	if d.month != other.month {
		return d.month < other.month
	}
	return d.day < other.day
}

func (d Date) Equals(other Date) bool {
	return d == other
}

// IsZero returns true for the unset Date
func (d Date) IsZero() bool {
	return d.year == 0
}
