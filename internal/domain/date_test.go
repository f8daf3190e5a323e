package domain

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsValidDate_CalendarGrid(t *testing.T) {
	for y := 1900; y <= 2100; y++ {
		for m := 1; m <= 12; m++ {
			for d := 1; d <= 31; d++ {
				s := fmt.Sprintf("%02d/%02d/%04d", d, m, y)

				var want bool
				if m == 2 && d == 29 {
					want = y%4 == 0
				} else {
					want = time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC).Day() == d
				}

				if got := IsValidDate(s); got != want {
					t.Fatalf("IsValidDate(%q) = %v, want %v", s, got, want)
				}
			}
		}
	}
}

func TestIsValidDate_Malformed(t *testing.T) {
	for _, s := range []string{
		"",
		"7/01/2024",
		"07/1/2024",
		"07/01/24",
		"07-01-2024",
		"2024/01/07",
		"00/01/2024",
		"32/01/2024",
		"01/00/2024",
		"01/13/2024",
		"01/01/0000",
		"01/01/20245",
		" 07/01/2024",
		"aa/bb/cccc",
	} {
		assert.False(t, IsValidDate(s), s)
	}
}

func TestIsValidDate_CenturyLeapRule(t *testing.T) {
	// year%4 only: century years are treated as leap years
	assert.True(t, IsValidDate("29/02/1900"))
	assert.True(t, IsValidDate("29/02/2100"))
	assert.True(t, IsValidDate("29/02/2000"))
	assert.False(t, IsValidDate("29/02/2023"))
	assert.True(t, IsValidDate("30/04/2024"))
	assert.False(t, IsValidDate("31/04/2024"))
}

func TestDate_Forms(t *testing.T) {
	d, err := NewDate("07/01/2024")
	require.NoError(t, err)

	assert.Equal(t, "7 Jan 2024", d.String())
	assert.Equal(t, "07/01/2024", d.Canonical())
	assert.Equal(t, 2024, d.Year())
	assert.Equal(t, time.January, d.Month())
	assert.Equal(t, 7, d.Day())
	assert.Equal(t, time.Date(2024, time.January, 7, 0, 0, 0, 0, time.UTC), d.Time())
}

func TestDate_KeepsCenturyLeapDay(t *testing.T) {
	d, err := NewDate("29/02/1900")
	require.NoError(t, err)
	assert.Equal(t, "29 Feb 1900", d.String())
	assert.Equal(t, "29/02/1900", d.Canonical())
}

func TestDate_Before(t *testing.T) {
	a, _ := NewDate("31/12/2023")
	b, _ := NewDate("01/01/2024")
	c, _ := NewDate("02/01/2024")

	assert.True(t, a.Before(b))
	assert.True(t, b.Before(c))
	assert.False(t, c.Before(a))
	assert.False(t, b.Before(b))
}

func TestNewDate_Invalid(t *testing.T) {
	_, err := NewDate("31/04/2024")
	require.ErrorIs(t, err, ErrInvalidArgument)
}
