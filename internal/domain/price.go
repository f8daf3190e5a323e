package domain

import (
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	MessagePriceEmpty       = "Price should not be left empty."
	MessagePriceConstraints = "Price should only contain numbers and at most one decimal point."
	MessagePriceNegative    = "Price should be not be negative."
	MessagePriceTooLarge    = "Price should be not be more than 1 million."
)

// PriceLimit is the exclusive upper bound on a price
const PriceLimit = 1_000_000

// decimalPattern accepts an optional sign, digits and at most one decimal point.
// Exponents, hex floats, NaN and Inf are rejected before strconv sees them.
var decimalPattern = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)$`)

// Price is the unit price of the goods in a transaction.
//
// The literal the user typed is kept as the canonical form, so "12.50" and
// "12.5" are different prices even though Value reports the same number.
type Price struct {
	raw   string
	value float64
}

// PriceRules returns the price checks in the order they are reported
func PriceRules() []Rule {
	return []Rule{
		{Check: IsNonEmptyPrice, Message: MessagePriceEmpty},
		{Check: IsValidPrice, Message: MessagePriceConstraints},
		{Check: IsNonNegativePrice, Message: MessagePriceNegative},
		{Check: IsSmallPrice, Message: MessagePriceTooLarge},
	}
}

// NewPrice creates a Price from a valid decimal literal
func NewPrice(raw string) (Price, error) {
	if err := check(PriceRules(), raw); err != nil {
		return Price{}, err
	}
	v, _ := strconv.ParseFloat(raw, 64)
	return Price{raw: raw, value: v}, nil
}

// IsNonEmptyPrice returns true if s is not empty
func IsNonEmptyPrice(s string) bool {
	return s != ""
}

// IsValidPrice returns true if s is a plain decimal number
func IsValidPrice(s string) bool {
	return isDecimal(s)
}

// IsNonNegativePrice returns true if s carries no minus sign
func IsNonNegativePrice(s string) bool {
	return !strings.Contains(s, "-")
}

// IsSmallPrice returns true if s parses to a value below PriceLimit
func IsSmallPrice(s string) bool {
	v, ok := parseDecimal(s)
	return ok && v < PriceLimit
}

// Value returns the numeric price
func (p Price) Value() float64 {
	return p.value
}

// Canonical returns the literal the price was created from
func (p Price) Canonical() string {
	return p.raw
}

// String formats the price with thousands grouping and two decimals
func (p Price) String() string {
	return FormatAmount(p.value)
}

func (p Price) Equals(other Price) bool {
	return p.raw == other.raw
}

// IsZero returns true for the unset Price
func (p Price) IsZero() bool {
	return p.raw == ""
}

// FormatAmount renders v as "1,234.50"
func FormatAmount(v float64) string {
	return message.NewPrinter(language.English).Sprintf("%.2f", v)
}

func isDecimal(s string) bool {
	_, ok := parseDecimal(s)
	return ok
}

func parseDecimal(s string) (float64, bool) {
	if !decimalPattern.MatchString(s) {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
