package domain

import (
	"regexp"
	"strconv"
	"strings"
)

const (
	MessageQuantityEmpty       = "Quantity should not be left empty."
	MessageQuantityConstraints = "Quantity should only contain numbers."
	MessageQuantityNegative    = "Quantity should be not be negative."
	MessageQuantityWhole       = "Quantity should be a whole number."
	MessageQuantityTooLarge    = "Quantity should be not be more than 1 million."
	MessageQuantityZero        = "Quantity should not be zero."
)

// QuantityLimit is the exclusive upper bound on a quantity
const QuantityLimit = 1_000_000

var digitsPattern = regexp.MustCompile(`^\d+$`)

// Quantity is the number of units in a transaction
type Quantity struct {
	raw   string
	value int
}

// QuantityRules returns the quantity checks in the order they are reported
func QuantityRules() []Rule {
	return []Rule{
		{Check: IsNonEmptyQuantity, Message: MessageQuantityEmpty},
		{Check: IsValidQuantity, Message: MessageQuantityConstraints},
		{Check: IsNonNegativeQuantity, Message: MessageQuantityNegative},
		{Check: IsWholeQuantity, Message: MessageQuantityWhole},
		{Check: IsSmallQuantity, Message: MessageQuantityTooLarge},
		{Check: IsNonZeroQuantity, Message: MessageQuantityZero},
	}
}

// NewQuantity creates a Quantity from a valid integer literal
func NewQuantity(raw string) (Quantity, error) {
	if err := check(QuantityRules(), raw); err != nil {
		return Quantity{}, err
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return Quantity{}, invalidArgument(MessageQuantityConstraints)
	}
	return Quantity{raw: raw, value: v}, nil
}

// IsNonEmptyQuantity returns true if s is not empty
func IsNonEmptyQuantity(s string) bool {
	return s != ""
}

// IsValidQuantity returns true if s is a plain decimal number
func IsValidQuantity(s string) bool {
	return isDecimal(s)
}

// IsNonNegativeQuantity returns true if s carries no minus sign
func IsNonNegativeQuantity(s string) bool {
	return !strings.Contains(s, "-")
}

// IsWholeQuantity returns true if s is made of digits only
func IsWholeQuantity(s string) bool {
	return digitsPattern.MatchString(s)
}

// IsSmallQuantity returns true if s parses to a value below QuantityLimit
func IsSmallQuantity(s string) bool {
	v, ok := parseDecimal(s)
	return ok && v < QuantityLimit
}

// IsNonZeroQuantity returns true if s does not parse to zero
func IsNonZeroQuantity(s string) bool {
	v, ok := parseDecimal(s)
	return ok && v != 0
}

// Value returns the number of units
func (q Quantity) Value() int {
	return q.value
}

// Canonical returns the literal the quantity was created from
func (q Quantity) Canonical() string {
	return q.raw
}

func (q Quantity) String() string {
	return q.raw
}

func (q Quantity) Equals(other Quantity) bool {
	return q.raw == other.raw
}

// IsZero returns true for the unset Quantity
func (q Quantity) IsZero() bool {
	return q.raw == ""
}
