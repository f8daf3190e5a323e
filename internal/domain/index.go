package domain

import (
	"math"
	"regexp"
	"strconv"
)

const MessageInvalidIndex = "Index is not a non-zero unsigned integer."

var oneBasedPattern = regexp.MustCompile(`^[1-9][0-9]*$`)

// Index points at an item in a displayed list. It is stored zero-based;
// users type it one-based.
type Index struct {
	zeroBased int
}

// IndexFromZeroBased creates an Index from a zero-based position
func IndexFromZeroBased(i int) (Index, error) {
	if i < 0 {
		return Index{}, invalidArgument("zero-based index must not be negative")
	}
	return Index{zeroBased: i}, nil
}

// IndexFromOneBased creates an Index from a one-based position
func IndexFromOneBased(i int) (Index, error) {
	if i < 1 {
		return Index{}, invalidArgument("one-based index must be positive")
	}
	return Index{zeroBased: i - 1}, nil
}

// IsNonZeroUnsignedInteger returns true if s is a positive integer with no
// sign, no leading zeros and no inner whitespace that fits in 32 bits.
func IsNonZeroUnsignedInteger(s string) bool {
	if !oneBasedPattern.MatchString(s) {
		return false
	}
	v, err := strconv.ParseInt(s, 10, 64)
	return err == nil && v <= math.MaxInt32
}

// ZeroBased returns the position counting from 0
func (i Index) ZeroBased() int {
	return i.zeroBased
}

// OneBased returns the position counting from 1
func (i Index) OneBased() int {
	return i.zeroBased + 1
}

func (i Index) Equals(other Index) bool {
	return i.zeroBased == other.zeroBased
}
