package domain

import "regexp"

const MessageAddressConstraints = "Addresses can take any values, and it should not be blank"

// The first character must not be whitespace, otherwise " " would be valid.
var addressPattern = regexp.MustCompile(`^[^\s].*$`)

// Address is a client's postal address
type Address struct {
	value string
}

// NewAddress creates an Address from a valid address string
func NewAddress(address string) (Address, error) {
	if !IsValidAddress(address) {
		return Address{}, invalidArgument(MessageAddressConstraints)
	}
	return Address{value: address}, nil
}

// IsValidAddress returns true if s is a valid address
func IsValidAddress(s string) bool {
	return addressPattern.MatchString(s)
}

func (a Address) String() string {
	return a.value
}

func (a Address) Equals(other Address) bool {
	return a.value == other.value
}

// IsZero returns true for the unset Address
func (a Address) IsZero() bool {
	return a.value == ""
}
