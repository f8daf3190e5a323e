package domain

import "regexp"

const MessageNameConstraints = "Names should only contain alphanumeric characters and spaces, and it should not be blank"

// The first character must not be a space, otherwise " " would be a valid name.
var namePattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9 ]*$`)

// Name is a client's name
type Name struct {
	value string
}

// NewName creates a Name from a valid name string
func NewName(name string) (Name, error) {
	if !IsValidName(name) {
		return Name{}, invalidArgument(MessageNameConstraints)
	}
	return Name{value: name}, nil
}

// IsValidName returns true if s is a valid name
func IsValidName(s string) bool {
	return namePattern.MatchString(s)
}

func (n Name) String() string {
	return n.value
}

func (n Name) Equals(other Name) bool {
	return n.value == other.value
}

// IsZero returns true for the unset Name
func (n Name) IsZero() bool {
	return n.value == ""
}
