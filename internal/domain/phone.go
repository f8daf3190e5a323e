package domain

import "regexp"

const MessagePhoneConstraints = "Phone numbers should only contain numbers, and it should be at least 3 digits long"

var phonePattern = regexp.MustCompile(`^\d{3,}$`)

// Phone is a client's phone number
type Phone struct {
	value string
}

// NewPhone creates a Phone from a valid phone number
func NewPhone(phone string) (Phone, error) {
	if !IsValidPhone(phone) {
		return Phone{}, invalidArgument(MessagePhoneConstraints)
	}
	return Phone{value: phone}, nil
}

// IsValidPhone returns true if s is a valid phone number
func IsValidPhone(s string) bool {
	return phonePattern.MatchString(s)
}

func (p Phone) String() string {
	return p.value
}

func (p Phone) Equals(other Phone) bool {
	return p.value == other.value
}

// IsZero returns true for the unset Phone
func (p Phone) IsZero() bool {
	return p.value == ""
}
