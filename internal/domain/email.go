package domain

import "regexp"

const MessageEmailConstraints = "Emails should be of the format local-part@domain " +
	"and adhere to the following constraints:\n" +
	"1. The local-part should only contain alphanumeric characters and these special characters, " +
	"excluding the parentheses, (" + emailSpecialCharacters + ") .\n" +
	"2. This is followed by a '@' and then a domain name. The domain name must:\n" +
	"    - be at least 2 characters long\n" +
	"    - start and end with alphanumeric characters\n" +
	"    - consist of alphanumeric characters, a period or a hyphen for the characters in between, if any."

const emailSpecialCharacters = "!#$%&'*+/=?`{|}~^.-"

var emailPattern = regexp.MustCompile(
	"^[\\w" + regexp.QuoteMeta(emailSpecialCharacters) + "]+" +
		"@" +
		"[A-Za-z0-9][A-Za-z0-9.-]*[A-Za-z0-9]$",
)

// Email is a client's email address
type Email struct {
	value string
}

// NewEmail creates an Email from a valid address
func NewEmail(email string) (Email, error) {
	if !IsValidEmail(email) {
		return Email{}, invalidArgument(MessageEmailConstraints)
	}
	return Email{value: email}, nil
}

// IsValidEmail returns true if s is a valid email address
func IsValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}

func (e Email) String() string {
	return e.value
}

func (e Email) Equals(other Email) bool {
	return e.value == other.value
}

// IsZero returns true for the unset Email
func (e Email) IsZero() bool {
	return e.value == ""
}
