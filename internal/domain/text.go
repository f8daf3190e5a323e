package domain

import "strings"

const MessageTextConstraints = "Remark should not be empty."

// Text is the free-form remark kept against a client
type Text struct {
	value string
}

// NewText creates a Text from a non-blank string
func NewText(text string) (Text, error) {
	if !IsValidText(text) {
		return Text{}, invalidArgument(MessageTextConstraints)
	}
	return Text{value: text}, nil
}

// IsValidText returns true if s has at least one non-space character
func IsValidText(s string) bool {
	return strings.TrimSpace(s) != ""
}

func (t Text) String() string {
	return t.value
}

func (t Text) Equals(other Text) bool {
	return t.value == other.value
}
