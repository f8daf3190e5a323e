package parser

import "errors"

// ParseError is a user-facing rejection of raw input. Message is shown to
// the user as is.
type ParseError struct {
	Field   string
	Message string
}

func (e *ParseError) Error() string {
	return e.Message
}

// IsParseError reports whether err is, or wraps, a *ParseError
func IsParseError(err error) bool {
	var pe *ParseError
	return errors.As(err, &pe)
}

func newParseError(field, message string) *ParseError {
	return &ParseError{Field: field, Message: message}
}
