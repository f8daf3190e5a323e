package service

import "errors"

// Texts shown to the user for the service errors
const (
	MessageInvalidClientIndex = "The client index provided is invalid"
	MessageDuplicateClient    = "This client already exists in the address book"
)

// UserMessage returns the line shown to the user for err. Parse errors
// already carry their own text.
func UserMessage(err error) string {
	switch {
	case errors.Is(err, ErrIndexOutOfRange):
		return MessageInvalidClientIndex
	case errors.Is(err, ErrDuplicateClient):
		return MessageDuplicateClient
	}
	return err.Error()
}
