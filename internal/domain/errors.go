package domain

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument marks a value constructor that was handed input its
// validator rejects. User input goes through the parser package instead, so
// reaching this is a programming error (or a corrupt stored row).
var ErrInvalidArgument = errors.New("invalid argument")

func invalidArgument(message string) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, message)
}
