package cli

import (
	"errors"

	"github.com/andy/tradebook/internal/service"
)

// userError replaces service sentinels with the text shown to the user.
// Anything else, parse errors included, is returned unchanged.
func userError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, service.ErrIndexOutOfRange) || errors.Is(err, service.ErrDuplicateClient) {
		return errors.New(service.UserMessage(err))
	}
	return err
}
