package ringbuffer

import (
	"errors"
	"fmt"
)

// ErrInvalidSize is returned by New when the requested size is less than 1.
var ErrInvalidSize = errors.New("ring buffer size must be at least 1")

// wrap annotates err with the failing operation, following the
// "component.method: action failed: %w" convention.
func wrap(err error, method, action string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("ringbuffer.%s: %s failed: %w", method, action, err)
}
