package ledger

import (
	"fmt"
)

// InputError reports a user entry that could not be parsed. It is recoverable: callers
// are expected to ask again.
type InputError struct {
	Field string
	Value string
	Err   error
}

func (e *InputError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid %s '%s' (%v)", e.Field, e.Value, e.Err)
	}

	return fmt.Sprintf("invalid %s '%s'", e.Field, e.Value)
}

func (e *InputError) Unwrap() error {
	return e.Err
}
