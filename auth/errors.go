package auth

import (
	"errors"
	"fmt"
)

// AuthError reports a failure to acquire, refresh or persist OAuth2 credentials. It is
// fatal for the current run.
type AuthError struct {
	Op  string
	Err error
}

var errCorruptToken = errors.New("invalid token file")

func (e *AuthError) Error() string {
	return fmt.Sprintf("%s (%v)", e.Op, e.Err)
}

func (e *AuthError) Unwrap() error {
	return e.Err
}
