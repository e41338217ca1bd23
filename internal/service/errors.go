package service

import (
	"errors"
	"fmt"
)

// ErrInvalidCredentials covers both an unknown user name and a wrong
// password so that login failures do not reveal which one it was.
var ErrInvalidCredentials = errors.New("invalid name or password")

// ValidationError is a client error detected before any I/O.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}
