package service

import (
	"errors"
	"fmt"
)

// AuthError means credentials are missing or were rejected by the server.
// The orchestrator reacts by forcing a fresh login and retrying the run.
type AuthError struct {
	Message string
}

func (e *AuthError) Error() string {
	return e.Message
}

// PermanentError is any failure the program cannot recover from on its own:
// transport errors, unexpected responses, cancelled prompts, files that
// belong to no repository. It is reported once and never retried.
type PermanentError struct {
	Message string
	Err     error
}

func (e *PermanentError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *PermanentError) Unwrap() error {
	return e.Err
}

// IsAuthError reports whether err is (or wraps) an AuthError.
func IsAuthError(err error) bool {
	var authErr *AuthError
	return errors.As(err, &authErr)
}

// IsPermanentError reports whether err is (or wraps) a PermanentError.
func IsPermanentError(err error) bool {
	var permErr *PermanentError
	return errors.As(err, &permErr)
}
