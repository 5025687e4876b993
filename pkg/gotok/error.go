package gotok

import (
	"errors"
	"fmt"
)

type ErrorCode string

const (
	ErrorCodeInvalidConfiguration ErrorCode = "invalid_configuration"
	ErrorCodeInvalidClaims        ErrorCode = "invalid_claims"
	ErrorCodeInvalidToken         ErrorCode = "invalid_token"
	ErrorCodeSessionCreation      ErrorCode = "session_creation_failed"
	ErrorCodeStorageFailure       ErrorCode = "storage_failure"
)

type Error struct {
	Code        ErrorCode
	Description string
	// StatusCode is the HTTP status returned by the platform when the error
	// comes from a session creation request. It is zero otherwise.
	StatusCode int
	wrapped    error
}

func NewError(code ErrorCode, desc string) Error {
	return Error{
		Code:        code,
		Description: desc,
	}
}

func WrapError(code ErrorCode, desc string, err error) Error {
	return Error{
		Code:        code,
		Description: desc,
		wrapped:     err,
	}
}

func (err Error) WithStatus(status int) Error {
	err.StatusCode = status
	return err
}

func (err Error) Error() string {
	if err.wrapped == nil {
		return fmt.Sprintf("%s %s", err.Code, err.Description)
	}

	return fmt.Sprintf("%s %s: %v", err.Code, err.Description, err.wrapped)
}

func (err Error) Unwrap() error {
	return err.wrapped
}

// IsCode reports whether err is, or wraps, an [Error] with the given code.
func IsCode(err error, code ErrorCode) bool {
	var gotokErr Error
	if !errors.As(err, &gotokErr) {
		return false
	}
	return gotokErr.Code == code
}
