package core

import (
	"errors"
	"fmt"

	dnderr "github.com/KirkDiggler/initiative-bot-discord/internal/errors"
)

// HandlerError represents an error that occurred during handler execution
type HandlerError struct {
	Err error

	// User-friendly message to display
	UserMessage string

	// Whether this error should be shown to the user
	ShowToUser bool

	// HTTP-like status code for categorization
	Code int
}

func (e *HandlerError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.UserMessage
}

func (e *HandlerError) Unwrap() error {
	return e.Err
}

const (
	ErrorCodeBadRequest   = 400
	ErrorCodeUnauthorized = 401
	ErrorCodeForbidden    = 403
	ErrorCodeNotFound     = 404
	ErrorCodeConflict     = 409
	ErrorCodeInternal     = 500
)

const internalMessage = "An internal error occurred. Please try again later."

func NewHandlerError(err error, userMessage string, code int) *HandlerError {
	return &HandlerError{
		Err:         err,
		UserMessage: userMessage,
		ShowToUser:  true,
		Code:        code,
	}
}

// NewInternalError hides err behind a generic message
func NewInternalError(err error) *HandlerError {
	return &HandlerError{
		Err:         err,
		UserMessage: internalMessage,
		ShowToUser:  true,
		Code:        ErrorCodeInternal,
	}
}

func NewNotFoundError(resource string) *HandlerError {
	return &HandlerError{
		UserMessage: fmt.Sprintf("%s not found", resource),
		ShowToUser:  true,
		Code:        ErrorCodeNotFound,
	}
}

func NewForbiddenError(message string) *HandlerError {
	return &HandlerError{
		UserMessage: message,
		ShowToUser:  true,
		Code:        ErrorCodeForbidden,
	}
}

func NewValidationError(message string) *HandlerError {
	return &HandlerError{
		UserMessage: message,
		ShowToUser:  true,
		Code:        ErrorCodeBadRequest,
	}
}

// FromError converts a service error into a HandlerError. Coded application
// errors keep their innermost message and prefix it with ❌; anything else is
// treated as internal.
func FromError(err error) *HandlerError {
	var handlerErr *HandlerError
	if errors.As(err, &handlerErr) {
		return handlerErr
	}

	var code int
	switch dnderr.GetCode(err) {
	case dnderr.CodeInvalidArgument:
		code = ErrorCodeBadRequest
	case dnderr.CodeNotFound:
		code = ErrorCodeNotFound
	case dnderr.CodeAlreadyExists, dnderr.CodeFailedPrecondition:
		code = ErrorCodeConflict
	case dnderr.CodePermissionDenied:
		code = ErrorCodeForbidden
	default:
		return NewInternalError(err)
	}

	message := dnderr.UserMessage(err)
	if message == "" {
		return NewInternalError(err)
	}

	return NewHandlerError(err, "❌ "+capitalize(message), code)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	if r[0] >= 'a' && r[0] <= 'z' {
		r[0] -= 'a' - 'A'
	}
	return string(r)
}
