package errorx

import (
	"errors"
	"fmt"
)

type Error struct {
	Code    Code
	Message string

	cause error
}

func New(code Code, format string, a ...any) Error {
	return Error{Code: code, Message: fmt.Sprintf(format, a...)}
}

// Wrap is New with an underlying cause, which stays reachable through
// errors.Is and errors.As.
func Wrap(code Code, err error, format string, a ...any) Error {
	return Error{Code: code, Message: fmt.Sprintf(format, a...), cause: err}
}

func (e Error) Error() string {
	if e.cause == nil {
		return e.Message
	}

	return fmt.Sprintf("%s: %v", e.Message, e.cause)
}

func (e Error) Unwrap() error {
	return e.cause
}

// Is reports whether any error in err's chain is an Error with the given code.
func Is(err error, code Code) bool {
	var errx Error
	if !errors.As(err, &errx) {
		return false
	}

	if errx.Code == code {
		return true
	}

	return Is(errx.cause, code)
}
