package zwutil

import (
	"errors"
	"fmt"
)

// Code is a platform status code. OK is the only value the package gives
// meaning to; the rest of the space belongs to the embedding environment.
type Code int32

// OK reports success. It never appears inside an Error.
const OK Code = 0

// Well-known platform codes, numbered like their ESP-IDF counterparts.
const (
	CodeFail         Code = -1
	CodeNoMem        Code = 0x101
	CodeInvalidArg   Code = 0x102
	CodeInvalidState Code = 0x103
	CodeInvalidSize  Code = 0x104
	CodeNotFound     Code = 0x105
	CodeNotSupported Code = 0x106
	CodeTimeout      Code = 0x107
)

// IsOk reports whether c is OK.
func (c Code) IsOk() bool {
	return c == OK
}

// Error is a failed outcome: a non-OK code plus an optional message.
//
// Two Errors are equal when code and message are equal, so Error values can be
// compared with == and matched with errors.Is.
type Error struct {
	code    Code
	message string
}

var _ error = Error{}

// NewError builds an Error. Passing OK is a programming error and panics.
func NewError(code Code, message string) Error {
	if code == OK {
		panic("zwutil: OK is not an error, supply a value instead")
	}
	return Error{code: code, message: message}
}

// Errorf is NewError with a formatted message.
func Errorf(code Code, format string, args ...any) Error {
	return NewError(code, fmt.Sprintf(format, args...))
}

// Code returns the status code.
func (e Error) Code() Code {
	return e.code
}

// Message returns the free-text message, possibly empty.
func (e Error) Message() string {
	return e.message
}

func (e Error) Error() string {
	if e.message == "" {
		return e.code.String()
	}
	return e.code.String() + ": " + e.message
}

// Status converts e into a failed Status.
func (e Error) Status() Status {
	return Status{code: e.code, message: e.message}
}

// Status is the error-only outcome of an operation that has no payload.
// The zero Status is OK.
type Status struct {
	code    Code
	message string
}

// OkStatus returns the successful Status.
func OkStatus() Status {
	return Status{}
}

// StatusOf wraps a bare code. OK yields a successful Status.
func StatusOf(code Code) Status {
	return Status{code: code}
}

// FailStatus reports a generic failure (CodeFail) with a message.
func FailStatus(message string) Status {
	return Status{code: CodeFail, message: message}
}

// IsOk reports whether the status is successful.
func (s Status) IsOk() bool {
	return s.code == OK
}

// Code returns the status code, OK on success.
func (s Status) Code() Code {
	return s.code
}

// Message returns the failure message. It is always empty on success.
func (s Status) Message() string {
	return s.message
}

// Err returns nil on success and the failure as an Error otherwise.
func (s Status) Err() error {
	if s.code == OK {
		return nil
	}
	return Error{code: s.code, message: s.message}
}

func (s Status) String() string {
	if s.code == OK {
		return OK.String()
	}
	return Error{code: s.code, message: s.message}.Error()
}

// CodeOf extracts a code from a Go error.
//
// Returns:
//   - OK for nil
//   - the carried code for Error (anywhere in the chain)
//   - CodeTimeout for context deadline errors
//   - CodeFail for anything else
func CodeOf(err error) Code {
	if err == nil {
		return OK
	}

	var e Error
	if errors.As(err, &e) {
		return e.code
	}

	var timeout interface{ Timeout() bool }
	if errors.As(err, &timeout) && timeout.Timeout() {
		return CodeTimeout
	}

	return CodeFail
}

// ErrorOf converts any non-nil Go error into an Error, keeping the code of
// an Error found in the chain and the text of the outermost error.
func ErrorOf(err error) Error {
	if err == nil {
		panic("zwutil: nil is not an error")
	}

	var e Error
	if errors.As(err, &e) && e.Error() == err.Error() {
		return e
	}
	return Error{code: CodeOf(err), message: err.Error()}
}
