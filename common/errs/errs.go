package errs

import (
	"github.com/pkg/errors"
)

const (
	CodeBadWindow     = 1001
	CodeZeroWindow    = 1002
	CodeZeroRatio     = 1003
	CodeNegativeRatio = 1004
	CodeUnknown       = 9999
)

var (
	ErrBadWindow     = New(CodeBadWindow, "window capacity must be positive")
	ErrZeroWindow    = New(CodeZeroWindow, "frame window sum is zero")
	ErrZeroRatio     = New(CodeZeroRatio, "both ratio terms are zero")
	ErrNegativeRatio = New(CodeNegativeRatio, "ratio terms must not be negative")
)

const (
	Success = "success"
)

type Error struct {
	Code int32
	Msg  string
}

func (e *Error) Error() string {
	return e.Msg
}

func New(code int32, msg string) error {
	return &Error{
		Code: code,
		Msg:  msg,
	}
}

func Code(e error) int32 {
	if e == nil {
		return 0
	}
	err, ok := e.(*Error)
	if !ok {
		return CodeUnknown
	}

	if err == (*Error)(nil) {
		return 0
	}
	return err.Code
}

func Msg(e error) string {
	if e == nil {
		return Success
	}
	err, ok := e.(*Error)
	if !ok {
		return "unknown error: " + e.Error()
	}

	if err == (*Error)(nil) {
		return Success
	}

	return err.Msg
}

func Wrapf(err error, format string, args ...interface{}) error {
	return errors.Wrapf(err, format, args...)
}
