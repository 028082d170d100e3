// Package errors wraps errors with a stack trace captured at the call site, so that a failure
// logged at the process boundary still points at the AWS call or parser that produced it.
package errors

import (
	gerrors "errors"
	"fmt"
	bugsnagerrors "github.com/bugsnag/bugsnag-go/v2/errors"
)

func New(text string) *bugsnagerrors.Error {
	return bugsnagerrors.New(text, 1)
}

// NewSentinelError returns a plain error without a stack, for package-level error values
// that callers match with Is.
func NewSentinelError(text string) error {
	return gerrors.New(text)
}

// Errorf formats like fmt.Errorf, %w verbs included, and attaches the caller's stack.
func Errorf(format string, a ...any) *bugsnagerrors.Error {
	return bugsnagerrors.New(fmt.Errorf(format, a...), 1)
}

func ErrorfWithSkip(skip int, format string, a ...any) *bugsnagerrors.Error {
	return bugsnagerrors.New(fmt.Errorf(format, a...), 1+skip)
}

func Wrap(err error) *bugsnagerrors.Error {
	return wrapWithSkip(err, 1)
}

func WrapWithSkip(err error, skip int) *bugsnagerrors.Error {
	return wrapWithSkip(err, skip+1)
}

func wrapWithSkip(err error, skip int) *bugsnagerrors.Error {
	if err == nil {
		return nil
	}
	return bugsnagerrors.New(err, skip+1)
}

// Unwrap steps through a *bugsnagerrors.Error, which does not implement Unwrap itself.
func Unwrap(err error) error {
	if stacked, ok := err.(*bugsnagerrors.Error); ok {
		return stacked.Err
	}

	inner := gerrors.Unwrap(err)
	if stacked, ok := inner.(*bugsnagerrors.Error); ok {
		return stacked.Err
	}

	return inner
}

// Is reports whether target is found anywhere in err's chain, looking through stack wrappers
// at every level, including a stack wrapper that was itself wrapped by fmt.Errorf.
func Is(err error, target error) bool {
	if stackedTarget, ok := target.(*bugsnagerrors.Error); ok {
		target = stackedTarget.Err
	}

	for err != nil {
		if gerrors.Is(err, target) {
			return true
		}
		if stacked, ok := err.(*bugsnagerrors.Error); ok && gerrors.Is(stacked.Err, target) {
			return true
		}
		err = Unwrap(err)
	}

	return false
}

func As(err error, target any) bool {
	for err != nil {
		if stacked, ok := err.(*bugsnagerrors.Error); ok && gerrors.As(stacked.Err, target) {
			return true
		}
		if gerrors.As(err, target) {
			return true
		}
		err = Unwrap(err)
	}

	return false
}
