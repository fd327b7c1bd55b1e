package domain

import (
	"errors"
	"fmt"
	"runtime"

	pkgerrors "github.com/pkg/errors"
)

var (
	// ErrSkipped is returned from a test unit body to mark it skipped.
	ErrSkipped = errors.New("skipped")
	// ErrPending is returned from a test unit body to mark it pending.
	ErrPending = errors.New("pending")
)

// failure is an assertion-style error that remembers where it was raised.
type failure struct {
	msg   string
	stack []uintptr
}

func (f *failure) Error() string {
	return f.msg
}

func (f *failure) StackTrace() pkgerrors.StackTrace {
	trace := make(pkgerrors.StackTrace, len(f.stack))
	for i, pc := range f.stack {
		trace[i] = pkgerrors.Frame(pc)
	}

	return trace
}

func newFailure(msg string) error {
	pcs := make([]uintptr, 32)
	n := runtime.Callers(3, pcs)

	return &failure{msg: msg, stack: pcs[:n]}
}

// Fail returns an error whose reported location is the caller's line.
func Fail(msg string) error {
	return newFailure(msg)
}

// Failf is Fail with formatting.
func Failf(format string, args ...any) error {
	return newFailure(fmt.Sprintf(format, args...))
}

// Skip marks a test unit skipped with a reason.
func Skip(reason string) error {
	if reason == "" {
		return ErrSkipped
	}

	return fmt.Errorf("%s: %w", reason, ErrSkipped)
}

// Pending marks a test unit pending with a reason.
func Pending(reason string) error {
	if reason == "" {
		return ErrPending
	}

	return fmt.Errorf("%s: %w", reason, ErrPending)
}
