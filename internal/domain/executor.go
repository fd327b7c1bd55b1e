package domain

import (
	"errors"
	"fmt"
	"reflect"
	"runtime"
	"strings"

	pkgerrors "github.com/pkg/errors"
)

// OutcomeStatus tells whether a body ran to completion.
type OutcomeStatus int

const (
	// Completed means the body returned without error.
	Completed OutcomeStatus = iota
	// Failed means the body returned an error or panicked.
	Failed
)

// Outcome is the result of executing a single body.
type Outcome struct {
	Status   OutcomeStatus
	Message  string
	Location string
	Err      error
}

// Failed reports whether the outcome is a failure.
func (o Outcome) Failed() bool {
	return o.Status == Failed
}

// Error converts a failed outcome into an error that keeps its location.
func (o Outcome) Error() error {
	if !o.Failed() {
		return nil
	}

	return &FailureError{Message: o.Message, Location: o.Location, Err: o.Err}
}

// FailureError is a recovered failure together with the place it came from.
type FailureError struct {
	Message  string
	Location string
	Err      error
}

func (e *FailureError) Error() string {
	return e.Message
}

func (e *FailureError) Unwrap() error {
	return e.Err
}

type stackTracer interface {
	StackTrace() pkgerrors.StackTrace
}

// execute runs fn, recovering any panic. Failures are caught exactly once here
// and never propagate to the caller.
func execute(fn func() error) (outcome Outcome) {
	defer func() {
		if r := recover(); r != nil {
			outcome = panicOutcome(r, panicLocation())
		}
	}()

	if err := fn(); err != nil {
		return errorOutcome(err, fn)
	}

	return Outcome{Status: Completed}
}

// outcomeFromError rebuilds an outcome from an error produced by Outcome.Error
// or by any other source.
func outcomeFromError(err error) Outcome {
	var failure *FailureError
	if errors.As(err, &failure) {
		return Outcome{Status: Failed, Message: err.Error(), Location: failure.Location, Err: err}
	}

	return Outcome{Status: Failed, Message: err.Error(), Location: stackLocation(err), Err: err}
}

func errorOutcome(err error, fn func() error) Outcome {
	location := stackLocation(err)

	var failure *FailureError
	if location == "" && errors.As(err, &failure) {
		location = failure.Location
	}

	if location == "" {
		location = funcLocation(fn)
	}

	return Outcome{Status: Failed, Message: err.Error(), Location: location, Err: err}
}

func panicOutcome(r any, location string) Outcome {
	err, ok := r.(error)
	if !ok {
		err = fmt.Errorf("%v", r)
	} else if loc := stackLocation(err); loc != "" {
		location = loc
	}

	return Outcome{Status: Failed, Message: err.Error(), Location: location, Err: err}
}

// stackLocation returns the first frame of a stack carried by err, if any.
func stackLocation(err error) string {
	var tracer stackTracer
	if !errors.As(err, &tracer) {
		return ""
	}

	trace := tracer.StackTrace()
	if len(trace) == 0 {
		return ""
	}

	return frameLocation(uintptr(trace[0]) - 1)
}

// panicLocation must be called directly from the deferred recover function.
// It returns the first frame below the runtime's panic machinery.
func panicLocation() string {
	pcs := make([]uintptr, 64)
	n := runtime.Callers(2, pcs)
	frames := runtime.CallersFrames(pcs[:n])

	panicking := false

	for {
		frame, more := frames.Next()

		switch {
		case frame.Function == "runtime.gopanic":
			panicking = true
		case panicking && !strings.HasPrefix(frame.Function, "runtime."):
			return fmt.Sprintf("%s:%d", frame.File, frame.Line)
		}

		if !more {
			return ""
		}
	}
}

func funcLocation(fn any) string {
	v := reflect.ValueOf(fn)
	if v.Kind() != reflect.Func || v.IsNil() {
		return ""
	}

	return frameLocation(v.Pointer())
}

func frameLocation(pc uintptr) string {
	f := runtime.FuncForPC(pc)
	if f == nil {
		return ""
	}

	file, line := f.FileLine(pc)

	return fmt.Sprintf("%s:%d", file, line)
}
