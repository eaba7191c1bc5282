package scene

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownScene is returned when a scene ID has no constructor.
	ErrUnknownScene = errors.New("unknown scene")
	// ErrMissingTransfer is returned when a scene that needs transfer data finds none
	// or finds the wrong variant.
	ErrMissingTransfer = errors.New("missing transfer data")
)

// TransitionError describes a failed scene transition.
type TransitionError struct {
	From     ID
	To       ID
	Expected string // Expected transfer shape, if any
	Got      string // Transfer shape found, if any
	Err      error
}

func (e *TransitionError) Error() string {
	msg := fmt.Sprintf("transition %s -> %s", e.From, e.To)
	if e.Expected != "" {
		got := e.Got
		if got == "" {
			got = "none"
		}
		msg += fmt.Sprintf(" (expected %s, got %s)", e.Expected, got)
	}
	return msg + ": " + e.Err.Error()
}

func (e *TransitionError) Unwrap() error { return e.Err }
