// Package protoerr defines the three-way error taxonomy that every
// connection-loop error is reduced to: recoverable, fatal, or a graceful
// exit that needs no log line.
package protoerr

import "fmt"

// Kind classifies how the connection loop should react to an error.
type Kind int

const (
	// Recoverable errors are logged and the connection continues.
	Recoverable Kind = iota
	// Fatal errors close the connection after logging.
	Fatal
	// GracefulExit closes the connection with no error log.
	GracefulExit
)

func (k Kind) String() string {
	switch k {
	case Recoverable:
		return "recoverable"
	case Fatal:
		return "fatal"
	case GracefulExit:
		return "graceful-exit"
	default:
		return "unknown"
	}
}

// Error wraps an underlying cause with a Kind.
type Error struct {
	Kind  Kind
	Cause error
}

func (e *Error) Error() string {
	if e.Cause == nil {
		return e.Kind.String()
	}
	return fmt.Sprintf("%s: %v", e.Kind, e.Cause)
}

func (e *Error) Unwrap() error { return e.Cause }

// Recoverablef builds a Recoverable error from a format string.
func Recoverablef(format string, args ...any) error {
	return &Error{Kind: Recoverable, Cause: fmt.Errorf(format, args...)}
}

// Fatalf builds a Fatal error from a format string.
func Fatalf(format string, args ...any) error {
	return &Error{Kind: Fatal, Cause: fmt.Errorf(format, args...)}
}

// WrapFatal wraps an existing error as Fatal, preserving its Kind if it
// already is one.
func WrapFatal(err error) error {
	if err == nil {
		return nil
	}
	if e, ok := err.(*Error); ok {
		return e
	}
	return &Error{Kind: Fatal, Cause: err}
}

// WrapRecoverable wraps an existing error as Recoverable, preserving its
// Kind if it already is one.
func WrapRecoverable(err error) error {
	if err == nil {
		return nil
	}
	if e, ok := err.(*Error); ok {
		return e
	}
	return &Error{Kind: Recoverable, Cause: err}
}

// Exit constructs the sentinel GracefulExit error.
func Exit() error {
	return &Error{Kind: GracefulExit}
}

// KindOf extracts the Kind of err, defaulting to Fatal for unrecognized
// errors (an un-typed error reaching the connection loop is treated as
// fatal, never silently ignored).
func KindOf(err error) Kind {
	if err == nil {
		return Recoverable
	}
	if e, ok := err.(*Error); ok {
		return e.Kind
	}
	return Fatal
}
