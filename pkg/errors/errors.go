// Package errors provides structured error reporting for refresh and
// load-more controllers.
//
// Controller operations never return errors to callers: misuse such as
// attaching to a nil container, or a panicking caller callback, is reported
// to the global [ErrorHandler] instead.
package errors

import (
	stderrors "errors"
	"fmt"
	"time"
)

// ErrorKind classifies a reported Error.
type ErrorKind int

const (
	// KindUnknown is the zero value.
	KindUnknown ErrorKind = iota
	// KindAttach indicates a controller could not be attached to a container.
	KindAttach
	// KindCallback indicates a caller-supplied callback failed.
	KindCallback
	// KindConfig indicates invalid configuration.
	KindConfig
	// KindPanic marks a panic recovered from caller code.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindAttach:
		return "attach"
	case KindCallback:
		return "callback"
	case KindConfig:
		return "config"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// ErrNilContainer is reported when a controller is attached to a nil container.
var ErrNilContainer = stderrors.New("scroll container is nil")

// Error represents a structured error raised by a controller or the facade.
type Error struct {
	// Op is the operation that failed (e.g., "refreshable.AddPullToRefresh").
	Op string
	// Kind classifies the failure.
	Kind ErrorKind
	// Err is the cause, usable with errors.Is.
	Err error
	// Handle is the ID of the handle involved, if any.
	Handle string
	// StackTrace is the reporting call stack, if captured.
	StackTrace string
	// Timestamp is set by Report when left zero.
	Timestamp time.Time
}

func (e *Error) Error() string {
	if e.Handle != "" {
		return fmt.Sprintf("%s [%s] handle=%s: %v", e.Op, e.Kind, e.Handle, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// PanicError describes a panic that a controller recovered from.
type PanicError struct {
	// Op is the operation that panicked (e.g., "refresh.Controller.trigger").
	Op string
	// Value is what was passed to panic.
	Value any
	// StackTrace is the stack at the recovery point.
	StackTrace string
	// Timestamp is when the panic was recovered.
	Timestamp time.Time
}

func (e *PanicError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// ErrorHandler receives errors reported by controllers.
type ErrorHandler interface {
	// HandleError receives misuse and configuration reports.
	HandleError(err *Error)
	// HandlePanic receives panics recovered from callbacks.
	HandlePanic(err *PanicError)
}
