// Package errors provides structured error handling for the pull engine.
package errors

import (
	stderrors "errors"
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindConfig indicates misuse of the engine's configuration surface.
	KindConfig
	// KindCollaborator indicates a missing or misbehaving collaborator.
	KindCollaborator
	// KindState indicates an event the state machine could not apply.
	KindState
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindConfig:
		return "config"
	case KindCollaborator:
		return "collaborator"
	case KindState:
		return "state"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

var (
	// ErrUnknownCondition is returned when showing a condition overlay
	// whose kind was never registered.
	ErrUnknownCondition = stderrors.New("condition kind not registered")
	// ErrMissingContent is returned when an engine is built without content.
	ErrMissingContent = stderrors.New("content collaborator is required")
	// ErrInvalidMode is returned for an unknown load mode name or value.
	ErrInvalidMode = stderrors.New("invalid load mode")
)

// PullError represents a structured error raised by the pull engine.
type PullError struct {
	// Op is the operation that failed (e.g., "pull.Engine.ShowCondition").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *PullError) Error() string {
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *PullError) Unwrap() error {
	return e.Err
}

// ConfigError describes a rejected configuration value.
type ConfigError struct {
	// Field names the rejected setting.
	Field string
	// Value is the value that was supplied.
	Value any
	// Reason explains why the value was rejected.
	Reason string
	// Err is an optional underlying cause.
	Err error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid %s %v: %s", e.Field, e.Value, e.Reason)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "pull.Engine.HandlePointer").
	Op string
	// Value is the value passed to panic().
	Value any
	// StackTrace contains the call stack at the time of the panic.
	StackTrace string
	// Timestamp is when the panic occurred.
	Timestamp time.Time
}

func (e *PanicError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// New wraps err as a PullError for op.
func New(op string, kind ErrorKind, err error) *PullError {
	return &PullError{Op: op, Kind: kind, Err: err, Timestamp: time.Now()}
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target any) bool {
	return stderrors.As(err, target)
}

// ErrorHandler receives errors reported by the pull engine.
type ErrorHandler interface {
	// HandleError is called when an error is reported.
	HandleError(err *PullError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
