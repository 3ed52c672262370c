// Package errorspkg provides common app error kinds.
package errorspkg

import (
	"errors"
	"fmt"
)

// Kind is a semantic error category. Kinds are sentinels and are matched with errors.Is.
type Kind interface {
	error
	isKind()
}

type kind struct{ s string }

func (k kind) Error() string { return k.s }
func (k kind) isKind()       {}

// NewKind creates a new error kind with the given name.
func NewKind(name string) Kind { return kind{s: name} }

var (
	// ErrValidation indicates malformed or rule-violating input.
	ErrValidation = NewKind("validation")
	// ErrNotFound indicates that the referenced entity does not exist.
	ErrNotFound = NewKind("not found")
	// ErrAlreadyExists indicates that the entity being created collides with an existing one.
	ErrAlreadyExists = NewKind("already exists")
	// ErrInsufficientFunds indicates that a balance cannot cover the operation.
	ErrInsufficientFunds = NewKind("insufficient funds")
	// ErrUnauthorized is reserved for authorization checks.
	ErrUnauthorized = NewKind("unauthorized")
	// ErrInternal indicates internal server error.
	ErrInternal = NewKind("internal")
)

// Error is an error carrying one or more kinds and a human readable message.
//
// errors.Is(err, k) reports true for every kind the error was created with.
type Error struct {
	kinds []Kind
	msg   string
}

// New returns an error of the given kinds with a formatted message.
// The first kind is the primary one reported by Kind.
func New(kinds []Kind, format string, args ...any) *Error {
	return &Error{kinds: kinds, msg: fmt.Sprintf(format, args...)}
}

// With returns an error of a single kind with a formatted message.
func With(k Kind, format string, args ...any) *Error {
	return New([]Kind{k}, format, args...)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.msg != "" {
		return e.msg
	}

	if len(e.kinds) > 0 {
		return e.kinds[0].Error()
	}

	return "unknown error"
}

// Is matches the error against any of its kinds.
func (e *Error) Is(target error) bool {
	for _, k := range e.kinds {
		if errors.Is(k, target) {
			return true
		}
	}

	return false
}

// Kind returns the primary kind of the error.
func (e *Error) Kind() Kind {
	if len(e.kinds) == 0 {
		return ErrInternal
	}

	return e.kinds[0]
}

// KindOf returns the primary kind of err, or ErrInternal when err carries none.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind()
	}

	var k Kind
	if errors.As(err, &k) {
		return k
	}

	return ErrInternal
}
