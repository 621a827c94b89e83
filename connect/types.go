// File: types.go
// Role: tunable options, missing-key policy, and connector error definitions.
package connect

import (
	"errors"
	"io"

	"github.com/charmbracelet/log"
)

// Sentinel errors for connection.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("connect: graph is nil")

	// ErrUnknownKey is returned in strict mode when a grid character is not
	// registered in the graph under the Preregistered policy.
	ErrUnknownKey = errors.New("connect: unknown key referenced by layout")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("connect: invalid option supplied")
)

// Policy decides what happens when a grid character has no matching key.
type Policy int

const (
	// Preregistered requires every referenced character to already be a
	// node; unresolved cells are skipped (or rejected in strict mode).
	// Use when the key table is known-complete, so stray characters in the
	// layout text cannot silently grow the graph.
	Preregistered Policy = iota

	// AutoCreate synthesizes a key with no shift mapping on first
	// reference to an unknown character.
	AutoCreate
)

// String returns the canonical name of the policy.
func (p Policy) String() string {
	if p == AutoCreate {
		return "auto-create"
	}

	return "preregistered"
}

// Option configures connection behavior via functional arguments.
type Option func(*Options)

// Options holds parameters customizing a Connect run.
type Options struct {
	// Policy selects the missing-key behavior. Default: Preregistered.
	Policy Policy

	// Strict surfaces an ErrUnknownKey instead of silently skipping an
	// unregistered character under Preregistered. Useful for validating
	// hand-authored layout tables; the shipped presets build permissive.
	Strict bool

	// Logger receives debug traces of connection decisions.
	// Defaults to a discarding logger.
	Logger *log.Logger

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with the permissive defaults:
// Preregistered policy, non-strict, discarding logger.
func DefaultOptions() Options {
	return Options{
		Policy: Preregistered,
		Logger: log.New(io.Discard),
	}
}

// WithPolicy selects the missing-key policy.
func WithPolicy(p Policy) Option {
	return func(o *Options) {
		switch p {
		case Preregistered, AutoCreate:
			o.Policy = p
		default:
			o.err = ErrOptionViolation
		}
	}
}

// WithAutoCreate is shorthand for WithPolicy(AutoCreate).
func WithAutoCreate() Option {
	return WithPolicy(AutoCreate)
}

// WithStrict turns unresolved layout characters into ErrUnknownKey instead
// of a silent skip. Only meaningful under the Preregistered policy;
// AutoCreate never leaves a character unresolved.
func WithStrict() Option {
	return func(o *Options) { o.Strict = true }
}

// WithLogger routes debug traces to l.
func WithLogger(l *log.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}
