// Package errors defines the error taxonomy shared by the pipeline and
// its callers. Two kinds matter to callers: data-load failures (a source
// file was absent, unreadable, or undecodable) and analysis failures
// (a configuration mistake such as selecting a category column that the
// category source does not have). Row-level invalidity is never an error;
// the cleanser absorbs it as a counted drop.
package errors

import (
	"errors"
	"fmt"
)

// Kind classifies an error for propagation decisions.
type Kind string

const (
	// KindDataLoad marks a source file that could not be read or decoded.
	// Fatal for the primary source, degradable for the category source.
	KindDataLoad Kind = "data_load"
	// KindAnalysis marks a caller/configuration mistake. Always fatal.
	KindAnalysis Kind = "analysis"
	// KindConfig marks invalid application configuration.
	KindConfig Kind = "config"
)

// Error is the structured error type used at package boundaries.
type Error struct {
	Kind    Kind
	Op      string
	Message string
	Err     error
}

// Error implements the error interface.
func (e *Error) Error() string {
	switch {
	case e.Err != nil && e.Message != "":
		return fmt.Sprintf("%s: %s: %v", e.Op, e.Message, e.Err)
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	default:
		return fmt.Sprintf("%s: %s", e.Op, e.Message)
	}
}

// Unwrap exposes the wrapped cause for errors.Is/As chains.
func (e *Error) Unwrap() error {
	return e.Err
}

// New creates an Error with the given kind, operation, and message.
func New(kind Kind, op, message string) *Error {
	return &Error{Kind: kind, Op: op, Message: message}
}

// Wrap creates an Error wrapping an underlying cause.
func Wrap(kind Kind, op string, err error) *Error {
	return &Error{Kind: kind, Op: op, Err: err}
}

// DataLoadf creates a KindDataLoad error with a formatted message.
func DataLoadf(op, format string, args ...any) *Error {
	return &Error{Kind: KindDataLoad, Op: op, Message: fmt.Sprintf(format, args...)}
}

// Analysisf creates a KindAnalysis error with a formatted message.
func Analysisf(op, format string, args ...any) *Error {
	return &Error{Kind: KindAnalysis, Op: op, Message: fmt.Sprintf(format, args...)}
}

// Configf creates a KindConfig error with a formatted message.
func Configf(op, format string, args ...any) *Error {
	return &Error{Kind: KindConfig, Op: op, Message: fmt.Sprintf(format, args...)}
}

// IsKind reports whether the first classified error in err's chain
// carries the given kind.
func IsKind(err error, kind Kind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// KindOf returns the kind of the first *Error in the chain, or "" when
// the chain carries no classified error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}
