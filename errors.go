// Copyright (c) 2024
//
// MIT License

package ddnnf

import (
	"fmt"

	"github.com/pkg/errors"
)

// UsageError reports a bad combination of operation arguments: conditioning
// on the literal 0, conditioning on both a variable and its negation, or
// (at the CLI layer) a malformed flag combination.
type UsageError struct {
	Msg string
}

func (e *UsageError) Error() string { return e.Msg }

func newUsageError(format string, a ...interface{}) *UsageError {
	return &UsageError{Msg: fmt.Sprintf(format, a...)}
}

// IOError reports a file that could not be opened for reading or writing.
type IOError struct {
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("unable to open %s: %s", e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

func newIOError(path string, cause error) *IOError {
	return &IOError{Path: path, Err: cause}
}

// FormatError reports a tokenization or structural violation found while
// decoding one of the three textual d-DNNF formats. Line is 1-based, or 0
// when the violation is not tied to a single line (e.g. "no root found").
type FormatError struct {
	Format string
	Line   int
	Msg    string
	Err    error
}

func (e *FormatError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s format error at line %d: %s", e.Format, e.Line, e.Msg)
	}
	return fmt.Sprintf("%s format error: %s", e.Format, e.Msg)
}

func (e *FormatError) Unwrap() error { return e.Err }

func newFormatError(format string, line int, cause error, msgFmt string, a ...interface{}) *FormatError {
	return &FormatError{
		Format: format,
		Line:   line,
		Msg:    fmt.Sprintf(msgFmt, a...),
		Err:    cause,
	}
}

// InternalError reports a violated engine invariant detected during
// simplification or re-indexing. Reaching this is a bug in the engine, not a
// consequence of bad input; it is still returned rather than panicking so
// that embedding programs retain control over how to fail.
type InternalError struct {
	Msg string
	Err error
}

func (e *InternalError) Error() string {
	return fmt.Sprintf("internal error: %s", e.Msg)
}

func (e *InternalError) Unwrap() error { return e.Err }

// newInternalError builds the cause through pkg/errors.Errorf rather than
// fmt.Errorf, so every violated invariant carries a stack trace back to the
// exact reindex/AddNode/AddEdge call site that raised it, not just the
// formatted message.
func newInternalError(format string, a ...interface{}) *InternalError {
	cause := errors.Errorf(format, a...)
	return &InternalError{Msg: cause.Error(), Err: cause}
}
