package schema

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNormalization is wrapped by every failure produced while normalizing a
// value. Use errors.Is to detect it.
var ErrNormalization = errors.New("normalization failed")

// ValidationError represents a single normalization failure.
type ValidationError struct {
	Path   string // Location inside the value, e.g. "vertices[1].label"
	Reason string // Human-readable reason for failure
	Value  any    // The value that failed
	Err    error  // Optional underlying cause
}

func (e *ValidationError) Error() string {
	var b strings.Builder
	b.WriteString(ErrNormalization.Error())
	if e.Path != "" {
		fmt.Fprintf(&b, " at %q", e.Path)
	}
	b.WriteString(": ")
	b.WriteString(e.Reason)
	if e.Value != nil {
		fmt.Fprintf(&b, " (got %T)", e.Value)
	}
	return b.String()
}

// Unwrap exposes both ErrNormalization and the underlying cause.
func (e *ValidationError) Unwrap() []error {
	if e.Err != nil {
		return []error{ErrNormalization, e.Err}
	}
	return []error{ErrNormalization}
}

// Failf builds a ValidationError with no path. Object types with custom
// normalization use it to report failures in the same taxonomy as the engine.
func Failf(value any, format string, args ...any) error {
	return &ValidationError{Reason: fmt.Sprintf(format, args...), Value: value}
}

// AtPath prefixes the path of err with segment. Segments that start with '['
// are appended without a dot. Errors that are not a *ValidationError are
// wrapped into one.
func AtPath(err error, segment string) error {
	if err == nil {
		return nil
	}
	var ve *ValidationError
	if !errors.As(err, &ve) {
		return &ValidationError{Path: segment, Reason: err.Error(), Err: err}
	}
	out := *ve
	out.Path = joinPath(segment, ve.Path)
	return &out
}

func joinPath(prefix, rest string) string {
	switch {
	case prefix == "":
		return rest
	case rest == "":
		return prefix
	case strings.HasPrefix(rest, "["):
		return prefix + rest
	default:
		return prefix + "." + rest
	}
}

func indexSegment(i int) string {
	return fmt.Sprintf("[%d]", i)
}

// AggregateError represents multiple schema definition problems.
type AggregateError struct {
	Errors []error
}

func (e *AggregateError) Error() string {
	if len(e.Errors) == 1 {
		return e.Errors[0].Error()
	}
	msg := fmt.Sprintf("%d schema errors:\n", len(e.Errors))
	for i, err := range e.Errors {
		msg += fmt.Sprintf("  %d. %s\n", i+1, err.Error())
	}
	return msg
}

// Unwrap supports errors.Is/errors.As over every aggregated error.
func (e *AggregateError) Unwrap() []error { return e.Errors }

// DefinitionError describes a problem in a schema definition itself.
type DefinitionError struct {
	Path   string
	Reason string
}

func (e *DefinitionError) Error() string {
	if e.Path == "" {
		return "schema: " + e.Reason
	}
	return fmt.Sprintf("schema %q: %s", e.Path, e.Reason)
}

// ValidationErrors returns all aggregated errors if err is an AggregateError.
// Otherwise returns nil.
func ValidationErrors(err error) []error {
	var aggr *AggregateError
	if errors.As(err, &aggr) {
		return aggr.Errors
	}
	return nil
}
