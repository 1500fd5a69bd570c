package parser

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrSchema matches a ValidationError for a line with the wrong number of columns.
	ErrSchema = errors.New("incorrect number of columns")

	// ErrNumericFormat matches a ValidationError for a non-integer employee or project ID.
	ErrNumericFormat = errors.New("invalid number format")

	// ErrDateFormat matches a ValidationError for a date that fits none of the accepted formats.
	ErrDateFormat = errors.New("invalid date format")

	// ErrRead matches a ReadError.
	ErrRead = errors.New("error reading assignments")
)

// Kind classifies a ValidationError.
type Kind string

const (
	KindSchema        Kind = "schema"
	KindNumericFormat Kind = "numeric_format"
	KindDateFormat    Kind = "date_format"
)

// Field names used in diagnostics.
const (
	FieldEmployeeID = "employee ID"
	FieldProjectID  = "project ID"
	FieldDateFrom   = "date from"
	FieldDateTo     = "date to"
)

// ValidationError reports the first malformed line of an input.
type ValidationError struct {
	// Line is the 1-based line number.
	Line int

	Kind Kind

	// Field names the offending column. Empty for schema errors.
	Field string

	// Value is the trimmed offending value. Empty for schema errors.
	Value string

	// Expected and Actual are column counts, set for schema errors only.
	Expected int
	Actual   int

	// Formats lists the date patterns that were attempted, set for date errors only.
	Formats []string

	// Err is the underlying cause: the strconv error for numbers, the last
	// time.Parse error for dates. Nil for schema errors.
	Err error
}

func (e *ValidationError) Error() string {
	switch e.Kind {
	case KindSchema:
		return fmt.Sprintf("incorrect number of columns on line %d: expected %d, found %d",
			e.Line, e.Expected, e.Actual)
	case KindNumericFormat:
		return fmt.Sprintf("invalid number format on line %d for %s: %v", e.Line, e.Field, e.Err)
	case KindDateFormat:
		return fmt.Sprintf("invalid date format on line %d for %s: %q matches none of %s",
			e.Line, e.Field, e.Value, strings.Join(e.Formats, ", "))
	default:
		return fmt.Sprintf("invalid assignment on line %d", e.Line)
	}
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// Is lets errors.Is match a ValidationError against the sentinel of its kind.
func (e *ValidationError) Is(target error) bool {
	switch target {
	case ErrSchema:
		return e.Kind == KindSchema
	case ErrNumericFormat:
		return e.Kind == KindNumericFormat
	case ErrDateFormat:
		return e.Kind == KindDateFormat
	}
	return false
}

// ReadError reports that the input stream could not be read to the end.
type ReadError struct {
	// Line is the last line read successfully before the failure.
	Line int
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("%v after line %d: %v", ErrRead, e.Line, e.Err)
}

func (e *ReadError) Unwrap() error {
	return e.Err
}

func (e *ReadError) Is(target error) bool {
	return target == ErrRead
}
