package omplot

import (
	"errors"
	"fmt"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrInvalidFormat indicates the input is not a readable result file.
var ErrInvalidFormat = errors.New("invalid result file format")

// ErrSeriesNotFound indicates a required series is absent from the result.
var ErrSeriesNotFound = errors.New("series not found")

// FormatError reports a corrupt or unsupported result file, or a missing field.
type FormatError struct {
	Path  string
	Field string // empty when the container itself is unreadable
	Err   error
}

func (e *FormatError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("format error in %s (field %q): %v", e.Path, e.Field, e.Err)
	}
	return fmt.Sprintf("format error in %s: %v", e.Path, e.Err)
}

func (e *FormatError) Unwrap() []error {
	return []error{ErrInvalidFormat, e.Err}
}

// LookupError reports a required series missing from the SeriesMap.
type LookupError struct {
	Name string
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("series %q not found", e.Name)
}

func (e *LookupError) Unwrap() error {
	return ErrSeriesNotFound
}

// IOError reports a failure reading the input or writing an output file.
type IOError struct {
	Op   string // "open", "create", "write", ...
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// NewFormatError creates a new FormatError.
func NewFormatError(path, field string, err error) *FormatError {
	return &FormatError{Path: path, Field: field, Err: err}
}
