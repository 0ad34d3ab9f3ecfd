// Package common provides shared error types used across the application.
package common

import (
	"errors"
	"fmt"
)

// Common application errors.
var (
	// Statement errors.
	ErrNotPDF       = errors.New("not a PDF document")
	ErrNoStatements = errors.New("no statement files found")

	// Report errors.
	ErrInvalidOption = errors.New("invalid option")
)

// ParseError marks a single statement document as unreadable. It is fatal
// for that document only; a batch continues with the remaining files.
type ParseError struct {
	Err  error
	File string
}

func (e *ParseError) Error() string {
	if e.File != "" {
		return fmt.Sprintf("parse %s: %v", e.File, e.Err)
	}
	return fmt.Sprintf("parse statement: %v", e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// NewParseError wraps err as a per-document parse failure.
func NewParseError(file string, err error) error {
	return &ParseError{File: file, Err: err}
}

// InvalidOptionError reports an unsupported report type, sort key or output
// format. Raised before any parsing work happens.
type InvalidOptionError struct {
	Option string
	Value  string
}

func (e *InvalidOptionError) Error() string {
	return fmt.Sprintf("invalid %s: %q", e.Option, e.Value)
}

// Is lets errors.Is match any InvalidOptionError against ErrInvalidOption.
func (e *InvalidOptionError) Is(target error) bool {
	return target == ErrInvalidOption
}

// NewInvalidOption reports an unsupported value for a named option.
func NewInvalidOption(option, value string) error {
	return &InvalidOptionError{Option: option, Value: value}
}
