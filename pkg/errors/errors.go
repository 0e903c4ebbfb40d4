package errors

import (
	"fmt"
	"strings"
)

// ParseError represents a config decoding failure with optional line metadata.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Line: line, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}

	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error: %s: %s", e.Path, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError captures configuration validation issues.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// OptionError reports a value outside an option's fixed set of members.
type OptionError struct {
	Option  string
	Value   string
	Allowed []string
}

// NewOptionError constructs an OptionError for the named option.
func NewOptionError(option, value string, allowed []string) error {
	return &OptionError{Option: option, Value: value, Allowed: append([]string(nil), allowed...)}
}

func (e *OptionError) Error() string {
	if e == nil {
		return ""
	}
	if len(e.Allowed) == 0 {
		return fmt.Sprintf("invalid %s %q", e.Option, e.Value)
	}
	return fmt.Sprintf("invalid %s %q (expected one of: %s)", e.Option, e.Value, strings.Join(e.Allowed, ", "))
}
