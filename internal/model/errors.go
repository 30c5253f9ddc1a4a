package model

import (
	"fmt"
	"strings"
)

// MissingFieldsError reports every required top-level key absent from a
// submission, not just the first.
type MissingFieldsError struct {
	Fields []string
}

func (e *MissingFieldsError) Error() string {
	return fmt.Sprintf("missing required fields: %s", strings.Join(e.Fields, ", "))
}

// NewMissingFieldsError creates a new missing-fields error
func NewMissingFieldsError(fields []string) *MissingFieldsError {
	return &MissingFieldsError{Fields: fields}
}

// FormatError reports a payload that could not be parsed as structured
// data, distinct from one that parsed but lacks required fields.
type FormatError struct {
	Message string
	Cause   error
}

func (e *FormatError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("invalid format: %s (%v)", e.Message, e.Cause)
	}
	return fmt.Sprintf("invalid format: %s", e.Message)
}

func (e *FormatError) Unwrap() error {
	return e.Cause
}

// NewFormatError creates a new format error
func NewFormatError(message string, cause error) *FormatError {
	return &FormatError{Message: message, Cause: cause}
}

// RenderError wraps an unexpected failure during document construction so
// the boundary can report it generically without crashing the host.
type RenderError struct {
	Stage   string
	Message string
	Cause   error
}

func (e *RenderError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("render failed [%s]: %s (%v)", e.Stage, e.Message, e.Cause)
	}
	return fmt.Sprintf("render failed [%s]: %s", e.Stage, e.Message)
}

func (e *RenderError) Unwrap() error {
	return e.Cause
}

// NewRenderError creates a new render error
func NewRenderError(stage, message string, cause error) *RenderError {
	return &RenderError{Stage: stage, Message: message, Cause: cause}
}
