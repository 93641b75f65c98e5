package validation

import (
	"fmt"
	"strings"
)

// FieldError represents a validation error for a specific field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error holds one or more field errors.
type Error struct {
	Fields []FieldError `json:"fields"`
}

// Error returns the combined message of all field errors.
func (e *Error) Error() string {
	messages := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		messages[i] = f.Field + ": " + f.Message
	}
	return "validation failed: " + strings.Join(messages, "; ")
}

// Collector accumulates field errors.
type Collector struct {
	fields []FieldError
}

// New creates a new Collector.
func New() *Collector {
	return &Collector{}
}

// AddError adds a field error.
func (c *Collector) AddError(field, message string) {
	c.fields = append(c.fields, FieldError{Field: field, Message: message})
}

// AddErrorf adds a formatted field error.
func (c *Collector) AddErrorf(field, format string, args ...any) {
	c.AddError(field, fmt.Sprintf(format, args...))
}

// HasErrors returns true if any field errors were collected.
func (c *Collector) HasErrors() bool {
	return len(c.fields) > 0
}

// Err returns the collected errors as a single error, or nil.
func (c *Collector) Err() error {
	if !c.HasErrors() {
		return nil
	}
	return &Error{Fields: c.fields}
}
