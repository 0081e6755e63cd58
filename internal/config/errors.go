package config

import (
	"fmt"
)

// Error describes an invalid configuration value.
type Error struct {
	// Field is the TOML key of the offending setting
	Field string
	// Value is the rejected value (optional)
	Value interface{}
	// Err is the underlying error
	Err error
}

func (e *Error) Error() string {
	if e.Value != nil {
		return fmt.Sprintf("config field '%s' (value: %v): %v", e.Field, e.Value, e.Err)
	}
	return fmt.Sprintf("config field '%s': %v", e.Field, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}
