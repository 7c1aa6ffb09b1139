package config

import "fmt"

// ValidationError describes an invalid configuration value.
type ValidationError struct {
	// Field is the dotted path of the invalid field (e.g., "output.format").
	Field string

	// Message describes what is wrong with the value.
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("config: %s: %s", e.Field, e.Message)
}
