package loader

import "fmt"

// ParseError describes a config file that failed to parse.
type ParseError struct {
	// Path is the file that failed to parse.
	Path string

	// Err is the underlying parse error.
	Err error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing config file %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}
