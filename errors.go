package a11ycheck

import (
	"errors"
	"strings"
)

var (
	// ErrMissingHost is returned by Install when no host is given.
	ErrMissingHost = errors.New("missing host")

	// ErrNoConstructor is returned by Install when the host has no
	// construction entry point.
	ErrNoConstructor = errors.New("host exposes no construction entry point")
)

// ConfigurationError means the checks could not be installed.
type ConfigurationError struct {
	Err error
}

func (e *ConfigurationError) Error() string {
	return "install accessibility checks: " + e.Err.Error()
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

// ValidationFailure is a failed rule reported in fatal mode.
type ValidationFailure struct {
	ElementName string
	ElementID   string
	Message     string

	// WithID is set when the element id is a part of the error text.
	WithID bool
}

// Error returns "<name> <message>" followed by " <id>" when WithID is set.
func (e *ValidationFailure) Error() string {
	parts := []string{e.ElementName, e.Message}
	if e.WithID {
		parts = append(parts, e.ElementID)
	}
	return strings.Join(parts, " ")
}
