package config

import (
	"errors"
	"fmt"
)

// ErrConfig is matched by every *ConfigError through errors.Is.
var ErrConfig = errors.New("configuration error")

// ConfigError describes a missing or invalid configuration value.
type ConfigError struct {
	// Key is the environment variable or file path at fault.
	Key string
	// Reason is a short human readable description.
	Reason string
	// Err is the underlying cause, if any.
	Err error
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Key, e.Reason, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Key, e.Reason)
}

// Unwrap returns the underlying cause.
func (e *ConfigError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrConfig.
func (e *ConfigError) Is(target error) bool {
	return target == ErrConfig
}
