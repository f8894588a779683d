package config

import (
	"errors"
	"strings"
)

var (
	// ErrMissingDateFormat means neither trigger.datetime nor datetime_format is set
	ErrMissingDateFormat = errors.New("missing date format")
	// ErrAmbiguousDateFormat means both trigger.datetime and datetime_format are set
	ErrAmbiguousDateFormat = errors.New("both trigger.datetime and datetime_format are set")
	// ErrMutuallyExclusive means validates is combined with a placeholder comment pattern
	ErrMutuallyExclusive = errors.New("validates and comment_regex placeholders are mutually exclusive")
)

// ConfigError is a fatal configuration problem reported before any scan starts
type ConfigError struct {
	Field   string // Config key at fault, empty when not tied to one key
	Message string // Human-readable explanation
	Err     error  // Underlying cause (optional)
}

// Error implements the error interface for ConfigError.
func (e *ConfigError) Error() string {
	var sb strings.Builder
	sb.WriteString("invalid configuration")
	if e.Field != "" {
		sb.WriteString(": ")
		sb.WriteString(e.Field)
	}
	if e.Message != "" {
		sb.WriteString(": ")
		sb.WriteString(e.Message)
	}
	if e.Err != nil {
		sb.WriteString(": ")
		sb.WriteString(e.Err.Error())
	}
	return sb.String()
}

// Unwrap returns the underlying cause for errors.Is / errors.As.
func (e *ConfigError) Unwrap() error {
	return e.Err
}
