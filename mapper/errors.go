package mapper

import (
	"errors"
	"strings"

	"rdf-mapper/internal/diagnostic"
)

var (
	// ErrValidation matches every *ValidationError.
	ErrValidation = errors.New("validation failed")
	// ErrConfiguration matches every *ConfigurationError.
	ErrConfiguration = errors.New("invalid mapping configuration")
)

// ValidationError carries every problem found while validating an object.
type ValidationError struct {
	Errors []string
}

// NewValidationError returns a ValidationError with the given messages.
func NewValidationError(msgs ...string) *ValidationError {
	return &ValidationError{Errors: msgs}
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Errors, "; ")
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// ConfigurationError reports problems found while building a Definition.
type ConfigurationError struct {
	Definition string
	Problems   []string
	// Diagnostics holds the coded problems when available.
	Diagnostics *diagnostic.Diagnostics
}

// NewConfigurationError builds a ConfigurationError from collected diagnostics.
func NewConfigurationError(definition string, d *diagnostic.Diagnostics) *ConfigurationError {
	return &ConfigurationError{Definition: definition, Problems: d.Messages(), Diagnostics: d}
}

func (e *ConfigurationError) Error() string {
	return "Configuration Error: " + strings.Join(e.Problems, "\n")
}

func (e *ConfigurationError) Is(target error) bool {
	return target == ErrConfiguration
}

// messagesOf flattens err into validation messages.
func messagesOf(err error) []string {
	if err == nil {
		return nil
	}

	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Errors
	}

	return []string{err.Error()}
}
