package schema

import (
	"fmt"
	"strings"
)

// InvalidTypeError reports values that do not fit a field's kind.
type InvalidTypeError struct {
	Errors []string
}

func newInvalidType(format string, args ...any) *InvalidTypeError {
	return &InvalidTypeError{Errors: []string{fmt.Sprintf(format, args...)}}
}

// Error joins all messages.
func (e *InvalidTypeError) Error() string {
	return strings.Join(e.Errors, "; ")
}
