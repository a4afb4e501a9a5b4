package diagnostic

import (
	"strings"
)

// Codes used across the mapper and the derivation engine.
const (
	CodeMissingPredicate   = "missing_predicate"
	CodeDuplicateField     = "duplicate_field"
	CodeFieldReused        = "field_reused"
	CodeNilField           = "nil_field"
	CodeMissingAllowedType = "missing_allowed_type"
	CodeMissingDefinition  = "missing_definition"
	CodeUnmappedType       = "unmapped_type"
	CodeMultiTypeList      = "multi_type_list"
	CodeCyclicSchema       = "cyclic_schema"
	CodeUnknownOverride    = "unknown_override"
)

// Severity of a diagnostic.
type Severity int

const (
	SeverityWarning Severity = iota
	SeverityError
)

// String returns a human-readable severity name.
func (s Severity) String() string {
	switch s {
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "unknown"
	}
}

// Diagnostic is a single problem report.
type Diagnostic struct {
	Severity Severity
	// Code is a stable identifier for the kind of problem.
	Code string
	// Message is the human-readable description.
	Message string
	// Scope names the mapping definition (if any).
	Scope string
	// Field names the field (if any).
	Field string
	// Suggestions are potential fixes.
	Suggestions []string
}

// String formats the diagnostic as "Scope.Field: message".
func (d Diagnostic) String() string {
	var prefix string

	switch {
	case d.Scope != "" && d.Field != "":
		prefix = d.Scope + "." + d.Field
	case d.Scope != "":
		prefix = d.Scope
	default:
		prefix = d.Field
	}

	msg := d.Message
	if len(d.Suggestions) > 0 {
		msg += " (did you mean " + strings.Join(d.Suggestions, ", ") + "?)"
	}

	if prefix == "" {
		return msg
	}

	return prefix + ": " + msg
}

// Diagnostics holds the problems found during one definition attempt.
type Diagnostics struct {
	Errors   []Diagnostic
	Warnings []Diagnostic
}

// AddError adds an error diagnostic.
func (d *Diagnostics) AddError(code, message, scope, field string) {
	d.Errors = append(d.Errors, Diagnostic{
		Severity: SeverityError,
		Code:     code,
		Message:  message,
		Scope:    scope,
		Field:    field,
	})
}

// AddWarning adds a warning diagnostic with optional suggestions.
func (d *Diagnostics) AddWarning(code, message, scope, field string, suggestions ...string) {
	d.Warnings = append(d.Warnings, Diagnostic{
		Severity:    SeverityWarning,
		Code:        code,
		Message:     message,
		Scope:       scope,
		Field:       field,
		Suggestions: suggestions,
	})
}

// Merge appends the diagnostics of other.
func (d *Diagnostics) Merge(other Diagnostics) {
	d.Errors = append(d.Errors, other.Errors...)
	d.Warnings = append(d.Warnings, other.Warnings...)
}

// HasErrors returns true if there are any error diagnostics.
func (d *Diagnostics) HasErrors() bool {
	return len(d.Errors) > 0
}

// Messages returns the formatted error diagnostics.
func (d *Diagnostics) Messages() []string {
	res := make([]string, 0, len(d.Errors))
	for _, e := range d.Errors {
		res = append(res, e.String())
	}

	return res
}

// Fields returns the field names of the error diagnostics with the given code.
func (d *Diagnostics) Fields(code string) []string {
	var res []string

	for _, e := range d.Errors {
		if e.Code == code {
			res = append(res, e.Field)
		}
	}

	return res
}
