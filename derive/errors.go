package derive

import (
	"fmt"

	"rdf-mapper/internal/diagnostic"
	"rdf-mapper/mapper"
	"rdf-mapper/schema"
)

// FieldTypeMappingError reports a schema field whose kind has no mapper field.
type FieldTypeMappingError struct {
	Schema string
	Field  string
	Kind   schema.Kind
	// Diagnostics holds the problem under the unmapped_type code.
	Diagnostics *diagnostic.Diagnostics
}

func newFieldTypeMappingError(owner *schema.Schema, f *schema.Field) *FieldTypeMappingError {
	e := &FieldTypeMappingError{Schema: owner.Name, Field: f.Name, Kind: f.Kind}

	var diags diagnostic.Diagnostics
	diags.AddError(diagnostic.CodeUnmappedType, e.Error(), DefinitionName(owner), f.Name)
	e.Diagnostics = &diags

	return e
}

func (e *FieldTypeMappingError) Error() string {
	return fmt.Sprintf("Unable to map field of type %s (%s.%s)", e.Kind, e.Schema, e.Field)
}

// Is makes the error match mapper.ErrConfiguration.
func (e *FieldTypeMappingError) Is(target error) bool {
	return target == mapper.ErrConfiguration
}
