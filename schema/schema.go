package schema

import (
	"fmt"
	"maps"
)

// Options carries the schema-level configuration consumed by RDF derivation.
type Options struct {
	// Model names the object type the schema serializes.
	Model string `yaml:"model,omitempty"`
	// RDFSubject names the attribute holding the subject IRI.
	RDFSubject string `yaml:"rdf_subject,omitempty"`
	// RDFPrefixes maps prefixes to base IRIs.
	RDFPrefixes map[string]string `yaml:"rdf_prefixes,omitempty"`
	// RDFType is emitted as the rdf:type of every subject.
	RDFType string `yaml:"rdf_type,omitempty"`
}

// Clone returns a deep copy of o.
func (o Options) Clone() Options {
	o.RDFPrefixes = maps.Clone(o.RDFPrefixes)
	return o
}

// Schema is an ordered set of fields.
type Schema struct {
	Name    string
	Fields  []*Field
	Options Options
	// Predicates maps attribute names to RDF predicates (possibly prefixed).
	// The value "@collapse" on an object field requests collapse mode.
	Predicates map[string]string
}

// New returns a schema with the given fields in order.
func New(name string, fields ...*Field) *Schema {
	return &Schema{Name: name, Fields: fields}
}

// WithOptions sets the schema options and returns s.
func (s *Schema) WithOptions(o Options) *Schema {
	s.Options = o
	return s
}

// WithPredicates sets the predicate table and returns s.
func (s *Schema) WithPredicates(p map[string]string) *Schema {
	s.Predicates = p
	return s
}

// Field returns the field with the given attribute name, or nil.
func (s *Schema) Field(name string) *Field {
	for _, f := range s.Fields {
		if f.Name == name {
			return f
		}
	}

	return nil
}

// Names returns the attribute names in declaration order.
func (s *Schema) Names() []string {
	names := make([]string, 0, len(s.Fields))
	for _, f := range s.Fields {
		names = append(names, f.Name)
	}

	return names
}

// Check reports structural problems: unnamed or duplicate fields, object
// fields without a schema and list fields without element types.
func (s *Schema) Check() error {
	seen := make(map[string]struct{}, len(s.Fields))

	for i, f := range s.Fields {
		if f == nil {
			return fmt.Errorf("schema %s: field %d is nil", s.Name, i)
		}

		if f.Name == "" {
			return fmt.Errorf("schema %s: field %d has no name", s.Name, i)
		}

		if _, ok := seen[f.Name]; ok {
			return fmt.Errorf("schema %s: duplicate field %q", s.Name, f.Name)
		}

		seen[f.Name] = struct{}{}

		if f.Kind == KindObject && f.Schema == nil {
			return fmt.Errorf("schema %s: object field %q has no schema", s.Name, f.Name)
		}

		if f.Kind == KindList && len(f.Items) == 0 {
			return fmt.Errorf("schema %s: list field %q has no item type", s.Name, f.Name)
		}
	}

	return nil
}
