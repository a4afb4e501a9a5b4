package mapper

import (
	"fmt"
	"log/slog"
	"maps"

	"rdf-mapper/internal/diagnostic"
	"rdf-mapper/rdf"
)

// Config is the RDF configuration of a Definition.
type Config struct {
	// Subject names the field whose rendered value is the subject IRI.
	// An undeclared subject field is added as a required IRI field.
	Subject string
	// Prefixes binds prefix names to base IRIs.
	Prefixes map[string]string
	// Type, when set, is emitted as the rdf:type of the subject.
	Type string
}

// Clone returns a deep copy of c.
func (c Config) Clone() Config {
	c.Prefixes = maps.Clone(c.Prefixes)
	return c
}

// NamedField pairs an attribute name with its field.
type NamedField struct {
	Name  string
	Field Field
}

// Named is shorthand for a NamedField literal.
func Named(name string, f Field) NamedField {
	return NamedField{Name: name, Field: f}
}

// Definition is an immutable mapping from one object shape to RDF triples.
// It is safe for concurrent use once built.
type Definition struct {
	name    string
	fields  []Field
	byName  map[string]Field
	subject Field
	cfg     Config
	ns      *Namespaces
	logger  *slog.Logger
}

// DefinitionOption configures a Definition.
type DefinitionOption func(*Definition)

// WithLogger sets the logger used while building graphs.
func WithLogger(l *slog.Logger) DefinitionOption {
	return func(d *Definition) {
		if l != nil {
			d.logger = l
		}
	}
}

// NewDefinition builds a Definition from fields in declaration order.
//
// Every problem found is reported at once in a *ConfigurationError: nil or
// duplicate fields, fields already owned by another definition, and fields
// reporting their own configuration errors. The subject field is exempt from
// the predicate requirement.
func NewDefinition(name string, fields []NamedField, cfg Config, opts ...DefinitionOption) (*Definition, error) {
	d := &Definition{
		name:   name,
		byName: make(map[string]Field, len(fields)+1),
		cfg:    cfg.Clone(),
		logger: slog.New(slog.DiscardHandler),
	}

	for _, opt := range opts {
		opt(d)
	}

	d.ns = NewNamespaces(d.cfg.Prefixes)

	var diags diagnostic.Diagnostics

	declared := make([]NamedField, 0, len(fields)+1)

	for _, nf := range fields {
		switch {
		case nf.Field == nil:
			diags.AddError(diagnostic.CodeNilField, "Field MUST not be nil.", name, nf.Name)
			continue
		case nf.Name == "":
			diags.AddError(diagnostic.CodeNilField, "Field MUST have a name.", name, nf.Name)
			continue
		}

		if _, dup := d.byName[nf.Name]; dup {
			diags.AddError(diagnostic.CodeDuplicateField, "Field is declared more than once.", name, nf.Name)
			continue
		}

		if owner := nf.Field.base().parent; owner != nil {
			diags.AddError(diagnostic.CodeFieldReused,
				fmt.Sprintf("Field already belongs to %s.", owner.name), name, nf.Name)
			continue
		}

		d.byName[nf.Name] = nf.Field
		declared = append(declared, nf)
	}

	if cfg.Subject != "" {
		if _, ok := d.byName[cfg.Subject]; !ok {
			nf := Named(cfg.Subject, IRI(Required()))
			d.byName[nf.Name] = nf.Field
			declared = append(declared, nf)
		}

		d.subject = d.byName[cfg.Subject]
	}

	for _, nf := range declared {
		if nf.Field == d.subject {
			continue
		}

		if msg := nf.Field.ConfigurationError(); msg != "" {
			diags.AddError(configCode(nf.Field), msg, name, nf.Name)
		}
	}

	if diags.HasErrors() {
		return nil, NewConfigurationError(name, &diags)
	}

	d.fields = make([]Field, 0, len(declared))
	for _, nf := range declared {
		attach(nf.Field, nf.Name, d)
		d.fields = append(d.fields, nf.Field)
	}

	return d, nil
}

// MustNewDefinition is NewDefinition that panics on error. It is meant for
// package-level definitions.
func MustNewDefinition(name string, fields []NamedField, cfg Config, opts ...DefinitionOption) *Definition {
	d, err := NewDefinition(name, fields, cfg, opts...)
	if err != nil {
		panic(err)
	}

	return d
}

func attach(f Field, name string, parent *Definition) {
	if set, ok := f.(*SetField); ok {
		set.attach(name, parent)
		return
	}

	b := f.base()
	b.name, b.parent = name, parent
}

func configCode(f Field) string {
	switch v := f.(type) {
	case *SetField:
		if v.allowed == nil {
			return diagnostic.CodeMissingAllowedType
		}
	case *ObjectField:
		if v.def == nil {
			return diagnostic.CodeMissingDefinition
		}
	}

	return diagnostic.CodeMissingPredicate
}

func (d *Definition) Name() string { return d.name }

func (d *Definition) String() string { return d.name }

// Fields returns the fields in declaration order, the implicit subject last.
func (d *Definition) Fields() []Field {
	return append([]Field(nil), d.fields...)
}

// Field returns the field declared under name.
func (d *Definition) Field(name string) (Field, bool) {
	f, ok := d.byName[name]
	return f, ok
}

// SubjectField returns the subject field, or nil.
func (d *Definition) SubjectField() Field { return d.subject }

func (d *Definition) Config() Config { return d.cfg.Clone() }

func (d *Definition) Namespaces() *Namespaces { return d.ns }

// Validate binds obj and validates it.
func (d *Definition) Validate(obj any) error {
	return d.Bind(obj).Validate()
}

// BuildGraph binds obj and builds its graph with the configured subject.
func (d *Definition) BuildGraph(obj any) *rdf.Graph {
	return d.Bind(obj).BuildGraph(nil)
}
