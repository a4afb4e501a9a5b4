package derive

import (
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"rdf-mapper/internal/diagnostic"
	"rdf-mapper/internal/match"
	"rdf-mapper/mapper"
	"rdf-mapper/schema"
)

// Derive builds a Definition equivalent to s.
//
// Fields listed in the override table with a Custom field are used verbatim.
// Every other field is mapped by kind; the field named by the subject option
// becomes a required IRI field. Nested object schemas are derived
// recursively with their own predicate tables and options. s is not modified.
func Derive(s *schema.Schema, opts ...Option) (*mapper.Definition, error) {
	o := options{logger: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		opt(&o)
	}

	if s == nil {
		return nil, fmt.Errorf("derive: nil schema")
	}

	d := &deriver{
		logger: o.logger,
		nested: make(map[*schema.Schema]*mapper.Definition),
	}

	cfg := ConfigOf(s.Options)
	if o.config != nil {
		cfg = o.config.Clone()
	}

	name := o.name
	if name == "" {
		name = DefinitionName(s)
	}

	return d.definition(s, name, cfg, o.overrides)
}

// MustDerive is Derive that panics on error.
func MustDerive(s *schema.Schema, opts ...Option) *mapper.Definition {
	def, err := Derive(s, opts...)
	if err != nil {
		panic(err)
	}

	return def
}

// ConfigOf computes the mapping configuration of schema options.
func ConfigOf(o schema.Options) mapper.Config {
	return mapper.Config{
		Subject:  o.RDFSubject,
		Prefixes: o.Clone().RDFPrefixes,
		Type:     o.RDFType,
	}
}

// DefinitionName returns the name of the definition derived from s.
func DefinitionName(s *schema.Schema) string {
	return "Rdf" + s.Name
}

type deriver struct {
	logger *slog.Logger
	// stack holds the schemas being derived, outermost first.
	stack  []*schema.Schema
	nested map[*schema.Schema]*mapper.Definition
}

func (d *deriver) definition(s *schema.Schema, name string, cfg mapper.Config, overrides Overrides) (*mapper.Definition, error) {
	if err := s.Check(); err != nil {
		return nil, fmt.Errorf("derive %s: %w", name, err)
	}

	if slices.Contains(d.stack, s) {
		return nil, d.cycle(name, s)
	}

	d.stack = append(d.stack, s)
	defer func() { d.stack = d.stack[:len(d.stack)-1] }()

	var diags diagnostic.Diagnostics

	diags.Merge(checkOverrides(s, name, overrides))

	fields := make([]mapper.NamedField, 0, len(s.Fields)+len(overrides))

	for _, sf := range s.Fields {
		if o, ok := overrides[sf.Name]; ok && o.Field != nil {
			continue
		}

		if sf.Name == cfg.Subject {
			fields = append(fields, mapper.Named(sf.Name, mapper.IRI(mapper.Required())))
			continue
		}

		f, err := d.field(s, sf, predicateOf(s, overrides, sf.Name))
		if err != nil {
			return nil, err
		}

		fields = append(fields, mapper.Named(sf.Name, f))
	}

	// custom fields follow the derived ones in name order; the caller keeps
	// ownership of the override table
	for _, key := range sortedKeys(overrides) {
		if o := overrides[key]; o.Field != nil {
			fields = append(fields, mapper.Named(key, mapper.Clone(o.Field)))
		}
	}

	var missing []string

	for _, nf := range fields {
		if nf.Name == cfg.Subject || nf.Field == nil {
			continue
		}

		if msg := nf.Field.ConfigurationError(); msg != "" {
			diags.AddError(diagnostic.CodeMissingPredicate, msg, name, nf.Name)
			missing = append(missing, nf.Name)
		}
	}

	for _, w := range diags.Warnings {
		d.logger.Warn("override ignored", "definition", name, "field", w.Field, "problem", w.String())
	}

	if len(missing) > 0 {
		return nil, &mapper.ConfigurationError{
			Definition:  name,
			Problems:    []string{"The following fields don't have predicates: " + strings.Join(missing, ", ")},
			Diagnostics: &diags,
		}
	}

	return mapper.NewDefinition(name, fields, cfg, mapper.WithLogger(d.logger))
}

// checkOverrides warns about predicate overrides naming no schema field.
func checkOverrides(s *schema.Schema, name string, overrides Overrides) diagnostic.Diagnostics {
	var diags diagnostic.Diagnostics

	names := s.Names()

	for _, key := range sortedKeys(overrides) {
		if overrides[key].Field != nil || s.Field(key) != nil {
			continue
		}

		var suggestions []string
		if best, ok := match.Suggest(key, names); ok {
			suggestions = append(suggestions, best)
		}

		diags.AddWarning(diagnostic.CodeUnknownOverride, "Override names no schema field.", name, key, suggestions...)
	}

	return diags
}

func (d *deriver) cycle(name string, s *schema.Schema) error {
	start := slices.Index(d.stack, s)

	path := make([]string, 0, len(d.stack)-start+1)
	for _, in := range d.stack[start:] {
		path = append(path, in.Name)
	}

	path = append(path, s.Name)

	var diags diagnostic.Diagnostics
	diags.AddError(diagnostic.CodeCyclicSchema, "Cyclic schema "+strings.Join(path, " -> ")+".", name, "")

	return mapper.NewConfigurationError(name, &diags)
}

func predicateOf(s *schema.Schema, overrides Overrides, name string) string {
	if o, ok := overrides[name]; ok && o.Predicate != "" {
		return o.Predicate
	}

	return s.Predicates[name]
}

func sortedKeys(o Overrides) []string {
	keys := make([]string, 0, len(o))
	for k := range o {
		keys = append(keys, k)
	}

	slices.Sort(keys)

	return keys
}
