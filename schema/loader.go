package schema

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Document is a YAML file declaring one or more schemas.
type Document struct {
	Version string      `yaml:"version"`
	Schemas []SchemaDef `yaml:"schemas"`
}

// SchemaDef is the YAML form of a Schema.
type SchemaDef struct {
	Name    string            `yaml:"name"`
	Options Options           `yaml:"options,omitempty"`
	RDF     map[string]string `yaml:"rdf,omitempty"`
	Fields  []FieldDef        `yaml:"fields"`
}

// FieldDef is the YAML form of a Field. Object fields reference another
// schema of the same document by name.
type FieldDef struct {
	Name     string     `yaml:"name,omitempty"`
	Key      string     `yaml:"key,omitempty"`
	Type     string     `yaml:"type"`
	Required bool       `yaml:"required,omitempty"`
	Items    []FieldDef `yaml:"items,omitempty"`
	Schema   string     `yaml:"schema,omitempty"`
}

// LoadFile loads and parses a YAML schema document from the given path.
func LoadFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read schema file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into a Document.
func Parse(data []byte) (*Document, error) {
	var doc Document

	err := yaml.Unmarshal(data, &doc)
	if err != nil {
		return nil, fmt.Errorf("failed to parse schema YAML: %w", err)
	}

	applyDefaults(&doc)

	return &doc, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(doc *Document) {
	if doc.Version == "" {
		doc.Version = "1"
	}

	for i := range doc.Schemas {
		if doc.Schemas[i].Options.Model == "" {
			doc.Schemas[i].Options.Model = doc.Schemas[i].Name
		}
	}
}

// Marshal serializes a Document to YAML.
func Marshal(doc *Document) ([]byte, error) {
	return yaml.Marshal(doc)
}

// Build resolves every schema of the document, linking object fields to the
// schemas they name.
func (d *Document) Build() (map[string]*Schema, error) {
	b := &builder{
		defs:  make(map[string]*SchemaDef, len(d.Schemas)),
		built: make(map[string]*Schema, len(d.Schemas)),
	}

	for i := range d.Schemas {
		def := &d.Schemas[i]
		if def.Name == "" {
			return nil, fmt.Errorf("schema %d has no name", i)
		}

		if _, ok := b.defs[def.Name]; ok {
			return nil, fmt.Errorf("duplicate schema %q", def.Name)
		}

		b.defs[def.Name] = def
	}

	for i := range d.Schemas {
		if _, err := b.schema(d.Schemas[i].Name); err != nil {
			return nil, err
		}
	}

	return b.built, nil
}

// Lookup builds the document and returns the named schema.
func (d *Document) Lookup(name string) (*Schema, error) {
	all, err := d.Build()
	if err != nil {
		return nil, err
	}

	s, ok := all[name]
	if !ok {
		return nil, fmt.Errorf("schema %q not found", name)
	}

	return s, nil
}

type builder struct {
	defs  map[string]*SchemaDef
	built map[string]*Schema
	stack []string
}

func (b *builder) schema(name string) (*Schema, error) {
	if s, ok := b.built[name]; ok {
		return s, nil
	}

	for i, n := range b.stack {
		if n == name {
			return nil, fmt.Errorf("cyclic schema reference %s", strings.Join(append(b.stack[i:], name), " -> "))
		}
	}

	def, ok := b.defs[name]
	if !ok {
		return nil, fmt.Errorf("schema %q not found", name)
	}

	b.stack = append(b.stack, name)
	defer func() { b.stack = b.stack[:len(b.stack)-1] }()

	s := New(def.Name)
	s.Options = def.Options.Clone()

	if len(def.RDF) > 0 {
		s.Predicates = make(map[string]string, len(def.RDF))
		for k, v := range def.RDF {
			s.Predicates[k] = v
		}
	}

	for i := range def.Fields {
		f, err := b.field(&def.Fields[i])
		if err != nil {
			return nil, fmt.Errorf("schema %s: field %q: %w", def.Name, def.Fields[i].Name, err)
		}

		s.Fields = append(s.Fields, f)
	}

	if err := s.Check(); err != nil {
		return nil, err
	}

	b.built[name] = s

	return s, nil
}

func (b *builder) field(def *FieldDef) (*Field, error) {
	kind, err := ParseKind(def.Type)
	if err != nil {
		return nil, err
	}

	f := newField(def.Name, kind, nil)
	f.Required = def.Required
	f.DataName = def.Key

	switch kind {
	case KindObject:
		if def.Schema == "" {
			return nil, fmt.Errorf("object field needs a schema reference")
		}

		nested, err := b.schema(def.Schema)
		if err != nil {
			return nil, err
		}

		f.Schema = nested

	case KindList:
		for i := range def.Items {
			item, err := b.field(&def.Items[i])
			if err != nil {
				return nil, fmt.Errorf("item %d: %w", i, err)
			}

			f.Items = append(f.Items, item)
		}
	}

	return f, nil
}
