package mapper

import (
	"slices"

	"github.com/cayleygraph/quad"

	"rdf-mapper/rdf"
	"rdf-mapper/schema"
)

// Validator is an extra check run on a present field value.
// Returning a *ValidationError contributes all of its messages.
type Validator = schema.Validator

// Field maps one attribute of an object to RDF.
type Field interface {
	// Name is the attribute name, assigned when the field joins a Definition.
	Name() string
	// Predicate is the possibly prefixed predicate the field fills.
	Predicate() string
	Required() bool
	// Datatype is empty, "@id" for IRI objects, or a possibly prefixed datatype IRI.
	Datatype() string
	Language() string
	Validators() []Validator
	// Validate checks a present value; it never panics on foreign types.
	Validate(value any) error
	// Render converts a value to the primitive placed in the object position.
	Render(value any) any
	// ConfigurationError describes a configuration problem, or returns "".
	ConfigurationError() string

	base() *fieldBase
	clone() Field
}

// GraphField is implemented by fields that produce triples of their own.
type GraphField interface {
	Field
	Collapsed() bool
	BuildGraph(value any, subject quad.Value) *rdf.Graph
}

type fieldBase struct {
	name       string
	predicate  string
	required   bool
	datatype   string
	language   string
	validators []Validator
	iri        bool
	collapse   *bool
	parent     *Definition
}

func (b *fieldBase) Name() string            { return b.name }
func (b *fieldBase) Predicate() string       { return b.predicate }
func (b *fieldBase) Required() bool          { return b.required }
func (b *fieldBase) Datatype() string        { return b.datatype }
func (b *fieldBase) Language() string        { return b.language }
func (b *fieldBase) Validators() []Validator { return b.validators }
func (b *fieldBase) Render(value any) any    { return value }
func (b *fieldBase) base() *fieldBase        { return b }

func (b *fieldBase) ConfigurationError() string {
	if b.predicate == "" {
		return "A predicate MUST be provided."
	}

	return ""
}

// detached copies b without its name and owner.
func (b fieldBase) detached() fieldBase {
	b.name, b.parent = "", nil
	b.validators = slices.Clone(b.validators)

	return b
}

// Clone returns a copy of f that belongs to no Definition, so it can be
// declared again. The element of a Set is copied as well; nested Object
// definitions are shared.
func Clone(f Field) Field {
	if f == nil {
		return nil
	}

	return f.clone()
}

func (b *fieldBase) label() string {
	if b.name == "" {
		return "value"
	}

	return b.name
}

// namespaces returns the resolver of the owning definition.
func (b *fieldBase) namespaces() *Namespaces {
	if b.parent == nil {
		return nil
	}

	return b.parent.ns
}

func (b *fieldBase) scope() string {
	if b.parent == nil {
		return b.label()
	}

	return b.parent.name + "." + b.label()
}

func (b *fieldBase) collapsed(def bool) bool {
	if b.collapse == nil {
		return def
	}

	return *b.collapse
}

// FieldOption configures a field.
type FieldOption func(*fieldBase)

// Required marks the field as required.
func Required() FieldOption {
	return func(b *fieldBase) { b.required = true }
}

// WithPredicate sets the predicate of fields whose constructor does not take one.
func WithPredicate(predicate string) FieldOption {
	return func(b *fieldBase) { b.predicate = predicate }
}

// WithDatatype overrides the literal datatype. "@id" makes the object an IRI.
func WithDatatype(datatype string) FieldOption {
	return func(b *fieldBase) { b.datatype = datatype }
}

// WithLanguage tags literals with a BCP-47 language. Tagged literals carry no datatype.
func WithLanguage(lang string) FieldOption {
	return func(b *fieldBase) { b.language = lang }
}

// WithValidators adds validators run after the field's own check.
func WithValidators(v ...Validator) FieldOption {
	return func(b *fieldBase) { b.validators = append(b.validators, v...) }
}

// Collapse sets collapse mode on Object and Set fields.
func Collapse(collapse bool) FieldOption {
	return func(b *fieldBase) { b.collapse = &collapse }
}

// AsIRI renders UUID fields as urn:uuid IRIs.
func AsIRI() FieldOption {
	return func(b *fieldBase) {
		b.iri = true
		b.datatype = rdf.IDDatatype
	}
}

func newBase(predicate, datatype string, opts []FieldOption) fieldBase {
	b := fieldBase{predicate: predicate, datatype: datatype}
	for _, opt := range opts {
		opt(&b)
	}

	return b
}

// leafCheck runs the schema kind check and re-wraps its error.
func leafCheck(kind schema.Kind, name string, value any) error {
	leaf := schema.Field{Name: name, Kind: kind}

	_, err := leaf.ObjectToData(value)
	if err == nil {
		return nil
	}

	if ite, ok := err.(*schema.InvalidTypeError); ok {
		return NewValidationError(ite.Errors...)
	}

	return NewValidationError(err.Error())
}

// objectTerm renders value through f and builds the object term: an IRI when
// the datatype is "@id", a literal otherwise. Datatypes starting with "@" are
// never emitted as datatype IRIs.
func objectTerm(ns *Namespaces, f Field, value any) quad.Value {
	raw := f.Render(value)
	dt := f.Datatype()

	if dt == rdf.IDDatatype {
		lexical, _ := rdf.Lexical(raw)
		return quad.IRI(lexical)
	}

	var datatype quad.IRI
	if dt != "" && dt[0] != '@' {
		datatype = ns.Resolve(dt)
	}

	return rdf.NewLiteral(raw, f.Language(), datatype)
}
