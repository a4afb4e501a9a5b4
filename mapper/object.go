package mapper

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/cayleygraph/quad"

	"rdf-mapper/rdf"
)

// ObjectField maps a nested object with its own Definition.
//
// In collapse mode the nested triples are written on the parent subject and no
// predicate is needed. Otherwise a blank node is minted, the nested triples use
// it as subject and one triple links the parent subject to it.
type ObjectField struct {
	fieldBase
	def *Definition
}

// Object returns a field mapping nested values with def. It is not collapsed
// unless Collapse(true) is passed.
func Object(def *Definition, opts ...FieldOption) *ObjectField {
	return &ObjectField{fieldBase: newBase("", "", opts), def: def}
}

// Definition returns the nested mapping.
func (f *ObjectField) Definition() *Definition { return f.def }

func (f *ObjectField) Collapsed() bool { return f.collapsed(false) }

func (f *ObjectField) clone() Field {
	return &ObjectField{fieldBase: f.detached(), def: f.def}
}

func (f *ObjectField) ConfigurationError() string {
	switch {
	case f.def == nil:
		return "An object field MUST wrap a mapping definition."
	case !f.Collapsed() && f.predicate == "":
		return "An object field needs a predicate if not in collapse mode."
	default:
		return ""
	}
}

// Validate checks value with the nested definition, prefixing its messages
// with the field name.
func (f *ObjectField) Validate(value any) error {
	if _, ok := accessorOf(value); !ok {
		return NewValidationError(fmt.Sprintf("%s must be an object, got %T", f.label(), value))
	}

	err := f.def.Bind(value).Validate()
	if err == nil {
		return nil
	}

	msgs := messagesOf(err)
	prefixed := make([]string, len(msgs))

	for i, msg := range msgs {
		prefixed[i] = f.label() + ": " + msg
	}

	return NewValidationError(prefixed...)
}

// BuildGraph builds the nested graph of value with subject as its subject.
func (f *ObjectField) BuildGraph(value any, subject quad.Value) *rdf.Graph {
	return f.def.Bind(value).BuildGraph(subject)
}

// SetField maps a homogeneous collection. Every element is described by one
// allowed field. Sets are collapsed by default.
type SetField struct {
	fieldBase
	allowed Field
}

// Set returns a collection field whose elements are checked and rendered by
// allowed. Pass WithPredicate to name the relation.
func Set(allowed Field, opts ...FieldOption) *SetField {
	return &SetField{fieldBase: newBase("", "", opts), allowed: allowed}
}

// Allowed returns the element field.
func (f *SetField) Allowed() Field { return f.allowed }

func (f *SetField) Collapsed() bool { return f.collapsed(true) }

func (f *SetField) clone() Field {
	return &SetField{fieldBase: f.detached(), allowed: Clone(f.allowed)}
}

func (f *SetField) ConfigurationError() string {
	if f.allowed == nil {
		return "A set field MUST have an allowed type."
	}

	if msg := f.fieldBase.ConfigurationError(); msg != "" {
		return msg
	}

	// elements are emitted under the set's own predicate
	switch el := f.allowed.(type) {
	case *ObjectField:
		if el.def == nil {
			return el.ConfigurationError()
		}
	case *SetField:
		return el.ConfigurationError()
	}

	return ""
}

// attach names the element field after the set and gives it the set's owner.
func (f *SetField) attach(name string, parent *Definition) {
	f.name, f.parent = name, parent
	if f.allowed == nil {
		return
	}

	b := f.allowed.base()
	b.name, b.parent = name, parent

	if set, ok := f.allowed.(*SetField); ok {
		set.attach(name, parent)
	}
}

// Validate checks every element and reports each failing index.
func (f *SetField) Validate(value any) error {
	items, ok := elements(value)
	if !ok {
		return NewValidationError(fmt.Sprintf("%s must be a list, got %T", f.label(), value))
	}

	var errs []string

	for i, item := range items {
		msgs := messagesOf(f.allowed.Validate(item))
		for _, v := range f.allowed.Validators() {
			msgs = append(msgs, messagesOf(v(item))...)
		}

		if len(msgs) > 0 {
			errs = append(errs, fmt.Sprintf("%s[%d] error processing: %s", f.scope(), i, strings.Join(msgs, "; ")))
		}
	}

	if len(errs) > 0 {
		return NewValidationError(errs...)
	}

	return nil
}

// BuildGraph emits every non-nil element of value under the set predicate.
func (f *SetField) BuildGraph(value any, subject quad.Value) *rdf.Graph {
	if subject == nil {
		subject = rdf.NewBlankNode()
	}

	ns := f.namespaces()

	g := rdf.NewGraph()
	for prefix, base := range ns.Prefixes() {
		g.Bind(prefix, base)
	}

	items, _ := elements(value)

	for _, item := range items {
		if item == nil {
			continue
		}

		nested, ok := f.allowed.(GraphField)
		if !ok {
			g.Add(subject, ns.Resolve(f.predicate), objectTerm(ns, f.allowed, item))
			continue
		}

		if nested.Collapsed() {
			g.Merge(nested.BuildGraph(item, subject))
			continue
		}

		node := rdf.NewBlankNode()

		sub := nested.BuildGraph(item, node)
		if sub.Len() == 0 {
			continue
		}

		g.Add(subject, ns.Resolve(f.predicate), node)
		g.Merge(sub)
	}

	return g
}

// elements lists the items of a slice or array. Nil pointers and interfaces
// yield an empty list.
func elements(value any) ([]any, bool) {
	rv := reflect.ValueOf(value)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return nil, true
		}

		rv = rv.Elem()
	}

	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}

	items := make([]any, rv.Len())
	for i := range rv.Len() {
		items[i] = indirect(rv.Index(i))
	}

	return items, true
}
