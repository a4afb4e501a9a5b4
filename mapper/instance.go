package mapper

import (
	"fmt"
	"reflect"

	"github.com/cayleygraph/quad"

	"rdf-mapper/rdf"
)

// Instance is a Definition bound to one object. It is cheap to create and
// holds nothing but the object accessor.
type Instance struct {
	def *Definition
	obj Accessor
}

// Bind returns an Instance reading obj through AccessorFor.
func (d *Definition) Bind(obj any) *Instance {
	return &Instance{def: d, obj: AccessorFor(obj)}
}

func (in *Instance) Definition() *Definition { return in.def }

// Validate checks every field of the bound object and reports all problems in
// one *ValidationError.
//
// A required field must be present and truthy. A present non-nil value is
// checked by its field and then by every attached validator.
func (in *Instance) Validate() error {
	var errs []string

	for _, f := range in.def.fields {
		name := f.Name()
		has := in.obj.Has(name)
		value := in.obj.Get(name)

		if f.Required() {
			switch {
			case !has:
				errs = append(errs, fmt.Sprintf("Field %s is missing from object.", name))
			case isFalsy(value):
				errs = append(errs, fmt.Sprintf("Field %s cannot be None.", name))
			}
		}

		if !has || value == nil {
			continue
		}

		errs = append(errs, messagesOf(f.Validate(value))...)

		for _, v := range f.Validators() {
			errs = append(errs, messagesOf(v(value))...)
		}
	}

	if len(errs) > 0 {
		return NewValidationError(errs...)
	}

	return nil
}

// BuildGraph emits the triples of the bound object. It does not validate;
// invalid values still produce best-effort triples.
//
// subject overrides the configured subject: an IRI or blank node term is used
// verbatim, a string starting with "_:" names a blank node and any other
// string is an IRI. Literal terms are ignored. With no override the subject
// field is rendered, and without a subject field a blank node is minted.
func (in *Instance) BuildGraph(subject any) *rdf.Graph {
	d := in.def
	node, explicit := in.subjectNode(subject)

	g := rdf.NewGraph()
	for prefix, base := range d.ns.Prefixes() {
		g.Bind(prefix, base)
	}

	for _, f := range d.fields {
		// an overridden subject frees the subject field to be a plain value
		if f == d.subject && (!explicit || f.Predicate() == "") {
			continue
		}

		value := in.obj.Get(f.Name())
		if value == nil {
			d.logger.Debug("skipping absent value", "definition", d.name, "field", f.Name())
			continue
		}

		nested, ok := f.(GraphField)
		if !ok {
			g.Add(node, d.ns.Resolve(f.Predicate()), objectTerm(d.ns, f, value))
			continue
		}

		if nested.Collapsed() {
			g.Merge(nested.BuildGraph(value, node))
			continue
		}

		bnode := rdf.NewBlankNode()

		sub := nested.BuildGraph(value, bnode)
		if sub.Len() == 0 {
			continue
		}

		g.Add(node, d.ns.Resolve(f.Predicate()), bnode)
		g.Merge(sub)
	}

	if d.cfg.Type != "" {
		g.Add(node, rdf.Type, d.ns.Resolve(d.cfg.Type))
	}

	return g
}

// subjectNode resolves the subject and reports whether it was given explicitly.
func (in *Instance) subjectNode(subject any) (quad.Value, bool) {
	switch s := subject.(type) {
	case quad.Value:
		if rdf.IsNode(s) {
			return s, true
		}

		in.def.logger.Debug("subject is not a node, using the configured subject", "definition", in.def.name, "subject", s)
	case string:
		if s != "" {
			return rdf.ParseNode(s), true
		}
	}

	d := in.def
	if d.subject == nil {
		return rdf.NewBlankNode(), false
	}

	raw := d.subject.Render(in.obj.Get(d.subject.Name()))
	if lexical, _ := rdf.Lexical(raw); lexical != "" {
		return rdf.ParseNode(lexical), false
	}

	d.logger.Debug("subject value missing, using a blank node", "definition", d.name, "field", d.subject.Name())

	return rdf.NewBlankNode(), false
}

// isFalsy reports zero values the way a required check sees them: nil, false,
// zero numbers, empty strings and empty collections.
func isFalsy(value any) bool {
	if value == nil {
		return true
	}

	rv := reflect.ValueOf(value)

	switch rv.Kind() {
	case reflect.Slice, reflect.Map, reflect.Array, reflect.String:
		return rv.Len() == 0
	case reflect.Bool, reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Float32, reflect.Float64:
		return rv.IsZero()
	default:
		return false
	}
}
