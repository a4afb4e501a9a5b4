package analyze

import (
	"fmt"
	"go/types"
	"slices"
	"strings"

	"rdf-mapper/schema"
)

// Well-known named types with a dedicated schema kind.
var namedKinds = map[TypeID]schema.Kind{
	{PkgPath: "time", Name: "Time"}:                  schema.KindDateTime,
	{PkgPath: "rdf-mapper/schema", Name: "Date"}:      schema.KindDate,
	{PkgPath: "rdf-mapper/schema", Name: "TimeOfDay"}: schema.KindTime,
	{PkgPath: "github.com/google/uuid", Name: "UUID"}: schema.KindUUID,
}

// Candidates returns the loaded struct types that declare RDF mapping
// information, either an `rdf` field tag or an rdf directive, sorted by ID.
func (g *TypeGraph) Candidates() []TypeID {
	var res []TypeID

	for id, info := range g.Types {
		if info.Kind != TypeKindStruct || !hasMapping(info) {
			continue
		}

		res = append(res, id)
	}

	slices.SortFunc(res, func(a, b TypeID) int {
		return strings.Compare(a.String(), b.String())
	})

	return res
}

func hasMapping(info *TypeInfo) bool {
	if len(info.Directives) > 0 {
		return true
	}

	for i := range info.Fields {
		if info.Fields[i].HasTag("rdf") {
			return true
		}
	}

	return false
}

// Schema converts the named struct id into a schema. Nested structs become
// nested schemas; recursive struct types are rejected.
func (g *TypeGraph) Schema(id TypeID) (*schema.Schema, error) {
	info := g.GetType(id)
	if info == nil {
		return nil, fmt.Errorf("type %s not found", id)
	}

	c := &converter{built: make(map[*TypeInfo]*schema.Schema)}

	return c.structSchema(info, NewTypePath(id.Name))
}

type converter struct {
	stack []*TypeInfo
	built map[*TypeInfo]*schema.Schema
}

func (c *converter) structSchema(info *TypeInfo, path *TypePath) (*schema.Schema, error) {
	if info.Kind != TypeKindStruct {
		return nil, fmt.Errorf("%s: type %s is not a struct (kind: %s)", path, info.ID, info.Kind)
	}

	if s, ok := c.built[info]; ok {
		return s, nil
	}

	if i := slices.Index(c.stack, info); i >= 0 {
		names := make([]string, 0, len(c.stack)-i+1)
		for _, in := range c.stack[i:] {
			names = append(names, in.ID.Name)
		}

		return nil, fmt.Errorf("%s: cyclic struct type %s", path, strings.Join(append(names, info.ID.Name), " -> "))
	}

	c.stack = append(c.stack, info)
	defer func() { c.stack = c.stack[:len(c.stack)-1] }()

	s := schema.New(info.ID.Name)

	opts, err := options(info)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	s.Options = opts

	for i := range info.Fields {
		fi := &info.Fields[i]
		if fi.Embedded || !fi.Exported {
			continue
		}

		tags := parseTags(fi)
		if tags.skip {
			continue
		}

		f, err := c.field(tags.name, fi.Type, path.Field(fi.Name))
		if err != nil {
			return nil, err
		}

		f.Required = tags.required
		s.Fields = append(s.Fields, f)

		if tags.predicate != "" {
			if s.Predicates == nil {
				s.Predicates = make(map[string]string)
			}

			s.Predicates[tags.name] = tags.predicate
		}
	}

	c.built[info] = s

	return s, nil
}

func (c *converter) field(name string, t *TypeInfo, path *TypePath) (*schema.Field, error) {
	for t.Kind == TypeKindPointer {
		t = t.ElemType
		path = path.Pointer()
	}

	if kind, ok := namedKinds[t.ID]; ok {
		return &schema.Field{Name: name, Kind: kind}, nil
	}

	switch t.Kind {
	case TypeKindBasic:
		return &schema.Field{Name: name, Kind: basicKind(t.GoType)}, nil
	case TypeKindAlias:
		return c.field(name, t.Underlying, path)
	case TypeKindStruct:
		nested, err := c.structSchema(t, path)
		if err != nil {
			return nil, err
		}

		return schema.ObjectOf(name, nested), nil
	case TypeKindSlice, TypeKindArray:
		item, err := c.field("", t.ElemType, path.Slice())
		if err != nil {
			return nil, err
		}

		return schema.ListOf(name, []*schema.Field{item}), nil
	case TypeKindMap:
		return &schema.Field{Name: name, Kind: schema.KindMap}, nil
	default:
		return &schema.Field{Name: name, Kind: schema.KindAny}, nil
	}
}

func basicKind(t types.Type) schema.Kind {
	b, ok := t.Underlying().(*types.Basic)
	if !ok {
		return schema.KindAny
	}

	switch info := b.Info(); {
	case info&types.IsString != 0:
		return schema.KindString
	case info&types.IsBoolean != 0:
		return schema.KindBoolean
	case info&types.IsInteger != 0:
		return schema.KindInteger
	case info&types.IsFloat != 0:
		return schema.KindFloat
	default:
		return schema.KindAny
	}
}

// options reads the rdf directives of a type.
func options(info *TypeInfo) (schema.Options, error) {
	opts := schema.Options{Model: info.ID.Name}

	for _, args := range info.Directive("subject") {
		if len(args) != 1 {
			return opts, fmt.Errorf("rdf:subject takes one argument, got %d", len(args))
		}

		opts.RDFSubject = args[0]
	}

	for _, args := range info.Directive("type") {
		if len(args) != 1 {
			return opts, fmt.Errorf("rdf:type takes one argument, got %d", len(args))
		}

		opts.RDFType = args[0]
	}

	for _, args := range info.Directive("prefix") {
		if len(args) != 2 {
			return opts, fmt.Errorf("rdf:prefix takes a prefix and a base IRI, got %d arguments", len(args))
		}

		if opts.RDFPrefixes == nil {
			opts.RDFPrefixes = make(map[string]string)
		}

		opts.RDFPrefixes[args[0]] = args[1]
	}

	return opts, nil
}

type fieldTags struct {
	name      string
	predicate string
	required  bool
	skip      bool
}

// parseTags applies the tag rules of schema.FromStruct to a statically
// loaded field.
func parseTags(f *FieldInfo) fieldTags {
	tags := fieldTags{name: f.JSONName()}

	if f.GetTag("json") == "-" {
		tags.skip = true
		return tags
	}

	for opt := range strings.SplitSeq(f.GetTag("schema"), ",") {
		switch strings.TrimSpace(opt) {
		case "required":
			tags.required = true
		case "-":
			tags.skip = true
		}
	}

	switch p := f.GetTag("rdf"); p {
	case "":
	case "-":
		tags.skip = true
	default:
		tags.predicate = p
	}

	return tags
}

// Unsupported lists the fields of struct id whose converted kind, or list
// element kind, fails supported. s must be the schema Schema returned for id.
// Each entry names the Go field and its type, e.g. "Feed.Refresh: func() string".
func (g *TypeGraph) Unsupported(id TypeID, s *schema.Schema, supported func(schema.Kind) bool) []string {
	info := g.GetType(id)
	if info == nil || s == nil {
		return nil
	}

	var res []string

	for i := range info.Fields {
		fi := &info.Fields[i]
		if fi.Embedded || !fi.Exported {
			continue
		}

		tags := parseTags(fi)
		if tags.skip {
			continue
		}

		f := s.Field(tags.name)
		for f != nil && f.Kind == schema.KindList && len(f.Items) == 1 {
			f = f.Items[0]
		}

		if f == nil || supported(f.Kind) {
			continue
		}

		res = append(res, NewTypePath(id.Name).Field(fi.Name).String()+": "+TypeString(fi.Type))
	}

	return res
}
