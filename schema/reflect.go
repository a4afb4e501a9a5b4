package schema

import (
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Optioner is implemented by struct types that declare their own schema options.
type Optioner interface {
	SchemaOptions() Options
}

var (
	timeType      = reflect.TypeFor[time.Time]()
	dateType      = reflect.TypeFor[Date]()
	timeOfDayType = reflect.TypeFor[TimeOfDay]()
	uuidType      = reflect.TypeFor[uuid.UUID]()
	optionerType  = reflect.TypeFor[Optioner]()
)

// FromStruct builds a schema from the struct type of v (a struct value, a
// pointer to one, or a reflect.Type). Nested struct types become nested
// schemas. A struct type that contains itself, directly or not, is rejected.
func FromStruct(v any) (*Schema, error) {
	t, ok := v.(reflect.Type)
	if !ok {
		t = reflect.TypeOf(v)
	}

	if t == nil {
		return nil, fmt.Errorf("schema: cannot reflect nil")
	}

	return (&reflector{}).structSchema(t)
}

type reflector struct {
	stack []reflect.Type
}

func (r *reflector) structSchema(t reflect.Type) (*Schema, error) {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	if t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("schema: %s is not a struct", t)
	}

	for i, seen := range r.stack {
		if seen == t {
			path := make([]string, 0, len(r.stack)-i+1)
			for _, s := range r.stack[i:] {
				path = append(path, s.Name())
			}

			path = append(path, t.Name())

			return nil, fmt.Errorf("schema: cyclic struct type %s", strings.Join(path, " -> "))
		}
	}

	r.stack = append(r.stack, t)
	defer func() { r.stack = r.stack[:len(r.stack)-1] }()

	s := New(t.Name())
	s.Options = optionsOf(t)

	for i := range t.NumField() {
		sf := t.Field(i)
		if !sf.IsExported() || sf.Anonymous {
			continue
		}

		tags := parseTags(sf)
		if tags.skip {
			continue
		}

		f, err := r.field(tags.name, sf.Type)
		if err != nil {
			return nil, fmt.Errorf("%s.%s: %w", t.Name(), sf.Name, err)
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

	return s, nil
}

func (r *reflector) field(name string, t reflect.Type) (*Field, error) {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	switch t {
	case timeType:
		return DateTime(name), nil
	case dateType:
		return DateField(name), nil
	case timeOfDayType:
		return Time(name), nil
	case uuidType:
		return UUID(name), nil
	}

	switch t.Kind() {
	case reflect.String:
		return String(name), nil
	case reflect.Bool:
		return Boolean(name), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return Integer(name), nil
	case reflect.Float32, reflect.Float64:
		return Float(name), nil
	case reflect.Struct:
		nested, err := r.structSchema(t)
		if err != nil {
			return nil, err
		}

		return ObjectOf(name, nested), nil
	case reflect.Slice, reflect.Array:
		item, err := r.field("", t.Elem())
		if err != nil {
			return nil, err
		}

		return ListOf(name, []*Field{item}), nil
	case reflect.Map:
		return newField(name, KindMap, nil), nil
	default:
		return newField(name, KindAny, nil), nil
	}
}

func optionsOf(t reflect.Type) Options {
	switch {
	case t.Implements(optionerType):
		return reflect.Zero(t).Interface().(Optioner).SchemaOptions().Clone()
	case reflect.PointerTo(t).Implements(optionerType):
		return reflect.New(t).Interface().(Optioner).SchemaOptions().Clone()
	default:
		return Options{}
	}
}

type fieldTags struct {
	name      string
	predicate string
	required  bool
	skip      bool
}

// parseTags reads the json, schema and rdf tags of a struct field.
// The attribute name is the json name when present, the Go field name otherwise.
func parseTags(sf reflect.StructField) fieldTags {
	tags := fieldTags{name: sf.Name}

	if j := sf.Tag.Get("json"); j != "" {
		name, _, _ := strings.Cut(j, ",")
		if name == "-" {
			tags.skip = true
			return tags
		}

		if name != "" {
			tags.name = name
		}
	}

	for opt := range strings.SplitSeq(sf.Tag.Get("schema"), ",") {
		switch strings.TrimSpace(opt) {
		case "required":
			tags.required = true
		case "-":
			tags.skip = true
		}
	}

	switch p := sf.Tag.Get("rdf"); p {
	case "":
	case "-":
		tags.skip = true
	default:
		tags.predicate = p
	}

	return tags
}
