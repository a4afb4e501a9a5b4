package mapper

import (
	"reflect"
	"strings"
	"sync"

	"rdf-mapper/internal/match"
)

// Accessor reads named attributes off a bound object.
type Accessor interface {
	// Get returns the attribute value, or nil when it is absent.
	Get(name string) any
	// Has reports whether the attribute is present.
	Has(name string) bool
}

// MapObject reads attributes from a map.
type MapObject map[string]any

func (m MapObject) Get(name string) any { return m[name] }

func (m MapObject) Has(name string) bool {
	_, ok := m[name]
	return ok
}

type emptyObject struct{}

func (emptyObject) Get(string) any  { return nil }
func (emptyObject) Has(string) bool { return false }

// AccessorFor returns an Accessor for obj. Values implementing Accessor are
// used as is; maps with string keys and structs (or pointers to them) are
// read by reflection. Anything else has no attributes.
func AccessorFor(obj any) Accessor {
	acc, _ := accessorOf(obj)
	return acc
}

// accessorOf is AccessorFor that also reports whether obj has attributes at all.
func accessorOf(obj any) (Accessor, bool) {
	switch v := obj.(type) {
	case nil:
		return emptyObject{}, false
	case Accessor:
		return v, true
	case map[string]any:
		return MapObject(v), true
	}

	rv := reflect.ValueOf(obj)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return emptyObject{}, false
		}

		rv = rv.Elem()
	}

	switch rv.Kind() {
	case reflect.Struct:
		return &structObject{v: rv, fields: structFieldsOf(rv.Type())}, true
	case reflect.Map:
		if rv.Type().Key().Kind() == reflect.String {
			return &mapValueObject{v: rv}, true
		}
	}

	return emptyObject{}, false
}

type mapValueObject struct {
	v reflect.Value
}

func (m *mapValueObject) lookup(name string) (reflect.Value, bool) {
	val := m.v.MapIndex(reflect.ValueOf(name).Convert(m.v.Type().Key()))
	return val, val.IsValid()
}

func (m *mapValueObject) Get(name string) any {
	val, ok := m.lookup(name)
	if !ok {
		return nil
	}

	return indirect(val)
}

func (m *mapValueObject) Has(name string) bool {
	_, ok := m.lookup(name)
	return ok
}

type structField struct {
	index     []int
	omitEmpty bool
}

type structObject struct {
	v      reflect.Value
	fields map[string]structField
}

func (s *structObject) field(name string) (reflect.Value, structField, bool) {
	sf, ok := s.fields[name]
	if !ok {
		return reflect.Value{}, sf, false
	}

	fv, err := s.v.FieldByIndexErr(sf.index)
	if err != nil {
		// promoted through a nil embedded pointer
		return reflect.Value{}, sf, false
	}

	return fv, sf, true
}

func (s *structObject) Get(name string) any {
	fv, _, ok := s.field(name)
	if !ok {
		return nil
	}

	return indirect(fv)
}

func (s *structObject) Has(name string) bool {
	fv, sf, ok := s.field(name)
	if !ok {
		return false
	}

	return !sf.omitEmpty || !fv.IsZero()
}

// indirect unwraps pointers and interfaces; nil ones yield nil.
func indirect(v reflect.Value) any {
	for v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return nil
		}

		v = v.Elem()
	}

	if !v.CanInterface() {
		return nil
	}

	return v.Interface()
}

var structCache sync.Map // reflect.Type -> map[string]structField

// structFieldsOf indexes the exported fields of t under their json name, Go
// name and snake_case name. Earlier spellings win on collision.
func structFieldsOf(t reflect.Type) map[string]structField {
	if cached, ok := structCache.Load(t); ok {
		return cached.(map[string]structField)
	}

	fields := make(map[string]structField)
	visible := reflect.VisibleFields(t)

	add := func(name string, sf structField) {
		if _, taken := fields[name]; name != "" && !taken {
			fields[name] = sf
		}
	}

	// json names take precedence over any derived spelling
	for _, f := range visible {
		if !f.IsExported() || f.Anonymous {
			continue
		}

		name, opts, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" && opts == "" {
			continue
		}

		if name != "" && name != "-" {
			add(name, structField{index: f.Index, omitEmpty: hasOption(opts, "omitempty")})
		}
	}

	for _, f := range visible {
		if !f.IsExported() || f.Anonymous {
			continue
		}

		name, opts, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" && opts == "" {
			continue
		}

		sf := structField{index: f.Index, omitEmpty: hasOption(opts, "omitempty")}
		add(f.Name, sf)
		add(match.SnakeCase(f.Name), sf)
	}

	cached, _ := structCache.LoadOrStore(t, fields)

	return cached.(map[string]structField)
}

func hasOption(opts, want string) bool {
	for opt := range strings.SplitSeq(opts, ",") {
		if opt == want {
			return true
		}
	}

	return false
}
