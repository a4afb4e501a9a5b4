package schema

import (
	"fmt"
	"reflect"
	"time"

	"github.com/google/uuid"
)

// Validator checks a field value after its type check passed.
type Validator func(value any) error

// Field describes one attribute of a serializable object.
type Field struct {
	// Name is the attribute name on the object.
	Name string
	// DataName is the key used in serialized data; empty means Name.
	DataName   string
	Kind       Kind
	Required   bool
	Validators []Validator
	// Items lists the allowed element types of a list field.
	Items []*Field
	// Schema is the nested schema of an object field.
	Schema *Schema
}

// FieldOption configures a Field.
type FieldOption func(*Field)

// Required marks the field as required.
func Required() FieldOption {
	return func(f *Field) { f.Required = true }
}

// WithValidators appends validators to the field.
func WithValidators(v ...Validator) FieldOption {
	return func(f *Field) { f.Validators = append(f.Validators, v...) }
}

// WithDataName sets the serialized key of the field.
func WithDataName(name string) FieldOption {
	return func(f *Field) { f.DataName = name }
}

func newField(name string, kind Kind, opts []FieldOption) *Field {
	f := &Field{Name: name, Kind: kind}
	for _, opt := range opts {
		opt(f)
	}

	return f
}

func String(name string, opts ...FieldOption) *Field {
	return newField(name, KindString, opts)
}

func Boolean(name string, opts ...FieldOption) *Field {
	return newField(name, KindBoolean, opts)
}

func Integer(name string, opts ...FieldOption) *Field {
	return newField(name, KindInteger, opts)
}

func Float(name string, opts ...FieldOption) *Field {
	return newField(name, KindFloat, opts)
}

func DateField(name string, opts ...FieldOption) *Field {
	return newField(name, KindDate, opts)
}

func DateTime(name string, opts ...FieldOption) *Field {
	return newField(name, KindDateTime, opts)
}

func Time(name string, opts ...FieldOption) *Field {
	return newField(name, KindTime, opts)
}

func UUID(name string, opts ...FieldOption) *Field {
	return newField(name, KindUUID, opts)
}

// ObjectOf returns an object field serialized with the nested schema s.
func ObjectOf(name string, s *Schema, opts ...FieldOption) *Field {
	f := newField(name, KindObject, opts)
	f.Schema = s

	return f
}

// ListOf returns a list field whose elements match one of items.
func ListOf(name string, items []*Field, opts ...FieldOption) *Field {
	f := newField(name, KindList, opts)
	f.Items = items

	return f
}

// KeyName returns the serialized key of the field.
func (f *Field) KeyName() string {
	if f.DataName != "" {
		return f.DataName
	}

	return f.Name
}

func (f *Field) label() string {
	if f.Name == "" {
		return "value"
	}

	return f.Name
}

// ObjectToData checks that value fits the field kind and returns its
// serializable form. Mismatches are reported as *InvalidTypeError.
// Validators are not run.
func (f *Field) ObjectToData(value any) (any, error) {
	if value == nil {
		if f.Required {
			return nil, newInvalidType("%s cannot be null", f.label())
		}

		return nil, nil
	}

	rv := reflect.ValueOf(value)

	switch f.Kind {
	case KindString:
		if rv.Kind() != reflect.String {
			return nil, f.mismatch("string", value)
		}

		return rv.String(), nil

	case KindBoolean:
		if rv.Kind() != reflect.Bool {
			return nil, f.mismatch("boolean", value)
		}

		return rv.Bool(), nil

	case KindInteger:
		switch rv.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			return rv.Int(), nil
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			return rv.Uint(), nil
		default:
			return nil, f.mismatch("integer", value)
		}

	case KindFloat:
		switch rv.Kind() {
		case reflect.Float32, reflect.Float64:
			return rv.Float(), nil
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			return float64(rv.Int()), nil
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			return float64(rv.Uint()), nil
		default:
			return nil, f.mismatch("float", value)
		}

	case KindDate:
		switch v := value.(type) {
		case Date:
			return v, nil
		case time.Time:
			return DateOf(v), nil
		default:
			return nil, f.mismatch("date", value)
		}

	case KindDateTime:
		v, ok := value.(time.Time)
		if !ok {
			return nil, f.mismatch("datetime", value)
		}

		return v, nil

	case KindTime:
		v, ok := value.(TimeOfDay)
		if !ok {
			return nil, f.mismatch("time", value)
		}

		return v, nil

	case KindUUID:
		id, err := ToUUID(value)
		if err != nil {
			return nil, f.mismatch("UUID", value)
		}

		return id, nil

	case KindObject:
		return value, nil

	case KindList:
		return f.listToData(rv)

	case KindMap, KindAny:
		return value, nil

	default:
		return nil, newInvalidType("%s has unsupported field type %s", f.label(), f.Kind)
	}
}

func (f *Field) listToData(rv reflect.Value) (any, error) {
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, f.mismatch("list", rv.Interface())
	}

	res := make([]any, 0, rv.Len())

	var errs []string

	for i := range rv.Len() {
		item := rv.Index(i).Interface()

		if len(f.Items) != 1 {
			res = append(res, item)
			continue
		}

		data, err := f.Items[0].ObjectToData(item)
		if err != nil {
			errs = append(errs, fmt.Sprintf("%s[%d]: %v", f.label(), i, err))
			continue
		}

		res = append(res, data)
	}

	if len(errs) > 0 {
		return nil, &InvalidTypeError{Errors: errs}
	}

	return res, nil
}

func (f *Field) mismatch(want string, got any) *InvalidTypeError {
	return newInvalidType("%s must be a %s, got %T", f.label(), want, got)
}

// ToUUID accepts a uuid.UUID, a 16-byte array, a canonical UUID string or a
// 32-digit hex string without dashes.
func ToUUID(value any) (uuid.UUID, error) {
	switch v := value.(type) {
	case uuid.UUID:
		return v, nil
	case [16]byte:
		return uuid.UUID(v), nil
	case string:
		if len(v) != 36 && len(v) != 32 {
			return uuid.Nil, fmt.Errorf("invalid UUID length %d", len(v))
		}

		return uuid.Parse(v)
	default:
		return uuid.Nil, fmt.Errorf("%T is not a UUID", value)
	}
}
