package mapper

import (
	"fmt"
	"net/url"
	"reflect"
	"time"

	"rdf-mapper/rdf"
	"rdf-mapper/schema"
)

// IRIField holds an absolute IRI. It is the usual subject field and needs no
// predicate.
type IRIField struct{ fieldBase }

// IRI returns an IRI field. Pass WithPredicate to emit it as an object.
func IRI(opts ...FieldOption) *IRIField {
	return &IRIField{newBase("", rdf.IDDatatype, opts)}
}

func (f *IRIField) ConfigurationError() string { return "" }

// Validate requires a string holding an absolute IRI.
func (f *IRIField) Validate(value any) error {
	if err := leafCheck(schema.KindString, f.name, value); err != nil {
		return err
	}

	if !IsIRI(reflect.ValueOf(f.Render(value)).String()) {
		return NewValidationError(fmt.Sprintf("%s is not an IRI", f.label()))
	}

	return nil
}

// IsIRI reports whether s has both a scheme and a network location.
func IsIRI(s string) bool {
	u, err := url.Parse(s)
	if err != nil {
		return false
	}

	return u.Scheme != "" && u.Host != ""
}

// StringField holds text.
type StringField struct{ fieldBase }

// String returns a text field filling predicate.
func String(predicate string, opts ...FieldOption) *StringField {
	return &StringField{newBase(predicate, "", opts)}
}

// Validate requires a string.
func (f *StringField) Validate(value any) error {
	return leafCheck(schema.KindString, f.name, value)
}

// BooleanField holds a bool.
type BooleanField struct{ fieldBase }

// Boolean returns a bool field filling predicate.
func Boolean(predicate string, opts ...FieldOption) *BooleanField {
	return &BooleanField{newBase(predicate, "", opts)}
}

// Validate requires a bool.
func (f *BooleanField) Validate(value any) error {
	return leafCheck(schema.KindBoolean, f.name, value)
}

// IntegerField holds any Go integer type. Booleans are rejected.
type IntegerField struct{ fieldBase }

// Integer returns an integer field filling predicate.
func Integer(predicate string, opts ...FieldOption) *IntegerField {
	return &IntegerField{newBase(predicate, "", opts)}
}

// Validate requires an integer that is not a bool.
func (f *IntegerField) Validate(value any) error {
	if b, ok := value.(bool); ok {
		return NewValidationError(fmt.Sprintf("%s must be a int, got %T", f.label(), b))
	}

	return leafCheck(schema.KindInteger, f.name, value)
}

// FloatField holds any Go number. Booleans are rejected.
type FloatField struct{ fieldBase }

// Float returns a number field filling predicate.
func Float(predicate string, opts ...FieldOption) *FloatField {
	return &FloatField{newBase(predicate, "", opts)}
}

// Validate requires a number that is not a bool.
func (f *FloatField) Validate(value any) error {
	if b, ok := value.(bool); ok {
		return NewValidationError(fmt.Sprintf("%s must be a float, got %T", f.label(), b))
	}

	return leafCheck(schema.KindFloat, f.name, value)
}

// DateField holds a schema.Date or a time.Time truncated to its date.
type DateField struct{ fieldBase }

// Date returns an xsd:date field filling predicate.
func Date(predicate string, opts ...FieldOption) *DateField {
	return &DateField{newBase(predicate, string(rdf.XSDDate), opts)}
}

// Validate requires a schema.Date or a time.Time.
func (f *DateField) Validate(value any) error {
	return leafCheck(schema.KindDate, f.name, value)
}

// Render drops the time of day of a time.Time.
func (f *DateField) Render(value any) any {
	if t, ok := value.(time.Time); ok {
		return schema.DateOf(t)
	}

	return value
}

// TimeField holds a schema.TimeOfDay.
type TimeField struct{ fieldBase }

// Time returns an xsd:time field filling predicate.
func Time(predicate string, opts ...FieldOption) *TimeField {
	return &TimeField{newBase(predicate, string(rdf.XSDTime), opts)}
}

// Validate requires a schema.TimeOfDay.
func (f *TimeField) Validate(value any) error {
	return leafCheck(schema.KindTime, f.name, value)
}

// DateTimeField holds a time.Time.
type DateTimeField struct{ fieldBase }

// DateTime returns an xsd:dateTime field filling predicate.
func DateTime(predicate string, opts ...FieldOption) *DateTimeField {
	return &DateTimeField{newBase(predicate, string(rdf.XSDDateTime), opts)}
}

// Validate requires a time.Time.
func (f *DateTimeField) Validate(value any) error {
	return leafCheck(schema.KindDateTime, f.name, value)
}

// UUIDField holds a uuid.UUID, a canonical UUID string or 32 hex digits.
// With AsIRI it is emitted as a urn:uuid IRI, otherwise as its canonical string.
type UUIDField struct{ fieldBase }

// UUID returns a UUID field filling predicate.
func UUID(predicate string, opts ...FieldOption) *UUIDField {
	return &UUIDField{newBase(predicate, "", opts)}
}

// IsIRI reports whether the field renders urn:uuid IRIs.
func (f *UUIDField) IsIRI() bool { return f.iri }

// Validate requires a value schema.ToUUID accepts.
func (f *UUIDField) Validate(value any) error {
	if _, err := schema.ToUUID(value); err != nil {
		return NewValidationError(fmt.Sprintf("%s is expected to be a UUID, got %T", f.label(), value))
	}

	return nil
}

// Render returns the canonical form, prefixed with urn:uuid: for IRI fields.
func (f *UUIDField) Render(value any) any {
	id, err := schema.ToUUID(value)
	if err != nil {
		return value
	}

	if f.iri {
		return "urn:uuid:" + id.String()
	}

	return id.String()
}

func (f *IRIField) clone() Field { return &IRIField{f.detached()} }
func (f *StringField) clone() Field { return &StringField{f.detached()} }
func (f *BooleanField) clone() Field { return &BooleanField{f.detached()} }
func (f *IntegerField) clone() Field { return &IntegerField{f.detached()} }
func (f *FloatField) clone() Field { return &FloatField{f.detached()} }
func (f *DateField) clone() Field { return &DateField{f.detached()} }
func (f *TimeField) clone() Field { return &TimeField{f.detached()} }
func (f *DateTimeField) clone() Field { return &DateTimeField{f.detached()} }
func (f *UUIDField) clone() Field { return &UUIDField{f.detached()} }
