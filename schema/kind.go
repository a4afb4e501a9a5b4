package schema

import (
	"fmt"
	"strings"
)

//go:generate go tool stringer -type=Kind -trimprefix=Kind -output=kind_string.go

// Kind identifies the value type of a field.
type Kind int

const (
	KindInvalid Kind = iota
	KindString
	KindBoolean
	KindInteger
	KindFloat
	KindDate
	KindDateTime
	KindTime
	KindUUID
	KindObject
	KindList
	KindMap
	KindAny
)

var kindNames = map[string]Kind{
	"string":   KindString,
	"str":      KindString,
	"boolean":  KindBoolean,
	"bool":     KindBoolean,
	"integer":  KindInteger,
	"int":      KindInteger,
	"float":    KindFloat,
	"double":   KindFloat,
	"date":     KindDate,
	"datetime": KindDateTime,
	"time":     KindTime,
	"uuid":     KindUUID,
	"object":   KindObject,
	"list":     KindList,
	"map":      KindMap,
	"any":      KindAny,
}

// ParseKind returns the kind named by s. Names are case-insensitive.
func ParseKind(s string) (Kind, error) {
	k, ok := kindNames[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return KindInvalid, fmt.Errorf("unknown field type %q", s)
	}

	return k, nil
}

// IsScalar returns true for kinds whose values are single literals.
func (k Kind) IsScalar() bool {
	switch k {
	case KindString, KindBoolean, KindInteger, KindFloat,
		KindDate, KindDateTime, KindTime, KindUUID:
		return true
	default:
		return false
	}
}
