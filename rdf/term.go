package rdf

import (
	"encoding/hex"
	"fmt"
	"math/big"
	"strconv"
	"strings"
	"time"

	"github.com/cayleygraph/quad"
	vocrdf "github.com/cayleygraph/quad/voc/rdf"
	"github.com/cayleygraph/quad/voc/xsd"
	"github.com/google/uuid"
)

// BlankNodePrefix marks a string subject as a blank node reference.
const BlankNodePrefix = "_:"

// IDDatatype is the datatype tag that turns a rendered value into an IRI object.
const IDDatatype = "@id"

var (
	// Type is the full rdf:type predicate.
	Type = quad.IRI(vocrdf.NS + "type")

	XSDString   = quad.IRI(xsd.NS + "string")
	XSDBoolean  = quad.IRI(xsd.NS + "boolean")
	XSDInteger  = quad.IRI(xsd.NS + "integer")
	XSDDouble   = quad.IRI(xsd.NS + "double")
	XSDDecimal  = quad.IRI(xsd.NS + "decimal")
	XSDDate     = quad.IRI(xsd.NS + "date")
	XSDTime     = quad.IRI(xsd.NS + "time")
	XSDDateTime = quad.IRI(xsd.NS + "dateTime")
)

// NewBlankNode mints a blank node labelled with a random 128-bit identifier.
// Labels never collide across concurrent graph builds.
func NewBlankNode() quad.BNode {
	id := uuid.New()
	return quad.BNode(hex.EncodeToString(id[:]))
}

// ParseNode interprets s as a blank node reference when it starts with "_:",
// otherwise as an IRI.
func ParseNode(s string) quad.Value {
	if label, ok := strings.CutPrefix(s, BlankNodePrefix); ok {
		return quad.BNode(label)
	}

	return quad.IRI(s)
}

// IsNode reports whether v can be used as a triple subject.
func IsNode(v quad.Value) bool {
	switch v.(type) {
	case quad.IRI, quad.BNode:
		return true
	default:
		return false
	}
}

// NewLiteral builds a literal term from a native value.
//
// A non-empty lang produces a language-tagged string and the datatype is ignored,
// since RDF forbids both on one literal. A non-empty datatype produces a typed
// literal. Otherwise the datatype is inferred from the Go type of value; strings
// and unknown types become plain literals.
func NewLiteral(value any, lang string, datatype quad.IRI) quad.Value {
	lexical, inferred := Lexical(value)

	switch {
	case lang != "":
		return quad.LangString{Value: quad.String(lexical), Lang: lang}
	case datatype != "":
		return quad.TypedString{Value: quad.String(lexical), Type: datatype}
	case inferred != "":
		return quad.TypedString{Value: quad.String(lexical), Type: inferred}
	default:
		return quad.String(lexical)
	}
}

// Lexical returns the lexical form of value along with the XSD datatype its Go
// type implies. The datatype is empty for strings and types without a natural
// XSD counterpart.
func Lexical(value any) (string, quad.IRI) {
	switch v := value.(type) {
	case nil:
		return "", ""
	case string:
		return v, ""
	case bool:
		return strconv.FormatBool(v), XSDBoolean
	case int:
		return strconv.FormatInt(int64(v), 10), XSDInteger
	case int8:
		return strconv.FormatInt(int64(v), 10), XSDInteger
	case int16:
		return strconv.FormatInt(int64(v), 10), XSDInteger
	case int32:
		return strconv.FormatInt(int64(v), 10), XSDInteger
	case int64:
		return strconv.FormatInt(v, 10), XSDInteger
	case uint:
		return strconv.FormatUint(uint64(v), 10), XSDInteger
	case uint8:
		return strconv.FormatUint(uint64(v), 10), XSDInteger
	case uint16:
		return strconv.FormatUint(uint64(v), 10), XSDInteger
	case uint32:
		return strconv.FormatUint(uint64(v), 10), XSDInteger
	case uint64:
		return strconv.FormatUint(v, 10), XSDInteger
	case *big.Int:
		return v.String(), XSDInteger
	case float32:
		return strconv.FormatFloat(float64(v), 'g', -1, 32), XSDDouble
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64), XSDDouble
	case time.Time:
		return v.Format(time.RFC3339Nano), XSDDateTime
	case quad.IRI:
		return string(v), ""
	case fmt.Stringer:
		return v.String(), ""
	default:
		return fmt.Sprint(v), ""
	}
}
