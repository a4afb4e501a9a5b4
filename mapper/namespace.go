package mapper

import (
	"maps"
	"strings"

	"github.com/cayleygraph/quad"
)

// Namespaces expands prefixed names using a fixed table of prefix bindings.
type Namespaces struct {
	bindings map[string]string
}

// NewNamespaces returns a resolver for the given prefix to base IRI table.
func NewNamespaces(prefixes map[string]string) *Namespaces {
	return &Namespaces{bindings: maps.Clone(prefixes)}
}

// SplitPrefix splits raw at its first colon when the left part is a bound
// prefix. Otherwise it returns "", raw, false.
func SplitPrefix(raw string, prefixes map[string]string) (string, string, bool) {
	prefix, rest, ok := strings.Cut(raw, ":")
	if !ok {
		return "", raw, false
	}

	if _, bound := prefixes[prefix]; !bound {
		return "", raw, false
	}

	return prefix, rest, true
}

// Resolve expands "prefix:rest" to base+rest when prefix is bound, and returns
// raw unchanged as a full IRI otherwise. Nothing is escaped or validated.
func (n *Namespaces) Resolve(raw string) quad.IRI {
	if n == nil {
		return quad.IRI(raw)
	}

	prefix, rest, ok := SplitPrefix(raw, n.bindings)
	if !ok {
		return quad.IRI(raw)
	}

	return quad.IRI(n.bindings[prefix] + rest)
}

// Lookup returns the base IRI bound to prefix.
func (n *Namespaces) Lookup(prefix string) (string, bool) {
	if n == nil {
		return "", false
	}

	base, ok := n.bindings[prefix]

	return base, ok
}

// Prefixes returns a copy of the bindings.
func (n *Namespaces) Prefixes() map[string]string {
	if n == nil {
		return map[string]string{}
	}

	return maps.Clone(n.bindings)
}
