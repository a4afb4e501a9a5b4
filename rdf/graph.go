package rdf

import (
	"maps"
	"slices"

	"github.com/cayleygraph/quad"
)

// Triple is a single RDF statement.
type Triple struct {
	Subject   quad.Value
	Predicate quad.IRI
	Object    quad.Value
}

// String returns the triple in N-Triples form without the trailing dot.
func (t Triple) String() string {
	return t.Subject.String() + " " + t.Predicate.String() + " " + t.Object.String()
}

// Quad converts the triple to a quad in the default graph.
func (t Triple) Quad() quad.Quad {
	return quad.Quad{Subject: t.Subject, Predicate: t.Predicate, Object: t.Object}
}

// Graph is an insertion-ordered set of triples with prefix bindings.
// A Graph is not safe for concurrent mutation.
type Graph struct {
	prefixes map[string]string
	triples  []Triple
	index    map[string]struct{}
}

// NewGraph returns an empty graph.
func NewGraph() *Graph {
	return &Graph{
		prefixes: make(map[string]string),
		index:    make(map[string]struct{}),
	}
}

// Bind associates prefix with a base IRI. Rebinding a prefix replaces it.
func (g *Graph) Bind(prefix, base string) {
	g.prefixes[prefix] = base
}

// Prefixes returns a copy of the prefix bindings.
func (g *Graph) Prefixes() map[string]string {
	return maps.Clone(g.prefixes)
}

// Add inserts a triple and reports whether it was new.
func (g *Graph) Add(subject quad.Value, predicate quad.IRI, object quad.Value) bool {
	t := Triple{Subject: subject, Predicate: predicate, Object: object}

	key := t.String()
	if _, ok := g.index[key]; ok {
		return false
	}

	g.index[key] = struct{}{}
	g.triples = append(g.triples, t)

	return true
}

// Merge adds every triple and prefix binding of other to g.
func (g *Graph) Merge(other *Graph) {
	if other == nil {
		return
	}

	for prefix, base := range other.prefixes {
		if _, ok := g.prefixes[prefix]; !ok {
			g.prefixes[prefix] = base
		}
	}

	for _, t := range other.triples {
		g.Add(t.Subject, t.Predicate, t.Object)
	}
}

// Len returns the number of triples.
func (g *Graph) Len() int {
	return len(g.triples)
}

// Triples returns the triples in insertion order.
func (g *Graph) Triples() []Triple {
	return slices.Clone(g.triples)
}

// Contains reports whether the exact triple is in the graph.
func (g *Graph) Contains(subject quad.Value, predicate quad.IRI, object quad.Value) bool {
	_, ok := g.index[Triple{Subject: subject, Predicate: predicate, Object: object}.String()]
	return ok
}

// Match returns the triples matching a pattern. A nil subject or object and an
// empty predicate act as wildcards.
func (g *Graph) Match(subject quad.Value, predicate quad.IRI, object quad.Value) []Triple {
	var res []Triple

	for _, t := range g.triples {
		if subject != nil && t.Subject.String() != subject.String() {
			continue
		}

		if predicate != "" && t.Predicate != predicate {
			continue
		}

		if object != nil && t.Object.String() != object.String() {
			continue
		}

		res = append(res, t)
	}

	return res
}

// Objects returns the objects of all triples with the given subject and predicate.
func (g *Graph) Objects(subject quad.Value, predicate quad.IRI) []quad.Value {
	matched := g.Match(subject, predicate, nil)

	res := make([]quad.Value, 0, len(matched))
	for _, t := range matched {
		res = append(res, t.Object)
	}

	return res
}
