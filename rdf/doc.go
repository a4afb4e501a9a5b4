// Package rdf is the graph sink used by the mapper.
//
// Terms are the value types of github.com/cayleygraph/quad: quad.IRI, quad.BNode,
// quad.String, quad.TypedString and quad.LangString. A Graph is an in-memory set of
// triples plus the prefix bindings that produced it; it does no querying beyond
// pattern matching and no persistence.
//
// Output formats:
//   - N-Quads via WriteNQuads (default graph only, backed by quad/nquads).
//   - Turtle via WriteTurtle, abbreviating IRIs with the graph's bound prefixes.
package rdf
