package rdf

import (
	"bufio"
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"

	"github.com/cayleygraph/quad"
	"github.com/cayleygraph/quad/nquads"
)

// WriteNQuads writes every triple of g to w as N-Quads in the default graph.
func WriteNQuads(w io.Writer, g *Graph) error {
	qw := nquads.NewWriter(w)

	for _, t := range g.triples {
		if err := qw.WriteQuad(t.Quad()); err != nil {
			return fmt.Errorf("nquads: write %s: %w", t, err)
		}
	}

	return qw.Close()
}

// WriteTurtle writes g to w as Turtle. Prefix bindings of g become @prefix
// directives and IRIs are abbreviated where the local part allows it.
func WriteTurtle(w io.Writer, g *Graph) error {
	bw := bufio.NewWriter(w)

	keys := slices.Sorted(maps.Keys(g.prefixes))

	for _, prefix := range keys {
		if _, err := fmt.Fprintf(bw, "@prefix %s: <%s> .\n", prefix, g.prefixes[prefix]); err != nil {
			return err
		}
	}

	if len(keys) > 0 && len(g.triples) > 0 {
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}

	for _, t := range g.triples {
		line := renderTerm(t.Subject, g.prefixes) + " " +
			renderIRI(t.Predicate, g.prefixes) + " " +
			renderTerm(t.Object, g.prefixes) + " .\n"

		if _, err := bw.WriteString(line); err != nil {
			return err
		}
	}

	return bw.Flush()
}

func renderIRI(iri quad.IRI, prefixes map[string]string) string {
	if iri == Type {
		return "a"
	}

	if qname, ok := abbreviate(string(iri), prefixes); ok {
		return qname
	}

	return iri.String()
}

func renderTerm(term quad.Value, prefixes map[string]string) string {
	switch v := term.(type) {
	case quad.IRI:
		if qname, ok := abbreviate(string(v), prefixes); ok {
			return qname
		}

		return v.String()
	case quad.TypedString:
		if qname, ok := abbreviate(string(v.Type), prefixes); ok {
			return v.Value.String() + "^^" + qname
		}

		return v.String()
	default:
		return term.String()
	}
}

// abbreviate picks the longest bound namespace that prefixes iri and leaves a
// local part usable in a prefixed name.
func abbreviate(iri string, prefixes map[string]string) (string, bool) {
	bestNS, bestPrefix := "", ""

	for prefix, ns := range prefixes {
		if ns == "" || !strings.HasPrefix(iri, ns) {
			continue
		}

		if !isLocalName(iri[len(ns):]) {
			continue
		}

		if len(ns) > len(bestNS) || (len(ns) == len(bestNS) && prefix < bestPrefix) {
			bestNS, bestPrefix = ns, prefix
		}
	}

	if bestNS == "" {
		return "", false
	}

	return bestPrefix + ":" + iri[len(bestNS):], true
}

func isLocalName(value string) bool {
	if value == "" {
		return false
	}

	for i := 0; i < len(value); i++ {
		ch := value[i]
		if i == 0 {
			if !isNameStartChar(ch) {
				return false
			}
		} else if !isNameChar(ch) {
			return false
		}
	}

	// a trailing dot would terminate the statement
	return value[len(value)-1] != '.'
}

func isNameStartChar(ch byte) bool {
	return (ch >= 'A' && ch <= 'Z') || (ch >= 'a' && ch <= 'z') || ch == '_'
}

func isNameChar(ch byte) bool {
	return isNameStartChar(ch) || (ch >= '0' && ch <= '9') || ch == '-' || ch == '.'
}
