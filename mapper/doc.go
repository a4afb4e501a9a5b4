// Package mapper maps in-memory objects to RDF graphs.
//
// A Definition is an ordered list of named fields plus a Config naming the
// subject field, the prefix bindings and the rdf:type of the shape. It is built
// once, checked for configuration problems at construction, and is read-only
// afterwards, so it can be shared by concurrent callers.
//
//	person := mapper.MustNewDefinition("Person", []mapper.NamedField{
//		mapper.Named("name", mapper.String("foaf:name", mapper.Required())),
//		mapper.Named("nick", mapper.String("foaf:nick", mapper.WithLanguage("en"))),
//		mapper.Named("tags", mapper.Set(mapper.String(""), mapper.WithPredicate("ex:tag"))),
//	}, mapper.Config{
//		Subject:  "id",
//		Type:     "foaf:Person",
//		Prefixes: map[string]string{"foaf": "http://xmlns.com/foaf/0.1/", "ex": "http://example.org/"},
//	})
//
//	if err := person.Validate(obj); err != nil {
//		// *ValidationError with every problem found
//	}
//	g := person.BuildGraph(obj)
//
// Objects are read through the Accessor interface. Maps and structs (matched
// by json tag, Go field name or snake_case name) are supported out of the box.
//
// BuildGraph does not validate. Callers that need validated output call
// Validate first; invalid data yields best-effort triples.
//
// # Collapse
//
// Object and Set fields either write their triples onto the parent subject
// (collapse mode) or onto a fresh blank node linked from the parent subject by
// the field's predicate. Objects default to linked mode, Sets to collapse mode.
package mapper
