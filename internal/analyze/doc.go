// Package analyze loads Go packages without running them and turns tagged
// struct declarations into serialization schemas.
//
// It uses golang.org/x/tools/go/packages with AST and go/types to build an
// in-memory model of named types and their fields, then applies the same tag
// rules as schema.FromStruct: `json` names the attribute, `schema:"required"`
// marks it required and `rdf` records its predicate.
//
// Schema options that FromStruct reads from a SchemaOptions method are given
// statically as directives in the type's doc comment:
//
//	// Article is a news article.
//	//
//	//rdf:subject uri
//	//rdf:type ex:Article
//	//rdf:prefix ex http://example.org/ns/
//	type Article struct { ... }
//
// Key types:
//   - TypeID: package import path + type name
//   - TypeInfo: kind (struct/basic/alias/pointer/slice/map/external), fields and directives
//   - FieldInfo: field name, type, tags and embedding
package analyze
