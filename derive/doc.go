// Package derive builds mapper definitions from serialization schemas.
//
// Every schema field is mapped to the mapper field of the same kind. The
// predicate of a field comes from the override table given to Derive, or
// from the schema's own predicate table. The special predicate "@collapse"
// turns an object field into a collapsed one.
//
//	def, err := derive.Derive(articleSchema, derive.WithOverrides(derive.Overrides{
//		"id":     derive.Custom(mapper.UUID("ex:id", mapper.AsIRI())),
//		"author": derive.Collapse(),
//	}))
//
// Derivation fails with a *mapper.ConfigurationError listing every field that
// ends up without a predicate, and with a *FieldTypeMappingError for schema
// kinds that have no RDF counterpart. Cyclic schemas are rejected.
package derive
