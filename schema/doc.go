// Package schema provides plain object-serialization schemas: an ordered list of
// typed fields with required flags and validators, plus the per-kind leaf checks
// (ObjectToData) that tell whether a native value fits a field.
//
// Schemas are the read-only input of the derive package, which turns them into
// RDF mapping definitions. They can be built three ways:
//
//   - In code with the field constructors (String, Integer, ListOf, ObjectOf, ...).
//   - From Go struct declarations with FromStruct, reading struct tags:
//     `json:"name,omitempty"` names the attribute, `schema:"required"` marks it
//     required and `rdf:"nws:field"` records its predicate.
//   - From YAML documents with Parse or LoadFile:
//
//	version: "1"
//	schemas:
//	  - name: Model
//	    options:
//	      rdf_subject: id
//	      rdf_type: nws:Type
//	      rdf_prefixes:
//	        nws: http://example.org/ns/
//	    rdf:
//	      field: nws:field
//	      sub: "@collapse"
//	    fields:
//	      - name: field
//	        type: string
//	        required: true
//	      - name: tags
//	        type: list
//	        items:
//	          - type: string
//	      - name: sub
//	        type: object
//	        schema: SubModel
//
// # Kinds
//
// string, boolean, integer, float, date, datetime, time, uuid, object and list
// have RDF counterparts. map and any exist so that struct reflection can describe
// every field; they have no RDF mapping.
package schema
