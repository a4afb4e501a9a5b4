package mapper

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rdf-mapper/internal/diagnostic"
)

func TestNewDefinition(t *testing.T) {
	name := String("ex:name", Required())
	age := Integer("ex:age")

	def, err := NewDefinition("Person", []NamedField{
		Named("name", name),
		Named("age", age),
	}, Config{Subject: "id", Prefixes: map[string]string{"ex": "http://ex.org/ns/"}})
	require.NoError(t, err)

	assert.Equal(t, "Person", def.Name())
	assert.Equal(t, "name", name.Name())
	assert.Equal(t, "age", age.Name())

	fields := def.Fields()
	require.Len(t, fields, 3)
	assert.Same(t, name, fields[0])
	assert.Same(t, age, fields[1])

	subject, ok := def.Field("id")
	require.True(t, ok)
	assert.IsType(t, &IRIField{}, subject)
	assert.True(t, subject.Required())
	assert.Same(t, subject, def.SubjectField())

	base, ok := def.Namespaces().Lookup("ex")
	require.True(t, ok)
	assert.Equal(t, "http://ex.org/ns/", base)
}

func TestNewDefinitionDeclaredSubject(t *testing.T) {
	id := IRI()

	def, err := NewDefinition("Thing", []NamedField{Named("uri", id)}, Config{Subject: "uri"})
	require.NoError(t, err)

	assert.Len(t, def.Fields(), 1)
	assert.Same(t, id, def.SubjectField())
	assert.False(t, id.Required())
}

func TestNewDefinitionConfigInputNotShared(t *testing.T) {
	prefixes := map[string]string{"ex": "http://ex.org/ns/"}
	def := MustNewDefinition("Thing", nil, Config{Prefixes: prefixes})

	prefixes["ex"] = "http://other.org/"

	assert.Equal(t, "http://ex.org/ns/", def.Config().Prefixes["ex"])
}

func TestNewDefinitionConfigurationErrors(t *testing.T) {
	inner := MustNewDefinition("Inner", []NamedField{Named("name", String("ex:name"))}, Config{})

	tests := []struct {
		name      string
		fields    []NamedField
		cfg       Config
		wantCode  string
		wantLines []string
	}{
		{
			name:      "missing predicate",
			fields:    []NamedField{Named("field", String(""))},
			wantCode:  diagnostic.CodeMissingPredicate,
			wantLines: []string{"Bad.field: A predicate MUST be provided."},
		},
		{
			name: "all missing predicates reported",
			fields: []NamedField{
				Named("a", String("")),
				Named("b", Integer("ex:b")),
				Named("c", Boolean("")),
			},
			wantCode: diagnostic.CodeMissingPredicate,
			wantLines: []string{
				"Bad.a: A predicate MUST be provided.",
				"Bad.c: A predicate MUST be provided.",
			},
		},
		{
			name:      "linked object without predicate",
			fields:    []NamedField{Named("child", Object(inner))},
			wantCode:  diagnostic.CodeMissingPredicate,
			wantLines: []string{"Bad.child: An object field needs a predicate if not in collapse mode."},
		},
		{
			name:      "set without allowed type",
			fields:    []NamedField{Named("tags", Set(nil, WithPredicate("ex:tag")))},
			wantCode:  diagnostic.CodeMissingAllowedType,
			wantLines: []string{"Bad.tags: A set field MUST have an allowed type."},
		},
		{
			name:      "object without definition",
			fields:    []NamedField{Named("child", Object(nil, Collapse(true)))},
			wantCode:  diagnostic.CodeMissingDefinition,
			wantLines: []string{"Bad.child: An object field MUST wrap a mapping definition."},
		},
		{
			name:      "duplicate name",
			fields:    []NamedField{Named("a", String("ex:a")), Named("a", String("ex:b"))},
			wantCode:  diagnostic.CodeDuplicateField,
			wantLines: []string{"Bad.a: Field is declared more than once."},
		},
		{
			name:      "nil field",
			fields:    []NamedField{Named("a", nil)},
			wantCode:  diagnostic.CodeNilField,
			wantLines: []string{"Bad.a: Field MUST not be nil."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			def, err := NewDefinition("Bad", tt.fields, tt.cfg)
			require.Error(t, err)
			assert.Nil(t, def)
			assert.True(t, errors.Is(err, ErrConfiguration))

			var ce *ConfigurationError
			require.ErrorAs(t, err, &ce)
			assert.Equal(t, "Bad", ce.Definition)
			assert.Equal(t, tt.wantLines, ce.Problems)
			assert.NotEmpty(t, ce.Diagnostics.Fields(tt.wantCode))
			assert.Contains(t, err.Error(), "Configuration Error: ")
		})
	}
}

func TestNewDefinitionFieldReused(t *testing.T) {
	shared := String("ex:a")
	MustNewDefinition("First", []NamedField{Named("a", shared)}, Config{})

	_, err := NewDefinition("Second", []NamedField{Named("a", shared)}, Config{})
	require.Error(t, err)

	var ce *ConfigurationError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, []string{"a"}, ce.Diagnostics.Fields(diagnostic.CodeFieldReused))
	assert.Equal(t, "Second.a: Field already belongs to First.", ce.Problems[0])
}

func TestCloneDetachesField(t *testing.T) {
	tags := Set(String("", WithLanguage("en")), WithPredicate("ex:tag"), Required())
	MustNewDefinition("First", []NamedField{Named("tags", tags)}, Config{})

	copied := Clone(tags)
	require.IsType(t, &SetField{}, copied)
	assert.Empty(t, copied.Name())
	assert.Equal(t, "ex:tag", copied.Predicate())
	assert.True(t, copied.Required())

	second, err := NewDefinition("Second", []NamedField{Named("labels", copied)}, Config{})
	require.NoError(t, err)

	f, _ := second.Field("labels")
	elem := f.(*SetField).Allowed()
	assert.NotSame(t, tags.Allowed(), elem)
	assert.Equal(t, "labels", elem.Name())
	assert.Equal(t, "en", elem.Language())
	assert.Equal(t, "tags", tags.Allowed().Name(), "the original keeps its owner")

	assert.Nil(t, Clone(nil))
}

func TestNewDefinitionFailureLeavesFieldsFree(t *testing.T) {
	good := String("ex:a")

	_, err := NewDefinition("Bad", []NamedField{Named("a", good), Named("b", String(""))}, Config{})
	require.Error(t, err)

	_, err = NewDefinition("Good", []NamedField{Named("a", good)}, Config{})
	require.NoError(t, err)
}

func TestMustNewDefinitionPanics(t *testing.T) {
	assert.Panics(t, func() {
		MustNewDefinition("Bad", []NamedField{Named("a", String(""))}, Config{})
	})
}
