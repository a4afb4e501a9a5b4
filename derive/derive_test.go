package derive

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/cayleygraph/quad"
	"github.com/davecgh/go-spew/spew"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rdf-mapper/mapper"
	"rdf-mapper/rdf"
	"rdf-mapper/schema"
)

const nws = "http://api.nickswebsite.net/ns/"

func TestDeriveSimple(t *testing.T) {
	s := schema.New("Model",
		schema.String("field"),
		schema.String("id", schema.Required()),
	).WithOptions(schema.Options{
		RDFSubject:  "id",
		RDFPrefixes: map[string]string{"nws": nws},
	}).WithPredicates(map[string]string{"field": "nws:field"})

	def, err := Derive(s)
	require.NoError(t, err)
	assert.Equal(t, "RdfModel", def.Name())

	subject, ok := def.Field("id")
	require.True(t, ok)
	assert.IsType(t, &mapper.IRIField{}, subject)
	assert.True(t, subject.Required())

	g := def.BuildGraph(map[string]any{"id": "http://api.nickswebsite.net/data#5", "field": "Some Field"})
	require.Equal(t, 1, g.Len(), spew.Sdump(g.Triples()))
	assert.True(t, g.Contains(quad.IRI("http://api.nickswebsite.net/data#5"), quad.IRI(nws+"field"), quad.String("Some Field")))
}

func TestDeriveList(t *testing.T) {
	s := schema.New("Model",
		schema.ListOf("items", []*schema.Field{schema.String("")}),
	).WithOptions(schema.Options{RDFSubject: "id"}).
		WithPredicates(map[string]string{"items": nws + "item"})

	def, err := Derive(s)
	require.NoError(t, err)

	obj := map[string]any{"id": "http://api.nickswebsite.net/data#1", "items": []string{"Item One", "Item Two"}}
	require.NoError(t, def.Validate(obj))

	g := def.BuildGraph(obj)
	s1 := quad.IRI("http://api.nickswebsite.net/data#1")
	assert.True(t, g.Contains(s1, quad.IRI(nws+"item"), quad.String("Item One")))
	assert.True(t, g.Contains(s1, quad.IRI(nws+"item"), quad.String("Item Two")))
}

func TestDeriveCollapsedObject(t *testing.T) {
	sub := schema.New("SubModel", schema.String("sub_field", schema.WithDataName("subField"))).
		WithOptions(schema.Options{RDFPrefixes: map[string]string{"nws": nws}}).
		WithPredicates(map[string]string{"sub_field": "nws:sub-field"})

	s := schema.New("Model", schema.ObjectOf("sub_model", sub, schema.Required())).
		WithOptions(schema.Options{RDFSubject: "id", RDFPrefixes: map[string]string{"nws": nws}}).
		WithPredicates(map[string]string{"sub_model": CollapsePredicate})

	def, err := Derive(s)
	require.NoError(t, err)

	f, ok := def.Field("sub_model")
	require.True(t, ok)

	obj, ok := f.(*mapper.ObjectField)
	require.True(t, ok)
	assert.True(t, obj.Collapsed())
	assert.True(t, obj.Required())
	assert.Equal(t, "RdfSubModel", obj.Definition().Name())

	data := map[string]any{
		"id":        "http://api.nickswebsite.net/data#1",
		"sub_model": map[string]any{"sub_field": "Some Field"},
	}
	require.NoError(t, def.Validate(data))

	g := def.BuildGraph(data)
	require.Equal(t, 1, g.Len(), spew.Sdump(g.Triples()))
	assert.True(t, g.Contains(quad.IRI("http://api.nickswebsite.net/data#1"), quad.IRI(nws+"sub-field"), quad.String("Some Field")))
}

func TestDeriveObjectList(t *testing.T) {
	sub := schema.New("SubModel", schema.String("field")).
		WithOptions(schema.Options{RDFPrefixes: map[string]string{"nws": nws}}).
		WithPredicates(map[string]string{"field": "nws:field"})

	s := schema.New("Model", schema.ListOf("fields", []*schema.Field{schema.ObjectOf("", sub)})).
		WithOptions(schema.Options{RDFSubject: "id", RDFPrefixes: map[string]string{"nws": nws}}).
		WithPredicates(map[string]string{"fields": "nws:fields"})

	def, err := Derive(s)
	require.NoError(t, err)

	subject := quad.IRI("http://api.nickswebsite.net/data#1")
	g := def.BuildGraph(map[string]any{
		"id":     string(subject),
		"fields": []map[string]any{{"field": "One"}, {"field": "Two"}},
	})

	links := g.Match(subject, quad.IRI(nws+"fields"), nil)
	require.Len(t, links, 2, spew.Sdump(g.Triples()))

	values := map[quad.Value]bool{}
	for _, link := range links {
		for _, v := range g.Objects(link.Object, quad.IRI(nws+"field")) {
			values[v] = true
		}
	}

	assert.Equal(t, map[quad.Value]bool{quad.String("One"): true, quad.String("Two"): true}, values)
}

func TestDeriveScalarKinds(t *testing.T) {
	s := schema.New("Model",
		schema.UUID("uuid"),
		schema.DateTime("datetime"),
		schema.DateField("date"),
		schema.Time("time"),
		schema.UUID("uuid_iri"),
		schema.Integer("integer"),
		schema.Float("float"),
		schema.String("string"),
		schema.Boolean("boolean"),
	).WithOptions(schema.Options{
		RDFSubject:  "id",
		RDFPrefixes: map[string]string{"nws": "http://api.nickswebsite.net/"},
	})

	overrides := Overrides{
		"uuid_iri": Custom(mapper.UUID("nws:ns/uuid", mapper.AsIRI())),
		"uuid":     Predicate("nws:ns/uuid"),
		"datetime": Predicate("nws:ns/date-time"),
		"date":     Predicate("nws:ns/date"),
		"time":     Predicate("nws:ns/time"),
		"integer":  Predicate("nws:ns/integer"),
		"float":    Predicate("nws:ns/float"),
		"string":   Predicate("nws:ns/string"),
		"boolean":  Predicate("nws:ns/boolean"),
	}

	def, err := Derive(s, WithOverrides(overrides))
	require.NoError(t, err)

	id1, id2 := uuid.New(), uuid.New()
	obj := map[string]any{
		"id":       "http://api.nickswebsite.net/data#921",
		"uuid":     id1,
		"datetime": time.Date(2014, time.February, 1, 2, 3, 0, 0, time.UTC),
		"date":     schema.Date{Year: 2015, Month: time.March, Day: 1},
		"time":     schema.TimeOfDay{Hour: 2, Minute: 32},
		"uuid_iri": id2,
		"integer":  32,
		"float":    44.123,
		"string":   "Some String",
		"boolean":  true,
	}

	require.NoError(t, def.Validate(obj))

	g := def.BuildGraph(obj)
	s1 := quad.IRI("http://api.nickswebsite.net/data#921")
	ns := func(local string) quad.IRI { return quad.IRI(nws + local) }

	expected := []struct {
		p quad.IRI
		o quad.Value
	}{
		{ns("string"), quad.String("Some String")},
		{ns("boolean"), quad.TypedString{Value: "true", Type: rdf.XSDBoolean}},
		{ns("integer"), quad.TypedString{Value: "32", Type: rdf.XSDInteger}},
		{ns("float"), quad.TypedString{Value: "44.123", Type: rdf.XSDDouble}},
		{ns("date-time"), quad.TypedString{Value: "2014-02-01T02:03:00Z", Type: rdf.XSDDateTime}},
		{ns("date"), quad.TypedString{Value: "2015-03-01", Type: rdf.XSDDate}},
		{ns("time"), quad.TypedString{Value: "02:32:00", Type: rdf.XSDTime}},
		{ns("uuid"), quad.String(id1.String())},
		{ns("uuid"), quad.IRI("urn:uuid:" + id2.String())},
	}

	for _, e := range expected {
		assert.True(t, g.Contains(s1, e.p, e.o), "missing %s %s\n%s", e.p, e.o, spew.Sdump(g.Triples()))
	}

	assert.Equal(t, len(expected), g.Len())
}

func TestDeriveReusesOverrides(t *testing.T) {
	s := schema.New("Model", schema.UUID("uuid"), schema.String("name")).
		WithPredicates(map[string]string{"name": "ex:name"})

	custom := mapper.UUID("ex:uuid", mapper.AsIRI())
	overrides := Overrides{"uuid": Custom(custom)}

	first, err := Derive(s, WithOverrides(overrides))
	require.NoError(t, err)

	second, err := Derive(s, WithOverrides(overrides), WithName("Other"))
	require.NoError(t, err)

	assert.Empty(t, custom.Name(), "the override field stays unattached")

	for _, def := range []*mapper.Definition{first, second} {
		f, ok := def.Field("uuid")
		require.True(t, ok)
		assert.NotSame(t, custom, f)
		assert.Equal(t, "uuid", f.Name())
		assert.Equal(t, "ex:uuid", f.Predicate())
		assert.True(t, f.(*mapper.UUIDField).IsIRI())
	}
}

func TestDeriveCarriesRequiredAndValidators(t *testing.T) {
	calls := 0
	check := func(any) error {
		calls++
		return nil
	}

	s := schema.New("Model", schema.String("name", schema.Required(), schema.WithValidators(check))).
		WithPredicates(map[string]string{"name": "ex:name"})

	def, err := Derive(s)
	require.NoError(t, err)

	f, _ := def.Field("name")
	assert.True(t, f.Required())
	require.Len(t, f.Validators(), 1)

	require.NoError(t, def.Validate(map[string]any{"name": "x"}))
	assert.Equal(t, 1, calls)

	err = def.Validate(map[string]any{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Field name is missing from object.")
}

func TestDeriveMissingPredicates(t *testing.T) {
	s := schema.New("Model",
		schema.String("a"),
		schema.String("b"),
		schema.Integer("c"),
		schema.String("id"),
	).WithOptions(schema.Options{RDFSubject: "id"}).
		WithPredicates(map[string]string{"b": "ex:b"})

	_, err := Derive(s)
	require.Error(t, err)
	assert.True(t, errors.Is(err, mapper.ErrConfiguration))

	var ce *mapper.ConfigurationError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, []string{"The following fields don't have predicates: a, c"}, ce.Problems)
	assert.Equal(t, []string{"a", "c"}, ce.Diagnostics.Fields("missing_predicate"))
}

func TestDeriveUnmappedKind(t *testing.T) {
	s := schema.New("Model", &schema.Field{Name: "extra", Kind: schema.KindMap}).
		WithPredicates(map[string]string{"extra": "ex:extra"})

	_, err := Derive(s)
	require.Error(t, err)
	assert.True(t, errors.Is(err, mapper.ErrConfiguration))

	var fe *FieldTypeMappingError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, schema.KindMap, fe.Kind)
	assert.Equal(t, "extra", fe.Field)
	assert.Contains(t, fe.Error(), "Unable to map field of type Map")
	require.NotNil(t, fe.Diagnostics)
	assert.Equal(t, []string{"extra"}, fe.Diagnostics.Fields("unmapped_type"))
	assert.Equal(t, []string{"RdfModel.extra: Unable to map field of type Map (Model.extra)"}, fe.Diagnostics.Messages())

	list := schema.New("Model", schema.ListOf("anything", []*schema.Field{{Kind: schema.KindAny}})).
		WithPredicates(map[string]string{"anything": "ex:any"})

	_, err = Derive(list)
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, schema.KindAny, fe.Kind)
}

func TestDeriveMultiTypeList(t *testing.T) {
	s := schema.New("Model", schema.ListOf("mixed", []*schema.Field{schema.String(""), schema.Integer("")})).
		WithPredicates(map[string]string{"mixed": "ex:mixed"})

	_, err := Derive(s)
	require.Error(t, err)

	var ce *mapper.ConfigurationError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, []string{"mixed"}, ce.Diagnostics.Fields("multi_type_list"))
}

func TestDeriveNestedListWithoutItems(t *testing.T) {
	s := schema.New("Grid", schema.ListOf("rows", []*schema.Field{schema.ListOf("", nil)})).
		WithPredicates(map[string]string{"rows": "ex:row"})

	_, err := Derive(s)
	require.ErrorIs(t, err, mapper.ErrConfiguration)
	assert.Contains(t, err.Error(), "A set field MUST have an allowed type.")
}

func TestDeriveCyclicSchema(t *testing.T) {
	a := schema.New("A")
	b := schema.New("B", schema.ObjectOf("a", a)).WithPredicates(map[string]string{"a": "ex:a"})
	a.Fields = append(a.Fields, schema.ObjectOf("b", b))
	a.Predicates = map[string]string{"b": "ex:b"}

	_, err := Derive(a)
	require.Error(t, err)
	assert.True(t, errors.Is(err, mapper.ErrConfiguration))
	assert.Contains(t, err.Error(), "Cyclic schema A -> B -> A.")
}

func TestDeriveSharedNestedSchema(t *testing.T) {
	addr := schema.New("Address", schema.String("city")).WithPredicates(map[string]string{"city": "ex:city"})
	s := schema.New("Person",
		schema.ObjectOf("home", addr),
		schema.ObjectOf("work", addr),
	).WithPredicates(map[string]string{"home": "ex:home", "work": "ex:work"})

	def, err := Derive(s)
	require.NoError(t, err)

	home, _ := def.Field("home")
	work, _ := def.Field("work")
	assert.Same(t, home.(*mapper.ObjectField).Definition(), work.(*mapper.ObjectField).Definition())
}

func TestDeriveConfig(t *testing.T) {
	opts := schema.Options{RDFSubject: "id", RDFType: "ex:Thing", RDFPrefixes: map[string]string{"ex": "http://ex.org/"}}
	s := schema.New("Thing", schema.String("name")).WithOptions(opts).
		WithPredicates(map[string]string{"name": "ex:name"})

	def, err := Derive(s)
	require.NoError(t, err)
	assert.Equal(t, mapper.Config{Subject: "id", Type: "ex:Thing", Prefixes: map[string]string{"ex": "http://ex.org/"}}, def.Config())

	other, err := Derive(s, WithConfig(mapper.Config{Subject: "uri"}), WithName("Custom"))
	require.NoError(t, err)
	assert.Equal(t, "Custom", other.Name())
	assert.Equal(t, "uri", other.Config().Subject)

	_, isIRI := other.SubjectField().(*mapper.IRIField)
	assert.True(t, isIRI)

	// the schema is left untouched
	assert.Equal(t, opts, s.Options)
	assert.Len(t, s.Fields, 1)
}

func TestDeriveUnknownOverrideWarns(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	s := schema.New("Model", schema.String("field")).
		WithPredicates(map[string]string{"field": "ex:field"})

	_, err := Derive(s, WithLogger(logger), WithOverrides(Overrides{"feld": Predicate("ex:other")}))
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "override ignored")
	assert.Contains(t, buf.String(), "did you mean field?")
}

func TestDeriveNilSchema(t *testing.T) {
	_, err := Derive(nil)
	require.Error(t, err)

	assert.Panics(t, func() { MustDerive(nil) })
}
