package derive

import (
	"rdf-mapper/internal/common"
	"rdf-mapper/internal/diagnostic"
	"rdf-mapper/mapper"
	"rdf-mapper/schema"
)

// scalarKinds maps leaf schema kinds to field constructors. Object and list
// kinds are derived recursively; every other kind cannot be derived.
var scalarKinds = map[schema.Kind]func(predicate string, opts ...mapper.FieldOption) mapper.Field{
	schema.KindString:   func(p string, o ...mapper.FieldOption) mapper.Field { return mapper.String(p, o...) },
	schema.KindBoolean:  func(p string, o ...mapper.FieldOption) mapper.Field { return mapper.Boolean(p, o...) },
	schema.KindInteger:  func(p string, o ...mapper.FieldOption) mapper.Field { return mapper.Integer(p, o...) },
	schema.KindFloat:    func(p string, o ...mapper.FieldOption) mapper.Field { return mapper.Float(p, o...) },
	schema.KindDate:     func(p string, o ...mapper.FieldOption) mapper.Field { return mapper.Date(p, o...) },
	schema.KindDateTime: func(p string, o ...mapper.FieldOption) mapper.Field { return mapper.DateTime(p, o...) },
	schema.KindTime:     func(p string, o ...mapper.FieldOption) mapper.Field { return mapper.Time(p, o...) },
	schema.KindUUID:     func(p string, o ...mapper.FieldOption) mapper.Field { return mapper.UUID(p, o...) },
}

// Derivable reports whether fields of kind k can be derived.
func Derivable(k schema.Kind) bool {
	_, ok := scalarKinds[k]
	return ok || k == schema.KindObject || k == schema.KindList
}

func (d *deriver) field(owner *schema.Schema, f *schema.Field, predicate string) (mapper.Field, error) {
	var opts []mapper.FieldOption
	if f.Required {
		opts = append(opts, mapper.Required())
	}

	if len(f.Validators) > 0 {
		opts = append(opts, mapper.WithValidators(f.Validators...))
	}

	switch f.Kind {
	case schema.KindObject:
		return d.object(f, predicate, opts)
	case schema.KindList:
		return d.list(owner, f, predicate, opts)
	}

	build, ok := scalarKinds[f.Kind]
	if !ok {
		return nil, newFieldTypeMappingError(owner, f)
	}

	return build(predicate, opts...), nil
}

func (d *deriver) object(f *schema.Field, predicate string, opts []mapper.FieldOption) (mapper.Field, error) {
	if f.Schema == nil {
		var diags diagnostic.Diagnostics
		diags.AddError(diagnostic.CodeMissingDefinition, "Object field has no schema.", "", f.Name)

		return nil, mapper.NewConfigurationError(f.Name, &diags)
	}

	def, ok := d.nested[f.Schema]
	if !ok {
		var err error

		def, err = d.definition(f.Schema, DefinitionName(f.Schema), ConfigOf(f.Schema.Options), nil)
		if err != nil {
			return nil, err
		}

		d.nested[f.Schema] = def
	}

	if predicate == CollapsePredicate {
		return mapper.Object(def, append(opts, mapper.Collapse(true))...), nil
	}

	return mapper.Object(def, append(opts, mapper.WithPredicate(predicate))...), nil
}

func (d *deriver) list(owner *schema.Schema, f *schema.Field, predicate string, opts []mapper.FieldOption) (mapper.Field, error) {
	if common.IsMultiple(f.Items) {
		var diags diagnostic.Diagnostics
		diags.AddError(diagnostic.CodeMultiTypeList,
			"Only single types are allowed for list fields.", DefinitionName(owner), f.Name)

		return nil, mapper.NewConfigurationError(DefinitionName(owner), &diags)
	}

	item, ok := common.First(f.Items)
	if !ok || item == nil {
		var diags diagnostic.Diagnostics
		diags.AddError(diagnostic.CodeMissingAllowedType,
			"A set field MUST have an allowed type.", DefinitionName(owner), f.Name)

		return nil, mapper.NewConfigurationError(DefinitionName(owner), &diags)
	}

	elem, err := d.field(owner, item, "")
	if err != nil {
		return nil, err
	}

	return mapper.Set(elem, append(opts, mapper.WithPredicate(predicate))...), nil
}
