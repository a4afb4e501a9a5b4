package derive

import (
	"log/slog"

	"rdf-mapper/mapper"
)

// CollapsePredicate is the predicate value requesting a collapsed object field.
const CollapsePredicate = "@collapse"

// Override replaces the derivation of one schema field. Either Predicate or
// Field is set.
type Override struct {
	// Predicate names the relation of the derived field.
	Predicate string
	// Field is used verbatim instead of a derived field.
	Field mapper.Field
}

// Overrides maps attribute names to overrides. Entries naming attributes the
// schema does not have are only allowed for Custom fields.
type Overrides map[string]Override

// Predicate derives the field with predicate p.
func Predicate(p string) Override { return Override{Predicate: p} }

// Collapse derives an object field in collapse mode.
func Collapse() Override { return Override{Predicate: CollapsePredicate} }

// Custom uses f instead of a derived field.
func Custom(f mapper.Field) Override { return Override{Field: f} }

// Option configures Derive.
type Option func(*options)

type options struct {
	overrides Overrides
	config    *mapper.Config
	name      string
	logger    *slog.Logger
}

// WithOverrides sets the override table of the top-level schema.
func WithOverrides(o Overrides) Option {
	return func(opts *options) { opts.overrides = o }
}

// WithConfig replaces the configuration taken from the schema options.
func WithConfig(cfg mapper.Config) Option {
	return func(opts *options) {
		c := cfg.Clone()
		opts.config = &c
	}
}

// WithName names the derived definition. The default is "Rdf" + schema name.
func WithName(name string) Option {
	return func(opts *options) { opts.name = name }
}

// WithLogger sets the logger for derivation warnings. It is also passed to
// every derived definition.
func WithLogger(l *slog.Logger) Option {
	return func(opts *options) {
		if l != nil {
			opts.logger = l
		}
	}
}
