package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"maps"
	"os"
	"slices"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"gopkg.in/yaml.v3"

	"rdf-mapper/derive"
	"rdf-mapper/internal/analyze"
	"rdf-mapper/mapper"
	"rdf-mapper/rdf"
	"rdf-mapper/schema"
)

func newFlagSet(e *env, name, args string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(e.stderr)
	fs.Usage = func() {
		fmt.Fprintf(e.stderr, "Usage: rdf-mapper %s [flags] %s\n", name, args)
		fs.PrintDefaults()
	}

	return fs
}

func parse(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		return errUsage
	}

	return nil
}

func runCheck(e *env, args []string) error {
	fs := newFlagSet(e, "check", "<packages>")
	dir := fs.String("dir", "", "Directory package patterns are resolved in")

	if err := parse(fs, args); err != nil {
		return err
	}

	if fs.NArg() == 0 {
		fs.Usage()
		return errUsage
	}

	a := analyze.NewAnalyzer()
	a.Dir = *dir

	graph, err := a.LoadPackages(fs.Args()...)
	if err != nil {
		return err
	}

	candidates := graph.Candidates()
	e.logger.Info("packages loaded", "packages", len(graph.Packages), "candidates", len(candidates))

	failed := 0

	for _, id := range candidates {
		s, err := graph.Schema(id)
		if err == nil {
			if bad := graph.Unsupported(id, s, derive.Derivable); len(bad) > 0 {
				err = fmt.Errorf("unsupported field types:\n%s", strings.Join(bad, "\n"))
			}
		}

		if err == nil {
			_, err = derive.Derive(s, derive.WithLogger(e.logger))
		}

		if err != nil {
			failed++

			fmt.Fprintf(e.stdout, "FAIL %s\n", id)

			for _, line := range strings.Split(err.Error(), "\n") {
				fmt.Fprintf(e.stdout, "     %s\n", line)
			}

			continue
		}

		fmt.Fprintf(e.stdout, "ok   %s (%d fields)\n", id, len(s.Fields))
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d types failed", failed, len(candidates))
	}

	return nil
}

func runRender(e *env, args []string) error {
	fs := newFlagSet(e, "render", "<data file>")
	schemaPath := fs.String("schema", "", "YAML schema document (required)")
	name := fs.String("name", "", "Schema to render with; optional when the document declares one")
	format := fs.String("format", "turtle", "Output format (turtle, nquads)")
	subject := fs.String("subject", "", "Subject IRI overriding the subject field")

	if err := parse(fs, args); err != nil {
		return err
	}

	if *schemaPath == "" || fs.NArg() != 1 {
		fs.Usage()
		return errUsage
	}

	write, err := writerFor(*format)
	if err != nil {
		return err
	}

	s, err := lookupSchema(*schemaPath, *name)
	if err != nil {
		return err
	}

	def, err := derive.Derive(s, derive.WithLogger(e.logger))
	if err != nil {
		return err
	}

	records, err := readRecords(fs.Arg(0))
	if err != nil {
		return err
	}

	var sub any
	if *subject != "" {
		sub = *subject
	}

	g := rdf.NewGraph()

	var errs []error

	for i, raw := range records {
		values, err := s.Decode(raw)
		if err == nil {
			err = def.Validate(values)
		}

		if err != nil {
			errs = append(errs, fmt.Errorf("record %d: %w", i, err))
			continue
		}

		g.Merge(def.Bind(values).BuildGraph(sub))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	e.logger.Info("graph built", "definition", def.Name(), "records", len(records), "triples", g.Len())

	return write(e.stdout, g)
}

func writerFor(format string) (func(io.Writer, *rdf.Graph) error, error) {
	switch strings.ToLower(format) {
	case "turtle", "ttl":
		return rdf.WriteTurtle, nil
	case "nquads", "nq":
		return rdf.WriteNQuads, nil
	default:
		return nil, fmt.Errorf("unknown format %q", format)
	}
}

func lookupSchema(path, name string) (*schema.Schema, error) {
	doc, err := schema.LoadFile(path)
	if err != nil {
		return nil, err
	}

	if name == "" {
		if len(doc.Schemas) != 1 {
			return nil, fmt.Errorf("%s declares %d schemas, pick one with -name", path, len(doc.Schemas))
		}

		name = doc.Schemas[0].Name
	}

	return doc.Lookup(name)
}

// readRecords reads a YAML or JSON file holding one record or a list of them.
func readRecords(path string) ([]map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read data file %s: %w", path, err)
	}

	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse data file %s: %w", path, err)
	}

	switch v := raw.(type) {
	case map[string]any:
		return []map[string]any{v}, nil
	case []any:
		res := make([]map[string]any, 0, len(v))

		for i, item := range v {
			m, ok := item.(map[string]any)
			if !ok {
				return nil, fmt.Errorf("%s: record %d is not a mapping", path, i)
			}

			res = append(res, m)
		}

		return res, nil
	default:
		return nil, fmt.Errorf("%s: expected a mapping or a list of mappings", path)
	}
}

func runDerive(e *env, args []string) error {
	fs := newFlagSet(e, "derive", "")
	schemaPath := fs.String("schema", "", "YAML schema document (required)")
	name := fs.String("name", "", "Schema to derive; every schema when empty")
	dump := fs.Bool("dump", false, "Dump the resolved schema before the mapping")

	if err := parse(fs, args); err != nil {
		return err
	}

	if *schemaPath == "" {
		fs.Usage()
		return errUsage
	}

	doc, err := schema.LoadFile(*schemaPath)
	if err != nil {
		return err
	}

	all, err := doc.Build()
	if err != nil {
		return err
	}

	names := slices.Sorted(maps.Keys(all))
	if *name != "" {
		if _, ok := all[*name]; !ok {
			return fmt.Errorf("schema %q not found", *name)
		}

		names = []string{*name}
	}

	for _, n := range names {
		s := all[n]

		if *dump {
			cfg := spew.ConfigState{Indent: "  ", DisablePointerAddresses: true, SortKeys: true}
			cfg.Fdump(e.stdout, s)
		}

		def, err := derive.Derive(s, derive.WithLogger(e.logger))
		if err != nil {
			return err
		}

		printDefinition(e.stdout, def, "")
	}

	return nil
}

func printDefinition(w io.Writer, def *mapper.Definition, indent string) {
	cfg := def.Config()

	fmt.Fprintf(w, "%s%s", indent, def.Name())

	if cfg.Type != "" {
		fmt.Fprintf(w, " a %s", cfg.Type)
	}

	fmt.Fprintln(w)

	for _, f := range def.Fields() {
		printField(w, f, indent+"  ")
	}
}

func printField(w io.Writer, f mapper.Field, indent string) {
	var attrs []string

	if p := f.Predicate(); p != "" {
		attrs = append(attrs, p)
	}

	if dt := f.Datatype(); dt != "" {
		attrs = append(attrs, "^^"+dt)
	}

	if f.Required() {
		attrs = append(attrs, "required")
	}

	if gf, ok := f.(mapper.GraphField); ok && gf.Collapsed() {
		attrs = append(attrs, "collapse")
	}

	label := f.Name()
	if label == "" {
		label = "[]"
	}

	fmt.Fprintf(w, "%s%s %s", indent, label, kindOf(f))

	if len(attrs) > 0 {
		fmt.Fprintf(w, " (%s)", strings.Join(attrs, ", "))
	}

	fmt.Fprintln(w)

	switch v := f.(type) {
	case *mapper.ObjectField:
		if def := v.Definition(); def != nil {
			printDefinition(w, def, indent+"  ")
		}
	case *mapper.SetField:
		printField(w, v.Allowed(), indent+"  ")
	}
}

func kindOf(f mapper.Field) string {
	name := fmt.Sprintf("%T", f)
	name = strings.TrimPrefix(name, "*mapper.")

	return strings.TrimSuffix(name, "Field")
}
