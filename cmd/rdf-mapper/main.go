// Package main provides the CLI entrypoint for rdf-mapper.
//
// rdf-mapper maps plain objects to RDF graphs:
//   - check loads Go packages and derives a mapping for every tagged struct
//   - render converts YAML or JSON records to Turtle or N-Quads with a YAML schema
//   - derive prints the mapping derived from a YAML schema
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
)

// errUsage marks errors already reported through a flag set.
var errUsage = errors.New("usage")

type command struct {
	name    string
	summary string
	run     func(env *env, args []string) error
}

// env is the state shared by every command.
type env struct {
	stdout io.Writer
	stderr io.Writer
	logger *slog.Logger
}

var commands = []command{
	{name: "check", summary: "derive mappings for the tagged structs of Go packages", run: runCheck},
	{name: "render", summary: "render records as RDF using a YAML schema", run: runRender},
	{name: "derive", summary: "print the mapping derived from a YAML schema", run: runDerive},
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("rdf-mapper", flag.ContinueOnError)
	fs.SetOutput(stderr)

	logLevel := fs.String("log-level", "warn", "Log level (debug, info, warn, error)")
	logFormat := fs.String("log-format", "text", "Log format (text, json)")

	fs.Usage = func() { usage(fs) }

	if err := fs.Parse(args); err != nil {
		return 2
	}

	if fs.NArg() == 0 {
		usage(fs)
		return 2
	}

	e := &env{
		stdout: stdout,
		stderr: stderr,
		logger: setupLogger(stderr, *logLevel, *logFormat),
	}

	name := fs.Arg(0)
	for _, c := range commands {
		if c.name != name {
			continue
		}

		err := c.run(e, fs.Args()[1:])

		switch {
		case err == nil:
			return 0
		case errors.Is(err, errUsage):
			return 2
		default:
			fmt.Fprintf(stderr, "rdf-mapper %s: %v\n", name, err)
			return 1
		}
	}

	fmt.Fprintf(stderr, "rdf-mapper: unknown command %q\n", name)
	usage(fs)

	return 2
}

func usage(fs *flag.FlagSet) {
	w := fs.Output()

	fmt.Fprintln(w, "Usage: rdf-mapper [flags] <command> [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")

	for _, c := range commands {
		fmt.Fprintf(w, "  %-8s %s\n", c.name, c.summary)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fs.PrintDefaults()
}
