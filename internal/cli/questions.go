package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"aiquiz/internal/config"
)

// runQuestions builds the handler for the questions command.
func runQuestions(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}
		fs := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		fs.SetOutput(stderr)
		configPath := fs.String("config", "", "Path to config file (default: search for .aiquiz/config.yml)")
		offline := fs.Bool("offline", false, "Print the built-in questions")
		verbose := fs.Bool("verbose", false, "Log generation requests to stderr")
		if err := fs.Parse(args); err != nil {
			return ExitUsage
		}
		if fs.NArg() > 0 {
			fmt.Fprintf(stderr, "unexpected arguments: %s\n", strings.Join(fs.Args(), " "))
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}

		cfg, _, err := config.LoadOrDefault(*configPath)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to load config:\n%v\n", err)
			return ExitError
		}

		source := newSource(cfg, sourceOptions{offline: *offline, verbose: *verbose}, stderr)
		questions := source.Questions(context.Background())
		encoder := yaml.NewEncoder(stdout)
		encoder.SetIndent(2)
		if err := encoder.Encode(questions); err != nil {
			fmt.Fprintf(stderr, "Failed to encode questions: %v\n", err)
			return ExitError
		}
		if err := encoder.Close(); err != nil {
			fmt.Fprintf(stderr, "Failed to encode questions: %v\n", err)
			return ExitError
		}
		return ExitOK
	}
}
