package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"aiquiz/internal/config"
	"aiquiz/internal/quiz"
)

// runPlay builds the handler for the play command.
func runPlay(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}
		fs := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		fs.SetOutput(stderr)
		configPath := fs.String("config", "", "Path to config file (default: search for .aiquiz/config.yml)")
		color := fs.String("color", "", "Color output: auto|always|never (default: config ui.color)")
		offline := fs.Bool("offline", false, "Skip generation and use the built-in questions")
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
		mode := cfg.UI.Color
		if *color != "" {
			mode = *color
		}
		noColor, err := resolveNoColor(mode, stdout)
		if err != nil {
			fmt.Fprintf(stderr, "Invalid options: %v\n", err)
			return ExitUsage
		}

		source := newSource(cfg, sourceOptions{offline: *offline, verbose: *verbose}, stderr)
		runner := quiz.NewRunner(stdinReader, stdout, noColor)
		if _, err := quiz.Play(context.Background(), source, runner); err != nil {
			fmt.Fprintf(stderr, "Quiz aborted: %v\n", err)
			return ExitError
		}
		return ExitOK
	}
}
