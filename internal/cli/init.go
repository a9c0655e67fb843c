package cli

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"aiquiz/internal/config"
)

// runInit builds the handler for the init command.
func runInit(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		flags.SetOutput(stderr)
		configPath := flags.String("config", "", "Path to config file (default: ./.aiquiz/config.yml)")
		assumeYes := flags.Bool("yes", false, "Accept all defaults without prompting")
		if err := flags.Parse(args); err != nil {
			if err == flag.ErrHelp {
				printCommandUsage(cmd, stdout)
				return ExitOK
			}
			fmt.Fprintf(stderr, "invalid arguments: %v\n", err)
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}
		if flags.NArg() > 0 {
			fmt.Fprintf(stderr, "unexpected arguments: %s\n", strings.Join(flags.Args(), " "))
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}

		target := strings.TrimSpace(*configPath)
		if target == "" {
			wd, err := os.Getwd()
			if err != nil {
				fmt.Fprintf(stderr, "Init failed: %v\n", err)
				return ExitError
			}
			target = config.ConfigPath(wd)
		}
		target, err := filepath.Abs(target)
		if err != nil {
			fmt.Fprintf(stderr, "Init failed: %v\n", err)
			return ExitError
		}
		if _, err := os.Stat(target); err == nil {
			fmt.Fprintf(stderr, "Init failed: config file already exists at %q\n", target)
			return ExitError
		}

		cfg := config.Default()
		if !*assumeYes {
			reader := bufio.NewReader(stdinReader)
			if err := promptConfig(reader, stdout, target, &cfg); err != nil {
				fmt.Fprintf(stderr, "Init failed: %v\n", err)
				return ExitError
			}
		}

		if err := config.Scaffold(target, cfg); err != nil {
			fmt.Fprintf(stderr, "Init failed: %v\n", err)
			return ExitError
		}
		fmt.Fprintf(stdout, "Wrote %s\n", target)
		return ExitOK
	}
}

// errInitCancelled is returned when the user declines the confirmation.
var errInitCancelled = errors.New("cancelled")

// promptConfig asks for the values worth changing from the defaults.
func promptConfig(reader *bufio.Reader, out io.Writer, target string, cfg *config.Config) error {
	confirm, err := promptYesNo(reader, out, fmt.Sprintf("Write aiquiz config to %s?", target), true)
	if err != nil {
		return err
	}
	if !confirm {
		return errInitCancelled
	}
	if cfg.Provider.Model, err = promptString(reader, out, "Model", cfg.Provider.Model); err != nil {
		return err
	}
	if cfg.Provider.BaseURL, err = promptString(reader, out, "API base URL", cfg.Provider.BaseURL); err != nil {
		return err
	}
	if cfg.Provider.APIKeyEnv, err = promptString(reader, out, "API key environment variable", cfg.Provider.APIKeyEnv); err != nil {
		return err
	}
	if cfg.UI.Color, err = promptString(reader, out, "Color (auto|always|never)", cfg.UI.Color); err != nil {
		return err
	}
	return nil
}
