package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/specialistvlad/mkgraph/internal/app"
	"github.com/specialistvlad/mkgraph/internal/config"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// patterns collects a repeatable flag. Each occurrence may also hold a
// comma-separated list.
type patterns []string

func (p *patterns) String() string {
	return strings.Join(*p, ",")
}

func (p *patterns) Set(value string) error {
	for _, s := range strings.Split(value, ",") {
		if s = strings.TrimSpace(s); s != "" {
			*p = append(*p, s)
		}
	}
	return nil
}

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
// Settings come from flags first, then from the settings file, then from the
// flag defaults.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("mkgraph", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
mkgraph - Parse Makefiles and print their dependency graph.

Usage:
  mkgraph [options] [PATH]

Arguments:
  PATH
    A Makefile, or a directory searched recursively for Makefiles.
    Defaults to ./Makefile.

Options:
`)
		flagSet.PrintDefaults()
	}

	fileFlag := flagSet.String("file", "Makefile", "Path to the Makefile or a directory of Makefiles.")
	fFlag := flagSet.String("f", "", "Path to the Makefile or a directory of Makefiles (shorthand).")
	configFlag := flagSet.String("config", "", "Path to a settings file. Defaults to "+config.DefaultFile+" if present.")
	formatFlag := flagSet.String("format", app.FormatDOT, "Output format. Options: "+quoteAll(app.Formats)+".")
	var selectFlag patterns
	flagSet.Var(&selectFlag, "select", "Glob pattern of targets to keep, with everything they depend on. Repeatable.")
	phonyFlag := flagSet.Bool("phony-targets", false, "Add .PHONY prerequisites to the graph as phony nodes.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	if flagSet.NArg() > 1 {
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("expected at most one path, got %d", flagSet.NArg())}
	}
	slog.Debug("Arguments parsed successfully.")

	set := make(map[string]bool)
	flagSet.Visit(func(f *flag.Flag) { set[f.Name] = true })

	configPath, required := config.DefaultFile, false
	if *configFlag != "" {
		configPath, required = *configFlag, true
	}
	file, err := config.Load(context.Background(), configPath, required, os.Environ())
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	cfg := app.Config{
		MakefilePath: pick(set["file"], *fileFlag, file.Makefile),
		Format:       pick(set["format"], *formatFlag, file.Format),
		PhonyTargets: pick(set["phony-targets"], *phonyFlag, file.PhonyTargets),
		LogFormat:    pick(set["log-format"], *logFormatFlag, file.LogFormat),
		LogLevel:     pick(set["log-level"], *logLevelFlag, file.LogLevel),
		Select:       file.Select,
	}
	switch {
	case flagSet.NArg() == 1:
		cfg.MakefilePath = flagSet.Arg(0)
	case *fFlag != "":
		cfg.MakefilePath = *fFlag
	}
	if set["select"] {
		cfg.Select = selectFlag
	}
	slog.Debug("Makefile path determined.", "path", cfg.MakefilePath)

	validated, err := app.NewConfig(cfg)
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", validated)
	return validated, false, nil
}

// pick returns the flag value when the flag was given explicitly, otherwise
// the settings file value if present, otherwise the flag default.
func pick[T any](explicit bool, flagValue T, fileValue *T) T {
	if !explicit && fileValue != nil {
		return *fileValue
	}
	return flagValue
}

func quoteAll(values []string) string {
	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = "'" + v + "'"
	}
	return strings.Join(quoted, ", ")
}
