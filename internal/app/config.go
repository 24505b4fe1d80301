package app

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// Output formats understood by Run.
const (
	FormatDOT   = "dot"
	FormatTree  = "tree"
	FormatMake  = "make"
	FormatOrder = "order"
)

// Formats lists every supported output format, default first.
var Formats = []string{FormatDOT, FormatTree, FormatMake, FormatOrder}

// LogLevels and LogFormats list the accepted logging settings.
var (
	LogLevels  = []string{"debug", "info", "warn", "error"}
	LogFormats = []string{"text", "json"}
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	// MakefilePath is a Makefile, or a directory searched for Makefiles.
	MakefilePath string
	Format       string
	// Select holds glob patterns. When set, graph output is limited to the
	// matching targets and everything they depend on.
	Select       []string
	PhonyTargets bool

	LogFormat string
	LogLevel  string
}

// NewConfig validates cfg and fills in defaults for empty fields.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.MakefilePath == "" {
		return nil, errors.New("MakefilePath is a required configuration field and cannot be empty")
	}

	if cfg.Format == "" {
		cfg.Format = FormatDOT
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = "text"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	cfg.Format = strings.ToLower(cfg.Format)
	cfg.LogFormat = strings.ToLower(cfg.LogFormat)
	cfg.LogLevel = strings.ToLower(cfg.LogLevel)

	if err := oneOf("format", cfg.Format, Formats); err != nil {
		return nil, err
	}
	if err := oneOf("log-format", cfg.LogFormat, LogFormats); err != nil {
		return nil, err
	}
	if err := oneOf("log-level", cfg.LogLevel, LogLevels); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func oneOf(name, value string, allowed []string) error {
	if slices.Contains(allowed, value) {
		return nil
	}
	quoted := make([]string, len(allowed))
	for i, a := range allowed {
		quoted[i] = "'" + a + "'"
	}
	return fmt.Errorf("invalid %s %q: must be one of %s", name, value, strings.Join(quoted, ", "))
}
