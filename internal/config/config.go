package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	"github.com/specialistvlad/mkgraph/internal/ctxlog"
)

// DefaultFile is the settings file looked up in the working directory when
// none is given explicitly.
const DefaultFile = ".mkgraph.hcl"

// File is the decoded settings file. A nil field was not set.
type File struct {
	Makefile     *string  `hcl:"file,optional"`
	Format       *string  `hcl:"format,optional"`
	Select       []string `hcl:"select,optional"`
	PhonyTargets *bool    `hcl:"phony_targets,optional"`
	LogLevel     *string  `hcl:"log_level,optional"`
	LogFormat    *string  `hcl:"log_format,optional"`
}

// Load reads and decodes the settings file at path, resolving `env.*`
// references against environ (in os.Environ form). If the file does not
// exist and required is false, an empty File is returned.
func Load(ctx context.Context, path string, required bool, environ []string) (*File, error) {
	logger := ctxlog.FromContext(ctx).With("config", path)

	src, err := os.ReadFile(path)
	if err != nil {
		if !required && errors.Is(err, fs.ErrNotExist) {
			logger.Debug("No settings file found.")
			return &File{}, nil
		}
		return nil, fmt.Errorf("could not read config file %s: %w", path, err)
	}

	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCL(src, path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, diags)
	}

	var file File
	diags = gohcl.DecodeBody(hclFile.Body, EvalContext(environ), &file)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode config file %s: %w", path, diags)
	}

	logger.Debug("Loaded settings file.")
	return &file, nil
}

// EvalContext returns the evaluation context for settings expressions. It
// exposes environ as the `env` object.
func EvalContext(environ []string) *hcl.EvalContext {
	vars := make(map[string]cty.Value, len(environ))
	for _, kv := range environ {
		name, value, ok := strings.Cut(kv, "=")
		if !ok || name == "" {
			continue
		}
		vars[name] = cty.StringVal(value)
	}
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"env": cty.ObjectVal(vars),
		},
	}
}
