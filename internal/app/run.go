package app

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/specialistvlad/mkgraph/internal/ctxlog"
	"github.com/specialistvlad/mkgraph/internal/dag"
	"github.com/specialistvlad/mkgraph/internal/fsutil"
	"github.com/specialistvlad/mkgraph/internal/model"
	"github.com/specialistvlad/mkgraph/internal/parser"
	"github.com/specialistvlad/mkgraph/internal/render"
)

// diagnosticWidth is the wrap width for rendered parse errors.
const diagnosticWidth = 78

type source struct {
	path     string
	makefile *model.Makefile
}

// Run parses the configured Makefiles, builds a single dependency graph from
// all of them and writes it in the configured format.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	paths, err := a.inputs()
	if err != nil {
		return err
	}
	a.logger.Debug("Resolved input makefiles.", "count", len(paths))

	var opts []dag.Option
	if a.config.PhonyTargets {
		opts = append(opts, dag.WithPhonyTargets())
	}

	graph := dag.New()
	sources := make([]source, 0, len(paths))
	for _, path := range paths {
		mf, err := parser.ParseFile(ctx, path)
		if err != nil {
			var pe *parser.ParseError
			if errors.As(err, &pe) {
				if rerr := pe.Render(a.errW, diagnosticWidth, false); rerr != nil {
					a.logger.Warn("Could not render parse error.", "error", rerr)
				}
			}
			return fmt.Errorf("failed to parse makefile: %w", err)
		}
		if err := graph.AddRules(ctxlog.With(ctx, "file", path), mf.Rules, opts...); err != nil {
			return fmt.Errorf("failed to build dependency graph from %s: %w", path, err)
		}
		sources = append(sources, source{path: path, makefile: mf})
	}
	a.logger.Debug("Dependency graph built.", "node_count", graph.Len(), "edge_count", graph.EdgeCount())

	if err := a.write(graph, sources); err != nil {
		return fmt.Errorf("failed to write %s output: %w", a.config.Format, err)
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}

// inputs returns the Makefiles to read. A directory is searched recursively.
func (a *App) inputs() ([]string, error) {
	path := a.config.MakefilePath
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("could not access %s: %w", path, err)
	}
	if !info.IsDir() {
		return []string{path}, nil
	}

	paths, err := fsutil.FindMakefiles(path)
	if err != nil {
		return nil, fmt.Errorf("error searching %s for makefiles: %w", path, err)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no makefiles found under %s", path)
	}
	return paths, nil
}

func (a *App) write(graph *dag.Graph, sources []source) error {
	switch a.config.Format {
	case FormatTree, FormatMake:
		if len(a.config.Select) > 0 {
			a.logger.Warn("Selection only applies to graph formats, ignoring.", "format", a.config.Format)
		}
		return a.writeSources(sources)
	}

	if len(a.config.Select) > 0 {
		sub, err := render.Select(graph, a.config.Select)
		if err != nil {
			return err
		}
		a.logger.Debug("Selected subgraph.", "patterns", a.config.Select, "node_count", sub.Len())
		graph = sub
	}

	switch a.config.Format {
	case FormatOrder:
		return render.Order(a.outW, graph)
	default:
		return render.DOT(a.outW, graph)
	}
}

func (a *App) writeSources(sources []source) error {
	for i, src := range sources {
		if len(sources) > 1 {
			if i > 0 {
				fmt.Fprintln(a.outW)
			}
			fmt.Fprintf(a.outW, "# %s\n", src.path)
		}

		var err error
		if a.config.Format == FormatTree {
			err = render.Tree(a.outW, src.makefile)
		} else {
			err = render.Makefile(a.outW, src.makefile)
		}
		if err != nil {
			return err
		}
	}
	return nil
}
