package render

import (
	"fmt"
	"strings"

	"github.com/gobwas/glob"

	"github.com/specialistvlad/mkgraph/internal/dag"
)

// Select returns the part of g reachable from every node whose name matches
// one of the glob patterns. `*` does not cross a `/`; `**` does.
func Select(g *dag.Graph, patterns []string) (*dag.Graph, error) {
	globs := make([]glob.Glob, 0, len(patterns))
	for _, p := range patterns {
		compiled, err := glob.Compile(p, '/')
		if err != nil {
			return nil, fmt.Errorf("invalid select pattern %q: %w", p, err)
		}
		globs = append(globs, compiled)
	}

	var roots []string
	for _, id := range g.Nodes() {
		for _, gl := range globs {
			if gl.Match(id) {
				roots = append(roots, id)
				break
			}
		}
	}
	if len(roots) == 0 {
		return nil, fmt.Errorf("no target matches %s", strings.Join(patterns, ", "))
	}
	return g.Subgraph(roots...), nil
}
