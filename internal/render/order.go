package render

import (
	"fmt"
	"io"

	"github.com/specialistvlad/mkgraph/internal/dag"
)

// BuildOrder returns every node of g such that each prerequisite comes before
// the targets that depend on it. Among nodes that are ready at the same time,
// graph insertion order wins.
func BuildOrder(g *dag.Graph) ([]string, error) {
	nodes := g.Nodes()
	pending := make(map[string]int, len(nodes))
	var ready []string
	for _, id := range nodes {
		deps, err := g.Dependencies(id)
		if err != nil {
			return nil, err
		}
		pending[id] = len(deps)
		if len(deps) == 0 {
			ready = append(ready, id)
		}
	}

	order := make([]string, 0, len(nodes))
	for len(ready) > 0 {
		id := ready[0]
		ready = ready[1:]
		order = append(order, id)

		dependents, err := g.Dependents(id)
		if err != nil {
			return nil, err
		}
		for _, d := range dependents {
			pending[d]--
			if pending[d] == 0 {
				ready = append(ready, d)
			}
		}
	}

	if len(order) != len(nodes) {
		return nil, fmt.Errorf("graph is not acyclic: ordered %d of %d nodes", len(order), len(nodes))
	}
	return order, nil
}

// Order writes the build order of g, one name per line.
func Order(w io.Writer, g *dag.Graph) error {
	order, err := BuildOrder(g)
	if err != nil {
		return err
	}
	for _, id := range order {
		if _, err := fmt.Fprintln(w, id); err != nil {
			return err
		}
	}
	return nil
}
