package dag

import (
	"context"
	"fmt"

	"github.com/specialistvlad/mkgraph/internal/ctxlog"
	"github.com/specialistvlad/mkgraph/internal/model"
)

type buildOptions struct {
	phonyTargets bool
}

// Option configures Build and AddRules.
type Option func(*buildOptions)

// WithPhonyTargets makes the prerequisites of a .PHONY rule graph nodes
// flagged as phony. By default a .PHONY rule contributes nothing at all.
// Either way .PHONY itself never becomes a node.
func WithPhonyTargets() Option {
	return func(o *buildOptions) {
		o.phonyTargets = true
	}
}

// Build constructs the dependency graph of a parsed Makefile. If any edge
// would close a cycle, no graph is returned.
func Build(ctx context.Context, mf *model.Makefile, opts ...Option) (*Graph, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Build: Starting graph construction.", "rule_count", len(mf.Rules))

	graph := New()
	if err := graph.AddRules(ctx, mf.Rules, opts...); err != nil {
		return nil, err
	}

	logger.Debug("Build: Graph construction successful.", "node_count", graph.Len(), "edge_count", graph.EdgeCount())
	return graph, nil
}

// AddRules adds the nodes and edges described by rules. For every target
// other than .PHONY, the target and each of its prerequisites become nodes
// and an edge runs from the target to each prerequisite.
//
// If an edge would close a cycle, every edge added by this call is removed
// again and the *CycleError is returned wrapped. Nodes created by the call
// remain, without edges.
func (g *Graph) AddRules(ctx context.Context, rules []model.Rule, opts ...Option) error {
	logger := ctxlog.FromContext(ctx)
	var o buildOptions
	for _, opt := range opts {
		opt(&o)
	}

	g.mutex.Lock()
	defer g.mutex.Unlock()

	var added []Edge
	rollback := func() {
		for i := len(added) - 1; i >= 0; i-- {
			g.removeEdgeLocked(added[i].From, added[i].To)
		}
	}

	for i, rule := range rules {
		for _, target := range rule.Targets {
			if target == model.PhonyTarget {
				if o.phonyTargets {
					for _, p := range rule.Prerequisites {
						if p != model.PhonyTarget {
							g.addNodeLocked(p).phony = true
						}
					}
				}
				continue
			}

			g.addNodeLocked(target)
			for _, prereq := range rule.Prerequisites {
				if prereq == model.PhonyTarget {
					continue
				}
				g.addNodeLocked(prereq)
				committed, err := g.addEdgeLocked(target, prereq)
				if err != nil {
					rollback()
					logger.Debug("AddRules: Rejected edge.", "rule", i+1, "from", target, "to", prereq, "error", err)
					return fmt.Errorf("error building dependency graph: rule %d: %w", i+1, err)
				}
				if committed {
					added = append(added, Edge{From: target, To: prereq})
				}
			}
		}
	}
	return nil
}
