package dag

import (
	"fmt"
	"strings"
)

// New creates and returns an initialized, empty Graph.
func New() *Graph {
	return &Graph{
		nodes: make(map[string]*node),
	}
}

// AddNode adds a new node with the given ID to the graph. If a node with
// the same ID already exists, the function does nothing.
func (g *Graph) AddNode(id string) {
	g.mutex.Lock()
	defer g.mutex.Unlock()
	g.addNodeLocked(id)
}

func (g *Graph) addNodeLocked(id string) *node {
	if n, ok := g.nodes[id]; ok {
		return n
	}
	// The graph owns its keys; nothing may pin the parsed source text.
	id = strings.Clone(id)
	n := &node{id: id}
	g.nodes[id] = n
	g.order = append(g.order, n)
	return n
}

// MarkPhony adds the node if needed and flags it as a phony target.
func (g *Graph) MarkPhony(id string) {
	g.mutex.Lock()
	defer g.mutex.Unlock()
	g.addNodeLocked(id).phony = true
}

// IsPhony reports whether the node exists and is flagged as phony.
func (g *Graph) IsPhony(id string) bool {
	g.mutex.RLock()
	defer g.mutex.RUnlock()
	n, ok := g.nodes[id]
	return ok && n.phony
}

// AddEdge creates a directed edge from the target `fromID` to its
// prerequisite `toID`. Adding an existing edge is a no-op. An error is
// returned if either node does not exist, or a *CycleError if `toID` already
// reaches `fromID`; in both cases the graph is left unchanged.
func (g *Graph) AddEdge(fromID, toID string) error {
	g.mutex.Lock()
	defer g.mutex.Unlock()
	_, err := g.addEdgeLocked(fromID, toID)
	return err
}

// addEdgeLocked reports whether a new edge was committed.
func (g *Graph) addEdgeLocked(fromID, toID string) (bool, error) {
	fromNode, ok := g.nodes[fromID]
	if !ok {
		return false, fmt.Errorf("source node not found: %s", fromID)
	}
	toNode, ok := g.nodes[toID]
	if !ok {
		return false, fmt.Errorf("destination node not found: %s", toID)
	}
	if fromNode.dependsOn(toID) {
		return false, nil
	}

	if path := pathBetween(toNode, fromNode); path != nil {
		return false, &CycleError{From: fromID, To: toID, Path: append([]string{fromID}, path...)}
	}

	fromNode.deps = append(fromNode.deps, toNode)
	toNode.dependents = append(toNode.dependents, fromNode)
	g.edgeCount++
	return true, nil
}

func (g *Graph) removeEdgeLocked(fromID, toID string) {
	fromNode, toNode := g.nodes[fromID], g.nodes[toID]
	if fromNode == nil || toNode == nil || !fromNode.dependsOn(toID) {
		return
	}
	fromNode.deps = without(fromNode.deps, toNode)
	toNode.dependents = without(toNode.dependents, fromNode)
	g.edgeCount--
}

func without(nodes []*node, n *node) []*node {
	out := nodes[:0]
	for _, m := range nodes {
		if m != n {
			out = append(out, m)
		}
	}
	return out
}

// pathBetween returns the IDs along a dependency path from start to goal,
// both included, or nil if goal is unreachable. Only the part of the graph
// reachable from start is visited.
func pathBetween(start, goal *node) []string {
	parent := map[*node]*node{start: nil}
	stack := []*node{start}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if n == goal {
			var path []string
			for ; n != nil; n = parent[n] {
				path = append(path, n.id)
			}
			for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
				path[i], path[j] = path[j], path[i]
			}
			return path
		}
		for i := len(n.deps) - 1; i >= 0; i-- {
			dep := n.deps[i]
			if _, seen := parent[dep]; seen {
				continue
			}
			parent[dep] = n
			stack = append(stack, dep)
		}
	}
	return nil
}

// Dependencies returns the IDs of the prerequisites of the given node, in the
// order the edges were added.
func (g *Graph) Dependencies(id string) ([]string, error) {
	g.mutex.RLock()
	defer g.mutex.RUnlock()

	n, ok := g.nodes[id]
	if !ok {
		return nil, fmt.Errorf("node not found: %s", id)
	}
	return ids(n.deps), nil
}

// Dependents returns the IDs of the nodes that list the given node as a
// prerequisite.
func (g *Graph) Dependents(id string) ([]string, error) {
	g.mutex.RLock()
	defer g.mutex.RUnlock()

	n, ok := g.nodes[id]
	if !ok {
		return nil, fmt.Errorf("node not found: %s", id)
	}
	return ids(n.dependents), nil
}

func ids(nodes []*node) []string {
	out := make([]string, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, n.id)
	}
	return out
}

// Nodes returns every node ID in insertion order.
func (g *Graph) Nodes() []string {
	g.mutex.RLock()
	defer g.mutex.RUnlock()
	return ids(g.order)
}

// HasNode reports whether a node with the given ID exists.
func (g *Graph) HasNode(id string) bool {
	g.mutex.RLock()
	defer g.mutex.RUnlock()
	_, ok := g.nodes[id]
	return ok
}

// HasEdge reports whether the edge fromID -> toID exists.
func (g *Graph) HasEdge(fromID, toID string) bool {
	g.mutex.RLock()
	defer g.mutex.RUnlock()
	n, ok := g.nodes[fromID]
	return ok && n.dependsOn(toID)
}

// Edges returns every edge, grouped by source node in insertion order.
func (g *Graph) Edges() []Edge {
	g.mutex.RLock()
	defer g.mutex.RUnlock()

	edges := make([]Edge, 0, g.edgeCount)
	for _, n := range g.order {
		for _, dep := range n.deps {
			edges = append(edges, Edge{From: n.id, To: dep.id})
		}
	}
	return edges
}

// Len returns the number of nodes.
func (g *Graph) Len() int {
	g.mutex.RLock()
	defer g.mutex.RUnlock()
	return len(g.order)
}

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int {
	g.mutex.RLock()
	defer g.mutex.RUnlock()
	return g.edgeCount
}

// Subgraph returns a new graph holding the given roots and every node they
// reach, with the edges between them. Unknown roots are ignored.
func (g *Graph) Subgraph(roots ...string) *Graph {
	g.mutex.RLock()
	defer g.mutex.RUnlock()

	keep := make(map[*node]bool)
	var visit func(n *node)
	visit = func(n *node) {
		if keep[n] {
			return
		}
		keep[n] = true
		for _, dep := range n.deps {
			visit(dep)
		}
	}
	for _, id := range roots {
		if n, ok := g.nodes[id]; ok {
			visit(n)
		}
	}

	sub := New()
	for _, n := range g.order {
		if keep[n] {
			sub.addNodeLocked(n.id).phony = n.phony
		}
	}
	for _, n := range g.order {
		if !keep[n] {
			continue
		}
		for _, dep := range n.deps {
			// Both ends exist and the source graph is acyclic.
			_, _ = sub.addEdgeLocked(n.id, dep.id)
		}
	}
	return sub
}

// DetectCycles checks the whole graph for cycles. AddEdge never lets one in,
// so a non-nil result indicates a bug.
func (g *Graph) DetectCycles() error {
	g.mutex.RLock()
	defer g.mutex.RUnlock()

	// Use classic depth-first search with three sets of nodes:
	// permanent: nodes that have been fully visited and are not part of a cycle.
	// temporary: nodes currently in the recursion stack for the current traversal.
	// unvisited: all other nodes.
	permanent := make(map[*node]bool)
	temporary := make(map[*node]bool)

	var visit func(n *node) error
	visit = func(n *node) error {
		if permanent[n] {
			return nil
		}
		if temporary[n] {
			return fmt.Errorf("cycle detected involving node '%s'", n.id)
		}
		temporary[n] = true
		for _, dep := range n.deps {
			if err := visit(dep); err != nil {
				return err
			}
		}
		delete(temporary, n)
		permanent[n] = true
		return nil
	}

	for _, n := range g.order {
		if err := visit(n); err != nil {
			return err
		}
	}
	return nil
}
