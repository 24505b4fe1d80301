package dag

import "sync"

// Graph is a collection of nodes and their dependencies, representing a DAG.
// All operations on the graph are concurrency-safe.
type Graph struct {
	// mutex protects nodes, order and edgeCount.
	mutex sync.RWMutex
	// nodes stores all nodes in the graph, keyed by their unique ID.
	nodes map[string]*node
	// order lists nodes in insertion order, for deterministic iteration.
	order     []*node
	edgeCount int
}

// node represents a single vertex in the graph. It is un-exported to
// enforce interaction with the graph via the public API (using string IDs),
// not by direct struct manipulation.
type node struct {
	id    string
	phony bool
	// deps holds the prerequisites of this node (outgoing edges), in the
	// order the edges were added.
	deps []*node
	// dependents holds the nodes that list this node as a prerequisite
	// (incoming edges).
	dependents []*node
}

func (n *node) dependsOn(id string) bool {
	for _, d := range n.deps {
		if d.id == id {
			return true
		}
	}
	return false
}

// Edge is a directed edge from a target to one of its prerequisites.
type Edge struct {
	From string
	To   string
}
