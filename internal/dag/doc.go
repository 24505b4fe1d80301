// Package dag builds the dependency graph of a parsed Makefile.
//
// Nodes are target and prerequisite names. An edge runs from a target to each
// of its prerequisites and carries no weight. The graph is acyclic at all
// times: AddEdge checks whether the new edge would close a cycle before
// committing it and rejects it with a *CycleError, leaving the graph exactly
// as it was.
//
// The package does not order or execute anything. Consumers such as the
// renderers walk the finished graph themselves.
package dag
