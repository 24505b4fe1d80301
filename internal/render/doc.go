// Package render writes parsed Makefiles and their dependency graphs in the
// formats offered by the CLI:
//
//   - dot:   a Graphviz digraph, edges without labels
//   - make:  Makefile text that parses back to an equivalent model
//   - tree:  a Go-syntax dump of the parsed structure
//   - order: one name per line, every prerequisite before its dependents
package render
