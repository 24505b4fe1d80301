package dag

import (
	"fmt"
	"strings"
)

// CycleError is returned when an edge would close a cycle.
type CycleError struct {
	// From and To describe the rejected edge.
	From string
	To   string
	// Path is the cycle the edge would have closed, starting and ending at From.
	Path []string
}

// Error implements the error interface.
func (e *CycleError) Error() string {
	return fmt.Sprintf("cycle detected: edge %q -> %q would close %s", e.From, e.To, strings.Join(e.Path, " -> "))
}
