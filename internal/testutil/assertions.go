package testutil

import (
	"fmt"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// Lines splits the output of an `order` run into names.
func Lines(result *HarnessResult) []string {
	return strings.Fields(result.Output)
}

// AssertBuiltBefore checks, on the output of an `order` run, that prereq is
// listed before target.
func AssertBuiltBefore(t *testing.T, result *HarnessResult, prereq, target string) {
	t.Helper()

	order := Lines(result)
	p, tg := slices.Index(order, prereq), slices.Index(order, target)
	require.NotEqual(t, -1, p, "%q missing from build order %v", prereq, order)
	require.NotEqual(t, -1, tg, "%q missing from build order %v", target, order)
	require.Less(t, p, tg, "expected %q to be built before %q in %v", prereq, target, order)
}

// AssertEdge checks, on the output of a `dot` run, that the edge from target
// to prereq was drawn.
func AssertEdge(t *testing.T, result *HarnessResult, target, prereq string) {
	t.Helper()

	edge := fmt.Sprintf("%q -> %q", target, prereq)
	require.True(t,
		strings.Contains(result.Output, edge),
		"expected edge %s in output:\n%s", edge, result.Output,
	)
}
