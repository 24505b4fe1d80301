package integration_tests

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/specialistvlad/mkgraph/internal/app"
	"github.com/specialistvlad/mkgraph/internal/dag"
	"github.com/specialistvlad/mkgraph/internal/testutil"
)

func TestErrorHandling_CycleIsRejected(t *testing.T) {
	t.Parallel()

	files := map[string]string{
		"Makefile": "a: b\nb: c\nc: a\n",
	}

	result := testutil.RunIntegrationTest(t, files, app.Config{MakefilePath: "Makefile"})

	require.Error(t, result.Err)
	var cycleErr *dag.CycleError
	require.True(t, errors.As(result.Err, &cycleErr), "expected a *dag.CycleError, got %v", result.Err)
	require.Equal(t, "c", cycleErr.From)
	require.Equal(t, "a", cycleErr.To)
	require.Equal(t, []string{"c", "a", "b", "c"}, cycleErr.Path)
	require.Empty(t, result.Output)
}

func TestErrorHandling_CycleAcrossFilesIsRejected(t *testing.T) {
	t.Parallel()

	files := map[string]string{
		"a/Makefile": "x: y\n",
		"b/Makefile": "y: x\n",
	}

	result := testutil.RunIntegrationTest(t, files, app.Config{})

	require.Error(t, result.Err)
	require.Contains(t, result.Err.Error(), "b/Makefile")
	require.Contains(t, result.Err.Error(), "cycle detected")
}

func TestErrorHandling_SelfDependency(t *testing.T) {
	t.Parallel()

	files := map[string]string{
		"Makefile": "loop: loop\n",
	}

	result := testutil.RunIntegrationTest(t, files, app.Config{MakefilePath: "Makefile"})

	require.Error(t, result.Err)
	require.Contains(t, result.Err.Error(), `cycle detected: edge "loop" -> "loop"`)
}
