package render

import (
	"bytes"
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/specialistvlad/mkgraph/internal/dag"
	"github.com/specialistvlad/mkgraph/internal/model"
	"github.com/specialistvlad/mkgraph/internal/parser"
)

const sample = `CC := gcc
CFLAGS = -Wall \
         -O2
LIBS !=
.PHONY: all clean
all: prog
prog: main.o util.o
	$(CC) -o prog main.o util.o

main.o: main.c
	$(CC) $(CFLAGS) -c main.c
util.o: util.c \
        util.h
	$(CC) $(CFLAGS) -c util.c
clean:
	rm -f prog *.o
`

func mustGraph(t *testing.T, src string, opts ...dag.Option) *dag.Graph {
	t.Helper()
	mf, err := parser.Parse(src)
	require.NoError(t, err)
	g, err := dag.Build(context.Background(), mf, opts...)
	require.NoError(t, err)
	return g
}

func TestMakefile_RoundTrip(t *testing.T) {
	t.Parallel()

	inputs := map[string]string{
		"sample":                    sample,
		"empty":                     "",
		"variables only":            "A = 1\nB += 2 \\\n\t3\n",
		"rules only":                "a b: c d\n\techo $@\n\n\techo again\n",
		"empty fragment":            "A = x \\\n\n",
		"continued at end of input": "A = 1 \\",
		"dangling carriage return":  "A = b\r",
	}
	for name, src := range inputs {
		src := src
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			first, err := parser.Parse(src)
			require.NoError(t, err)

			var buf bytes.Buffer
			require.NoError(t, Makefile(&buf, first))

			second, err := parser.Parse(buf.String())
			require.NoError(t, err, "re-parsing:\n%s", buf.String())

			if diff := cmp.Diff(first, second); diff != "" {
				t.Errorf("round trip mismatch (-first +second):\n%s", diff)
			}
		})
	}
}

func TestMakefile_Text(t *testing.T) {
	t.Parallel()

	mf := &model.Makefile{
		Variables: []model.Variable{
			{Name: "CFLAGS", Assignment: model.Recursive, Value: []string{`-Wall \`, "-O2"}},
			{Name: "EMPTY", Assignment: model.Simple, Value: []string{""}},
		},
		Rules: []model.Rule{
			{Targets: []string{"all"}, Prerequisites: []string{"prog"}, Recipe: []string{}},
			{Targets: []string{"clean"}, Prerequisites: []string{}, Recipe: []string{"rm -f prog"}},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, Makefile(&buf, mf))
	assert.Equal(t, "CFLAGS = -Wall \\\n\t-O2\nEMPTY :=\n\nall: prog\n\nclean:\n\trm -f prog\n", buf.String())
}

func TestDOT(t *testing.T) {
	t.Parallel()

	g := dag.New()
	g.AddNode("all")
	g.AddNode("prog")
	g.AddNode(`"main.o"`)
	g.MarkPhony("all")
	require.NoError(t, g.AddEdge("all", "prog"))
	require.NoError(t, g.AddEdge("prog", `"main.o"`))

	var buf bytes.Buffer
	require.NoError(t, DOT(&buf, g))
	assert.Equal(t, `digraph {
    "all" [ style = dashed ]
    "prog"
    "\"main.o\""
    "all" -> "prog"
    "prog" -> "\"main.o\""
}
`, buf.String())
}

func TestDOT_Empty(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, DOT(&buf, dag.New()))
	assert.Equal(t, "digraph {\n}\n", buf.String())
}

func TestTree(t *testing.T) {
	t.Parallel()

	mf, err := parser.Parse("CC := gcc\nall: prog\n")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Tree(&buf, mf))
	out := buf.String()
	assert.Contains(t, out, "model.Makefile")
	assert.Contains(t, out, `"CC"`)
	assert.Contains(t, out, `"prog"`)
}

func TestBuildOrder(t *testing.T) {
	t.Parallel()

	g := mustGraph(t, "a b: c d\nc: e\n")

	order, err := BuildOrder(g)
	require.NoError(t, err)
	assert.Equal(t, []string{"d", "e", "c", "a", "b"}, order)
}

func TestOrder_Writes(t *testing.T) {
	t.Parallel()

	g := mustGraph(t, "all: prog\nprog: main.o\n")

	var buf bytes.Buffer
	require.NoError(t, Order(&buf, g))
	assert.Equal(t, "main.o\nprog\nall\n", buf.String())
}

func TestSelect(t *testing.T) {
	t.Parallel()

	g := mustGraph(t, "all: prog docs\nprog: src/main.o src/util.o\nsrc/main.o: src/main.c\ndocs: README\n")

	tests := []struct {
		name     string
		patterns []string
		want     []string
	}{
		{"single target", []string{"prog"}, []string{"prog", "src/main.o", "src/util.o", "src/main.c"}},
		{"star stays in directory", []string{"src/*.o"}, []string{"src/main.o", "src/util.o", "src/main.c"}},
		{"star does not cross slash", []string{"*.o"}, nil},
		{"double star crosses slash", []string{"**.c"}, []string{"src/main.c"}},
		{"several patterns", []string{"docs", "src/util.o"}, []string{"docs", "src/util.o", "README"}},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			sub, err := Select(g, tt.patterns)
			if tt.want == nil {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "no target matches")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, sub.Nodes())
		})
	}
}

func TestSelect_InvalidPattern(t *testing.T) {
	t.Parallel()

	_, err := Select(dag.New(), []string{"[a"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid select pattern "[a"`)
}
