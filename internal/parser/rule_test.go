package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/specialistvlad/mkgraph/internal/model"
)

func TestParseTarget(t *testing.T) {
	t.Parallel()

	next, name, err := parseTarget(newInput("  out/*.o  : x"))
	require.NoError(t, err)
	assert.Equal(t, "out/*.o", name)
	assert.Equal(t, ": x", next.rest())

	next, _, err = parseTarget(newInput("  : x"))
	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, KindEmpty, pe.Kind)
	assert.Equal(t, "  : x", next.rest())
}

func TestParseTargets(t *testing.T) {
	t.Parallel()

	next, targets, err := parseTargets(newInput("t1 t2\tfile[0-9].txt : p"))
	require.NoError(t, err)
	assert.Equal(t, []string{"t1", "t2", "file[0-9].txt"}, targets)
	assert.Equal(t, ": p", next.rest())

	_, _, err = parseTargets(newInput(": p"))
	assert.Error(t, err)
}

func TestParsePrerequisites(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		name string
		src  string
		want []string
		rest string
	}{
		{name: "single line", src: "a b c\n", want: []string{"a", "b", "c"}, rest: "\n"},
		{name: "none", src: "\n", want: []string{}, rest: "\n"},
		{name: "continued", src: "a b \\\n    c \\\n\td\n", want: []string{"a", "b", "c", "d"}, rest: "\n"},
		{name: "continued without space", src: "a\\\nb\n", want: []string{"a", "b"}, rest: "\n"},
		{name: "leading continuation", src: "\\\n  a b\n", want: []string{"a", "b"}, rest: "\n"},
		{name: "stops at pipe", src: "a | b\n", want: []string{"a"}, rest: "| b\n"},
		{name: "globs and paths", src: "src/*.c ../lib/x?.h\n", want: []string{"src/*.c", "../lib/x?.h"}, rest: "\n"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			next, prereqs := parsePrerequisites(newInput(tc.src))
			assert.Equal(t, tc.want, prereqs)
			assert.Equal(t, tc.rest, next.rest())
		})
	}
}

func TestParseRecipe(t *testing.T) {
	t.Parallel()

	next, recipe := parseRecipe(newInput("\tcc -c main.c\n    @echo done\n\n\t\nnext:"))
	assert.Equal(t, []string{"cc -c main.c", "@echo done", ""}, recipe)
	assert.Equal(t, "next:", next.rest())

	next, recipe = parseRecipe(newInput("unindented\n"))
	assert.Empty(t, recipe)
	assert.Equal(t, "unindented\n", next.rest())
}

func TestParseRule(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		name string
		src  string
		want model.Rule
		rest string
	}{
		{
			name: "targets prerequisites and recipe",
			src:  "t1 t2 : p1 p2\n\trecipe1\n\trecipe2\n",
			want: model.Rule{
				Targets:       []string{"t1", "t2"},
				Prerequisites: []string{"p1", "p2"},
				Recipe:        []string{"recipe1", "recipe2"},
			},
		},
		{
			name: "no prerequisites",
			src:  "clean:\n\trm -f *.o\n",
			want: model.Rule{
				Targets:       []string{"clean"},
				Prerequisites: []string{},
				Recipe:        []string{"rm -f *.o"},
			},
		},
		{
			name: "no recipe",
			src:  "all: prog\nprog: main.o\n",
			want: model.Rule{
				Targets:       []string{"all"},
				Prerequisites: []string{"prog"},
				Recipe:        []string{},
			},
			rest: "prog: main.o\n",
		},
		{
			name: "continued prerequisites",
			src:  "prog: main.o \\\n      util.o\n\tcc -o prog main.o util.o\n",
			want: model.Rule{
				Targets:       []string{"prog"},
				Prerequisites: []string{"main.o", "util.o"},
				Recipe:        []string{"cc -o prog main.o util.o"},
			},
		},
		{
			name: "header at end of input",
			src:  "all: prog",
			want: model.Rule{
				Targets:       []string{"all"},
				Prerequisites: []string{"prog"},
				Recipe:        []string{},
			},
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			next, rule, err := parseRule(newInput(tc.src))
			require.NoError(t, err)
			assert.Equal(t, tc.want, rule)
			assert.Equal(t, tc.rest, next.rest())
		})
	}
}

func TestParseRule_Contexts(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		name     string
		src      string
		contexts []string
		expected string
		offset   int
	}{
		{name: "missing target", src: ": p\n", contexts: []string{"rule", "target"}, expected: "target name", offset: 0},
		{name: "missing delimiter", src: "a b c\n", contexts: []string{"rule", "delimiter"}, expected: "':'", offset: 5},
		{name: "junk after prerequisites", src: "a: b | c\n", contexts: []string{"rule", "prereqs"}, expected: "line ending", offset: 5},
	} {
		t.Run(tc.name, func(t *testing.T) {
			next, _, err := parseRule(newInput(tc.src))
			var pe *ParseError
			require.ErrorAs(t, err, &pe)
			assert.Equal(t, tc.contexts, pe.Contexts())
			assert.Equal(t, tc.expected, pe.Expected)
			assert.Equal(t, tc.offset, pe.Offset)
			assert.Equal(t, tc.src, next.rest())
		})
	}
}
