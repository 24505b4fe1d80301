package parser

import (
	"strings"

	"github.com/specialistvlad/mkgraph/internal/model"
)

// assignmentOps lists the assignment operators. Operators that are a textual
// prefix of another must come after it.
var assignmentOps = []struct {
	op   string
	kind model.Assignment
}{
	{"::=", model.Simple},
	{":=", model.Simple},
	{"+=", model.Append},
	{"?=", model.Conditional},
	{"!=", model.Shell},
	{"=", model.Recursive},
}

func parseAssignmentOp(in input) (input, model.Assignment, error) {
	for _, a := range assignmentOps {
		if in.hasPrefix(a.op) {
			return in.advance(len(a.op)), a.kind, nil
		}
	}
	return in, 0, mismatch(in, "assignment operator")
}

func parseVariableName(in input) (input, string, error) {
	next, name := takeWhile(in, isVariableNameChar)
	if name == "" {
		return in, "", empty(in, "variable name")
	}
	return next, name, nil
}

// parseVariable parses `name <op> value`. A value line ending in a backslash
// continues on the next physical line; each line becomes one fragment, with
// the backslash kept. A continuation at end of input yields an empty last
// fragment, as if the line ending were present. Trailing blank lines are
// consumed.
func parseVariable(in input) (input, model.Variable, error) {
	cur, name, err := parseVariableName(in)
	if err != nil {
		return in, model.Variable{}, wrap(err, "variable", in)
	}
	cur, kind, err := parseAssignmentOp(space0(cur))
	if err != nil {
		return in, model.Variable{}, wrap(err, "variable", in)
	}

	cur, fragment := restOfLine(space0(cur))
	value := []string{fragment}
	for strings.HasSuffix(fragment, `\`) {
		next, err := lineEnding(cur)
		if err != nil {
			if cur.atEOF() {
				value = append(value, "")
			}
			break
		}
		cur, fragment = restOfLine(space0(next))
		value = append(value, fragment)
	}

	return blankLines(cur), model.Variable{Name: name, Assignment: kind, Value: value}, nil
}
