package parser

import "github.com/specialistvlad/mkgraph/internal/model"

// parseTarget parses one target name surrounded by optional whitespace.
func parseTarget(in input) (input, string, error) {
	cur, name := takeName(space0(in))
	if name == "" {
		return in, "", empty(cur, "target name")
	}
	return space0(cur), name, nil
}

// parseTargets parses one or more target names.
func parseTargets(in input) (input, []string, error) {
	cur, first, err := parseTarget(in)
	if err != nil {
		return in, nil, err
	}
	targets := []string{first}
	for {
		next, name, err := parseTarget(cur)
		if err != nil {
			return cur, targets, nil
		}
		targets = append(targets, name)
		cur = next
	}
}

// parsePrerequisite parses one prerequisite name. A `\` line continuation
// before or after the name is consumed and not kept.
func parsePrerequisite(in input) (input, string, error) {
	cur := space0(in)
	if next, ok := continuation(cur); ok {
		cur = space0(next)
	}
	cur, name := takeName(cur)
	if name == "" {
		return in, "", empty(cur, "prerequisite name")
	}
	cur = space0(cur)
	if next, ok := continuation(cur); ok {
		cur = next
	}
	return cur, name, nil
}

// parsePrerequisites parses zero or more prerequisite names.
func parsePrerequisites(in input) (input, []string) {
	prereqs := []string{}
	for {
		next, name, err := parsePrerequisite(in)
		if err != nil {
			return in, prereqs
		}
		prereqs = append(prereqs, name)
		in = next
	}
}

// parseRecipeLine parses one indented recipe line. The indentation is not
// kept; the rest of the line may be empty.
func parseRecipeLine(in input) (input, string, error) {
	cur, err := space1(in)
	if err != nil {
		return in, "", err
	}
	cur, line := restOfLine(cur)
	return blankLines(cur), line, nil
}

// parseRecipe parses zero or more recipe lines.
func parseRecipe(in input) (input, []string) {
	recipe := []string{}
	for {
		next, line, err := parseRecipeLine(in)
		if err != nil {
			return in, recipe
		}
		recipe = append(recipe, line)
		in = next
	}
}

// parseRule parses a rule header and its recipe:
//
//	targets : prerequisites <eol>
//		recipe lines
//
// Failures carry the context of the stage that failed (target, delimiter or
// prereqs) wrapped in a rule context.
func parseRule(in input) (input, model.Rule, error) {
	cur, targets, err := parseTargets(in)
	if err != nil {
		return in, model.Rule{}, wrap(wrap(err, "target", in), "rule", in)
	}

	cur = space0(cur)
	if !cur.hasPrefix(":") {
		return in, model.Rule{}, wrap(wrap(mismatch(cur, "':'"), "delimiter", cur), "rule", in)
	}
	cur = space0(cur.advance(1))

	prereqStart := cur
	cur, prereqs := parsePrerequisites(cur)
	cur, err = endOfLine(cur)
	if err != nil {
		return in, model.Rule{}, wrap(wrap(err, "prereqs", prereqStart), "rule", in)
	}

	cur, recipe := parseRecipe(cur)
	return cur, model.Rule{Targets: targets, Prerequisites: prereqs, Recipe: recipe}, nil
}
