package parser

// parseComment consumes one or more consecutive lines starting with `#`.
// Comments are discarded.
func parseComment(in input) (input, error) {
	if !in.hasPrefix("#") {
		return in, mismatch(in, "'#'")
	}
	cur := in
	for cur.hasPrefix("#") {
		cur, _ = restOfLine(cur)
		cur = blankLines(cur)
	}
	return cur, nil
}
