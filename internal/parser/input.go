package parser

import "strings"

// input is a read-only cursor into the source text. It is passed by value;
// advancing returns a new cursor and leaves the receiver untouched.
type input struct {
	src string
	off int
}

func newInput(src string) input {
	return input{src: src}
}

func (in input) rest() string {
	return in.src[in.off:]
}

func (in input) atEOF() bool {
	return in.off >= len(in.src)
}

func (in input) advance(n int) input {
	in.off += n
	return in
}

func (in input) hasPrefix(s string) bool {
	return strings.HasPrefix(in.rest(), s)
}

// isSpace reports whether c is horizontal whitespace.
func isSpace(c byte) bool {
	return c == ' ' || c == '\t'
}

// isVariableNameChar reports whether c may appear in a variable name. Make
// accepts almost anything; `?` and `!` are excluded as well because they
// start the `?=` and `!=` operators.
func isVariableNameChar(c byte) bool {
	switch c {
	case ':', '#', '=', '!', '?', ' ', '\t', '\r', '\n':
		return false
	}
	return true
}

// isTargetChar reports whether c may appear in a target or prerequisite
// name. Glob characters and path separators are allowed.
func isTargetChar(c byte) bool {
	switch c {
	case '#', '%', ':', '|', '"', '<', '>', ' ', '\t', '\r', '\n':
		return false
	}
	return true
}

// takeWhile consumes the longest run of bytes satisfying pred. The run may be
// empty.
func takeWhile(in input, pred func(byte) bool) (input, string) {
	rest := in.rest()
	n := 0
	for n < len(rest) && pred(rest[n]) {
		n++
	}
	return in.advance(n), rest[:n]
}

// takeName consumes a run of target characters. A backslash that starts a
// line continuation ends the run.
func takeName(in input) (input, string) {
	rest := in.rest()
	n := 0
	for n < len(rest) && isTargetChar(rest[n]) {
		if rest[n] == '\\' {
			if _, ok := continuation(in.advance(n)); ok {
				break
			}
		}
		n++
	}
	return in.advance(n), rest[:n]
}

// space0 consumes zero or more horizontal whitespace characters.
func space0(in input) input {
	next, _ := takeWhile(in, isSpace)
	return next
}

// space1 consumes one or more horizontal whitespace characters.
func space1(in input) (input, error) {
	next, ws := takeWhile(in, isSpace)
	if ws == "" {
		return in, mismatch(in, "indentation")
	}
	return next, nil
}

// lineEnding matches "\r\n" or "\n". It does not match at end of input.
func lineEnding(in input) (input, error) {
	switch {
	case in.hasPrefix("\r\n"):
		return in.advance(2), nil
	case in.hasPrefix("\n"):
		return in.advance(1), nil
	}
	return in, mismatch(in, "line ending")
}

// endOfLine matches a line ending or the end of input.
func endOfLine(in input) (input, error) {
	if in.atEOF() {
		return in, nil
	}
	return lineEnding(in)
}

// blankLines consumes zero or more consecutive line endings.
func blankLines(in input) input {
	for {
		next, err := lineEnding(in)
		if err != nil {
			return in
		}
		in = next
	}
}

// restOfLine captures everything up to, but not including, the next line
// ending or the end of input. A carriage return left dangling at the end of
// input is consumed but not captured.
func restOfLine(in input) (input, string) {
	rest := in.rest()
	n := strings.IndexByte(rest, '\n')
	if n < 0 {
		return in.advance(len(rest)), strings.TrimSuffix(rest, "\r")
	}
	if n > 0 && rest[n-1] == '\r' {
		n--
	}
	return in.advance(n), rest[:n]
}

// continuation matches a backslash immediately followed by a line ending.
func continuation(in input) (input, bool) {
	if !in.hasPrefix(`\`) {
		return in, false
	}
	next, err := lineEnding(in.advance(1))
	if err != nil {
		return in, false
	}
	return next, true
}
