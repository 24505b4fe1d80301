// Package parser turns the text of a Makefile into a model.Makefile.
//
// The grammar is line oriented and recognised by a set of small
// recursive-descent functions. Every function takes an immutable input cursor
// and returns either an advanced cursor plus a value, or the original cursor
// plus a *ParseError. Nothing is consumed on failure, so callers can try the
// next alternative from the same position.
//
// The top level is a dispatch loop over four alternatives, tried in order:
//
//  1. a blank line
//  2. a comment block (`#` lines)
//  3. a variable assignment (`name <op> value`, with `\` continuation)
//  4. a rule (`targets: prerequisites` followed by indented recipe lines)
//
// Blank lines and comments produce nothing. When no alternative matches, the
// rule parser's error is returned: it is the most permissive alternative and
// the most informative failure to report.
//
// Not supported: variable expansion, pattern rules, conditionals, include
// directives, define blocks and order-only prerequisites.
package parser
