package parser

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/specialistvlad/mkgraph/internal/ctxlog"
	"github.com/specialistvlad/mkgraph/internal/model"
)

// alternative is one candidate tried by the top-level dispatch loop. On
// success it returns the advanced cursor and records its value, if any, in mf.
type alternative func(in input, mf *model.Makefile) (input, error)

// alternatives are tried in order at every position. The last one's error is
// the one reported when nothing matches.
var alternatives = []alternative{
	// blank line
	func(in input, _ *model.Makefile) (input, error) {
		return parseBlankLine(in)
	},
	// comment
	func(in input, _ *model.Makefile) (input, error) {
		return parseComment(in)
	},
	// variable
	func(in input, mf *model.Makefile) (input, error) {
		next, v, err := parseVariable(in)
		if err != nil {
			return in, err
		}
		mf.Variables = append(mf.Variables, v)
		return next, nil
	},
	// rule
	func(in input, mf *model.Makefile) (input, error) {
		next, r, err := parseRule(in)
		if err != nil {
			return in, err
		}
		mf.Rules = append(mf.Rules, r)
		return next, nil
	},
}

// parseBlankLine matches a line holding nothing but horizontal whitespace,
// including a whitespace-only tail at the end of input.
func parseBlankLine(in input) (input, error) {
	cur := space0(in)
	if cur.atEOF() && cur.off > in.off {
		return cur, nil
	}
	next, err := lineEnding(cur)
	if err != nil {
		return in, err
	}
	return next, nil
}

func parseMakefile(in input) (*model.Makefile, error) {
	mf := model.NewMakefile()
	for !in.atEOF() {
		var err error
		matched := false
		for _, alt := range alternatives {
			var next input
			next, err = alt(in, mf)
			if err == nil {
				in = next
				matched = true
				break
			}
		}
		if !matched {
			return nil, wrap(err, "makefile", in)
		}
	}
	return mf, nil
}

// Parse parses the complete text of a Makefile. On failure the error is a
// *ParseError positioned within src.
func Parse(src string) (*model.Makefile, error) {
	mf, err := parseMakefile(newInput(src))
	if err != nil {
		var pe *ParseError
		if errors.As(err, &pe) {
			pe.locate(src)
		}
		return nil, err
	}
	return mf, nil
}

// ParseFile reads and parses the Makefile at path. A *ParseError returned
// from here carries the file name and source, ready to be rendered.
func ParseFile(ctx context.Context, path string) (*model.Makefile, error) {
	logger := ctxlog.FromContext(ctx).With("file", path)
	logger.Debug("ParseFile: reading makefile.")

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read makefile %s: %w", path, err)
	}

	mf, err := Parse(string(data))
	if err != nil {
		var pe *ParseError
		if errors.As(err, &pe) {
			pe.Filename = path
			logger.Debug("ParseFile: parse failed.", "line", pe.Pos.Line, "column", pe.Pos.Column, "expected", pe.Expected)
		}
		return nil, err
	}

	logger.Debug("ParseFile: parse complete.", "variables", len(mf.Variables), "rules", len(mf.Rules))
	return mf, nil
}
