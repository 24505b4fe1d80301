package parser

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/hashicorp/hcl/v2"
)

// Kind classifies a grammar mismatch.
type Kind int

const (
	// KindMismatch means an expected token was not found.
	KindMismatch Kind = iota
	// KindEmpty means a name parser found an empty run. List parsers treat it
	// as the end of the list rather than a malformed element.
	KindEmpty
)

// Frame is one grammar context that was being parsed when a mismatch occurred.
type Frame struct {
	Context string
	Offset  int
	Pos     hcl.Pos
}

// ParseError is a grammar mismatch with the chain of contexts that led to it.
type ParseError struct {
	Kind     Kind
	Expected string
	Offset   int
	Pos      hcl.Pos
	// Frames are ordered innermost first.
	Frames []Frame

	Filename string
	Source   string
}

// unnamedSource names the source in diagnostics when no file name is known.
const unnamedSource = "<input>"

func (e *ParseError) filename() string {
	if e.Filename == "" {
		return unnamedSource
	}
	return e.Filename
}

func mismatch(in input, expected string) *ParseError {
	return &ParseError{Kind: KindMismatch, Expected: expected, Offset: in.off}
}

func empty(in input, expected string) *ParseError {
	return &ParseError{Kind: KindEmpty, Expected: expected, Offset: in.off}
}

// wrap attaches a context frame starting at in to err. Errors of any other
// type pass through unchanged.
func wrap(err error, context string, in input) error {
	pe, ok := err.(*ParseError)
	if !ok {
		return err
	}
	pe.Frames = append(pe.Frames, Frame{Context: context, Offset: in.off})
	return pe
}

// Contexts returns the context names outermost first.
func (e *ParseError) Contexts() []string {
	names := make([]string, 0, len(e.Frames))
	for i := len(e.Frames) - 1; i >= 0; i-- {
		names = append(names, e.Frames[i].Context)
	}
	return names
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	var b strings.Builder
	if e.Filename != "" {
		b.WriteString(e.Filename)
		b.WriteByte(':')
	}
	fmt.Fprintf(&b, "%d:%d: expected %s", e.Pos.Line, e.Pos.Column, e.Expected)
	if len(e.Frames) > 0 {
		fmt.Fprintf(&b, " while parsing %s", strings.Join(e.Contexts(), " > "))
	}
	return b.String()
}

// locate resolves the byte offsets of the error and its frames into line and
// column positions within src.
func (e *ParseError) locate(src string) {
	e.Source = src
	e.Pos = position(src, e.Offset)
	for i := range e.Frames {
		e.Frames[i].Pos = position(src, e.Frames[i].Offset)
	}
}

func position(src string, offset int) hcl.Pos {
	if offset > len(src) {
		offset = len(src)
	}
	lineStart := strings.LastIndexByte(src[:offset], '\n') + 1
	return hcl.Pos{
		Line:   strings.Count(src[:offset], "\n") + 1,
		Column: utf8.RuneCountInString(src[lineStart:offset]) + 1,
		Byte:   offset,
	}
}

// subject is the range of the offending character, or an empty range at the
// end of the input.
func (e *ParseError) subject() hcl.Range {
	end := e.Pos
	if e.Offset < len(e.Source) && e.Source[e.Offset] != '\n' {
		_, size := utf8.DecodeRuneInString(e.Source[e.Offset:])
		end = hcl.Pos{Line: e.Pos.Line, Column: e.Pos.Column + 1, Byte: e.Offset + size}
	}
	return hcl.Range{Filename: e.filename(), Start: e.Pos, End: end}
}

// Diagnostics converts the error into HCL diagnostics. The subject is the
// offending character and the context spans from the outermost frame to it.
func (e *ParseError) Diagnostics() hcl.Diagnostics {
	subject := e.subject()
	diag := &hcl.Diagnostic{
		Severity: hcl.DiagError,
		Summary:  fmt.Sprintf("Expected %s", e.Expected),
		Subject:  &subject,
	}

	var detail []string
	for i := len(e.Frames) - 1; i >= 0; i-- {
		f := e.Frames[i]
		detail = append(detail, fmt.Sprintf("while parsing %s at %d:%d", f.Context, f.Pos.Line, f.Pos.Column))
	}
	diag.Detail = strings.Join(detail, "\n")

	if n := len(e.Frames); n > 0 {
		diag.Context = &hcl.Range{Filename: e.filename(), Start: e.Frames[n-1].Pos, End: subject.End}
	}
	return hcl.Diagnostics{diag}
}

// Render writes a human-readable diagnostic showing the offending source
// line, its position and the grammar contexts that were attempted.
func (e *ParseError) Render(w io.Writer, width uint, color bool) error {
	files := map[string]*hcl.File{
		e.filename(): {Bytes: []byte(e.Source)},
	}
	return hcl.NewDiagnosticTextWriter(w, files, width, color).WriteDiagnostics(e.Diagnostics())
}
