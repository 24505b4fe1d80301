package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/specialistvlad/mkgraph/internal/model"
)

// Makefile writes mf back out as Makefile text: all variables first, then the
// rules, each separated by a blank line. Continued values are written one
// fragment per line, recipes are indented with a tab. Parsing the output
// yields a Makefile equal to mf.
func Makefile(w io.Writer, mf *model.Makefile) error {
	var b strings.Builder
	for _, v := range mf.Variables {
		writeVariable(&b, v)
	}
	if len(mf.Variables) > 0 && len(mf.Rules) > 0 {
		b.WriteByte('\n')
	}
	for i, r := range mf.Rules {
		if i > 0 {
			b.WriteByte('\n')
		}
		writeRule(&b, r)
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func writeVariable(b *strings.Builder, v model.Variable) {
	fmt.Fprintf(b, "%s %s", v.Name, v.Assignment)
	for i, fragment := range v.Value {
		switch {
		case i > 0:
			b.WriteString("\t")
		case fragment != "":
			b.WriteByte(' ')
		}
		b.WriteString(fragment)
		b.WriteByte('\n')
	}
	if len(v.Value) == 0 {
		b.WriteByte('\n')
	}
}

func writeRule(b *strings.Builder, r model.Rule) {
	b.WriteString(strings.Join(r.Targets, " "))
	b.WriteByte(':')
	if len(r.Prerequisites) > 0 {
		b.WriteByte(' ')
		b.WriteString(strings.Join(r.Prerequisites, " "))
	}
	b.WriteByte('\n')
	for _, line := range r.Recipe {
		b.WriteByte('\t')
		b.WriteString(line)
		b.WriteByte('\n')
	}
}
