package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/specialistvlad/mkgraph/internal/dag"
)

var dotEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

func dotID(s string) string {
	return `"` + dotEscaper.Replace(s) + `"`
}

// DOT writes g as a Graphviz digraph. Phony targets are drawn dashed.
func DOT(w io.Writer, g *dag.Graph) error {
	var b strings.Builder
	b.WriteString("digraph {\n")
	for _, id := range g.Nodes() {
		if g.IsPhony(id) {
			fmt.Fprintf(&b, "    %s [ style = dashed ]\n", dotID(id))
			continue
		}
		fmt.Fprintf(&b, "    %s\n", dotID(id))
	}
	for _, e := range g.Edges() {
		fmt.Fprintf(&b, "    %s -> %s\n", dotID(e.From), dotID(e.To))
	}
	b.WriteString("}\n")

	_, err := io.WriteString(w, b.String())
	return err
}
