package render

import (
	"io"

	"github.com/alecthomas/repr"

	"github.com/specialistvlad/mkgraph/internal/model"
)

// Tree dumps the parsed structure of mf in Go syntax.
func Tree(w io.Writer, mf *model.Makefile) error {
	repr.New(w, repr.Indent("  ")).Println(mf)
	return nil
}
