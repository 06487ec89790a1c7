package libdiff

import (
	"strings"

	"github.com/signadot/turbo-buf/encode"
	"github.com/signadot/turbo-buf/ir"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// DiffLines returns the line diff of the pretty encodings of two subtrees.
func DiffLines(from *ir.Tree, fi ir.NodeID, to *ir.Tree, ti ir.NodeID) []diffpatch.Diff {
	a := encode.MustString(from, fi)
	b := encode.MustString(to, ti)
	dmp := diffpatch.New()
	ac, bc, lines := dmp.DiffLinesToChars(a, b)
	diffs := dmp.DiffMain(ac, bc, false)
	return dmp.DiffCharsToLines(diffs, lines)
}

// DiffText renders DiffLines as unified-style lines prefixed by ' ', '-' or
// '+'. It returns the empty string when the encodings are equal.
func DiffText(from *ir.Tree, fi ir.NodeID, to *ir.Tree, ti ir.NodeID) string {
	diffs := DiffLines(from, fi, to, ti)
	changed := false
	buf := &strings.Builder{}
	for _, d := range diffs {
		prefix := " "
		switch d.Type {
		case diffpatch.DiffDelete:
			prefix = "-"
			changed = true
		case diffpatch.DiffInsert:
			prefix = "+"
			changed = true
		}
		for _, ln := range strings.SplitAfter(d.Text, "\n") {
			if ln == "" {
				continue
			}
			buf.WriteString(prefix)
			buf.WriteString(ln)
			if !strings.HasSuffix(ln, "\n") {
				buf.WriteByte('\n')
			}
		}
	}
	if !changed {
		return ""
	}
	return buf.String()
}
