package debug

import (
	"bytes"
	"fmt"
	"os"

	"github.com/signadot/turbo-buf/encode"
	"github.com/signadot/turbo-buf/format"
	"github.com/signadot/turbo-buf/ir"

	json "github.com/goccy/go-json"
)

// Tree formats as the dense encoding of the subtree of Tree at ID.
type Tree struct {
	*ir.Tree
	ID ir.NodeID
}

func (t Tree) String() string {
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(t.Tree, t.ID, buf, encode.EncodeStyle(format.DenseStyle)); err != nil {
		return fmt.Sprintf("[raw tree %d] %v", t.ID, err)
	}
	return buf.String()
}

// Logf writes to stderr. Arguments of type *ir.Tree are rendered densely
// from their root, maps and slices as indented JSON.
func Logf(msg string, args ...any) {
	for i := range args {
		a := args[i]
		switch x := a.(type) {
		case map[string]any, []any:
			d, err := json.MarshalIndent(a, "   |", "  ")
			if err != nil {
				args[i] = fmt.Sprintf("%v", a)
				continue
			}
			args[i] = string(d)
		case *ir.Tree:
			args[i] = Tree{Tree: x, ID: ir.RootID}.String()
		case bool, string, float64, int:

		default:
		}
	}
	fmt.Fprintf(os.Stderr, msg, args...)
}
