package ir

import "strings"

type visit struct {
	core  NodeCore
	depth int
}

func (t *Tree) preorder(from NodeID) []visit {
	var res []visit
	_ = t.Walk(from, func(id NodeID, depth int, _ bool) error {
		res = append(res, visit{core: t.nodes[id].Core, depth: depth})
		return nil
	})
	return res
}

// Equal tells whether the subtree of a at ai and the subtree of b at bi are
// structurally equal: the same shape and, node for node in document order,
// the same kinds, names, text and decoded payloads. Provenance is ignored.
func Equal(a *Tree, ai NodeID, b *Tree, bi NodeID) bool {
	va, vb := a.preorder(ai), b.preorder(bi)
	if len(va) != len(vb) {
		return false
	}
	for i := range va {
		if va[i].depth != vb[i].depth {
			return false
		}
		if !CoreEqual(va[i].core, vb[i].core) {
			return false
		}
	}
	return true
}

// CoreEqual compares two cores by content. Payloads are equal when both are
// empty or both are non-empty with the same value, whatever their number of
// leading zeros.
func CoreEqual(x, y NodeCore) bool {
	if x.Kind != y.Kind {
		return false
	}
	if x.Name.String() != y.Name.String() || x.Text.String() != y.Text.String() {
		return false
	}
	if x.Data.IsEmpty() != y.Data.IsEmpty() {
		return false
	}
	return strings.TrimLeft(x.Data.Digits(), "0") == strings.TrimLeft(y.Data.Digits(), "0")
}
