package libdiff

import (
	"fmt"

	"github.com/signadot/turbo-buf/debug"
	"github.com/signadot/turbo-buf/ir"
	"github.com/signadot/turbo-buf/ir/lpath"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

type Op int

const (
	// Delete is a node of the first tree missing from the second.
	Delete Op = iota
	// Insert is a node of the second tree missing from the first.
	Insert
	// Replace is a node present in both whose payload or text differs.
	Replace
)

func (o Op) String() string {
	switch o {
	case Delete:
		return "-"
	case Insert:
		return "+"
	case Replace:
		return "~"
	default:
		return fmt.Sprintf("Op(%d)", int(o))
	}
}

// Change is one difference. From is NoNode for insertions, To for
// deletions. Path locates From in the first tree or, for insertions, To in
// the second.
type Change struct {
	Op   Op
	Path lpath.Path
	From ir.NodeID
	To   ir.NodeID
}

func (c Change) String() string {
	return c.Op.String() + " /" + c.Path.String()
}

// Diff returns the changes turning the subtree of from at fi into the
// subtree of to at ti. The changes among the children of a node come before
// the changes inside those children. Subtrees of deleted or inserted nodes
// are not described further.
func Diff(from *ir.Tree, fi ir.NodeID, to *ir.Tree, ti ir.NodeID) []Change {
	type pair struct{ f, t ir.NodeID }
	var res []Change
	todo := []pair{{fi, ti}}
	for len(todo) != 0 {
		p := todo[len(todo)-1]
		todo = todo[:len(todo)-1]
		fc, tc := from.Core(p.f), to.Core(p.t)
		if !ir.CoreEqual(fc, tc) {
			res = append(res, Change{Op: Replace, Path: from.LPath(p.f), From: p.f, To: p.t})
		}
		var next []pair
		fKids, tKids := childRunes(from, p.f, to, p.t)
		diffs := diffpatch.New().DiffMainRunes(fKids.runes, tKids.runes, false)
		fk, tk := 0, 0
		for i := range diffs {
			n := len([]rune(diffs[i].Text))
			switch diffs[i].Type {
			case diffpatch.DiffDelete:
				for range n {
					id := fKids.ids[fk]
					res = append(res, Change{Op: Delete, Path: from.LPath(id), From: id, To: ir.NoNode})
					fk++
				}
			case diffpatch.DiffInsert:
				for range n {
					id := tKids.ids[tk]
					res = append(res, Change{Op: Insert, Path: to.LPath(id), From: ir.NoNode, To: id})
					tk++
				}
			case diffpatch.DiffEqual:
				for range n {
					next = append(next, pair{fKids.ids[fk], tKids.ids[tk]})
					fk++
					tk++
				}
			}
		}
		for i := len(next) - 1; i >= 0; i-- {
			todo = append(todo, next[i])
		}
	}
	if debug.Diff() {
		debug.Logf("diff: %d changes between %s and %s\n", len(res),
			debug.Tree{Tree: from, ID: fi}, debug.Tree{Tree: to, ID: ti})
	}
	return res
}

type kids struct {
	runes []rune
	ids   []ir.NodeID
}

// childRunes maps the children of both nodes to runes, one rune per
// distinct name, so that children can be aligned by diffing rune strings.
func childRunes(from *ir.Tree, fi ir.NodeID, to *ir.Tree, ti ir.NodeID) (kids, kids) {
	m := map[string]rune{}
	mapKids := func(t *ir.Tree, id ir.NodeID) kids {
		var res kids
		for c := range t.Children(id) {
			name := t.Core(c).Name.String()
			r, ok := m[name]
			if !ok {
				// skip the surrogate range, DiffMainRunes works on valid runes
				r = rune(len(m))
				if r >= 0xD800 {
					r += 0x800
				}
				m[name] = r
			}
			res.runes = append(res.runes, r)
			res.ids = append(res.ids, c)
		}
		return res
	}
	return mapKids(from, fi), mapKids(to, ti)
}
