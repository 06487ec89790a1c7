package ir

import (
	"fmt"

	"github.com/signadot/turbo-buf/ir/lpath"
)

// Descend returns the child of node selected by sel: the sel.Index-th child,
// in document order, whose name matches sel. An invalid node has no
// children.
func (t *Tree) Descend(node NodeID, sel lpath.LevelDescender) (NodeID, bool) {
	if !t.Valid(node) {
		return NoNode, false
	}
	n := 0
	for c := t.nodes[node].first; c != NoNode; c = t.nodes[c].next {
		if !sel.Matches(t.nodes[c].Core.Name.String()) {
			continue
		}
		if n == sel.Index {
			return c, true
		}
		n++
	}
	return NoNode, false
}

// Resolve applies every selector of p in turn starting from root. Nothing
// resolves from an invalid root.
func (t *Tree) Resolve(root NodeID, p lpath.Path) (NodeID, bool) {
	if !t.Valid(root) {
		return NoNode, false
	}
	id := root
	for i := range p {
		next, ok := t.Descend(id, p[i])
		if !ok {
			return NoNode, false
		}
		id = next
	}
	return id, true
}

// Fetch calls visit with the node p resolves to from root. When p does not
// resolve, Fetch does nothing.
func (t *Tree) Fetch(root NodeID, p lpath.Path, visit func(NodeID)) {
	if id, ok := t.Resolve(root, p); ok {
		visit(id)
	}
}

// FetchCore is Fetch handing only the node's core to visit.
func (t *Tree) FetchCore(root NodeID, p lpath.Path, visit func(NodeCore)) {
	if id, ok := t.Resolve(root, p); ok {
		visit(t.nodes[id].Core)
	}
}

// Get returns the node p resolves to from root, or ErrNotFound.
func (t *Tree) Get(root NodeID, p lpath.Path) (NodeID, error) {
	id, ok := t.Resolve(root, p)
	if !ok {
		return NoNode, fmt.Errorf("%w: %q", ErrNotFound, p.String())
	}
	return id, nil
}

// GetPath parses the textual path s and resolves it from root.
func (t *Tree) GetPath(root NodeID, s string) (NodeID, error) {
	p, err := lpath.Parse(s)
	if err != nil {
		return NoNode, err
	}
	return t.Get(root, p)
}

// LPath returns the exact-name path leading from the root to id.
//
// Examples:
//   - Root node → ""
//   - First child named a → "a"
//   - Second child named b below it → "a/b[1]"
//
// An invalid id has the nil path.
func (t *Tree) LPath(id NodeID) lpath.Path {
	if !t.Valid(id) {
		return nil
	}
	var rev lpath.Path
	for id != NoNode {
		p := t.nodes[id].Parent
		if p == NoNode {
			break
		}
		name := t.nodes[id].Core.Name.String()
		idx := 0
		for c := t.nodes[p].first; c != id; c = t.nodes[c].next {
			if t.nodes[c].Core.Name.String() == name {
				idx++
			}
		}
		rev = append(rev, lpath.Exact(name, idx))
		id = p
	}
	res := make(lpath.Path, len(rev))
	for i := range rev {
		res[len(rev)-1-i] = rev[i]
	}
	return res
}
