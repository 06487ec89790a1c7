package ir

import (
	"fmt"
	"strings"
)

// ValidName checks that name can be read back as the name of a normal node:
// non-empty, without '{' or whitespace, and not starting with one of the
// markers '#', '$' or '}'.
func ValidName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrMalformedName)
	}
	return checkName(name)
}

// checkName is ValidName admitting the empty name, which reads back from
// "{}".
func checkName(name string) error {
	if name == "" {
		return nil
	}
	switch name[0] {
	case '#', '$', '}':
		return fmt.Errorf("%w: name %q starts with %q", ErrMalformedName, name, name[0])
	}
	for i := 0; i < len(name); i++ {
		if name[i] == '{' || IsSpace(name[i]) {
			return fmt.Errorf("%w: name %q contains %q", ErrMalformedName, name, name[i])
		}
	}
	return nil
}

// ValidTextName checks a full text node name: it starts with '$' and has no
// '{'.
func ValidTextName(name string) error {
	if name == "" || name[0] != TextMarker {
		return fmt.Errorf("%w: text name %q does not start with %q", ErrMalformedName, name, TextMarker)
	}
	if strings.IndexByte(name, '{') >= 0 {
		return fmt.Errorf("%w: text name %q contains '{'", ErrMalformedName, name)
	}
	return nil
}

// IsSpace tells whether c is an ASCII whitespace byte.
func IsSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

func (t *Tree) checkParent(parent NodeID) error {
	if !t.Valid(parent) {
		return fmt.Errorf("%w: no node %d", ErrBadNode, parent)
	}
	if t.nodes[parent].Core.Kind == TextKind {
		return fmt.Errorf("%w: parent %d", ErrTextChildren, parent)
	}
	return nil
}

// AddTextNode appends a text node holding text to parent. An empty name
// gives the bare name "$", otherwise the name is "$_" followed by name. Name
// and text are copied into the tree's pool.
func (t *Tree) AddTextNode(parent NodeID, text, name string) (NodeID, error) {
	full := string(TextMarker)
	if name != "" {
		full = TextNamePrefix + name
	}
	return t.addText(parent, full, text)
}

func (t *Tree) addText(parent NodeID, fullName, text string) (NodeID, error) {
	if err := t.checkParent(parent); err != nil {
		return NoNode, err
	}
	if err := ValidTextName(fullName); err != nil {
		return NoNode, err
	}
	return t.AppendCore(parent, NodeCore{
		Kind: TextKind,
		Name: t.pool.InternString(fullName),
		Text: t.pool.InternString(text),
	}), nil
}

// AddNormalNode appends a normal node without children to parent. name must
// pass ValidName and hexDigits must consist of [0-9A-F]; both are copied into
// the tree's pool.
func (t *Tree) AddNormalNode(parent NodeID, hexDigits, name string) (NodeID, error) {
	if err := ValidName(name); err != nil {
		return NoNode, err
	}
	return t.addNormal(parent, hexDigits, name)
}

func (t *Tree) addNormal(parent NodeID, hexDigits, name string) (NodeID, error) {
	if err := t.checkParent(parent); err != nil {
		return NoNode, err
	}
	if err := checkName(name); err != nil {
		return NoNode, err
	}
	if !ValidHexDigits(hexDigits) {
		return NoNode, fmt.Errorf("%w: %q is not a hex run", ErrMalformedName, hexDigits)
	}
	return t.AppendCore(parent, NodeCore{
		Kind: NormKind,
		Data: MakeHexes(t.pool.InternString(hexDigits)),
		Name: t.pool.InternString(name),
	}), nil
}

// AddDuplicate appends to parent a node sharing src's core.
//
// The duplicate is SHALLOW: only the core (kind, payload, name and text
// references) is shared, the new node starts without children even when the
// node src was taken from has some. Use AddSubtreeCopy to copy a subtree.
//
// Strings are shared, not copied: a core taken from another tree keeps its
// provenance, so Borrowed strings still depend on that tree's input buffer.
func (t *Tree) AddDuplicate(parent NodeID, src NodeCore) (NodeID, error) {
	if err := t.checkParent(parent); err != nil {
		return NoNode, err
	}
	switch src.Kind {
	case NormKind, TextKind:
	default:
		return NoNode, fmt.Errorf("%w: cannot duplicate a %s node", ErrBadNode, src.Kind)
	}
	return t.AppendCore(parent, src), nil
}

// AddSubtreeCopy copies the subtree of src rooted at from below parent, deep,
// interning every string into t's pool. When from is a root, its children are
// copied and its payload is not. src may be t, as long as parent is not
// inside the copied subtree. It returns the copy of from, or parent when
// from is a root.
func (t *Tree) AddSubtreeCopy(parent NodeID, src *Tree, from NodeID) (NodeID, error) {
	if err := t.checkParent(parent); err != nil {
		return NoNode, err
	}
	if !src.Valid(from) {
		return NoNode, fmt.Errorf("%w: no source node %d", ErrBadNode, from)
	}
	if src == t {
		for p := parent; p != NoNode; p = t.nodes[p].Parent {
			if p == from {
				return NoNode, fmt.Errorf("%w: cannot copy %d into its own subtree", ErrBadNode, from)
			}
		}
	}
	skip := 0
	if src.nodes[from].Core.Kind == RootKind {
		skip = 1
	}
	res := parent
	stack := []NodeID{parent}
	err := src.Walk(from, func(id NodeID, depth int, leaf bool) error {
		depth -= skip
		if depth < 0 {
			return nil
		}
		core := src.nodes[id].Core
		stack = stack[:depth+1]
		cp := t.AppendCore(stack[depth], NodeCore{
			Kind: core.Kind,
			Data: MakeHexes(t.pool.InternString(core.Data.Digits())),
			Name: t.pool.InternString(core.Name.String()),
			Text: t.pool.InternString(core.Text.String()),
		})
		if depth == 0 && skip == 0 {
			res = cp
		}
		stack = append(stack, cp)
		return nil
	})
	if err != nil {
		return NoNode, err
	}
	return res, nil
}
