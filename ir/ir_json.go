package ir

import (
	"fmt"

	json "github.com/goccy/go-json"
)

type jsonNode struct {
	Kind  NodeKind `json:"kind"`
	Depth int      `json:"depth,omitempty"`
	Name  string   `json:"name,omitempty"`
	Data  string   `json:"data,omitempty"`
	Text  string   `json:"text,omitempty"`
}

// jsonTree is a node followed by its descendants in pre-order. Each
// descendant carries its depth below the top node, so the form stays flat
// however deep the tree is.
type jsonTree struct {
	Kind  NodeKind   `json:"kind"`
	Name  string     `json:"name,omitempty"`
	Data  string     `json:"data,omitempty"`
	Text  string     `json:"text,omitempty"`
	Nodes []jsonNode `json:"nodes,omitempty"`
}

// MarshalJSON encodes the whole tree as its root followed by the list of
// its descendants in document order:
//
//	{"kind":"root","data":"FF","nodes":[{"kind":"norm","depth":1,"name":"a"}]}
//
// A node's parent is the closest preceding node one level up.
func (t *Tree) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.toJSON(RootID))
}

// MarshalSubtreeJSON encodes the subtree at id like MarshalJSON.
func (t *Tree) MarshalSubtreeJSON(id NodeID) ([]byte, error) {
	if !t.Valid(id) {
		return nil, fmt.Errorf("%w: no node %d", ErrBadNode, id)
	}
	return json.Marshal(t.toJSON(id))
}

func (t *Tree) toJSON(from NodeID) *jsonTree {
	top := t.nodes[from].Core
	res := &jsonTree{
		Kind: top.Kind,
		Name: top.Name.String(),
		Data: top.Data.Digits(),
		Text: top.Text.String(),
	}
	_ = t.Walk(from, func(id NodeID, depth int, _ bool) error {
		if depth == 0 {
			return nil
		}
		core := t.nodes[id].Core
		res.Nodes = append(res.Nodes, jsonNode{
			Kind:  core.Kind,
			Depth: depth,
			Name:  core.Name.String(),
			Data:  core.Data.Digits(),
			Text:  core.Text.String(),
		})
		return nil
	})
	return res
}

// UnmarshalJSON replaces t with the tree encoded by d, as produced by
// MarshalJSON. Every node goes through the validating insertion methods, so
// d cannot describe a tree that would not read back.
func (t *Tree) UnmarshalJSON(d []byte) error {
	top := &jsonTree{}
	if err := json.Unmarshal(d, top); err != nil {
		return err
	}
	if top.Kind != RootKind {
		return fmt.Errorf("%w: top node is %s, not root", ErrBadNode, top.Kind)
	}
	if !ValidHexDigits(top.Data) {
		return fmt.Errorf("%w: root data %q is not a hex run", ErrMalformedName, top.Data)
	}
	res := NewTreeSize(len(top.Nodes) + 1)
	res.SetRootData(MakeHexes(res.pool.InternString(top.Data)))

	// path[i] is the last node read at depth i.
	path := []NodeID{RootID}
	for i := range top.Nodes {
		jn := &top.Nodes[i]
		if jn.Depth < 1 || jn.Depth > len(path) {
			return fmt.Errorf("%w: node %d at depth %d follows depth %d", ErrBadNode, i, jn.Depth, len(path)-1)
		}
		path = path[:jn.Depth]
		parent := path[jn.Depth-1]
		var (
			id  NodeID
			err error
		)
		switch jn.Kind {
		case NormKind:
			id, err = res.addNormal(parent, jn.Data, jn.Name)
		case TextKind:
			id, err = res.addText(parent, jn.Name, jn.Text)
		default:
			err = fmt.Errorf("%w: unexpected %s node", ErrBadNode, jn.Kind)
		}
		if err != nil {
			return fmt.Errorf("node %d: %w", i, err)
		}
		path = append(path, id)
	}
	*t = *res
	return nil
}
