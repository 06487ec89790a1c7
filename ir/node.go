package ir

import (
	"fmt"
	"iter"
)

// NodeID addresses a node inside its Tree.
type NodeID int32

const (
	// NoNode is the absent node: the root's parent, a leaf's first child.
	NoNode NodeID = -1
	// RootID is the root of every tree.
	RootID NodeID = 0
)

const (
	// TextMarker starts the name of every text node.
	TextMarker = '$'
	// TextNamePrefix starts the name of named text nodes built by AddTextNode.
	TextNamePrefix = "$_"
)

// NodeCore is the visitable payload of a node. Its strings are owned by the
// tree (or the tree's input buffer); do not keep them past the tree.
type NodeCore struct {
	Kind NodeKind
	// Data is the hex payload of root and normal nodes.
	Data Hexes
	// Name is always present below the root. Text node names start with '$'.
	Name Str
	// Text is the body of a text node; null for other kinds and for empty
	// bodies.
	Text Str
}

// IsEmptyLeaf tells whether a node with this core and no children is written
// as a bare word: a named normal node without payload. A node without name
// or payload is written "{}".
func (c NodeCore) IsEmptyLeaf() bool {
	return c.Kind == NormKind && c.Data.IsEmpty() && c.Name.Len() != 0
}

// Node is a tree slot: its core, its parent and the links to its children.
type Node struct {
	Core   NodeCore
	Parent NodeID

	first, last, next NodeID
	count             int
}

// IsLeaf tells whether the node has no children.
func (n *Node) IsLeaf() bool {
	return n.first == NoNode
}

// Tree owns all of its nodes and its string pool.
type Tree struct {
	nodes []Node
	pool  *StringPool
}

// NewTree returns a tree with only an empty root.
func NewTree() *Tree {
	return NewTreeSize(0)
}

// NewTreeSize returns an empty tree with room for n nodes.
func NewTreeSize(n int) *Tree {
	t := &Tree{
		nodes: make([]Node, 0, max(n, 1)),
		pool:  NewStringPool(),
	}
	t.nodes = append(t.nodes, Node{
		Core:   NodeCore{Kind: RootKind},
		Parent: NoNode,
		first:  NoNode,
		last:   NoNode,
		next:   NoNode,
	})
	return t
}

func (t *Tree) Pool() *StringPool {
	return t.pool
}

// Len returns the number of nodes, root included.
func (t *Tree) Len() int {
	return len(t.nodes)
}

func (t *Tree) Valid(id NodeID) bool {
	return id >= 0 && int(id) < len(t.nodes)
}

// Node returns the slot of id. The pointer is invalidated by the next
// insertion into t.
func (t *Tree) Node(id NodeID) *Node {
	return &t.nodes[id]
}

func (t *Tree) Core(id NodeID) NodeCore {
	return t.nodes[id].Core
}

func (t *Tree) Parent(id NodeID) NodeID {
	return t.nodes[id].Parent
}

func (t *Tree) FirstChild(id NodeID) NodeID {
	return t.nodes[id].first
}

func (t *Tree) NextSibling(id NodeID) NodeID {
	return t.nodes[id].next
}

func (t *Tree) ChildCount(id NodeID) int {
	return t.nodes[id].count
}

func (t *Tree) IsLeaf(id NodeID) bool {
	return t.nodes[id].first == NoNode
}

// Children iterates over the children of id in document order.
func (t *Tree) Children(id NodeID) iter.Seq[NodeID] {
	return func(yield func(NodeID) bool) {
		for c := t.nodes[id].first; c != NoNode; c = t.nodes[c].next {
			if !yield(c) {
				return
			}
		}
	}
}

// Depth returns the number of ancestors of id.
func (t *Tree) Depth(id NodeID) int {
	d := 0
	for p := t.nodes[id].Parent; p != NoNode; p = t.nodes[p].Parent {
		d++
	}
	return d
}

// SetRootData sets the payload of the root.
func (t *Tree) SetRootData(h Hexes) {
	t.nodes[RootID].Core.Data = h
}

// AppendCore appends a node holding core as the last child of parent and
// returns it. It does no validation of core; parsers use it to add nodes
// whose strings they have already materialized. Appending below a text node
// is a programming error and panics.
func (t *Tree) AppendCore(parent NodeID, core NodeCore) NodeID {
	if t.nodes[parent].Core.Kind == TextKind {
		panic(fmt.Sprintf("ir: append below text node %d", parent))
	}
	id := NodeID(len(t.nodes))
	t.nodes = append(t.nodes, Node{
		Core:   core,
		Parent: parent,
		first:  NoNode,
		last:   NoNode,
		next:   NoNode,
	})
	p := &t.nodes[parent]
	if p.last == NoNode {
		p.first = id
	} else {
		t.nodes[p.last].next = id
	}
	p.last = id
	p.count++
	return id
}

// WalkFunc is called for each node visited by Walk, with the depth of the
// node relative to the start of the walk and whether it has no children.
type WalkFunc func(id NodeID, depth int, leaf bool) error

// Walk visits from and its descendants in pre-order. It does not recurse,
// so arbitrarily deep trees are safe. Nodes appended below from during the
// walk are visited too.
func (t *Tree) Walk(from NodeID, f WalkFunc) error {
	id, depth := from, 0
	for {
		if err := f(id, depth, t.nodes[id].first == NoNode); err != nil {
			return err
		}
		if c := t.nodes[id].first; c != NoNode {
			id = c
			depth++
			continue
		}
		for {
			if id == from {
				return nil
			}
			if nx := t.nodes[id].next; nx != NoNode {
				id = nx
				break
			}
			id = t.nodes[id].Parent
			depth--
		}
	}
}
