// Package ir provides the in-memory representation of turbo-buf trees.
//
// # Overview
//
// A turbo-buf document is a tree. Every tree has exactly one root node whose
// only content is an optional hexadecimal payload. Below the root, nodes are
// either normal nodes (a name, a hex payload and ordered children) or text
// nodes (a name starting with '$' and a body of free text; never children).
//
//	FF
//	person{
//		age{2A}
//		$_nick{bobby}
//		admin
//	}
//
// # Node Storage
//
// Trees are index arenas: all nodes live in a single slice owned by the Tree
// and refer to each other (parent, first child, next sibling) by NodeID. A
// NodeID stays valid for the lifetime of its tree. A *Node obtained from
// Tree.Node is a pointer into the arena and is only valid until the next
// insertion into the tree.
//
// # Strings
//
// Names, text bodies and hex digits are Str values. A Str is either Pooled,
// owned by the tree's StringPool and valid as long as the tree, or Borrowed,
// aliasing the input buffer of a zero-copy parse. Borrowed strings are only
// valid while that buffer is alive and unmodified; see package fio.
//
// # Building Trees
//
//	t := ir.NewTree()
//	p, err := t.AddNormalNode(ir.RootID, "2A", "person")
//	_, err = t.AddTextNode(p, "bobby", "nick")
//
// All insertion methods validate their arguments and fail with
// ErrMalformedName rather than build a tree that cannot be read back.
//
// # Queries
//
// Tree.Descend, Tree.Fetch and Tree.Get resolve lpath selectors; see package
// github.com/signadot/turbo-buf/ir/lpath.
//
// # Related Packages
//
//   - github.com/signadot/turbo-buf/parse - Parse text into trees
//   - github.com/signadot/turbo-buf/encode - Encode trees to text
//   - github.com/signadot/turbo-buf/ir/lpath - Path selectors
package ir
