// Package tbuf matches and patches turbo-buf trees.
//
// # Usage
//
//	tree, _ := parse.ParseString("basket{fruit_apple{1}fruit_kiwi{2}}")
//
//	// Nodes satisfying an expr-lang predicate.
//	ids, err := tbuf.Match(tree, ir.RootID, `name startsWith "fruit" && value > 1`)
//
//	// RFC 6902 patch over the JSON form of the tree.
//	patched, err := tbuf.Patch(tree, []byte(`[{"op":"replace","path":"/nodes/0/data","value":"FF"}]`))
//
// The JSON form is the one of (*ir.Tree).MarshalJSON: the root object holds
// "kind" and "data" and a flat "nodes" list of the other nodes in document
// order, each with "kind", "depth", "name", "data" and "text" members.
// Removing a node that has children leaves them without a parent at their
// depth and fails; remove its descendants too.
//
// # Related Packages
//
//   - github.com/signadot/turbo-buf/ir - Tree representation
//   - github.com/signadot/turbo-buf/parse - Parse text into trees
//   - github.com/signadot/turbo-buf/libdiff - Differences between trees
package tbuf
