// Package encode writes an ir.Tree, or one of its subtrees, as turbo-buf
// text.
//
// # Usage
//
//	// Pretty: one node per line, tab indented.
//	err := encode.Encode(tree, ir.RootID, os.Stdout)
//
//	// Dense: everything on one line.
//	err = encode.Encode(tree, ir.RootID, w, encode.EncodeStyle(format.DenseStyle))
//
//	// A subtree, colored for a terminal.
//	err = encode.Encode(tree, id, os.Stdout, encode.EncodeColors(encode.NewColors()))
//
// Both styles read back into an equal tree. Encoding from the root writes
// the root payload and then its children; encoding from any other node
// writes that node, with its name, as the only top level node.
//
// # Related Packages
//
//   - github.com/signadot/turbo-buf/ir - Tree representation
//   - github.com/signadot/turbo-buf/parse - Parse text into trees
//   - github.com/signadot/turbo-buf/format - Output styles
package encode
