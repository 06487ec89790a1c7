// Package lpath provides level selectors for addressing turbo-buf nodes.
//
// A path is a sequence of LevelDescenders. Each one descends one level: it
// selects, among the children of the current node, the Index-th one whose
// name equals Name, or, for prefix selectors, starts with Name.
//
// # Syntax
//
//	"fruit"            // first child named fruit
//	"fruit[2]"         // third child named fruit
//	"fruit*[2]"        // third child whose name starts with fruit
//	"*[0]/$_note"      // first $_note below the first child
//	`a\/b`             // the child named a/b
//
// Segments are separated by '/'. A trailing '*' makes a segment a prefix
// selector, an optional [n] picks the n-th match (default 0) and '\' escapes
// the following byte. The empty string is the empty path.
//
// # Usage
//
//	p, err := lpath.Parse("fruit*[2]")
//	id, err := tree.Get(ir.RootID, p)
//
// # Related Packages
//
//   - github.com/signadot/turbo-buf/ir - Resolves paths against trees
package lpath
