// Package libdiff computes differences between turbo-buf trees.
//
// # Usage
//
//	// Structural changes, addressed by path.
//	for _, c := range libdiff.Diff(a, ir.RootID, b, ir.RootID) {
//	    fmt.Println(c)
//	}
//
//	// Line diff of the pretty encodings.
//	fmt.Print(libdiff.DiffText(a, ir.RootID, b, ir.RootID))
//
// Diff aligns the children of matching nodes by name, so that an inserted
// sibling shows as one insertion rather than as a change of every following
// sibling. Payloads compare by value.
//
// # Related Packages
//
//   - github.com/signadot/turbo-buf/ir - Tree representation
//   - github.com/signadot/turbo-buf/ir/lpath - Paths naming changes
//   - github.com/signadot/turbo-buf/encode - Encodings compared by DiffText
package libdiff
