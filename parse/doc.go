// Package parse reads turbo-buf text into an ir.Tree.
//
// # Usage
//
//	tree, err := parse.ParseString("FF fruit_apple{1}fruit_kiwi{2 seed }$_note{ripe}")
//	if err != nil {
//	    // tree holds what was read before the input ended.
//	    return err
//	}
//
//	// Parse a file, aliasing its buffer instead of copying strings.
//	in, err := fio.ReadFile("basket.tbuf")
//	if err != nil {
//	    return err
//	}
//	tree, err = parse.Parse(in, parse.ReferInput(true))
//
// By default every name, payload and text body is interned in the tree's
// string pool. With ReferInput(true) and an input that reports Mutable(),
// the tree instead aliases the input buffer: the buffer must outlive the
// tree and must not be written afterwards, and text bodies are unescaped in
// place, rewriting the buffer.
//
// The parser is a single loop over the input with a cursor on the current
// parent; it does not recurse, whatever the nesting depth. It never panics:
// when the input ends inside a name or a text node it returns the tree built
// so far with an *Error wrapping ir.ErrTruncatedInput.
//
// # Related Packages
//
//   - github.com/signadot/turbo-buf/fio - Byte sources
//   - github.com/signadot/turbo-buf/ir - Tree representation
//   - github.com/signadot/turbo-buf/encode - Encode trees to text
package parse
