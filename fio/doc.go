// Package fio provides the byte sources the turbo-buf parser reads from.
//
// # Usage
//
//	// In-memory, mutable source
//	in := fio.NewFastInput([]byte("a{FF $_x{hi}}"))
//
//	// From a file
//	in, err := fio.ReadFile("tree.tbuf")
//
//	// Forbid in-place modification of the buffer
//	ro := fio.ReadOnly(in)
//
// An Input is a byte cursor: Curr returns the byte under the head, Advance
// moves the head one byte, Mark remembers the head as a seam and
// FromMarkToCurr / FromMarkToLast materialize the span from a seam to the
// head as a LenString view over the source's buffer.
//
// # Destructive operations
//
// Inputs reporting Mutable() == true let their users rewrite the bytes of
// returned views in place (LenString.UnescapeInPlace) and alias them without
// copying (LenString.UnsafeString). Any string obtained that way is valid only
// while the buffer lives and is not written again; a second parse of a buffer
// already parsed destructively may see different bytes.
//
// # Related Packages
//
//   - github.com/signadot/turbo-buf/parse - Parse inputs into trees
package fio
