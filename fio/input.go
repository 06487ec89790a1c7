package fio

// Mark is a seam: the byte offset of the head at the time it was marked.
type Mark int

// Input is the byte source contract consumed by the parser.
type Input interface {
	// Curr returns the byte under the head, or false at the end of the stream.
	Curr() (byte, bool)
	// Advance moves the head one byte forward. Advancing past the end of the
	// stream is undefined.
	Advance()
	// Mark returns a seam at the current head.
	Mark() Mark
	// FromMarkToCurr returns the bytes from m up to and including the byte
	// under the head.
	FromMarkToCurr(m Mark) LenString
	// FromMarkToLast returns the bytes from m up to, but excluding, the byte
	// under the head.
	FromMarkToLast(m Mark) LenString
	// Mutable reports whether the views returned by this input may be
	// modified in place and aliased by their users.
	Mutable() bool
}

type readOnly struct {
	Input
}

func (readOnly) Mutable() bool { return false }

// ReadOnly wraps in so that it reports Mutable() == false.
func ReadOnly(in Input) Input {
	if ro, ok := in.(readOnly); ok {
		return ro
	}
	return readOnly{Input: in}
}
