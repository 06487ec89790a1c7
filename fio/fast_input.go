package fio

import (
	"fmt"
	"io"
	"os"
)

// FastInput is an Input over a buffer held entirely in memory. It supports
// destructive operations.
type FastInput struct {
	buf  []byte
	head int
}

// NewFastInput returns an input reading d. The input does not copy d: views
// it returns alias d.
func NewFastInput(d []byte) *FastInput {
	return &FastInput{buf: d}
}

// ReadFile reads the named file into memory and returns an input over it.
func ReadFile(name string) (*FastInput, error) {
	d, err := os.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("could not read %q: %w", name, err)
	}
	return NewFastInput(d), nil
}

// ReadAll reads r until EOF and returns an input over what was read.
func ReadAll(r io.Reader) (*FastInput, error) {
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading: %w", err)
	}
	return NewFastInput(d), nil
}

func (in *FastInput) Curr() (byte, bool) {
	if in.head >= len(in.buf) {
		return 0, false
	}
	return in.buf[in.head], true
}

// Last returns the byte right before the head, or false at the start of the
// buffer.
func (in *FastInput) Last() (byte, bool) {
	if in.head == 0 || in.head > len(in.buf) {
		return 0, false
	}
	return in.buf[in.head-1], true
}

func (in *FastInput) Advance() {
	in.head++
}

func (in *FastInput) Mark() Mark {
	return Mark(in.head)
}

func (in *FastInput) FromMarkToCurr(m Mark) LenString {
	return in.span(int(m), in.head+1)
}

func (in *FastInput) FromMarkToLast(m Mark) LenString {
	return in.span(int(m), in.head)
}

func (in *FastInput) span(start, end int) LenString {
	if end > len(in.buf) {
		end = len(in.buf)
	}
	if start < 0 || end <= start {
		return nil
	}
	return LenString(in.buf[start:end:end])
}

func (in *FastInput) Mutable() bool { return true }

// Len returns the size of the underlying buffer.
func (in *FastInput) Len() int {
	return len(in.buf)
}

// Reset moves the head back to the start of the buffer. Bytes rewritten by
// destructive operations stay rewritten.
func (in *FastInput) Reset() {
	in.head = 0
}
