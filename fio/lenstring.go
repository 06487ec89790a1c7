package fio

import "unsafe"

// LenString is a view over a span of bytes. The empty span is nil. There is
// never a terminator after the span.
type LenString []byte

func (s LenString) Len() int {
	return len(s)
}

// String returns an owned copy of the span.
func (s LenString) String() string {
	return string(s)
}

// UnsafeString returns a string aliasing the span without copying. The
// result is only valid while the underlying buffer is alive and unchanged.
func (s LenString) UnsafeString() string {
	if len(s) == 0 {
		return ""
	}
	return unsafe.String(unsafe.SliceData(s), len(s))
}

// UnescapeInPlace removes escape markers from the span by rewriting it in
// place and returns the shortened view. Every byte following an unescaped esc
// is kept literally; a trailing dangling esc is dropped. For esc '\':
//
//	`\\`     -> `\`
//	`al\ma`  -> `alma`
//	`\\\\`   -> `\\`
//	`al\\\m` -> `al\m`
//
// Only legal on spans of an Input that is Mutable.
func (s LenString) UnescapeInPlace(esc byte) LenString {
	j := unescapeInto(s, s, esc)
	if j == 0 {
		return nil
	}
	return s[:j:j]
}

// Unescape is UnescapeInPlace writing into a fresh buffer; s is not modified.
func (s LenString) Unescape(esc byte) []byte {
	if len(s) == 0 {
		return nil
	}
	dst := make([]byte, len(s))
	j := unescapeInto(dst, s, esc)
	if j == 0 {
		return nil
	}
	return dst[:j]
}

// Unescape applies the unescaping of LenString.Unescape to a string.
func Unescape(esc byte, src string) string {
	return string(LenString(src).Unescape(esc))
}

// dst may alias src: the write head never passes the read head.
func unescapeInto(dst, src []byte, esc byte) int {
	escaped := false
	j := 0
	for _, c := range src {
		if escaped || c != esc {
			dst[j] = c
			j++
			escaped = false
			continue
		}
		escaped = true
	}
	return j
}
