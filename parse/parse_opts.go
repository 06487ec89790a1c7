package parse

type parseOpts struct {
	referInput       bool
	ignoreWhitespace bool
}

type ParseOption func(*parseOpts)

// ReferInput lets the tree alias the input buffer when the input is
// Mutable, instead of interning strings.
func ReferInput(v bool) ParseOption {
	return func(o *parseOpts) { o.referInput = v }
}

// IgnoreWhitespace controls whether whitespace between tokens is skipped.
// When false, a whitespace byte where a token is expected reads as an empty
// leaf with an empty name.
func IgnoreWhitespace(v bool) ParseOption {
	return func(o *parseOpts) { o.ignoreWhitespace = v }
}
