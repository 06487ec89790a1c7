package ir

import "errors"

var (
	// ErrTruncatedInput reports a stream that ended inside an open construct.
	ErrTruncatedInput = errors.New("truncated input")
	// ErrMalformedName reports an insertion with a name or hex payload that
	// could not be read back.
	ErrMalformedName = errors.New("malformed name")
	// ErrNotFound reports a path query that did not resolve.
	ErrNotFound = errors.New("not found")
	// ErrTextChildren reports an attempt to give a text node children.
	ErrTextChildren = errors.New("text nodes have no children")
	// ErrBadNode reports a NodeID or node core that cannot be used.
	ErrBadNode = errors.New("bad node")
)
