package ir

import "fmt"

type NodeKind int

const (
	// EmptyKind is the zero value: nothing could be read.
	EmptyKind NodeKind = iota
	// RootKind is the single implicit top node of a tree.
	RootKind
	// NormKind is a node with a name, a hex payload and children.
	NormKind
	// TextKind is a leaf with a name and a text body.
	TextKind
)

func Kinds() []NodeKind {
	return []NodeKind{EmptyKind, RootKind, NormKind, TextKind}
}

func (k NodeKind) String() string {
	d, err := k.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(d)
}

func (k NodeKind) MarshalText() ([]byte, error) {
	switch k {
	case EmptyKind:
		return []byte("empty"), nil
	case RootKind:
		return []byte("root"), nil
	case NormKind:
		return []byte("norm"), nil
	case TextKind:
		return []byte("text"), nil
	default:
		return nil, fmt.Errorf("<err: %d is not a node kind>", k)
	}
}

func (k *NodeKind) UnmarshalText(d []byte) error {
	v, ok := map[string]NodeKind{
		"empty": EmptyKind,
		"root":  RootKind,
		"norm":  NormKind,
		"text":  TextKind,
	}[string(d)]
	if !ok {
		return fmt.Errorf("%w: unknown kind %q", ErrBadNode, d)
	}
	*k = v
	return nil
}
