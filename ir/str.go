package ir

// Provenance tells who owns the bytes of a Str.
type Provenance uint8

const (
	// Pooled strings are owned by a tree's StringPool.
	Pooled Provenance = iota
	// Borrowed strings alias the buffer a tree was parsed from.
	Borrowed
)

func (p Provenance) String() string {
	if p == Borrowed {
		return "borrowed"
	}
	return "pooled"
}

// Str is a string together with its provenance. The zero Str is null.
type Str struct {
	s    string
	prov Provenance
}

// Borrow marks s, which aliases an input buffer, as Borrowed.
func Borrow(s string) Str {
	return Str{s: s, prov: Borrowed}
}

func (s Str) String() string {
	return s.s
}

func (s Str) Len() int {
	return len(s.s)
}

// IsNull tells whether s is empty. Empty and null are the same state.
func (s Str) IsNull() bool {
	return len(s.s) == 0
}

func (s Str) Provenance() Provenance {
	return s.prov
}
