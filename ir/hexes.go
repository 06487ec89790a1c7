package ir

// Hexes is a run of uppercase hexadecimal digits, most significant first. The
// empty run is distinct from the run "0".
type Hexes struct {
	digits Str
}

// MakeHexes wraps digits, which must consist only of [0-9A-F].
func MakeHexes(digits Str) Hexes {
	return Hexes{digits: digits}
}

// EmptyHexes returns the run without digits.
func EmptyHexes() Hexes {
	return Hexes{}
}

func (h Hexes) IsEmpty() bool {
	return h.digits.Len() == 0
}

// Digits returns the digit run.
func (h Hexes) Digits() string {
	return h.digits.String()
}

// DigitsStr returns the digit run together with its provenance.
func (h Hexes) DigitsStr() Str {
	return h.digits
}

func (h Hexes) Len() int {
	return h.digits.Len()
}

// Uint64 decodes the run. Runs longer than 16 digits wrap.
func (h Hexes) Uint64() uint64 {
	var res uint64
	d := h.digits.String()
	for i := 0; i < len(d); i++ {
		res = res<<4 + uint64(HexValueOf(d[i]))
	}
	return res
}

// Uint32 decodes the run into 32 bits. Runs longer than 8 digits wrap.
func (h Hexes) Uint32() uint32 {
	var res uint32
	d := h.digits.String()
	for i := 0; i < len(d); i++ {
		res = res<<4 + uint32(HexValueOf(d[i]))
	}
	return res
}

// HexValueOf converts one of [0-9A-F] to its value in [0, 15].
func HexValueOf(c byte) byte {
	if 'A' <= c && c <= 'F' {
		return c - 'A' + 10
	}
	return c - '0'
}

// IsHexChar tells whether c is one of [0-9A-F].
func IsHexChar(c byte) bool {
	return ('0' <= c && c <= '9') || ('A' <= c && c <= 'F')
}

// ValidHexDigits tells whether every byte of s is one of [0-9A-F].
func ValidHexDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if !IsHexChar(s[i]) {
			return false
		}
	}
	return true
}
