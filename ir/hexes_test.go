package ir

import "testing"

func TestHexesDecode(t *testing.T) {
	pool := NewStringPool()
	tests := []struct {
		digits string
		u64    uint64
		u32    uint32
		empty  bool
	}{
		{digits: "", empty: true},
		{digits: "0", u64: 0, u32: 0},
		{digits: "FFAA0014", u64: 0xFFAA0014, u32: 0xFFAA0014},
		{digits: "00FF", u64: 0xFF, u32: 0xFF},
		{digits: "123456789ABCDEF0", u64: 0x123456789ABCDEF0, u32: 0x9ABCDEF0},
		{digits: "1123456789ABCDEF0", u64: 0x123456789ABCDEF0, u32: 0x9ABCDEF0},
	}
	for _, tt := range tests {
		t.Run(tt.digits, func(t *testing.T) {
			h := MakeHexes(pool.InternString(tt.digits))
			if h.IsEmpty() != tt.empty {
				t.Errorf("IsEmpty = %v", h.IsEmpty())
			}
			if got := h.Uint64(); got != tt.u64 {
				t.Errorf("Uint64 = %#x, want %#x", got, tt.u64)
			}
			if got := h.Uint32(); got != tt.u32 {
				t.Errorf("Uint32 = %#x, want %#x", got, tt.u32)
			}
			if h.Digits() != tt.digits {
				t.Errorf("Digits = %q", h.Digits())
			}
		})
	}
}

func TestEmptyVersusZero(t *testing.T) {
	empty := EmptyHexes()
	zero := MakeHexes(Borrow("0"))
	if !empty.IsEmpty() || zero.IsEmpty() {
		t.Fatalf("empty=%v zero=%v", empty.IsEmpty(), zero.IsEmpty())
	}
	if empty.Uint64() != zero.Uint64() {
		t.Errorf("both should decode to 0")
	}
}

func TestHexChars(t *testing.T) {
	for c := 0; c < 256; c++ {
		b := byte(c)
		want := (b >= '0' && b <= '9') || (b >= 'A' && b <= 'F')
		if IsHexChar(b) != want {
			t.Errorf("IsHexChar(%q) = %v", b, !want)
		}
		if want && HexValueOf(b) > 15 {
			t.Errorf("HexValueOf(%q) = %d", b, HexValueOf(b))
		}
	}
	if !ValidHexDigits("0123456789ABCDEF") || ValidHexDigits("ab") || !ValidHexDigits("") {
		t.Error("ValidHexDigits")
	}
}
