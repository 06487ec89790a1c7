package ir

import "testing"

func TestCoreEqual(t *testing.T) {
	p := NewStringPool()
	norm := func(data, name string) NodeCore {
		return NodeCore{Kind: NormKind, Data: MakeHexes(p.InternString(data)), Name: p.InternString(name)}
	}
	tests := []struct {
		name string
		x, y NodeCore
		want bool
	}{
		{"same", norm("FF", "a"), norm("FF", "a"), true},
		{"leading zeros", norm("00FF", "a"), norm("FF", "a"), true},
		{"zero vs zeros", norm("0", "a"), norm("000", "a"), true},
		{"empty vs zero", norm("", "a"), norm("0", "a"), false},
		{"names", norm("1", "a"), norm("1", "b"), false},
		{"values", norm("1", "a"), norm("2", "a"), false},
		{"provenance ignored", norm("1", "a"), NodeCore{Kind: NormKind, Data: MakeHexes(Borrow("1")), Name: Borrow("a")}, true},
		{"kinds", NodeCore{Kind: TextKind, Name: Borrow("$")}, NodeCore{Kind: NormKind, Name: Borrow("$")}, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := CoreEqual(tc.x, tc.y); got != tc.want {
				t.Errorf("CoreEqual = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestEqual(t *testing.T) {
	a, ab := buildFruit(t)
	b, bb := buildFruit(t)
	if !Equal(a, RootID, b, RootID) || !Equal(a, ab, b, bb) {
		t.Fatal("identical builds differ")
	}
	mustID(t)(b.AddNormalNode(bb, "", "extra"))
	if Equal(a, RootID, b, RootID) {
		t.Error("extra child not detected")
	}

	// same cores, different shape
	x := NewTree()
	xa := mustID(t)(x.AddNormalNode(RootID, "", "a"))
	mustID(t)(x.AddNormalNode(xa, "", "b"))
	y := NewTree()
	mustID(t)(y.AddNormalNode(RootID, "", "a"))
	mustID(t)(y.AddNormalNode(RootID, "", "b"))
	if Equal(x, RootID, y, RootID) {
		t.Error("shape difference not detected")
	}
}
