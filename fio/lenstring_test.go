package fio

import "testing"

func TestUnescape(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: ``, want: ``},
		{in: `\\`, want: `\`},
		{in: `al\ma`, want: `alma`},
		{in: `\\\`, want: `\`},
		{in: `\\\\`, want: `\\`},
		{in: `al\\\ma`, want: `al\ma`},
		{in: `al\\\\ma`, want: `al\\ma`},
		{in: `dangling\`, want: `dangling`},
		{in: `Es\cape the \{reality\}!\\\\ be 1337!`, want: `Escape the {reality}!\\ be 1337!`},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			safe := LenString(tt.in).Unescape('\\')
			if string(safe) != tt.want {
				t.Errorf("Unescape(%q) = %q, want %q", tt.in, safe, tt.want)
			}
			buf := []byte(tt.in)
			inPlace := LenString(buf).UnescapeInPlace('\\')
			if string(inPlace) != tt.want {
				t.Errorf("UnescapeInPlace(%q) = %q, want %q", tt.in, inPlace, tt.want)
			}
			if tt.want == "" && inPlace != nil {
				t.Errorf("expected nil view for empty result")
			}
		})
	}
}

func TestUnescapeLeavesSource(t *testing.T) {
	src := LenString(`a\}b`)
	_ = src.Unescape('\\')
	if string(src) != `a\}b` {
		t.Errorf("source modified: %q", src)
	}
}

func TestUnsafeStringAliases(t *testing.T) {
	buf := []byte("hello")
	s := LenString(buf).UnsafeString()
	buf[0] = 'j'
	if s != "jello" {
		t.Errorf("expected alias to observe write, got %q", s)
	}
	if LenString(nil).UnsafeString() != "" {
		t.Errorf("nil view should alias the empty string")
	}
}
