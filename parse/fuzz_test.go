package parse

import (
	"bytes"
	"testing"

	"github.com/signadot/turbo-buf/encode"
	"github.com/signadot/turbo-buf/ir"
)

func FuzzParse(f *testing.F) {
	seeds := []string{
		``,
		`0`,
		`FFAA0014`,
		`word `,
		`a{1}b{}`,
		`FF basket{fruit_apple{1}fruit_kiwi{2 seed }$_note{ripe}}`,
		`$_e{Es\cape the \{reality\}!\\\\ be 1337!}`,
		"# comment\nx{ # inner }\n1 }",
		`A1{ BEEF last{C}}`,
		`}}}a{{{`,
		`$x y{ # not a comment }`,
		`a{ b`,
		`${\`,
		`{}`,
		`a{{}}`,
		`FF{}{1}{{} x }`,
	}
	for _, s := range seeds {
		f.Add([]byte(s))
	}

	f.Fuzz(func(t *testing.T, data []byte) {
		// the partial tree of a truncated input must encode as well
		tr, _ := ParseBytes(data)

		dense := encode.MustString(tr, ir.RootID, encode.Pretty(false))
		back, err := ParseString(dense)
		if err != nil {
			t.Fatalf("dense encoding %q of %q does not parse: %v", dense, data, err)
		}
		if !ir.Equal(tr, ir.RootID, back, ir.RootID) {
			t.Fatalf("dense encoding %q of %q reads back differently", dense, data)
		}

		var buf bytes.Buffer
		if err := encode.Encode(tr, ir.RootID, &buf); err != nil {
			t.Fatal(err)
		}
		pretty := buf.String()
		again, err := ParseString(pretty)
		if err != nil {
			t.Fatalf("pretty encoding %q does not parse: %v", pretty, err)
		}
		if got := encode.MustString(again, ir.RootID); got != pretty {
			t.Fatalf("pretty encoding not idempotent:\n%q\n%q", pretty, got)
		}

		// zero-copy parsing rewrites its input, so give it a copy
		zc, _ := ParseBytes(bytes.Clone(data), ReferInput(true))
		if !ir.Equal(tr, ir.RootID, zc, ir.RootID) {
			t.Fatalf("zero-copy and pooled parses of %q differ", data)
		}
	})
}
