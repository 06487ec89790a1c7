package tbuf

import (
	"strconv"
	"testing"

	"github.com/signadot/turbo-buf/ir"
	"github.com/signadot/turbo-buf/parse"

	"github.com/google/go-cmp/cmp"
)

const basket = "FF basket{fruit_apple{1}fruit_kiwi{12 seed }$_note{ripe}fruit_pear{3}}"

func mustParse(t *testing.T, in string) *ir.Tree {
	t.Helper()
	tr, err := parse.ParseString(in)
	if err != nil {
		t.Fatal(err)
	}
	return tr
}

func TestMatch(t *testing.T) {
	tr := mustParse(t, basket)
	tests := []struct {
		pred string
		opts []MatchOpt
		want []string
	}{
		{`name startsWith "fruit"`, nil, []string{"basket/fruit_apple", "basket/fruit_kiwi", "basket/fruit_pear"}},
		{`name startsWith "fruit"`, []MatchOpt{MatchLimit(2)}, []string{"basket/fruit_apple", "basket/fruit_kiwi"}},
		{`kind == "text" && text == "ripe"`, nil, []string{"basket/$_note"}},
		{`kind == "norm" && value > 2`, nil, []string{"basket/fruit_kiwi", "basket/fruit_pear"}},
		{`value >= hex("12") && data != ""`, nil, []string{"", "basket/fruit_kiwi"}},
		{`leaf && depth == 3`, nil, []string{"basket/fruit_kiwi/seed"}},
		{`HasChild("seed")`, nil, []string{"basket/fruit_kiwi"}},
		{`children > 3`, nil, []string{"basket"}},
		{`name == "nothing"`, nil, nil},
	}
	for _, tc := range tests {
		ids, err := Match(tr, ir.RootID, tc.pred, tc.opts...)
		if err != nil {
			t.Errorf("%s: %v", tc.pred, err)
			continue
		}
		var got []string
		for _, id := range ids {
			got = append(got, tr.LPath(id).String())
		}
		if diff := cmp.Diff(tc.want, got); diff != "" {
			t.Errorf("%s (-want +got):\n%s", tc.pred, diff)
		}
	}
}

func TestMatchSubtree(t *testing.T) {
	tr := mustParse(t, basket)
	kiwi, err := tr.GetPath(ir.RootID, "basket/fruit_kiwi")
	if err != nil {
		t.Fatal(err)
	}
	ids, err := Match(tr, kiwi, `depth == 1`)
	if err != nil {
		t.Fatal(err)
	}
	if len(ids) != 1 || tr.Core(ids[0]).Name.String() != "seed" {
		t.Errorf("got %v", ids)
	}
}

func TestMatchErrors(t *testing.T) {
	tr := mustParse(t, basket)
	for _, pred := range []string{`name +`, `name`, `nosuchfield == 1`} {
		if _, err := Match(tr, ir.RootID, pred); err == nil {
			t.Errorf("%q: expected an error", pred)
		}
	}
	if _, err := Match(tr, ir.NodeID(99), `true`); err == nil {
		t.Error("expected an error for a bad node")
	}
}

func TestMatchPath(t *testing.T) {
	tr := mustParse(t, `a{x x{y x } x } b{x } p/q{x } a{x }`)
	kiwi := mustParse(t, basket)
	sub, err := kiwi.GetPath(ir.RootID, "basket/fruit_kiwi")
	if err != nil {
		t.Fatal(err)
	}
	for _, tc := range []struct {
		tree *ir.Tree
		from ir.NodeID
	}{{tr, ir.RootID}, {kiwi, sub}} {
		_ = tc.tree.Walk(tc.from, func(id ir.NodeID, _ int, _ bool) error {
			want := tc.tree.LPath(id).String()
			ids, err := Match(tc.tree, tc.from, `path == `+strconv.Quote(want))
			if err != nil {
				t.Fatal(err)
			}
			if len(ids) != 1 || ids[0] != id {
				t.Errorf("path %q: got %v, want [%d]", want, ids, id)
			}
			return nil
		})
	}
}

func TestMatchWide(t *testing.T) {
	const n = 100000
	tr := ir.NewTreeSize(n + 1)
	for i := range n {
		name := "x"
		if i == n-1 {
			name = "last"
		}
		if _, err := tr.AddNormalNode(ir.RootID, "", name); err != nil {
			t.Fatal(err)
		}
	}
	ids, err := Match(tr, ir.RootID, `path == "x[99998]" || path == "last"`)
	if err != nil {
		t.Fatal(err)
	}
	if want := []ir.NodeID{n - 1, n}; !cmp.Equal(want, ids) {
		t.Errorf("got %v, want %v", ids, want)
	}
}
