package ir

import (
	"errors"
	"slices"
	"testing"

	"github.com/signadot/turbo-buf/ir/lpath"

	"github.com/google/go-cmp/cmp"
)

// buildFruit builds:
//
//	basket{
//		fruit_apple{1}
//		fruit_kiwi{2
//			seed
//		}
//		$_note{ripe}
//		fruit_pear{3}
//	}
func buildFruit(t *testing.T) (*Tree, NodeID) {
	t.Helper()
	tr := NewTree()
	basket := mustID(t)(tr.AddNormalNode(RootID, "", "basket"))
	mustID(t)(tr.AddNormalNode(basket, "1", "fruit_apple"))
	kiwi := mustID(t)(tr.AddNormalNode(basket, "2", "fruit_kiwi"))
	mustID(t)(tr.AddNormalNode(kiwi, "", "seed"))
	mustID(t)(tr.AddTextNode(basket, "ripe", "note"))
	mustID(t)(tr.AddNormalNode(basket, "3", "fruit_pear"))
	return tr, basket
}

func mustID(t *testing.T) func(NodeID, error) NodeID {
	return func(id NodeID, err error) NodeID {
		t.Helper()
		if err != nil {
			t.Fatal(err)
		}
		return id
	}
}

func names(tr *Tree, ids []NodeID) []string {
	res := make([]string, len(ids))
	for i, id := range ids {
		res[i] = tr.Core(id).Name.String()
	}
	return res
}

func TestNewTree(t *testing.T) {
	tr := NewTree()
	if tr.Len() != 1 {
		t.Fatalf("Len = %d", tr.Len())
	}
	root := tr.Core(RootID)
	if root.Kind != RootKind || !root.Data.IsEmpty() {
		t.Errorf("root = %+v", root)
	}
	if tr.Parent(RootID) != NoNode || !tr.IsLeaf(RootID) {
		t.Errorf("root has parent or children")
	}
}

func TestChildrenOrder(t *testing.T) {
	tr, basket := buildFruit(t)
	got := names(tr, slices.Collect(tr.Children(basket)))
	want := []string{"fruit_apple", "fruit_kiwi", "$_note", "fruit_pear"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("children mismatch (-want +got):\n%s", diff)
	}
	if tr.ChildCount(basket) != 4 {
		t.Errorf("ChildCount = %d", tr.ChildCount(basket))
	}
	for c := range tr.Children(basket) {
		if tr.Parent(c) != basket {
			t.Errorf("parent of %d = %d", c, tr.Parent(c))
		}
	}
}

func TestWalk(t *testing.T) {
	tr, basket := buildFruit(t)
	type v struct {
		Name  string
		Depth int
		Leaf  bool
	}
	var got []v
	err := tr.Walk(RootID, func(id NodeID, depth int, leaf bool) error {
		got = append(got, v{tr.Core(id).Name.String(), depth, leaf})
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	want := []v{
		{"", 0, false},
		{"basket", 1, false},
		{"fruit_apple", 2, true},
		{"fruit_kiwi", 2, false},
		{"seed", 3, true},
		{"$_note", 2, true},
		{"fruit_pear", 2, true},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("walk mismatch (-want +got):\n%s", diff)
	}

	kiwi, _ := tr.Descend(basket, lpathExact("fruit_kiwi"))
	got = nil
	_ = tr.Walk(kiwi, func(id NodeID, depth int, leaf bool) error {
		got = append(got, v{tr.Core(id).Name.String(), depth, leaf})
		return nil
	})
	want = []v{{"fruit_kiwi", 0, false}, {"seed", 1, true}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("subtree walk mismatch (-want +got):\n%s", diff)
	}
}

func TestWalkStops(t *testing.T) {
	tr, _ := buildFruit(t)
	stop := errors.New("stop")
	n := 0
	err := tr.Walk(RootID, func(NodeID, int, bool) error {
		n++
		if n == 3 {
			return stop
		}
		return nil
	})
	if !errors.Is(err, stop) || n != 3 {
		t.Errorf("err=%v n=%d", err, n)
	}
}

func TestWalkDeep(t *testing.T) {
	tr := NewTree()
	p := RootID
	const depth = 200000
	for range depth {
		p = tr.AppendCore(p, NodeCore{Kind: NormKind, Name: Borrow("d")})
	}
	maxDepth := 0
	_ = tr.Walk(RootID, func(_ NodeID, d int, _ bool) error {
		maxDepth = max(maxDepth, d)
		return nil
	})
	if maxDepth != depth {
		t.Errorf("max depth %d", maxDepth)
	}
	if tr.Depth(p) != depth {
		t.Errorf("Depth = %d", tr.Depth(p))
	}
}

func TestAppendBelowTextPanics(t *testing.T) {
	tr := NewTree()
	txt := mustID(t)(tr.AddTextNode(RootID, "x", ""))
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	tr.AppendCore(txt, NodeCore{Kind: NormKind, Name: Borrow("a")})
}

func lpathExact(name string) lpath.LevelDescender {
	return lpath.Exact(name, 0)
}
