package ir

import (
	"errors"
	"testing"
)

func TestJSONRoundTrip(t *testing.T) {
	tr, _ := buildFruit(t)
	tr.SetRootData(MakeHexes(tr.Pool().InternString("FF")))
	d, err := tr.MarshalJSON()
	if err != nil {
		t.Fatal(err)
	}
	back := NewTree()
	if err := back.UnmarshalJSON(d); err != nil {
		t.Fatalf("%v\n%s", err, d)
	}
	if !Equal(tr, RootID, back, RootID) {
		t.Errorf("round trip differs: %s", d)
	}
}

func TestMarshalJSONShape(t *testing.T) {
	tr := NewTree()
	mustID(t)(tr.AddNormalNode(RootID, "0A", "a"))
	mustID(t)(tr.AddTextNode(RootID, "hi", ""))
	d, err := tr.MarshalJSON()
	if err != nil {
		t.Fatal(err)
	}
	mustID(t)(tr.AddNormalNode(1, "", "b"))
	want := `{"kind":"root","nodes":[{"kind":"norm","depth":1,"name":"a","data":"0A"},{"kind":"norm","depth":2,"name":"b"},{"kind":"text","depth":1,"name":"$","text":"hi"}]}`
	if string(d) != want {
		t.Errorf("got  %s\nwant %s", d, want)
	}
}

func TestUnmarshalJSONRejects(t *testing.T) {
	tests := []struct {
		in   string
		want error
	}{
		{`{"kind":"norm","name":"a"}`, ErrBadNode},
		{`{"kind":"root","data":"zz"}`, ErrMalformedName},
		{`{"kind":"root","nodes":[{"kind":"norm","depth":1,"name":"#x"}]}`, ErrMalformedName},
		{`{"kind":"root","nodes":[{"kind":"text","depth":1,"name":"$"},{"kind":"norm","depth":2,"name":"a"}]}`, ErrTextChildren},
		{`{"kind":"root","nodes":[{"kind":"root","depth":1}]}`, ErrBadNode},
		{`{"kind":"root","nodes":[null]}`, ErrBadNode},
		{`{"kind":"root","nodes":[{"kind":"norm","name":"a"}]}`, ErrBadNode},
		{`{"kind":"root","nodes":[{"kind":"norm","depth":2,"name":"a"}]}`, ErrBadNode},
	}
	for _, tc := range tests {
		tr := NewTree()
		if err := tr.UnmarshalJSON([]byte(tc.in)); !errors.Is(err, tc.want) {
			t.Errorf("%s: got %v, want %v", tc.in, err, tc.want)
		}
	}
}

func TestJSONEmptyName(t *testing.T) {
	tr := NewTree()
	a := mustID(t)(tr.AddNormalNode(RootID, "", "a"))
	tr.AppendCore(a, NodeCore{Kind: NormKind})
	d, err := tr.MarshalJSON()
	if err != nil {
		t.Fatal(err)
	}
	back := NewTree()
	if err := back.UnmarshalJSON(d); err != nil {
		t.Fatalf("%v\n%s", err, d)
	}
	if !Equal(tr, RootID, back, RootID) {
		t.Errorf("round trip differs: %s", d)
	}
}

func TestJSONDeep(t *testing.T) {
	const depth = 200000
	tr := NewTreeSize(depth + 1)
	id := RootID
	for range depth {
		id = mustID(t)(tr.AddNormalNode(id, "1", "n"))
	}
	d, err := tr.MarshalJSON()
	if err != nil {
		t.Fatal(err)
	}
	back := NewTree()
	if err := back.UnmarshalJSON(d); err != nil {
		t.Fatal(err)
	}
	if back.Len() != depth+1 || back.Depth(NodeID(depth)) != depth {
		t.Errorf("got %d nodes", back.Len())
	}
	if !Equal(tr, RootID, back, RootID) {
		t.Error("deep round trip differs")
	}
}

func TestMarshalSubtreeJSON(t *testing.T) {
	tr := NewTree()
	a := mustID(t)(tr.AddNormalNode(RootID, "1", "a"))
	mustID(t)(tr.AddNormalNode(a, "", "b"))
	d, err := tr.MarshalSubtreeJSON(a)
	if err != nil {
		t.Fatal(err)
	}
	want := `{"kind":"norm","name":"a","data":"1","nodes":[{"kind":"norm","depth":1,"name":"b"}]}`
	if string(d) != want {
		t.Errorf("got  %s\nwant %s", d, want)
	}
	if _, err := tr.MarshalSubtreeJSON(NodeID(9)); !errors.Is(err, ErrBadNode) {
		t.Errorf("got %v, want ErrBadNode", err)
	}
}
