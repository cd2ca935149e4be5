package river

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNewNodeInitialState(t *testing.T) {
	tests := []struct {
		name    string
		typ     NodeType
		snowy   bool
		powered bool
		delay   int
	}{
		{name: "snowmelt", typ: Snowmelt, snowy: true},
		{name: "SNOWMELT", typ: Snowmelt, snowy: true},
		{name: "powers", typ: Powers, powered: true},
		{name: "shallows", typ: Shallows, delay: 2},
		{name: "Rapids", typ: Rapids, delay: 2},
		{name: "hydro. power", typ: HydroPower},
		{name: "salmon", typ: Other},
	}
	for _, tc := range tests {
		n := newNode(0, NoNode, tc.name)
		if n.Type != tc.typ {
			t.Fatalf("%q: type=%s want=%s", tc.name, n.Type, tc.typ)
		}
		if n.Snowy != tc.snowy || n.Powered != tc.powered || n.Delay != tc.delay {
			t.Fatalf("%q: snowy=%v powered=%v delay=%d", tc.name, n.Snowy, n.Powered, n.Delay)
		}
		if n.Watered || n.Destroyed || n.BlockPower || n.BlockSalmon || n.VeryBlockSalmon {
			t.Fatalf("%q: unexpected flag set: %+v", tc.name, n)
		}
	}
}

func TestOtherKeepsLowercasedName(t *testing.T) {
	n := newNode(0, NoNode, "Fishy")
	if n.Type != Other || n.Instruction() != "fishy" {
		t.Fatalf("expected other/fishy, got %s/%q", n.Type, n.Instruction())
	}
	if n.Name != "Fishy" {
		t.Fatalf("raw name lost: %q", n.Name)
	}
}

func TestInstructionNamesRoundTrip(t *testing.T) {
	names := InstructionNames()
	if len(names) != int(numNodeTypes)-1 {
		t.Fatalf("expected %d names, got %d", numNodeTypes-1, len(names))
	}
	for _, name := range names {
		if got := LookupNodeType(name); got.String() != name {
			t.Fatalf("LookupNodeType(%q)=%s", name, got)
		}
	}
}

func TestTreeLinks(t *testing.T) {
	r, _ := newTestRiver("a")
	b := addChild(t, r, 0, "b")
	c := addChild(t, r, 0, "c")
	d := addChild(t, r, c, "d")

	if got := r.Root().Children; !cmp.Equal(got, []NodeID{b, c}) {
		t.Fatalf("root children %v", got)
	}
	if r.Parent(r.Node(d)).ID != c {
		t.Fatalf("expected d's parent to be c")
	}
	if r.Parent(r.Root()) != nil {
		t.Fatalf("root must have no parent")
	}
	if diff := cmp.Diff([]NodeID{0, c, d}, r.Path(d)); diff != "" {
		t.Fatalf("path mismatch (-want +got):\n%s", diff)
	}
	if _, err := r.AddChild(42, "x"); !errors.Is(err, ErrNoSuchNode) {
		t.Fatalf("expected ErrNoSuchNode, got %v", err)
	}
}

func TestWalkPreOrderWithDepth(t *testing.T) {
	r, _ := newTestRiver("a")
	b := addChild(t, r, 0, "b")
	addChild(t, r, b, "c")
	addChild(t, r, 0, "d")

	var got []string
	r.Walk(func(n *Node, depth int) bool {
		got = append(got, fmt.Sprintf("%s:%d", n.Name, depth))
		return true
	})
	want := []string{"a:0", "b:1", "c:2", "d:1"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("walk mismatch (-want +got):\n%s", diff)
	}
}

func TestIsPowered(t *testing.T) {
	r, _, ids := chain(t, "a", "b", "powers")
	if !r.IsPowered(ids[0]) {
		t.Fatalf("root should see power from its subtree")
	}
	r.Node(ids[1]).BlockPower = true
	if r.IsPowered(ids[0]) || r.IsPowered(ids[1]) {
		t.Fatalf("block power must cut the subtree off")
	}
	if !r.IsPowered(ids[2]) {
		t.Fatalf("powers node is powered by itself")
	}
	if r.IsPowered(99) {
		t.Fatalf("unknown node cannot be powered")
	}
}

func TestProgram(t *testing.T) {
	if p := EmptyProgram(); !p.IsEmpty() {
		t.Fatalf("empty program should report empty")
	}
	r, _ := newTestRiver("a")
	p := NewProgram(r)
	got, ok := p.River()
	if !ok || got != r || p.IsEmpty() {
		t.Fatalf("expected tree program wrapping the river")
	}
}
