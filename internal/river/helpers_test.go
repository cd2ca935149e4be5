package river

import (
	"bytes"
	"testing"

	"github.com/ethereum/go-ethereum/log"
)

func newTestRiver(root string) (*River, *bytes.Buffer) {
	var out bytes.Buffer
	r := New(root, WithOutput(&out), WithLogger(log.NewLogger(log.DiscardHandler())))
	return r, &out
}

func addChild(t *testing.T, r *River, parent NodeID, name string) NodeID {
	t.Helper()
	id, err := r.AddChild(parent, name)
	if err != nil {
		t.Fatalf("AddChild(%d, %q): %v", parent, name, err)
	}
	return id
}

// chain builds root -> names[0] -> names[1] -> ... and returns every id,
// root first.
func chain(t *testing.T, root string, names ...string) (*River, *bytes.Buffer, []NodeID) {
	t.Helper()
	r, out := newTestRiver(root)
	ids := []NodeID{r.Root().ID}
	for _, name := range names {
		ids = append(ids, addChild(t, r, ids[len(ids)-1], name))
	}
	return r, out, ids
}

func tick(t *testing.T, r *River, kinds ...Tick) {
	t.Helper()
	for _, k := range kinds {
		if err := r.Tick(k); err != nil {
			t.Fatalf("Tick(%s): %v", k, err)
		}
	}
}
