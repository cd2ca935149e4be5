package river

import (
	"fmt"
	"io"
	"os"

	"github.com/ethereum/go-ethereum/log"
)

// River owns every node of a program. Nodes refer to each other by NodeID;
// the root always has ID 0.
type River struct {
	nodes []*Node
	rules map[ruleKey]Rule
	out   io.Writer
	log   log.Logger
}

type Option func(*River)

// WithOutput sets where caught salmon names are written. Defaults to stdout.
func WithOutput(w io.Writer) Option {
	return func(r *River) {
		r.out = w
	}
}

func WithLogger(l log.Logger) Option {
	return func(r *River) {
		r.log = l
	}
}

// New creates a river holding only its root node.
func New(rootName string, opts ...Option) *River {
	r := &River{
		rules: defaultRules(),
		out:   os.Stdout,
		log:   log.Root(),
	}
	for _, opt := range opts {
		opt(r)
	}
	r.nodes = append(r.nodes, newNode(0, NoNode, rootName))
	return r
}

// AddChild appends a new node named name as the last child of parent.
func (r *River) AddChild(parent NodeID, name string) (NodeID, error) {
	p := r.Node(parent)
	if p == nil {
		return NoNode, fmt.Errorf("%w: %d", ErrNoSuchNode, parent)
	}
	id := NodeID(len(r.nodes))
	r.nodes = append(r.nodes, newNode(id, parent, name))
	p.Children = append(p.Children, id)
	return id, nil
}

func (r *River) Root() *Node {
	return r.nodes[0]
}

// Node returns the node with the given id, or nil.
func (r *River) Node(id NodeID) *Node {
	if id < 0 || int(id) >= len(r.nodes) {
		return nil
	}
	return r.nodes[id]
}

// Len is the number of nodes in the river.
func (r *River) Len() int {
	return len(r.nodes)
}

// Parent returns the parent of n, or nil for the root.
func (r *River) Parent(n *Node) *Node {
	return r.Node(n.Parent)
}

// Child returns the i-th child of n.
func (r *River) Child(n *Node, i int) *Node {
	if i < 0 || i >= len(n.Children) {
		return nil
	}
	return r.nodes[n.Children[i]]
}

// Walk visits nodes in pre-order with their depth below the root. Returning
// false from fn skips the node's children.
func (r *River) Walk(fn func(n *Node, depth int) bool) {
	r.walk(r.Root(), 0, fn)
}

func (r *River) walk(n *Node, depth int, fn func(*Node, int) bool) {
	if !fn(n, depth) {
		return
	}
	for _, c := range n.Children {
		r.walk(r.nodes[c], depth+1, fn)
	}
}

// Path returns the ids from the root down to id, inclusive.
func (r *River) Path(id NodeID) []NodeID {
	n := r.Node(id)
	if n == nil {
		return nil
	}
	var path []NodeID
	for ; n != nil; n = r.Parent(n) {
		path = append(path, n.ID)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// AddSalmon places s at the node with the given id.
func (r *River) AddSalmon(id NodeID, s Salmon) error {
	n := r.Node(id)
	if n == nil {
		return fmt.Errorf("%w: %d", ErrNoSuchNode, id)
	}
	n.Salmon = append(n.Salmon, s)
	return nil
}

// IsPowered reports whether the node or, unless blocked, anything upstream
// of it generates power. It is recomputed on every call.
func (r *River) IsPowered(id NodeID) bool {
	n := r.Node(id)
	if n == nil {
		return false
	}
	return r.isPowered(n)
}

func (r *River) isPowered(n *Node) bool {
	if n.BlockPower {
		return false
	}
	if n.Powered {
		return true
	}
	for _, c := range n.Children {
		if r.isPowered(r.nodes[c]) {
			return true
		}
	}
	return false
}
