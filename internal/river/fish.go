package river

import (
	"fmt"
	"io"
)

func fishDownRule(r *River, n *Node) error {
	return r.moveSalmon(n, Downstream)
}

func fishUpRule(r *River, n *Node) error {
	return r.moveSalmon(n, Upstream)
}

// moveSalmon moves the salmon at n that travel in dir one step. Shallows and
// Rapids hold everything back until their delay runs out.
func (r *River) moveSalmon(n *Node, dir Direction) error {
	if n.Type.delays() && n.Delay > 0 {
		n.Delay--
		return nil
	}
	if dir == Downstream {
		return r.moveDownstream(n)
	}
	r.moveUpstream(n)
	return nil
}

func (r *River) moveDownstream(n *Node) error {
	parent := r.Parent(n)
	var caught []Salmon
	kept := n.Salmon[:0]
	for _, s := range n.Salmon {
		switch {
		case s.Direction != Downstream:
			kept = append(kept, s)
		case parent != nil:
			parent.Salmon = append(parent.Salmon, s)
		default:
			caught = append(caught, s)
		}
	}
	clear(n.Salmon[len(kept):])
	n.Salmon = kept

	for _, s := range caught {
		if _, err := io.WriteString(r.out, s.Name); err != nil {
			return fmt.Errorf("write caught salmon %q: %w", s.Name, err)
		}
		r.log.Trace("Salmon caught", "name", s.Name)
	}
	return nil
}

func (r *River) moveUpstream(n *Node) {
	if n.BlockSalmon {
		return
	}
	kept := n.Salmon[:0]
	for _, s := range n.Salmon {
		if s.Direction != Upstream {
			kept = append(kept, s)
			continue
		}
		dst := r.upstreamDestination(n, s.Name)
		if dst == nil {
			kept = append(kept, s)
			continue
		}
		dst.Salmon = append(dst.Salmon, s)
	}
	clear(n.Salmon[len(kept):])
	n.Salmon = kept
}

// upstreamDestination picks the child a salmon named name swims into: the
// child leading towards a node of that name, else the first child that
// accepts salmon. It returns nil when no child accepts salmon.
func (r *River) upstreamDestination(n *Node, name string) *Node {
	if path, ok := r.findPath(n, name, false); ok {
		if c := r.Child(n, path[0]); !c.VeryBlockSalmon {
			return c
		}
	}
	for _, id := range n.Children {
		if c := r.nodes[id]; !c.VeryBlockSalmon {
			return c
		}
	}
	return nil
}

// FindNode returns the first node named name in search order, or NoNode.
func (r *River) FindNode(name string) NodeID {
	path, ok := r.findPath(r.Root(), name, true)
	if !ok {
		return NoNode
	}
	n := r.Root()
	for _, i := range path {
		n = r.Child(n, i)
	}
	return n.ID
}

// FindNodePath returns the child indices leading from the root to the first
// node named name.
func (r *River) FindNodePath(name string) ([]int, bool) {
	return r.findPath(r.Root(), name, true)
}

// findPath searches the subtree of n by raw name. The search enters the
// first child's subtree, then checks n itself, then the remaining children
// in order. This only matches a true in-order search for nodes with at most
// two children, but the visitation order is part of the language. With self
// false, n's own name is never matched, so a hit always starts with the
// index of a child.
func (r *River) findPath(n *Node, name string, self bool) ([]int, bool) {
	for i, c := range n.Children {
		if i == 1 && self && n.Name == name {
			return []int{}, true
		}
		if path, ok := r.findPath(r.nodes[c], name, true); ok {
			return append([]int{i}, path...), true
		}
	}
	if len(n.Children) <= 1 && self && n.Name == name {
		return []int{}, true
	}
	return nil, false
}
