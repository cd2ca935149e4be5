package river

import "strings"

// NodeID addresses a node inside its River.
type NodeID int

// NoNode is the parent of the root and the result of a failed search.
const NoNode NodeID = -1

// initialDelay is the number of fish ticks a Shallows or Rapids node holds
// fish back before letting them through.
const initialDelay = 2

// Node is one named point of the river. Children are listed in source order.
type Node struct {
	ID       NodeID
	Name     string
	Type     NodeType
	Parent   NodeID
	Children []NodeID
	Salmon   []Salmon

	Snowy     bool
	Watered   bool
	Powered   bool
	Destroyed bool

	BlockSnow       bool
	BlockWater      bool
	BlockPower      bool
	BlockSalmon     bool
	VeryBlockSalmon bool

	// Delay is only meaningful for Shallows and Rapids.
	Delay int
}

func newNode(id NodeID, parent NodeID, name string) *Node {
	n := &Node{
		ID:     id,
		Name:   name,
		Type:   LookupNodeType(name),
		Parent: parent,
	}
	switch n.Type {
	case Snowmelt:
		n.Snowy = true
	case Powers:
		n.Powered = true
	case Shallows, Rapids:
		n.Delay = initialDelay
	}
	return n
}

// IsRoot reports whether the node is the mouth of the river.
func (n *Node) IsRoot() bool {
	return n.Parent == NoNode
}

// Instruction is the canonical instruction name, or the lowercased source
// name for unrecognised nodes.
func (n *Node) Instruction() string {
	if n.Type == Other {
		return strings.ToLower(n.Name)
	}
	return n.Type.String()
}

// CountSalmon returns how many resident salmon travel in the given direction.
func (n *Node) CountSalmon(dir Direction) int {
	count := 0
	for _, s := range n.Salmon {
		if s.Direction == dir {
			count++
		}
	}
	return count
}
