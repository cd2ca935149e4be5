package river

// Snow and water climb one level per tick: children are read before the
// pre-order traversal reaches them, so state a child gained this tick is
// only seen by its parent on the next one.

func snowRule(r *River, n *Node) error {
	if n.Snowy {
		return nil
	}
	for _, c := range n.Children {
		if r.nodes[c].Snowy {
			r.becomeSnowy(n)
			break
		}
	}
	return nil
}

func (r *River) becomeSnowy(n *Node) {
	n.Snowy = true
	if n.Type == HydroPower {
		n.Destroyed = true
		r.log.Trace("Hydro power destroyed by snowmelt", "node", n.ID, "name", n.Name)
	}
}

func waterRule(r *River, n *Node) error {
	if n.Watered {
		return nil
	}
	for _, c := range n.Children {
		if r.nodes[c].Watered {
			n.Watered = true
			break
		}
	}
	return nil
}

func powerRule(_ *River, n *Node) error {
	n.Powered = n.Watered
	return nil
}

func hatchRule(r *River, n *Node) error {
	if !r.isPowered(n) {
		return nil
	}
	n.Salmon = append(n.Salmon, Salmon{
		Age:       Mature,
		Direction: Upstream,
		Name:      hatchlingName,
	})
	r.log.Trace("Salmon hatched", "node", n.ID, "resident", len(n.Salmon))
	return nil
}
