package river

import "fmt"

// Rule is the transition applied to a node when a tick visits it. A rule may
// change the node itself and, when moving salmon, its parent or a direct
// child.
type Rule func(r *River, n *Node) error

type ruleKey struct {
	tick Tick
	typ  NodeType
}

func defaultRules() map[ruleKey]Rule {
	return map[ruleKey]Rule{
		{Snow, AnyType}:       snowRule,
		{Water, AnyType}:      waterRule,
		{Power, HydroPower}:   powerRule,
		{FishHatch, Hatchery}: hatchRule,
		{FishDown, AnyType}:   fishDownRule,
		{FishUp, AnyType}:     fishUpRule,
	}
}

// Register installs rule for the given tick and node type, replacing any
// rule already there. typ may be AnyType, in which case the rule applies to
// every node type without a rule of its own. A nil rule removes the entry.
func (r *River) Register(tick Tick, typ NodeType, rule Rule) error {
	if !tick.Valid() {
		return fmt.Errorf("%w: %s", ErrUnsupportedTick, tick)
	}
	if typ != AnyType && !typ.Valid() {
		return fmt.Errorf("register %s rule: invalid node type %d", tick, int(typ))
	}
	key := ruleKey{tick, typ}
	if rule == nil {
		delete(r.rules, key)
		return nil
	}
	r.rules[key] = rule
	return nil
}

func (r *River) rule(tick Tick, typ NodeType) Rule {
	if rule, ok := r.rules[ruleKey{tick, typ}]; ok {
		return rule
	}
	return r.rules[ruleKey{tick, AnyType}]
}

// Tick runs one full traversal of the river for the given tick kind.
func (r *River) Tick(t Tick) error {
	if !t.Valid() {
		return fmt.Errorf("%w: %s", ErrUnsupportedTick, t)
	}
	if err := r.visit(r.Root(), t, t.Order() == PostOrder); err != nil {
		return fmt.Errorf("%s tick: %w", t, err)
	}
	r.log.Debug("Tick complete", "tick", t, "order", t.Order(), "nodes", len(r.nodes))
	return nil
}

func (r *River) visit(n *Node, t Tick, post bool) error {
	if post {
		if err := r.visitChildren(n, t, post); err != nil {
			return err
		}
	}
	if rule := r.rule(t, n.Type); rule != nil {
		if err := rule(r, n); err != nil {
			return err
		}
	}
	if !post {
		return r.visitChildren(n, t, post)
	}
	return nil
}

func (r *River) visitChildren(n *Node, t Tick, post bool) error {
	for _, c := range n.Children {
		if err := r.visit(r.nodes[c], t, post); err != nil {
			return err
		}
	}
	return nil
}
