package river

import (
	"fmt"
	"strings"
)

// Tick is the kind of a global simulation step.
type Tick int

const (
	Snow Tick = iota
	Water
	Power
	FishDown
	FishUp
	FishHatch
	Misc
	Input

	numTicks
)

// PropagationOrder is the order in which a tick visits the tree.
type PropagationOrder int

const (
	// PreOrder applies a node's rule before visiting its children.
	PreOrder PropagationOrder = iota
	// PostOrder visits the children first.
	PostOrder
	// AnyOrder is used by ticks whose rules only touch local state.
	AnyOrder
)

var tickNames = [numTicks]string{
	Snow:      "snow",
	Water:     "water",
	Power:     "power",
	FishDown:  "fishdown",
	FishUp:    "fishup",
	FishHatch: "fishhatch",
	Misc:      "misc",
	Input:     "input",
}

// Ticks returns every tick kind in the order a full Homespring step runs them.
func Ticks() []Tick {
	out := make([]Tick, 0, numTicks)
	for t := Snow; t < numTicks; t++ {
		out = append(out, t)
	}
	return out
}

// ParseTick accepts tick names case-insensitively, ignoring '-', '_' and
// spaces, so "fish-down" and "FishDown" are the same tick.
func ParseTick(s string) (Tick, error) {
	key := strings.Map(func(r rune) rune {
		switch r {
		case '-', '_', ' ':
			return -1
		}
		return r
	}, strings.ToLower(strings.TrimSpace(s)))
	for t, name := range tickNames {
		if name == key {
			return Tick(t), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnsupportedTick, s)
}

func (t Tick) Valid() bool {
	return t >= Snow && t < numTicks
}

func (t Tick) String() string {
	if !t.Valid() {
		return fmt.Sprintf("tick(%d)", int(t))
	}
	return tickNames[t]
}

// Order is the propagation order of the tick kind.
func (t Tick) Order() PropagationOrder {
	switch t {
	case FishUp:
		return PostOrder
	case Power, Input:
		return AnyOrder
	default:
		return PreOrder
	}
}

func (o PropagationOrder) String() string {
	switch o {
	case PreOrder:
		return "pre-order"
	case PostOrder:
		return "post-order"
	default:
		return "any"
	}
}
