package river

type Age int

const (
	Young Age = iota
	Mature
)

func (a Age) String() string {
	if a == Mature {
		return "mature"
	}
	return "young"
}

type Direction int

const (
	Upstream Direction = iota
	Downstream
)

func (d Direction) String() string {
	if d == Downstream {
		return "downstream"
	}
	return "upstream"
}

// Salmon is a fish resident at a node. Salmon are moved between nodes,
// never copied.
type Salmon struct {
	Age       Age
	Direction Direction
	Name      string
}

// hatchlingName is the name given to salmon produced by a hatchery.
const hatchlingName = "homeless"
