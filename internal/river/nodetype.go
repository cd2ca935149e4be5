package river

import "strings"

// NodeType is the instruction a node was named after. Names that match no
// instruction resolve to Other.
type NodeType int

const (
	Other NodeType = iota
	Hatchery
	HydroPower
	Snowmelt
	Shallows
	Rapids
	AppendDown
	Bear
	ForceField
	Sense
	Clone
	YoungBear
	Bird
	UpstreamKillingDevice
	Waterfall
	Universe
	Powers
	Marshy
	Insulated
	UpstreamSense
	DownstreamSense
	Evaporates
	YouthFountain
	Oblivion
	Pump
	RangeSense
	Fear
	ReverseUp
	ReverseDown
	Time
	Lock
	InverseLock
	YoungSense
	Switch
	YoungSwitch
	Narrows
	AppendUp
	YoungRangeSense
	Net
	ForceDown
	ForceUp
	Spawn
	PowerInvert
	Current
	Bridge
	Split
	RangeSwitch
	YoungRangeSwitch

	numNodeTypes
)

// AnyType is the wildcard used when registering a rule for every node type.
const AnyType NodeType = -1

var instructionNames = [numNodeTypes]string{
	Other:                 "",
	Hatchery:              "hatchery",
	HydroPower:            "hydro. power",
	Snowmelt:              "snowmelt",
	Shallows:              "shallows",
	Rapids:                "rapids",
	AppendDown:            "append. down",
	Bear:                  "bear",
	ForceField:            "force. field",
	Sense:                 "sense",
	Clone:                 "clone",
	YoungBear:             "young. bear",
	Bird:                  "bird",
	UpstreamKillingDevice: "upstream. killing. device",
	Waterfall:             "waterfall",
	Universe:              "universe",
	Powers:                "powers",
	Marshy:                "marshy",
	Insulated:             "insulated",
	UpstreamSense:         "upstream. sense",
	DownstreamSense:       "downstream. sense",
	Evaporates:            "evaporates",
	YouthFountain:         "youth. fountain",
	Oblivion:              "oblivion",
	Pump:                  "pump",
	RangeSense:            "range. sense",
	Fear:                  "fear",
	ReverseUp:             "reverse. up",
	ReverseDown:           "reverse. down",
	Time:                  "time",
	Lock:                  "lock",
	InverseLock:           "inverse. lock",
	YoungSense:            "young. sense",
	Switch:                "switch",
	YoungSwitch:           "young. switch",
	Narrows:               "narrows",
	AppendUp:              "append. up",
	YoungRangeSense:       "young. range. sense",
	Net:                   "net",
	ForceDown:             "force. down",
	ForceUp:               "force. up",
	Spawn:                 "spawn",
	PowerInvert:           "power. invert",
	Current:               "current",
	Bridge:                "bridge",
	Split:                 "split",
	RangeSwitch:           "range. switch",
	YoungRangeSwitch:      "young. range. switch",
}

var nodeTypesByName = func() map[string]NodeType {
	m := make(map[string]NodeType, numNodeTypes)
	for t := Hatchery; t < numNodeTypes; t++ {
		m[instructionNames[t]] = t
	}
	return m
}()

// LookupNodeType resolves a source name case-insensitively.
func LookupNodeType(name string) NodeType {
	if t, ok := nodeTypesByName[strings.ToLower(name)]; ok {
		return t
	}
	return Other
}

// InstructionNames returns every recognised instruction name in declaration
// order.
func InstructionNames() []string {
	out := make([]string, 0, numNodeTypes-1)
	for t := Hatchery; t < numNodeTypes; t++ {
		out = append(out, instructionNames[t])
	}
	return out
}

func (t NodeType) String() string {
	switch {
	case t == AnyType:
		return "any"
	case t == Other:
		return "other"
	case t > Other && t < numNodeTypes:
		return instructionNames[t]
	default:
		return "invalid"
	}
}

// Valid reports whether t is a concrete node type.
func (t NodeType) Valid() bool {
	return t >= Other && t < numNodeTypes
}

// delays reports whether fish are held up by nodes of this type.
func (t NodeType) delays() bool {
	return t == Shallows || t == Rapids
}
