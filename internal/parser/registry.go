package parser

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/appengine-ltd/homespring/internal/river"
)

// Vocabulary is the set of instruction names a program may use. Unknown
// names are legal; the vocabulary only suggests what might have been meant.
type Vocabulary struct {
	names []string
	known map[string]bool
}

func NewVocabulary(names ...string) *Vocabulary {
	v := &Vocabulary{known: make(map[string]bool, len(names))}
	for _, name := range names {
		v.Register(name)
	}
	return v
}

// DefaultVocabulary holds every instruction the river package recognises.
func DefaultVocabulary() *Vocabulary {
	return NewVocabulary(river.InstructionNames()...)
}

func (v *Vocabulary) Register(name string) {
	n := normaliseName(name)
	if n == "" || v.known[n] {
		return
	}
	v.known[n] = true
	v.names = append(v.names, n)
}

func (v *Vocabulary) Known(name string) bool {
	return v.known[normaliseName(name)]
}

type suggestion struct {
	name  string
	score float64
}

// Suggest returns the instruction name closest to an unknown name. ok is
// false when name is known or nothing is close enough.
func (v *Vocabulary) Suggest(name string) (string, bool) {
	in := normaliseName(name)
	if in == "" || v.known[in] {
		return "", false
	}
	cands := make([]suggestion, 0, 4)
	for _, cand := range v.names {
		switch {
		case squash(in) == squash(cand):
			cands = append(cands, suggestion{cand, 0.97})
		case strings.HasPrefix(cand, in) && len(in) >= 3:
			cands = append(cands, suggestion{cand, 0.9})
		case len(in) >= 3:
			dist := levenshtein.ComputeDistance(in, cand)
			if dist > levenshteinLimit(len(cand)) {
				continue
			}
			cands = append(cands, suggestion{cand, 0.72 - 0.08*float64(dist)})
		}
	}
	if len(cands) == 0 {
		return "", false
	}
	sort.SliceStable(cands, func(i, j int) bool {
		if cands[i].score == cands[j].score {
			return cands[i].name < cands[j].name
		}
		return cands[i].score > cands[j].score
	})
	return cands[0].name, true
}

func levenshteinLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}

// Lint lists the nodes of r whose names match no instruction, in pre-order.
func (v *Vocabulary) Lint(r *river.River) []Finding {
	var out []Finding
	r.Walk(func(n *river.Node, _ int) bool {
		if n.Type == river.Other && !v.Known(n.Name) {
			s, _ := v.Suggest(n.Name)
			out = append(out, Finding{Node: n.ID, Name: n.Name, Suggestion: s})
		}
		return true
	})
	return out
}
