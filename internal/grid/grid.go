// Package grid holds the fixed race templates a group runs through.
//
// A grid lists pairings of 1-indexed team positions split into three
// phases. Phases are interleaved across divisions by the scheduler, so the
// order of pairings inside a phase is part of the template.
package grid

import "errors"

// Phases is the number of slices every grid is split into.
const Phases = 3

// ErrUnsupportedSize is returned when no template exists for a group size.
var ErrUnsupportedSize = errors.New("unsupported group size")

// Pair is one race between two 1-indexed team positions.
type Pair struct {
	One int
	Two int
}

// Grid is an immutable race template.
type Grid struct {
	key    string
	phases [Phases][]Pair
}

func newGrid(key string, p0, p1, p2 []Pair) Grid {
	return Grid{key: key, phases: [Phases][]Pair{p0, p1, p2}}
}

// Key identifies the template, e.g. "4" or "5S".
func (g Grid) Key() string {
	return g.key
}

// Phase returns a copy of the pairings in phase i.
func (g Grid) Phase(i int) []Pair {
	if i < 0 || i >= Phases {
		return nil
	}
	out := make([]Pair, len(g.phases[i]))
	copy(out, g.phases[i])
	return out
}

// PhaseLen is the number of races in phase i.
func (g Grid) PhaseLen(i int) int {
	if i < 0 || i >= Phases {
		return 0
	}
	return len(g.phases[i])
}

// Pairs returns every pairing in running order.
func (g Grid) Pairs() []Pair {
	out := make([]Pair, 0, g.RaceCount())
	for i := 0; i < Phases; i++ {
		out = append(out, g.phases[i]...)
	}
	return out
}

// RaceCount is the total number of races in the template.
func (g Grid) RaceCount() int {
	n := 0
	for i := 0; i < Phases; i++ {
		n += len(g.phases[i])
	}
	return n
}

// TeamCount is the number of teams the template expects.
func (g Grid) TeamCount() int {
	n := 0
	for i := 0; i < Phases; i++ {
		for _, p := range g.phases[i] {
			n = max(n, p.One, p.Two)
		}
	}
	return n
}

// IsKnockout reports whether the grid is a single-race head to head.
func (g Grid) IsKnockout() bool {
	return g.key == Knockout.key
}
