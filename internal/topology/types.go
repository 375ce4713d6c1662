package topology

import (
	"errors"

	"github.com/mauv0809/race-organiser/internal/grid"
)

const (
	MinTeams = 4
	MaxTeams = 32
)

// ErrUnsupportedTeamCount is returned for divisions outside MinTeams..MaxTeams.
var ErrUnsupportedTeamCount = errors.New("unsupported number of teams")

// RoundType selects which table a round draws its groups from.
type RoundType int

const (
	Initial RoundType = iota
	Intermediate
	Knockout
)

func (r RoundType) String() string {
	switch r {
	case Initial:
		return "initial"
	case Intermediate:
		return "intermediate"
	case Knockout:
		return "knockout"
	}
	return "unknown"
}

// GroupSpec describes one group of a round. Seats is empty for initial rounds,
// which are filled by the allocator instead.
type GroupSpec struct {
	Name  string
	Size  int
	Grid  grid.Grid
	Seats []SeatRef
}

// Topology is the group layout of one division for one round.
type Topology struct {
	Round  RoundType
	Teams  int
	Groups []GroupSpec
}

// Sizes returns the group sizes in table order.
func (t Topology) Sizes() []int {
	out := make([]int, len(t.Groups))
	for i, g := range t.Groups {
		out[i] = g.Size
	}
	return out
}

// Names returns the group names in table order.
func (t Topology) Names() []string {
	out := make([]string, len(t.Groups))
	for i, g := range t.Groups {
		out[i] = g.Name
	}
	return out
}

// Seated is the number of teams the round places into groups.
func (t Topology) Seated() int {
	n := 0
	for _, g := range t.Groups {
		n += g.Size
	}
	return n
}
