// Package topology holds the hand-curated group layouts for every supported
// division size and round type.
package topology

import (
	"fmt"
	"strings"

	"github.com/mauv0809/race-organiser/internal/grid"
)

var tables map[RoundType]map[int]Topology

func init() {
	built, err := build()
	if err != nil {
		panic(fmt.Sprintf("topology: %v", err))
	}
	if err := validate(built); err != nil {
		panic(fmt.Sprintf("topology: %v", err))
	}
	tables = built
}

// For returns the layout of a division of teamCount teams for the given round.
// An intermediate round for six or fewer teams has no groups.
func For(round RoundType, teamCount int) (Topology, error) {
	if teamCount < MinTeams {
		return Topology{}, fmt.Errorf("%w: too few teams (%d)", ErrUnsupportedTeamCount, teamCount)
	}
	if teamCount > MaxTeams {
		return Topology{}, fmt.Errorf("%w: too many teams (%d)", ErrUnsupportedTeamCount, teamCount)
	}
	byCount, ok := tables[round]
	if !ok {
		return Topology{}, fmt.Errorf("no layout for %s round", round)
	}
	return byCount[teamCount], nil
}

// Validate re-checks every table entry. It already ran once at start up.
func Validate() error {
	return validate(tables)
}

var canonicalOrder = func() []string {
	order := []string{"A", "E", "B", "F", "C", "G", "D", "H"}
	order = append(order, romanNumerals...)
	return append(order, knockoutNames...)
}()

// CanonicalIndex orders group names: lettered groups, then roman numerals,
// then knockout placings from the final down. Unknown names sort last.
func CanonicalIndex(name string) int {
	for i, known := range canonicalOrder {
		if strings.EqualFold(known, name) {
			return i
		}
	}
	return len(canonicalOrder)
}

func build() (map[RoundType]map[int]Topology, error) {
	out := map[RoundType]map[int]Topology{
		Initial:      {},
		Intermediate: {},
		Knockout:     {},
	}

	for n := MinTeams; n <= MaxTeams; n++ {
		initial, err := buildInitial(n)
		if err != nil {
			return nil, err
		}
		out[Initial][n] = initial

		intermediate := Topology{Round: Intermediate, Teams: n}
		if raw, ok := intermediateSeats[n]; ok {
			intermediate.Groups, err = buildSeated(raw, romanNumerals, nil)
			if err != nil {
				return nil, fmt.Errorf("intermediate %d: %w", n, err)
			}
		}
		out[Intermediate][n] = intermediate

		raw, ok := knockoutSeats[n]
		if !ok {
			return nil, fmt.Errorf("knockout %d: missing entry", n)
		}
		knockout := Topology{Round: Knockout, Teams: n}
		knockout.Groups, err = buildSeated(raw, knockoutNames, &grid.Knockout)
		if err != nil {
			return nil, fmt.Errorf("knockout %d: %w", n, err)
		}
		out[Knockout][n] = knockout
	}
	return out, nil
}

func buildInitial(n int) (Topology, error) {
	sizes, ok := initialSizes[n]
	if !ok {
		return Topology{}, fmt.Errorf("initial %d: missing entry", n)
	}
	names, ok := initialNames[len(sizes)]
	if !ok {
		return Topology{}, fmt.Errorf("initial %d: no names for %d groups", n, len(sizes))
	}
	if len(names) != len(sizes) {
		return Topology{}, fmt.Errorf("initial %d: %d names for %d groups", n, len(names), len(sizes))
	}

	top := Topology{Round: Initial, Teams: n}
	for i, size := range sizes {
		g, err := grid.For(size)
		if len(sizes) == 1 {
			g, err = grid.Special(size)
		}
		if err != nil {
			return Topology{}, fmt.Errorf("initial %d: %w", n, err)
		}
		top.Groups = append(top.Groups, GroupSpec{Name: names[i], Size: size, Grid: g})
	}
	return top, nil
}

func buildSeated(raw string, names []string, fixed *grid.Grid) ([]GroupSpec, error) {
	parts := strings.Split(raw, "|")
	if len(parts) > len(names) {
		return nil, fmt.Errorf("%d groups but only %d names", len(parts), len(names))
	}

	groups := make([]GroupSpec, 0, len(parts))
	for i, part := range parts {
		var seats []SeatRef
		for _, field := range strings.Fields(part) {
			seat, err := ParseSeat(field)
			if err != nil {
				return nil, err
			}
			seats = append(seats, seat)
		}

		var g grid.Grid
		if fixed != nil {
			g = *fixed
		} else {
			var err error
			if g, err = grid.For(len(seats)); err != nil {
				return nil, err
			}
		}
		groups = append(groups, GroupSpec{Name: names[i], Size: len(seats), Grid: g, Seats: seats})
	}
	return groups, nil
}
