// Package group builds race groups, generates their races from a grid and
// ranks their teams once results are in.
package group

import (
	"fmt"
	"slices"

	"github.com/mauv0809/race-organiser/internal/division"
	"github.com/mauv0809/race-organiser/internal/grid"
	"github.com/mauv0809/race-organiser/internal/race"
	"github.com/mauv0809/race-organiser/internal/team"
)

// RaceGroup is one group of a round. Races are generated once and keep grid
// order, which Phase relies on.
type RaceGroup struct {
	Name      string
	ControlID int64
	League    string
	Round     int
	Division  division.Division
	Grid      grid.Grid
	Teams     []team.Team

	races []race.Race
}

// New creates an empty group for a round.
func New(name string, g grid.Grid, controlID int64, round int) *RaceGroup {
	return &RaceGroup{Name: name, Grid: g, ControlID: controlID, Round: round}
}

// Ready reports whether the group has everything Generate needs.
func (g *RaceGroup) Ready() bool {
	return g.Name != "" && g.ControlID > 0 && g.Round > 0 &&
		g.Grid.TeamCount() > 0 && len(g.Teams) >= g.Grid.TeamCount()
}

// Generate materialises the group's races from its grid.
func (g *RaceGroup) Generate() error {
	if !g.Ready() {
		return fmt.Errorf("%w: group %q has %d of %d teams", ErrNotReady, g.Name, len(g.Teams), g.Grid.TeamCount())
	}
	if g.races != nil {
		return fmt.Errorf("%w: group %q", ErrAlreadyGenerated, g.Name)
	}

	d, league := g.Division, g.League
	if d == "" {
		d = g.Teams[0].Division
	}
	if league == "" {
		league = g.Teams[0].League
	}

	races := make([]race.Race, 0, g.Grid.RaceCount())
	for _, p := range g.Grid.Pairs() {
		races = append(races, race.Race{
			ControlID: g.ControlID,
			League:    league,
			Round:     g.Round,
			Division:  d,
			Group:     g.Name,
			TeamOne:   g.Teams[p.One-1].ID,
			TeamTwo:   g.Teams[p.Two-1].ID,
		})
	}
	g.races = races
	return nil
}

// Races returns a copy of the group's races in grid order.
func (g *RaceGroup) Races() []race.Race {
	return slices.Clone(g.races)
}

// Phase returns the races of phase i, or nil when none were generated.
func (g *RaceGroup) Phase(i int) []race.Race {
	if i < 0 || i >= grid.Phases || len(g.races) == 0 {
		return nil
	}
	start := 0
	for p := 0; p < i; p++ {
		start += g.Grid.PhaseLen(p)
	}
	end := start + g.Grid.PhaseLen(i)
	if end > len(g.races) {
		return nil
	}
	return slices.Clone(g.races[start:end])
}

// FromRaces rebuilds the groups of a finished round from its races. Races are
// grouped by division and group name, teams are taken in the order they first
// appear, and groups come back in order of first appearance too.
func FromRaces(races []race.Race, teams []team.Team) ([]*RaceGroup, error) {
	byID := team.ByID(teams)

	type key struct {
		d    division.Division
		name string
	}
	index := make(map[key]*RaceGroup)
	var groups []*RaceGroup

	for _, r := range races {
		k := key{r.Division, r.Group}
		g, ok := index[k]
		if !ok {
			g = &RaceGroup{Name: r.Group, ControlID: r.ControlID, League: r.League, Round: r.Round, Division: r.Division}
			index[k] = g
			groups = append(groups, g)
		}
		for _, id := range []int64{r.TeamOne, r.TeamTwo} {
			if slices.ContainsFunc(g.Teams, func(t team.Team) bool { return t.ID == id }) {
				continue
			}
			t, ok := byID[id]
			if !ok {
				return nil, fmt.Errorf("group %s %s: unknown team %d", r.Division, r.Group, id)
			}
			g.Teams = append(g.Teams, t)
		}
		g.races = append(g.races, r)
	}
	return groups, nil
}
