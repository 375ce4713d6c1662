package group

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/mauv0809/race-organiser/internal/race"
	"github.com/mauv0809/race-organiser/internal/team"
)

// Standing is a team's record within one group.
type Standing struct {
	TeamID    int64 `json:"team_id"`
	Wins      int   `json:"wins"`
	DSQs      int   `json:"dsqs"`
	Weighting int   `json:"weighting"`
}

// Tally counts wins and disqualifications per team, one entry per team in
// group order.
func (g *RaceGroup) Tally() []Standing {
	pos := make(map[int64]int, len(g.Teams))
	standings := make([]Standing, 0, len(g.Teams))
	add := func(id int64) *Standing {
		i, ok := pos[id]
		if !ok {
			i = len(standings)
			pos[id] = i
			standings = append(standings, Standing{TeamID: id})
		}
		return &standings[i]
	}

	for _, t := range g.Teams {
		add(t.ID)
	}
	for _, r := range g.races {
		one, two := add(r.TeamOne), add(r.TeamTwo)
		if r.TeamOneDSQ != "" {
			one.DSQs++
		}
		if r.TeamTwoDSQ != "" {
			two.DSQs++
		}
		switch r.Winner {
		case race.TeamOne:
			one.Wins++
		case race.TeamTwo:
			two.Wins++
		}
	}

	for i := range standings {
		standings[i].Weighting = standings[i].Wins*10 - standings[i].DSQs
	}
	return standings
}

// Rank returns the group's finishing order. Teams are ordered by weighting;
// two tied teams are split on head to head and then seed, three tied teams
// put the best seed first and split the other two the same way. Four or more
// tied teams return an *UnresolvableTieError.
func (g *RaceGroup) Rank() ([]team.Team, error) {
	// A group is only ranked once every race has a winner, even when the
	// open race cannot change the order.
	if i := slices.IndexFunc(g.races, func(r race.Race) bool { return !r.Finished() }); i >= 0 {
		return nil, fmt.Errorf("%w: group %s race between %d and %d has no winner",
			ErrRacesUnfinished, g.Name, g.races[i].TeamOne, g.races[i].TeamTwo)
	}

	weighting := make(map[int64]int, len(g.Teams))
	for _, s := range g.Tally() {
		weighting[s.TeamID] = s.Weighting
	}

	order := slices.Clone(g.Teams)
	team.Sort(order)
	slices.SortStableFunc(order, func(a, b team.Team) int {
		return cmp.Compare(weighting[b.ID], weighting[a.ID])
	})

	for start := 0; start < len(order); {
		end := start + 1
		for end < len(order) && weighting[order[end].ID] == weighting[order[start].ID] {
			end++
		}

		tied := order[start:end]
		switch len(tied) {
		case 1:
		case 2:
			if err := g.resolvePair(tied); err != nil {
				return nil, err
			}
		case 3:
			team.Sort(tied)
			if err := g.resolvePair(tied[1:]); err != nil {
				return nil, err
			}
		default:
			return nil, &UnresolvableTieError{Count: len(tied)}
		}
		start = end
	}
	return order, nil
}

// resolvePair orders two tied teams in place.
func (g *RaceGroup) resolvePair(pair []team.Team) error {
	h2h, err := g.headToHead(pair[0].ID, pair[1].ID)
	if err != nil {
		return err
	}
	if h2h < 0 || (h2h == 0 && team.Compare(pair[0], pair[1]) > 0) {
		pair[0], pair[1] = pair[1], pair[0]
	}
	return nil
}

// headToHead sums +1 for every race one won against two and -1 for every race
// two won against one.
func (g *RaceGroup) headToHead(one, two int64) (int, error) {
	total, found := 0, 0
	for _, r := range g.races {
		if !r.Involves(one) || !r.Involves(two) {
			continue
		}
		found++
		switch r.WinnerID() {
		case one:
			total++
		case two:
			total--
		default:
			return 0, fmt.Errorf("%w: group %s race between %d and %d has no winner", ErrRacesUnfinished, g.Name, one, two)
		}
	}
	if found == 0 {
		return 0, fmt.Errorf("%w: group %s has no race between %d and %d", ErrRaceNotFound, g.Name, one, two)
	}
	return total, nil
}
