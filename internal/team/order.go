package team

import (
	"cmp"
	"slices"
	"strings"
)

// Compare is the natural team order: total score descending, then the best
// round scores position by position, then club name ascending and finally
// the club's division index. Unseeded teams therefore fall to the end in
// alphabetical order.
func Compare(a, b Team) int {
	if c := cmp.Compare(b.Total(), a.Total()); c != 0 {
		return c
	}
	as, bs := a.OrderedScores(), b.OrderedScores()
	for i := range as {
		if c := cmp.Compare(bs[i], as[i]); c != 0 {
			return c
		}
	}
	if c := strings.Compare(strings.ToLower(a.ClubName), strings.ToLower(b.ClubName)); c != 0 {
		return c
	}
	if c := cmp.Compare(a.DivisionIndex, b.DivisionIndex); c != 0 {
		return c
	}
	return cmp.Compare(a.ID, b.ID)
}

// Sort orders teams in place by Compare.
func Sort(teams []Team) {
	slices.SortStableFunc(teams, Compare)
}

// ByID indexes teams by id.
func ByID(teams []Team) map[int64]Team {
	out := make(map[int64]Team, len(teams))
	for _, t := range teams {
		out[t.ID] = t
	}
	return out
}
