package race

import (
	"cmp"
	"slices"

	"github.com/mauv0809/race-organiser/internal/topology"
)

// Compare is the natural race order: division, group in canonical order,
// then race number.
func Compare(a, b Race) int {
	return cmp.Or(
		cmp.Compare(a.Division.Letter(), b.Division.Letter()),
		cmp.Compare(topology.CanonicalIndex(a.Group), topology.CanonicalIndex(b.Group)),
		cmp.Compare(a.Number, b.Number),
	)
}

// KnockoutCompare orders a final-day running order: Ladies, Board, Mixed, and
// within a division from the lowest placing group up to the final.
func KnockoutCompare(a, b Race) int {
	return cmp.Or(
		cmp.Compare(a.Division.KnockoutRank(), b.Division.KnockoutRank()),
		cmp.Compare(topology.CanonicalIndex(b.Group), topology.CanonicalIndex(a.Group)),
	)
}

// Sort orders races naturally.
func Sort(races []Race) {
	slices.SortStableFunc(races, Compare)
}
