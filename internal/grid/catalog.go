package grid

import "fmt"

var (
	Two = newGrid("2",
		[]Pair{{1, 2}},
		[]Pair{{2, 1}},
		[]Pair{{1, 2}},
	)

	Three = newGrid("3",
		[]Pair{{1, 2}},
		[]Pair{{2, 3}},
		[]Pair{{3, 1}},
	)

	Four = newGrid("4",
		[]Pair{{1, 2}, {3, 4}},
		[]Pair{{2, 3}, {4, 1}},
		[]Pair{{1, 3}, {2, 4}},
	)

	// FourSpecial is a double round robin for a division of only four teams.
	FourSpecial = newGrid("4S",
		[]Pair{{1, 2}, {3, 4}, {2, 3}, {4, 1}},
		[]Pair{{1, 3}, {2, 4}, {2, 1}, {4, 3}},
		[]Pair{{3, 2}, {1, 4}, {3, 1}, {4, 2}},
	)

	FiveSpecial = newGrid("5S",
		[]Pair{{1, 2}, {3, 4}, {4, 5}},
		[]Pair{{2, 3}, {5, 1}, {4, 2}},
		[]Pair{{5, 3}, {1, 4}, {2, 5}, {3, 1}},
	)

	SixSpecial = newGrid("6S",
		[]Pair{{1, 2}, {3, 4}, {5, 6}, {2, 3}, {6, 1}},
		[]Pair{{4, 5}, {3, 1}, {4, 6}, {5, 2}, {1, 4}},
		[]Pair{{2, 6}, {3, 5}, {5, 1}, {4, 2}, {6, 3}},
	)

	Knockout = newGrid("2F",
		[]Pair{{1, 2}},
		nil,
		nil,
	)
)

// For returns the round-robin template for a group of teamCount teams.
// Groups of five and six only exist when they hold a whole division, so they
// map straight onto the special templates.
func For(teamCount int) (Grid, error) {
	switch teamCount {
	case 2:
		return Two, nil
	case 3:
		return Three, nil
	case 4:
		return Four, nil
	case 5:
		return FiveSpecial, nil
	case 6:
		return SixSpecial, nil
	}
	return Grid{}, fmt.Errorf("%w: %d teams", ErrUnsupportedSize, teamCount)
}

// Special returns the whole-division template for teamCount teams.
func Special(teamCount int) (Grid, error) {
	switch teamCount {
	case 4:
		return FourSpecial, nil
	case 5:
		return FiveSpecial, nil
	case 6:
		return SixSpecial, nil
	}
	return Grid{}, fmt.Errorf("%w: no special grid for %d teams", ErrUnsupportedSize, teamCount)
}
