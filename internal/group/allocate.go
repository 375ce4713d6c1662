package group

import (
	"fmt"

	"github.com/mauv0809/race-organiser/internal/team"
)

// Allocate distributes ranked teams into groups of the given sizes by snake
// seeding: group indices are walked forward then backward, the end group
// taking two teams in a row, and full groups are skipped in the direction of
// travel. 8 teams in sizes {3,3,2} give {1,6,7} {2,5,8} {3,4}.
func Allocate(teams []team.Team, sizes []int) ([][]team.Team, error) {
	total := 0
	for _, size := range sizes {
		if size < 0 {
			return nil, fmt.Errorf("%w: negative group size %d", ErrSizeMismatch, size)
		}
		total += size
	}
	if total != len(teams) {
		return nil, fmt.Errorf("%w: %d teams for %d places", ErrSizeMismatch, len(teams), total)
	}

	groups := make([][]team.Team, len(sizes))
	for i, size := range sizes {
		groups[i] = make([]team.Team, 0, size)
	}

	idx, step := 0, 1
	advance := func() {
		idx += step
		if idx >= len(groups) || idx < 0 {
			step = -step
			idx += step
		}
	}

	for _, t := range teams {
		for len(groups[idx]) == sizes[idx] {
			advance()
		}
		groups[idx] = append(groups[idx], t)
		advance()
	}
	return groups, nil
}
