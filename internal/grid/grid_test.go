package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type unordered struct{ lo, hi int }

func pairCounts(g Grid) map[unordered]int {
	counts := make(map[unordered]int)
	for _, p := range g.Pairs() {
		counts[unordered{min(p.One, p.Two), max(p.One, p.Two)}]++
	}
	return counts
}

func TestPairCoverage(t *testing.T) {
	tests := []struct {
		grid  Grid
		teams int
		times int
	}{
		{Two, 2, 3},
		{Three, 3, 1},
		{Four, 4, 1},
		{FourSpecial, 4, 2},
		{FiveSpecial, 5, 1},
		{SixSpecial, 6, 1},
	}

	for _, tt := range tests {
		t.Run(tt.grid.Key(), func(t *testing.T) {
			require.Equal(t, tt.teams, tt.grid.TeamCount())
			counts := pairCounts(tt.grid)
			assert.Len(t, counts, tt.teams*(tt.teams-1)/2, "every pair of teams should meet")
			for pair, n := range counts {
				assert.Equal(t, tt.times, n, "pair %v", pair)
				assert.NotEqual(t, pair.lo, pair.hi, "a team cannot race itself")
			}
		})
	}
}

func TestEveryTeamRacesEqually(t *testing.T) {
	for _, g := range []Grid{Two, Three, Four, FourSpecial, FiveSpecial, SixSpecial} {
		t.Run(g.Key(), func(t *testing.T) {
			appearances := make(map[int]int)
			for _, p := range g.Pairs() {
				appearances[p.One]++
				appearances[p.Two]++
			}
			want := appearances[1]
			for team, n := range appearances {
				assert.Equal(t, want, n, "team %d", team)
			}
		})
	}
}

func TestNoTeamTwiceInPhase(t *testing.T) {
	for _, g := range []Grid{Two, Three, Four} {
		t.Run(g.Key(), func(t *testing.T) {
			for i := 0; i < Phases; i++ {
				seen := make(map[int]bool)
				for _, p := range g.Phase(i) {
					assert.False(t, seen[p.One], "team %d twice in phase %d", p.One, i)
					assert.False(t, seen[p.Two], "team %d twice in phase %d", p.Two, i)
					seen[p.One], seen[p.Two] = true, true
				}
			}
		})
	}
}

func TestTwoTeamGridMeetsInEveryPhase(t *testing.T) {
	// The two-team template is a best of three, one race per phase.
	for i := 0; i < Phases; i++ {
		assert.Equal(t, 1, Two.PhaseLen(i))
	}
	assert.Equal(t, Pair{2, 1}, Two.Phase(1)[0])
}

func TestKnockout(t *testing.T) {
	assert.True(t, Knockout.IsKnockout())
	assert.Equal(t, 1, Knockout.RaceCount())
	assert.Equal(t, 2, Knockout.TeamCount())
	assert.Empty(t, Knockout.Phase(1))
	assert.Empty(t, Knockout.Phase(2))
	assert.False(t, Four.IsKnockout())
}

func TestFor(t *testing.T) {
	for size, key := range map[int]string{2: "2", 3: "3", 4: "4", 5: "5S", 6: "6S"} {
		g, err := For(size)
		require.NoError(t, err)
		assert.Equal(t, key, g.Key())
	}

	for _, size := range []int{0, 1, 7} {
		_, err := For(size)
		assert.ErrorIs(t, err, ErrUnsupportedSize)
	}

	g, err := Special(4)
	require.NoError(t, err)
	assert.Equal(t, "4S", g.Key())
	_, err = Special(3)
	assert.ErrorIs(t, err, ErrUnsupportedSize)
}

func TestPhaseReturnsCopy(t *testing.T) {
	p := Four.Phase(0)
	p[0] = Pair{9, 9}
	assert.Equal(t, Pair{1, 2}, Four.Phase(0)[0])
	assert.Nil(t, Four.Phase(3))
	assert.Equal(t, 0, Four.PhaseLen(-1))
}
