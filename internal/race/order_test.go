package race

import (
	"slices"
	"testing"

	"github.com/mauv0809/race-organiser/internal/division"
	"github.com/stretchr/testify/assert"
)

func TestSortNaturalOrder(t *testing.T) {
	races := []Race{
		{Division: division.Mixed, Group: "B", Number: 1},
		{Division: division.Board, Group: "A", Number: 7},
		{Division: division.Mixed, Group: "E", Number: 2},
		{Division: division.Mixed, Group: "A", Number: 9},
		{Division: division.Ladies, Group: "A", Number: 3},
		{Division: division.Mixed, Group: "A", Number: 4},
	}
	Sort(races)

	var got []string
	for _, r := range races {
		got = append(got, string(r.Division.Letter())+r.Group)
	}
	assert.Equal(t, []string{"BA", "LA", "MA", "MA", "ME", "MB"}, got)
	assert.Equal(t, 4, races[2].Number)
}

func TestKnockoutCompare(t *testing.T) {
	races := []Race{
		{Division: division.Mixed, Group: "1st/2nd"},
		{Division: division.Mixed, Group: "3rd/4th"},
		{Division: division.Board, Group: "1st/2nd"},
		{Division: division.Ladies, Group: "1st/2nd"},
		{Division: division.Ladies, Group: "5th/6th"},
	}
	slices.SortStableFunc(races, KnockoutCompare)

	assert.Equal(t, division.Ladies, races[0].Division)
	assert.Equal(t, "5th/6th", races[0].Group)
	assert.Equal(t, "1st/2nd", races[1].Group)
	assert.Equal(t, division.Board, races[2].Division)
	assert.Equal(t, "3rd/4th", races[3].Group)
	assert.Equal(t, "1st/2nd", races[4].Group)
}

func TestRaceHelpers(t *testing.T) {
	r := Race{TeamOne: 4, TeamTwo: 9, TeamTwoDSQ: "false start"}
	assert.False(t, r.Finished())
	assert.Zero(t, r.WinnerID())
	assert.True(t, r.Involves(9))
	assert.False(t, r.Involves(5))
	assert.Equal(t, "false start", r.DSQ(9))
	assert.Empty(t, r.DSQ(4))

	r.Winner = TeamOne
	assert.Equal(t, int64(4), r.WinnerID())
}
