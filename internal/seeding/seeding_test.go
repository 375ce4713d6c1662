package seeding

import (
	"strings"
	"testing"

	"github.com/mauv0809/race-organiser/internal/club"
	"github.com/mauv0809/race-organiser/internal/database"
	"github.com/mauv0809/race-organiser/internal/division"
	"github.com/mauv0809/race-organiser/internal/team"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type dbStore struct {
	club.ClubStore
	team.TeamStore
}

func setupTestDB(t *testing.T) (dbStore, func()) {
	t.Helper()

	db, teardown, err := database.InitDB(":memory:", "", "", "../../migrations")
	require.NoError(t, err)

	return dbStore{club.New(db), team.New(db)}, teardown
}

func TestSeedTeams(t *testing.T) {
	store, teardown := setupTestDB(t)
	defer teardown()

	_, err := store.AddClub(club.Club{League: "Southern", ClubName: "Kings College", ShortName: "Kings", MixedTeams: 1})
	require.NoError(t, err)

	seeder := New(store)
	summary, err := seeder.SeedTeams("Southern", division.Mixed, []Entry{
		{TeamName: "Kings 2", Scores: [team.Rounds]int{10, 8}},
		{TeamName: "Bath", Scores: [team.Rounds]int{12}},
		{TeamName: "kings", Scores: [team.Rounds]int{3}},
	}, false)
	require.NoError(t, err)

	assert.Equal(t, []string{"Bath"}, summary.ClubsCreated)
	require.Len(t, summary.Teams, 3)
	assert.Equal(t, "Kings College 2", summary.Teams[0].TeamName, "teams come back in seeded order")
	assert.Equal(t, "Bath", summary.Teams[1].TeamName)
	assert.Equal(t, "Kings College", summary.Teams[2].TeamName)

	clubs, err := store.GetClubs("Southern")
	require.NoError(t, err)
	kings, ok := club.Find(clubs, "Kings")
	require.True(t, ok)
	assert.Equal(t, 2, kings.MixedTeams, "the club's team count covers the seeded index")

	t.Run("reseeding resets scores", func(t *testing.T) {
		_, err := seeder.SeedTeams("Southern", division.Mixed, []Entry{{TeamName: "Bath", Scores: [team.Rounds]int{1}}}, false)
		require.NoError(t, err)

		found, err := store.FindByName("Southern", division.Mixed, "Kings College 2")
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Zero(t, found.Total())
	})
}

func TestSeedTeamsDryRun(t *testing.T) {
	store, teardown := setupTestDB(t)
	defer teardown()

	summary, err := New(store).SeedTeams("Southern", division.Board, []Entry{{TeamName: "Exeter 3"}}, true)
	require.NoError(t, err)
	assert.True(t, summary.DryRun)
	assert.Equal(t, []string{"Exeter"}, summary.ClubsCreated)
	require.Len(t, summary.Teams, 1)
	assert.Equal(t, 3, summary.Teams[0].DivisionIndex)

	clubs, err := store.GetClubs("Southern")
	require.NoError(t, err)
	assert.Empty(t, clubs)
	teams, err := store.AllTeams()
	require.NoError(t, err)
	assert.Empty(t, teams)
}

func TestSeedTeamsRejectsBadInput(t *testing.T) {
	store, teardown := setupTestDB(t)
	defer teardown()
	seeder := New(store)

	_, err := seeder.SeedTeams("Southern", division.Division("Relay"), nil, false)
	assert.Error(t, err)

	_, err = seeder.SeedTeams("Southern", division.Mixed, []Entry{{TeamName: " "}}, false)
	assert.ErrorIs(t, err, ErrEmptyTeamName)
}

func TestParseCSV(t *testing.T) {
	input := `team,r1,r2,r3
Kings 2, 10, 8
Bath,12,,4

Exeter,0`
	entries, err := ParseCSV(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, []Entry{
		{TeamName: "Kings 2", Scores: [team.Rounds]int{10, 8}},
		{TeamName: "Bath", Scores: [team.Rounds]int{12, 0, 4}},
		{TeamName: "Exeter"},
	}, entries)

	_, err = ParseCSV(strings.NewReader("Kings,1\nBath,x"))
	assert.ErrorContains(t, err, `line 2: score "x"`)

	_, err = ParseCSV(strings.NewReader("Kings,1,2,3,4,5,6"))
	assert.ErrorContains(t, err, "at most 5 rounds")
}
