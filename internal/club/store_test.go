package club_test

import (
	"testing"

	"github.com/mauv0809/race-organiser/internal/club"
	"github.com/mauv0809/race-organiser/internal/database"
	"github.com/mauv0809/race-organiser/internal/division"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestDB creates a temporary in-memory SQLite database for testing.
func setupTestDB(t *testing.T) (club.ClubStore, func()) {
	t.Helper()

	db, teardown, err := database.InitDB(":memory:", "", "", "../../migrations")
	require.NoError(t, err)

	return club.New(db), teardown
}

func TestAddAndGetClubs(t *testing.T) {
	store, teardown := setupTestDB(t)
	defer teardown()

	_, err := store.AddClub(club.Club{League: "Southern", ClubName: "Kings", MixedTeams: 2})
	require.NoError(t, err)
	_, err = store.AddClub(club.Club{League: "Southern", ClubName: "alpine", ShortName: "ALP"})
	require.NoError(t, err)
	_, err = store.AddClub(club.Club{League: "Northern", ClubName: "Peaks"})
	require.NoError(t, err)

	t.Run("filters by league and orders by name", func(t *testing.T) {
		clubs, err := store.GetClubs("Southern")
		require.NoError(t, err)
		require.Len(t, clubs, 2)
		assert.Equal(t, "alpine", clubs[0].ClubName)
		assert.Equal(t, "Kings", clubs[1].ClubName)
		assert.Equal(t, "Kings", clubs[1].ShortName, "short name defaults to the club name")
		assert.Equal(t, 2, clubs[1].TeamCount(division.Mixed))
	})

	t.Run("empty league returns everything", func(t *testing.T) {
		clubs, err := store.GetClubs("")
		require.NoError(t, err)
		assert.Len(t, clubs, 3)
	})

	t.Run("duplicate club is rejected", func(t *testing.T) {
		_, err := store.AddClub(club.Club{League: "Southern", ClubName: "Kings"})
		assert.Error(t, err)
	})
}

func TestEnsureTeamCount(t *testing.T) {
	store, teardown := setupTestDB(t)
	defer teardown()

	_, err := store.AddClub(club.Club{League: "Southern", ClubName: "Kings", LadiesTeams: 2})
	require.NoError(t, err)

	require.NoError(t, store.EnsureTeamCount("Southern", "Kings", division.Ladies, 1))
	require.NoError(t, store.EnsureTeamCount("Southern", "Kings", division.Board, 3))

	clubs, err := store.GetClubs("Southern")
	require.NoError(t, err)
	require.Len(t, clubs, 1)
	assert.Equal(t, 2, clubs[0].LadiesTeams, "an existing larger entry is kept")
	assert.Equal(t, 3, clubs[0].BoardTeams)

	assert.Error(t, store.EnsureTeamCount("Southern", "Kings", division.Division("Veterans"), 1))
}

func TestUpdateClub(t *testing.T) {
	store, teardown := setupTestDB(t)
	defer teardown()

	c, err := store.AddClub(club.Club{League: "Southern", ClubName: "Kings"})
	require.NoError(t, err)
	c.SetTeamCount(division.Mixed, 4)
	require.NoError(t, store.UpdateClub(c))

	clubs, err := store.GetClubs("Southern")
	require.NoError(t, err)
	assert.Equal(t, 4, clubs[0].MixedTeams)
}

func TestFind(t *testing.T) {
	clubs := []club.Club{
		{ClubName: "Kings College London", ShortName: "Kings"},
		{ClubName: "St. Andrews", ShortName: "StA"},
	}

	c, ok := club.Find(clubs, "kings")
	require.True(t, ok)
	assert.Equal(t, "Kings College London", c.ClubName)

	c, ok = club.Find(clubs, "st andrews")
	require.True(t, ok)
	assert.Equal(t, "StA", c.ShortName)

	_, ok = club.Find(clubs, "Imperial")
	assert.False(t, ok)
	_, ok = club.Find(clubs, "  ")
	assert.False(t, ok)
}
