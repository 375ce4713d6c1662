package metrics

import (
	"testing"

	"github.com/mauv0809/race-organiser/internal/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestDB creates a temporary in-memory SQLite database for testing.
func setupTestDB(t *testing.T) (MetricsStore, func()) {
	t.Helper()

	db, teardown, err := database.InitDB(":memory:", "", "", "../../migrations")
	require.NoError(t, err)

	return New(db), teardown
}

func TestIncrementAndGetAll(t *testing.T) {
	store, teardown := setupTestDB(t)
	defer teardown()

	metrics, err := store.GetAll()
	require.NoError(t, err)
	assert.Empty(t, metrics)

	store.Increment(KeyRoundsGenerated)
	metrics, err = store.GetAll()
	require.NoError(t, err)
	assert.Equal(t, map[string]int{KeyRoundsGenerated: 1}, metrics)

	store.Increment(KeyRoundsGenerated)
	store.Increment(KeyResultsRecorded)
	metrics, err = store.GetAll()
	require.NoError(t, err)
	assert.Equal(t, map[string]int{
		KeyRoundsGenerated: 2,
		KeyResultsRecorded: 1,
	}, metrics)
}

func TestAdd(t *testing.T) {
	store, teardown := setupTestDB(t)
	defer teardown()

	store.Add(KeyRacesGenerated, 12)
	store.Add(KeyRacesGenerated, 0)
	store.Add(KeyRacesGenerated, 6)
	store.Increment(KeyRacesGenerated)

	metrics, err := store.GetAll()
	require.NoError(t, err)
	assert.Equal(t, map[string]int{KeyRacesGenerated: 19}, metrics)
}
