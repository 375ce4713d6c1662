package processor

import (
	"errors"
	"testing"

	"github.com/mauv0809/race-organiser/internal/division"
	"github.com/mauv0809/race-organiser/internal/group"
	"github.com/mauv0809/race-organiser/internal/metrics"
	"github.com/mauv0809/race-organiser/internal/notifier"
	"github.com/mauv0809/race-organiser/internal/pubsub"
	"github.com/mauv0809/race-organiser/internal/race"
	"github.com/mauv0809/race-organiser/internal/team"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testStore joins the race and team mocks into the processor's Store.
type testStore struct {
	races *race.MockStore
	teams *team.MockStore
}

func (s testStore) GetRace(raceID int64) (race.Race, error) {
	return s.races.GetRace(raceID)
}

func (s testStore) RecordResult(raceID int64, winner int, teamOneDSQ, teamTwoDSQ string) (race.Race, error) {
	return s.races.RecordResult(raceID, winner, teamOneDSQ, teamTwoDSQ)
}

func (s testStore) RacesFor(controlID int64, d division.Division, round int) ([]race.Race, error) {
	return s.races.RacesFor(controlID, d, round)
}

func (s testStore) TeamsByDivision(d division.Division) ([]team.Team, error) {
	return s.teams.TeamsByDivision(d)
}

func setup(races ...race.Race) (*Processor, *race.MockStore, *notifier.Mock, *metrics.Mock, *metrics.StoreMock, *pubsub.MockPubSubClient) {
	raceStore := race.NewMock(races...)
	teamStore := team.NewMock()
	teamStore.TeamsByDivisionFunc = func(d division.Division) ([]team.Team, error) {
		return []team.Team{
			{ID: 1, Division: d, TeamName: "Kings"},
			{ID: 2, Division: d, TeamName: "Bath"},
			{ID: 3, Division: d, TeamName: "Exeter"},
		}, nil
	}
	notif := notifier.NewMock()
	metr := metrics.NewMock()
	metricsStore := metrics.NewStoreMock()
	ps := pubsub.NewMock("TEST")
	return New(testStore{races: raceStore, teams: teamStore}, notif, metr, metricsStore, ps), raceStore, notif, metr, metricsStore, ps
}

// threeTeamGroup is group A of round 1 with no results yet.
func threeTeamGroup() []race.Race {
	base := race.Race{ControlID: 1, Round: 1, Division: division.Mixed, Group: "A"}
	pairs := [][2]int64{{1, 2}, {2, 3}, {3, 1}}
	out := make([]race.Race, len(pairs))
	for i, p := range pairs {
		r := base
		r.ID, r.Number, r.TeamOne, r.TeamTwo = int64(i+1), i+1, p[0], p[1]
		out[i] = r
	}
	return out
}

func TestRecordResult(t *testing.T) {
	t.Run("stores the result and publishes an event", func(t *testing.T) {
		p, races, _, metr, metricsStore, ps := setup(threeTeamGroup()...)

		r, err := p.RecordResult(Result{RaceID: 2, Winner: race.TeamTwo, TeamOneDSQ: "missed gate"}, false)
		require.NoError(t, err)
		assert.Equal(t, int64(3), r.WinnerID())
		assert.Equal(t, "missed gate", r.TeamOneDSQ)

		assert.Equal(t, []int64{2}, races.RecordResultCalls)
		assert.Equal(t, 1, metr.ResultsRecorded())
		stats, err := metricsStore.GetAll()
		require.NoError(t, err)
		assert.Equal(t, 1, stats[metrics.KeyResultsRecorded])

		require.Len(t, ps.SendMessageCalls, 1)
		assert.Equal(t, pubsub.EventResultRecorded, ps.SendMessageCalls[0].Topic)
		assert.Equal(t, pubsub.ResultRecorded{RaceID: 2, ControlID: 1, Round: 1, Division: "Mixed", Group: "A"}, ps.SendMessageCalls[0].Data)
	})

	t.Run("dry run validates without storing", func(t *testing.T) {
		p, races, _, metr, _, ps := setup(threeTeamGroup()...)

		r, err := p.RecordResult(Result{RaceID: 1, Winner: race.TeamOne}, true)
		require.NoError(t, err)
		assert.Equal(t, int64(1), r.WinnerID())
		assert.Empty(t, races.RecordResultCalls)
		assert.Zero(t, metr.ResultsRecorded())
		assert.Empty(t, ps.SendMessageCalls)

		_, err = p.RecordResult(Result{RaceID: 42, Winner: race.TeamOne}, true)
		assert.ErrorIs(t, err, race.ErrNotFound)
	})

	t.Run("rejects an invalid winner", func(t *testing.T) {
		p, races, _, _, _, _ := setup(threeTeamGroup()...)

		_, err := p.RecordResult(Result{RaceID: 1, Winner: 3}, false)
		assert.ErrorIs(t, err, race.ErrInvalidWinner)
		assert.Empty(t, races.RecordResultCalls)
	})

	t.Run("publish failures do not fail the result", func(t *testing.T) {
		p, _, _, _, _, ps := setup(threeTeamGroup()...)
		ps.SendMessageFunc = func(pubsub.EventType, any) error { return errors.New("unavailable") }

		_, err := p.RecordResult(Result{RaceID: 1, Winner: race.TeamOne}, false)
		assert.NoError(t, err)
	})
}

func TestPublishStandings(t *testing.T) {
	event := pubsub.ResultRecorded{RaceID: 3, ControlID: 1, Round: 1, Division: "Mixed", Group: "A"}

	t.Run("waits for the group to finish", func(t *testing.T) {
		p, _, notif, _, _, _ := setup(threeTeamGroup()...)
		_, err := p.RecordResult(Result{RaceID: 1, Winner: race.TeamOne}, false)
		require.NoError(t, err)

		sent, err := p.PublishStandings(event, false)
		require.NoError(t, err)
		assert.False(t, sent)
		assert.Empty(t, notif.SendStandingsCalls)
	})

	t.Run("sends standings once every race is in", func(t *testing.T) {
		p, _, notif, _, _, _ := setup(threeTeamGroup()...)
		for _, res := range []Result{
			{RaceID: 1, Winner: race.TeamTwo},
			{RaceID: 2, Winner: race.TeamOne},
			{RaceID: 3, Winner: race.TeamTwo},
		} {
			_, err := p.RecordResult(res, false)
			require.NoError(t, err)
		}

		sent, err := p.PublishStandings(event, false)
		require.NoError(t, err)
		assert.True(t, sent)

		require.Len(t, notif.SendStandingsCalls, 1)
		standings := notif.SendStandingsCalls[0]
		assert.Equal(t, "A", standings.Group)
		assert.Equal(t, division.Mixed, standings.Division)
		require.Len(t, standings.Order, 3)
		// Bath won twice, Kings once, Exeter never.
		assert.Equal(t, []string{"Bath", "Kings", "Exeter"}, []string{standings.Order[0].TeamName, standings.Order[1].TeamName, standings.Order[2].TeamName})
		assert.Contains(t, standings.Records, group.Standing{TeamID: 2, Wins: 2, Weighting: 20})
	})

	t.Run("unknown group", func(t *testing.T) {
		p, _, _, _, _, _ := setup(threeTeamGroup()...)
		_, err := p.PublishStandings(pubsub.ResultRecorded{ControlID: 1, Round: 1, Division: "Mixed", Group: "Z"}, false)
		assert.ErrorIs(t, err, race.ErrNotFound)

		_, err = p.PublishStandings(pubsub.ResultRecorded{ControlID: 1, Round: 1, Division: "Relay", Group: "A"}, false)
		assert.Error(t, err)
	})
}
