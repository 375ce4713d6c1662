package race

import (
	"sync"

	"github.com/mauv0809/race-organiser/internal/division"
)

// MockStore is a mock implementation of the RaceStore interface for testing.
// Without hooks it keeps races in memory.
type MockStore struct {
	mu     sync.Mutex
	nextID int64
	races  []Race

	RacesForFunc     func(controlID int64, d division.Division, round int) ([]Race, error)
	ReplaceRoundFunc func(controlID int64, round int, races []Race) ([]Race, error)
	RecordResultFunc func(raceID int64, winner int, teamOneDSQ, teamTwoDSQ string) (Race, error)

	ReplaceRoundCalls []ReplaceRoundCall
	RecordResultCalls []int64
}

// ReplaceRoundCall holds the arguments for a call to ReplaceRound.
type ReplaceRoundCall struct {
	ControlID int64
	Round     int
	Races     []Race
}

// NewMock creates a new mock instance holding the given races.
func NewMock(races ...Race) *MockStore {
	m := &MockStore{}
	for _, r := range races {
		m.nextID++
		if r.ID == 0 {
			r.ID = m.nextID
		}
		m.races = append(m.races, r)
	}
	return m
}

// Reset clears all call records.
func (m *MockStore) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ReplaceRoundCalls = nil
	m.RecordResultCalls = nil
}

func (m *MockStore) RacesFor(controlID int64, d division.Division, round int) ([]Race, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.RacesForFunc != nil {
		return m.RacesForFunc(controlID, d, round)
	}
	var out []Race
	for _, r := range m.races {
		if r.ControlID == controlID && r.Division == d && r.Round == round {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *MockStore) RoundRaces(controlID int64, round int) ([]Race, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []Race
	for _, r := range m.races {
		if r.ControlID == controlID && r.Round == round {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *MockStore) ReplaceRound(controlID int64, round int, races []Race) ([]Race, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ReplaceRoundCalls = append(m.ReplaceRoundCalls, ReplaceRoundCall{controlID, round, races})
	if m.ReplaceRoundFunc != nil {
		return m.ReplaceRoundFunc(controlID, round, races)
	}

	kept := m.races[:0]
	for _, r := range m.races {
		if r.ControlID != controlID || r.Round != round {
			kept = append(kept, r)
		}
	}
	m.races = kept

	stored := make([]Race, len(races))
	for i, r := range races {
		m.nextID++
		r.ID, r.ControlID, r.Round, r.Number = m.nextID, controlID, round, i+1
		stored[i] = r
		m.races = append(m.races, r)
	}
	return stored, nil
}

func (m *MockStore) RecordResult(raceID int64, winner int, teamOneDSQ, teamTwoDSQ string) (Race, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.RecordResultCalls = append(m.RecordResultCalls, raceID)
	if m.RecordResultFunc != nil {
		return m.RecordResultFunc(raceID, winner, teamOneDSQ, teamTwoDSQ)
	}
	for i, r := range m.races {
		if r.ID == raceID {
			m.races[i].Winner, m.races[i].TeamOneDSQ, m.races[i].TeamTwoDSQ = winner, teamOneDSQ, teamTwoDSQ
			return m.races[i], nil
		}
	}
	return Race{}, ErrNotFound
}

func (m *MockStore) GetRace(raceID int64) (Race, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, r := range m.races {
		if r.ID == raceID {
			return r, nil
		}
	}
	return Race{}, ErrNotFound
}
