package team

import (
	"sync"

	"github.com/mauv0809/race-organiser/internal/club"
	"github.com/mauv0809/race-organiser/internal/division"
)

// MockStore is a mock implementation of the TeamStore interface for testing.
// It is safe for concurrent use.
type MockStore struct {
	mu sync.Mutex

	// Spies for method calls
	CompetingTeamsFunc  func(d division.Division, clubs []club.Club, league string) ([]Team, error)
	TeamsByDivisionFunc func(d division.Division) ([]Team, error)
	AllTeamsFunc        func() ([]Team, error)
	FindByNameFunc      func(league string, d division.Division, teamName string) (*Team, error)
	UpsertTeamFunc      func(t Team) (Team, error)
	ResetScoresFunc     func(league string, d division.Division) error

	// Call records
	CompetingTeamsCalls  []division.Division
	TeamsByDivisionCalls []division.Division
	UpsertTeamCalls      []Team
	ResetScoresCalls     []division.Division
}

// NewMock creates a new mock instance.
func NewMock() *MockStore {
	return &MockStore{}
}

// Reset clears all call records.
func (m *MockStore) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CompetingTeamsCalls = nil
	m.TeamsByDivisionCalls = nil
	m.UpsertTeamCalls = nil
	m.ResetScoresCalls = nil
}

func (m *MockStore) CompetingTeams(d division.Division, clubs []club.Club, league string) ([]Team, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CompetingTeamsCalls = append(m.CompetingTeamsCalls, d)
	if m.CompetingTeamsFunc != nil {
		return m.CompetingTeamsFunc(d, clubs, league)
	}
	return nil, nil
}

func (m *MockStore) TeamsByDivision(d division.Division) ([]Team, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.TeamsByDivisionCalls = append(m.TeamsByDivisionCalls, d)
	if m.TeamsByDivisionFunc != nil {
		return m.TeamsByDivisionFunc(d)
	}
	return nil, nil
}

func (m *MockStore) AllTeams() ([]Team, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.AllTeamsFunc != nil {
		return m.AllTeamsFunc()
	}
	return nil, nil
}

func (m *MockStore) FindByName(league string, d division.Division, teamName string) (*Team, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FindByNameFunc != nil {
		return m.FindByNameFunc(league, d, teamName)
	}
	return nil, nil
}

func (m *MockStore) UpsertTeam(t Team) (Team, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.UpsertTeamCalls = append(m.UpsertTeamCalls, t)
	if m.UpsertTeamFunc != nil {
		return m.UpsertTeamFunc(t)
	}
	return t, nil
}

func (m *MockStore) ResetScores(league string, d division.Division) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ResetScoresCalls = append(m.ResetScoresCalls, d)
	if m.ResetScoresFunc != nil {
		return m.ResetScoresFunc(league, d)
	}
	return nil
}
