package club

import (
	"sync"

	"github.com/mauv0809/race-organiser/internal/division"
)

// MockStore is a mock implementation of the ClubStore interface for testing.
// It is safe for concurrent use.
type MockStore struct {
	mu sync.Mutex

	// Spies for method calls
	GetClubsFunc        func(league string) ([]Club, error)
	AddClubFunc         func(c Club) (Club, error)
	UpdateClubFunc      func(c Club) error
	EnsureTeamCountFunc func(league, clubName string, d division.Division, n int) error

	// Call records
	GetClubsCalls        []string
	AddClubCalls         []Club
	EnsureTeamCountCalls []EnsureTeamCountCall
}

// EnsureTeamCountCall holds the arguments for a call to EnsureTeamCount.
type EnsureTeamCountCall struct {
	League   string
	ClubName string
	Division division.Division
	N        int
}

// NewMock creates a new mock instance.
func NewMock() *MockStore {
	return &MockStore{}
}

// Reset clears all call records.
func (m *MockStore) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.GetClubsCalls = nil
	m.AddClubCalls = nil
	m.EnsureTeamCountCalls = nil
}

func (m *MockStore) GetClubs(league string) ([]Club, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.GetClubsCalls = append(m.GetClubsCalls, league)
	if m.GetClubsFunc != nil {
		return m.GetClubsFunc(league)
	}
	return nil, nil
}

func (m *MockStore) AddClub(c Club) (Club, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.AddClubCalls = append(m.AddClubCalls, c)
	if m.AddClubFunc != nil {
		return m.AddClubFunc(c)
	}
	return c, nil
}

func (m *MockStore) UpdateClub(c Club) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.UpdateClubFunc != nil {
		return m.UpdateClubFunc(c)
	}
	return nil
}

func (m *MockStore) EnsureTeamCount(league, clubName string, d division.Division, n int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.EnsureTeamCountCalls = append(m.EnsureTeamCountCalls, EnsureTeamCountCall{league, clubName, d, n})
	if m.EnsureTeamCountFunc != nil {
		return m.EnsureTeamCountFunc(league, clubName, d, n)
	}
	return nil
}
