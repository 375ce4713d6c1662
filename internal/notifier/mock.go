package notifier

import (
	"sync"

	"github.com/mauv0809/race-organiser/internal/race"
	"github.com/mauv0809/race-organiser/internal/team"
)

// Mock is a mock implementation of the Notifier interface for testing.
// It is safe for concurrent use.
type Mock struct {
	mu sync.Mutex

	// Spies for method calls
	WriteScheduleFunc         func(races []race.Race, teams []team.Team, dryRun bool) error
	SendGenerationFailureFunc func(controlID int64, round int, err error, dryRun bool) error
	SendStandingsFunc         func(s Standings, dryRun bool) error
	FormatRunningOrderFunc    func(races []race.Race, teams []team.Team) (any, error)

	// Call records
	WriteScheduleCalls         []WriteScheduleCall
	SendGenerationFailureCalls []error
	SendStandingsCalls         []Standings
}

// WriteScheduleCall holds the arguments for a call to WriteSchedule.
type WriteScheduleCall struct {
	Races  []race.Race
	Teams  []team.Team
	DryRun bool
}

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{}
}

// Reset clears all call records.
func (m *Mock) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.WriteScheduleCalls = nil
	m.SendGenerationFailureCalls = nil
	m.SendStandingsCalls = nil
}

func (m *Mock) WriteSchedule(races []race.Race, teams []team.Team, dryRun bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.WriteScheduleCalls = append(m.WriteScheduleCalls, WriteScheduleCall{races, teams, dryRun})
	if m.WriteScheduleFunc != nil {
		return m.WriteScheduleFunc(races, teams, dryRun)
	}
	return nil
}

func (m *Mock) SendGenerationFailure(controlID int64, round int, err error, dryRun bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendGenerationFailureCalls = append(m.SendGenerationFailureCalls, err)
	if m.SendGenerationFailureFunc != nil {
		return m.SendGenerationFailureFunc(controlID, round, err, dryRun)
	}
	return nil
}

func (m *Mock) SendStandings(s Standings, dryRun bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendStandingsCalls = append(m.SendStandingsCalls, s)
	if m.SendStandingsFunc != nil {
		return m.SendStandingsFunc(s, dryRun)
	}
	return nil
}

func (m *Mock) FormatRunningOrderResponse(races []race.Race, teams []team.Team) (any, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FormatRunningOrderFunc != nil {
		return m.FormatRunningOrderFunc(races, teams)
	}
	return races, nil
}
