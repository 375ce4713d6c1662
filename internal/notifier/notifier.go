package notifier

import (
	"github.com/mauv0809/race-organiser/internal/division"
	"github.com/mauv0809/race-organiser/internal/group"
	"github.com/mauv0809/race-organiser/internal/race"
	"github.com/mauv0809/race-organiser/internal/team"
)

// Notifier defines a high-level interface for sending notifications about business events.
// This decouples the rest of the application from the specific notification provider (e.g., Slack).
type Notifier interface {
	// WriteSchedule publishes the running order of a committed round.
	WriteSchedule(races []race.Race, teams []team.Team, dryRun bool) error
	SendGenerationFailure(controlID int64, round int, err error, dryRun bool) error
	// SendStandings announces the finishing order of a completed group.
	SendStandings(s Standings, dryRun bool) error
	// FormatRunningOrderResponse renders a running order as a provider
	// specific reply, e.g. to a slash command.
	FormatRunningOrderResponse(races []race.Race, teams []team.Team) (any, error)
}

// Standings is the outcome of one group.
type Standings struct {
	ControlID int64
	Round     int
	Division  division.Division
	Group     string
	Order     []team.Team
	Records   []group.Standing
}
