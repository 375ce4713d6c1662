package processor

import (
	"github.com/mauv0809/race-organiser/internal/division"
	"github.com/mauv0809/race-organiser/internal/notifier"
	"github.com/mauv0809/race-organiser/internal/race"
	"github.com/mauv0809/race-organiser/internal/team"
)

// Store defines the database operations required by the processor.
type Store interface {
	GetRace(raceID int64) (race.Race, error)
	RecordResult(raceID int64, winner int, teamOneDSQ, teamTwoDSQ string) (race.Race, error)
	RacesFor(controlID int64, d division.Division, round int) ([]race.Race, error)
	TeamsByDivision(d division.Division) ([]team.Team, error)
}

// Notifier defines the notification operations required by the processor.
type Notifier interface {
	notifier.Notifier
}
