package scheduler

import (
	"github.com/mauv0809/race-organiser/internal/club"
	"github.com/mauv0809/race-organiser/internal/control"
	"github.com/mauv0809/race-organiser/internal/division"
	"github.com/mauv0809/race-organiser/internal/race"
	"github.com/mauv0809/race-organiser/internal/team"
)

// TeamSource supplies the teams of a division.
type TeamSource interface {
	CompetingTeams(d division.Division, clubs []club.Club, league string) ([]team.Team, error)
	TeamsByDivision(d division.Division) ([]team.Team, error)
	AllTeams() ([]team.Team, error)
}

// ClubSource supplies the clubs entering a league.
type ClubSource interface {
	GetClubs(league string) ([]club.Club, error)
}

// RaceStore reads a previous round and atomically replaces the one being generated.
type RaceStore interface {
	RacesFor(controlID int64, d division.Division, round int) ([]race.Race, error)
	ReplaceRound(controlID int64, round int, races []race.Race) ([]race.Race, error)
}

// ControlSource looks up the race day a round belongs to.
type ControlSource interface {
	GetControl(id int64) (control.Control, error)
}

// Store defines the database operations required by the scheduler.
type Store interface {
	TeamSource
	ClubSource
	RaceStore
	ControlSource
}

// ScheduleWriter renders a committed running order.
type ScheduleWriter interface {
	WriteSchedule(races []race.Race, teams []team.Team, dryRun bool) error
}

// Stores bundles the per-table stores into a single Store.
type Stores struct {
	team.TeamStore
	club.ClubStore
	race.RaceStore
	control.ControlStore
}
