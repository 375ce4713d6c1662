package team

import (
	"github.com/mauv0809/race-organiser/internal/club"
	"github.com/mauv0809/race-organiser/internal/division"
)

// TeamStore defines the interface for interacting with team data.
type TeamStore interface {
	// CompetingTeams returns every team the clubs enter in a division in
	// natural order, creating entries that do not exist yet.
	CompetingTeams(d division.Division, clubs []club.Club, league string) ([]Team, error)
	TeamsByDivision(d division.Division) ([]Team, error)
	AllTeams() ([]Team, error)
	FindByName(league string, d division.Division, teamName string) (*Team, error)
	UpsertTeam(t Team) (Team, error)
	ResetScores(league string, d division.Division) error
}
