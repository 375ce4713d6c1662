package seeding

import (
	"github.com/mauv0809/race-organiser/internal/club"
	"github.com/mauv0809/race-organiser/internal/division"
	"github.com/mauv0809/race-organiser/internal/team"
)

// Store defines the database operations required by the seeder.
type Store interface {
	GetClubs(league string) ([]club.Club, error)
	AddClub(c club.Club) (club.Club, error)
	EnsureTeamCount(league, clubName string, d division.Division, n int) error
	UpsertTeam(t team.Team) (team.Team, error)
	ResetScores(league string, d division.Division) error
}

// Seeder imports league standings as team seeding scores.
type Seeder struct {
	store Store
}

// Entry is one seeded team, e.g. "Kings 2" with its round scores.
type Entry struct {
	TeamName string           `json:"team_name"`
	Scores   [team.Rounds]int `json:"scores"`
}

// Summary reports what a seeding run changed.
type Summary struct {
	League       string            `json:"league"`
	Division     division.Division `json:"division"`
	Teams        []team.Team       `json:"teams"`
	ClubsCreated []string          `json:"clubs_created,omitempty"`
	DryRun       bool              `json:"dry_run"`
}
