package club

import "github.com/mauv0809/race-organiser/internal/division"

// ClubStore defines the interface for interacting with club data.
type ClubStore interface {
	GetClubs(league string) ([]Club, error)
	AddClub(c Club) (Club, error)
	UpdateClub(c Club) error
	// EnsureTeamCount raises the club's entry in a division to at least n teams.
	EnsureTeamCount(league, clubName string, d division.Division, n int) error
}
