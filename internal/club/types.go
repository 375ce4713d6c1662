package club

import (
	"database/sql"
	"sync"

	"github.com/mauv0809/race-organiser/internal/division"
)

// store handles all database operations for clubs.
type store struct {
	db *sql.DB
	mu sync.RWMutex
}

// Club is a ski club entering teams into a league.
type Club struct {
	ID          int64  `json:"id"`
	League      string `json:"league"`
	ClubName    string `json:"club_name"`
	ShortName   string `json:"short_name"`
	MixedTeams  int    `json:"mixed_teams"`
	LadiesTeams int    `json:"ladies_teams"`
	BoardTeams  int    `json:"board_teams"`
}

// TeamCount is the number of teams the club enters in a division.
func (c Club) TeamCount(d division.Division) int {
	switch d {
	case division.Mixed:
		return c.MixedTeams
	case division.Ladies:
		return c.LadiesTeams
	case division.Board:
		return c.BoardTeams
	}
	return 0
}

// SetTeamCount updates the number of teams entered in a division.
func (c *Club) SetTeamCount(d division.Division, n int) {
	switch d {
	case division.Mixed:
		c.MixedTeams = n
	case division.Ladies:
		c.LadiesTeams = n
	case division.Board:
		c.BoardTeams = n
	}
}
