package race

import (
	"database/sql"
	"errors"
	"sync"

	"github.com/mauv0809/race-organiser/internal/division"
)

// Winner indicator values.
const (
	NoWinner = 0
	TeamOne  = 1
	TeamTwo  = 2
)

var (
	ErrNotFound      = errors.New("race not found")
	ErrInvalidWinner = errors.New("winner must be 0, 1 or 2")
)

// store handles all database operations for races.
type store struct {
	db *sql.DB
	mu sync.RWMutex
}

// Race is one head-to-head run between two teams. Number is assigned when the
// round is committed. Winner and the DSQ notes stay empty until results are in.
type Race struct {
	ID         int64             `json:"id"`
	ControlID  int64             `json:"control_id"`
	League     string            `json:"league"`
	Round      int               `json:"round"`
	Division   division.Division `json:"division"`
	Group      string            `json:"group"`
	Number     int               `json:"race_no"`
	TeamOne    int64             `json:"team_one"`
	TeamTwo    int64             `json:"team_two"`
	Winner     int               `json:"winner"`
	TeamOneDSQ string            `json:"team_one_dsq,omitempty"`
	TeamTwoDSQ string            `json:"team_two_dsq,omitempty"`
}

// Involves reports whether the team raced in r.
func (r Race) Involves(teamID int64) bool {
	return r.TeamOne == teamID || r.TeamTwo == teamID
}

// Finished reports whether a winner has been recorded.
func (r Race) Finished() bool {
	return r.Winner == TeamOne || r.Winner == TeamTwo
}

// WinnerID returns the id of the winning team, or 0.
func (r Race) WinnerID() int64 {
	switch r.Winner {
	case TeamOne:
		return r.TeamOne
	case TeamTwo:
		return r.TeamTwo
	}
	return 0
}

// DSQ returns the disqualification note recorded against a team in r.
func (r Race) DSQ(teamID int64) string {
	switch teamID {
	case r.TeamOne:
		return r.TeamOneDSQ
	case r.TeamTwo:
		return r.TeamTwoDSQ
	}
	return ""
}
