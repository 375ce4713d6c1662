package team

import (
	"database/sql"
	"slices"
	"sync"

	"github.com/mauv0809/race-organiser/internal/division"
)

// Rounds is the number of league rounds a seeding score is kept for.
const Rounds = 5

// store handles all database operations for teams.
type store struct {
	db *sql.DB
	mu sync.RWMutex
}

// Team is one club entry in a division. Scores are the points from each
// league round and drive seeding.
type Team struct {
	ID            int64             `json:"id"`
	League        string            `json:"league"`
	ClubName      string            `json:"club_name"`
	Division      division.Division `json:"division"`
	DivisionIndex int               `json:"division_index"`
	TeamName      string            `json:"team_name"`
	Scores        [Rounds]int       `json:"scores"`
}

// Total is the sum of all round scores.
func (t Team) Total() int {
	total := 0
	for _, s := range t.Scores {
		total += s
	}
	return total
}

// OrderedScores returns the round scores from best to worst.
func (t Team) OrderedScores() []int {
	out := slices.Clone(t.Scores[:])
	slices.Sort(out)
	slices.Reverse(out)
	return out
}

// Seeded reports whether the team has any league points.
func (t Team) Seeded() bool {
	for _, s := range t.Scores {
		if s != 0 {
			return true
		}
	}
	return false
}
