package race

import "github.com/mauv0809/race-organiser/internal/division"

// RaceStore defines the interface for interacting with race data.
type RaceStore interface {
	// RacesFor returns one division's races of a round in race number order.
	RacesFor(controlID int64, d division.Division, round int) ([]Race, error)
	// RoundRaces returns every race of a round in race number order.
	RoundRaces(controlID int64, round int) ([]Race, error)
	// ReplaceRound deletes a round and stores races in its place in one
	// transaction, numbering them 1..n in the given order.
	ReplaceRound(controlID int64, round int, races []Race) ([]Race, error)
	RecordResult(raceID int64, winner int, teamOneDSQ, teamTwoDSQ string) (Race, error)
	GetRace(raceID int64) (Race, error)
}
