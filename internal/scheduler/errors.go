package scheduler

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mauv0809/race-organiser/internal/division"
	"github.com/mauv0809/race-organiser/internal/grid"
	"github.com/mauv0809/race-organiser/internal/group"
	"github.com/mauv0809/race-organiser/internal/topology"
)

var (
	// ErrNoRaces is returned when a run produces no races at all.
	ErrNoRaces = errors.New("no races generated")
	// ErrInvalidRound is returned for round numbers below one.
	ErrInvalidRound = errors.New("invalid round number")
	// ErrSeatUnfilled means a layout seat has no team from the previous round.
	ErrSeatUnfilled = errors.New("seat has no team")
)

// Kind classifies generation failures by what the operator has to do next.
type Kind string

const (
	// KindConfiguration needs different input or a table fix.
	KindConfiguration Kind = "configuration"
	// KindReadiness clears once results or teams are entered.
	KindReadiness Kind = "readiness"
	// KindIntegrity points at a defect in stored races.
	KindIntegrity Kind = "integrity"
	// KindManual needs an operator to separate tied teams.
	KindManual  Kind = "manual"
	KindUnknown Kind = "unknown"
)

// Classify maps an error from GenerateRound onto a Kind. Joined errors take
// the most serious kind they contain.
func Classify(err error) Kind {
	var tie *group.UnresolvableTieError
	switch {
	case err == nil:
		return ""
	case errors.Is(err, group.ErrRaceNotFound):
		return KindIntegrity
	case errors.As(err, &tie):
		return KindManual
	case errors.Is(err, group.ErrRacesUnfinished), errors.Is(err, group.ErrNotReady):
		return KindReadiness
	case errors.Is(err, grid.ErrUnsupportedSize),
		errors.Is(err, topology.ErrUnsupportedTeamCount),
		errors.Is(err, group.ErrSizeMismatch),
		errors.Is(err, ErrSeatUnfilled),
		errors.Is(err, ErrInvalidRound),
		errors.Is(err, ErrNoRaces):
		return KindConfiguration
	}
	return KindUnknown
}

// DivisionError is the failure of one division in a later round. Group is
// empty when the failure is not tied to a single group.
type DivisionError struct {
	Division division.Division
	Group    string
	Err      error
}

func (e *DivisionError) Error() string {
	if e.Group == "" {
		return fmt.Sprintf("%s: %v", e.Division, e.Err)
	}
	return fmt.Sprintf("%s group %s: %v", e.Division, e.Group, e.Err)
}

func (e *DivisionError) Unwrap() error {
	return e.Err
}

// GenerationError lists the divisions a later round could not generate.
// The races of every other division are still part of the result.
type GenerationError struct {
	Divisions []*DivisionError
}

func (e *GenerationError) Error() string {
	lines := make([]string, len(e.Divisions))
	for i, d := range e.Divisions {
		lines[i] = d.Error()
	}
	return fmt.Sprintf("%d division(s) failed:\n%s", len(e.Divisions), strings.Join(lines, "\n"))
}

func (e *GenerationError) Unwrap() []error {
	out := make([]error, len(e.Divisions))
	for i, d := range e.Divisions {
		out[i] = d
	}
	return out
}
