package group

import (
	"errors"
	"fmt"
)

var (
	// ErrSizeMismatch means the teams cannot fill the configured group sizes exactly.
	ErrSizeMismatch = errors.New("team count does not match group sizes")
	// ErrNotReady is returned when races are generated for an incomplete group.
	ErrNotReady = errors.New("group is not ready")
	// ErrAlreadyGenerated is returned when a group's races are generated twice.
	ErrAlreadyGenerated = errors.New("races already generated")
	// ErrRacesUnfinished means some races of the group have no winner yet.
	ErrRacesUnfinished = errors.New("races unfinished")
	// ErrRaceNotFound means two teams of a group never raced each other.
	ErrRaceNotFound = errors.New("race not found")
)

// UnresolvableTieError is returned when four or more teams of a group finish
// on the same weighting and need an operator to separate them.
type UnresolvableTieError struct {
	Count int
}

func (e *UnresolvableTieError) Error() string {
	return fmt.Sprintf("%d team draw, manual resolution required", e.Count)
}
