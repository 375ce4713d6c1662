package scheduler

import (
	"errors"
	"fmt"
	"testing"

	"github.com/mauv0809/race-organiser/internal/division"
	"github.com/mauv0809/race-organiser/internal/grid"
	"github.com/mauv0809/race-organiser/internal/group"
	"github.com/mauv0809/race-organiser/internal/topology"
	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		err  error
		want Kind
	}{
		{nil, ""},
		{fmt.Errorf("wrapped: %w", topology.ErrUnsupportedTeamCount), KindConfiguration},
		{grid.ErrUnsupportedSize, KindConfiguration},
		{ErrSeatUnfilled, KindConfiguration},
		{group.ErrRacesUnfinished, KindReadiness},
		{group.ErrRaceNotFound, KindIntegrity},
		{&group.UnresolvableTieError{Count: 4}, KindManual},
		{errors.New("connection reset"), KindUnknown},
		{&DivisionError{Division: division.Mixed, Group: "A", Err: group.ErrRacesUnfinished}, KindReadiness},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Classify(tt.err), "%v", tt.err)
	}
}

func TestClassifyTakesMostSeriousKind(t *testing.T) {
	genErr := &GenerationError{Divisions: []*DivisionError{
		{Division: division.Mixed, Err: group.ErrRacesUnfinished},
		{Division: division.Ladies, Group: "B", Err: &group.UnresolvableTieError{Count: 4}},
	}}
	assert.Equal(t, KindManual, Classify(genErr))
	assert.Equal(t, KindManual, Classify(errors.Join(ErrNoRaces, genErr)))
	assert.Equal(t, KindConfiguration, Classify(ErrNoRaces))

	genErr.Divisions = append(genErr.Divisions, &DivisionError{Division: division.Board, Err: group.ErrRaceNotFound})
	assert.Equal(t, KindIntegrity, Classify(genErr))
}

func TestGenerationErrorMessage(t *testing.T) {
	genErr := &GenerationError{Divisions: []*DivisionError{
		{Division: division.Mixed, Group: "A", Err: group.ErrRacesUnfinished},
		{Division: division.Board, Err: errors.New("boom")},
	}}
	assert.Contains(t, genErr.Error(), "2 division(s) failed")
	assert.Contains(t, genErr.Error(), "Mixed group A: races unfinished")
	assert.Contains(t, genErr.Error(), "Board: boom")
	assert.ErrorIs(t, genErr, group.ErrRacesUnfinished)
}
