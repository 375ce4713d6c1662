// Package scheduler turns teams and previous results into the interleaved
// running order of a round.
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/mauv0809/race-organiser/internal/control"
	"github.com/mauv0809/race-organiser/internal/division"
	"github.com/mauv0809/race-organiser/internal/grid"
	"github.com/mauv0809/race-organiser/internal/group"
	"github.com/mauv0809/race-organiser/internal/metrics"
	"github.com/mauv0809/race-organiser/internal/pubsub"
	"github.com/mauv0809/race-organiser/internal/race"
	"github.com/mauv0809/race-organiser/internal/team"
	"github.com/mauv0809/race-organiser/internal/topology"
)

// New creates a new Scheduler.
func New(store Store, writer ScheduleWriter, metrics metrics.Metrics, pubsub pubsub.PubSubClient) *Scheduler {
	return &Scheduler{
		store:   store,
		writer:  writer,
		metrics: metrics,
		pubsub:  pubsub,
	}
}

// GenerateRound builds, orders and commits the races of a round.
//
// The first round aborts on any error. Later rounds generate each division
// independently: a failing division is reported in a *GenerationError
// returned alongside a Result holding the races of the divisions that
// succeeded, which are committed unless the request is a dry run.
func (s *Scheduler) GenerateRound(ctx context.Context, req Request) (Result, error) {
	start := time.Now()
	runID := uuid.NewString()
	logger := log.With("run", runID, "control", req.ControlID, "round", req.Round)
	defer func() {
		s.metrics.ObserveGenerationDuration(time.Since(start).Seconds())
	}()

	if req.Round < 1 {
		return Result{}, s.fail(req, fmt.Errorf("%w: %d", ErrInvalidRound, req.Round))
	}
	ctrl, err := s.store.GetControl(req.ControlID)
	if err != nil {
		return Result{}, s.fail(req, fmt.Errorf("failed to load control %d: %w", req.ControlID, err))
	}

	roundType := req.RoundType()
	logger.Info("Generating round", "type", roundType, "league", ctrl.League, "dry_run", req.DryRun)

	var groups map[division.Division][]*group.RaceGroup
	var genErr *GenerationError
	if roundType == topology.Initial {
		groups, err = s.initialGroups(ctrl)
		if err != nil {
			return Result{}, s.fail(req, err)
		}
	} else {
		groups, genErr = s.advancedGroups(ctx, ctrl, req.Round, roundType)
	}

	races := Interleave(groups)
	if req.Knockout {
		SortKnockout(races)
	}

	if len(races) == 0 {
		err := ErrNoRaces
		if genErr != nil {
			err = errors.Join(ErrNoRaces, genErr)
		}
		return Result{}, s.fail(req, err)
	}

	result := Result{
		RunID:     runID,
		ControlID: ctrl.ID,
		Round:     req.Round,
		RoundType: roundType.String(),
		Counts:    make(map[division.Division]int),
	}
	for i := range races {
		races[i].Number = i + 1
		result.Counts[races[i].Division]++
	}

	if req.DryRun {
		result.Races = races
		logger.Info("[Dry Run] Round not committed", "races", len(races))
	} else {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}
		stored, err := s.store.ReplaceRound(ctrl.ID, req.Round, races)
		if err != nil {
			return Result{}, s.fail(req, fmt.Errorf("failed to commit round %d: %w", req.Round, err))
		}
		result.Races = stored
		result.Committed = true
		s.metrics.IncRoundsGenerated()
		s.metrics.AddRacesGenerated(len(stored))
		s.publish(result, genErr)
	}
	logger.Info("Round generated", "races", len(result.Races), "counts", result.Counts, "committed", result.Committed)

	s.writeSchedule(result.Races, req.DryRun)

	if genErr != nil {
		s.countFailure(genErr)
		return result, genErr
	}
	return result, nil
}

// initialGroups allocates the seeded teams of every division.
func (s *Scheduler) initialGroups(ctrl control.Control) (map[division.Division][]*group.RaceGroup, error) {
	clubs, err := s.store.GetClubs(ctrl.League)
	if err != nil {
		return nil, fmt.Errorf("failed to load clubs for %s: %w", ctrl.League, err)
	}

	out := make(map[division.Division][]*group.RaceGroup)
	for _, d := range division.All {
		teams, err := s.store.CompetingTeams(d, clubs, ctrl.League)
		if err != nil {
			return nil, fmt.Errorf("%s: failed to load teams: %w", d, err)
		}
		if len(teams) == 0 {
			log.Info("Division has no teams, skipping", "division", d)
			continue
		}
		team.Sort(teams)

		top, err := topology.For(topology.Initial, len(teams))
		if err != nil {
			return nil, &DivisionError{Division: d, Err: err}
		}
		allocated, err := group.Allocate(teams, top.Sizes())
		if err != nil {
			return nil, &DivisionError{Division: d, Err: err}
		}

		for i, layout := range top.Groups {
			g := newGroup(layout.Name, layout.Grid, ctrl, 1, d)
			g.Teams = allocated[i]
			if err := g.Generate(); err != nil {
				return nil, &DivisionError{Division: d, Group: layout.Name, Err: err}
			}
			out[d] = append(out[d], g)
		}
		log.Debug("Allocated division", "division", d, "teams", len(teams), "groups", top.Names())
	}
	return out, nil
}

// advancedGroups ranks the previous round of every division and seats the
// teams into this round's layout.
func (s *Scheduler) advancedGroups(ctx context.Context, ctrl control.Control, round int, roundType topology.RoundType) (map[division.Division][]*group.RaceGroup, *GenerationError) {
	out := make(map[division.Division][]*group.RaceGroup)
	var failed []*DivisionError

	for _, d := range division.All {
		if err := ctx.Err(); err != nil {
			failed = append(failed, &DivisionError{Division: d, Err: err})
			continue
		}
		groups, err := s.advanceDivision(ctrl, d, round, roundType)
		if err != nil {
			var divErr *DivisionError
			if !errors.As(err, &divErr) {
				divErr = &DivisionError{Division: d, Err: err}
			}
			log.Warn("Division could not be generated", "division", d, "group", divErr.Group, "error", divErr.Err)
			failed = append(failed, divErr)
			continue
		}
		if len(groups) > 0 {
			out[d] = groups
		}
	}

	if len(failed) > 0 {
		return out, &GenerationError{Divisions: failed}
	}
	return out, nil
}

func (s *Scheduler) advanceDivision(ctrl control.Control, d division.Division, round int, roundType topology.RoundType) ([]*group.RaceGroup, error) {
	previous, err := s.store.RacesFor(ctrl.ID, d, round-1)
	if err != nil {
		return nil, fmt.Errorf("failed to load round %d races: %w", round-1, err)
	}
	if len(previous) == 0 {
		log.Info("Division has no races in the previous round, skipping", "division", d, "round", round-1)
		return nil, nil
	}
	teams, err := s.store.TeamsByDivision(d)
	if err != nil {
		return nil, fmt.Errorf("failed to load teams: %w", err)
	}

	seats, err := SeatMap(previous, teams)
	if err != nil {
		return nil, &DivisionError{Division: d, Group: groupOf(err), Err: err}
	}

	top, err := topology.For(roundType, len(seats))
	if err != nil {
		return nil, err
	}
	if len(top.Groups) == 0 {
		log.Info("Layout has no groups for this round, skipping", "division", d, "type", roundType, "teams", len(seats))
		return nil, nil
	}

	var groups []*group.RaceGroup
	for _, layout := range top.Groups {
		g := newGroup(layout.Name, layout.Grid, ctrl, round, d)
		for _, seat := range layout.Seats {
			t, ok := seats[seat]
			if !ok {
				return nil, &DivisionError{Division: d, Group: layout.Name, Err: fmt.Errorf("%w: %s", ErrSeatUnfilled, seat)}
			}
			g.Teams = append(g.Teams, t)
		}
		if err := g.Generate(); err != nil {
			return nil, &DivisionError{Division: d, Group: layout.Name, Err: err}
		}
		groups = append(groups, g)
	}
	return groups, nil
}

// rankError tags a ranking failure with the group it came from.
type rankError struct {
	group string
	err   error
}

func (e *rankError) Error() string { return e.err.Error() }
func (e *rankError) Unwrap() error { return e.err }

func groupOf(err error) string {
	var re *rankError
	if errors.As(err, &re) {
		return re.group
	}
	return ""
}

// SeatMap ranks every group of a finished round and indexes the teams by
// finishing position and group label, e.g. 2B or 31 for third in group I.
func SeatMap(races []race.Race, teams []team.Team) (map[topology.SeatRef]team.Team, error) {
	groups, err := group.FromRaces(races, teams)
	if err != nil {
		return nil, err
	}

	seats := make(map[topology.SeatRef]team.Team)
	for _, g := range groups {
		order, err := g.Rank()
		if err != nil {
			return nil, &rankError{group: g.Name, err: err}
		}
		label, err := topology.Label(g.Name)
		if err != nil {
			return nil, &rankError{group: g.Name, err: err}
		}
		for i, t := range order {
			seats[topology.SeatRef{Position: i + 1, Group: label}] = t
		}
	}
	return seats, nil
}

func newGroup(name string, g grid.Grid, ctrl control.Control, round int, d division.Division) *group.RaceGroup {
	rg := group.New(name, g, ctrl.ID, round)
	rg.League = ctrl.League
	rg.Division = d
	return rg
}

// Interleave emits every group's races phase by phase. Within a phase the
// divisions run in their fixed order and groups in canonical name order, each
// group's races for the phase kept together.
func Interleave(groups map[division.Division][]*group.RaceGroup) []race.Race {
	ordered := make(map[division.Division][]*group.RaceGroup, len(groups))
	for d, gs := range groups {
		gs = slices.Clone(gs)
		slices.SortStableFunc(gs, func(a, b *group.RaceGroup) int {
			return topology.CanonicalIndex(a.Name) - topology.CanonicalIndex(b.Name)
		})
		ordered[d] = gs
	}

	var races []race.Race
	for phase := 0; phase < grid.Phases; phase++ {
		for _, d := range division.All {
			for _, g := range ordered[d] {
				races = append(races, g.Phase(phase)...)
			}
		}
	}
	return races
}

// SortKnockout reorders a final-day running order: Ladies, then Board, then
// Mixed, each from the lowest placing up to the final. It only runs when the
// request asks for the final day.
func SortKnockout(races []race.Race) {
	slices.SortStableFunc(races, race.KnockoutCompare)
}

func (s *Scheduler) writeSchedule(races []race.Race, dryRun bool) {
	if s.writer == nil {
		return
	}
	teams, err := s.store.AllTeams()
	if err != nil {
		log.Error("Failed to load teams for the schedule", "error", err)
		return
	}
	if err := s.writer.WriteSchedule(races, teams, dryRun); err != nil {
		log.Error("Failed to write schedule", "error", err)
	}
}

func (s *Scheduler) publish(result Result, genErr *GenerationError) {
	if s.pubsub == nil {
		return
	}
	event := pubsub.RoundGenerated{
		RunID:     result.RunID,
		ControlID: result.ControlID,
		Round:     result.Round,
		Knockout:  result.RoundType == topology.Knockout.String(),
		Races:     make(map[string]int, len(result.Counts)),
	}
	for d, n := range result.Counts {
		event.Races[string(d)] = n
	}
	if genErr != nil {
		for _, d := range genErr.Divisions {
			event.Failed = append(event.Failed, string(d.Division))
		}
	}
	if err := s.pubsub.SendMessage(pubsub.EventRoundGenerated, event); err != nil {
		log.Error("Failed to publish round generated event", "error", err, "run", result.RunID)
	}
}

func (s *Scheduler) fail(req Request, err error) error {
	s.countFailure(err)
	log.Error("Round generation failed", "control", req.ControlID, "round", req.Round, "kind", Classify(err), "error", err)
	return err
}

func (s *Scheduler) countFailure(err error) {
	var genErr *GenerationError
	if errors.As(err, &genErr) && !errors.Is(err, ErrNoRaces) {
		for _, d := range genErr.Divisions {
			s.metrics.IncGenerationFailures(string(Classify(d)))
		}
		return
	}
	s.metrics.IncGenerationFailures(string(Classify(err)))
}
