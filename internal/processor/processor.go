// Package processor records race results and publishes group standings once
// every race of a group is in.
package processor

import (
	"fmt"
	"slices"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/race-organiser/internal/division"
	"github.com/mauv0809/race-organiser/internal/group"
	"github.com/mauv0809/race-organiser/internal/metrics"
	"github.com/mauv0809/race-organiser/internal/notifier"
	"github.com/mauv0809/race-organiser/internal/pubsub"
	"github.com/mauv0809/race-organiser/internal/race"
)

// New creates a new Processor.
func New(store Store, notifier Notifier, metrics metrics.Metrics, metricsStore metrics.MetricsStore, pubsub pubsub.PubSubClient) *Processor {
	return &Processor{
		store:        store,
		pubsub:       pubsub,
		notifier:     notifier,
		metrics:      metrics,
		metricsStore: metricsStore,
	}
}

// RecordResult stores the outcome of a race and publishes a ResultRecorded
// event. A dry run only validates the result against the stored race.
func (p *Processor) RecordResult(res Result, dryRun bool) (race.Race, error) {
	if res.Winner < race.NoWinner || res.Winner > race.TeamTwo {
		return race.Race{}, fmt.Errorf("%w: got %d", race.ErrInvalidWinner, res.Winner)
	}

	if dryRun {
		r, err := p.store.GetRace(res.RaceID)
		if err != nil {
			return race.Race{}, err
		}
		r.Winner, r.TeamOneDSQ, r.TeamTwoDSQ = res.Winner, res.TeamOneDSQ, res.TeamTwoDSQ
		log.Info("[Dry Run] Would record result", "race", r.ID, "winner", r.WinnerID())
		return r, nil
	}

	r, err := p.store.RecordResult(res.RaceID, res.Winner, res.TeamOneDSQ, res.TeamTwoDSQ)
	if err != nil {
		return race.Race{}, fmt.Errorf("failed to record result for race %d: %w", res.RaceID, err)
	}
	log.Info("Recorded result", "race", r.ID, "division", r.Division, "group", r.Group, "winner", r.WinnerID())

	p.metrics.IncResultsRecorded()
	if p.metricsStore != nil {
		p.metricsStore.Increment(metrics.KeyResultsRecorded)
	}

	event := pubsub.ResultRecorded{
		RaceID:    r.ID,
		ControlID: r.ControlID,
		Round:     r.Round,
		Division:  string(r.Division),
		Group:     r.Group,
	}
	if err := p.pubsub.SendMessage(pubsub.EventResultRecorded, event); err != nil {
		log.Error("Failed to publish result recorded event", "error", err, "race", r.ID)
	}
	return r, nil
}

// PublishStandings ranks the group a result belongs to and sends its
// standings once every race in it has a winner. It reports whether standings
// were sent.
func (p *Processor) PublishStandings(event pubsub.ResultRecorded, dryRun bool) (bool, error) {
	d, err := division.Parse(event.Division)
	if err != nil {
		return false, err
	}

	races, err := p.store.RacesFor(event.ControlID, d, event.Round)
	if err != nil {
		return false, fmt.Errorf("failed to load races: %w", err)
	}
	races = slices.DeleteFunc(races, func(r race.Race) bool { return r.Group != event.Group })
	if len(races) == 0 {
		return false, fmt.Errorf("%w: %s group %s round %d", race.ErrNotFound, d, event.Group, event.Round)
	}
	if slices.ContainsFunc(races, func(r race.Race) bool { return !r.Finished() }) {
		log.Debug("Group not finished yet", "division", d, "group", event.Group, "round", event.Round)
		return false, nil
	}

	teams, err := p.store.TeamsByDivision(d)
	if err != nil {
		return false, fmt.Errorf("failed to load teams: %w", err)
	}
	groups, err := group.FromRaces(races, teams)
	if err != nil {
		return false, err
	}
	g := groups[0]
	order, err := g.Rank()
	if err != nil {
		return false, fmt.Errorf("failed to rank %s group %s: %w", d, g.Name, err)
	}

	standings := notifier.Standings{
		ControlID: event.ControlID,
		Round:     event.Round,
		Division:  d,
		Group:     g.Name,
		Order:     order,
		Records:   g.Tally(),
	}
	if err := p.notifier.SendStandings(standings, dryRun); err != nil {
		return false, fmt.Errorf("failed to send standings: %w", err)
	}
	log.Info("Group standings sent", "division", d, "group", g.Name, "round", event.Round, "winner", order[0].TeamName)
	return true, nil
}
