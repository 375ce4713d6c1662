package scheduler

import (
	"github.com/mauv0809/race-organiser/internal/division"
	"github.com/mauv0809/race-organiser/internal/metrics"
	"github.com/mauv0809/race-organiser/internal/pubsub"
	"github.com/mauv0809/race-organiser/internal/race"
	"github.com/mauv0809/race-organiser/internal/topology"
)

// Scheduler generates the races of a round for every division.
type Scheduler struct {
	store   Store
	writer  ScheduleWriter
	metrics metrics.Metrics
	pubsub  pubsub.PubSubClient
}

// Request selects the round to generate. Knockout forces the knockout layout
// for round 2, which small divisions use in place of an intermediate round.
type Request struct {
	ControlID int64 `json:"control_id"`
	Round     int   `json:"round"`
	Knockout  bool  `json:"knockout"`
	DryRun    bool  `json:"dry_run"`
}

// RoundType returns the layout a request draws its groups from.
func (r Request) RoundType() topology.RoundType {
	switch {
	case r.Round <= 1:
		return topology.Initial
	case r.Knockout || r.Round >= 3:
		return topology.Knockout
	}
	return topology.Intermediate
}

// Result is the running order produced by a run. Races are numbered 1..n;
// they carry ids only once committed.
type Result struct {
	RunID     string                    `json:"run_id"`
	ControlID int64                     `json:"control_id"`
	Round     int                       `json:"round"`
	RoundType string                    `json:"round_type"`
	Races     []race.Race               `json:"races"`
	Counts    map[division.Division]int `json:"counts"`
	Committed bool                      `json:"committed"`
}
