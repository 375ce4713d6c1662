package processor

import (
	"github.com/mauv0809/race-organiser/internal/metrics"
	"github.com/mauv0809/race-organiser/internal/pubsub"
)

// Processor records race results and announces groups as they finish.
type Processor struct {
	store        Store
	pubsub       pubsub.PubSubClient
	notifier     Notifier
	metrics      metrics.Metrics
	metricsStore metrics.MetricsStore
}

// Result is a race outcome as entered by the race officials.
type Result struct {
	RaceID     int64  `json:"race_id"`
	Winner     int    `json:"winner"`
	TeamOneDSQ string `json:"team_one_dsq,omitempty"`
	TeamTwoDSQ string `json:"team_two_dsq,omitempty"`
}
