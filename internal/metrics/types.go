package metrics

import "github.com/prometheus/client_golang/prometheus"

// Service holds all the Prometheus metrics for the application.
// By defining them all in one place, we ensure consistency in naming and labeling.
type Service struct {
	RoundsGenerated    prometheus.Counter
	RacesGenerated     prometheus.Counter
	GenerationFailures *prometheus.CounterVec
	GenerationDuration prometheus.Histogram
	ResultsRecorded    prometheus.Counter
	SlackNotifSent     prometheus.Counter
	SlackNotifFailed   prometheus.Counter
	StartupTimeSeconds prometheus.Gauge
}

// Keys used with the MetricsStore.
const (
	KeyRoundsGenerated    = "rounds_generated"
	KeyRacesGenerated     = "races_generated"
	KeyGenerationFailures = "generation_failures"
	KeyResultsRecorded    = "results_recorded"
)
