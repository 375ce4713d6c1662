package pubsub

import "cloud.google.com/go/pubsub"

type client struct {
	client   *pubsub.Client
	teardown func()
}

// EventType represents the type of event/message sent via pubsub.
type EventType string

const (
	EventRoundGenerated EventType = "round-generated"
	EventResultRecorded EventType = "result-recorded"
)

// RoundGenerated is published once a round has been committed.
type RoundGenerated struct {
	RunID     string         `msgpack:"run_id" json:"run_id"`
	ControlID int64          `msgpack:"control_id" json:"control_id"`
	Round     int            `msgpack:"round" json:"round"`
	Knockout  bool           `msgpack:"knockout" json:"knockout"`
	Races     map[string]int `msgpack:"races" json:"races"`
	Failed    []string       `msgpack:"failed,omitempty" json:"failed,omitempty"`
}

// ResultRecorded is published after a race result is stored.
type ResultRecorded struct {
	RaceID    int64  `msgpack:"race_id" json:"race_id"`
	ControlID int64  `msgpack:"control_id" json:"control_id"`
	Round     int    `msgpack:"round" json:"round"`
	Division  string `msgpack:"division" json:"division"`
	Group     string `msgpack:"group" json:"group"`
}
