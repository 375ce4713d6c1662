package handlers

import (
	"encoding/base64"
	"encoding/json"
	"io"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/race-organiser/internal/processor"
	"github.com/mauv0809/race-organiser/internal/pubsub"
)

// ResultRecordedHandler consumes result-recorded push messages and sends
// the group's standings once it is complete.
func ResultRecordedHandler(proc *processor.Processor, pubsubClient pubsub.PubSubClient) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		bodyBytes, err := io.ReadAll(r.Body)
		if err != nil {
			log.Error("Failed to read request body", "error", err)
			http.Error(w, "Failed to read request body", http.StatusInternalServerError)
			return
		}
		log.Debug("Received result recorded message", "body", string(bodyBytes))

		var pubsubMsg struct {
			Subscription string `json:"subscription"`
			Message      struct {
				Data string `json:"data"`
			} `json:"message"`
		}

		if err := json.Unmarshal(bodyBytes, &pubsubMsg); err != nil {
			log.Error("Failed to unmarshal wrapper JSON", "error", err)
			http.Error(w, "Invalid JSON", http.StatusBadRequest)
			return
		}

		rawData, err := base64.StdEncoding.DecodeString(pubsubMsg.Message.Data)
		if err != nil {
			log.Error("Failed to decode base64 data", "error", err)
			http.Error(w, "Invalid base64 data", http.StatusBadRequest)
			return
		}

		var event pubsub.ResultRecorded
		if err := pubsubClient.ProcessMessage(rawData, &event); err != nil {
			log.Error("Failed to decode result recorded event", "error", err)
			http.Error(w, "Invalid message payload", http.StatusBadRequest)
			return
		}

		// Errors are acknowledged so Pub/Sub does not redeliver a group that
		// cannot be ranked.
		if _, err := proc.PublishStandings(event, IsDryRunFromContext(r)); err != nil {
			log.Error("Failed to publish standings", "error", err, "race", event.RaceID)
		}
		w.Write([]byte("OK"))
	}
}
