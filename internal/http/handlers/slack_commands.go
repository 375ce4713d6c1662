package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/race-organiser/internal/control"
	"github.com/mauv0809/race-organiser/internal/notifier"
	"github.com/slack-go/slack"
)

// respondWithSlackMsg is a helper to format and write a Slack message as an HTTP response.
func respondWithSlackMsg(w http.ResponseWriter, msg slack.Message) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(msg); err != nil {
		log.Error("Failed to encode slack message to JSON", "error", err)
	}
}

// parseRunningOrderText reads "[round] [control]" from a slash command.
// Missing values default to round 1 of the latest control.
func parseRunningOrderText(text string) (round int, controlID int64, ok bool) {
	parts := strings.Fields(text)
	round = 1
	if len(parts) > 2 {
		return 0, 0, false
	}
	if len(parts) > 0 {
		n, err := strconv.Atoi(parts[0])
		if err != nil || n < 1 {
			return 0, 0, false
		}
		round = n
	}
	if len(parts) > 1 {
		id, err := strconv.ParseInt(parts[1], 10, 64)
		if err != nil || id < 1 {
			return 0, 0, false
		}
		controlID = id
	}
	return round, controlID, true
}

// RunningOrderCommandHandler answers /running-order with the stored running
// order of a round.
func RunningOrderCommandHandler(store Store, notifier notifier.Notifier, league string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cmd, err := slack.SlashCommandParse(r)
		if err != nil {
			http.Error(w, "Failed to parse command", http.StatusBadRequest)
			log.Error("Failed to parse slash command", "error", err)
			return
		}

		round, controlID, ok := parseRunningOrderText(cmd.Text)
		if !ok {
			respondWithSlackMsg(w, slack.Message{Msg: slack.Msg{
				ResponseType: slack.ResponseTypeEphemeral,
				Text:         "Usage: /running-order [round] [control]",
			}})
			return
		}

		var ctrl control.Control
		if controlID == 0 {
			ctrl, err = store.LastControl(league)
		} else {
			ctrl, err = store.GetControl(controlID)
		}
		if err != nil {
			respondWithSlackMsg(w, slack.Message{Msg: slack.Msg{
				ResponseType: slack.ResponseTypeEphemeral,
				Text:         "No race control found.",
			}})
			return
		}

		races, err := store.RoundRaces(ctrl.ID, round)
		if err != nil {
			http.Error(w, "Failed to get races", http.StatusInternalServerError)
			log.Error("Failed to get races from store", "error", err)
			return
		}
		teams, err := store.AllTeams()
		if err != nil {
			http.Error(w, "Failed to get teams", http.StatusInternalServerError)
			log.Error("Failed to get teams from store", "error", err)
			return
		}

		msg, err := notifier.FormatRunningOrderResponse(races, teams)
		if err != nil {
			http.Error(w, "Failed to format running order", http.StatusInternalServerError)
			log.Error("Failed to format running order", "error", err)
			return
		}
		slackMsg, ok := msg.(slack.Message)
		if !ok {
			http.Error(w, "Invalid message format for Slack", http.StatusInternalServerError)
			log.Error("Failed to cast message to slack.Message")
			return
		}
		respondWithSlackMsg(w, slackMsg)
	}
}
