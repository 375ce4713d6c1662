package handlers

import (
	"errors"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/race-organiser/internal/metrics"
	"github.com/mauv0809/race-organiser/internal/notifier"
	"github.com/mauv0809/race-organiser/internal/scheduler"
)

// generateResponse is returned by GenerateRoundHandler. Errors lists the
// divisions that failed while the others were still generated.
type generateResponse struct {
	scheduler.Result
	Kind   scheduler.Kind `json:"kind,omitempty"`
	Errors []string       `json:"errors,omitempty"`
}

// GenerateRoundHandler generates a round for a control. Query parameters:
// control (defaults to the league's latest), round (default 1), knockout and
// dry_run.
func GenerateRoundHandler(store Store, generator RoundGenerator, notifier notifier.Notifier, metricsStore metrics.MetricsStore, league string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		isDryRun := IsDryRunFromContext(r)

		ctrl, status, err := resolveControl(r, store, league)
		if err != nil {
			http.Error(w, err.Error(), status)
			return
		}
		round, err := intParam(r, "round", 1)
		if err != nil {
			http.Error(w, "Invalid round parameter", http.StatusBadRequest)
			return
		}

		req := scheduler.Request{
			ControlID: ctrl.ID,
			Round:     round,
			Knockout:  r.URL.Query().Get("knockout") == "true",
			DryRun:    isDryRun,
		}
		log.Info("Generating round", "control", req.ControlID, "round", req.Round, "knockout", req.Knockout, "dry_run", isDryRun)

		result, err := generator.GenerateRound(r.Context(), req)
		if err == nil {
			if !isDryRun {
				metricsStore.Increment(metrics.KeyRoundsGenerated)
				metricsStore.Add(metrics.KeyRacesGenerated, len(result.Races))
			}
			writeJSON(w, http.StatusOK, generateResponse{Result: result})
			return
		}

		kind := scheduler.Classify(err)
		if !isDryRun {
			metricsStore.Increment(metrics.KeyGenerationFailures)
		}
		if notifyErr := notifier.SendGenerationFailure(req.ControlID, req.Round, err, isDryRun); notifyErr != nil {
			log.Error("Failed to send generation failure notification", "error", notifyErr)
		}

		var genErr *scheduler.GenerationError
		if errors.As(err, &genErr) && len(result.Races) > 0 {
			if result.Committed {
				metricsStore.Increment(metrics.KeyRoundsGenerated)
				metricsStore.Add(metrics.KeyRacesGenerated, len(result.Races))
			}
			resp := generateResponse{Result: result, Kind: kind}
			for _, d := range genErr.Divisions {
				resp.Errors = append(resp.Errors, d.Error())
			}
			writeJSON(w, http.StatusMultiStatus, resp)
			return
		}

		log.Error("Round generation failed", "control", req.ControlID, "round", req.Round, "kind", kind, "error", err)
		writeJSON(w, statusForKind(kind), generateResponse{Result: result, Kind: kind, Errors: []string{err.Error()}})
	}
}
