package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/race-organiser/internal/control"
	"github.com/mauv0809/race-organiser/internal/division"
	"github.com/mauv0809/race-organiser/internal/race"
	"github.com/mauv0809/race-organiser/internal/scheduler"
	"github.com/mauv0809/race-organiser/internal/team"
)

// ContextKey is a custom type to avoid key collisions in context.
type ContextKey string

const (
	DryRunKey ContextKey = "dryRun"
)

// IsDryRunFromContext is a helper to safely retrieve the dry_run flag from the request context.
func IsDryRunFromContext(r *http.Request) bool {
	dryRun, ok := r.Context().Value(DryRunKey).(bool)
	return ok && dryRun
}

// Store defines the database reads and writes the handlers need.
type Store interface {
	RoundRaces(controlID int64, round int) ([]race.Race, error)
	RacesFor(controlID int64, d division.Division, round int) ([]race.Race, error)
	AllTeams() ([]team.Team, error)
	TeamsByDivision(d division.Division) ([]team.Team, error)
	AddControl(c control.Control) (control.Control, error)
	GetControl(id int64) (control.Control, error)
	LastControl(league string) (control.Control, error)
}

// RoundGenerator produces the running order of a round.
type RoundGenerator interface {
	GenerateRound(ctx context.Context, req scheduler.Request) (scheduler.Result, error)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error("Failed to write response", "error", err)
	}
}

// statusForKind maps a generation failure onto an HTTP status.
func statusForKind(kind scheduler.Kind) int {
	switch kind {
	case scheduler.KindConfiguration:
		return http.StatusUnprocessableEntity
	case scheduler.KindReadiness, scheduler.KindManual:
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}

// resolveControl reads the control query parameter, falling back to the
// league's most recent control.
func resolveControl(r *http.Request, store Store, league string) (control.Control, int, error) {
	raw := r.URL.Query().Get("control")
	if raw == "" {
		c, err := store.LastControl(league)
		if errors.Is(err, control.ErrNotFound) {
			return control.Control{}, http.StatusNotFound, errors.New("no race control exists for league " + league)
		}
		if err != nil {
			return control.Control{}, http.StatusInternalServerError, err
		}
		return c, http.StatusOK, nil
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 1 {
		return control.Control{}, http.StatusBadRequest, errors.New("invalid control parameter")
	}
	c, err := store.GetControl(id)
	if errors.Is(err, control.ErrNotFound) {
		return control.Control{}, http.StatusNotFound, err
	}
	if err != nil {
		return control.Control{}, http.StatusInternalServerError, err
	}
	return c, http.StatusOK, nil
}

// intParam parses an optional integer query parameter.
func intParam(r *http.Request, name string, fallback int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback, nil
	}
	return strconv.Atoi(raw)
}
