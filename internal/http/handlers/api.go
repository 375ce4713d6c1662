package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/mauv0809/race-organiser/internal/control"
	"github.com/mauv0809/race-organiser/internal/division"
	"github.com/mauv0809/race-organiser/internal/processor"
	"github.com/mauv0809/race-organiser/internal/race"
	"github.com/mauv0809/race-organiser/internal/seeding"
	"github.com/mauv0809/race-organiser/internal/team"
)

// CreateControlHandler opens a new race day. The body is optional:
// {"league": "...", "date": "2026-02-14"}.
func CreateControlHandler(store Store, league string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			League string `json:"league"`
			Date   string `json:"date"`
		}
		if r.ContentLength != 0 {
			if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
				http.Error(w, "Invalid JSON", http.StatusBadRequest)
				return
			}
		}

		c := control.Control{League: body.League}
		if c.League == "" {
			c.League = league
		}
		if body.Date != "" {
			date, err := time.Parse(time.DateOnly, body.Date)
			if err != nil {
				http.Error(w, "Invalid date, expected YYYY-MM-DD", http.StatusBadRequest)
				return
			}
			c.Date = date
		}

		if IsDryRunFromContext(r) {
			log.Info("[Dry Run] Would create race control", "league", c.League)
			writeJSON(w, http.StatusOK, c)
			return
		}
		created, err := store.AddControl(c)
		if err != nil {
			http.Error(w, "Failed to create control", http.StatusInternalServerError)
			log.Error("Failed to create control", "error", err)
			return
		}
		log.Info("Created race control", "control", created.ID, "league", created.League)
		writeJSON(w, http.StatusCreated, created)
	}
}

func LatestControlHandler(store Store, league string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		l := r.URL.Query().Get("league")
		if l == "" {
			l = league
		}
		c, err := store.LastControl(l)
		if errors.Is(err, control.ErrNotFound) {
			http.Error(w, "No race control found", http.StatusNotFound)
			return
		}
		if err != nil {
			http.Error(w, "Failed to get control", http.StatusInternalServerError)
			log.Error("Failed to get latest control", "error", err)
			return
		}
		writeJSON(w, http.StatusOK, c)
	}
}

func GetControlHandler(store Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(chi.URLParam(r, "controlID"), 10, 64)
		if err != nil {
			http.Error(w, "Invalid control id", http.StatusBadRequest)
			return
		}
		c, err := store.GetControl(id)
		if errors.Is(err, control.ErrNotFound) {
			http.Error(w, "Control not found", http.StatusNotFound)
			return
		}
		if err != nil {
			http.Error(w, "Failed to get control", http.StatusInternalServerError)
			log.Error("Failed to get control", "error", err, "control", id)
			return
		}
		writeJSON(w, http.StatusOK, c)
	}
}

// ListRacesHandler returns the running order of a round, optionally for one
// division.
func ListRacesHandler(store Store, league string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
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

		var races []race.Race
		if raw := r.URL.Query().Get("division"); raw != "" {
			d, parseErr := division.Parse(raw)
			if parseErr != nil {
				http.Error(w, parseErr.Error(), http.StatusBadRequest)
				return
			}
			races, err = store.RacesFor(ctrl.ID, d, round)
		} else {
			races, err = store.RoundRaces(ctrl.ID, round)
		}
		if err != nil {
			http.Error(w, "Failed to get races", http.StatusInternalServerError)
			log.Error("Failed to get races from store", "error", err)
			return
		}
		if races == nil {
			races = []race.Race{}
		}
		writeJSON(w, http.StatusOK, races)
	}
}

// RecordResultHandler stores a race result sent as processor.Result JSON.
func RecordResultHandler(proc *processor.Processor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var res processor.Result
		if err := json.NewDecoder(r.Body).Decode(&res); err != nil {
			http.Error(w, "Invalid JSON", http.StatusBadRequest)
			return
		}

		stored, err := proc.RecordResult(res, IsDryRunFromContext(r))
		switch {
		case errors.Is(err, race.ErrInvalidWinner):
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		case errors.Is(err, race.ErrNotFound):
			http.Error(w, "Race not found", http.StatusNotFound)
			return
		case err != nil:
			http.Error(w, "Failed to record result", http.StatusInternalServerError)
			log.Error("Failed to record result", "error", err, "race", res.RaceID)
			return
		}
		writeJSON(w, http.StatusOK, stored)
	}
}

func ListTeamsHandler(store Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var (
			teams []team.Team
			err   error
		)
		if raw := r.URL.Query().Get("division"); raw != "" {
			d, parseErr := division.Parse(raw)
			if parseErr != nil {
				http.Error(w, parseErr.Error(), http.StatusBadRequest)
				return
			}
			teams, err = store.TeamsByDivision(d)
		} else {
			teams, err = store.AllTeams()
		}
		if err != nil {
			http.Error(w, "Failed to get teams", http.StatusInternalServerError)
			log.Error("Failed to get teams from store", "error", err)
			return
		}
		if teams == nil {
			teams = []team.Team{}
		}
		writeJSON(w, http.StatusOK, teams)
	}
}

// SeedTeamsHandler imports a division's league table:
// {"league": "...", "division": "Mixed", "teams": [{"team_name": "Kings 2", "scores": [10, 8, 0, 0, 0]}]}.
func SeedTeamsHandler(seeder *seeding.Seeder, league string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			League   string          `json:"league"`
			Division string          `json:"division"`
			Teams    []seeding.Entry `json:"teams"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			http.Error(w, "Invalid JSON", http.StatusBadRequest)
			return
		}
		d, err := division.Parse(body.Division)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if body.League == "" {
			body.League = league
		}

		summary, err := seeder.SeedTeams(body.League, d, body.Teams, IsDryRunFromContext(r))
		if errors.Is(err, seeding.ErrEmptyTeamName) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if err != nil {
			http.Error(w, "Failed to seed teams", http.StatusInternalServerError)
			log.Error("Failed to seed teams", "error", err)
			return
		}
		writeJSON(w, http.StatusOK, summary)
	}
}
