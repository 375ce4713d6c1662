package race

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/race-organiser/internal/division"
)

const raceColumns = `id, control_id, league, round_no, division, group_name, race_no, team_one, team_two, team_win, team_one_dsq, team_two_dsq`

// New creates a new RaceStore.
func New(db *sql.DB) RaceStore {
	return &store{
		db: db,
	}
}

func (s *store) RacesFor(controlID int64, d division.Division, round int) ([]Race, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.queryRaces(`SELECT `+raceColumns+` FROM races
		WHERE control_id = ? AND division = ? AND round_no = ? ORDER BY race_no`, controlID, d, round)
}

func (s *store) RoundRaces(controlID int64, round int) ([]Race, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.queryRaces(`SELECT `+raceColumns+` FROM races
		WHERE control_id = ? AND round_no = ? ORDER BY race_no`, controlID, round)
}

func (s *store) ReplaceRound(controlID int64, round int, races []Race) ([]Race, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	res, err := tx.Exec(`DELETE FROM races WHERE control_id = ? AND round_no = ?`, controlID, round)
	if err != nil {
		return nil, fmt.Errorf("failed to clear round %d: %w", round, err)
	}
	deleted, _ := res.RowsAffected()

	stmt, err := tx.Prepare(`INSERT INTO races (control_id, league, round_no, division, group_name, race_no,
		team_one, team_two, team_win, team_one_dsq, team_two_dsq) VALUES (?, ?, ?, ?, ?, ?, ?, ?, 0, '', '')`)
	if err != nil {
		return nil, err
	}
	defer stmt.Close()

	stored := make([]Race, len(races))
	for i, r := range races {
		r.ControlID = controlID
		r.Round = round
		r.Number = i + 1
		r.Winner, r.TeamOneDSQ, r.TeamTwoDSQ = NoWinner, "", ""
		res, err := stmt.Exec(r.ControlID, r.League, r.Round, r.Division, r.Group, r.Number, r.TeamOne, r.TeamTwo)
		if err != nil {
			return nil, fmt.Errorf("failed to insert race %d: %w", r.Number, err)
		}
		if r.ID, err = res.LastInsertId(); err != nil {
			return nil, err
		}
		stored[i] = r
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	log.Info("Replaced round", "control", controlID, "round", round, "deleted", deleted, "inserted", len(stored))
	return stored, nil
}

func (s *store) RecordResult(raceID int64, winner int, teamOneDSQ, teamTwoDSQ string) (Race, error) {
	if winner != NoWinner && winner != TeamOne && winner != TeamTwo {
		return Race{}, ErrInvalidWinner
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.Exec(`UPDATE races SET team_win = ?, team_one_dsq = ?, team_two_dsq = ? WHERE id = ?`,
		winner, teamOneDSQ, teamTwoDSQ, raceID)
	if err != nil {
		return Race{}, fmt.Errorf("failed to record result for race %d: %w", raceID, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return Race{}, ErrNotFound
	}
	return s.get(raceID)
}

func (s *store) GetRace(raceID int64) (Race, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.get(raceID)
}

func (s *store) get(raceID int64) (Race, error) {
	r, err := scanRace(s.db.QueryRow(`SELECT `+raceColumns+` FROM races WHERE id = ?`, raceID))
	if errors.Is(err, sql.ErrNoRows) {
		return Race{}, ErrNotFound
	}
	return r, err
}

func (s *store) queryRaces(query string, args ...any) ([]Race, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	races := []Race{}
	for rows.Next() {
		r, err := scanRace(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan race row: %w", err)
		}
		races = append(races, r)
	}
	return races, rows.Err()
}

func scanRace(scanner interface{ Scan(...any) error }) (Race, error) {
	var r Race
	err := scanner.Scan(&r.ID, &r.ControlID, &r.League, &r.Round, &r.Division, &r.Group, &r.Number,
		&r.TeamOne, &r.TeamTwo, &r.Winner, &r.TeamOneDSQ, &r.TeamTwoDSQ)
	return r, err
}
