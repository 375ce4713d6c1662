package control

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
)

// New creates a new ControlStore.
func New(db *sql.DB) ControlStore {
	return &store{
		db: db,
	}
}

func (s *store) AddControl(c Control) (Control, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if c.Date.IsZero() {
		c.Date = time.Now()
	}
	res, err := s.db.Exec(`INSERT INTO race_controls (league, race_date) VALUES (?, ?)`, c.League, c.Date.Unix())
	if err != nil {
		return Control{}, fmt.Errorf("failed to add race control: %w", err)
	}
	if c.ID, err = res.LastInsertId(); err != nil {
		return Control{}, err
	}
	log.Info("Added race control", "id", c.ID, "league", c.League, "date", c.Date.Format(time.DateOnly))
	return c, nil
}

func (s *store) GetControl(id int64) (Control, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return scanControl(s.db.QueryRow(`SELECT id, league, race_date FROM race_controls WHERE id = ?`, id))
}

func (s *store) LastControl(league string) (Control, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return scanControl(s.db.QueryRow(`SELECT id, league, race_date FROM race_controls
		WHERE league = ? ORDER BY race_date DESC, id DESC LIMIT 1`, league))
}

func scanControl(row *sql.Row) (Control, error) {
	var c Control
	var date int64
	if err := row.Scan(&c.ID, &c.League, &date); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Control{}, ErrNotFound
		}
		return Control{}, err
	}
	c.Date = time.Unix(date, 0)
	return c, nil
}
