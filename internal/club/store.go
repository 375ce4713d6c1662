package club

import (
	"database/sql"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/race-organiser/internal/division"
)

// New creates a new ClubStore.
func New(db *sql.DB) ClubStore {
	return &store{
		db: db,
	}
}

// GetClubs returns the clubs of a league ordered by name. An empty league returns every club.
func (s *store) GetClubs(league string) ([]Club, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	query := `SELECT id, league, club_name, short_name, mixed_teams, ladies_teams, board_teams FROM clubs`
	var args []any
	if league != "" {
		query += ` WHERE league = ?`
		args = append(args, league)
	}
	query += ` ORDER BY club_name COLLATE NOCASE`

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	clubs := []Club{}
	for rows.Next() {
		var c Club
		if err := rows.Scan(&c.ID, &c.League, &c.ClubName, &c.ShortName, &c.MixedTeams, &c.LadiesTeams, &c.BoardTeams); err != nil {
			log.Error("Failed to scan club row", "error", err)
			continue
		}
		clubs = append(clubs, c)
	}
	return clubs, rows.Err()
}

// AddClub inserts a club. The short name defaults to the club name.
func (s *store) AddClub(c Club) (Club, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if c.ShortName == "" {
		c.ShortName = c.ClubName
	}
	res, err := s.db.Exec(`
		INSERT INTO clubs (league, club_name, short_name, mixed_teams, ladies_teams, board_teams)
		VALUES (?, ?, ?, ?, ?, ?)`,
		c.League, c.ClubName, c.ShortName, c.MixedTeams, c.LadiesTeams, c.BoardTeams)
	if err != nil {
		return Club{}, fmt.Errorf("failed to add club %s: %w", c.ClubName, err)
	}
	c.ID, err = res.LastInsertId()
	if err != nil {
		return Club{}, err
	}
	log.Debug("Added club", "club", c.ClubName, "league", c.League)
	return c, nil
}

func (s *store) UpdateClub(c Club) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec(`
		UPDATE clubs SET league = ?, club_name = ?, short_name = ?, mixed_teams = ?, ladies_teams = ?, board_teams = ?
		WHERE id = ?`,
		c.League, c.ClubName, c.ShortName, c.MixedTeams, c.LadiesTeams, c.BoardTeams, c.ID)
	return err
}

func (s *store) EnsureTeamCount(league, clubName string, d division.Division, n int) error {
	column, err := countColumn(d)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	_, err = s.db.Exec(
		fmt.Sprintf(`UPDATE clubs SET %[1]s = MAX(%[1]s, ?) WHERE league = ? AND club_name = ?`, column),
		n, league, clubName)
	return err
}

func countColumn(d division.Division) (string, error) {
	switch d {
	case division.Mixed:
		return "mixed_teams", nil
	case division.Ladies:
		return "ladies_teams", nil
	case division.Board:
		return "board_teams", nil
	}
	return "", fmt.Errorf("unknown division %q", d)
}
