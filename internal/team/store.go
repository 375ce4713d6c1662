package team

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/race-organiser/internal/club"
	"github.com/mauv0809/race-organiser/internal/division"
)

const teamColumns = `id, league, club_name, division, division_index, team_name, score_r1, score_r2, score_r3, score_r4, score_r5`

// New creates a new TeamStore.
func New(db *sql.DB) TeamStore {
	return &store{
		db: db,
	}
}

// CompetingTeams looks up teams 1..n for every club, where n is the number of
// teams the club entered in the division. Missing teams are created unseeded.
func (s *store) CompetingTeams(d division.Division, clubs []club.Club, league string) ([]Team, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	var teams []Team
	for _, c := range clubs {
		teamLeague := league
		if teamLeague == "" {
			teamLeague = c.League
		}
		for idx := 1; idx <= c.TeamCount(d); idx++ {
			t, err := s.findOrCreate(tx, teamLeague, c.ClubName, d, idx)
			if err != nil {
				return nil, fmt.Errorf("failed to resolve %s team %d for %s: %w", d, idx, c.ClubName, err)
			}
			teams = append(teams, t)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	Sort(teams)
	log.Debug("Resolved competing teams", "division", d, "league", league, "count", len(teams))
	return teams, nil
}

func (s *store) findOrCreate(tx *sql.Tx, league, clubName string, d division.Division, idx int) (Team, error) {
	row := tx.QueryRow(`SELECT `+teamColumns+` FROM teams
		WHERE league = ? AND club_name = ? AND division = ? AND division_index = ?`,
		league, clubName, d, idx)
	t, err := scanTeam(row)
	if err == nil {
		return *t, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return Team{}, err
	}

	created := Team{League: league, ClubName: clubName, Division: d, DivisionIndex: idx, TeamName: Name(clubName, idx)}
	res, err := tx.Exec(`INSERT INTO teams (league, club_name, division, division_index, team_name) VALUES (?, ?, ?, ?, ?)`,
		created.League, created.ClubName, created.Division, created.DivisionIndex, created.TeamName)
	if err != nil {
		return Team{}, err
	}
	created.ID, err = res.LastInsertId()
	log.Info("Created team", "team", created.TeamName, "division", d)
	return created, err
}

// TeamsByDivision returns every team in a division regardless of league.
func (s *store) TeamsByDivision(d division.Division) ([]Team, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.queryTeams(`SELECT `+teamColumns+` FROM teams WHERE division = ? ORDER BY id`, d)
}

func (s *store) AllTeams() ([]Team, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.queryTeams(`SELECT ` + teamColumns + ` FROM teams ORDER BY id`)
}

// FindByName returns nil when no team with that name exists.
func (s *store) FindByName(league string, d division.Division, teamName string) (*Team, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row := s.db.QueryRow(`SELECT `+teamColumns+` FROM teams
		WHERE league = ? AND division = ? AND team_name = ? COLLATE NOCASE`, league, d, teamName)
	t, err := scanTeam(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return t, err
}

// UpsertTeam updates a team by id, or inserts it keyed on league, club,
// division and division index.
func (s *store) UpsertTeam(t Team) (Team, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if t.ID != 0 {
		_, err := s.db.Exec(`UPDATE teams SET league = ?, club_name = ?, division = ?, division_index = ?, team_name = ?,
			score_r1 = ?, score_r2 = ?, score_r3 = ?, score_r4 = ?, score_r5 = ? WHERE id = ?`,
			t.League, t.ClubName, t.Division, t.DivisionIndex, t.TeamName,
			t.Scores[0], t.Scores[1], t.Scores[2], t.Scores[3], t.Scores[4], t.ID)
		return t, err
	}

	_, err := s.db.Exec(`
		INSERT INTO teams (league, club_name, division, division_index, team_name, score_r1, score_r2, score_r3, score_r4, score_r5)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(league, club_name, division, division_index) DO UPDATE SET
			team_name = excluded.team_name,
			score_r1 = excluded.score_r1,
			score_r2 = excluded.score_r2,
			score_r3 = excluded.score_r3,
			score_r4 = excluded.score_r4,
			score_r5 = excluded.score_r5`,
		t.League, t.ClubName, t.Division, t.DivisionIndex, t.TeamName,
		t.Scores[0], t.Scores[1], t.Scores[2], t.Scores[3], t.Scores[4])
	if err != nil {
		return Team{}, fmt.Errorf("failed to upsert team %s: %w", t.TeamName, err)
	}

	err = s.db.QueryRow(`SELECT id FROM teams WHERE league = ? AND club_name = ? AND division = ? AND division_index = ?`,
		t.League, t.ClubName, t.Division, t.DivisionIndex).Scan(&t.ID)
	return t, err
}

// ResetScores clears the seeding points of every team in a league division.
func (s *store) ResetScores(league string, d division.Division) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec(`UPDATE teams SET score_r1 = 0, score_r2 = 0, score_r3 = 0, score_r4 = 0, score_r5 = 0
		WHERE league = ? AND division = ?`, league, d)
	return err
}

func (s *store) queryTeams(query string, args ...any) ([]Team, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	teams := []Team{}
	for rows.Next() {
		t, err := scanTeam(rows)
		if err != nil {
			log.Error("Failed to scan team row", "error", err)
			continue
		}
		teams = append(teams, *t)
	}
	return teams, rows.Err()
}

// scanTeam is a helper function to scan a single team row.
func scanTeam(scanner interface{ Scan(...any) error }) (*Team, error) {
	var t Team
	err := scanner.Scan(&t.ID, &t.League, &t.ClubName, &t.Division, &t.DivisionIndex, &t.TeamName,
		&t.Scores[0], &t.Scores[1], &t.Scores[2], &t.Scores[3], &t.Scores[4])
	if err != nil {
		return nil, err
	}
	return &t, nil
}
