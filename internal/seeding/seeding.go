// Package seeding imports a division's league table so that new rounds seed
// teams by their points.
package seeding

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/race-organiser/internal/club"
	"github.com/mauv0809/race-organiser/internal/division"
	"github.com/mauv0809/race-organiser/internal/team"
)

// ErrEmptyTeamName is returned for entries without a team name.
var ErrEmptyTeamName = errors.New("team name is required")

// New creates a new Seeder.
func New(store Store) *Seeder {
	return &Seeder{store: store}
}

// SeedTeams resets the scores of a league's division and stores the given
// entries. Entry names are matched to clubs loosely; unknown clubs are
// created. Each club's team count is raised to cover the seeded team index.
func (s *Seeder) SeedTeams(league string, d division.Division, entries []Entry, dryRun bool) (Summary, error) {
	summary := Summary{League: league, Division: d, DryRun: dryRun}
	if d.Index() < 0 {
		return summary, fmt.Errorf("unknown division %q", d)
	}
	for i, e := range entries {
		if strings.TrimSpace(e.TeamName) == "" {
			return summary, fmt.Errorf("entry %d: %w", i+1, ErrEmptyTeamName)
		}
	}

	clubs, err := s.store.GetClubs(league)
	if err != nil {
		return summary, fmt.Errorf("failed to load clubs: %w", err)
	}

	if dryRun {
		log.Info("[Dry Run] Would reset scores", "league", league, "division", d)
	} else if err := s.store.ResetScores(league, d); err != nil {
		return summary, fmt.Errorf("failed to reset scores: %w", err)
	}

	for _, e := range entries {
		clubName, idx := team.ParseTeamName(e.TeamName)
		c, ok := club.Find(clubs, clubName)
		if !ok {
			c = club.Club{League: league, ClubName: clubName}
			c.SetTeamCount(d, idx)
			if !dryRun {
				if c, err = s.store.AddClub(c); err != nil {
					return summary, err
				}
			}
			clubs = append(clubs, c)
			summary.ClubsCreated = append(summary.ClubsCreated, c.ClubName)
			log.Info("Created club from seeding", "club", c.ClubName, "league", league)
		}

		t := team.Team{
			League:        league,
			ClubName:      c.ClubName,
			Division:      d,
			DivisionIndex: idx,
			TeamName:      team.Name(c.ClubName, idx),
			Scores:        e.Scores,
		}
		if dryRun {
			summary.Teams = append(summary.Teams, t)
			continue
		}
		if t, err = s.store.UpsertTeam(t); err != nil {
			return summary, fmt.Errorf("failed to store %s: %w", e.TeamName, err)
		}
		if err := s.store.EnsureTeamCount(league, c.ClubName, d, idx); err != nil {
			return summary, fmt.Errorf("failed to update team count for %s: %w", c.ClubName, err)
		}
		summary.Teams = append(summary.Teams, t)
	}

	team.Sort(summary.Teams)
	log.Info("Seeded division", "league", league, "division", d, "teams", len(summary.Teams), "new_clubs", len(summary.ClubsCreated), "dry_run", dryRun)
	return summary, nil
}
