package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/mauv0809/race-organiser/internal/club"
	"github.com/mauv0809/race-organiser/internal/database"
	"github.com/mauv0809/race-organiser/internal/division"
	"github.com/mauv0809/race-organiser/internal/seeding"
	"github.com/mauv0809/race-organiser/internal/team"
	"github.com/spf13/cobra"
)

var (
	league    string
	divName   string
	dryRun    bool
	migration string
)

// seedStore joins the stores the seeder writes to.
type seedStore struct {
	club.ClubStore
	team.TeamStore
}

var rootCmd = &cobra.Command{
	Use:   "organiser-seed <league-table.csv>",
	Short: "Seed a division's teams from a league table",
	Long: `Reads a league table exported as CSV (team name followed by up to five
round scores) and seeds the teams of one division, creating clubs as needed.`,
	Args: cobra.ExactArgs(1),
	RunE: run,
}

func init() {
	rootCmd.Flags().StringVar(&league, "league", "", "League the teams race in (defaults to LEAGUE)")
	rootCmd.Flags().StringVar(&divName, "division", "", "Division to seed: Mixed, Ladies or Board")
	rootCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Parse and log the seeding without writing it")
	rootCmd.Flags().StringVar(&migration, "migrations", "./migrations", "Migrations directory")
	rootCmd.MarkFlagRequired("division")
}

func run(cmd *cobra.Command, args []string) error {
	d, err := division.Parse(divName)
	if err != nil {
		return err
	}
	if league == "" {
		league = os.Getenv("LEAGUE")
	}
	if league == "" {
		return fmt.Errorf("a league is required, set --league or LEAGUE")
	}

	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("failed to open league table: %w", err)
	}
	defer f.Close()

	entries, err := seeding.ParseCSV(f)
	if err != nil {
		return fmt.Errorf("failed to parse league table: %w", err)
	}
	log.Info("Parsed league table", "file", args[0], "teams", len(entries))

	dbName := os.Getenv("DB_NAME")
	if dbName == "" {
		dbName = "organiser.db"
	}
	// Leaving TURSO_PRIMARY_URL unset seeds the local database.
	db, teardown, err := database.InitDB(dbName, os.Getenv("TURSO_PRIMARY_URL"), os.Getenv("TURSO_AUTH_TOKEN"), migration)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer teardown()

	seeder := seeding.New(seedStore{ClubStore: club.New(db), TeamStore: team.New(db)})
	summary, err := seeder.SeedTeams(league, d, entries, dryRun)
	if err != nil {
		return err
	}

	for _, t := range summary.Teams {
		log.Info("Seeded team", "team", t.TeamName, "total", t.Total())
	}
	log.Info("Seeding complete", "league", summary.League, "division", summary.Division, "teams", len(summary.Teams), "clubs_created", summary.ClubsCreated, "dry_run", summary.DryRun)
	return nil
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Warn("No .env file found, reading from environment variables")
	}
	if err := rootCmd.Execute(); err != nil {
		log.Error("Seeding failed", "error", err)
		os.Exit(1)
	}
}
