package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/spf13/cobra"
)

var (
	controlID int64
	round     int
	divName   string
	knockout  bool
	dsqOne    string
	dsqTwo    string
	date      string
)

func init() {
	rootCmd.AddCommand(healthCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(metricsCmd)
	rootCmd.AddCommand(controlCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(racesCmd)
	rootCmd.AddCommand(resultCmd)
	rootCmd.AddCommand(teamsCmd)

	controlCmd.AddCommand(controlCreateCmd)
	controlCmd.AddCommand(controlLatestCmd)
	controlCreateCmd.Flags().StringVar(&date, "date", "", "Race day as YYYY-MM-DD")

	for _, cmd := range []*cobra.Command{generateCmd, racesCmd} {
		cmd.Flags().Int64Var(&controlID, "control", 0, "Race control ID (defaults to the latest)")
		cmd.Flags().IntVar(&round, "round", 1, "Round number")
	}
	generateCmd.Flags().BoolVar(&knockout, "knockout", false, "Generate a knockout round")
	racesCmd.Flags().StringVar(&divName, "division", "", "Only list races of this division")
	teamsCmd.Flags().StringVar(&divName, "division", "", "Only list teams of this division")
	resultCmd.Flags().StringVar(&dsqOne, "dsq1", "", "Disqualification reason for team one")
	resultCmd.Flags().StringVar(&dsqTwo, "dsq2", "", "Disqualification reason for team two")
}

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check the health of the server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/health", nil)
	},
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Get the stored totals of rounds and results",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/stats", nil)
	},
}

var metricsCmd = &cobra.Command{
	Use:   "metrics",
	Short: "Get application metrics",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/metrics", nil)
	},
}

var controlCmd = &cobra.Command{
	Use:   "control",
	Short: "Manage race days",
}

var controlCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Open a new race day",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performPostRequest("/controls", nil, map[string]string{"date": date})
	},
}

var controlLatestCmd = &cobra.Command{
	Use:   "latest",
	Short: "Show the latest race day",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/controls/latest", nil)
	},
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate the running order of a round",
	RunE: func(cmd *cobra.Command, args []string) error {
		q := roundQuery()
		if knockout {
			q.Set("knockout", "true")
		}
		return performPostRequest("/rounds/generate", q, nil)
	},
}

var racesCmd = &cobra.Command{
	Use:   "races",
	Short: "List the running order of a round",
	RunE: func(cmd *cobra.Command, args []string) error {
		q := roundQuery()
		if divName != "" {
			q.Set("division", divName)
		}
		return performGetRequest("/races", q)
	},
}

var resultCmd = &cobra.Command{
	Use:   "result <race-id> <winner>",
	Short: "Record a race result; winner is 1 or 2, or 0 to clear it",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		raceID, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid race id %q: %w", args[0], err)
		}
		winner, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid winner %q: %w", args[1], err)
		}
		return performPostRequest("/races/result", nil, map[string]any{
			"race_id":      raceID,
			"winner":       winner,
			"team_one_dsq": dsqOne,
			"team_two_dsq": dsqTwo,
		})
	},
}

var teamsCmd = &cobra.Command{
	Use:   "teams",
	Short: "List the seeded teams",
	RunE: func(cmd *cobra.Command, args []string) error {
		q := url.Values{}
		if divName != "" {
			q.Set("division", divName)
		}
		return performGetRequest("/teams", q)
	},
}

func roundQuery() url.Values {
	q := url.Values{}
	q.Set("round", strconv.Itoa(round))
	if controlID > 0 {
		q.Set("control", strconv.FormatInt(controlID, 10))
	}
	return q
}

func endpointURL(endpoint string, q url.Values) string {
	if q == nil {
		q = url.Values{}
	}
	if dryRun {
		q.Set("dry_run", "true")
	}
	if len(q) == 0 {
		return host + endpoint
	}
	return host + endpoint + "?" + q.Encode()
}

func performGetRequest(endpoint string, q url.Values) error {
	url := endpointURL(endpoint, q)
	fmt.Printf("Making request to %s\n", url)

	resp, err := http.Get(url)
	if err != nil {
		return fmt.Errorf("failed to make request: %w", err)
	}
	return printResponse(resp)
}

func performPostRequest(endpoint string, q url.Values, body any) error {
	url := endpointURL(endpoint, q)
	fmt.Printf("Making request to %s\n", url)

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	resp, err := http.Post(url, "application/json", reader)
	if err != nil {
		return fmt.Errorf("failed to make request: %w", err)
	}
	return printResponse(resp)
}

func printResponse(resp *http.Response) error {
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	fmt.Printf("Status Code: %d\n", resp.StatusCode)
	fmt.Println("Response Body:")
	fmt.Println(string(body))

	return nil
}
