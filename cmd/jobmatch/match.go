package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/chalinh/jobmatch/internal/config"
	"github.com/chalinh/jobmatch/internal/matching"
	"github.com/chalinh/jobmatch/internal/observability"
	"github.com/chalinh/jobmatch/internal/store"
)

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Rank stored postings against a candidate profile",
	Long:  "Score every stored posting against a candidate profile JSON file and print the top matches with their component breakdowns.",
	RunE:  runMatch,
}

var (
	matchProfileFile string
	matchDatabaseURL string
	matchTopN        int
	matchLocation    string
	matchJSONOutput  bool
	matchVerbose     bool
	matchJSONLogs    bool
)

func init() {
	matchCmd.Flags().StringVarP(&matchProfileFile, "profile", "p", "", "Path to candidate profile JSON (required)")
	matchCmd.Flags().StringVar(&matchDatabaseURL, "db-url", "", "Database URL (or DATABASE_URL env var)")
	matchCmd.Flags().IntVar(&matchTopN, "top", 20, "Number of matches to return (0 returns all)")
	matchCmd.Flags().StringVar(&matchLocation, "location", "", "Only consider postings in this location")
	matchCmd.Flags().BoolVar(&matchJSONOutput, "json", false, "Print matches as JSON instead of a table")
	matchCmd.Flags().BoolVarP(&matchVerbose, "verbose", "v", false, "Print match diagnostics")
	matchCmd.Flags().BoolVar(&matchJSONLogs, "json-logs", false, "Emit structured JSON logs")
	_ = matchCmd.MarkFlagRequired("profile")

	rootCmd.AddCommand(matchCmd)
}

func runMatch(cmd *cobra.Command, _ []string) error {
	fileCfg, err := loadFileConfig()
	if err != nil {
		return err
	}
	flagCfg := config.Config{
		DatabaseURL: matchDatabaseURL,
		Verbose:     matchVerbose,
		JSONLogs:    matchJSONLogs,
	}
	// The top flag carries a non-zero default, so only an explicit flag
	// value takes part in the merge.
	if cmd.Flags().Changed("top") {
		flagCfg.TopN = matchTopN
	}
	cfg := (&flagCfg).MergeWithDefaults(*fileCfg)
	matchDatabaseURL = cfg.DatabaseURL
	matchVerbose = cfg.Verbose
	matchJSONLogs = cfg.JSONLogs
	if !cmd.Flags().Changed("top") {
		matchTopN = cfg.TopN
	}

	log := newLogger(matchJSONLogs, matchVerbose)
	defer func() { _ = log.Sync() }()

	if matchDatabaseURL == "" {
		matchDatabaseURL = os.Getenv("DATABASE_URL")
	}
	if matchDatabaseURL == "" {
		return fmt.Errorf("database URL is required (set DATABASE_URL environment variable or use --db-url)")
	}

	profileBytes, err := os.ReadFile(matchProfileFile)
	if err != nil {
		return fmt.Errorf("failed to read profile file: %w", err)
	}
	var profile matching.Profile
	if err := json.Unmarshal(profileBytes, &profile); err != nil {
		return fmt.Errorf("failed to parse profile file: %w", err)
	}

	ctx := context.Background()
	st, err := store.Connect(ctx, matchDatabaseURL)
	if err != nil {
		return err
	}
	defer st.Close()

	filters := profile.Prefilter()
	if matchLocation != "" {
		filters.Location = matchLocation
	}
	postings, err := st.ListPostings(ctx, filters)
	if err != nil {
		return err
	}
	if len(postings) == 0 {
		return fmt.Errorf("no postings in the database match the filters")
	}

	matches, err := matching.NewMatcher().Match(&profile, postings, matchTopN)
	if err != nil {
		return err
	}

	if matchJSONOutput {
		jsonBytes, err := json.MarshalIndent(matches, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal matches: %w", err)
		}
		fmt.Println(string(jsonBytes))
		return nil
	}

	observability.NewPrinter(os.Stdout).PrintMatches(matches)
	return nil
}
