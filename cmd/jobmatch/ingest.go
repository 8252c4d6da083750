package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/chalinh/jobmatch/internal/config"
	"github.com/chalinh/jobmatch/internal/ingest"
	"github.com/chalinh/jobmatch/internal/store"
)

var ingestCmd = &cobra.Command{
	Use:   "ingest",
	Short: "Analyze a raw scrape dump and load it into PostgreSQL",
	Long:  "Analyze every job in a raw scrape dump (skills, education, languages) and upsert the resulting postings into the database, keyed by source job ID.",
	RunE:  runIngest,
}

var (
	ingestInputFile   string
	ingestDatabaseURL string
	ingestResourceDir string
	ingestAPIKey      string
	ingestBatchSize   int
	ingestVerbose     bool
	ingestJSONLogs    bool
)

func init() {
	ingestCmd.Flags().StringVarP(&ingestInputFile, "in", "i", "", "Path to raw scrape dump JSON (required unless set in --config)")
	ingestCmd.Flags().StringVar(&ingestDatabaseURL, "db-url", "", "Database URL (or DATABASE_URL env var)")
	ingestCmd.Flags().StringVar(&ingestResourceDir, "resources", "", "Directory overriding the embedded reference tables")
	ingestCmd.Flags().StringVar(&ingestAPIKey, "api-key", "", "Gemini API key (overrides GEMINI_API_KEY env var)")
	ingestCmd.Flags().IntVar(&ingestBatchSize, "batch-size", 0, "Concurrent texts during extraction (default 50)")
	ingestCmd.Flags().BoolVarP(&ingestVerbose, "verbose", "v", false, "Print per-posting progress")
	ingestCmd.Flags().BoolVar(&ingestJSONLogs, "json-logs", false, "Emit structured JSON logs")

	rootCmd.AddCommand(ingestCmd)
}

func runIngest(_ *cobra.Command, _ []string) error {
	fileCfg, err := loadFileConfig()
	if err != nil {
		return err
	}
	cfg := (&config.Config{
		Input:       ingestInputFile,
		Resource:    ingestResourceDir,
		APIKey:      ingestAPIKey,
		DatabaseURL: ingestDatabaseURL,
		BatchSize:   ingestBatchSize,
		Verbose:     ingestVerbose,
		JSONLogs:    ingestJSONLogs,
	}).MergeWithDefaults(*fileCfg)
	ingestInputFile = cfg.Input
	ingestResourceDir = cfg.Resource
	ingestAPIKey = cfg.APIKey
	ingestDatabaseURL = cfg.DatabaseURL
	ingestBatchSize = cfg.BatchSize
	ingestVerbose = cfg.Verbose
	ingestJSONLogs = cfg.JSONLogs

	if ingestInputFile == "" {
		return fmt.Errorf("input file is required (use --in or set 'input' in the config file)")
	}

	log := newLogger(ingestJSONLogs, ingestVerbose)
	defer func() { _ = log.Sync() }()

	if ingestDatabaseURL == "" {
		ingestDatabaseURL = os.Getenv("DATABASE_URL")
	}
	if ingestDatabaseURL == "" {
		return fmt.Errorf("database URL is required (set DATABASE_URL environment variable or use --db-url)")
	}

	f, err := os.Open(ingestInputFile)
	if err != nil {
		return fmt.Errorf("failed to open input file: %w", err)
	}
	defer func() { _ = f.Close() }()

	records, err := ingest.ReadRecords(f)
	if err != nil {
		return err
	}

	ctx := context.Background()
	engine, resolver := buildAnalyzers(ingestResourceDir, resolveAPIKey(ingestAPIKey), ingestBatchSize, log)
	normalizer := ingest.NewNormalizer(engine, resolver, log)

	st, err := store.Connect(ctx, ingestDatabaseURL)
	if err != nil {
		return err
	}
	defer st.Close()

	if err := st.EnsureSchema(ctx); err != nil {
		return err
	}

	postings := normalizer.NormalizeAll(ctx, records)

	stored := 0
	withLevel := 0
	totalSkills := 0
	for i := range postings {
		if err := st.UpsertPosting(ctx, &postings[i]); err != nil {
			return err
		}
		stored++
		totalSkills += len(postings[i].Skills)
		if postings[i].EducationLevel != "" {
			withLevel++
		}
	}

	fmt.Fprintf(os.Stdout, "Ingested %d postings (%d skills total, %d with education level)\n",
		stored, totalSkills, withLevel)
	return nil
}
