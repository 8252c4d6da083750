package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/chalinh/jobmatch/internal/config"
	"github.com/chalinh/jobmatch/internal/fetch"
	"github.com/chalinh/jobmatch/internal/store"
)

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Fetch a job posting page and extract its text",
	Long:  "Fetch a job posting URL, extract the posting text with board-specific selectors, and print it. With a database URL, fetched pages are cached and served from cache while fresh.",
	RunE:  runFetch,
}

var (
	fetchURL         string
	fetchOutputFile  string
	fetchDatabaseURL string
	fetchUseBrowser  bool
	fetchSkipCache   bool
	fetchVerbose     bool
	fetchJSONLogs    bool
)

func init() {
	fetchCmd.Flags().StringVarP(&fetchURL, "url", "u", "", "Job posting URL (required unless set in --config)")
	fetchCmd.Flags().StringVarP(&fetchOutputFile, "out", "o", "", "Write extracted text to this file instead of stdout")
	fetchCmd.Flags().StringVar(&fetchDatabaseURL, "db-url", "", "Database URL for the page cache (or DATABASE_URL env var)")
	fetchCmd.Flags().BoolVar(&fetchUseBrowser, "use-browser", false, "Force headless browser rendering")
	fetchCmd.Flags().BoolVar(&fetchSkipCache, "skip-cache", false, "Bypass the page cache")
	fetchCmd.Flags().BoolVarP(&fetchVerbose, "verbose", "v", false, "Print fetch diagnostics")
	fetchCmd.Flags().BoolVar(&fetchJSONLogs, "json-logs", false, "Emit structured JSON logs")

	rootCmd.AddCommand(fetchCmd)
}

func runFetch(_ *cobra.Command, _ []string) error {
	fileCfg, err := loadFileConfig()
	if err != nil {
		return err
	}
	cfg := (&config.Config{
		JobURL:      fetchURL,
		DatabaseURL: fetchDatabaseURL,
		UseBrowser:  fetchUseBrowser,
		Verbose:     fetchVerbose,
		JSONLogs:    fetchJSONLogs,
	}).MergeWithDefaults(*fileCfg)
	fetchURL = cfg.JobURL
	fetchDatabaseURL = cfg.DatabaseURL
	fetchUseBrowser = cfg.UseBrowser
	fetchVerbose = cfg.Verbose
	fetchJSONLogs = cfg.JSONLogs

	if fetchURL == "" {
		return fmt.Errorf("URL is required (use --url or set 'job_url' in the config file)")
	}

	log := newLogger(fetchJSONLogs, fetchVerbose)
	defer func() { _ = log.Sync() }()

	ctx := context.Background()

	if fetchDatabaseURL == "" {
		fetchDatabaseURL = os.Getenv("DATABASE_URL")
	}

	var st *store.Store
	if fetchDatabaseURL != "" {
		var err error
		st, err = store.Connect(ctx, fetchDatabaseURL)
		if err != nil {
			return err
		}
		defer st.Close()
		if err := st.EnsurePageSchema(ctx); err != nil {
			return err
		}
	}

	text, err := fetchText(ctx, st, log)
	if err != nil {
		return err
	}

	if fetchOutputFile != "" {
		if err := os.WriteFile(fetchOutputFile, []byte(text), 0644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
		fmt.Fprintf(os.Stdout, "Wrote %d bytes to %s\n", len(text), fetchOutputFile)
		return nil
	}
	fmt.Println(text)
	return nil
}

func fetchText(ctx context.Context, st *store.Store, log *zap.Logger) (string, error) {
	platform := fetch.DetectPlatform(fetchURL)

	if !fetchUseBrowser {
		fetcher := fetch.NewCachedFetcher(st, &fetch.CachedFetcherConfig{SkipCache: fetchSkipCache})
		result, err := fetcher.Fetch(ctx, fetchURL)
		if err != nil {
			return "", err
		}
		if !fetch.ShouldUseBrowser(result.Text) {
			return result.Text, nil
		}
		log.Info("content too short, falling back to browser rendering",
			zap.String("url", fetchURL))
	}

	html, err := fetch.WithBrowser(ctx, fetchURL, 60*time.Second, log)
	if err != nil {
		return "", err
	}
	return fetch.ExtractMainText(html,
		fetch.PlatformContentSelectors(platform),
		fetch.PlatformNoiseSelectors(platform)...)
}
