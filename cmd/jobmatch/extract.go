package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/chalinh/jobmatch/internal/config"
	"github.com/chalinh/jobmatch/internal/observability"
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract skills and education requirements from a job posting",
	Long:  "Extract the skill set and the required education level and major from a job posting text file, printing JSON or a verbose breakdown.",
	RunE:  runExtract,
}

var (
	extractInputFile   string
	extractResourceDir string
	extractAPIKey      string
	extractVerbose     bool
	extractJSONLogs    bool
)

func init() {
	extractCmd.Flags().StringVarP(&extractInputFile, "in", "i", "", "Path to job posting text file (required unless set in --config)")
	extractCmd.Flags().StringVar(&extractResourceDir, "resources", "", "Directory overriding the embedded reference tables")
	extractCmd.Flags().StringVar(&extractAPIKey, "api-key", "", "Gemini API key (overrides GEMINI_API_KEY env var)")
	extractCmd.Flags().BoolVarP(&extractVerbose, "verbose", "v", false, "Print per-strategy and per-stage diagnostics")
	extractCmd.Flags().BoolVar(&extractJSONLogs, "json-logs", false, "Emit structured JSON logs")

	rootCmd.AddCommand(extractCmd)
}

// extractOutput is the machine-readable result of one extraction.
type extractOutput struct {
	Skills    []string `json:"skills"`
	Education struct {
		Level string `json:"level"`
		Major string `json:"major"`
	} `json:"education"`
}

func runExtract(_ *cobra.Command, _ []string) error {
	fileCfg, err := loadFileConfig()
	if err != nil {
		return err
	}
	cfg := (&config.Config{
		Input:    extractInputFile,
		Resource: extractResourceDir,
		APIKey:   extractAPIKey,
		Verbose:  extractVerbose,
		JSONLogs: extractJSONLogs,
	}).MergeWithDefaults(*fileCfg)
	extractInputFile = cfg.Input
	extractResourceDir = cfg.Resource
	extractAPIKey = cfg.APIKey
	extractVerbose = cfg.Verbose
	extractJSONLogs = cfg.JSONLogs

	if extractInputFile == "" {
		return fmt.Errorf("input file is required (use --in or set 'input' in the config file)")
	}

	log := newLogger(extractJSONLogs, extractVerbose)
	defer func() { _ = log.Sync() }()

	text, err := os.ReadFile(extractInputFile)
	if err != nil {
		return fmt.Errorf("failed to read input file: %w", err)
	}

	ctx := context.Background()
	engine, resolver := buildAnalyzers(extractResourceDir, resolveAPIKey(extractAPIKey), 0, log)

	skills, stats := engine.ExtractSkillsStats(ctx, string(text))
	edu := resolver.Resolve(ctx, string(text))

	if extractVerbose {
		printer := observability.NewPrinter(os.Stderr)
		printer.PrintExtraction(stats)
		printer.PrintEducation(edu)
	}

	var out extractOutput
	out.Skills = skills
	out.Education.Level = edu.Level
	out.Education.Major = edu.Major

	jsonBytes, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal result: %w", err)
	}
	fmt.Println(string(jsonBytes))
	return nil
}
