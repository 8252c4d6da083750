// Package main provides the jobmatch CLI: skill and education extraction
// from job postings, scrape ingestion, page fetching, and profile matching.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "jobmatch",
	Short: "Job posting analysis and matching",
	Long:  "jobmatch extracts skills and education requirements from job postings, ingests scraped job dumps into PostgreSQL, and ranks postings against a candidate profile.",
}

var configFile string

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Path to a JSON config file supplying flag defaults")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
