package main

import (
	"context"
	"os"

	"go.uber.org/zap"

	"github.com/chalinh/jobmatch/internal/capability"
	"github.com/chalinh/jobmatch/internal/config"
	"github.com/chalinh/jobmatch/internal/education"
	"github.com/chalinh/jobmatch/internal/extraction"
	"github.com/chalinh/jobmatch/internal/llm"
	"github.com/chalinh/jobmatch/internal/logging"
	"github.com/chalinh/jobmatch/internal/refdata"
)

// newLogger builds the CLI logger; verbose enables debug output.
func newLogger(jsonLogs, verbose bool) *zap.Logger {
	log, err := logging.New(jsonLogs, verbose)
	if err != nil {
		return zap.NewNop()
	}
	return log
}

// loadFileConfig loads and validates the --config file. Without the flag it
// returns an empty config so callers can merge unconditionally.
func loadFileConfig() (*config.Config, error) {
	if configFile == "" {
		return &config.Config{}, nil
	}
	cfg, err := config.LoadConfig(configFile)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// resolveAPIKey prefers the flag over the environment.
func resolveAPIKey(flag string) string {
	if flag != "" {
		return flag
	}
	return os.Getenv("GEMINI_API_KEY")
}

// buildProvider wires the capability provider. Without an API key the
// generator stays absent and education resolution is lexical only. The
// generator initializes lazily so commands that never hit the fallback pay
// nothing.
func buildProvider(apiKey string) *capability.Provider {
	provider := capability.Disabled()
	if apiKey == "" {
		return provider
	}
	provider.Generator = capability.NewLazyTextGenerator(func(ctx context.Context) (capability.TextGenerator, error) {
		return llm.NewGenerator(ctx, apiKey, llm.DefaultConfig(), llm.TierLite)
	})
	return provider
}

// buildAnalyzers constructs the engine and resolver over shared reference
// data.
func buildAnalyzers(resourceDir, apiKey string, batchSize int, log *zap.Logger) (*extraction.Engine, *education.Resolver) {
	store := refdata.Load(refdata.Options{Dir: resourceDir, Logger: log})
	provider := buildProvider(apiKey)

	cfg := extraction.DefaultConfig()
	if batchSize > 0 {
		cfg.BatchSize = batchSize
	}

	engine := extraction.NewEngine(cfg, store, provider, log)
	resolver := education.NewResolver(store, provider.Generator, log)
	return engine, resolver
}
