package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"askd/internal/assistant"
	"askd/internal/config"
	"askd/internal/llm"
)

// loadConfig resolves settings with precedence flags > environment > file > defaults.
func loadConfig(o *cliOptions) (config.Config, error) {
	cfg := config.Default()
	if o.ConfigPath != "" {
		var err error
		if cfg, err = config.Load(o.ConfigPath); err != nil {
			return cfg, fmt.Errorf("config: %w", err)
		}
	}
	if err := config.LoadDotEnv(o.EnvFile); err != nil {
		return cfg, err
	}
	config.ApplyEnv(&cfg)
	if o.Backend != "" {
		cfg.Model.Backend = strings.ToLower(o.Backend)
		// the backend decides which API key variable applies
		if v := os.Getenv(config.APIKeyEnv(cfg.Model.Backend)); v != "" {
			cfg.Model.APIKey = v
		}
	}
	if o.Addr != "" {
		cfg.HTTP.Addr = o.Addr
	}
	if o.Model != "" {
		cfg.Model.Name = o.Model
	}
	if o.LogLevel != "" {
		cfg.Log.Level = o.LogLevel
	}
	if o.LogFile != "" {
		cfg.Log.File = o.LogFile
	}
	if origins := splitCSV(o.CORSOrigins); len(origins) > 0 {
		cfg.HTTP.CORS.Enabled = true
		cfg.HTTP.CORS.AllowedOrigins = origins
	}
	if o.Swagger {
		cfg.HTTP.Swagger = true
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// newService builds the model client and the service on top of it. The
// caller owns the returned client and must Close it.
func newService(ctx context.Context, cfg config.Config, log zerolog.Logger) (*assistant.Service, *llm.Client, error) {
	client, err := llm.New(ctx, llm.Settings{
		Backend: cfg.Model.Backend,
		Model:   cfg.Model.Name,
		APIKey:  cfg.Model.APIKey,
		BaseURL: cfg.Model.BaseURL,
		Timeout: time.Duration(cfg.Model.TimeoutSeconds) * time.Second,
	})
	if err != nil {
		return nil, nil, err
	}
	svc := assistant.NewWithConfig(assistant.ServiceConfig{
		Generator:        client,
		Logger:           log,
		QueryCases:       cfg.Evaluation.QueryCases,
		SummaryCases:     cfg.Evaluation.SummaryCases,
		ReportPercentage: cfg.Evaluation.ReportPercentage,
	})
	return svc, client, nil
}

// splitCSV splits a comma-separated flag value, dropping blanks.
func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
