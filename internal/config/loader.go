package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"askd/internal/common/fsutil"
	"askd/pkg/types"
)

// Config holds runtime parameters for the service. It is built once at
// startup and passed to the model client, the service and the router.
type Config struct {
	HTTP       HTTPConfig       `json:"http" yaml:"http" toml:"http"`
	Model      ModelConfig      `json:"model" yaml:"model" toml:"model"`
	Log        LogConfig        `json:"log" yaml:"log" toml:"log"`
	Evaluation EvaluationConfig `json:"evaluation" yaml:"evaluation" toml:"evaluation"`
}

type HTTPConfig struct {
	Addr         string     `json:"addr" yaml:"addr" toml:"addr"`
	MaxBodyBytes int64      `json:"max_body_bytes" yaml:"max_body_bytes" toml:"max_body_bytes"`
	Swagger      bool       `json:"swagger" yaml:"swagger" toml:"swagger"`
	CORS         CORSConfig `json:"cors" yaml:"cors" toml:"cors"`
}

// CORSConfig is opt-in; when disabled no CORS middleware is installed.
type CORSConfig struct {
	Enabled        bool     `json:"enabled" yaml:"enabled" toml:"enabled"`
	AllowedOrigins []string `json:"allowed_origins" yaml:"allowed_origins" toml:"allowed_origins"`
	AllowedMethods []string `json:"allowed_methods" yaml:"allowed_methods" toml:"allowed_methods"`
	AllowedHeaders []string `json:"allowed_headers" yaml:"allowed_headers" toml:"allowed_headers"`
}

type ModelConfig struct {
	// Backend selects the hosted API: gemini or openai.
	Backend string `json:"backend" yaml:"backend" toml:"backend"`
	// Name is a model id or one of the aliases "fast" and "capable".
	Name    string `json:"name" yaml:"name" toml:"name"`
	APIKey  string `json:"api_key" yaml:"api_key" toml:"api_key"`
	BaseURL string `json:"base_url" yaml:"base_url" toml:"base_url"`
	// TimeoutSeconds bounds a single model call; 0 disables the bound.
	TimeoutSeconds int `json:"timeout_seconds" yaml:"timeout_seconds" toml:"timeout_seconds"`
}

type LogConfig struct {
	File       string `json:"file" yaml:"file" toml:"file"`
	Level      string `json:"level" yaml:"level" toml:"level"`
	MaxSizeMB  int    `json:"max_size_mb" yaml:"max_size_mb" toml:"max_size_mb"`
	MaxBackups int    `json:"max_backups" yaml:"max_backups" toml:"max_backups"`
	MaxAgeDays int    `json:"max_age_days" yaml:"max_age_days" toml:"max_age_days"`
}

// EvaluationConfig replaces the built-in smoke-test suites when the case
// lists are non-empty.
type EvaluationConfig struct {
	ReportPercentage bool                `json:"report_percentage" yaml:"report_percentage" toml:"report_percentage"`
	QueryCases       []types.QueryCase   `json:"query_cases" yaml:"query_cases" toml:"query_cases"`
	SummaryCases     []types.SummaryCase `json:"summary_cases" yaml:"summary_cases" toml:"summary_cases"`
}

// Load reads a configuration file based on its extension and overlays it on
// Default(). Supports: .yaml/.yml, .json, .toml
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, fmt.Errorf("empty config path")
	}
	p, err := fsutil.ExpandHome(path)
	if err != nil {
		return cfg, err
	}
	b, err := os.ReadFile(p)
	if err != nil {
		return cfg, err
	}
	switch ext := strings.ToLower(filepath.Ext(p)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return cfg, fmt.Errorf("parse %s: %w", p, err)
		}
	case ".json":
		if err := json.Unmarshal(b, &cfg); err != nil {
			return cfg, fmt.Errorf("parse %s: %w", p, err)
		}
	case ".toml":
		if err := toml.Unmarshal(b, &cfg); err != nil {
			return cfg, fmt.Errorf("parse %s: %w", p, err)
		}
	default:
		return cfg, fmt.Errorf("unsupported config extension: %s", ext)
	}
	return cfg, nil
}
