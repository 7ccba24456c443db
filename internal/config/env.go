package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variables recognized by ApplyEnv.
const (
	EnvGeminiAPIKey = "GEMINI_API_KEY"
	EnvOpenAIAPIKey = "OPENAI_API_KEY"
	EnvAddr         = "ASKD_ADDR"
	EnvBackend      = "ASKD_BACKEND"
	EnvModel        = "ASKD_MODEL"
	EnvLogLevel     = "ASKD_LOG_LEVEL"
	EnvLogFile      = "ASKD_LOG_FILE"
)

// LoadDotEnv loads KEY=VALUE pairs from path into the process environment
// without overriding variables that are already set. A missing file is not an error.
func LoadDotEnv(path string) error {
	if path == "" {
		path = ".env"
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

// ApplyEnv overlays environment variables on cfg. Non-empty values win over
// whatever the config file set.
func ApplyEnv(cfg *Config) {
	if v := os.Getenv(EnvAddr); v != "" {
		cfg.HTTP.Addr = v
	}
	if v := os.Getenv(EnvBackend); v != "" {
		cfg.Model.Backend = strings.ToLower(v)
	}
	if v := os.Getenv(EnvModel); v != "" {
		cfg.Model.Name = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv(EnvLogFile); v != "" {
		cfg.Log.File = v
	}
	if v := os.Getenv(APIKeyEnv(cfg.Model.Backend)); v != "" {
		cfg.Model.APIKey = v
	}
}

// APIKeyEnv names the variable holding the API key for backend.
func APIKeyEnv(backend string) string {
	if strings.EqualFold(backend, "openai") {
		return EnvOpenAIAPIKey
	}
	return EnvGeminiAPIKey
}
