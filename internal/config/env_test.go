package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"askd/pkg/types"
)

func TestApplyEnvOverrides(t *testing.T) {
	t.Setenv(EnvAddr, ":1234")
	t.Setenv(EnvModel, "capable")
	t.Setenv(EnvLogLevel, "error")
	t.Setenv(EnvLogFile, "")
	t.Setenv(EnvGeminiAPIKey, "g-key")
	t.Setenv(EnvOpenAIAPIKey, "o-key")
	t.Setenv(EnvBackend, "")

	cfg := Default()
	ApplyEnv(&cfg)
	if cfg.HTTP.Addr != ":1234" || cfg.Model.Name != "capable" || cfg.Log.Level != "error" {
		t.Fatalf("unexpected cfg: %+v", cfg)
	}
	if cfg.Log.File != DefaultLogFile {
		t.Fatalf("empty env must not override: %q", cfg.Log.File)
	}
	if cfg.Model.APIKey != "g-key" {
		t.Fatalf("api key=%q", cfg.Model.APIKey)
	}
}

func TestApplyEnvPicksKeyForBackend(t *testing.T) {
	t.Setenv(EnvBackend, "OpenAI")
	t.Setenv(EnvGeminiAPIKey, "g-key")
	t.Setenv(EnvOpenAIAPIKey, "o-key")
	cfg := Default()
	ApplyEnv(&cfg)
	if cfg.Model.Backend != "openai" || cfg.Model.APIKey != "o-key" {
		t.Fatalf("unexpected model cfg: %+v", cfg.Model)
	}
}

func TestLoadDotEnv(t *testing.T) {
	d := t.TempDir()
	if err := LoadDotEnv(filepath.Join(d, "missing.env")); err != nil {
		t.Fatalf("missing .env should be ignored: %v", err)
	}
	p := filepath.Join(d, ".env")
	if err := os.WriteFile(p, []byte("ASKD_TEST_DOTENV=from-file\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("ASKD_TEST_DOTENV", "")
	os.Unsetenv("ASKD_TEST_DOTENV")
	if err := LoadDotEnv(p); err != nil {
		t.Fatalf("load: %v", err)
	}
	if got := os.Getenv("ASKD_TEST_DOTENV"); got != "from-file" {
		t.Fatalf("got %q", got)
	}
}

func TestValidate(t *testing.T) {
	cfg := Default()
	err := cfg.Validate()
	if err == nil || !strings.Contains(err.Error(), EnvGeminiAPIKey) {
		t.Fatalf("expected missing key error, got %v", err)
	}
	cfg.Model.APIKey = "k"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("valid cfg rejected: %v", err)
	}

	bad := cfg
	bad.Model.Backend = "palm"
	if err := bad.Validate(); err == nil {
		t.Fatalf("expected unknown backend error")
	}
	bad = cfg
	bad.HTTP.Addr = " "
	if err := bad.Validate(); err == nil {
		t.Fatalf("expected addr error")
	}
	bad = cfg
	bad.Model.TimeoutSeconds = -1
	if err := bad.Validate(); err == nil {
		t.Fatalf("expected timeout error")
	}
	bad = cfg
	bad.Evaluation.SummaryCases = []types.SummaryCase{{Input: ""}}
	if err := bad.Validate(); err == nil {
		t.Fatalf("expected empty case error")
	}
}
