package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTempFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return p
}

func TestLoadYAML(t *testing.T) {
	d := t.TempDir()
	p := writeTempFile(t, d, "cfg.yaml", `
http:
  addr: ":9999"
model:
  backend: openai
  name: capable
  timeout_seconds: 30
log:
  file: /tmp/askd.log
evaluation:
  report_percentage: true
  query_cases:
    - input: What is 3 + 3?
      expected: "6"
`)
	cfg, err := Load(p)
	if err != nil { t.Fatalf("load: %v", err) }
	if cfg.HTTP.Addr != ":9999" || cfg.Model.Backend != "openai" || cfg.Model.Name != "capable" || cfg.Model.TimeoutSeconds != 30 {
		t.Fatalf("unexpected cfg: %+v", cfg)
	}
	if cfg.Log.File != "/tmp/askd.log" || cfg.Log.Level != DefaultLogLevel {
		t.Fatalf("unexpected log cfg: %+v", cfg.Log)
	}
	if !cfg.Evaluation.ReportPercentage || len(cfg.Evaluation.QueryCases) != 1 || cfg.Evaluation.QueryCases[0].Expected != "6" {
		t.Fatalf("unexpected evaluation cfg: %+v", cfg.Evaluation)
	}
	if cfg.HTTP.MaxBodyBytes != DefaultMaxBodyBytes {
		t.Fatalf("defaults not kept: %d", cfg.HTTP.MaxBodyBytes)
	}
}

func TestLoadJSON(t *testing.T) {
	d := t.TempDir()
	p := writeTempFile(t, d, "cfg.json", `{"http":{"addr":":7070","swagger":true},"model":{"name":"gemini-1.5-pro"},"evaluation":{"summary_cases":[{"input":"one two three"}]}}`)
	cfg, err := Load(p)
	if err != nil { t.Fatalf("load: %v", err) }
	if cfg.HTTP.Addr != ":7070" || !cfg.HTTP.Swagger || cfg.Model.Name != "gemini-1.5-pro" || cfg.Model.Backend != DefaultBackend {
		t.Fatalf("unexpected cfg: %+v", cfg)
	}
	if len(cfg.Evaluation.SummaryCases) != 1 {
		t.Fatalf("summary cases: %+v", cfg.Evaluation.SummaryCases)
	}
}

func TestLoadTOML(t *testing.T) {
	d := t.TempDir()
	p := writeTempFile(t, d, "cfg.toml", "[http]\naddr=\":8081\"\n[http.cors]\nenabled=true\nallowed_origins=[\"*\"]\n[log]\nlevel=\"debug\"\n")
	cfg, err := Load(p)
	if err != nil { t.Fatalf("load: %v", err) }
	if cfg.HTTP.Addr != ":8081" || !cfg.HTTP.CORS.Enabled || len(cfg.HTTP.CORS.AllowedOrigins) != 1 || cfg.Log.Level != "debug" {
		t.Fatalf("unexpected cfg: %+v", cfg)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(""); err == nil { t.Fatalf("expected error on empty path") }
	d := t.TempDir()
	p := writeTempFile(t, d, "cfg.txt", "not supported")
	if _, err := Load(p); err == nil { t.Fatalf("expected unsupported extension error") }
	p = writeTempFile(t, d, "bad.json", "{")
	if _, err := Load(p); err == nil { t.Fatalf("expected parse error") }
	if _, err := Load(filepath.Join(d, "missing.yaml")); err == nil { t.Fatalf("expected missing file error") }
}
