package e2e

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/rs/zerolog"

	"askd/internal/assistant"
	"askd/internal/config"
	"askd/internal/httpapi"
	"askd/internal/llm"
)

// fakeModel speaks the chat completions protocol. Evaluation prompts are
// answered from the default suites; summarize prompts get a short reply;
// anything else is echoed back.
type fakeModel struct {
	mu      sync.Mutex
	prompts []string
	fail    bool
}

func (f *fakeModel) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Model    string `json:"model"`
		Messages []struct {
			Content string `json:"content"`
		} `json:"messages"`
	}
	b, _ := io.ReadAll(r.Body)
	_ = json.Unmarshal(b, &body)
	prompt := ""
	if len(body.Messages) > 0 {
		prompt = body.Messages[len(body.Messages)-1].Content
	}
	f.mu.Lock()
	f.prompts = append(f.prompts, prompt)
	fail := f.fail
	f.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	if fail {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":{"message":"quota exceeded","type":"invalid_request_error"}}`))
		return
	}
	_ = json.NewEncoder(w).Encode(map[string]any{
		"id":      "chatcmpl-e2e",
		"object":  "chat.completion",
		"created": 1700000000,
		"model":   body.Model,
		"choices": []map[string]any{{
			"index":         0,
			"finish_reason": "stop",
			"message":       map[string]any{"role": "assistant", "content": "  " + answer(prompt) + "\n"},
		}},
	})
}

func (f *fakeModel) setFail(v bool) {
	f.mu.Lock()
	f.fail = v
	f.mu.Unlock()
}

func answer(prompt string) string {
	if strings.HasPrefix(prompt, assistant.SummarizePrompt("")) {
		return "A short summary."
	}
	for _, c := range assistant.DefaultQueryCases() {
		if c.Input == prompt {
			return "The answer is " + c.Expected + "."
		}
	}
	return prompt
}

// newStack wires a config file through the model client, the service and
// the router, the way cmd/askd does, against a fake model server.
func newStack(t *testing.T, configYAML string) (*httptest.Server, *fakeModel) {
	t.Helper()
	fm := &fakeModel{}
	model := httptest.NewServer(fm)
	t.Cleanup(model.Close)

	p := filepath.Join(t.TempDir(), "askd.yaml")
	doc := "model:\n  backend: openai\n  api_key: e2e-key\n  base_url: " + model.URL + "/v1/\n" + configYAML
	if err := os.WriteFile(p, []byte(doc), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err := config.Load(p)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("validate: %v", err)
	}

	client, err := llm.New(context.Background(), llm.Settings{
		Backend: cfg.Model.Backend,
		Model:   cfg.Model.Name,
		APIKey:  cfg.Model.APIKey,
		BaseURL: cfg.Model.BaseURL,
	})
	if err != nil {
		t.Fatalf("llm.New: %v", err)
	}
	t.Cleanup(func() { _ = client.Close() })

	svc := assistant.NewWithConfig(assistant.ServiceConfig{
		Generator:        client,
		Logger:           zerolog.Nop(),
		QueryCases:       cfg.Evaluation.QueryCases,
		SummaryCases:     cfg.Evaluation.SummaryCases,
		ReportPercentage: cfg.Evaluation.ReportPercentage,
	})
	srv := httptest.NewServer(httpapi.NewMux(svc, httpapi.Options{MaxBodyBytes: cfg.HTTP.MaxBodyBytes}))
	t.Cleanup(srv.Close)
	return srv, fm
}

func httpGet(t *testing.T, url string) (*http.Response, []byte) {
	t.Helper()
	req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, url, nil)
	if err != nil {
		t.Fatalf("new req: %v", err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do req: %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	return resp, body
}

func httpPostJSON(t *testing.T, url string, payload []byte) (*http.Response, []byte) {
	t.Helper()
	req, err := http.NewRequestWithContext(context.Background(), http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		t.Fatalf("new req: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do req: %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	return resp, body
}
