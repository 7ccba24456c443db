package assistant

import (
	"context"
	"io"
	"sync"

	"github.com/rs/zerolog"
)

// stubGenerator answers through reply and records every prompt it sees.
type stubGenerator struct {
	mu      sync.Mutex
	prompts []string
	reply   func(prompt string) (string, error)
}

func (g *stubGenerator) Generate(_ context.Context, prompt string) (string, error) {
	g.mu.Lock()
	g.prompts = append(g.prompts, prompt)
	g.mu.Unlock()
	return g.reply(prompt)
}

func (g *stubGenerator) calls() []string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]string(nil), g.prompts...)
}

func fixed(s string) func(string) (string, error) {
	return func(string) (string, error) { return s, nil }
}

func newTestService(gen *stubGenerator, cfg ServiceConfig) *Service {
	cfg.Generator = gen
	cfg.Logger = zerolog.New(io.Discard)
	return NewWithConfig(cfg)
}
