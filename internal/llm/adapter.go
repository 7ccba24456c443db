// Package llm adapts hosted generative-model APIs to a single call:
// prompt in, reply text out.
package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
)

// Generator is the surface the service needs from a model backend.
// Implementations make exactly one outbound call per Generate and never retry.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Settings selects and configures a backend.
type Settings struct {
	Backend string
	// Model is a model id or an alias resolved by ResolveModel.
	Model  string
	APIKey string
	// BaseURL overrides the API endpoint, for gateways and proxies.
	BaseURL string
	// Timeout bounds one call; zero leaves the call unbounded.
	Timeout time.Duration
}

// ErrEmptyResponse is returned when the backend answers without any text.
var ErrEmptyResponse = errors.New("model returned an empty response")

// backend is implemented once per hosted API.
type backend interface {
	generate(ctx context.Context, prompt string) (string, error)
	close() error
}

// Client is a Generator bound to one backend and model.
type Client struct {
	backendName string
	model       string
	timeout     time.Duration
	impl        backend
}

// New constructs a Client. It fails when the backend is unknown or the API key is missing.
func New(ctx context.Context, s Settings) (*Client, error) {
	name := strings.ToLower(strings.TrimSpace(s.Backend))
	if name == "" {
		name = BackendGemini
	}
	if strings.TrimSpace(s.APIKey) == "" {
		return nil, fmt.Errorf("%s: api key is required", name)
	}
	model := ResolveModel(name, s.Model)
	var (
		impl backend
		err  error
	)
	switch name {
	case BackendGemini:
		impl, err = newGemini(ctx, s.APIKey, s.BaseURL, model)
	case BackendOpenAI:
		impl = newOpenAI(s.APIKey, s.BaseURL, model)
	default:
		return nil, fmt.Errorf("unknown backend %q", s.Backend)
	}
	if err != nil {
		return nil, err
	}
	return &Client{backendName: name, model: model, timeout: s.Timeout, impl: impl}, nil
}

// Backend returns the backend name (gemini or openai).
func (c *Client) Backend() string { return c.backendName }

// Model returns the resolved model id.
func (c *Client) Model() string { return c.model }

// Generate sends prompt to the model and returns its reply as-is.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}
	start := time.Now()
	text, err := c.impl.generate(ctx, prompt)
	observe(c.backendName, c.model, err, time.Since(start))
	if err != nil {
		return "", fmt.Errorf("%s %s: %w", c.backendName, c.model, err)
	}
	return text, nil
}

// Close releases the underlying API client.
func (c *Client) Close() error {
	if c == nil || c.impl == nil {
		return nil
	}
	return c.impl.close()
}
