package llm

import "strings"

const (
	BackendGemini = "gemini"
	BackendOpenAI = "openai"
)

// Model aliases per backend. "fast" favors latency and cost, "capable" favors quality.
var aliases = map[string]map[string]string{
	BackendGemini: {
		"fast":    "gemini-1.5-flash",
		"capable": "gemini-1.5-pro",
	},
	BackendOpenAI: {
		"fast":    "gpt-4o-mini",
		"capable": "gpt-4o",
	},
}

// ResolveModel maps an alias to a concrete model id for backend. Empty means
// "fast"; any other value is returned unchanged.
func ResolveModel(backend, id string) string {
	id = strings.TrimSpace(id)
	if id == "" {
		id = "fast"
	}
	if m, ok := aliases[strings.ToLower(backend)][strings.ToLower(id)]; ok {
		return m
	}
	return id
}
