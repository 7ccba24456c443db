package llm

import "testing"

func TestResolveModel(t *testing.T) {
	cases := []struct{ backend, in, want string }{
		{BackendGemini, "", "gemini-1.5-flash"},
		{BackendGemini, "fast", "gemini-1.5-flash"},
		{BackendGemini, "Capable", "gemini-1.5-pro"},
		{BackendGemini, "gemini-2.0-flash", "gemini-2.0-flash"},
		{BackendOpenAI, "fast", "gpt-4o-mini"},
		{BackendOpenAI, " capable ", "gpt-4o"},
		{"unknown", "fast", "fast"},
	}
	for _, c := range cases {
		if got := ResolveModel(c.backend, c.in); got != c.want {
			t.Fatalf("ResolveModel(%q, %q) = %q, want %q", c.backend, c.in, got, c.want)
		}
	}
}
