package config

import (
	"fmt"
	"strings"
)

// Validate reports the first setting that prevents the service from starting.
func (c Config) Validate() error {
	if strings.TrimSpace(c.HTTP.Addr) == "" {
		return fmt.Errorf("http.addr is required")
	}
	switch c.Model.Backend {
	case "gemini", "openai":
	default:
		return fmt.Errorf("unknown model backend %q (want gemini or openai)", c.Model.Backend)
	}
	if strings.TrimSpace(c.Model.APIKey) == "" {
		return fmt.Errorf("%s is required", APIKeyEnv(c.Model.Backend))
	}
	if c.Model.TimeoutSeconds < 0 {
		return fmt.Errorf("model.timeout_seconds must not be negative")
	}
	for i, qc := range c.Evaluation.QueryCases {
		if strings.TrimSpace(qc.Input) == "" {
			return fmt.Errorf("evaluation.query_cases[%d]: input is required", i)
		}
	}
	for i, sc := range c.Evaluation.SummaryCases {
		if strings.TrimSpace(sc.Input) == "" {
			return fmt.Errorf("evaluation.summary_cases[%d]: input is required", i)
		}
	}
	return nil
}
