package types

// QueryCase is one correctness smoke test: the reply to Input must contain
// Expected, compared case-insensitively.
type QueryCase struct {
	Input    string `json:"input" yaml:"input" toml:"input"`
	Expected string `json:"expected" yaml:"expected" toml:"expected"`
}

// SummaryCase is one brevity smoke test: the summary of Input must have
// fewer words than Input.
type SummaryCase struct {
	Input string `json:"input" yaml:"input" toml:"input"`
}
