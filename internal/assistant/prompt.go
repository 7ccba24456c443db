package assistant

import "strings"

const summarizePrefix = "Please summarize this text concisely:\n\n"

// SummarizePrompt builds the fixed summarization prompt for text.
func SummarizePrompt(text string) string { return summarizePrefix + text }

// WordCount returns the number of whitespace-delimited tokens in s.
func WordCount(s string) int { return len(strings.Fields(s)) }

// containsFold reports whether substr occurs in s, ignoring case.
func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
