package assistant

import "askd/pkg/types"

// DefaultQueryCases is the built-in correctness suite.
func DefaultQueryCases() []types.QueryCase {
	return []types.QueryCase{
		{Input: "What is the capital of France?", Expected: "Paris"},
		{Input: "What is 2 + 2?", Expected: "4"},
		{Input: "Who wrote Romeo and Juliet?", Expected: "Shakespeare"},
		{Input: "What is the chemical symbol for gold?", Expected: "Au"},
		{Input: "What planet is known as the Red Planet?", Expected: "Mars"},
	}
}

// DefaultSummaryCases is the built-in brevity suite.
func DefaultSummaryCases() []types.SummaryCase {
	return []types.SummaryCase{
		{Input: `A paragraph is a group of sentences that develop a single idea or point of a subject.
Paragraphs are a common feature of writing and are used to organize information and help readers understand the
main points of a piece.`},
		{Input: `My name is shaarang. I am 25 years old. I have a masters degree. I am applying as a mlops data
engineer at syncron. I am a boy. i am from goa.`},
	}
}
