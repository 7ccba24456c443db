package types

// QueryRequest is the payload for POST /query.
type QueryRequest struct {
	// Text forwarded verbatim to the model.
	// example: What is the capital of France?
	Query string `json:"query" example:"What is the capital of France?"`
}

// QueryResponse is returned by POST /query.
type QueryResponse struct {
	// Model reply with surrounding whitespace removed.
	// example: The capital of France is Paris.
	Response string `json:"response" example:"The capital of France is Paris."`
}

// SummarizeRequest is the payload for POST /summarize.
type SummarizeRequest struct {
	// Text to summarize.
	Text string `json:"text" example:"A paragraph is a group of sentences that develop a single idea."`
}

// SummarizeResponse is returned by POST /summarize.
type SummarizeResponse struct {
	// Model summary with surrounding whitespace removed.
	Summary string `json:"summary" example:"Paragraphs group sentences around one idea."`
	// Whitespace-delimited word count of the submitted text.
	// example: 11
	OriginalLength int `json:"original_length" example:"11"`
	// Whitespace-delimited word count of the summary.
	// example: 6
	SummaryLength int `json:"summary_length" example:"6"`
}

// QueryEvaluation is returned by GET /evaluate-query.
type QueryEvaluation struct {
	// Number of cases whose reply contained the expected text.
	// example: 5
	Matches int `json:"matches" example:"5"`
	// Number of cases in the suite.
	// example: 5
	TotalCases int `json:"total_cases" example:"5"`
	// Optional matches*100/total_cases, present only when percentage reporting is enabled.
	// example: 100
	Percentage *float64 `json:"GK Performance,omitempty" example:"100"`
}

// SummaryEvaluation is returned by GET /evaluate-summary.
type SummaryEvaluation struct {
	// Number of summaries shorter than their input.
	// example: 2
	SuccessfulSummaries int `json:"successful_summaries" example:"2"`
	// Number of cases in the suite.
	// example: 2
	TotalCases int `json:"total_cases" example:"2"`
}

// ErrorResponse is the JSON error payload.
type ErrorResponse struct {
	// Error message.
	// example: No query provided
	Error string `json:"error" example:"No query provided"`
}
