// Package assistant implements the operations behind the HTTP routes:
// pass-through queries, summaries and the two smoke-test evaluation suites.
// It is structured into small files by concern:
//
//   - service.go: Service type, ServiceConfig and defaults.
//   - ask.go: Query and Summarize.
//   - evaluate.go: EvaluateQuery and EvaluateSummary.
//   - cases.go: built-in evaluation suites.
//   - prompt.go: summarization template and word counting.
//   - errors.go: Error type carrying the HTTP status of a failure.
//
// Every operation returns a payload or an *Error; nothing panics for control flow.
package assistant
