package assistant

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"askd/pkg/types"
)

const (
	suiteQuery   = "query"
	suiteSummary = "summary"
)

func (s *Service) runLogger(suite string) zerolog.Logger {
	return s.log.With().Str("suite", suite).Str("run_id", uuid.NewString()).Logger()
}

// EvaluateQuery runs the correctness suite. A case passes when the reply
// contains the expected text, ignoring case. The first model failure aborts
// the run and no partial tally is returned.
func (s *Service) EvaluateQuery(ctx context.Context) (types.QueryEvaluation, error) {
	l := s.runLogger(suiteQuery)
	l.Info().Msg("=== Query Evaluation ===")

	matches := 0
	for i, c := range s.queryCases {
		reply, err := s.gen.Generate(ctx, c.Input)
		if err != nil {
			l.Error().Err(err).Int("case", i+1).Msg("query evaluation aborted")
			evaluationRunsTotal.WithLabelValues(suiteQuery, "error").Inc()
			return types.QueryEvaluation{}, ErrUpstream(err)
		}
		hit := containsFold(reply, c.Expected)
		if hit {
			matches++
		}
		l.Info().Int("case", i+1).Bool("match", hit).Msgf("Q: %s", c.Input)
		l.Info().Int("case", i+1).Msgf("A: %s", strings.TrimSpace(reply))
	}

	total := len(s.queryCases)
	l.Info().Msgf("Matches: %d/%d", matches, total)
	recordEvaluation(suiteQuery, matches, total)

	res := types.QueryEvaluation{Matches: matches, TotalCases: total}
	if s.reportPercentage {
		pct := percentage(matches, total)
		res.Percentage = &pct
	}
	return res, nil
}

// EvaluateSummary runs the brevity suite. A case passes when the summary has
// fewer words than its input. Failure handling matches EvaluateQuery.
func (s *Service) EvaluateSummary(ctx context.Context) (types.SummaryEvaluation, error) {
	l := s.runLogger(suiteSummary)
	l.Info().Msg("=== Summary Evaluation ===")

	successes := 0
	for i, c := range s.summaryCases {
		reply, err := s.gen.Generate(ctx, SummarizePrompt(c.Input))
		if err != nil {
			l.Error().Err(err).Int("case", i+1).Msg("summary evaluation aborted")
			evaluationRunsTotal.WithLabelValues(suiteSummary, "error").Inc()
			return types.SummaryEvaluation{}, ErrUpstream(err)
		}
		inputWords := WordCount(c.Input)
		summaryWords := WordCount(reply)
		shorter := summaryWords < inputWords
		if shorter {
			successes++
		}
		l.Info().Int("case", i+1).Int("words", inputWords).Msgf("Original: %s", strings.TrimSpace(c.Input))
		l.Info().Int("case", i+1).Int("words", summaryWords).Bool("shorter", shorter).Msgf("Summary: %s", strings.TrimSpace(reply))
	}

	total := len(s.summaryCases)
	l.Info().Msgf("Successful Summaries: %d/%d", successes, total)
	recordEvaluation(suiteSummary, successes, total)
	return types.SummaryEvaluation{SuccessfulSummaries: successes, TotalCases: total}, nil
}

func percentage(passed, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(passed) * 100 / float64(total)
}
