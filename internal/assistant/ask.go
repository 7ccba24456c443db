package assistant

import (
	"context"
	"strings"

	"askd/pkg/types"
)

// Query rejects only an absent or empty query; anything else, blank
// text included, is forwarded to the model and the trimmed reply is returned.
func (s *Service) Query(ctx context.Context, req types.QueryRequest) (types.QueryResponse, error) {
	if req.Query == "" {
		return types.QueryResponse{}, ErrValidation(MsgNoQuery)
	}
	s.log.Info().Msg("=== Query Request ===")
	s.log.Info().Msgf("Q: %s", req.Query)

	reply, err := s.gen.Generate(ctx, req.Query)
	if err != nil {
		s.log.Error().Err(err).Msg("query error")
		return types.QueryResponse{}, ErrUpstream(err)
	}
	answer := strings.TrimSpace(reply)
	s.log.Info().Msgf("A: %s", answer)
	return types.QueryResponse{Response: answer}, nil
}

// Summarize asks the model for a concise summary of req.Text and reports
// word counts of both texts.
func (s *Service) Summarize(ctx context.Context, req types.SummarizeRequest) (types.SummarizeResponse, error) {
	if req.Text == "" {
		return types.SummarizeResponse{}, ErrValidation(MsgNoText)
	}
	originalWords := WordCount(req.Text)
	s.log.Info().Msg("=== Summarization Request ===")
	s.log.Info().Int("words", originalWords).Msgf("Original: %s", req.Text)

	reply, err := s.gen.Generate(ctx, SummarizePrompt(req.Text))
	if err != nil {
		s.log.Error().Err(err).Msg("summarization error")
		return types.SummarizeResponse{}, ErrUpstream(err)
	}
	summary := strings.TrimSpace(reply)
	summaryWords := WordCount(summary)
	s.log.Info().Int("words", summaryWords).Msgf("Summary: %s", summary)

	return types.SummarizeResponse{
		Summary:        summary,
		OriginalLength: originalWords,
		SummaryLength:  summaryWords,
	}, nil
}
