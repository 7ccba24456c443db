package assistant

import (
	"github.com/rs/zerolog"

	"askd/internal/llm"
	"askd/pkg/types"
)

// ServiceConfig encapsulates everything a Service needs. It is assembled
// once at startup; the Service never mutates it.
type ServiceConfig struct {
	Generator llm.Generator
	Logger    zerolog.Logger
	// Empty suites fall back to DefaultQueryCases and DefaultSummaryCases.
	QueryCases   []types.QueryCase
	SummaryCases []types.SummaryCase
	// ReportPercentage adds the derived percentage to query evaluation results.
	ReportPercentage bool
}

// Service implements the query, summarize and evaluate operations.
type Service struct {
	gen              llm.Generator
	log              zerolog.Logger
	queryCases       []types.QueryCase
	summaryCases     []types.SummaryCase
	reportPercentage bool
}

// NewWithConfig constructs a Service from cfg, applying defaults for unset suites.
func NewWithConfig(cfg ServiceConfig) *Service {
	s := &Service{
		gen:              cfg.Generator,
		log:              cfg.Logger,
		reportPercentage: cfg.ReportPercentage,
	}
	if len(cfg.QueryCases) == 0 {
		s.queryCases = DefaultQueryCases()
	} else {
		s.queryCases = append([]types.QueryCase(nil), cfg.QueryCases...)
	}
	if len(cfg.SummaryCases) == 0 {
		s.summaryCases = DefaultSummaryCases()
	} else {
		s.summaryCases = append([]types.SummaryCase(nil), cfg.SummaryCases...)
	}
	return s
}

// QueryCases returns a copy of the correctness suite in use.
func (s *Service) QueryCases() []types.QueryCase {
	return append([]types.QueryCase(nil), s.queryCases...)
}

// SummaryCases returns a copy of the brevity suite in use.
func (s *Service) SummaryCases() []types.SummaryCase {
	return append([]types.SummaryCase(nil), s.summaryCases...)
}
