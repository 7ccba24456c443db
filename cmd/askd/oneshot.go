package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"

	"askd/internal/logging"
	"askd/pkg/types"
)

func runQuery(ctx context.Context, o *cliOptions, out io.Writer, args []string) error {
	return withService(ctx, o, func(ctx context.Context, svc oneShotService) (any, error) {
		return svc.Query(ctx, types.QueryRequest{Query: strings.Join(args, " ")})
	}, out)
}

func runEvaluate(ctx context.Context, o *cliOptions, out io.Writer, suite string) error {
	return withService(ctx, o, func(ctx context.Context, svc oneShotService) (any, error) {
		switch suite {
		case "query":
			return svc.EvaluateQuery(ctx)
		case "summary":
			return svc.EvaluateSummary(ctx)
		default:
			return nil, fmt.Errorf("unknown suite %q (want query or summary)", suite)
		}
	}, out)
}

type oneShotService interface {
	Query(ctx context.Context, req types.QueryRequest) (types.QueryResponse, error)
	EvaluateQuery(ctx context.Context) (types.QueryEvaluation, error)
	EvaluateSummary(ctx context.Context) (types.SummaryEvaluation, error)
}

// withService builds the service from flags, runs fn and prints its result as JSON.
func withService(ctx context.Context, o *cliOptions, fn func(context.Context, oneShotService) (any, error), out io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}
	cfg, err := loadConfig(o)
	if err != nil {
		return err
	}
	sink, err := logging.New(cfg.Log, logging.Console())
	if err != nil {
		return err
	}
	defer sink.Close()
	log := sink.Logger
	if o.LogLevel == "" {
		// keep stdout clean for the JSON result unless asked otherwise
		log = log.Level(zerolog.WarnLevel)
	}

	svc, client, err := newService(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer client.Close()

	res, err := fn(ctx, svc)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(res)
}
