package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/unrolled/secure"

	"askd/pkg/types"
)

// Service defines the methods required by the HTTP API layer.
type Service interface {
	Query(ctx context.Context, req types.QueryRequest) (types.QueryResponse, error)
	Summarize(ctx context.Context, req types.SummarizeRequest) (types.SummarizeResponse, error)
	EvaluateQuery(ctx context.Context) (types.QueryEvaluation, error)
	EvaluateSummary(ctx context.Context) (types.SummaryEvaluation, error)
}

type api struct {
	svc      Service
	opts     Options
	defLevel LogLevel
}

// NewMux builds the router. svc errors implementing HTTPError choose the
// response status; any other error is a 500.
func NewMux(svc Service, opts Options) http.Handler {
	opts = opts.withDefaults()
	a := &api{svc: svc, opts: opts, defLevel: parseLevel(opts.LogLevel)}

	r := chi.NewRouter()
	// Basic middlewares: request id, real ip, recoverer
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	// Compression for JSON endpoints
	r.Use(middleware.Compress(5))
	// Security headers
	r.Use(secure.New(secure.Options{
		ContentTypeNosniff: true,
		FrameDeny:          true,
	}).Handler)
	if opts.CORS.Enabled {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: opts.CORS.AllowedOrigins,
			AllowedMethods: opts.CORS.AllowedMethods,
			AllowedHeaders: opts.CORS.AllowedHeaders,
		}))
	}
	r.Use(MetricsMiddleware)

	r.Post("/query", a.handleQuery)
	r.Post("/summarize", a.handleSummarize)
	r.Get("/evaluate-query", a.handleEvaluateQuery)
	// Deprecated alias kept for clients of the older route name.
	r.Get("/evaluate", a.handleEvaluateQuery)
	r.Get("/evaluate-summary", a.handleEvaluateSummary)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	// Prometheus metrics endpoint
	r.Get("/metrics", promhttp.Handler().ServeHTTP)

	if opts.Swagger {
		MountSwagger(r)
	}
	return r
}

// handleQuery godoc
//
//	@Summary	Ask the model
//	@Tags		model
//	@Accept		json
//	@Produce	json
//	@Param		body	body		types.QueryRequest	true	"query"
//	@Success	200		{object}	types.QueryResponse
//	@Failure	400		{object}	types.ErrorResponse
//	@Failure	500		{object}	types.ErrorResponse
//	@Router		/query [post]
func (a *api) handleQuery(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	var req types.QueryRequest
	if err := a.decode(w, r, &req); err != nil {
		a.respond(w, r, start, nil, err)
		return
	}
	ctx, cancel := joinContexts(a.opts.BaseContext, r.Context())
	defer cancel()
	res, err := a.svc.Query(ctx, req)
	a.respond(w, r, start, res, err)
}

// handleSummarize godoc
//
//	@Summary	Summarize text
//	@Tags		model
//	@Accept		json
//	@Produce	json
//	@Param		body	body		types.SummarizeRequest	true	"text"
//	@Success	200		{object}	types.SummarizeResponse
//	@Failure	400		{object}	types.ErrorResponse
//	@Failure	500		{object}	types.ErrorResponse
//	@Router		/summarize [post]
func (a *api) handleSummarize(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	var req types.SummarizeRequest
	if err := a.decode(w, r, &req); err != nil {
		a.respond(w, r, start, nil, err)
		return
	}
	ctx, cancel := joinContexts(a.opts.BaseContext, r.Context())
	defer cancel()
	res, err := a.svc.Summarize(ctx, req)
	a.respond(w, r, start, res, err)
}

// handleEvaluateQuery godoc
//
//	@Summary	Run the correctness smoke-test suite
//	@Tags		evaluation
//	@Produce	json
//	@Success	200	{object}	types.QueryEvaluation
//	@Failure	500	{object}	types.ErrorResponse
//	@Router		/evaluate-query [get]
func (a *api) handleEvaluateQuery(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	ctx, cancel := joinContexts(a.opts.BaseContext, r.Context())
	defer cancel()
	res, err := a.svc.EvaluateQuery(ctx)
	a.respond(w, r, start, res, err)
}

// handleEvaluateSummary godoc
//
//	@Summary	Run the summary brevity smoke-test suite
//	@Tags		evaluation
//	@Produce	json
//	@Success	200	{object}	types.SummaryEvaluation
//	@Failure	500	{object}	types.ErrorResponse
//	@Router		/evaluate-summary [get]
func (a *api) handleEvaluateSummary(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	ctx, cancel := joinContexts(a.opts.BaseContext, r.Context())
	defer cancel()
	res, err := a.svc.EvaluateSummary(ctx)
	a.respond(w, r, start, res, err)
}

// decode reads a size-limited JSON body into dst.
func (a *api) decode(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, a.opts.MaxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return bodyError{err: err}
	}
	return nil
}

// respond writes either res or the error payload and logs the outcome.
func (a *api) respond(w http.ResponseWriter, r *http.Request, start time.Time, res any, err error) {
	lvl := requestLogLevel(r, a.defLevel)
	if err != nil {
		// The client went away; nobody reads the response.
		if r.Context().Err() != nil {
			return
		}
		status, msg := statusOf(err), err.Error()
		if a.opts.BaseContext.Err() != nil && errors.Is(err, context.Canceled) {
			status, msg = http.StatusInternalServerError, errShuttingDown.Error()+": "+msg
		}
		writeJSONError(w, status, msg)
		if lvl >= LevelError {
			a.logLine(r, status, start).Err(err).Msg("request failed")
		}
		return
	}
	if werr := writeJSON(w, http.StatusOK, res); werr != nil {
		if lvl >= LevelError {
			a.logLine(r, http.StatusOK, start).Err(werr).Msg("write response")
		}
		return
	}
	if lvl >= LevelDebug {
		a.logLine(r, http.StatusOK, start).Interface("body", res).Msg("request done")
	} else if lvl >= LevelInfo {
		a.logLine(r, http.StatusOK, start).Msg("request done")
	}
}
