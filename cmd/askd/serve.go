package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"askd/internal/httpapi"
	"askd/internal/logging"
)

const shutdownGrace = 5 * time.Second

func runServe(parent context.Context, o *cliOptions) error {
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

	if parent == nil {
		parent = context.Background()
	}
	// Canceled on SIGINT/SIGTERM to start the shutdown.
	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	// Handler work outlives the signal and is canceled only when the drain
	// period runs out.
	baseCtx, cancelBase := context.WithCancel(context.WithoutCancel(parent))
	defer cancelBase()

	svc, client, err := newService(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer client.Close()

	mux := httpapi.NewMux(svc, httpapi.Options{
		Logger:       &log,
		LogLevel:     cfg.Log.Level,
		MaxBodyBytes: cfg.HTTP.MaxBodyBytes,
		BaseContext:  baseCtx,
		Swagger:      cfg.HTTP.Swagger,
		CORS: httpapi.CORSOptions{
			Enabled:        cfg.HTTP.CORS.Enabled,
			AllowedOrigins: cfg.HTTP.CORS.AllowedOrigins,
			AllowedMethods: cfg.HTTP.CORS.AllowedMethods,
			AllowedHeaders: cfg.HTTP.CORS.AllowedHeaders,
		},
	})
	srv := &http.Server{Addr: cfg.HTTP.Addr, Handler: mux, ReadHeaderTimeout: 10 * time.Second}

	errCh := make(chan error, 1)
	go func() {
		log.Info().
			Str("addr", cfg.HTTP.Addr).
			Str("backend", client.Backend()).
			Str("model", client.Model()).
			Str("version", version).
			Msg("askd listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			log.Error().Err(err).Msg("server error")
			return err
		}
		return nil
	case <-ctx.Done():
	}

	log.Info().Dur("grace", shutdownGrace).Msg("shutting down")
	if err := drain(srv, cancelBase, shutdownGrace); err != nil {
		log.Error().Err(err).Msg("graceful shutdown error")
		return err
	}
	return nil
}

// drain stops accepting connections and waits up to grace for in-flight
// requests. When grace runs out, outstanding handler work is canceled so
// the handlers can answer with an error, and remaining connections are closed.
func drain(srv *http.Server, cancelBase context.CancelFunc, grace time.Duration) error {
	ctx, cancel := context.WithTimeout(context.Background(), grace)
	defer cancel()
	err := srv.Shutdown(ctx)
	if err != nil {
		cancelBase()
		closeCtx, closeCancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
		defer closeCancel()
		// give canceled handlers a moment to write their error responses
		if srv.Shutdown(closeCtx) != nil {
			_ = srv.Close()
		}
	}
	return err
}
