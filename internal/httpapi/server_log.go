package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

// logLine starts a zerolog event carrying the request's identifying fields.
// Failed requests log at error level; the per-request LogLevel already
// decided whether the line is wanted.
func (a *api) logLine(r *http.Request, status int, start time.Time) *zerolog.Event {
	l := a.opts.Logger
	var z *zerolog.Event
	if status >= http.StatusBadRequest {
		z = l.Error()
	} else {
		z = l.Info()
	}
	z = z.Str("method", r.Method).
		Str("path", routePatternOrPath(r)).
		Int("status", status).
		Dur("dur", time.Since(start))
	if rid := middleware.GetReqID(r.Context()); rid != "" {
		z = z.Str("request_id", rid)
	}
	return z
}
