package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"askd/pkg/types"
)

// HTTPError allows services to provide an HTTP status code for an error.
type HTTPError interface {
	error
	StatusCode() int
}

// errShuttingDown prefixes failures of work canceled by server shutdown.
var errShuttingDown = errors.New("server shutting down")

// bodyError reports a request body that could not be decoded. The request
// never reaches the service, so it is reported as a server-side failure.
type bodyError struct{ err error }

func (e bodyError) Error() string   { return fmt.Sprintf("invalid JSON body: %v", e.err) }
func (e bodyError) Unwrap() error   { return e.err }
func (e bodyError) StatusCode() int { return http.StatusInternalServerError }

// statusOf maps err to an HTTP status; errors without one are 500.
func statusOf(err error) int {
	if he, ok := err.(HTTPError); ok {
		return he.StatusCode()
	}
	return http.StatusInternalServerError
}

// writeJSON writes v with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(v)
}

// writeJSONError writes a consistent JSON error payload.
func writeJSONError(w http.ResponseWriter, status int, msg string) {
	_ = writeJSON(w, status, types.ErrorResponse{Error: msg})
}
