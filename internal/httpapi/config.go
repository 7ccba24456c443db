package httpapi

import (
	"context"

	"github.com/rs/zerolog"
)

// defaultMaxBodyBytes caps JSON request bodies when Options.MaxBodyBytes is unset.
const defaultMaxBodyBytes int64 = 1 << 20

// Options configures the HTTP layer. It replaces package-level setters so
// that everything the router needs is passed in once at construction.
type Options struct {
	// Logger receives per-request lines. Nil disables request logging.
	Logger *zerolog.Logger
	// LogLevel is the default per-request verbosity: off|error|info|debug.
	// Requests may override it with ?log= or X-Log-Level.
	LogLevel string
	// MaxBodyBytes limits JSON request bodies; <= 0 means 1 MiB.
	MaxBodyBytes int64
	// BaseContext is canceled on shutdown so in-flight model calls stop too.
	BaseContext context.Context
	// Swagger mounts the API docs under /swagger/.
	Swagger bool
	CORS    CORSOptions
}

// CORSOptions is opt-in. If disabled, no CORS middleware is added.
type CORSOptions struct {
	Enabled        bool
	AllowedOrigins []string
	AllowedMethods []string
	AllowedHeaders []string
}

func (o Options) withDefaults() Options {
	if o.MaxBodyBytes <= 0 {
		o.MaxBodyBytes = defaultMaxBodyBytes
	}
	if o.BaseContext == nil {
		o.BaseContext = context.Background()
	}
	if o.Logger == nil {
		nop := zerolog.Nop()
		o.Logger = &nop
	}
	if o.LogLevel == "" {
		o.LogLevel = "info"
	}
	return o
}
