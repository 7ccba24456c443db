package config

// Defaults applied by Default(); a config file only needs to name what differs.
const (
	DefaultAddr         = ":8080"
	DefaultBackend      = "gemini"
	DefaultModel        = "fast"
	DefaultLogFile      = "app_log"
	DefaultLogLevel     = "info"
	DefaultMaxBodyBytes = 1 << 20
)

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		HTTP: HTTPConfig{
			Addr:         DefaultAddr,
			MaxBodyBytes: DefaultMaxBodyBytes,
			CORS: CORSConfig{
				AllowedMethods: []string{"GET", "POST", "OPTIONS"},
				AllowedHeaders: []string{"Content-Type"},
			},
		},
		Model: ModelConfig{
			Backend: DefaultBackend,
			Name:    DefaultModel,
		},
		Log: LogConfig{
			File:  DefaultLogFile,
			Level: DefaultLogLevel,
		},
	}
}
