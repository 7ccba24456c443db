// Package logging builds the process-wide zerolog logger. Lines go to the
// console and are appended to a log file.
package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/natefinch/lumberjack"
	"github.com/rs/zerolog"

	"askd/internal/common/fsutil"
	"askd/internal/config"
)

// noRotateMB is the size limit used when none is configured. It is large
// enough that the file behaves as plain append-only.
const noRotateMB = 1 << 20

// Sink is the assembled logger plus the file it appends to, if any.
type Sink struct {
	Logger zerolog.Logger
	file   *lumberjack.Logger
}

// Close flushes and closes the log file.
func (s *Sink) Close() error {
	if s == nil || s.file == nil {
		return nil
	}
	return s.file.Close()
}

// New builds a logger from cfg. console may be nil to disable console output.
func New(cfg config.LogConfig, console io.Writer) (*Sink, error) {
	var writers []io.Writer
	if console != nil {
		writers = append(writers, zerolog.ConsoleWriter{Out: console, TimeFormat: time.RFC3339})
	}
	s := &Sink{}
	if strings.TrimSpace(cfg.File) != "" {
		p, err := fsutil.EnsureParentDir(cfg.File)
		if err != nil {
			return nil, err
		}
		maxSize := cfg.MaxSizeMB
		if maxSize <= 0 {
			maxSize = noRotateMB
		}
		s.file = &lumberjack.Logger{
			Filename:   p,
			MaxSize:    maxSize,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAgeDays,
		}
		writers = append(writers, s.file)
	}
	var out io.Writer = io.Discard
	switch len(writers) {
	case 0:
	case 1:
		out = writers[0]
	default:
		out = zerolog.MultiLevelWriter(writers...)
	}
	s.Logger = zerolog.New(out).Level(ParseLevel(cfg.Level)).With().Timestamp().Logger()
	return s, nil
}

// ParseLevel maps a config string to a zerolog level; unknown values mean info.
func ParseLevel(s string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error", "err":
		return zerolog.ErrorLevel
	case "off", "disabled":
		return zerolog.Disabled
	default:
		return zerolog.InfoLevel
	}
}

// Console is the default console destination.
func Console() io.Writer { return os.Stderr }
