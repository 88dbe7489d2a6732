// Package logging configures the process-wide slog logger.
package logging

import (
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/lmittmann/tint"
	"gopkg.in/natefinch/lumberjack.v2"
)

// ParseLevel converts a level name (debug, info, warn, error) to a slog.Level.
func ParseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return 0, fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", s)
	}
	return level, nil
}

// Setup installs a tint handler on console as the default logger. When
// filePath is set, records are also written to a rotating log file.
// The returned closer releases the file, if any.
func Setup(console io.Writer, level slog.Level, filePath string) (io.Closer, error) {
	var handler slog.Handler = tint.NewHandler(console, &tint.Options{
		Level:      level,
		TimeFormat: time.RFC3339,
	})

	var closer io.Closer = nopCloser{}
	if filePath != "" {
		if err := os.MkdirAll(filepath.Dir(filePath), 0o755); err != nil {
			return nil, fmt.Errorf("creating log folder: %w", err)
		}
		lumber := &lumberjack.Logger{
			Filename: filePath,
			MaxSize:  10,
			Compress: true,
		}
		handler = &teeHandler{
			handlers: []slog.Handler{
				handler,
				tint.NewHandler(lumber, &tint.Options{
					Level:      slog.LevelDebug,
					TimeFormat: time.RFC3339,
					NoColor:    true,
				}),
			},
		}
		closer = lumber
	}

	slog.SetDefault(slog.New(handler))

	// some deps log through the standard logger
	lw := &slogWriter{}
	log.Default().SetOutput(lw)
	log.SetFlags(0)

	return closer, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

type slogWriter struct{}

func (w *slogWriter) Write(p []byte) (int, error) {
	slog.Info(strings.TrimRight(string(p), "\n"))
	return len(p), nil
}
