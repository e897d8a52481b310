package stability

import (
	"context"
	"io"
	"log/slog"
	"os"
	"time"
)

// Logger wraps slog.Logger to provide structured logging for stability
// runs. It adds consistent field names for run, fold and cluster count
// context.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new logger with the given handler.
// If handler is nil, a default text handler writing to stderr at Info
// level is used.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}

	return &Logger{Logger: slog.New(handler)}
}

// NewTextLogger creates a logger that writes human-readable output to w.
func NewTextLogger(w io.Writer, level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	}))
}

// NewJSONLogger creates a logger that writes JSON output to w.
func NewJSONLogger(w io.Writer, level slog.Level) *Logger {
	return NewLogger(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: level,
	}))
}

// NoopLogger returns a logger that discards all output.
func NoopLogger() *Logger {
	return &Logger{Logger: slog.New(slog.DiscardHandler)}
}

// WithRun returns a logger with the run ID attached to all records.
func (l *Logger) WithRun(id string) *Logger {
	return &Logger{Logger: l.Logger.With("run_id", id)}
}

// WithFold returns a logger with the fold index attached to all records.
func (l *Logger) WithFold(fold int) *Logger {
	return &Logger{Logger: l.Logger.With("fold", fold)}
}

// WithK returns a logger with the cluster count attached to all records.
func (l *Logger) WithK(k int) *Logger {
	return &Logger{Logger: l.Logger.With("k", k)}
}

// LogRunStart logs the start of a stability run.
func (l *Logger) LogRunStart(ctx context.Context, folds, workers int, ks []int) {
	l.InfoContext(ctx, "run started",
		"folds", folds,
		"workers", workers,
		"ks", ks,
	)
}

// LogFold logs the completion of a single fold.
func (l *Logger) LogFold(ctx context.Context, fold int, duration time.Duration, err error) {
	if err != nil {
		l.ErrorContext(ctx, "fold failed",
			"fold", fold,
			"duration", duration,
			"error", err,
		)

		return
	}

	l.DebugContext(ctx, "fold completed",
		"fold", fold,
		"duration", duration,
	)
}

// LogProgress logs how many folds have completed so far.
func (l *Logger) LogProgress(ctx context.Context, done, total int) {
	l.InfoContext(ctx, "run progress",
		"done", done,
		"total", total,
	)
}

// LogRun logs the completion of a stability run.
func (l *Logger) LogRun(ctx context.Context, folds int, duration time.Duration, err error) {
	if err != nil {
		l.ErrorContext(ctx, "run failed",
			"folds", folds,
			"duration", duration,
			"error", err,
		)

		return
	}

	l.InfoContext(ctx, "run completed",
		"folds", folds,
		"duration", duration,
	)
}
