package ctxlog

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/matt-FFFFFF/mantel/internal/severity"
)

type loggerKey struct{}

// DefaultLogger is the pretty console logger used when a context carries no
// logger of its own.
var DefaultLogger = slog.New(NewPretty(&slog.HandlerOptions{
	Level: LevelVar,
},
	WithAutoColor(),
	WithDestinationWriter(os.Stdout),
))

// JSONLogger emits machine-readable records to stdout at the shared level.
var JSONLogger = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
	Level: LevelVar,
}))

// LevelVar is the shared level for the package loggers. It can be adjusted
// at runtime.
var LevelVar = &slog.LevelVar{}

// LevelEnvVar is the environment variable consulted for the initial log
// level. Its name is derived from the executable: a binary called "mantel"
// reads MANTEL_LOG_LEVEL.
var LevelEnvVar = levelEnvVarName()

func init() {
	LevelVar.Set(logLevelFromEnv())
}

// New creates a new context carrying the given logger. A nil logger stores
// the default.
func New(ctx context.Context, logger *slog.Logger) context.Context {
	if logger == nil {
		logger = DefaultLogger
	}

	return context.WithValue(ctx, loggerKey{}, logger)
}

// NewLogger builds a pretty-handler logger writing to w at the shared
// level. Use it to route structured records through another sink, such as
// an output coordinator's line writer, instead of straight to stdout.
func NewLogger(w io.Writer, options ...Option) *slog.Logger {
	opts := append([]Option{WithAutoColor(), WithDestinationWriter(w)}, options...)

	return slog.New(NewPretty(&slog.HandlerOptions{
		Level: LevelVar,
	}, opts...))
}

// Logger returns the logger from the context, or the default logger if not found.
func Logger(ctx context.Context) *slog.Logger {
	logger, ok := ctx.Value(loggerKey{}).(*slog.Logger)
	if !ok || logger == nil {
		return DefaultLogger
	}

	return logger
}

// Info logs an info message with the given context.
func Info(ctx context.Context, msg string, args ...any) {
	Logger(ctx).Info(msg, args...)
}

// Debug logs a debug message with the given context.
func Debug(ctx context.Context, msg string, args ...any) {
	Logger(ctx).Debug(msg, args...)
}

// Warn logs a warning message with the given context.
func Warn(ctx context.Context, msg string, args ...any) {
	Logger(ctx).Warn(msg, args...)
}

// Error logs an error message with the given context.
func Error(ctx context.Context, msg string, args ...any) {
	Logger(ctx).Error(msg, args...)
}

// Trace logs below debug level for the very chatty details.
func Trace(ctx context.Context, msg string, args ...any) {
	Logger(ctx).Log(ctx, severity.LevelTrace, msg, args...)
}

func levelEnvVarName() string {
	exec, _ := os.Executable()
	exec = filepath.Base(exec)
	ext := filepath.Ext(exec)

	if ext == ".exe" {
		exec = exec[:len(exec)-len(ext)]
	}

	return strings.ToUpper(exec) + "_LOG_LEVEL"
}

func logLevelFromEnv() slog.Level {
	switch strings.ToUpper(os.Getenv(LevelEnvVar)) {
	case "TRACE":
		return severity.LevelTrace
	case "DEBUG":
		return slog.LevelDebug
	case "WARN":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	}

	return slog.LevelInfo
}
