// Package logger provides a structured, levelled logger built on log/slog.
//
// The key extension over plain slog is WithCtx: it returns a logger with the
// request ID already attached, so every log line from a handler is
// automatically correlated:
//
//	log := logger.WithCtx(r.Context())
//	log.Info("customer updated", "customer_id", id)
//	// → time=... level=INFO msg="customer updated" request_id=a1b2c3d4 customer_id=7
package logger

import (
	"context"
	"log/slog"
	"os"

	"github.com/shashiranjanraj/vanik/config"
)

var L *slog.Logger

var mongoSink *MongoHandler

func init() {
	L = slog.New(consoleHandler())
	slog.SetDefault(L)
}

// consoleHandler picks the stdout handler for the current environment:
// JSON in production (log aggregators), text everywhere else.
func consoleHandler() slog.Handler {
	opts := &slog.HandlerOptions{Level: slog.LevelDebug}

	switch config.AppEnv() {
	case "production", "prod":
		opts.Level = slog.LevelInfo
		return slog.NewJSONHandler(os.Stdout, opts)
	default:
		return slog.NewTextHandler(os.Stdout, opts)
	}
}

// EnableMongo mirrors every log record into the MongoDB collection named by
// MONGO_LOG_URI / MONGO_LOG_DB / MONGO_LOG_COLLECTION. Console output is
// unchanged; the sink is asynchronous and never blocks request handling.
//
// Called once at boot. A connection failure is reported to the caller so the
// app can run with console logging only.
func EnableMongo() error {
	uri := config.Get("MONGO_LOG_URI", "")
	if uri == "" {
		return nil
	}

	h, err := NewMongoHandler(
		uri,
		config.Get("MONGO_LOG_DB", "vanik"),
		config.Get("MONGO_LOG_COLLECTION", "logs"),
	)
	if err != nil {
		return err
	}

	mongoSink = h
	L = slog.New(NewMultiHandler(consoleHandler(), h))
	slog.SetDefault(L)
	return nil
}

// Shutdown flushes and closes the MongoDB sink if one was enabled.
func Shutdown() {
	if mongoSink != nil {
		mongoSink.Close()
		mongoSink = nil
	}
}

// ─────────────────────────────────────────────
// Context-aware logger
// ─────────────────────────────────────────────

// ctxKey is the unexported key used to store a per-request *slog.Logger.
type ctxKey struct{}

// WithCtx returns the *slog.Logger injected for this request (pre-tagged
// with request_id by the Logger middleware). Outside a request it falls
// back to the base logger.
func WithCtx(ctx context.Context) *slog.Logger {
	if log, ok := ctx.Value(ctxKey{}).(*slog.Logger); ok && log != nil {
		return log
	}
	return L
}

// InjectLogger stores a *slog.Logger (pre-tagged with request_id) into ctx.
// Called by the Logger middleware — not usually needed in application code.
func InjectLogger(ctx context.Context, log *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, log)
}

// ─────────────────────────────────────────────
// Short-hand helpers (use base logger)
// ─────────────────────────────────────────────

// Debug logs at DEBUG level.
func Debug(msg string, args ...any) { L.Debug(msg, args...) }

// Info logs at INFO level.
func Info(msg string, args ...any) { L.Info(msg, args...) }

// Warn logs at WARN level.
func Warn(msg string, args ...any) { L.Warn(msg, args...) }

// Error logs at ERROR level.
func Error(msg string, args ...any) { L.Error(msg, args...) }
