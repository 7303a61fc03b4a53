// Package logging wraps log/slog with the context conventions used
// across the CLI. Everything goes to stderr: stdout is reserved for
// the hook response protocol.
package logging

import (
	"context"
	"log/slog"
	"os"
	"time"
)

type contextKey int

const (
	componentKey contextKey = iota
	hookKey
)

var logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
	Level: slog.LevelWarn,
}))

// Init configures the process logger. Debug lowers the threshold to
// DEBUG; quiet raises it to ERROR. Debug wins when both are set.
func Init(debug, quiet bool) {
	level := slog.LevelWarn
	switch {
	case debug:
		level = slog.LevelDebug
	case quiet:
		level = slog.LevelError
	}
	logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// WithComponent tags the context with the subsystem emitting logs.
func WithComponent(ctx context.Context, component string) context.Context {
	return context.WithValue(ctx, componentKey, component)
}

// WithHook tags the context with the hook being processed.
func WithHook(ctx context.Context, hook string) context.Context {
	return context.WithValue(ctx, hookKey, hook)
}

func contextAttrs(ctx context.Context, attrs []slog.Attr) []slog.Attr {
	if component, ok := ctx.Value(componentKey).(string); ok {
		attrs = append(attrs, slog.String("component", component))
	}
	if hook, ok := ctx.Value(hookKey).(string); ok {
		attrs = append(attrs, slog.String("hook", hook))
	}
	return attrs
}

// Debug logs at DEBUG with the context attributes attached.
func Debug(ctx context.Context, msg string, attrs ...slog.Attr) {
	logger.LogAttrs(ctx, slog.LevelDebug, msg, contextAttrs(ctx, attrs)...)
}

// Info logs at INFO with the context attributes attached.
func Info(ctx context.Context, msg string, attrs ...slog.Attr) {
	logger.LogAttrs(ctx, slog.LevelInfo, msg, contextAttrs(ctx, attrs)...)
}

// Warn logs at WARN with the context attributes attached.
func Warn(ctx context.Context, msg string, attrs ...slog.Attr) {
	logger.LogAttrs(ctx, slog.LevelWarn, msg, contextAttrs(ctx, attrs)...)
}

// Error logs at ERROR with the context attributes attached.
func Error(ctx context.Context, msg string, attrs ...slog.Attr) {
	logger.LogAttrs(ctx, slog.LevelError, msg, contextAttrs(ctx, attrs)...)
}

// LogDuration logs msg at the given level with a duration_ms
// attribute measured from start.
func LogDuration(ctx context.Context, level slog.Level, msg string, start time.Time, attrs ...slog.Attr) {
	attrs = append(attrs, slog.Int64("duration_ms", time.Since(start).Milliseconds()))
	logger.LogAttrs(ctx, level, msg, contextAttrs(ctx, attrs)...)
}
