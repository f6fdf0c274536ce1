package main

import (
	"fmt"
	"io"
	"log/slog"
)

const (
	defaultLogLevel  = "info"
	defaultLogFormat = "text"
)

// newLogger builds the logger for one run. Nothing but
// diagnostics goes to w, so it must never be the output
// document's stream.
func newLogger(
	levelStr string,
	formatStr string,
	w io.Writer,
) (*slog.Logger, error) {
	const errCtx = "configuring logger"

	var level slog.Level

	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return nil, fmt.Errorf(
			"%s: unknown log level %q", errCtx, levelStr,
		)
	}

	opts := &slog.HandlerOptions{Level: level}

	switch formatStr {
	case "text":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf(
			"%s: unknown log format %q", errCtx, formatStr,
		)
	}
}
