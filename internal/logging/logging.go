// Package logging configures the structured logger used by cmd/splashctl.
// Library code in splash/ and codec/ never imports this package: it keeps
// its own ambient "log" warnings (spec §7) independent of whatever logging
// policy a host chooses.
package logging

import (
	"io"
	"log/slog"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Logger builds a slog.Logger writing to w, optionally also rotating a log
// file on disk when logPath is non-empty.
func Logger(w io.Writer, logPath string, level slog.Level) *slog.Logger {
	out := w
	if logPath != "" {
		out = io.MultiWriter(w, &lumberjack.Logger{
			Filename:   logPath,
			MaxSize:    10, // megabytes
			MaxBackups: 3,
			MaxAge:     7, // days
			Compress:   true,
		})
	}
	handler := slog.NewTextHandler(out, &slog.HandlerOptions{Level: level})
	return slog.New(handler)
}
