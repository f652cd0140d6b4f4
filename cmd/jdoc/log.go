package main

import (
	"log/slog"
	"os"
)

var logLevel = new(slog.LevelVar)

var theLog = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
	Level: logLevel,
	ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
		switch a.Key {
		case slog.TimeKey:
			return slog.Attr{}
		case slog.LevelKey:
			// only warnings and above are labelled
			if lvl, ok := a.Value.Any().(slog.Level); ok && lvl < slog.LevelWarn {
				return slog.Attr{}
			}
		}
		return a
	},
}))

// setVerbose enables debug messages, such as check's per-file results.
func setVerbose(v bool) {
	if v {
		logLevel.Set(slog.LevelDebug)
		return
	}
	logLevel.Set(slog.LevelInfo)
}
