package main

import (
	"fmt"
	"io"
	"log/slog"
)

// newLogger builds a text or JSON slog logger writing to w.
func newLogger(w io.Writer, level, format string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	opts := &slog.HandlerOptions{Level: lvl}
	switch format {
	case outputText:
		return slog.New(slog.NewTextHandler(w, opts)), nil
	case outputJSON:
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	}

	return nil, fmt.Errorf("unknown log format %q", format)
}
