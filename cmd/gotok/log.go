package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/rs/zerolog"
)

// newLogger returns a console logger in debug mode and a JSON logger
// otherwise. Both write to w.
func newLogger(w io.Writer, debug bool) zerolog.Logger {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	if !debug {
		return zerolog.New(w).Level(zerolog.InfoLevel).With().Timestamp().Logger()
	}

	return zerolog.New(zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.RFC3339,
	}).Level(zerolog.DebugLevel).With().Timestamp().Logger()
}

// slogHandler forwards the signer logs to zerolog.
type slogHandler struct {
	logger zerolog.Logger
	attrs  []slog.Attr
	group  string
}

func newSlogLogger(logger zerolog.Logger) *slog.Logger {
	return slog.New(slogHandler{logger: logger})
}

func (h slogHandler) Enabled(_ context.Context, level slog.Level) bool {
	return h.logger.GetLevel() <= zerologLevel(level)
}

func (h slogHandler) Handle(_ context.Context, record slog.Record) error {
	event := h.logger.WithLevel(zerologLevel(record.Level))
	for _, attr := range h.attrs {
		event = event.Interface(attr.Key, attr.Value.Any())
	}
	record.Attrs(func(attr slog.Attr) bool {
		key := attr.Key
		if h.group != "" {
			key = h.group + "." + key
		}
		event = event.Interface(key, attr.Value.Any())
		return true
	})
	event.Msg(record.Message)
	return nil
}

func (h slogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	for _, attr := range attrs {
		if h.group != "" {
			attr.Key = h.group + "." + attr.Key
		}
		h.attrs = append(h.attrs[:len(h.attrs):len(h.attrs)], attr)
	}
	return h
}

func (h slogHandler) WithGroup(name string) slog.Handler {
	if h.group != "" {
		name = h.group + "." + name
	}
	h.group = name
	return h
}

func zerologLevel(level slog.Level) zerolog.Level {
	switch {
	case level >= slog.LevelError:
		return zerolog.ErrorLevel
	case level >= slog.LevelWarn:
		return zerolog.WarnLevel
	case level >= slog.LevelInfo:
		return zerolog.InfoLevel
	default:
		return zerolog.DebugLevel
	}
}
