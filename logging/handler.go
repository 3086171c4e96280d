package logging

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"sync"
)

const (
	timeFormat = "[15:04:05.000]"

	reset     = "\033[0m"
	cyan      = 36
	lightGray = 37
	darkGray  = 90
	lightRed  = 91
	lightYell = 93
	white     = 97
)

func colorizer(code int, v string) string {
	return "\033[" + strconv.Itoa(code) + "m" + v + reset
}

// Handler writes one line per record: timestamp, level, message, then key=value attrs
// Attribute formatting is delegated to an inner slog.TextHandler
type Handler struct {
	h        slog.Handler
	buf      *bytes.Buffer
	m        *sync.Mutex
	writer   io.Writer
	colorize bool
}

// Option configures a Handler
type Option func(h *Handler)

// WithColor enables ANSI colouring of the line prefix
func WithColor() Option {
	return func(h *Handler) {
		h.colorize = true
	}
}

// NewHandler creates a handler writing to w
func NewHandler(w io.Writer, opts *slog.HandlerOptions, options ...Option) *Handler {
	if opts == nil {
		opts = &slog.HandlerOptions{}
	}
	buf := &bytes.Buffer{}
	h := &Handler{
		buf:    buf,
		m:      &sync.Mutex{},
		writer: w,
		h: slog.NewTextHandler(buf, &slog.HandlerOptions{
			Level:       opts.Level,
			AddSource:   opts.AddSource,
			ReplaceAttr: suppressDefaults(opts.ReplaceAttr),
		}),
	}
	for _, opt := range options {
		opt(h)
	}
	return h
}

func suppressDefaults(next func([]string, slog.Attr) slog.Attr) func([]string, slog.Attr) slog.Attr {
	return func(groups []string, a slog.Attr) slog.Attr {
		if len(groups) == 0 && (a.Key == slog.TimeKey || a.Key == slog.LevelKey || a.Key == slog.MessageKey) {
			return slog.Attr{}
		}
		if next == nil {
			return a
		}
		return next(groups, a)
	}
}

func (h *Handler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.h.Enabled(ctx, level)
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &Handler{h: h.h.WithAttrs(attrs), buf: h.buf, m: h.m, writer: h.writer, colorize: h.colorize}
}

func (h *Handler) WithGroup(name string) slog.Handler {
	return &Handler{h: h.h.WithGroup(name), buf: h.buf, m: h.m, writer: h.writer, colorize: h.colorize}
}

func (h *Handler) Handle(ctx context.Context, r slog.Record) error {
	colorize := func(_ int, v string) string { return v }
	if h.colorize {
		colorize = colorizer
	}

	level := r.Level.String() + ":"
	switch {
	case r.Level <= slog.LevelDebug:
		level = colorize(lightGray, level)
	case r.Level <= slog.LevelInfo:
		level = colorize(cyan, level)
	case r.Level < slog.LevelError:
		level = colorize(lightYell, level)
	default:
		level = colorize(lightRed, level)
	}

	h.m.Lock()
	defer h.m.Unlock()
	defer h.buf.Reset()

	if err := h.h.Handle(ctx, r); err != nil {
		return fmt.Errorf("inner handler: %w", err)
	}
	attrs := bytes.TrimRight(h.buf.Bytes(), "\n")

	line := colorize(lightGray, r.Time.Format(timeFormat)) + " " + level + " " + colorize(white, r.Message)
	if len(attrs) > 0 {
		line += " " + colorize(darkGray, string(attrs))
	}
	_, err := io.WriteString(h.writer, line+"\n")
	return err
}
