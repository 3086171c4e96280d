// Package logging installs the process-wide slog logger
// A terminal UI owns stdout, so debug output goes to a rotated file and is discarded otherwise
package logging

import (
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"time"
)

const (
	logFileName = "hitbox.log"
	maxLogSize  = 10 * 1024 * 1024
)

// Params selects the sink and verbosity
type Params struct {
	Debug   bool
	Dir     string
	Level   slog.Level
	Process string
	// Writer overrides the file sink, used by headless tools writing to stderr
	Writer io.Writer
	Color  bool
}

// Setup installs the default logger and returns the opened log file, nil when none was opened
func Setup(p Params) (*os.File, error) {
	var (
		w    io.Writer = io.Discard
		file *os.File
	)

	switch {
	case p.Writer != nil:
		w = p.Writer
	case p.Debug:
		f, err := openLogFile(p.Dir)
		if err != nil {
			return nil, err
		}
		file, w = f, f
	}

	level := p.Level
	if p.Debug && level > slog.LevelDebug {
		level = slog.LevelDebug
	}

	var opts []Option
	if p.Color {
		opts = append(opts, WithColor())
	}
	logger := slog.New(NewHandler(w, &slog.HandlerOptions{Level: level}, opts...))
	if p.Process != "" {
		logger = logger.With("process", p.Process)
	}
	slog.SetDefault(logger)
	// SetDefault routes the log package through the handler; keep raw log calls off the terminal too
	if w == io.Discard {
		log.SetOutput(io.Discard)
	}
	return file, nil
}

// openLogFile rotates an oversized log and opens the current one for append
func openLogFile(dir string) (*os.File, error) {
	if dir == "" {
		dir = "logs"
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}

	path := filepath.Join(dir, logFileName)
	if info, err := os.Stat(path); err == nil && info.Size() > maxLogSize {
		rotated := filepath.Join(dir, fmt.Sprintf("hitbox-%s.log", time.Now().Format("20060102-150405")))
		if err := os.Rename(path, rotated); err != nil {
			return nil, fmt.Errorf("rotate log: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log: %w", err)
	}
	return f, nil
}
