package tui

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/natefinch/lumberjack.v2"

	"aicli.dev/aicli/internal/config"
)

// roleKey is the record attribute carrying the line Role
const roleKey = "role"

// simpleHandler is a custom slog handler that writes messages without timestamps or level prefixes.
// Debug records go to debugWriter so that writer carries only command output.
type simpleHandler struct {
	writer      io.Writer
	debugWriter io.Writer
	style       *Style
	debugMode   bool
}

func (h *simpleHandler) Enabled(_ context.Context, level slog.Level) bool {
	// Debug messages only enabled in debug mode
	if level == slog.LevelDebug {
		return h.debugMode
	}
	return true
}

func (h *simpleHandler) Handle(_ context.Context, record slog.Record) error {
	if record.Level == slog.LevelDebug {
		_, err := fmt.Fprintln(h.debugWriter, record.Message)
		return err
	}

	role := RoleDetail
	record.Attrs(func(a slog.Attr) bool {
		if a.Key == roleKey {
			role = Role(a.Value.String())
			return false
		}
		return true
	})

	_, err := fmt.Fprintln(h.writer, h.style.Render(role, record.Message))
	return err
}

func (h *simpleHandler) WithAttrs(_ []slog.Attr) slog.Handler {
	return h
}

func (h *simpleHandler) WithGroup(_ string) slog.Handler {
	return h
}

// multiHandler fans out log records to multiple handlers
type multiHandler struct {
	handlers []slog.Handler
}

func (h *multiHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, handler := range h.handlers {
		if handler.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (h *multiHandler) Handle(ctx context.Context, record slog.Record) error {
	for _, handler := range h.handlers {
		if handler.Enabled(ctx, record.Level) {
			if err := handler.Handle(ctx, record.Clone()); err != nil {
				return err
			}
		}
	}
	return nil
}

func (h *multiHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	newHandlers := make([]slog.Handler, len(h.handlers))
	for i, handler := range h.handlers {
		newHandlers[i] = handler.WithAttrs(attrs)
	}
	return &multiHandler{handlers: newHandlers}
}

func (h *multiHandler) WithGroup(name string) slog.Handler {
	newHandlers := make([]slog.Handler, len(h.handlers))
	for i, handler := range h.handlers {
		newHandlers[i] = handler.WithGroup(name)
	}
	return &multiHandler{handlers: newHandlers}
}

// newLumberjackLogger creates a rotating file writer from cfg
func newLumberjackLogger(cfg config.LogConfig) *lumberjack.Logger {
	return &lumberjack.Logger{
		Filename:   cfg.FilePath,
		MaxSize:    cfg.MaxSize,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAge,
		Compress:   false,
	}
}

// Splog provides structured logging and output
type Splog struct {
	logger    *slog.Logger
	logWriter io.WriteCloser // Lumberjack logger for file logging
}

// NewSplogWithConfig creates a splog writing output to w and console debug
// messages to debugW, with optional file logging
func NewSplogWithConfig(w, debugW io.Writer, cfg config.LogConfig) (*Splog, error) {
	splog := &Splog{}

	handlers := []slog.Handler{
		&simpleHandler{
			writer:      w,
			debugWriter: debugW,
			style:       NewStyle(w),
			debugMode:   cfg.Debug,
		},
	}

	if cfg.FilePath != "" {
		logDir := filepath.Dir(cfg.FilePath)
		if err := os.MkdirAll(logDir, 0750); err != nil {
			return nil, fmt.Errorf("failed to create log directory: %w", err)
		}

		lumberjackLogger := newLumberjackLogger(cfg)
		splog.logWriter = lumberjackLogger

		// File logs keep timestamps and attributes
		handlers = append(handlers, slog.NewTextHandler(lumberjackLogger, &slog.HandlerOptions{
			Level: slog.LevelDebug,
			ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
				if a.Key == slog.TimeKey {
					return slog.Attr{Key: a.Key, Value: slog.StringValue(a.Value.Time().Format("2006-01-02 15:04:05.000"))}
				}
				return a
			},
		}))
	}

	splog.logger = slog.New(&multiHandler{handlers: handlers})
	return splog, nil
}

// Emit writes a single output line tagged with role
func (s *Splog) Emit(role Role, msg string) {
	s.logger.LogAttrs(context.Background(), slog.LevelInfo, msg, slog.String(roleKey, string(role)))
}

// Info writes an info message
// nolint // format string validation is handled internally via fmt.Sprintf
func (s *Splog) Info(format string, args ...interface{}) {
	s.Emit(RoleDetail, sprintf(format, args...))
}

// Debug writes a debug message, shown on the debug writer only in debug mode
// nolint // format string validation is handled internally via fmt.Sprintf
func (s *Splog) Debug(format string, args ...interface{}) {
	s.logger.Log(context.Background(), slog.LevelDebug, sprintf(format, args...))
}

// Close closes the log file if one was opened
func (s *Splog) Close() error {
	if s.logWriter != nil {
		return s.logWriter.Close()
	}
	return nil
}

func sprintf(format string, args ...interface{}) string {
	if len(args) == 0 {
		return format
	}
	return fmt.Sprintf(format, args...)
}
