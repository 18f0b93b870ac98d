package logger

import (
	"fmt"
	"log/slog"
	"os"
)

// Logger is a thin chainable wrapper around slog that carries the
// package/function context as structured attributes. The Err/Error/ErrMsg
// variants both log and return an error so call sites can do
// `return log.Err("failed to x", err)` in one line.
type Logger struct {
	logger *slog.Logger
}

var root = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
	Level: slog.LevelInfo,
}))

func New(pkg string) Logger {
	return Logger{logger: root.With("package", pkg)}
}

// slog falls back to the root logger so a zero-value Logger is usable.
func (l Logger) slog() *slog.Logger {
	if l.logger == nil {
		return root
	}
	return l.logger
}

func (l Logger) Function(name string) Logger {
	return Logger{logger: l.slog().With("function", name)}
}

func (l Logger) File(name string) Logger {
	return Logger{logger: l.slog().With("file", name)}
}

func (l Logger) With(args ...any) Logger {
	return Logger{logger: l.slog().With(args...)}
}

func (l Logger) Info(msg string, args ...any) {
	l.slog().Info(msg, args...)
}

func (l Logger) Warn(msg string, args ...any) {
	l.slog().Warn(msg, args...)
}

// Err logs the error and returns it wrapped with the message.
func (l Logger) Err(msg string, err error, args ...any) error {
	l.slog().Error(msg, append(args, "error", err)...)
	return fmt.Errorf("%s: %w", msg, err)
}

// Er logs the error without returning one, for paths that swallow failures.
func (l Logger) Er(msg string, err error, args ...any) {
	l.slog().Error(msg, append(args, "error", err)...)
}

// Error logs and returns a new error built from the message.
func (l Logger) Error(msg string, args ...any) error {
	l.slog().Error(msg, args...)
	return fmt.Errorf("%s", msg)
}

// ErrMsg logs and returns a new error with no extra attributes.
func (l Logger) ErrMsg(msg string) error {
	l.slog().Error(msg)
	return fmt.Errorf("%s", msg)
}

// ErMsg logs a message at error level without returning anything.
func (l Logger) ErMsg(msg string) {
	l.slog().Error(msg)
}
