package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	maxLogMegabytes = 10
	maxLogBackups   = 3
	maxLogDays      = 7
)

// secretPatterns matches common secret/token formats that can show up in
// command arguments or prompt replies.
var secretPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(api[_-]?key|token|secret|password|authorization)\s*[:=]\s*\S+`),
	regexp.MustCompile(`(?i)bearer\s+\S+`),
	regexp.MustCompile(`gh[pousr]_\S+`),
	regexp.MustCompile(`github_pat_\S+`),
	regexp.MustCompile(`AKIA[A-Z0-9]{16}`),
}

const redactedPlaceholder = "[REDACTED]"

// ScrubSecrets replaces known secret patterns in a string.
func ScrubSecrets(s string) string {
	for _, pat := range secretPatterns {
		s = pat.ReplaceAllString(s, redactedPlaceholder)
	}
	return s
}

// openLogFile returns the size-rotated writer for logPath. Rotated files
// are named devmenu-<timestamp>.log next to it. The file is opened up front
// so an unwritable log dir is reported by Setup, not dropped on first write.
func openLogFile(logPath string) (*lumberjack.Logger, error) {
	if err := os.MkdirAll(filepath.Dir(logPath), 0700); err != nil {
		return nil, err
	}
	w := &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    maxLogMegabytes,
		MaxBackups: maxLogBackups,
		MaxAge:     maxLogDays,
	}
	if _, err := w.Write(nil); err != nil {
		return nil, err
	}
	return w, nil
}

// ScrubbingHandler wraps a slog.Handler to scrub secret patterns from the
// message and string attributes.
type ScrubbingHandler struct {
	inner slog.Handler
}

func NewScrubbingHandler(inner slog.Handler) *ScrubbingHandler {
	return &ScrubbingHandler{inner: inner}
}

func (h *ScrubbingHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.inner.Enabled(ctx, level)
}

func (h *ScrubbingHandler) Handle(ctx context.Context, r slog.Record) error {
	r2 := slog.NewRecord(r.Time, r.Level, ScrubSecrets(r.Message), r.PC)
	r.Attrs(func(a slog.Attr) bool {
		r2.AddAttrs(scrubAttr(a))
		return true
	})
	return h.inner.Handle(ctx, r2)
}

func (h *ScrubbingHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	scrubbed := make([]slog.Attr, len(attrs))
	for i, a := range attrs {
		scrubbed[i] = scrubAttr(a)
	}
	return &ScrubbingHandler{inner: h.inner.WithAttrs(scrubbed)}
}

func (h *ScrubbingHandler) WithGroup(name string) slog.Handler {
	return &ScrubbingHandler{inner: h.inner.WithGroup(name)}
}

func scrubAttr(a slog.Attr) slog.Attr {
	switch a.Value.Kind() {
	case slog.KindString:
		return slog.String(a.Key, ScrubSecrets(a.Value.String()))
	case slog.KindAny:
		// argv slices end up here
		if ss, ok := a.Value.Any().([]string); ok {
			out := make([]string, len(ss))
			for i, s := range ss {
				out[i] = ScrubSecrets(s)
			}
			return slog.Any(a.Key, out)
		}
	case slog.KindGroup:
		attrs := a.Value.Group()
		scrubbed := make([]any, len(attrs))
		for i, ga := range attrs {
			scrubbed[i] = scrubAttr(ga)
		}
		return slog.Group(a.Key, scrubbed...)
	}
	return a
}

// ParseLevel maps a config log level ("debug", "info", "warn", "error") to a
// slog.Level. Unknown values fall back to info.
func ParseLevel(s string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo
	}
	return level
}

// Setup creates the launcher logger writing JSON to logPath.
// Returns the logger and a cleanup function to close the log file.
func Setup(logPath string, level slog.Level) (*slog.Logger, func(), error) {
	w, err := openLogFile(logPath)
	if err != nil {
		return nil, nil, fmt.Errorf("setup logging: %w", err)
	}

	handler := NewScrubbingHandler(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
	return slog.New(handler), func() { w.Close() }, nil
}

// Discard returns a logger that drops everything. Used when the log file
// cannot be opened; the terminal belongs to the operator.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// RunLogger creates a child logger tagged with a fresh run ID so the lines
// of one launcher session can be grouped.
func RunLogger(parent *slog.Logger) *slog.Logger {
	return parent.With("run_id", uuid.NewString())
}
