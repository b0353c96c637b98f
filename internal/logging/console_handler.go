package logging

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"
)

// consoleHandler renders one human-readable line per record:
//
//	2024-05-01 10:00:00 INFO matcher: matching progress [100/250] kept=40 rejected=60
//
// The component attribute becomes a prefix and a processed/total pair is
// folded into a bracketed counter.
type consoleHandler struct {
	out    *syncWriter
	level  slog.Leveler
	source bool
	fields []field
	prefix string
}

type field struct {
	key   string
	value slog.Value
}

type syncWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (s *syncWriter) write(p []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.w.Write(p)
	return err
}

func newConsoleHandler(w io.Writer, level slog.Leveler, source bool) slog.Handler {
	return &consoleHandler{out: &syncWriter{w: w}, level: level, source: source}
}

func (h *consoleHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

func (h *consoleHandler) Handle(_ context.Context, r slog.Record) error {
	fields := make([]field, 0, len(h.fields)+r.NumAttrs())
	fields = append(fields, h.fields...)
	r.Attrs(func(a slog.Attr) bool {
		fields = collect(fields, h.prefix, a)
		return true
	})

	ts := r.Time
	if ts.IsZero() {
		ts = time.Now()
	}

	line := make([]byte, 0, 160)
	line = append(line, formatTimestamp(ts)...)
	line = append(line, ' ')
	line = append(line, levelLabel(r.Level)...)
	line = append(line, ' ')

	component, fields := take(fields, FieldComponent)
	if component != nil {
		line = append(line, attrString(*component)...)
		line = append(line, ": "...)
	}

	msg := strings.TrimSpace(r.Message)
	if msg == "" {
		msg = "(no message)"
	}
	line = append(line, msg...)

	processed, rest := take(fields, FieldProcessed)
	if processed != nil {
		if total, rest2 := take(rest, FieldTotal); total != nil {
			line = append(line, " ["...)
			line = append(line, formatValue(*processed)...)
			line = append(line, '/')
			line = append(line, formatValue(*total)...)
			line = append(line, ']')
			fields = rest2
		}
	}

	if h.source {
		if src := r.Source(); src != nil && src.File != "" {
			line = append(line, " ("...)
			line = append(line, filepath.Base(src.File)...)
			line = append(line, ':')
			line = strconv.AppendInt(line, int64(src.Line), 10)
			line = append(line, ')')
		}
	}

	for _, f := range fields {
		line = append(line, ' ')
		line = append(line, f.key...)
		line = append(line, '=')
		line = append(line, formatValue(f.value)...)
	}
	line = append(line, '\n')

	return h.out.write(line)
}

func (h *consoleHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}
	next := *h
	next.fields = make([]field, len(h.fields), len(h.fields)+len(attrs))
	copy(next.fields, h.fields)
	for _, a := range attrs {
		next.fields = collect(next.fields, h.prefix, a)
	}
	return &next
}

func (h *consoleHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	next := *h
	next.prefix = h.prefix + name + "."
	return &next
}

// collect flattens a into dotted keys under prefix.
func collect(dst []field, prefix string, a slog.Attr) []field {
	v := a.Value.Resolve()
	if v.Kind() == slog.KindGroup {
		sub := prefix
		if a.Key != "" {
			sub = prefix + a.Key + "."
		}
		for _, g := range v.Group() {
			dst = collect(dst, sub, g)
		}
		return dst
	}
	if a.Key == "" {
		return dst
	}
	return append(dst, field{key: prefix + a.Key, value: v})
}

// take removes the first field named key, returning its value.
func take(fields []field, key string) (*slog.Value, []field) {
	for i, f := range fields {
		if f.key != key {
			continue
		}
		v := f.value
		out := make([]field, 0, len(fields)-1)
		out = append(out, fields[:i]...)
		out = append(out, fields[i+1:]...)
		return &v, out
	}
	return nil, fields
}

func levelLabel(level slog.Level) string {
	switch {
	case level >= slog.LevelError:
		return "ERROR"
	case level >= slog.LevelWarn:
		return "WARN"
	case level >= slog.LevelInfo:
		return "INFO"
	default:
		return "DEBUG"
	}
}
