package debuglog

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/debuglog/pkg/format"
	"github.com/dmitrymomot/debuglog/pkg/level"
	"github.com/dmitrymomot/debuglog/pkg/logger"
)

// SeverityFromSlog maps a slog level onto the four-step severity scale.
func SeverityFromSlog(l slog.Level) level.Severity {
	switch {
	case l < slog.LevelInfo:
		return level.Debug
	case l < slog.LevelWarn:
		return level.Info
	case l < slog.LevelError:
		return level.Warn
	default:
		return level.Error
	}
}

// Handler is a slog.Handler feeding records through a Logger's gates.
// Record and handler attributes become the Data payload as a map; nested
// groups become nested maps.
type Handler struct {
	logger *Logger
	attrs  []slog.Attr
	groups []string
}

// Handler returns a slog.Handler backed by l.
func (l *Logger) Handler() *Handler {
	return &Handler{logger: l}
}

// Slog returns a *slog.Logger backed by l. Extractors add attributes taken
// from the context of each call.
func (l *Logger) Slog(extractors ...logger.ContextExtractor) *slog.Logger {
	return logger.New(
		logger.WithHandler(l.Handler()),
		logger.WithContextExtractors(extractors...),
	)
}

func (h *Handler) Enabled(_ context.Context, l slog.Level) bool {
	return h.logger.Enabled(SeverityFromSlog(l))
}

func (h *Handler) Handle(_ context.Context, rec slog.Record) error {
	lvl := SeverityFromSlog(rec.Level)
	if !h.logger.Enabled(lvl) {
		return nil
	}

	recAttrs := make([]slog.Attr, 0, rec.NumAttrs())
	rec.Attrs(func(a slog.Attr) bool {
		recAttrs = append(recAttrs, a)
		return true
	})

	data := make(map[string]any)
	addAttrs(data, h.attrs)
	if len(recAttrs) > 0 {
		addAttrs(nest(data, h.groups), recAttrs)
	}

	if len(data) == 0 {
		h.logger.log(lvl, rec.Message)
		return nil
	}
	h.logger.log(lvl, rec.Message, data)
	return nil
}

// WithAttrs stores attrs under the currently open groups.
func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}
	wrapped := attrs
	for i := len(h.groups) - 1; i >= 0; i-- {
		wrapped = []slog.Attr{{Key: h.groups[i], Value: slog.GroupValue(wrapped...)}}
	}
	return &Handler{
		logger: h.logger,
		attrs:  append(append([]slog.Attr(nil), h.attrs...), wrapped...),
		groups: h.groups,
	}
}

func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	return &Handler{
		logger: h.logger,
		attrs:  h.attrs,
		groups: append(append([]string(nil), h.groups...), name),
	}
}

func nest(m map[string]any, groups []string) map[string]any {
	for _, g := range groups {
		child, ok := m[g].(map[string]any)
		if !ok {
			child = make(map[string]any)
			m[g] = child
		}
		m = child
	}
	return m
}

func addAttrs(m map[string]any, attrs []slog.Attr) {
	for _, a := range attrs {
		v := a.Value.Resolve()
		if a.Key == "" && v.Kind() != slog.KindGroup {
			continue
		}
		if v.Kind() == slog.KindGroup {
			group := v.Group()
			if len(group) == 0 {
				continue
			}
			if a.Key == "" {
				addAttrs(m, group)
				continue
			}
			addAttrs(nest(m, []string{a.Key}), group)
			continue
		}
		m[a.Key] = attrValue(v)
	}
}

func attrValue(v slog.Value) any {
	switch v.Kind() {
	case slog.KindDuration:
		return v.Duration().String()
	case slog.KindTime:
		return v.Time()
	default:
		a := v.Any()
		if text, ok := format.ErrorText(a); ok {
			return text
		}
		return a
	}
}
