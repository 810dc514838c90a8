package debuglog

import (
	"slices"
	"time"

	"github.com/dmitrymomot/debuglog/pkg/config"
	"github.com/dmitrymomot/debuglog/pkg/detector"
	"github.com/dmitrymomot/debuglog/pkg/format"
	"github.com/dmitrymomot/debuglog/pkg/keyfilter"
	"github.com/dmitrymomot/debuglog/pkg/level"
	"github.com/dmitrymomot/debuglog/pkg/output"
)

// DefaultKey is used when New is given an empty key.
const DefaultKey = "default"

// Severity aliases so callers rarely need to import pkg/level.
const (
	LevelDebug = level.Debug
	LevelInfo  = level.Info
	LevelWarn  = level.Warn
	LevelError = level.Error
)

// Logger is a keyed debug logger. Its settings and test-context verdict are
// captured by New and never change afterwards.
type Logger struct {
	key       string
	settings  config.Settings
	isTest    bool
	formatter *format.Formatter
	router    *output.Router
	now       func() time.Time
}

// New creates a Logger for key, snapshotting the environment and detecting
// the test context from the caller's stack.
func New(key string, opts ...Option) *Logger {
	o := &options{now: time.Now}
	for _, opt := range opts {
		opt(o)
	}

	if key == "" {
		key = DefaultKey
	}

	d := o.detector
	if d == nil {
		d = detector.NewStackDetector(o.detectorOptions()...)
	}

	return &Logger{
		key:       key,
		settings:  config.Read(o.loadOptions()...),
		isTest:    d.IsTestEnvironment(),
		formatter: format.New(o.formatOpts...),
		router:    output.NewRouter(o.routerOpts...),
		now:       o.now,
	}
}

// Key returns the logger's identifying key.
func (l *Logger) Key() string { return l.key }

// Settings returns a copy of the settings captured at construction.
func (l *Logger) Settings() config.Settings {
	s := l.settings
	s.AllowedKeys = slices.Clone(l.settings.AllowedKeys)
	return s
}

// IsTestEnvironment reports the test-context verdict taken at construction.
func (l *Logger) IsTestEnvironment() bool { return l.isTest }

// Enabled reports whether a message at lvl would be written. Use it to skip
// building expensive payloads.
func (l *Logger) Enabled(lvl level.Severity) bool {
	return l.isTest &&
		level.ShouldLog(lvl, l.settings.Threshold) &&
		keyfilter.Allowed(l.key, l.settings.AllowedKeys)
}

// Debug logs at DEBUG. At most one optional payload is rendered; passing nil
// explicitly renders "Data: null".
func (l *Logger) Debug(message string, data ...any) { l.log(level.Debug, message, data...) }

// Info logs at INFO.
func (l *Logger) Info(message string, data ...any) { l.log(level.Info, message, data...) }

// Warn logs at WARN.
func (l *Logger) Warn(message string, data ...any) { l.log(level.Warn, message, data...) }

// Error logs at ERROR to the error stream.
func (l *Logger) Error(message string, data ...any) { l.log(level.Error, message, data...) }

// Log logs at an arbitrary severity.
func (l *Logger) Log(lvl level.Severity, message string, data ...any) { l.log(lvl, message, data...) }

func (l *Logger) log(lvl level.Severity, message string, data ...any) {
	if !l.Enabled(lvl) {
		return
	}
	entry := format.NewEntry(l.now(), lvl, l.key, message, data...)
	l.router.Write(l.formatter.Format(entry, l.settings.MaxLength()), lvl)
}
