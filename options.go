package debuglog

import (
	"io"
	"time"

	"github.com/dmitrymomot/debuglog/pkg/config"
	"github.com/dmitrymomot/debuglog/pkg/detector"
	"github.com/dmitrymomot/debuglog/pkg/format"
	"github.com/dmitrymomot/debuglog/pkg/output"
)

// Option configures a Logger.
type Option func(*options)

type options struct {
	env        map[string]string
	detector   detector.Detector
	routerOpts []output.RouterOption
	formatOpts []format.Option
	now        func() time.Time
}

// WithEnvironment reads settings and the force flag from vars instead of
// the process environment. A nil map is ignored.
func WithEnvironment(vars map[string]string) Option {
	return func(o *options) {
		if vars != nil {
			o.env = vars
		}
	}
}

// WithDetector replaces stack-based test-context detection, e.g. with
// detector.Static(true). Nil is ignored.
func WithDetector(d detector.Detector) Option {
	return func(o *options) {
		if d != nil {
			o.detector = d
		}
	}
}

// WithOutput pins the standard and error streams. A nil writer leaves that
// stream following the process-wide target (see output.Redirect).
func WithOutput(stdout, stderr io.Writer) Option {
	return func(o *options) {
		o.routerOpts = append(o.routerOpts, output.WithStdout(stdout), output.WithStderr(stderr))
	}
}

// WithTimestamp prefixes each line with the call time rendered with layout.
func WithTimestamp(layout string) Option {
	return func(o *options) {
		o.formatOpts = append(o.formatOpts, format.WithTimestamp(layout))
	}
}

// WithClock replaces time.Now. Nil is ignored.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		if now != nil {
			o.now = now
		}
	}
}

func (o *options) loadOptions() []config.LoadOption {
	if o.env == nil {
		return nil
	}
	return []config.LoadOption{config.WithEnvironment(o.env)}
}

func (o *options) detectorOptions() []detector.Option {
	if o.env == nil {
		return nil
	}
	vars := o.env
	return []detector.Option{detector.WithLookupEnv(func(key string) (string, bool) {
		v, ok := vars[key]
		return v, ok
	})}
}
