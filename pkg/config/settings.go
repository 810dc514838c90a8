package config

import (
	"github.com/dmitrymomot/debuglog/pkg/detector"
	"github.com/dmitrymomot/debuglog/pkg/format"
	"github.com/dmitrymomot/debuglog/pkg/keyfilter"
	"github.com/dmitrymomot/debuglog/pkg/level"
)

// Environment variable names read by Read.
const (
	EnvLevel     = "LOG_LEVEL"
	EnvLength    = "LOG_LENGTH"
	EnvKeys      = "LOG_KEY"
	EnvForceTest = detector.ForceTestModeEnv
)

// raw mirrors the environment verbatim; interpretation happens in Read so
// malformed values can fall back instead of failing the parse.
type raw struct {
	Level     string `env:"LOG_LEVEL"`
	Length    string `env:"LOG_LENGTH"`
	Keys      string `env:"LOG_KEY"`
	ForceTest string `env:"FORCE_TEST_MODE"`
}

// Settings is a snapshot of the logging knobs taken at one point in time.
type Settings struct {
	Threshold   level.Severity
	Length      format.LengthMode
	AllowedKeys []string
	ForceTest   bool
}

// MaxLength is the rune budget implied by Length.
func (s Settings) MaxLength() int {
	return s.Length.MaxLength()
}

// Defaults returns the settings used when nothing is configured.
func Defaults() Settings {
	return Settings{
		Threshold:   level.Default,
		Length:      format.LengthDefault,
		AllowedKeys: []string{},
	}
}

// Read takes a fresh snapshot of the environment. It never fails: missing or
// malformed values fall back to Defaults field by field.
func Read(opts ...LoadOption) Settings {
	var r raw
	if err := Load(&r, opts...); err != nil {
		return Defaults()
	}
	return Settings{
		Threshold:   level.Parse(r.Level),
		Length:      format.ParseLengthMode(r.Length),
		AllowedKeys: keyfilter.Parse(r.Keys),
		ForceTest:   r.ForceTest == "true",
	}
}
