package level_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/debuglog/pkg/level"
)

func TestParse(t *testing.T) {
	tests := []struct {
		raw  string
		want level.Severity
	}{
		{"debug", level.Debug},
		{"DEBUG", level.Debug},
		{"Info", level.Info},
		{"warn", level.Warn},
		{"WaRn", level.Warn},
		{"error", level.Error},
		{"ERROR", level.Error},
		{"", level.Info},
		{"INVALID_LEVEL", level.Info},
		{"0", level.Info},
		{"3", level.Info},
		{" warn", level.Info},
		{"warning", level.Info},
		{"ſ", level.Info},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, level.Parse(tt.raw))
		})
	}
}

func TestShouldLog(t *testing.T) {
	all := level.All()
	for i, lvl := range all {
		for j, threshold := range all {
			assert.Equal(t, i >= j, level.ShouldLog(lvl, threshold), "%s vs %s", lvl, threshold)
		}
	}

	assert.True(t, level.ShouldLog(level.Warn, level.Info))
	assert.False(t, level.ShouldLog(level.Debug, level.Error))
}

func TestSeverityString(t *testing.T) {
	assert.Equal(t, "DEBUG", level.Debug.String())
	assert.Equal(t, "INFO", level.Info.String())
	assert.Equal(t, "WARN", level.Warn.String())
	assert.Equal(t, "ERROR", level.Error.String())
	assert.Equal(t, "SEVERITY(7)", level.Severity(7).String())
	assert.False(t, level.Severity(-1).Valid())
}
