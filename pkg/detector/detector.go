package detector

import (
	"os"
	"runtime"
	"strings"
)

// ForceTestModeEnv names the variable that forces test-context detection
// when set to the literal "true".
const ForceTestModeEnv = "FORCE_TEST_MODE"

// RunnerMarkers are stack substrings emitted by the Go testing machinery.
var RunnerMarkers = []string{
	"testing.tRunner",
	"testing.(*T)",
	"testing.(*B)",
	"testing.(*F)",
	"testing.runExample",
	"testing.fRunner",
	"testing.runFuzzTests",
}

// TestFileMarkers are substrings that identify test source files or
// compiled test binaries.
var TestFileMarkers = []string{
	"_test.go",
	"_test.",
	".test.",
}

// Detector reports whether the current context is a test run.
type Detector interface {
	IsTestEnvironment() bool
}

// Static is a Detector with a fixed answer.
type Static bool

func (s Static) IsTestEnvironment() bool { return bool(s) }

// Option configures a StackDetector.
type Option func(*StackDetector)

// WithStackSource replaces the stack capture. Nil sources are ignored.
func WithStackSource(fn func() string) Option {
	return func(d *StackDetector) {
		if fn != nil {
			d.stack = fn
		}
	}
}

// WithLookupEnv replaces os.LookupEnv for the force flag. Nil is ignored.
func WithLookupEnv(fn func(string) (string, bool)) Option {
	return func(d *StackDetector) {
		if fn != nil {
			d.lookupEnv = fn
		}
	}
}

// StackDetector evaluates the heuristics once, at construction, and caches
// the result for its lifetime.
type StackDetector struct {
	stack     func() string
	lookupEnv func(string) (string, bool)
	result    bool
}

// NewStackDetector captures the current stack and evaluates it.
func NewStackDetector(opts ...Option) *StackDetector {
	d := &StackDetector{
		stack:     CurrentStack,
		lookupEnv: os.LookupEnv,
	}
	for _, opt := range opts {
		opt(d)
	}
	d.result = d.detect()
	return d
}

func (d *StackDetector) IsTestEnvironment() bool { return d.result }

func (d *StackDetector) detect() bool {
	stack := d.stack()
	if stack == "" {
		return false
	}
	if v, ok := d.lookupEnv(ForceTestModeEnv); ok && v == "true" {
		return true
	}
	return MatchesAny(stack, RunnerMarkers) || MatchesAny(stack, TestFileMarkers)
}

// MatchesAny reports whether s contains any of markers.
func MatchesAny(s string, markers []string) bool {
	for _, m := range markers {
		if strings.Contains(s, m) {
			return true
		}
	}
	return false
}

// CurrentStack returns the text trace of the calling goroutine.
func CurrentStack() string {
	buf := make([]byte, 4096)
	for {
		n := runtime.Stack(buf, false)
		if n < len(buf) {
			return string(buf[:n])
		}
		if len(buf) >= 1<<20 {
			return string(buf[:n])
		}
		buf = make([]byte, len(buf)*2)
	}
}

// IsTestFile reports whether a file base name follows the Go test file
// convention.
func IsTestFile(name string) bool {
	return strings.HasSuffix(name, "_test.go")
}
