// Package detector decides whether code is running under a test runner.
//
// debuglog is meant to stay silent outside tests. Detection is a heuristic:
// StackDetector captures the calling goroutine's stack once and looks for
// substrings that only appear in test execution, such as testing.tRunner
// frames or *_test.go file names. Setting FORCE_TEST_MODE=true forces a
// positive result. An empty stack is treated as "not a test".
//
// Because the heuristic is substring-based it can misfire in both
// directions. Code that needs a deterministic answer, tests in particular,
// should use Static instead:
//
//	logger := debuglog.New("auth", debuglog.WithDetector(detector.Static(true)))
package detector
