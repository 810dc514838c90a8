// Package level defines the ordered Severity scale used by debuglog and the
// pure threshold comparison that decides whether a message passes.
//
// Severities are ranked DEBUG < INFO < WARN < ERROR. ShouldLog has no side
// effects and never reads the process environment, so it can be exercised
// independently of test-context detection or configuration.
//
// # Usage
//
//	import "github.com/dmitrymomot/debuglog/pkg/level"
//
//	threshold := level.Parse(os.Getenv("LOG_LEVEL")) // INFO when unset
//	if level.ShouldLog(level.Warn, threshold) {
//	    // emit
//	}
//
// Parse is defensive: unknown, numeric or empty input yields Info.
package level
