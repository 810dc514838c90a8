// Package debuglog provides a debug logger that only speaks inside tests.
//
// A Logger is identified by a key and decides per call whether a message
// reaches output. The decision runs a fixed sequence of gates and stops at
// the first one that fails:
//
//  1. test context: the logger was constructed from code running under the
//     Go test runner (or FORCE_TEST_MODE=true)
//  2. level: the message severity is at or above LOG_LEVEL
//  3. key: LOG_KEY is empty or lists the logger's key
//
// A message that passes is rendered as
//
//	[LEVEL] [key] message
//	Data: <payload>
//
// cut to the LOG_LENGTH budget, and written to stderr for ERROR or stdout
// for everything else. A failed gate produces no output and no error; a
// logging call never fails.
//
// # Usage
//
//	func TestCheckout(t *testing.T) {
//	    log := debuglog.New("checkout")
//	    log.Debug("cart loaded", map[string]any{"items": 3})
//	    log.Error("payment declined", err)
//	}
//
// Run with LOG_LEVEL=debug LOG_KEY=checkout go test ./... to see only the
// checkout logger, with LOG_LENGTH=W to disable truncation.
//
// # Configuration
//
// Settings are read from the environment each time New is called and are
// fixed for the logger's lifetime. There is no global state: change the
// variables with t.Setenv and build a new logger. Options override the
// environment source, the test-context detector, the output streams and the
// clock, which makes the logger fully deterministic under test.
//
// # slog
//
// Logger.Handler exposes the same pipeline as a slog.Handler and
// Logger.Slog wraps it in a *slog.Logger, so code that already accepts a
// *slog.Logger can be handed a debuglog one in tests.
//
// # Tooling
//
// cmd/debuglog validate reports production (non _test.go) files that import
// this module, keeping debug logging out of shipped code.
package debuglog
