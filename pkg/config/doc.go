// Package config reads configuration from environment variables without
// caching anything between calls.
//
// It wraps `github.com/caarlos0/env/v11` and `github.com/joho/godotenv`:
//
//   - Load parses the environment into any struct using `env` field tags.
//   - LoadEnv / OverloadEnv / MustLoadEnv pull variables from `.env` files
//     into the process environment, handy for a `.env.test` holding the
//     logging knobs of a test suite.
//   - ReadEnvFile parses a file into a map usable with WithEnvironment.
//   - Read produces the debuglog Settings snapshot.
//
// # Settings
//
// Read interprets four variables:
//
//	LOG_LEVEL        debug | info | warn | error (any case), default info
//	LOG_LENGTH       S | L | W (any case), default 80 runes; S=160, L=300, W=unbounded
//	LOG_KEY          allow-list split on "," ":" or "/", default empty (allow all)
//	FORCE_TEST_MODE  "true" forces test-context detection
//
// Malformed values never produce errors; each falls back to its default.
//
// # No caching
//
// Every call to Load or Read looks at the environment again. A logger takes
// its Settings once at construction and keeps them for its lifetime, so
// tests can change variables with t.Setenv and simply build a new logger;
// there is no global state to reset.
//
// # Error Handling
//
// The package defines sentinel errors that can be compared with `errors.Is`:
//
//   - `ErrParsingConfig`  – failed to parse env vars into struct.
//   - `ErrNilPointer`     – nil pointer passed to `Load`/`MustLoad`.
//   - `ErrLoadingEnvFile` – a `.env` file could not be read.
package config
