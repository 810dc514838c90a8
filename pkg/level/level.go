package level

import (
	"strconv"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Severity is the importance of a log message. Higher values are more severe.
type Severity int

const (
	Debug Severity = iota
	Info
	Warn
	Error
)

// Default is the threshold used when none is configured.
const Default = Info

var names = [...]string{
	Debug: "DEBUG",
	Info:  "INFO",
	Warn:  "WARN",
	Error: "ERROR",
}

// String returns the upper-case enumeration name, e.g. "WARN".
// Out-of-range values render as "SEVERITY(n)".
func (s Severity) String() string {
	if s.Valid() {
		return names[s]
	}
	return "SEVERITY(" + strconv.Itoa(int(s)) + ")"
}

// Valid reports whether s is one of the four defined severities.
func (s Severity) Valid() bool {
	return s >= Debug && s <= Error
}

// All returns every severity in ascending rank order.
func All() []Severity {
	return []Severity{Debug, Info, Warn, Error}
}

// Parse maps "debug", "info", "warn" or "error" (any case) to a Severity.
// Anything else, including surrounding whitespace, yields Default.
func Parse(raw string) Severity {
	// Casers carry state, so one is built per call.
	switch cases.Lower(language.Und).String(raw) {
	case "debug":
		return Debug
	case "info":
		return Info
	case "warn":
		return Warn
	case "error":
		return Error
	default:
		return Default
	}
}

// ShouldLog reports whether a message at lvl passes the threshold.
func ShouldLog(lvl, threshold Severity) bool {
	return lvl >= threshold
}
