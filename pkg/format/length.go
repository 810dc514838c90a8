package format

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// LengthMode selects the maximum rendered length of a log line.
type LengthMode int

const (
	LengthDefault LengthMode = iota
	LengthShort
	LengthLong
	LengthWhole
)

// Unbounded is the MaxLength sentinel that disables truncation.
const Unbounded = -1

var lengthModeNames = [...]string{
	LengthDefault: "DEFAULT",
	LengthShort:   "SHORT",
	LengthLong:    "LONG",
	LengthWhole:   "WHOLE",
}

var maxLengths = [...]int{
	LengthDefault: 80,
	LengthShort:   160,
	LengthLong:    300,
	LengthWhole:   Unbounded,
}

func (m LengthMode) String() string {
	if m >= LengthDefault && m <= LengthWhole {
		return lengthModeNames[m]
	}
	return lengthModeNames[LengthDefault]
}

// MaxLength returns the rune budget for m, or Unbounded for LengthWhole.
// Unknown modes get the LengthDefault budget.
func (m LengthMode) MaxLength() int {
	if m >= LengthDefault && m <= LengthWhole {
		return maxLengths[m]
	}
	return maxLengths[LengthDefault]
}

// ParseLengthMode maps the single-letter codes "s", "l" and "w" (any case)
// to their modes. The match is exact after lowercasing, so " s" or "short"
// yield LengthDefault.
func ParseLengthMode(raw string) LengthMode {
	switch cases.Lower(language.Und).String(raw) {
	case "s":
		return LengthShort
	case "l":
		return LengthLong
	case "w":
		return LengthWhole
	default:
		return LengthDefault
	}
}
