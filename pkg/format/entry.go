package format

import (
	"time"

	"github.com/dmitrymomot/debuglog/pkg/level"
)

// Entry is a single log call. It lives only for the duration of that call.
type Entry struct {
	Time    time.Time
	Level   level.Severity
	Key     string
	Message string

	// Data is rendered only when HasData is set, which lets a caller pass an
	// explicit nil payload ("Data: null") distinct from no payload at all.
	Data    any
	HasData bool
}

// NewEntry builds an Entry stamped with now. The first element of data, if
// any, becomes the payload; further elements are ignored.
func NewEntry(now time.Time, lvl level.Severity, key, message string, data ...any) Entry {
	e := Entry{
		Time:    now,
		Level:   lvl,
		Key:     key,
		Message: message,
	}
	if len(data) > 0 {
		e.Data = data[0]
		e.HasData = true
	}
	return e
}
