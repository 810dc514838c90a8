package format

import (
	"fmt"
	"reflect"
	"strings"
	"unicode/utf8"

	"github.com/goccy/go-json"
)

const (
	// TruncationSuffix ends every truncated line.
	TruncationSuffix = "..."

	jsonIndent = "  "
)

var suffixLen = utf8.RuneCountInString(TruncationSuffix)

// Option configures a Formatter.
type Option func(*Formatter)

// WithTimestamp prefixes each line with "[<time>] " rendered with layout.
// An empty layout is ignored.
func WithTimestamp(layout string) Option {
	return func(f *Formatter) {
		if layout != "" {
			f.timeLayout = layout
		}
	}
}

// Formatter renders entries. The zero value is ready to use.
type Formatter struct {
	timeLayout string
}

// New creates a Formatter.
func New(opts ...Option) *Formatter {
	f := &Formatter{}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Format renders e and truncates the result to maxLength runes.
// A negative maxLength disables truncation.
func (f *Formatter) Format(e Entry, maxLength int) string {
	var b strings.Builder

	if f != nil && f.timeLayout != "" {
		b.WriteString("[")
		b.WriteString(e.Time.Format(f.timeLayout))
		b.WriteString("] ")
	}

	b.WriteString("[")
	b.WriteString(e.Level.String())
	b.WriteString("] [")
	b.WriteString(e.Key)
	b.WriteString("] ")
	b.WriteString(e.Message)

	if e.HasData {
		b.WriteString("\nData: ")
		b.WriteString(RenderData(e.Data))
	}

	return Truncate(b.String(), maxLength)
}

// Truncate cuts s to maxLength runes, replacing the tail with
// TruncationSuffix. Strings that already fit are returned unchanged, as is
// everything when maxLength is negative. When maxLength is shorter than the
// suffix the result is the first maxLength runes of the suffix.
func Truncate(s string, maxLength int) string {
	if maxLength < 0 || utf8.RuneCountInString(s) <= maxLength {
		return s
	}
	if maxLength < suffixLen {
		return string([]rune(TruncationSuffix)[:maxLength])
	}
	runes := []rune(s)
	return string(runes[:maxLength-suffixLen]) + TruncationSuffix
}

// RenderData converts a payload to its display form. It never panics.
func RenderData(data any) (out string) {
	if data == nil {
		return "null"
	}

	defer func() {
		if r := recover(); r != nil {
			out = fallback(data)
		}
	}()

	if text, ok := ErrorText(data); ok {
		return text
	}

	v := reflect.ValueOf(data)
	for v.Kind() == reflect.Pointer && !v.IsNil() {
		v = v.Elem()
	}

	if !isObject(v.Type()) {
		if v.Kind() == reflect.Pointer {
			return "null"
		}
		if _, ok := data.(fmt.Stringer); ok {
			return fmt.Sprint(data)
		}
		return fmt.Sprint(v.Interface())
	}

	// Cyclic maps and slices overflow the stack in both the encoder and fmt.
	if hasCycle(reflect.ValueOf(data)) {
		return fmt.Sprintf("[Object: %T]", data)
	}

	b, err := json.MarshalIndent(data, "", jsonIndent)
	if err != nil {
		return fallback(data)
	}
	return string(b)
}

// ErrorText returns err.Error() for values that are errors without their
// own JSON encoding.
func ErrorText(v any) (string, bool) {
	err, ok := v.(error)
	if !ok {
		return "", false
	}
	if _, marshals := v.(json.Marshaler); marshals {
		return "", false
	}
	return err.Error(), true
}

func fallback(data any) string {
	return fmt.Sprintf("[Object: %v]", data)
}

// isObject reports whether values of t should be rendered as JSON.
func isObject(t reflect.Type) bool {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.Map, reflect.Slice, reflect.Array, reflect.Struct, reflect.Interface:
		return true
	default:
		return false
	}
}
