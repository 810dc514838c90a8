package format_test

import (
	"errors"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/debuglog/pkg/format"
	"github.com/dmitrymomot/debuglog/pkg/level"
)

var fixedTime = time.Date(2024, 3, 15, 10, 30, 45, 0, time.UTC)

func TestFormatHeader(t *testing.T) {
	f := format.New()
	e := format.NewEntry(fixedTime, level.Warn, "auth", "token expired")
	assert.Equal(t, "[WARN] [auth] token expired", f.Format(e, format.Unbounded))
}

func TestFormatZeroValueFormatter(t *testing.T) {
	var f format.Formatter
	e := format.NewEntry(fixedTime, level.Info, "k", "m")
	assert.Equal(t, "[INFO] [k] m", f.Format(e, format.Unbounded))
}

func TestFormatWithTimestamp(t *testing.T) {
	f := format.New(format.WithTimestamp(time.RFC3339))
	e := format.NewEntry(fixedTime, level.Debug, "k", "m")
	assert.Equal(t, "[2024-03-15T10:30:45Z] [DEBUG] [k] m", f.Format(e, format.Unbounded))
}

func TestFormatData(t *testing.T) {
	f := format.New()

	t.Run("absent payload", func(t *testing.T) {
		e := format.NewEntry(fixedTime, level.Info, "k", "m")
		out := f.Format(e, format.Unbounded)
		assert.NotContains(t, out, "Data:")
	})

	t.Run("nil payload", func(t *testing.T) {
		e := format.NewEntry(fixedTime, level.Info, "k", "m", nil)
		assert.Equal(t, "[INFO] [k] m\nData: null", f.Format(e, format.Unbounded))
	})

	t.Run("map payload", func(t *testing.T) {
		e := format.NewEntry(fixedTime, level.Info, "k", "m", map[string]any{"id": 1})
		assert.Equal(t, "[INFO] [k] m\nData: {\n  \"id\": 1\n}", f.Format(e, format.Unbounded))
	})

	t.Run("slice payload", func(t *testing.T) {
		e := format.NewEntry(fixedTime, level.Info, "k", "m", []int{1, 2})
		assert.Equal(t, "[INFO] [k] m\nData: [\n  1,\n  2\n]", f.Format(e, format.Unbounded))
	})

	t.Run("scalar payload", func(t *testing.T) {
		e := format.NewEntry(fixedTime, level.Info, "k", "m", 42)
		assert.Equal(t, "[INFO] [k] m\nData: 42", f.Format(e, format.Unbounded))
	})
}

type user struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type node struct {
	Name string
	Next *node
}

type panicky struct{}

func (panicky) MarshalJSON() ([]byte, error) { panic("boom") }

type failing struct{}

func (failing) MarshalJSON() ([]byte, error) { return nil, errors.New("cannot encode") }

func TestRenderData(t *testing.T) {
	t.Run("nil", func(t *testing.T) {
		assert.Equal(t, "null", format.RenderData(nil))
	})

	t.Run("string", func(t *testing.T) {
		assert.Equal(t, "plain", format.RenderData("plain"))
	})

	t.Run("bool", func(t *testing.T) {
		assert.Equal(t, "true", format.RenderData(true))
	})

	t.Run("duration uses its string form", func(t *testing.T) {
		assert.Equal(t, "1.5s", format.RenderData(1500*time.Millisecond))
	})

	t.Run("struct", func(t *testing.T) {
		got := format.RenderData(user{Name: "Ann", Email: "ann@example.com"})
		assert.Equal(t, "{\n  \"name\": \"Ann\",\n  \"email\": \"ann@example.com\"\n}", got)
	})

	t.Run("pointer to struct", func(t *testing.T) {
		got := format.RenderData(&user{Name: "Ann"})
		assert.Contains(t, got, "\"name\": \"Ann\"")
	})

	t.Run("error", func(t *testing.T) {
		assert.Equal(t, "connection refused", format.RenderData(errors.New("connection refused")))
	})

	t.Run("encoding error falls back", func(t *testing.T) {
		got := format.RenderData(map[string]any{"v": failing{}})
		assert.True(t, strings.HasPrefix(got, "[Object: "), got)
		assert.True(t, strings.HasSuffix(got, "]"), got)
	})

	t.Run("panicking marshaler falls back", func(t *testing.T) {
		var got string
		require.NotPanics(t, func() { got = format.RenderData([]panicky{{}}) })
		assert.True(t, strings.HasPrefix(got, "[Object: "), got)
	})

	t.Run("non cyclic pointers encode", func(t *testing.T) {
		got := format.RenderData(&node{Name: "a", Next: &node{Name: "b"}})
		assert.Contains(t, got, "\"Name\": \"b\"")
	})

	t.Run("self referencing map falls back", func(t *testing.T) {
		m := map[string]any{"name": "loop"}
		m["self"] = m
		var got string
		require.NotPanics(t, func() { got = format.RenderData(m) })
		assert.Equal(t, "[Object: map[string]interface {}]", got)
	})

	t.Run("self referencing slice falls back", func(t *testing.T) {
		s := make([]any, 1)
		s[0] = s
		var got string
		require.NotPanics(t, func() { got = format.RenderData(s) })
		assert.True(t, strings.HasPrefix(got, "[Object: "), got)
	})

	t.Run("cyclic pointers fall back", func(t *testing.T) {
		n := &node{Name: "a"}
		n.Next = n
		got := format.RenderData(n)
		assert.True(t, strings.HasPrefix(got, "[Object: "), got)
	})

	t.Run("shared references are not cycles", func(t *testing.T) {
		shared := map[string]int{"n": 1}
		got := format.RenderData(map[string]any{"a": shared, "b": shared})
		assert.Contains(t, got, "\"b\": {")
	})

	t.Run("pointer to scalar prints the value", func(t *testing.T) {
		n := 42
		s := "hello"
		assert.Equal(t, "42", format.RenderData(&n))
		assert.Equal(t, "hello", format.RenderData(&s))
	})

	t.Run("nil pointer to scalar", func(t *testing.T) {
		var n *int
		assert.Equal(t, "null", format.RenderData(n))
	})
}

func TestTruncate(t *testing.T) {
	t.Run("fits", func(t *testing.T) {
		assert.Equal(t, "hello", format.Truncate("hello", 5))
		assert.Equal(t, "hello", format.Truncate("hello", 80))
	})

	t.Run("cut to exact length", func(t *testing.T) {
		got := format.Truncate("hello world", 8)
		assert.Equal(t, "hello...", got)
		assert.Equal(t, 8, utf8.RuneCountInString(got))
	})

	t.Run("unbounded", func(t *testing.T) {
		long := strings.Repeat("x", 1000)
		assert.Equal(t, long, format.Truncate(long, format.Unbounded))
		assert.Equal(t, long, format.Truncate(long, -7))
	})

	t.Run("max equals suffix", func(t *testing.T) {
		assert.Equal(t, "...", format.Truncate("hello", 3))
	})

	t.Run("max shorter than suffix", func(t *testing.T) {
		assert.Equal(t, "..", format.Truncate("hello", 2))
		assert.Equal(t, ".", format.Truncate("hello", 1))
		assert.Equal(t, "", format.Truncate("hello", 0))
	})

	t.Run("multibyte runes are not split", func(t *testing.T) {
		got := format.Truncate("ログメッセージです", 6)
		assert.Equal(t, "ログメ...", got)
		assert.True(t, utf8.ValidString(got))
	})
}

func TestFormatTruncationLaw(t *testing.T) {
	f := format.New()
	e := format.NewEntry(fixedTime, level.Info, "key", strings.Repeat("a", 200), map[string]string{"k": "v"})
	full := f.Format(e, format.Unbounded)

	for _, n := range []int{3, 10, 80, 160, 300} {
		got := f.Format(e, n)
		if utf8.RuneCountInString(full) > n {
			assert.Equal(t, n, utf8.RuneCountInString(got), "n=%d", n)
			assert.True(t, strings.HasSuffix(got, format.TruncationSuffix), "n=%d", n)
		} else {
			assert.Equal(t, full, got, "n=%d", n)
		}
	}
}

func TestFormatIdempotent(t *testing.T) {
	f := format.New()
	e := format.NewEntry(fixedTime, level.Error, "db", "query failed", map[string]any{"sql": "SELECT 1", "args": []int{1}})
	assert.Equal(t, f.Format(e, 80), f.Format(e, 80))
	assert.Equal(t, f.Format(e, format.Unbounded), f.Format(e, format.Unbounded))
}
