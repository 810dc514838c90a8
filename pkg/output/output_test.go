package output_test

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/debuglog/pkg/level"
	"github.com/dmitrymomot/debuglog/pkg/output"
)

func TestRouter_PinnedStreams(t *testing.T) {
	var stdout, stderr bytes.Buffer
	r := output.NewRouter(output.WithStdout(&stdout), output.WithStderr(&stderr))

	r.Write("debug line", level.Debug)
	r.Write("info line", level.Info)
	r.Write("warn line", level.Warn)
	r.Write("error line", level.Error)

	assert.Equal(t, "debug line\ninfo line\nwarn line\n", stdout.String())
	assert.Equal(t, "error line\n", stderr.String())
}

func TestRouter_FollowsRedirect(t *testing.T) {
	var stdout, stderr bytes.Buffer
	restore := output.Redirect(&stdout, &stderr)
	t.Cleanup(restore)

	r := output.NewRouter()
	r.Write("hello", level.Info)
	r.Write("boom", level.Error)

	assert.Equal(t, "hello\n", stdout.String())
	assert.Equal(t, "boom\n", stderr.String())
}

func TestRedirect_Restore(t *testing.T) {
	var first, second bytes.Buffer

	restoreFirst := output.Redirect(&first, nil)
	assert.Same(t, &first, output.Stdout())
	assert.Equal(t, os.Stderr, output.Stderr())

	restoreSecond := output.Redirect(&second, nil)
	assert.Same(t, &second, output.Stdout())

	restoreSecond()
	assert.Same(t, &first, output.Stdout())

	restoreFirst()
	assert.Equal(t, os.Stdout, output.Stdout())

	// A second call must not clobber later state.
	restoreSecond()
	assert.Equal(t, os.Stdout, output.Stdout())
}

func TestRouter_NilWritersIgnored(t *testing.T) {
	var stdout bytes.Buffer
	restore := output.Redirect(&stdout, nil)
	t.Cleanup(restore)

	r := output.NewRouter(output.WithStdout(nil))
	r.Write("x", level.Warn)
	assert.Equal(t, "x\n", stdout.String())
}
