package output

import (
	"io"
	"os"
	"sync/atomic"

	"github.com/dmitrymomot/debuglog/pkg/level"
)

type streams struct {
	stdout io.Writer
	stderr io.Writer
}

var current atomic.Pointer[streams]

func init() {
	current.Store(&streams{stdout: os.Stdout, stderr: os.Stderr})
}

// Stdout returns the current process-wide standard stream target.
func Stdout() io.Writer { return current.Load().stdout }

// Stderr returns the current process-wide error stream target.
func Stderr() io.Writer { return current.Load().stderr }

// Redirect replaces the process-wide stream targets and returns a function
// restoring the previous ones. A nil writer keeps the current target for
// that stream. Callers must invoke the restore function on every exit path.
func Redirect(stdout, stderr io.Writer) (restore func()) {
	prev := current.Load()
	next := &streams{stdout: prev.stdout, stderr: prev.stderr}
	if stdout != nil {
		next.stdout = stdout
	}
	if stderr != nil {
		next.stderr = stderr
	}
	current.Store(next)

	var once atomic.Bool
	return func() {
		if once.CompareAndSwap(false, true) {
			current.Store(prev)
		}
	}
}

// Router picks the stream for a line by severity.
type Router struct {
	stdout io.Writer
	stderr io.Writer
}

// RouterOption configures a Router.
type RouterOption func(*Router)

// WithStdout pins the standard stream. Nil writers are ignored.
func WithStdout(w io.Writer) RouterOption {
	return func(r *Router) {
		if w != nil {
			r.stdout = w
		}
	}
}

// WithStderr pins the error stream. Nil writers are ignored.
func WithStderr(w io.Writer) RouterOption {
	return func(r *Router) {
		if w != nil {
			r.stderr = w
		}
	}
}

// NewRouter creates a Router. Streams not pinned by options follow the
// process-wide targets.
func NewRouter(opts ...RouterOption) *Router {
	r := &Router{}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Write emits formatted followed by a newline. Write errors are dropped:
// a log call has no failure outcome.
func (r *Router) Write(formatted string, lvl level.Severity) {
	_, _ = io.WriteString(r.target(lvl), formatted+"\n")
}

func (r *Router) target(lvl level.Severity) io.Writer {
	if lvl == level.Error {
		if r != nil && r.stderr != nil {
			return r.stderr
		}
		return Stderr()
	}
	if r != nil && r.stdout != nil {
		return r.stdout
	}
	return Stdout()
}
