// Package output routes formatted log lines to the standard or error stream.
//
// ERROR lines go to the error stream; everything else goes to the standard
// stream. Each Write is a single synchronous write of the line plus a
// trailing newline, with no buffering.
//
// A Router built without explicit writers resolves the process-wide targets
// at write time. Those default to os.Stdout and os.Stderr and can be swapped
// for the duration of a test with Redirect:
//
//	var stdout, stderr bytes.Buffer
//	restore := output.Redirect(&stdout, &stderr)
//	defer restore()
package output
