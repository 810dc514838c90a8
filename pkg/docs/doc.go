// Package docs ships the debuglog usage guide inside the binary and copies
// it into a project, so the guide sits next to the tests that use it.
package docs
