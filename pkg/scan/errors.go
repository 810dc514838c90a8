package scan

import "errors"

var (
	// ErrNotDirectory is returned when the scan root is not a directory.
	ErrNotDirectory = errors.New("scan root is not a directory")

	// ErrViolationsFound signals a scan that completed with violations.
	ErrViolationsFound = errors.New("debuglog imported from non-test files")
)
