// Package scan finds production Go files that import a given module.
//
// debuglog must only be used from tests. Scan walks a directory tree,
// skips *_test.go files along with the directories the Go toolchain ignores
// (vendor, testdata, and names starting with "." or "_"), parses the import
// block of every remaining .go file and reports each import whose path is
// the module path or lies beneath it.
//
//	violations, err := scan.Scan(ctx, "./...", scan.WithModulePath("github.com/dmitrymomot/debuglog"))
package scan
