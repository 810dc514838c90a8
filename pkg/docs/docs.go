package docs

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/dmitrymomot/debuglog/pkg/logger"
)

// DefaultTarget is where Copy writes when no directory is given.
const DefaultTarget = "tests/docs/debuglog"

//go:embed files/*.md
var files embed.FS

// Files lists the embedded guide file names.
func Files() []string {
	entries, err := fs.ReadDir(files, "files")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}

// Read returns the content of an embedded guide file.
func Read(name string) ([]byte, error) {
	return fs.ReadFile(files, "files/"+name)
}

// Copy writes every embedded guide into dir, creating it when needed, and
// returns the written paths. Existing files are overwritten.
func Copy(dir string, log *slog.Logger) ([]string, error) {
	if dir == "" {
		dir = DefaultTarget
	}
	if log == nil {
		log = slog.Default()
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Join(ErrWriteFailed, fmt.Errorf("create %s: %w", dir, err))
	}

	var written []string
	for _, name := range Files() {
		content, err := Read(name)
		if err != nil {
			return written, errors.Join(ErrWriteFailed, err)
		}
		dest := filepath.Join(dir, name)
		if err := os.WriteFile(dest, content, 0o644); err != nil {
			return written, errors.Join(ErrWriteFailed, fmt.Errorf("write %s: %w", dest, err))
		}
		log.Debug("wrote guide", logger.Path(dest))
		written = append(written, dest)
	}
	return written, nil
}
