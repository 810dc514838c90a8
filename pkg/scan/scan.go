package scan

import (
	"context"
	"fmt"
	"go/parser"
	"go/token"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/dmitrymomot/debuglog/pkg/detector"
	"github.com/dmitrymomot/debuglog/pkg/logger"
)

// DefaultModulePath is the import path flagged when none is configured.
const DefaultModulePath = "github.com/dmitrymomot/debuglog"

// Violation is a single import of the module from a non-test file.
type Violation struct {
	File       string `json:"file"`
	Line       int    `json:"line"`
	ImportPath string `json:"import_path"`
}

func (v Violation) String() string {
	return fmt.Sprintf("%s:%d: %q", v.File, v.Line, v.ImportPath)
}

// Option configures Scan.
type Option func(*scanner)

// WithModulePath sets the import path to flag. Empty values are ignored.
func WithModulePath(path string) Option {
	return func(s *scanner) {
		if path != "" {
			s.modulePath = strings.TrimSuffix(path, "/")
		}
	}
}

// WithLogger sets the logger used for progress and skipped files.
func WithLogger(l *slog.Logger) Option {
	return func(s *scanner) {
		if l != nil {
			s.log = l
		}
	}
}

type scanner struct {
	modulePath string
	log        *slog.Logger
	fset       *token.FileSet
}

// Scan walks root and returns violations sorted by file and line. Files
// that fail to parse are logged and skipped. The walk stops early when ctx
// is cancelled.
func Scan(ctx context.Context, root string, opts ...Option) ([]Violation, error) {
	s := &scanner{
		modulePath: DefaultModulePath,
		log:        logger.New(logger.WithOutput(io.Discard)),
		fset:       token.NewFileSet(),
	}
	for _, opt := range opts {
		opt(s)
	}

	root = strings.TrimSuffix(root, "/...")
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrNotDirectory, root)
	}

	var violations []Violation
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if d.IsDir() {
			if path != root && skipDir(d.Name()) {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(d.Name(), ".go") || detector.IsTestFile(d.Name()) {
			return nil
		}

		found, err := s.scanFile(path)
		if err != nil {
			s.log.Warn("skipping unparsable file", logger.Path(path), logger.Error(err))
			return nil
		}
		violations = append(violations, found...)
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(violations, func(i, j int) bool {
		if violations[i].File != violations[j].File {
			return violations[i].File < violations[j].File
		}
		return violations[i].Line < violations[j].Line
	})

	s.log.Debug("scan complete", logger.Path(root), logger.Count("violations", len(violations)))
	return violations, nil
}

func (s *scanner) scanFile(path string) ([]Violation, error) {
	f, err := parser.ParseFile(s.fset, path, nil, parser.ImportsOnly)
	if err != nil {
		return nil, err
	}

	var out []Violation
	for _, imp := range f.Imports {
		importPath, err := strconv.Unquote(imp.Path.Value)
		if err != nil {
			continue
		}
		if !s.matches(importPath) {
			continue
		}
		out = append(out, Violation{
			File:       path,
			Line:       s.fset.Position(imp.Pos()).Line,
			ImportPath: importPath,
		})
	}
	return out, nil
}

func (s *scanner) matches(importPath string) bool {
	return importPath == s.modulePath || strings.HasPrefix(importPath, s.modulePath+"/")
}

func skipDir(name string) bool {
	return name == "vendor" || name == "testdata" ||
		strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_")
}
