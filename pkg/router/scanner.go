package router

import (
	stderrors "errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/routewalk/routewalk/internal/errors"
)

// DefaultExtension is the route file extension the scanner matches.
const DefaultExtension = ".go"

// DefaultExclude skips test files by convention.
var DefaultExclude = []string{"**/*_test.go"}

// ScanOptions configures scanning behavior.
type ScanOptions struct {
	// Exclude lists doublestar glob patterns evaluated against the
	// slash-separated relative path; a match skips the file entirely.
	Exclude []string

	// IndexMarker is the filename that collapses to the parent path.
	// Default: "index".
	IndexMarker string

	// Extension is the route file extension. Default: ".go".
	Extension string
}

func (o ScanOptions) withDefaults() ScanOptions {
	if o.Exclude == nil {
		o.Exclude = DefaultExclude
	}
	if o.IndexMarker == "" {
		o.IndexMarker = DefaultIndexMarker
	}
	if o.Extension == "" {
		o.Extension = DefaultExtension
	}
	return o
}

// Scanner walks a directory tree for route files.
type Scanner struct {
	rootDir string
}

// NewScanner creates a new route file scanner.
func NewScanner(rootDir string) *Scanner {
	return &Scanner{rootDir: rootDir}
}

// Scan walks the root directory and returns one RouteFile per matched file,
// in walk order. The result is produced eagerly: downstream priority
// sorting needs the full set.
//
// A missing root directory yields an empty result; an unreadable one is a
// hard failure. The walk itself is a pure read of the filesystem tree.
func (s *Scanner) Scan() ([]RouteFile, error) {
	return s.ScanWithOptions(ScanOptions{})
}

// ScanWithOptions is Scan with explicit options.
func (s *Scanner) ScanWithOptions(opts ScanOptions) ([]RouteFile, error) {
	opts = opts.withDefaults()

	info, err := os.Stat(s.rootDir)
	if stderrors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.New(errors.CodeScanFailed).WithFile(s.rootDir).Wrap(err)
	}
	if !info.IsDir() {
		return nil, errors.New(errors.CodeScanFailed).WithFile(s.rootDir).
			WithDetailf("%s is not a directory", s.rootDir)
	}

	var files []RouteFile
	walkErr := filepath.WalkDir(s.rootDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if !strings.HasSuffix(d.Name(), opts.Extension) {
			return nil
		}

		rel, err := filepath.Rel(s.rootDir, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)

		excluded, err := matchesAny(opts.Exclude, rel)
		if err != nil {
			return err
		}
		if excluded {
			return nil
		}

		files = append(files, s.classify(path, rel, opts))
		return nil
	})
	if walkErr != nil {
		return nil, errors.New(errors.CodeScanFailed).WithFile(s.rootDir).Wrap(walkErr)
	}

	return files, nil
}

// classify splits a relative path into classified segments and derives the
// file-level flags from them.
func (s *Scanner) classify(absPath, relPath string, opts ScanOptions) RouteFile {
	parts := strings.Split(relPath, "/")

	segments := make([]Segment, 0, len(parts))
	for _, dir := range parts[:len(parts)-1] {
		segments = append(segments, ClassifySegment(dir, ""))
	}
	filename := strings.TrimSuffix(parts[len(parts)-1], opts.Extension)
	segments = append(segments, ClassifySegment(filename, opts.IndexMarker))

	file := RouteFile{
		AbsolutePath: absPath,
		RelativePath: relPath,
		Segments:     segments,
	}
	for _, seg := range segments {
		switch seg.Kind {
		case SegmentDynamic:
			file.IsDynamic = true
		case SegmentCatchAll:
			// Catch-all implies dynamic.
			file.IsDynamic = true
			file.IsCatchAll = true
		case SegmentIndex:
			file.IsIndex = true
		}
	}
	return file
}

// matchesAny reports whether rel matches any of the glob patterns.
func matchesAny(patterns []string, rel string) (bool, error) {
	for _, pattern := range patterns {
		ok, err := doublestar.Match(pattern, rel)
		if err != nil {
			return false, fmt.Errorf("exclude pattern %q: %w", pattern, err)
		}
		if ok {
			return true, nil
		}
	}
	return false, nil
}
