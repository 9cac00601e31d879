// Package adapter contains infrastructure adapters for the svlint CLI.
package adapter

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strings"

	"go.uber.org/zap"

	m "github.com/mouse-blink/svlint/internal/model"
)

// SourceExtensions lists the file extensions treated as HDL sources.
var SourceExtensions = []string{".sv", ".svh", ".v", ".vh"}

// TreeSuffixes lists the companion dump suffixes in lookup order.
var TreeSuffixes = []string{".tree.yaml", ".tree.yml", ".tree.json"}

// SourceFSAdapter abstracts filesystem-specific operations that the domain layer
// relies on when scanning user projects. It hides direct `os` access so the
// workflow logic can be tested without touching the disk.
//
//nolint:interfacebloat // A richer interface keeps workflow logic decoupled from os/fs.
type SourceFSAdapter interface {
	// Get collects the HDL sources under roots. Paths matching any of the
	// exclude regular expressions are skipped.
	Get(roots []m.Path, exclude []string) ([]m.Source, error)

	// Walk traverses the provided root path. When recursive is false the
	// implementation should limit itself to the root directory (no sub-dirs).
	Walk(root m.Path, recursive bool, fn FilepathWalkFunc) error

	// ReadFile loads a file from disk and returns its contents.
	ReadFile(path m.Path) ([]byte, error)

	// HashFile returns a stable fingerprint (SHA-256) for the file at path.
	HashFile(path m.Path) (string, error)

	// DetectTreeFile finds the syntax tree dump produced for a source file.
	DetectTreeFile(sourcePath m.Path) (m.Path, error)

	// FileInfo returns metadata for a path.
	FileInfo(path m.Path) (os.FileInfo, error)

	// FindConfig searches for the configuration file walking up the
	// directory tree from start. It returns an empty path when none exists.
	FindConfig(start m.Path) (m.Path, error)
}

// FilepathWalkFunc mirrors the callback shape used by filepath.Walk. It is
// defined here to avoid leaking the standard-library type directly into the
// domain layer.
type FilepathWalkFunc func(path string, info os.FileInfo, err error) error

// LocalSourceFSAdapter backs SourceFSAdapter with the local filesystem.
type LocalSourceFSAdapter struct {
	configName string
	logger     *zap.SugaredLogger
}

// NewLocalSourceFSAdapter constructs a LocalSourceFSAdapter that looks for
// configName when asked for the configuration file.
func NewLocalSourceFSAdapter(configName string, logger *zap.SugaredLogger) *LocalSourceFSAdapter {
	return &LocalSourceFSAdapter{configName: configName, logger: logger}
}

// Get collects HDL source files for the provided roots.
func (a *LocalSourceFSAdapter) Get(roots []m.Path, exclude []string) ([]m.Source, error) {
	if len(roots) == 0 {
		return []m.Source{}, nil
	}

	excludes, err := compileExcludes(exclude)
	if err != nil {
		return nil, err
	}

	seen := make(map[m.Path]struct{})

	var sources []m.Source

	add := func(path string) error {
		if isExcluded(path, excludes) {
			a.logger.Debugw("excluded", "path", path)
			return nil
		}

		source, ok, err := a.processFilePath(path)
		if err != nil || !ok {
			return err
		}

		if _, exists := seen[source.Origin]; exists {
			return nil
		}

		seen[source.Origin] = struct{}{}
		sources = append(sources, source)

		return nil
	}

	for _, root := range roots {
		rootPath, recursive, err := normalizeRootPath(string(root))
		if err != nil {
			return nil, err
		}

		info, err := a.FileInfo(m.Path(rootPath))
		if err != nil {
			return nil, fmt.Errorf("root path error: %w", err)
		}

		if !info.IsDir() {
			if err := add(rootPath); err != nil {
				return nil, err
			}

			continue
		}

		err = a.Walk(m.Path(rootPath), recursive, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}

			if info.IsDir() {
				if path != rootPath && isExcluded(path, excludes) {
					return filepath.SkipDir
				}

				return nil
			}

			return add(path)
		})
		if err != nil {
			return nil, err
		}
	}

	a.logger.Debugw("sources collected", "roots", len(roots), "sources", len(sources))

	return sources, nil
}

// Walk iterates over files under root, optionally descending into subdirectories.
func (a *LocalSourceFSAdapter) Walk(root m.Path, recursive bool, fn FilepathWalkFunc) error {
	rootStr := string(root)

	return filepath.Walk(rootStr, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return fn(path, info, err)
		}

		if info.IsDir() && !recursive && path != rootStr {
			return filepath.SkipDir
		}

		return fn(path, info, nil)
	})
}

// ReadFile loads file contents from disk.
func (a *LocalSourceFSAdapter) ReadFile(path m.Path) ([]byte, error) {
	return os.ReadFile(string(path))
}

// HashFile returns the SHA-256 hash of the file at the provided path.
func (a *LocalSourceFSAdapter) HashFile(path m.Path) (string, error) {
	f, err := os.Open(string(path))
	if err != nil {
		return "", err
	}

	defer func() {
		_ = f.Close()
	}()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}

	return fmt.Sprintf("%x", h.Sum(nil)), nil
}

// DetectTreeFile finds the companion dump of sourcePath, e.g. top.sv.tree.yaml
// next to top.sv. It returns an empty path when no dump exists.
func (a *LocalSourceFSAdapter) DetectTreeFile(sourcePath m.Path) (m.Path, error) {
	source := string(sourcePath)
	if !isSourceFile(source) {
		return "", nil
	}

	for _, suffix := range TreeSuffixes {
		candidate := source + suffix

		if _, err := os.Stat(candidate); err != nil {
			if os.IsNotExist(err) {
				continue
			}

			return "", err
		}

		return m.Path(candidate), nil
	}

	return "", nil
}

// FileInfo returns os.FileInfo metadata for the given path.
func (a *LocalSourceFSAdapter) FileInfo(path m.Path) (os.FileInfo, error) {
	return os.Stat(string(path))
}

// FindConfig searches for the configuration file walking up the directory
// tree. An empty start means the working directory.
func (a *LocalSourceFSAdapter) FindConfig(start m.Path) (m.Path, error) {
	dir := string(start)
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", err
		}

		dir = wd
	}

	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}

	if info, err := os.Stat(dir); err == nil && !info.IsDir() {
		dir = filepath.Dir(dir)
	}

	for {
		candidate := filepath.Join(dir, a.configName)
		if _, err := os.Stat(candidate); err == nil {
			return m.Path(candidate), nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", err
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil
		}

		dir = parent
	}
}

func (a *LocalSourceFSAdapter) processFilePath(path string) (m.Source, bool, error) {
	if !isSourceFile(path) {
		return m.Source{}, false, nil
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return m.Source{}, false, err
	}

	hash, err := a.HashFile(m.Path(absPath))
	if err != nil {
		return m.Source{}, false, err
	}

	tree, err := a.DetectTreeFile(m.Path(absPath))
	if err != nil {
		return m.Source{}, false, err
	}

	return m.Source{Hash: hash, Origin: m.Path(absPath), Tree: tree}, true, nil
}

func isSourceFile(path string) bool {
	return slices.Contains(SourceExtensions, filepath.Ext(path))
}

func compileExcludes(patterns []string) ([]*regexp.Regexp, error) {
	out := make([]*regexp.Regexp, 0, len(patterns))

	for _, p := range patterns {
		re, err := regexp.Compile(p)
		if err != nil {
			return nil, fmt.Errorf("exclude pattern %q: %w", p, err)
		}

		out = append(out, re)
	}

	return out, nil
}

func isExcluded(path string, excludes []*regexp.Regexp) bool {
	slashed := filepath.ToSlash(path)

	for _, re := range excludes {
		if re.MatchString(slashed) {
			return true
		}
	}

	return false
}

func normalizeRootPath(root string) (string, bool, error) {
	rootStr, recursive := parseRootPath(root)

	if strings.HasPrefix(rootStr, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", false, err
		}

		suffix := strings.TrimPrefix(rootStr, "~")
		suffix = strings.TrimPrefix(suffix, string(os.PathSeparator))
		rootStr = filepath.Join(home, suffix)
	}

	if rootStr == "" {
		rootStr = "."
	}

	abs, err := filepath.Abs(rootStr)
	if err != nil {
		return "", false, err
	}

	return abs, recursive, nil
}

func parseRootPath(rootStr string) (path string, recursive bool) {
	if rest, ok := strings.CutSuffix(rootStr, "/..."); ok {
		return rest, true
	}

	if rootStr == "..." {
		return ".", true
	}

	return rootStr, false
}
