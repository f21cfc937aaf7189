// Package source gathers local source files into a single annotated
// text blob suitable for inclusion in a model prompt.
package source

import (
	"bytes"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

const (
	// MaxFileBytes is the per-file size cap; larger files are skipped.
	MaxFileBytes = 256 << 10
	// DefaultMaxTotalBytes caps the whole bundle so prompts stay within
	// what the model can usefully consume.
	DefaultMaxTotalBytes = 4 << 20
)

// skipDirs are directory names that never contain reviewable sources.
var skipDirs = map[string]bool{
	".git":         true,
	".hg":          true,
	".svn":         true,
	"node_modules": true,
	"vendor":       true,
	"dist":         true,
	"build":        true,
	"target":       true,
	"__pycache__":  true,
}

// Bundle is the result of collecting a directory tree.
type Bundle struct {
	// Text is the concatenated file contents, each preceded by a
	// "--- path ---" header with the path relative to the root.
	Text string
	// Files is the number of files included.
	Files int
	// Truncated is true when the total-size cap stopped the walk early.
	Truncated bool
}

// Collect walks root and concatenates readable text files into a
// Bundle. Hidden files, VCS and dependency directories, binaries, and
// oversized files are skipped. maxTotal <= 0 selects the default cap.
func Collect(root string, maxTotal int64) (*Bundle, error) {
	if maxTotal <= 0 {
		maxTotal = DefaultMaxTotalBytes
	}

	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("reading directory %s: %w", root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s is not a directory", root)
	}

	var sb strings.Builder
	var total int64
	files := 0
	truncated := false

	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != root && (skipDirs[d.Name()] || strings.HasPrefix(d.Name(), ".")) {
				return filepath.SkipDir
			}
			return nil
		}

		// Hidden files (.env and friends) often hold secrets — never
		// ship them upstream.
		if strings.HasPrefix(d.Name(), ".") {
			return nil
		}

		fi, err := d.Info()
		if err != nil || fi.Size() > MaxFileBytes || !fi.Mode().IsRegular() {
			return nil
		}

		data, err := os.ReadFile(path)
		if err != nil || isBinary(data) {
			return nil
		}

		rel, relErr := filepath.Rel(root, path)
		if relErr != nil {
			rel = path
		}
		entry := fmt.Sprintf("--- %s ---\n%s\n\n", filepath.ToSlash(rel), data)

		if total+int64(len(entry)) > maxTotal {
			truncated = true
			return fs.SkipAll
		}
		sb.WriteString(entry)
		total += int64(len(entry))
		files++
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking %s: %w", root, err)
	}
	if files == 0 {
		if truncated {
			return nil, fmt.Errorf("size cap %d is too small: the first file under %s alone exceeds it", maxTotal, root)
		}
		return nil, fmt.Errorf("no readable text files under %s", root)
	}

	return &Bundle{Text: sb.String(), Files: files, Truncated: truncated}, nil
}

// isBinary applies git's heuristic: a NUL byte in the first 8000 bytes
// marks the file binary.
func isBinary(data []byte) bool {
	n := min(len(data), 8000)
	return bytes.IndexByte(data[:n], 0) >= 0
}
