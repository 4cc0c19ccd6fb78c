package fs

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// PythonSuffix is the suffix of files picked up by default.
const PythonSuffix = ".py"

// Enumerate walks root at every depth and returns the path of each file
// whose name ends with suffix. Matching is exact and case-sensitive.
// No directory is skipped, hidden and vendored ones included.
//
// A symlinked root is followed. Below the root, a symlink counts as a file
// unless it points at a directory; linked directories are not descended.
//
// The paths are in the order filepath.WalkDir visits them and are rooted at
// root as given, so they are absolute when root is.
func Enumerate(root, suffix string) ([]string, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, &FilesystemError{Path: root, Err: err}
	}
	if !info.IsDir() {
		return nil, &FilesystemError{Path: root, Err: ErrNotDirectory}
	}

	walkRoot, err := filepath.EvalSymlinks(root)
	if err != nil {
		return nil, &FilesystemError{Path: root, Err: err}
	}

	// under maps a walked path back below root.
	under := func(path string) string {
		if walkRoot == root {
			return path
		}
		rel, err := filepath.Rel(walkRoot, path)
		if err != nil {
			return path
		}
		return filepath.Join(root, rel)
	}

	var files []string

	err = filepath.WalkDir(walkRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return &FilesystemError{Path: under(path), Err: err}
		}

		if d.IsDir() || !strings.HasSuffix(d.Name(), suffix) {
			return nil
		}

		switch {
		case d.Type().IsRegular():
		case d.Type()&fs.ModeSymlink != 0:
			// Dangling links are kept so the formatter reports them.
			if target, err := os.Stat(path); err == nil && !target.Mode().IsRegular() {
				return nil
			}
		default:
			return nil
		}

		files = append(files, under(path))
		return nil
	})
	if err != nil {
		return nil, err
	}

	return files, nil
}
