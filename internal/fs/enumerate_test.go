package fs

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFiles(t *testing.T, root string, rel ...string) []string {
	t.Helper()
	paths := make([]string, 0, len(rel))
	for _, r := range rel {
		p := filepath.Join(root, r)
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
		require.NoError(t, os.WriteFile(p, []byte("x = 1\n"), 0o600))
		paths = append(paths, p)
	}
	return paths
}

func TestEnumerate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		files []string
		dirs  []string
		want  []string
	}{
		{
			name: "empty directory",
			want: nil,
		},
		{
			name:  "only non-matching files",
			files: []string{"README.md", "setup.cfg", "pkg/data.json"},
			want:  nil,
		},
		{
			name:  "matches at every depth",
			files: []string{"a.py", "pkg/b.py", "pkg/sub/deep/c.py", "pkg/sub/notes.txt"},
			want:  []string{"a.py", "pkg/b.py", "pkg/sub/deep/c.py"},
		},
		{
			name:  "hidden and vendored directories are walked",
			files: []string{".venv/lib/site.py", "vendor/x.py", "node_modules/y.py"},
			want:  []string{".venv/lib/site.py", "vendor/x.py", "node_modules/y.py"},
		},
		{
			name:  "suffix match is exact and case-sensitive",
			files: []string{"upper.PY", "stub.pyi", "compiled.pyc", "py", "ok.py"},
			want:  []string{"ok.py"},
		},
		{
			name: "directories named like sources are not files",
			dirs: []string{"package.py"},
			want: nil,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			root := t.TempDir()
			writeFiles(t, root, tt.files...)
			for _, d := range tt.dirs {
				require.NoError(t, os.MkdirAll(filepath.Join(root, d), 0o755))
			}

			got, err := Enumerate(root, PythonSuffix)
			require.NoError(t, err)

			want := make([]string, 0, len(tt.want))
			for _, w := range tt.want {
				want = append(want, filepath.Join(root, w))
			}
			if len(want) == 0 {
				assert.Empty(t, got)
				return
			}
			assert.ElementsMatch(t, want, got)
		})
	}
}

func TestEnumerate_MembershipIndependentOfDepth(t *testing.T) {
	t.Parallel()
	root := t.TempDir()

	var want []string
	dir := ""
	for depth := 0; depth < 12; depth++ {
		dir = filepath.Join(dir, "d")
		want = append(want, writeFiles(t, root, filepath.Join(dir, "m.py"))...)
		writeFiles(t, root, filepath.Join(dir, "m.txt"))
	}

	got, err := Enumerate(root, PythonSuffix)
	require.NoError(t, err)
	assert.ElementsMatch(t, want, got)
}

func TestEnumerate_CustomSuffix(t *testing.T) {
	t.Parallel()
	root := t.TempDir()
	want := writeFiles(t, root, "a/b.go")
	writeFiles(t, root, "a/c.py")

	got, err := Enumerate(root, ".go")
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestEnumerate_Symlinks(t *testing.T) {
	t.Parallel()

	t.Run("symlinked root is followed", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		actual := filepath.Join(dir, "real")
		writeFiles(t, actual, "a.py", "pkg/b.py")
		link := filepath.Join(dir, "link")
		require.NoError(t, os.Symlink(actual, link))

		got, err := Enumerate(link, PythonSuffix)
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{
			filepath.Join(link, "a.py"),
			filepath.Join(link, "pkg", "b.py"),
		}, got)
	})

	t.Run("errors are reported below the symlinked root", func(t *testing.T) {
		t.Parallel()
		if os.Geteuid() == 0 {
			t.Skip("permission checks do not apply to root")
		}
		dir := t.TempDir()
		actual := filepath.Join(dir, "real")
		writeFiles(t, actual, "locked/hidden.py")
		require.NoError(t, os.Chmod(filepath.Join(actual, "locked"), 0o000))
		t.Cleanup(func() { _ = os.Chmod(filepath.Join(actual, "locked"), 0o755) })
		link := filepath.Join(dir, "link")
		require.NoError(t, os.Symlink(actual, link))

		_, err := Enumerate(link, PythonSuffix)
		var fsErr *FilesystemError
		require.ErrorAs(t, err, &fsErr)
		assert.Equal(t, filepath.Join(link, "locked"), fsErr.Path)
	})

	t.Run("symlinked files are listed", func(t *testing.T) {
		t.Parallel()
		root := t.TempDir()
		target := writeFiles(t, root, "a.py")[0]
		require.NoError(t, os.Mkdir(filepath.Join(root, "pkg"), 0o755))
		linked := filepath.Join(root, "pkg", "b.py")
		require.NoError(t, os.Symlink(target, linked))

		got, err := Enumerate(root, PythonSuffix)
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{target, linked}, got)
	})

	t.Run("dangling links are listed", func(t *testing.T) {
		t.Parallel()
		root := t.TempDir()
		dangling := filepath.Join(root, "gone.py")
		require.NoError(t, os.Symlink(filepath.Join(root, "missing.py"), dangling))

		got, err := Enumerate(root, PythonSuffix)
		require.NoError(t, err)
		assert.Equal(t, []string{dangling}, got)
	})

	t.Run("linked directories are neither listed nor descended", func(t *testing.T) {
		t.Parallel()
		root := t.TempDir()
		outside := t.TempDir()
		writeFiles(t, outside, "x.py")
		require.NoError(t, os.Symlink(outside, filepath.Join(root, "vendored.py")))
		require.NoError(t, os.Symlink(outside, filepath.Join(root, "vendored")))

		got, err := Enumerate(root, PythonSuffix)
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}

func TestEnumerate_Errors(t *testing.T) {
	t.Parallel()

	t.Run("missing root", func(t *testing.T) {
		t.Parallel()
		root := filepath.Join(t.TempDir(), "non-existent")

		_, err := Enumerate(root, PythonSuffix)
		require.Error(t, err)

		var fsErr *FilesystemError
		require.ErrorAs(t, err, &fsErr)
		assert.Equal(t, root, fsErr.Path)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("root is a file", func(t *testing.T) {
		t.Parallel()
		file := writeFiles(t, t.TempDir(), "single.py")[0]

		_, err := Enumerate(file, PythonSuffix)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrNotDirectory)
		assert.Contains(t, err.Error(), "not a directory")
	})

	t.Run("unreadable subdirectory", func(t *testing.T) {
		t.Parallel()
		if os.Geteuid() == 0 {
			t.Skip("permission checks do not apply to root")
		}
		root := t.TempDir()
		writeFiles(t, root, "ok.py", "locked/hidden.py")
		locked := filepath.Join(root, "locked")
		require.NoError(t, os.Chmod(locked, 0o000))
		t.Cleanup(func() { _ = os.Chmod(locked, 0o755) })

		_, err := Enumerate(root, PythonSuffix)
		require.Error(t, err)

		var fsErr *FilesystemError
		require.ErrorAs(t, err, &fsErr)
		assert.Equal(t, locked, fsErr.Path)
		assert.True(t, errors.Is(err, os.ErrPermission))
	})
}
