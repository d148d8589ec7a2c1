package layout

import (
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// listDirs returns every directory under root (root included), relative to
// root's parent, sorted.
func listDirs(t *testing.T, fs afero.Fs, root string) []string {
	t.Helper()
	var dirs []string
	err := afero.Walk(fs, root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			rel, relErr := filepath.Rel(filepath.Dir(root), path)
			if relErr != nil {
				return relErr
			}
			dirs = append(dirs, rel)
		}
		return nil
	})
	require.NoError(t, err)
	sort.Strings(dirs)
	return dirs
}

func TestBuildCreatesExactlyEightDirectories(t *testing.T) {
	fs := afero.NewMemMapFs()
	root := filepath.Join("work", "bar-baz")
	require.NoError(t, fs.MkdirAll("work", DirPerm))

	require.NoError(t, Build(fs, root))

	want := []string{
		"bar-baz",
		"bar-baz/cache",
		"bar-baz/choices",
		"bar-baz/paper",
		"bar-baz/raw",
		"bar-baz/results",
		"bar-baz/src",
		"bar-baz/tmp",
	}
	if diff := cmp.Diff(want, listDirs(t, fs, root)); diff != "" {
		t.Errorf("directory tree mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildOnDisk(t *testing.T) {
	root := filepath.Join(t.TempDir(), "project")

	require.NoError(t, Build(afero.NewOsFs(), root))

	for _, sub := range Directories {
		info, err := os.Stat(filepath.Join(root, sub))
		require.NoError(t, err)
		assert.True(t, info.IsDir(), "%s should be a directory", sub)
	}
}

func TestBuildFailsWhenRootExists(t *testing.T) {
	root := t.TempDir()

	err := Build(afero.NewOsFs(), root)
	require.Error(t, err)
	assert.Contains(t, err.Error(), root)

	// Nothing was created inside the existing directory.
	entries, readErr := os.ReadDir(root)
	require.NoError(t, readErr)
	assert.Empty(t, entries)
}

func TestBuildFailsWhenParentMissing(t *testing.T) {
	root := filepath.Join(t.TempDir(), "missing", "project")

	err := Build(afero.NewOsFs(), root)
	assert.Error(t, err)
}

func TestDirectoriesAreFixed(t *testing.T) {
	want := []string{"src", "raw", "results", "paper", "tmp", "cache", "choices"}
	if diff := cmp.Diff(want, Directories); diff != "" {
		t.Errorf("Directories mismatch (-want +got):\n%s", diff)
	}
}
