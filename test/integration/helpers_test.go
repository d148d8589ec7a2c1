//go:build integration

package integration_test

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

// testEnv holds paths to isolated test directories.
type testEnv struct {
	HomeDir     string // HOME with a .gitconfig
	BinDir      string // Prepended to PATH; holds the fake conda
	CondaPrefix string // CONDA_PREFIX
	WorkDir     string // Parent of generated projects
}

// setupTestEnv creates isolated temp directories and sets environment
// variables so git config and conda lookups are sandboxed. The env vars are
// restored after the test.
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		HomeDir:     t.TempDir(),
		BinDir:      t.TempDir(),
		CondaPrefix: t.TempDir(),
		WorkDir:     t.TempDir(),
	}

	t.Setenv("HOME", env.HomeDir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(env.HomeDir, ".config"))
	t.Setenv("PATH", env.BinDir+string(os.PathListSeparator)+os.Getenv("PATH"))
	t.Setenv("CONDA_PREFIX", env.CondaPrefix)

	return env
}

// writeGitConfig writes a global git config with the given identity.
func writeGitConfig(t *testing.T, env *testEnv, name, email string) {
	t.Helper()
	content := "[user]\n\tname = " + name + "\n\temail = " + email + "\n"
	writeFile(t, filepath.Join(env.HomeDir, ".gitconfig"), content)
}

// installFakeConda puts a conda script on PATH that records its arguments in
// <BinDir>/conda-args.txt. Returns the args file path.
func installFakeConda(t *testing.T, env *testEnv) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("fake conda requires a Unix shell")
	}
	argsFile := filepath.Join(env.BinDir, "conda-args.txt")
	script := "#!/bin/sh\necho \"$@\" > " + argsFile + "\n"
	path := filepath.Join(env.BinDir, "conda")
	if err := os.WriteFile(path, []byte(script), 0755); err != nil {
		t.Fatalf("writing fake conda: %v", err)
	}
	return argsFile
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("creating parent of %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

func assertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected file %s to exist: %v", path, err)
	}
}

func assertFileNotExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("expected %s not to exist, stat err = %v", path, err)
	}
}

func assertDirExists(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	if err != nil {
		t.Errorf("expected directory %s to exist: %v", path, err)
		return
	}
	if !info.IsDir() {
		t.Errorf("expected %s to be a directory", path)
	}
}

func assertFileContains(t *testing.T, path, substr string) {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	if !strings.Contains(string(data), substr) {
		t.Errorf("%s does not contain %q\n--- content ---\n%s", path, substr, data)
	}
}
