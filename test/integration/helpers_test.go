//go:build integration

package integration_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dsatrack/dsatrack/internal/config"
)

// testEnv holds paths to isolated test directories.
type testEnv struct {
	HomeDir string // DSA_HOME, holds config.yaml
	Root    string // workspace root with topic folders, template and README
}

// setupTestEnv creates isolated temp directories and points DSA_HOME at one
// of them so no test touches the real user configuration.
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		HomeDir: t.TempDir(),
		Root:    t.TempDir(),
	}
	t.Setenv("DSA_HOME", env.HomeDir)
	return env
}

// settings returns workspace settings rooted at env.Root with default paths.
func (env *testEnv) settings() config.Settings {
	return config.Settings{
		Root:       env.Root,
		Template:   "templates/solution_template.md",
		Readme:     "README.md",
		Difficulty: "Easy",
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("creating directory for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

func assertFileExists(t *testing.T, path string) {
	t.Helper()

	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected file to exist: %s", path)
	}
}

func assertFileNotExists(t *testing.T, path string) {
	t.Helper()

	if _, err := os.Stat(path); err == nil {
		t.Errorf("expected file to not exist: %s", path)
	}
}

func assertDirExists(t *testing.T, path string) {
	t.Helper()

	info, err := os.Stat(path)
	if err != nil {
		t.Errorf("expected directory to exist: %s", path)
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
		t.Errorf("expected %s to contain %q", path, substr)
	}
}
