//go:build integration

package integration_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// testEnv holds paths to isolated test directories.
type testEnv struct {
	QtRoot    string // A synthetic Qt 6 installation with all capability modules
	OutputDir string // Where projects get generated
}

// setupTestEnv creates an isolated fake Qt kit and an output directory. The
// kit carries the qmake marker and a CMake config for every capability module
// so generation runs without a real Qt install.
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		QtRoot:    t.TempDir(),
		OutputDir: t.TempDir(),
	}

	if err := os.MkdirAll(filepath.Join(env.QtRoot, "bin"), 0755); err != nil {
		t.Fatalf("creating bin: %v", err)
	}
	writeFile(t, filepath.Join(env.QtRoot, "bin", "qmake"), "#!/bin/sh\n")

	for _, mod := range []string{"Core", "Widgets", "WebEngineWidgets", "WebChannel", "Positioning"} {
		dir := filepath.Join(env.QtRoot, "lib", "cmake", "Qt6"+mod)
		if err := os.MkdirAll(dir, 0755); err != nil {
			t.Fatalf("creating module dir: %v", err)
		}
		writeFile(t, filepath.Join(dir, "Qt6"+mod+"Config.cmake"), "# stub\n")
	}

	return env
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("creating %s: %v", filepath.Dir(path), err)
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

func assertFileContains(t *testing.T, path, want string) {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	if !strings.Contains(string(data), want) {
		t.Errorf("%s does not contain %q", path, want)
	}
}

func assertFileNotContains(t *testing.T, path, unwanted string) {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	if strings.Contains(string(data), unwanted) {
		t.Errorf("%s still contains %q", path, unwanted)
	}
}
