package script

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

func TestEmit(t *testing.T) {
	dir := t.TempDir()

	paths, err := Emit(dir, "demo", "/opt/Qt/6.7.1/gcc_64")
	if err != nil {
		t.Fatalf("Emit() error: %v", err)
	}
	if len(paths) != 2 {
		t.Fatalf("Emit() returned %d paths, want 2", len(paths))
	}

	shell := readFile(t, filepath.Join(dir, ShellScriptName))
	if !strings.Contains(shell, `QT6_PATH="/opt/Qt/6.7.1/gcc_64"`) {
		t.Error("shell script missing hardcoded Qt path")
	}
	if !strings.Contains(shell, "Build helper for demo") {
		t.Error("shell script missing project name")
	}
	if strings.Contains(shell, "@QT6_PATH@") || strings.Contains(shell, "@PROJECT_NAME@") {
		t.Error("unsubstituted marker remains in shell script")
	}

	batch := readFile(t, filepath.Join(dir, BatchScriptName))
	if !strings.Contains(batch, "\r\n") {
		t.Error("batch script has no CRLF line endings")
	}
	if strings.Contains(batch, "@QT6_PATH@") {
		t.Error("unsubstituted marker remains in batch script")
	}
}

func TestEmitUnresolvedPath(t *testing.T) {
	dir := t.TempDir()

	if _, err := Emit(dir, "demo", ""); err != nil {
		t.Fatalf("Emit() error: %v", err)
	}

	shell := readFile(t, filepath.Join(dir, ShellScriptName))
	// With no hardcoded path the script must consult the record, then prompt,
	// then abort non-zero.
	if !strings.Contains(shell, `QT6_PATH=""`) {
		t.Error("expected empty hardcoded path")
	}
	if !strings.Contains(shell, "qt6.config.json") {
		t.Error("shell script does not read the persisted record")
	}
	if !strings.Contains(shell, "exit 1") {
		t.Error("shell script does not abort when no path is given")
	}
}

func TestEmitCacheStalenessCheck(t *testing.T) {
	dir := t.TempDir()
	if _, err := Emit(dir, "demo", ""); err != nil {
		t.Fatal(err)
	}

	shell := readFile(t, filepath.Join(dir, ShellScriptName))
	if !strings.Contains(shell, "CMAKE_HOME_DIRECTORY:INTERNAL=") {
		t.Error("shell script does not inspect the CMake cache home directory")
	}
	if !strings.Contains(shell, `[ "$CACHE_HOME" != "$SCRIPT_DIR" ]`) {
		t.Error("shell script cache comparison is not against the script's own directory")
	}

	batch := readFile(t, filepath.Join(dir, BatchScriptName))
	if !strings.Contains(batch, "CMAKE_HOME_DIRECTORY:INTERNAL=") {
		t.Error("batch script does not inspect the CMake cache home directory")
	}
}

func TestEmitShellScriptIsExecutable(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("no Unix permission bits on Windows")
	}
	dir := t.TempDir()
	if _, err := Emit(dir, "demo", ""); err != nil {
		t.Fatal(err)
	}

	info, err := os.Stat(filepath.Join(dir, ShellScriptName))
	if err != nil {
		t.Fatal(err)
	}
	if info.Mode().Perm()&0111 == 0 {
		t.Errorf("shell script mode = %v, want executable", info.Mode())
	}
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	return string(data)
}
