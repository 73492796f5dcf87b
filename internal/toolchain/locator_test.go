package toolchain

import (
	"os"
	"path/filepath"
	"testing"
)

// makeKit creates a fake Qt kit directory with a qmake marker and the given
// capability modules, returning the kit path.
func makeKit(t *testing.T, dir string, modules ...string) string {
	t.Helper()

	if err := os.MkdirAll(filepath.Join(dir, "bin"), 0755); err != nil {
		t.Fatalf("creating kit bin dir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "bin", "qmake"), []byte("#!/bin/sh\n"), 0755); err != nil {
		t.Fatalf("writing qmake marker: %v", err)
	}
	for _, m := range modules {
		cfgDir := filepath.Join(dir, "lib", "cmake", "Qt6"+m)
		if err := os.MkdirAll(cfgDir, 0755); err != nil {
			t.Fatalf("creating module dir: %v", err)
		}
		if err := os.WriteFile(filepath.Join(cfgDir, "Qt6"+m+"Config.cmake"), []byte("# cmake config\n"), 0644); err != nil {
			t.Fatalf("writing module config: %v", err)
		}
	}
	return dir
}

func allModuleNames() []string {
	names := make([]string, 0, len(Modules))
	for _, m := range Modules {
		names = append(names, m.Name)
	}
	return names
}

func TestLocatePlainRoot(t *testing.T) {
	kit := makeKit(t, filepath.Join(t.TempDir(), "qt6"), allModuleNames()...)

	loc := NewLocator(Root{Path: kit})
	desc := loc.Locate()
	if !desc.Found() {
		t.Fatal("Locate() found nothing")
	}
	if desc.RootPath != kit {
		t.Errorf("RootPath = %q, want %q", desc.RootPath, kit)
	}
	if !Complete(desc.Modules) {
		t.Errorf("Modules incomplete: missing %v", Missing(desc.Modules))
	}
}

func TestLocateVersionedRootPrefersNewestRelease(t *testing.T) {
	root := t.TempDir()
	makeKit(t, filepath.Join(root, "6.2.4", "gcc_64"))
	newest := makeKit(t, filepath.Join(root, "6.7.1", "gcc_64"))
	makeKit(t, filepath.Join(root, "6.5.3", "gcc_64"))

	loc := NewLocator(Root{Path: root, Versioned: true})
	desc := loc.Locate()
	if desc.RootPath != newest {
		t.Errorf("RootPath = %q, want newest release %q", desc.RootPath, newest)
	}
}

func TestLocateSkipsNonQt6Releases(t *testing.T) {
	root := t.TempDir()
	makeKit(t, filepath.Join(root, "5.15.2", "gcc_64"))

	loc := NewLocator(Root{Path: root, Versioned: true})
	if desc := loc.Locate(); desc.Found() {
		t.Errorf("Locate() = %q, want absent for Qt 5 install", desc.RootPath)
	}
}

func TestLocateIsDeterministic(t *testing.T) {
	root := t.TempDir()
	makeKit(t, filepath.Join(root, "6.5.3", "android_arm64"))
	makeKit(t, filepath.Join(root, "6.5.3", "gcc_64"))

	loc := NewLocator(Root{Path: root, Versioned: true})
	first := loc.Locate()
	second := loc.Locate()
	if first.RootPath != second.RootPath {
		t.Errorf("Locate() not deterministic: %q then %q", first.RootPath, second.RootPath)
	}
	// Lexical kit order: android_arm64 sorts before gcc_64.
	want := filepath.Join(root, "6.5.3", "android_arm64")
	if first.RootPath != want {
		t.Errorf("RootPath = %q, want %q", first.RootPath, want)
	}
}

func TestLocateSearchOrder(t *testing.T) {
	first := makeKit(t, filepath.Join(t.TempDir(), "a"))
	second := makeKit(t, filepath.Join(t.TempDir(), "b"))

	loc := NewLocator(Root{Path: first}, Root{Path: second})
	if desc := loc.Locate(); desc.RootPath != first {
		t.Errorf("RootPath = %q, want first root %q", desc.RootPath, first)
	}
}

func TestValidate(t *testing.T) {
	t.Run("accepts a marker-bearing path", func(t *testing.T) {
		kit := makeKit(t, filepath.Join(t.TempDir(), "qt"))
		desc := Validate(kit)
		if !desc.Found() {
			t.Error("Validate() rejected a valid kit")
		}
	})

	t.Run("returns absent for a bad path", func(t *testing.T) {
		desc := Validate(filepath.Join(t.TempDir(), "nope"))
		if desc.Found() {
			t.Errorf("Validate() = %q, want absent", desc.RootPath)
		}
	})

	t.Run("returns absent for empty path", func(t *testing.T) {
		if desc := Validate(""); desc.Found() {
			t.Error("Validate(\"\") should be absent")
		}
	})
}

func TestModuleStatusReportsFullSet(t *testing.T) {
	// Kit missing exactly the web-rendering module.
	var present []string
	for _, m := range Modules {
		if m.Name != "WebEngineWidgets" {
			present = append(present, m.Name)
		}
	}
	kit := makeKit(t, filepath.Join(t.TempDir(), "qt"), present...)

	status := ModuleStatus(kit)
	if len(status) != len(Modules) {
		t.Fatalf("ModuleStatus reported %d modules, want %d", len(status), len(Modules))
	}

	missing := Missing(status)
	if len(missing) != 1 {
		t.Fatalf("Missing() = %v, want exactly one entry", missing)
	}
	if missing[0] != "Qt6 WebEngineWidgets (embedded web rendering)" {
		t.Errorf("Missing()[0] = %q", missing[0])
	}
	if Complete(status) {
		t.Error("Complete() = true with a missing module")
	}
}
