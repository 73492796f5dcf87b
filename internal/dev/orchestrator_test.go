package dev

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/taqyon-labs/taqyon/internal/manifest"
)

func writeManifest(t *testing.T, root string, p *manifest.Project) {
	t.Helper()
	if err := manifest.Save(root, p); err != nil {
		t.Fatal(err)
	}
}

func pairedManifest() *manifest.Project {
	return &manifest.Project{
		Name:     "demo",
		Version:  "0.1.0",
		Frontend: &manifest.Frontend{Dir: "frontend", Framework: "react", Language: "js"},
		Backend:  &manifest.Backend{Dir: "src-taqyon"},
		Commands: map[string]string{"dev": "taqyon dev"},
	}
}

func quietSession(root string) *Session {
	s := NewSession(root)
	s.Stdout = io.Discard
	s.Stderr = io.Discard
	return s
}

func TestAwaitFrontendAdoptsEarlyExitCode(t *testing.T) {
	exit := make(chan int, 1)
	exit <- 7

	// Port 1 never starts accepting, so the exit channel must win the race.
	code, exited, err := quietSession(t.TempDir()).awaitFrontend(context.Background(), 1, exit)
	if err != nil {
		t.Fatalf("awaitFrontend() error: %v", err)
	}
	if !exited {
		t.Fatal("awaitFrontend() did not report the early exit")
	}
	if code != 7 {
		t.Errorf("awaitFrontend() code = %d, want 7", code)
	}
}

func TestRunRejectsNonProject(t *testing.T) {
	_, err := quietSession(t.TempDir()).Run(context.Background())
	if err == nil {
		t.Fatal("Run() accepted a directory without a manifest")
	}
}

func TestRunRequiresBothParts(t *testing.T) {
	root := t.TempDir()
	m := pairedManifest()
	m.Backend = nil
	writeManifest(t, root, m)

	_, err := quietSession(root).Run(context.Background())
	if err == nil || !strings.Contains(err.Error(), "only a frontend") {
		t.Errorf("Run() error = %v, want a both-parts message", err)
	}
}

func TestRunChecksSourceDirsBeforeSpawning(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, root, pairedManifest())
	// Manifest present but neither source directory exists.

	_, err := quietSession(root).Run(context.Background())
	if err == nil {
		t.Fatal("Run() proceeded with missing source directories")
	}
	if !strings.Contains(err.Error(), "missing") {
		t.Errorf("Run() error = %v, want a missing-directory message", err)
	}

	// Frontend dir alone is not enough.
	if err := os.MkdirAll(filepath.Join(root, "frontend"), 0755); err != nil {
		t.Fatal(err)
	}
	if _, err := quietSession(root).Run(context.Background()); err == nil {
		t.Error("Run() proceeded with a missing backend directory")
	}
}
