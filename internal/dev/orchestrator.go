package dev

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/taqyon-labs/taqyon/internal/manifest"
	"github.com/taqyon-labs/taqyon/internal/platform"
	"github.com/taqyon-labs/taqyon/internal/script"
)

// readinessTimeout bounds how long the frontend watcher gets to start
// accepting connections.
const readinessTimeout = 60 * time.Second

// Session is one dev orchestration run. It owns both child processes; no
// other component touches them.
type Session struct {
	ProjectRoot string

	// Stdout and Stderr default to the operator's terminal. Children
	// inherit them directly so their output interleaves.
	Stdout io.Writer
	Stderr io.Writer

	id string
}

// NewSession creates a session for the project at root.
func NewSession(root string) *Session {
	return &Session{
		ProjectRoot: root,
		Stdout:      os.Stdout,
		Stderr:      os.Stderr,
		id:          uuid.New().String()[:8],
	}
}

// Run drives the session to completion and returns its exit code. The error
// return covers failures before any process pairing exists (bad manifest,
// missing directories, missing binaries); once both children run, the first
// exiter's code is the session's code.
func (s *Session) Run(ctx context.Context) (int, error) {
	m, err := manifest.Load(s.ProjectRoot)
	if err != nil {
		return 0, err
	}
	if m.Frontend == nil || m.Backend == nil {
		return 0, fmt.Errorf("dev sessions need both a frontend and a backend; this project has %s", partsOf(m))
	}

	frontendDir := filepath.Join(s.ProjectRoot, m.Frontend.Dir)
	backendDir := filepath.Join(s.ProjectRoot, m.Backend.Dir)
	for _, dir := range []string{frontendDir, backendDir} {
		if info, err := os.Stat(dir); err != nil || !info.IsDir() {
			return 0, fmt.Errorf("source directory %s is missing; the project tree is incomplete", dir)
		}
	}

	npmBin, err := exec.LookPath("npm")
	if err != nil {
		return 0, fmt.Errorf("dev sessions require npm on PATH: %w", err)
	}

	port := PickPort()
	if port == FallbackPort {
		s.logf("no free port found after %d attempts, falling back to %d", portAttempts, FallbackPort)
	}
	s.logf("starting frontend watcher on port %d", port)

	frontend := exec.Command(npmBin, "run", "dev", "--", "--port", strconv.Itoa(port), "--strictPort")
	frontend.Dir = frontendDir
	frontend.Stdin = os.Stdin
	frontend.Stdout = s.Stdout
	frontend.Stderr = s.Stderr
	if err := frontend.Start(); err != nil {
		return 0, fmt.Errorf("starting frontend watcher: %w", err)
	}

	frontendExit := Watch(frontend)

	code, exited, err := s.awaitFrontend(ctx, port, frontendExit)
	if err != nil {
		terminate(frontend)
		<-frontendExit
		return 0, err
	}
	if exited {
		s.logf("frontend watcher exited with code %d before becoming ready", code)
		return code, nil
	}

	s.logf("frontend ready, building backend")
	if code := s.buildBackend(backendDir); code != 0 {
		s.logf("backend build failed with code %d, tearing down frontend", code)
		terminate(frontend)
		<-frontendExit
		return code, nil
	}

	// Bail out if the watcher died while we were building.
	if code, ok := exitedWith(frontendExit); ok {
		return code, nil
	}

	binary := filepath.Join(backendDir, "build", m.Name)
	if platform.IsWindows() {
		binary += ".exe"
	}
	if _, err := os.Stat(binary); err != nil {
		terminate(frontend)
		<-frontendExit
		return 0, fmt.Errorf("backend binary %s not found: the build may have failed, or its output path differs from the build/ convention", binary)
	}

	devURL := fmt.Sprintf("http://127.0.0.1:%d", port)
	s.logf("launching backend against %s", devURL)
	backend := exec.Command(binary, "--dev-server-url", devURL)
	backend.Dir = s.ProjectRoot
	backend.Stdin = os.Stdin
	backend.Stdout = s.Stdout
	backend.Stderr = s.Stderr
	if err := backend.Start(); err != nil {
		terminate(frontend)
		<-frontendExit
		return 0, fmt.Errorf("starting backend: %w", err)
	}

	sessionCode := Supervise(ctx, frontend, backend, frontendExit, Watch(backend))
	s.logf("session ended with code %d", sessionCode)
	return sessionCode, nil
}

// awaitFrontend blocks until the watcher's port accepts connections, the
// watcher exits early, or the readiness timeout elapses. An early exit is
// reported with its code rather than folded into an error, so the session
// can adopt it as its own.
func (s *Session) awaitFrontend(ctx context.Context, port int, frontendExit <-chan int) (int, bool, error) {
	ready := make(chan error, 1)
	waitCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	go func() {
		ready <- WaitForPort(waitCtx, port, readinessTimeout)
	}()

	select {
	case code := <-frontendExit:
		return code, true, nil
	case err := <-ready:
		if err != nil {
			return 0, false, fmt.Errorf("waiting for frontend: %w", err)
		}
		return 0, false, nil
	}
}

// buildBackend runs the generated build helper synchronously and returns its
// exit code.
func (s *Session) buildBackend(backendDir string) int {
	var cmd *exec.Cmd
	if platform.IsWindows() {
		cmd = exec.Command("cmd", "/C", script.BatchScriptName)
	} else {
		cmd = exec.Command("./" + script.ShellScriptName)
	}
	cmd.Dir = backendDir
	cmd.Stdin = os.Stdin
	cmd.Stdout = s.Stdout
	cmd.Stderr = s.Stderr

	err := cmd.Run()
	if err == nil {
		return 0
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}
	fmt.Fprintf(s.Stderr, "running build helper: %v\n", err)
	return 1
}

// exitedWith drains a buffered exit channel without blocking.
func exitedWith(exit <-chan int) (int, bool) {
	select {
	case code := <-exit:
		return code, true
	default:
		return 0, false
	}
}

func (s *Session) logf(format string, args ...any) {
	fmt.Fprintf(s.Stderr, "[dev %s] %s\n", s.id, fmt.Sprintf(format, args...))
}

func partsOf(m *manifest.Project) string {
	switch {
	case m.Frontend != nil:
		return "only a frontend"
	case m.Backend != nil:
		return "only a backend"
	default:
		return "neither"
	}
}
