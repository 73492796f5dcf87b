package dev

import (
	"context"
	"errors"
	"os/exec"
	"runtime"
	"syscall"
	"time"
)

// terminationGrace is how long a sibling gets after SIGTERM before it is
// killed outright.
const terminationGrace = 5 * time.Second

// Watch starts the single Wait goroutine for a running process and returns
// its exit channel. Each process gets exactly one Watch; every later
// observation of its exit goes through the returned channel, because a
// second Wait on the same exec.Cmd races the first and corrupts the code.
func Watch(cmd *exec.Cmd) <-chan int {
	exit := make(chan int, 1)
	go func() {
		exit <- waitCode(cmd)
	}()
	return exit
}

// Supervise couples two running processes through their Watch channels. It
// blocks until either exits, terminates the sibling, reaps it, and returns
// the first exiter's exit code. On context cancellation (operator interrupt)
// both children are terminated and 130 is returned.
func Supervise(ctx context.Context, first, second *exec.Cmd, firstExit, secondExit <-chan int) int {
	select {
	case <-ctx.Done():
		terminate(first)
		terminate(second)
		<-firstExit
		<-secondExit
		return 130
	case code := <-firstExit:
		terminate(second)
		// Reap the sibling so nothing is left orphaned.
		<-secondExit
		return code
	case code := <-secondExit:
		terminate(first)
		<-firstExit
		return code
	}
}

// waitCode blocks on the process and normalizes its exit code.
func waitCode(cmd *exec.Cmd) int {
	err := cmd.Wait()
	if err == nil {
		return 0
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}
	return 1
}

// terminate asks a process to stop: SIGTERM first where supported, then a
// hard kill after the grace period. Safe to call on an already-exited
// process.
func terminate(cmd *exec.Cmd) {
	if cmd.Process == nil {
		return
	}
	if runtime.GOOS == "windows" {
		_ = cmd.Process.Kill()
		return
	}
	if err := cmd.Process.Signal(syscall.SIGTERM); err != nil {
		return // already gone
	}
	go func() {
		time.Sleep(terminationGrace)
		_ = cmd.Process.Kill()
	}()
}
