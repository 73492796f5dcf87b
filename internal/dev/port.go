package dev

import (
	"context"
	"fmt"
	"math/rand/v2"
	"net"
	"time"
)

const (
	portRangeStart = 10000
	portRangeEnd   = 60000
	portAttempts   = 5

	// FallbackPort is used when every randomized pick collides. Forward
	// progress over strict guarantees: the frontend's strict-port failure
	// is the backstop if the fallback is taken too.
	FallbackPort = 5173
)

// PickPort returns a TCP port that was free at the instant of probing, or
// FallbackPort after portAttempts collisions. The probe binds a transient
// listener and releases it, so a race with another process remains possible.
func PickPort() int {
	return pickPort(probeFree)
}

func pickPort(probe func(int) bool) int {
	for i := 0; i < portAttempts; i++ {
		port := portRangeStart + rand.IntN(portRangeEnd-portRangeStart)
		if probe(port) {
			return port
		}
	}
	return FallbackPort
}

func probeFree(port int) bool {
	l, err := net.Listen("tcp", fmt.Sprintf("127.0.0.1:%d", port))
	if err != nil {
		return false
	}
	l.Close()
	return true
}

// WaitForPort blocks until the port accepts TCP connections or the timeout
// elapses. It dials cooperatively with a short sleep between attempts rather
// than busy-spinning.
func WaitForPort(ctx context.Context, port int, timeout time.Duration) error {
	deadline := time.Now().Add(timeout)
	addr := fmt.Sprintf("127.0.0.1:%d", port)

	for {
		conn, err := net.DialTimeout("tcp", addr, 500*time.Millisecond)
		if err == nil {
			conn.Close()
			return nil
		}
		if time.Now().After(deadline) {
			return fmt.Errorf("port %d not accepting connections after %s", port, timeout)
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(250 * time.Millisecond):
		}
	}
}
