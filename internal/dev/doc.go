// Package dev runs a development session for a generated project: it picks a
// free port, starts the frontend watcher on it, waits for the port to accept
// connections, builds and launches the backend pointed at the watcher, and
// couples the two processes so that whichever exits first takes the other
// down with it. The first exiter's code becomes the session's exit code.
package dev
