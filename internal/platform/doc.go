// Package platform isolates the OS-specific behavior the generator depends on:
// Unix permission bits (a no-op on Windows) and the shell-vs-batch split for
// generated build helpers.
package platform
