// Package cli wires the taqyon commands: init (generate a project), dev
// (run a paired development session), doctor (toolchain health check),
// config, and version.
package cli
