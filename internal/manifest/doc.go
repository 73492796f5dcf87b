// Package manifest reads and validates taqyon.json, the project manifest
// written at generation time. The manifest records which parts exist
// (frontend, backend), where they live, and the declared run/build commands
// a command dispatcher or the dev orchestrator executes.
package manifest
