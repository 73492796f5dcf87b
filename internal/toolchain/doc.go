// Package toolchain locates and validates the Qt 6 SDK the generated backend
// builds against. Location is a deterministic walk over platform-conventional
// install roots; validation is marker-file based and never errors on a bad
// path, so callers can prompt again. The resolved path is persisted next to
// the generated project as a small JSON record (qt6.config.json) that both
// this CLI and the generated build helpers read.
package toolchain
