// Package config manages user-level settings stored at ~/.taqyon/config.yaml,
// backed by Viper with TAQYON_* environment overrides. Project-level state
// (the persisted Qt path record) lives with the project, not here — see the
// toolchain package.
package config
