// Package scaffold turns a validated project spec into a populated project
// tree: frontend from the framework/language template set, injected bridge
// files, the Qt backend tree, build helpers, the persisted toolchain record,
// and the project manifest. Generation is resumable — a second run after a
// partial failure fills in what is missing without touching injected files.
package scaffold
