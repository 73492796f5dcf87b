// Package compose mirrors template directory trees into a destination,
// substituting a declared set of placeholder tokens in file contents and
// names. Substitution is deliberately textual, with exact-token matching at
// identifier boundaries, so templates stay valid source files for their own
// toolchains and unrelated identifiers are never corrupted. Injected files
// use a skip-if-exists policy, which makes a partially failed generation run
// resumable by simply running it again.
package compose
