// Package script emits the build helper scripts placed in the generated
// backend tree: a POSIX shell script and a Windows batch file with the same
// behavior. The scripts are standalone artifacts — they resolve the Qt path
// from the persisted project record, guard against a stale CMake cache left
// by a moved project tree, and hand off to CMake, propagating its exit
// status unchanged.
package script
