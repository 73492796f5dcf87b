package toolchain

import (
	"os"
	"path/filepath"
	"runtime"
	"sort"

	"github.com/Masterminds/semver/v3"
)

// markerNames identify a Qt installation root. Any one of them under bin/
// is accepted.
var markerNames = []string{"qmake", "qmake6", "qmake.exe"}

// Descriptor describes a located Qt 6 installation. A zero Descriptor means
// no installation was found.
type Descriptor struct {
	RootPath string          // absolute path to the Qt root, empty when absent
	Modules  map[string]bool // capability module name -> present
}

// Found reports whether a toolchain root was resolved.
func (d Descriptor) Found() bool {
	return d.RootPath != ""
}

// Root is one entry in a locator's search list. Versioned roots (like ~/Qt
// or C:\Qt) contain semver-named subdirectories per Qt release, each holding
// per-compiler kit directories; plain roots are Qt installations themselves.
type Root struct {
	Path      string
	Versioned bool
}

// Locator searches an ordered list of install roots for a Qt 6 SDK.
type Locator struct {
	roots []Root
}

// NewLocator returns a locator over the given roots, searched in order.
func NewLocator(roots ...Root) *Locator {
	return &Locator{roots: roots}
}

// DefaultLocator returns a locator over the conventional install roots for
// the current platform. The order is fixed so repeated runs on an unchanged
// filesystem resolve the same installation.
func DefaultLocator() *Locator {
	return NewLocator(defaultRoots()...)
}

func defaultRoots() []Root {
	var roots []Root

	if home, err := os.UserHomeDir(); err == nil {
		roots = append(roots, Root{Path: filepath.Join(home, "Qt"), Versioned: true})
	}

	switch runtime.GOOS {
	case "windows":
		roots = append(roots, Root{Path: `C:\Qt`, Versioned: true})
	case "darwin":
		roots = append(roots,
			Root{Path: "/opt/Qt", Versioned: true},
			Root{Path: "/opt/homebrew/opt/qt@6"},
			Root{Path: "/opt/homebrew/opt/qt"},
			Root{Path: "/usr/local/opt/qt@6"},
			Root{Path: "/usr/local/opt/qt"},
		)
	default:
		roots = append(roots,
			Root{Path: "/opt/Qt", Versioned: true},
			Root{Path: "/usr/lib64/qt6"},
			Root{Path: "/usr/lib/qt6"},
			Root{Path: "/usr/lib/x86_64-linux-gnu/qt6"},
			Root{Path: "/usr/local/Qt", Versioned: true},
		)
	}

	return roots
}

// Locate searches the roots in order and returns the first installation whose
// marker file is present, with its module status populated. Versioned roots
// prefer the newest release (semver ordering of version directory names).
func (l *Locator) Locate() Descriptor {
	for _, root := range l.roots {
		var candidates []string
		if root.Versioned {
			candidates = versionedKits(root.Path)
		} else {
			candidates = []string{root.Path}
		}
		for _, c := range candidates {
			if hasMarker(c) {
				return Descriptor{RootPath: c, Modules: ModuleStatus(c)}
			}
		}
	}
	return Descriptor{}
}

// Validate checks a user-supplied path for the Qt marker. It returns an
// absent Descriptor rather than an error when the path does not hold a Qt
// installation, so callers can prompt again.
func Validate(path string) Descriptor {
	if path == "" || !hasMarker(path) {
		return Descriptor{}
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	return Descriptor{RootPath: abs, Modules: ModuleStatus(abs)}
}

// versionedKits expands a versioned root (e.g. ~/Qt) into candidate kit
// directories, newest release first. Within a release, kit directories are
// visited in lexical order so the result is stable across runs.
func versionedKits(root string) []string {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil
	}

	type release struct {
		version *semver.Version
		dir     string
	}
	var releases []release
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		v, err := semver.NewVersion(e.Name())
		if err != nil || v.Major() != 6 {
			continue
		}
		releases = append(releases, release{version: v, dir: filepath.Join(root, e.Name())})
	}
	sort.Slice(releases, func(i, j int) bool {
		return releases[i].version.GreaterThan(releases[j].version)
	})

	var kits []string
	for _, r := range releases {
		kitEntries, err := os.ReadDir(r.dir)
		if err != nil {
			continue
		}
		names := make([]string, 0, len(kitEntries))
		for _, k := range kitEntries {
			if k.IsDir() {
				names = append(names, k.Name())
			}
		}
		sort.Strings(names)
		for _, n := range names {
			kits = append(kits, filepath.Join(r.dir, n))
		}
	}
	return kits
}

// hasMarker reports whether path looks like a Qt installation root.
func hasMarker(path string) bool {
	for _, m := range markerNames {
		if info, err := os.Stat(filepath.Join(path, "bin", m)); err == nil && !info.IsDir() {
			return true
		}
	}
	return false
}
