package toolchain

import (
	"os"
	"path/filepath"
)

// Module is one Qt capability module the generated backend may depend on.
type Module struct {
	Name     string // CMake package suffix, e.g. "WebEngineWidgets"
	Label    string // human-readable remediation label
	Required bool
}

// Modules is the fixed set of capability modules probed under a toolchain
// root. Order is the report order.
var Modules = []Module{
	{Name: "Core", Label: "Qt6 Core (application runtime)", Required: true},
	{Name: "Widgets", Label: "Qt6 Widgets (native windowing)", Required: true},
	{Name: "WebEngineWidgets", Label: "Qt6 WebEngineWidgets (embedded web rendering)"},
	{Name: "WebChannel", Label: "Qt6 WebChannel (frontend/backend messaging)"},
	{Name: "Positioning", Label: "Qt6 Positioning (location services)"},
}

// ModuleStatus probes every capability module under root and reports the full
// set at once, present or not, so callers can print one complete remediation
// message instead of discovering gaps iteratively.
func ModuleStatus(root string) map[string]bool {
	status := make(map[string]bool, len(Modules))
	for _, m := range Modules {
		status[m.Name] = hasModule(root, m.Name)
	}
	return status
}

// Missing returns the labels of modules reported absent, in probe order.
func Missing(status map[string]bool) []string {
	var missing []string
	for _, m := range Modules {
		if !status[m.Name] {
			missing = append(missing, m.Label)
		}
	}
	return missing
}

// Complete reports whether every capability module is present.
func Complete(status map[string]bool) bool {
	for _, m := range Modules {
		if !status[m.Name] {
			return false
		}
	}
	return true
}

// hasModule checks for the module's CMake config file under the Qt root,
// e.g. lib/cmake/Qt6WebChannel/Qt6WebChannelConfig.cmake.
func hasModule(root, name string) bool {
	cfg := filepath.Join(root, "lib", "cmake", "Qt6"+name, "Qt6"+name+"Config.cmake")
	info, err := os.Stat(cfg)
	return err == nil && !info.IsDir()
}
