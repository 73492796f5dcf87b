package scaffold

import "embed"

// Template library layout:
//
//	templates/<framework>-<language>/  frontend sets (react-js, vue-ts, ...)
//	templates/bridge/                  injected bridge loader (skip-if-exists)
//	templates/backend/                 the Qt/CMake backend tree
//	templates/readme/                  generated documentation
//
//go:embed all:templates
var templateFS embed.FS
