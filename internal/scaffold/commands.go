package scaffold

import (
	"github.com/taqyon-labs/taqyon/internal/manifest"
	"github.com/taqyon-labs/taqyon/internal/spec"
)

// buildManifest assembles the project manifest, including the declared
// run/build command set consumed by command dispatchers and the dev
// orchestrator.
func buildManifest(s spec.Spec) *manifest.Project {
	p := &manifest.Project{
		Name:     s.Name,
		Version:  s.Version,
		Commands: map[string]string{},
	}

	if s.FrontendEnabled {
		p.Frontend = &manifest.Frontend{
			Dir:       FrontendDirName,
			Framework: s.Framework,
			Language:  s.Language,
		}
		p.Commands["dev:frontend"] = "npm run dev --prefix " + FrontendDirName
		p.Commands["build:frontend"] = "npm run build --prefix " + FrontendDirName
	}

	if s.BackendEnabled {
		p.Backend = &manifest.Backend{Dir: BackendDirName}
		binary := "./" + BackendDirName + "/build/" + s.Name
		p.Commands["build:backend"] = "./" + BackendDirName + "/build_app.sh"
		p.Commands["run:backend"] = binary
		if s.Options.EnableLogging {
			p.Commands["run:backend:verbose"] = binary + " --verbose"
			p.Commands["run:backend:logfile"] = binary + " --log-file taqyon.log"
		}
		if s.Options.EnableDevServer {
			p.Commands["run:backend:devserver"] = binary + " --dev-server-url http://127.0.0.1:5173"
		}
	}

	switch {
	case s.FrontendEnabled && s.BackendEnabled:
		p.Commands["build"] = p.Commands["build:frontend"] + " && " + p.Commands["build:backend"]
		p.Commands["start"] = p.Commands["run:backend"] + " --assets-path " + FrontendDirName + "/dist"
		p.Commands["dev"] = "taqyon dev"
	case s.FrontendEnabled:
		p.Commands["build"] = p.Commands["build:frontend"]
		p.Commands["start"] = "npm run preview --prefix " + FrontendDirName
	case s.BackendEnabled:
		p.Commands["build"] = p.Commands["build:backend"]
		p.Commands["start"] = p.Commands["run:backend"]
	}

	return p
}
