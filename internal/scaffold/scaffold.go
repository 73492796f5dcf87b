package scaffold

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/taqyon-labs/taqyon/internal/compose"
	"github.com/taqyon-labs/taqyon/internal/manifest"
	"github.com/taqyon-labs/taqyon/internal/script"
	"github.com/taqyon-labs/taqyon/internal/spec"
	"github.com/taqyon-labs/taqyon/internal/toolchain"
)

// Project layout conventions for generated trees.
const (
	FrontendDirName = "frontend"
	BackendDirName  = "src-taqyon"
)

// ErrToolchainRequired is returned when a backend is requested but no Qt
// path was resolved and the caller did not opt into continuing anyway.
var ErrToolchainRequired = errors.New("backend requires a resolved Qt 6 path")

// Options tunes a generation run.
type Options struct {
	// AllowMissingToolchain generates the backend with a null toolchain
	// record. The build helpers will prompt for a path at build time.
	AllowMissingToolchain bool
}

// Result holds the outcome of a generation run.
type Result struct {
	ProjectDir  string
	FrontendDir string // empty when the frontend is disabled
	BackendDir  string // empty when the backend is disabled
	Scripts     []string
	Skipped     []string // injected files left untouched from a prior run
	Warnings    []string
}

// Generate creates a project tree at outputDir from the spec and the resolved
// toolchain. Already-written files from a prior partial run are tolerated:
// composed files are rewritten deterministically and injected files are
// skipped, so re-running after a failure completes the tree.
func Generate(s spec.Spec, outputDir string, tc toolchain.Descriptor, opts Options) (*Result, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	if s.BackendEnabled && !tc.Found() && !opts.AllowMissingToolchain {
		return nil, ErrToolchainRequired
	}

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("creating project directory: %w", err)
	}

	placeholders := Placeholders(s, tc.RootPath)
	result := &Result{ProjectDir: outputDir}

	if s.FrontendEnabled {
		frontendDir := filepath.Join(outputDir, FrontendDirName)
		set := "templates/" + s.TemplateSet()
		if err := compose.Compose(templateFS, set, frontendDir, placeholders); err != nil {
			return nil, fmt.Errorf("composing frontend: %w", err)
		}

		skipped, err := compose.Inject(templateFS, "templates/bridge", frontendDir, placeholders)
		if err != nil {
			return nil, fmt.Errorf("injecting bridge files: %w", err)
		}
		result.Skipped = append(result.Skipped, skipped...)
		result.FrontendDir = frontendDir
	}

	if s.BackendEnabled {
		backendDir := filepath.Join(outputDir, BackendDirName)
		if err := compose.Compose(templateFS, "templates/backend", backendDir, placeholders); err != nil {
			return nil, fmt.Errorf("composing backend: %w", err)
		}

		if err := toolchain.SaveRecord(outputDir, toolchain.NewRecord(tc.RootPath)); err != nil {
			return nil, fmt.Errorf("persisting toolchain record: %w", err)
		}

		scripts, err := script.Emit(backendDir, s.Name, tc.RootPath)
		if err != nil {
			return nil, fmt.Errorf("emitting build helpers: %w", err)
		}
		result.Scripts = scripts
		result.BackendDir = backendDir
	}

	if err := compose.Compose(templateFS, "templates/readme", outputDir, placeholders); err != nil {
		return nil, fmt.Errorf("composing documentation: %w", err)
	}

	if err := manifest.Save(outputDir, buildManifest(s)); err != nil {
		return nil, err
	}

	// Sanity-check the manifest we just wrote against the schema. A failure
	// here is a bug, not an operator error, so it surfaces as a warning.
	valResult, valErr := manifest.ValidateFile(filepath.Join(outputDir, manifest.FileName))
	if valErr != nil {
		result.Warnings = append(result.Warnings, fmt.Sprintf("could not validate manifest: %v", valErr))
	} else if !valResult.Valid {
		for _, issue := range valResult.Issues {
			msg := issue.Message
			if issue.Path != "" {
				msg = issue.Path + ": " + msg
			}
			result.Warnings = append(result.Warnings, msg)
		}
	}

	return result, nil
}

// Placeholders binds the declared template tokens for a spec and Qt path.
func Placeholders(s spec.Spec, qt6Path string) compose.Placeholders {
	return compose.Placeholders{
		"projectName":     s.Name,
		"projectVersion":  s.Version,
		"qt6Path":         qt6Path,
		"enableLogging":   cmakeBool(s.Options.EnableLogging),
		"enableDevServer": cmakeBool(s.Options.EnableDevServer),
	}
}

func cmakeBool(v bool) string {
	if v {
		return "ON"
	}
	return "OFF"
}
