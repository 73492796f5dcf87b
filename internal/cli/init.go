package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/taqyon-labs/taqyon/internal/config"
	"github.com/taqyon-labs/taqyon/internal/scaffold"
	"github.com/taqyon-labs/taqyon/internal/spec"
	"github.com/taqyon-labs/taqyon/internal/toolchain"
)

var (
	initOutputDir  string
	initFramework  string
	initLanguage   string
	initVersion    string
	initNoFrontend bool
	initNoBackend  bool
	initNoLogging  bool
	initNoDev      bool
	initQtPath     string
	initContinue   bool
)

func init() {
	initCmd.Flags().StringVar(&initOutputDir, "output-dir", "", "Output directory (default: ./<name>)")
	initCmd.Flags().StringVar(&initFramework, "framework", spec.FrameworkReact, "Frontend framework: react, vue, or vanilla")
	initCmd.Flags().StringVar(&initLanguage, "language", spec.LanguageJS, "Frontend language: js or ts")
	initCmd.Flags().StringVar(&initVersion, "project-version", "0.1.0", "Initial project version")
	initCmd.Flags().BoolVar(&initNoFrontend, "no-frontend", false, "Generate without a web frontend")
	initCmd.Flags().BoolVar(&initNoBackend, "no-backend", false, "Generate without a Qt backend")
	initCmd.Flags().BoolVar(&initNoLogging, "no-logging", false, "Disable backend logging support")
	initCmd.Flags().BoolVar(&initNoDev, "no-dev-server", false, "Disable backend dev-server loading")
	initCmd.Flags().StringVar(&initQtPath, "qt-path", "", "Qt 6 installation path (skips the automatic search)")
	initCmd.Flags().BoolVar(&initContinue, "continue-anyway", false, "Generate even with a missing or incomplete Qt toolchain")
	rootCmd.AddCommand(initCmd)
}

var initCmd = &cobra.Command{
	Use:   "init <name>",
	Short: "Generate a new Qt + web project",
	Long: `Generate a project pairing a Qt 6 desktop shell with a web frontend.

Examples:
  taqyon init my-app
  taqyon init my-app --framework vue --language ts
  taqyon init kiosk --no-frontend --qt-path ~/Qt/6.7.1/gcc_64`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s := spec.New(args[0])
		s.Version = initVersion
		s.Framework = frameworkDefault(initFramework, cmd.Flags().Changed("framework"))
		s.Language = initLanguage
		s.FrontendEnabled = !initNoFrontend
		s.BackendEnabled = !initNoBackend
		s.Options.EnableLogging = !initNoLogging
		s.Options.EnableDevServer = !initNoDev
		if err := s.Validate(); err != nil {
			return err
		}

		var tc toolchain.Descriptor
		if s.BackendEnabled {
			var err error
			tc, err = resolveToolchain(initQtPath)
			if err != nil && !initContinue {
				return err
			}
		}

		outDir := initOutputDir
		if outDir == "" {
			outDir = filepath.Join(".", s.Name)
		}

		result, err := scaffold.Generate(s, outDir, tc, scaffold.Options{
			AllowMissingToolchain: initContinue,
		})
		if err != nil {
			return err
		}

		printGenerated(s, result, tc)
		return nil
	},
}

// frameworkDefault applies the user-level default_framework setting when the
// flag was left unset. An explicit flag always wins; spec validation catches
// a bad configured value the same way it catches a bad flag.
func frameworkDefault(flagValue string, flagSet bool) string {
	if flagSet {
		return flagValue
	}
	config.Load()
	if def := config.Get(config.KeyDefaultFramework); def != "" {
		return def
	}
	return flagValue
}

// resolveToolchain resolves the Qt path in priority order: explicit flag,
// automatic search, user-level config default. Missing-module and not-found
// conditions come back as errors listing the complete remediation set;
// --continue-anyway downgrades them.
func resolveToolchain(explicit string) (toolchain.Descriptor, error) {
	if explicit != "" {
		tc := toolchain.Validate(explicit)
		if !tc.Found() {
			return tc, fmt.Errorf("%s does not look like a Qt 6 installation (no bin/qmake under it)", explicit)
		}
		return tc, checkModules(tc)
	}

	tc := toolchain.DefaultLocator().Locate()
	if !tc.Found() {
		config.Load()
		if fallback := config.Get(config.KeyQt6Path); fallback != "" {
			tc = toolchain.Validate(fallback)
		}
	}
	if !tc.Found() {
		return tc, fmt.Errorf("no Qt 6 installation found; install Qt 6, pass --qt-path, or re-run with --continue-anyway to configure it later")
	}
	return tc, checkModules(tc)
}

func checkModules(tc toolchain.Descriptor) error {
	missing := toolchain.Missing(tc.Modules)
	if len(missing) == 0 {
		return nil
	}
	return fmt.Errorf("Qt installation at %s is missing capability modules:\n  - %s\nInstall them with the Qt maintenance tool, or re-run with --continue-anyway",
		tc.RootPath, strings.Join(missing, "\n  - "))
}

func printGenerated(s spec.Spec, result *scaffold.Result, tc toolchain.Descriptor) {
	color.New(color.FgGreen).Printf("Created %s at %s/\n", s.DisplayName(), result.ProjectDir)
	if result.FrontendDir != "" {
		fmt.Printf("  frontend: %s (%s)\n", result.FrontendDir, s.TemplateSet())
	}
	if result.BackendDir != "" {
		if tc.Found() {
			fmt.Printf("  backend:  %s (Qt at %s)\n", result.BackendDir, tc.RootPath)
		} else {
			fmt.Printf("  backend:  %s (Qt path unresolved; build helpers will prompt)\n", result.BackendDir)
		}
	}
	for _, skipped := range result.Skipped {
		fmt.Printf("  kept existing %s\n", skipped)
	}
	for _, w := range result.Warnings {
		color.New(color.FgYellow).Printf("  warning: %s\n", w)
	}

	fmt.Println("\nNext steps:")
	step := 1
	if result.FrontendDir != "" {
		fmt.Printf("  %d. cd %s/%s && npm install\n", step, result.ProjectDir, scaffold.FrontendDirName)
		step++
	}
	if result.BackendDir != "" && result.FrontendDir != "" {
		fmt.Printf("  %d. taqyon dev (in %s) for a live session\n", step, result.ProjectDir)
	} else if result.BackendDir != "" {
		fmt.Printf("  %d. cd %s/%s && ./build_app.sh\n", step, result.ProjectDir, scaffold.BackendDirName)
	}
}
