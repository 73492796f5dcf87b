package cli

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/spf13/cobra"
	"github.com/taqyon-labs/taqyon/internal/config"
	"github.com/taqyon-labs/taqyon/internal/toolchain"
)

var doctorQtPath string

func init() {
	doctorCmd.Flags().StringVar(&doctorQtPath, "qt-path", "", "Check a specific Qt installation instead of searching")
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check the local environment for project generation",
	Long:  "Check for a usable Qt 6 installation, its capability modules, and the npm tooling the dev workflow needs.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		w := cmd.OutOrStdout()

		fmt.Fprintln(w, "Qt 6 toolchain:")
		var tc toolchain.Descriptor
		if doctorQtPath != "" {
			tc = toolchain.Validate(doctorQtPath)
			if !tc.Found() {
				fmt.Fprintf(w, "  [MISS] %s has no bin/qmake; not a Qt installation\n", doctorQtPath)
			}
		} else {
			tc = toolchain.DefaultLocator().Locate()
			if !tc.Found() {
				config.Load()
				if fallback := config.Get(config.KeyQt6Path); fallback != "" {
					tc = toolchain.Validate(fallback)
					if !tc.Found() {
						fmt.Fprintf(w, "  [WARN] configured qt6_path %s is not a Qt installation\n", fallback)
					}
				}
			}
			if !tc.Found() {
				fmt.Fprintln(w, "  [MISS] No Qt 6 installation found in the standard locations")
				fmt.Fprintln(w, "         Install Qt 6 or set one with: taqyon config set qt6_path <path>")
			}
		}
		if tc.Found() {
			fmt.Fprintf(w, "  [ OK ] Installation at %s\n", tc.RootPath)
			for _, m := range toolchain.Modules {
				if tc.Modules[m.Name] {
					fmt.Fprintf(w, "  [ OK ] %s\n", m.Label)
				} else if m.Required {
					fmt.Fprintf(w, "  [MISS] %s\n", m.Label)
				} else {
					fmt.Fprintf(w, "  [WARN] %s (optional)\n", m.Label)
				}
			}
		}

		fmt.Fprintln(w, "\nFrontend tooling:")
		if path, err := exec.LookPath("npm"); err == nil {
			fmt.Fprintf(w, "  [ OK ] npm at %s\n", path)
		} else {
			fmt.Fprintln(w, "  [MISS] npm not found on PATH; install Node.js to use the dev workflow")
		}

		fmt.Fprintln(w, "\nConfiguration:")
		if _, err := os.Stat(config.FilePath()); err == nil {
			fmt.Fprintf(w, "  [ OK ] %s\n", config.FilePath())
		} else {
			fmt.Fprintf(w, "  [WARN] no config file at %s (defaults apply)\n", config.FilePath())
		}
		return nil
	},
}
