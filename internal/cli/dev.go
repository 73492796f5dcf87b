package cli

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/taqyon-labs/taqyon/internal/dev"
)

func init() {
	rootCmd.AddCommand(devCmd)
}

var devCmd = &cobra.Command{
	Use:   "dev [project-root]",
	Short: "Run the frontend dev server and the Qt shell together",
	Long: `Start the frontend dev server on a free port, wait until it answers,
build the Qt backend, and launch it pointed at the dev server. When either
process exits the other is shut down and taqyon exits with the same code.
Press Ctrl+C to stop both.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		root := "."
		if len(args) == 1 {
			root = args[0]
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)

		session := dev.NewSession(root)
		code, err := session.Run(ctx)
		stop()
		if err != nil {
			return err
		}
		if code != 0 {
			os.Exit(code)
		}
		return nil
	},
}
