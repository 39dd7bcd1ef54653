package cmd

import (
	"fmt"

	"github.com/hakambing/bikebuddy-bot/internal/adapters/transport/console"
	"github.com/spf13/cobra"
)

const consoleBanner = "BikeBuddy console. Send /help for commands, !<button> to press a button, !quit to leave."

func newConsoleCmd(app *app) *cobra.Command {
	var documentDir string

	cmd := &cobra.Command{
		Use:   "console",
		Short: "Talk to the bot from the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := app.recordStore()
			if err != nil {
				return err
			}

			if _, err := fmt.Fprintln(cmd.OutOrStdout(), consoleBanner); err != nil {
				return err
			}

			repl := console.New(app.router(store), cmd.InOrStdin(), cmd.OutOrStdout(), console.Options{
				DocumentDir: documentDir,
			})
			return repl.Run(cmd.Context())
		},
	}

	cmd.Flags().StringVar(&documentDir, "out-dir", "", "Directory for exported documents (default: working directory)")

	return cmd
}
