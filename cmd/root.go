package cmd

import (
	"github.com/spf13/cobra"
)

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	app := newApp()
	var flags globalFlags

	rootCmd := &cobra.Command{
		Use:   "bikebuddy",
		Short: "BikeBuddy: a Telegram bot for your motorcycle maintenance log",
		Long: "bikebuddy runs a Telegram bot that records motorcycle maintenance in a remote " +
			"PostgREST table, and offers the same log from the terminal.",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return app.load(cmd, flags)
		},
	}

	rootCmd.PersistentFlags().StringVar(&flags.configPath, "config", "", "Config file (default: search $XDG_CONFIG_HOME/bikebuddy, ~/.config/bikebuddy, .)")
	rootCmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "Override log.level (trace|debug|info|warn|error)")

	rootCmd.AddCommand(
		newVersionCmd(),
		newServeCmd(app),
		newConsoleCmd(app),
		newLastCmd(app),
		newExportCmd(app),
		newSecretCmd(app),
		newConfigCmd(app, &flags),
	)

	return rootCmd
}
