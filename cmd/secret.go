package cmd

import (
	"fmt"

	"github.com/hakambing/bikebuddy-bot/internal/config"
	"github.com/spf13/cobra"
)

func newSecretCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "secret",
		Short: "Manage credentials in the secret store",
		Long: fmt.Sprintf("Credentials referenced by %s and %s live in pass, or in files under secrets.dir when pass is unavailable.",
			config.KeyTelegramTokenRef, config.KeyStoreKeyRef),
	}

	cmd.AddCommand(newSecretSetCmd(app), newSecretRemoveCmd(app))

	return cmd
}

func newSecretSetCmd(app *app) *cobra.Command {
	var key string
	var value string

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Store a secret",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.secrets.Put(cmd.Context(), key, value); err != nil {
				return fmt.Errorf("store secret %s: %w", key, err)
			}
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "Stored %s\n", key)
			return err
		},
	}

	cmd.Flags().StringVar(&key, "key", "", fmt.Sprintf("Secret-store key (e.g. %s or %s)", config.DefaultTokenRef, config.DefaultKeyRef))
	cmd.Flags().StringVar(&value, "value", "", "Secret value")
	_ = cmd.MarkFlagRequired("key")
	_ = cmd.MarkFlagRequired("value")

	return cmd
}

func newSecretRemoveCmd(app *app) *cobra.Command {
	var key string

	cmd := &cobra.Command{
		Use:   "remove",
		Short: "Remove a secret",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.secrets.Delete(cmd.Context(), key); err != nil {
				return fmt.Errorf("remove secret %s: %w", key, err)
			}
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "Removed %s\n", key)
			return err
		},
	}

	cmd.Flags().StringVar(&key, "key", "", "Secret-store key")
	_ = cmd.MarkFlagRequired("key")

	return cmd
}
