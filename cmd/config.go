package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/hakambing/bikebuddy-bot/internal/config"
	"github.com/spf13/cobra"
)

func newConfigCmd(app *app, flags *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect or create the configuration file",
	}

	cmd.AddCommand(newConfigInitCmd(flags), newConfigShowCmd(app))

	return cmd
}

func newConfigInitCmd(flags *globalFlags) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a starter config file",
		Args:  cobra.NoArgs,
		// The file may not exist yet, so skip loading it.
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		RunE: func(cmd *cobra.Command, _ []string) error {
			path := flags.configPath
			if path == "" {
				path = config.DefaultPath()
			}
			if err := config.WriteStarter(path, force); err != nil {
				return err
			}
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
			return err
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing config file")

	return cmd
}

func newConfigShowCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration with credentials masked",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return writeConfigSummary(cmd.OutOrStdout(), app.cfg)
		},
	}
}

func writeConfigSummary(w io.Writer, cfg config.Config) error {
	file := cfg.File
	if file == "" {
		file = "(none)"
	}

	lines := []string{
		"file: " + file,
		"telegram.token: " + mask(cfg.Telegram.Token),
		"telegram.token_ref: " + cfg.Telegram.TokenRef,
		"telegram.poll_timeout: " + cfg.Telegram.PollTimeout.String(),
		"store.url: " + cfg.Store.URL,
		"store.table: " + cfg.Store.Table,
		"store.key: " + mask(cfg.Store.Key),
		"store.key_ref: " + cfg.Store.KeyRef,
		"store.created_column: " + cfg.Store.CreatedColumn,
		"store.timeout: " + cfg.Store.Timeout.String(),
		fmt.Sprintf("store.page_size: %d", cfg.Store.PageSize),
		"health.addr: " + cfg.Health.Addr,
		"log.level: " + cfg.Log.Level,
		"log.format: " + cfg.Log.Format,
		"secrets.backend: " + cfg.Secrets.Backend,
		"secrets.dir: " + cfg.Secrets.Dir,
		"suggestions.maintenance_types: " + strings.Join(cfg.Suggestions.MaintenanceTypes, ", "),
		"suggestions.locations: " + strings.Join(cfg.Suggestions.Locations, ", "),
	}

	_, err := fmt.Fprintln(w, strings.Join(lines, "\n"))
	return err
}

func mask(secret string) string {
	switch {
	case secret == "":
		return "(unset)"
	case len(secret) <= 8:
		return "****"
	default:
		return secret[:4] + "****"
	}
}
