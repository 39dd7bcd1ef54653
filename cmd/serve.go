package cmd

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/hakambing/bikebuddy-bot/internal/adapters/health"
	"github.com/hakambing/bikebuddy-bot/internal/adapters/transport/telegram"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var errServiceStopped = errors.New("service stopped unexpectedly")

func newServeCmd(app *app) *cobra.Command {
	var debug bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the Telegram bot and the liveness endpoint",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.cfg.ValidateTelegram(); err != nil {
				return err
			}
			store, err := app.recordStore()
			if err != nil {
				return err
			}

			transport, err := telegram.New(telegram.Config{
				Token:       app.cfg.Telegram.Token,
				PollTimeout: app.cfg.Telegram.PollTimeout,
				Debug:       debug,
			}, app.router(store))
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			log.Info().
				Str("bot", transport.Username()).
				Str("health_addr", app.cfg.Health.Addr).
				Msg("bikebuddy starting")

			return runServices(ctx, transport.Run, health.NewServer(app.cfg.Health.Addr).Run)
		},
	}

	cmd.Flags().BoolVar(&debug, "debug", false, "Log raw Bot API traffic")

	return cmd
}

// runServices runs every service until ctx is cancelled or one of them stops.
// A service returning early without an error still brings the others down.
func runServices(ctx context.Context, services ...func(context.Context) error) error {
	eg, egCtx := errgroup.WithContext(ctx)
	for _, run := range services {
		eg.Go(func() error {
			err := run(egCtx)
			if err == nil && egCtx.Err() == nil {
				return errServiceStopped
			}
			return err
		})
	}
	return eg.Wait()
}
