package cmd

import (
	"fmt"
	"net/http"

	"github.com/hakambing/bikebuddy-bot/internal/adapters/render/record"
	filestore "github.com/hakambing/bikebuddy-bot/internal/adapters/secrets/file"
	chainstore "github.com/hakambing/bikebuddy-bot/internal/adapters/secrets/chain"
	"github.com/hakambing/bikebuddy-bot/internal/adapters/sessions/memory"
	"github.com/hakambing/bikebuddy-bot/internal/adapters/store/postgrest"
	"github.com/hakambing/bikebuddy-bot/internal/bot"
	"github.com/hakambing/bikebuddy-bot/internal/config"
	"github.com/hakambing/bikebuddy-bot/internal/domain"
	"github.com/hakambing/bikebuddy-bot/internal/ports"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

type globalFlags struct {
	configPath string
	logLevel   string
}

type app struct {
	cfg           config.Config
	secrets       ports.SecretStore
	clock         ports.Clock
	httpClient    *http.Client
	renderRecords func([]domain.Record, record.RenderOptions) (string, error)
}

func newApp() *app {
	return &app{
		clock:         ports.SystemClock{},
		httpClient:    http.DefaultClient,
		renderRecords: record.Render,
	}
}

// load reads configuration, sets up logging and resolves credential references.
func (a *app) load(cmd *cobra.Command, flags globalFlags) error {
	cfg, err := config.Load(viper.New(), flags.configPath)
	if err != nil {
		return err
	}
	if flags.logLevel != "" {
		cfg.Log.Level = flags.logLevel
	}
	setupLogging(cmd.ErrOrStderr(), cfg.Log)

	secrets, err := newSecretStore(cfg.Secrets)
	if err != nil {
		return err
	}
	if err := cfg.ResolveSecrets(cmd.Context(), secrets); err != nil {
		return err
	}

	a.cfg = cfg
	a.secrets = secrets
	return nil
}

func newSecretStore(cfg config.Secrets) (ports.SecretStore, error) {
	switch cfg.Backend {
	case "", config.SecretsBackendAuto:
		store, err := chainstore.NewPassThenFile(cfg.Dir)
		if err != nil {
			return nil, fmt.Errorf("wire secret store chain: %w", err)
		}
		return store, nil
	case config.SecretsBackendFile:
		return filestore.NewStore(cfg.Dir), nil
	default:
		return nil, fmt.Errorf("unsupported secrets backend %q (want %s or %s)", cfg.Backend, config.SecretsBackendAuto, config.SecretsBackendFile)
	}
}

func (a *app) recordStore() (*postgrest.Client, error) {
	if err := a.cfg.ValidateStore(); err != nil {
		return nil, err
	}

	client, err := postgrest.NewClient(postgrest.Config{
		BaseURL:        a.cfg.Store.URL,
		Table:          a.cfg.Store.Table,
		APIKey:         a.cfg.Store.Key,
		CreatedColumn:  a.cfg.Store.CreatedColumn,
		PageSize:       a.cfg.Store.PageSize,
		RequestTimeout: a.cfg.Store.Timeout,
		HTTPClient:     a.httpClient,
	})
	if err != nil {
		return nil, fmt.Errorf("wire record store: %w", err)
	}
	return client, nil
}

func (a *app) router(store ports.RecordStore) *bot.Router {
	sessions := memory.NewStore()
	return bot.NewRouter(bot.Options{
		Store:       store,
		Sessions:    sessions,
		Deletions:   sessions,
		Clock:       a.clock,
		Suggestions: a.cfg.Suggestions,
	})
}
