package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/hakambing/bikebuddy-bot/internal/domain"
	"github.com/hakambing/bikebuddy-bot/internal/ports"
	"github.com/spf13/viper"
)

const (
	appName    = "bikebuddy"
	configName = "config"
	configType = "toml"
	envPrefix  = "BIKEBUDDY"

	KeyTelegramToken       = "telegram.token"
	KeyTelegramTokenRef    = "telegram.token_ref"
	KeyTelegramPollTimeout = "telegram.poll_timeout"
	KeyStoreURL            = "store.url"
	KeyStoreTable          = "store.table"
	KeyStoreKey            = "store.key"
	KeyStoreKeyRef         = "store.key_ref"
	KeyStoreCreatedColumn  = "store.created_column"
	KeyStoreTimeout        = "store.timeout"
	KeyStorePageSize       = "store.page_size"
	KeyHealthAddr          = "health.addr"
	KeyLogLevel            = "log.level"
	KeyLogFormat           = "log.format"
	KeySecretsDir          = "secrets.dir"
	KeySecretsBackend      = "secrets.backend"
	KeyMaintenanceTypes    = "suggestions.maintenance_types"
	KeyLocations           = "suggestions.locations"

	DefaultTokenRef = "bikebuddy/telegram/token"
	DefaultKeyRef   = "bikebuddy/store/key"

	// SecretsBackendAuto tries pass first and falls back to files.
	SecretsBackendAuto = "auto"
	SecretsBackendFile = "file"
)

var (
	ErrMissingToken    = errors.New("telegram token is not configured")
	ErrMissingStoreURL = errors.New("store url is not configured")
	ErrMissingStoreKey = errors.New("store key is not configured")
)

type Config struct {
	Telegram    Telegram
	Store       Store
	Health      Health
	Log         Log
	Secrets     Secrets
	Suggestions domain.Suggestions
	// File is the config file that was read, empty when none was found.
	File string
}

type Telegram struct {
	Token       string
	TokenRef    string
	PollTimeout time.Duration
}

type Store struct {
	URL           string
	Table         string
	Key           string
	KeyRef        string
	CreatedColumn string
	Timeout       time.Duration
	PageSize      int
}

type Health struct {
	Addr string
}

type Secrets struct {
	Backend string
	Dir     string
}

type Log struct {
	Level  string
	Format string
}

// Load reads configuration from defaults, the config file and the environment, in
// increasing priority. An explicit path must exist; otherwise the standard
// locations are searched and a missing file is not an error.
func Load(v *viper.Viper, explicitPath string) (Config, error) {
	if v == nil {
		v = viper.New()
	}

	setDefaults(v)
	bindEnv(v)

	if explicitPath != "" {
		v.SetConfigFile(explicitPath)
	} else {
		v.SetConfigName(configName)
		v.SetConfigType(configType)
		for _, dir := range SearchDirs() {
			v.AddConfigPath(dir)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if explicitPath != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	return Config{
		Telegram: Telegram{
			Token:       strings.TrimSpace(v.GetString(KeyTelegramToken)),
			TokenRef:    strings.TrimSpace(v.GetString(KeyTelegramTokenRef)),
			PollTimeout: v.GetDuration(KeyTelegramPollTimeout),
		},
		Store: Store{
			URL:           strings.TrimSpace(v.GetString(KeyStoreURL)),
			Table:         strings.TrimSpace(v.GetString(KeyStoreTable)),
			Key:           strings.TrimSpace(v.GetString(KeyStoreKey)),
			KeyRef:        strings.TrimSpace(v.GetString(KeyStoreKeyRef)),
			CreatedColumn: strings.TrimSpace(v.GetString(KeyStoreCreatedColumn)),
			Timeout:       v.GetDuration(KeyStoreTimeout),
			PageSize:      v.GetInt(KeyStorePageSize),
		},
		Health: Health{Addr: v.GetString(KeyHealthAddr)},
		Log: Log{
			Level:  v.GetString(KeyLogLevel),
			Format: v.GetString(KeyLogFormat),
		},
		Secrets: Secrets{
			Backend: strings.ToLower(strings.TrimSpace(v.GetString(KeySecretsBackend))),
			Dir:     v.GetString(KeySecretsDir),
		},
		Suggestions: domain.Suggestions{
			MaintenanceTypes: stringList(v, KeyMaintenanceTypes),
			Locations:        stringList(v, KeyLocations),
		}.WithDefaults(),
		File: v.ConfigFileUsed(),
	}, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(KeyTelegramTokenRef, DefaultTokenRef)
	v.SetDefault(KeyTelegramPollTimeout, 30*time.Second)
	v.SetDefault(KeyStoreTable, "maintenance_logs")
	v.SetDefault(KeyStoreKeyRef, DefaultKeyRef)
	v.SetDefault(KeyStoreCreatedColumn, "created_at")
	v.SetDefault(KeyStoreTimeout, 15*time.Second)
	v.SetDefault(KeyStorePageSize, 500)
	v.SetDefault(KeyHealthAddr, "0.0.0.0:8080")
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFormat, "json")
	v.SetDefault(KeySecretsDir, defaultSecretsDir())
	v.SetDefault(KeySecretsBackend, SecretsBackendAuto)
}

func bindEnv(v *viper.Viper) {
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Deployment variables used by earlier hosting setups.
	_ = v.BindEnv(KeyTelegramToken, envPrefix+"_TELEGRAM_TOKEN", "TELEGRAM_TOKEN")
	_ = v.BindEnv(KeyStoreURL, envPrefix+"_STORE_URL", "SUPABASE_URL")
	_ = v.BindEnv(KeyStoreKey, envPrefix+"_STORE_KEY", "SUPABASE_KEY")
}

// stringList reads a list from the config file or a comma-separated env var.
func stringList(v *viper.Viper, key string) []string {
	var raw []string
	switch value := v.Get(key).(type) {
	case string:
		raw = strings.Split(value, ",")
	default:
		raw = v.GetStringSlice(key)
	}

	out := make([]string, 0, len(raw))
	for _, item := range raw {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

// ResolveSecrets fills the telegram token and store key from the secret store when
// they are not set directly.
func (c *Config) ResolveSecrets(ctx context.Context, secrets ports.SecretStore) error {
	if c.Telegram.Token == "" && c.Telegram.TokenRef != "" {
		token, err := lookupSecret(ctx, secrets, c.Telegram.TokenRef)
		if err != nil {
			return fmt.Errorf("resolve %s: %w", KeyTelegramTokenRef, err)
		}
		c.Telegram.Token = token
	}

	if c.Store.Key == "" && c.Store.KeyRef != "" {
		key, err := lookupSecret(ctx, secrets, c.Store.KeyRef)
		if err != nil {
			return fmt.Errorf("resolve %s: %w", KeyStoreKeyRef, err)
		}
		c.Store.Key = key
	}

	return nil
}

func lookupSecret(ctx context.Context, secrets ports.SecretStore, ref string) (string, error) {
	value, err := secrets.Get(ctx, ref)
	if errors.Is(err, ports.ErrSecretNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(value), nil
}

func (c Config) ValidateStore() error {
	if c.Store.URL == "" {
		return ErrMissingStoreURL
	}
	if c.Store.Key == "" {
		return ErrMissingStoreKey
	}
	return nil
}

func (c Config) ValidateTelegram() error {
	if c.Telegram.Token == "" {
		return ErrMissingToken
	}
	return c.ValidateStore()
}

// SearchDirs lists the directories searched for config.toml, most specific first.
func SearchDirs() []string {
	var dirs []string
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		dirs = append(dirs, filepath.Join(xdg, appName))
	}
	if home, err := os.UserHomeDir(); err == nil {
		dirs = append(dirs, filepath.Join(home, ".config", appName))
	}
	return append(dirs, ".")
}

// DefaultPath is where config init writes when no path is given.
func DefaultPath() string {
	return filepath.Join(SearchDirs()[0], configName+"."+configType)
}

func defaultSecretsDir() string {
	return filepath.Join(SearchDirs()[0], "secrets")
}
