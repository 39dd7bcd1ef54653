package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hakambing/bikebuddy-bot/internal/domain"
	toml "github.com/pelletier/go-toml/v2"
)

const (
	fileMode        = 0o600
	dirMode         = 0o700
	tempFilePattern = ".config-*.toml.tmp"
)

var ErrConfigExists = errors.New("config file already exists")

type fileSchema struct {
	Telegram    telegramSchema    `toml:"telegram"`
	Store       storeSchema       `toml:"store"`
	Health      healthSchema      `toml:"health"`
	Log         logSchema         `toml:"log"`
	Secrets     secretsSchema     `toml:"secrets"`
	Suggestions suggestionsSchema `toml:"suggestions"`
}

type telegramSchema struct {
	TokenRef    string `toml:"token_ref" comment:"Secret key holding the bot token (see: bikebuddy secret set)"`
	PollTimeout string `toml:"poll_timeout"`
}

type storeSchema struct {
	URL           string `toml:"url" comment:"Project URL, e.g. https://<project>.supabase.co"`
	Table         string `toml:"table"`
	KeyRef        string `toml:"key_ref" comment:"Secret key holding the REST API key"`
	CreatedColumn string `toml:"created_column" comment:"Orders the latest record, set to - to order by id only"`
	Timeout       string `toml:"timeout"`
	PageSize      int    `toml:"page_size"`
}

type healthSchema struct {
	Addr string `toml:"addr"`
}

type logSchema struct {
	Level  string `toml:"level" comment:"trace, debug, info, warn or error"`
	Format string `toml:"format" comment:"json or console"`
}

type secretsSchema struct {
	Backend string `toml:"backend" comment:"auto (pass, then files) or file"`
	Dir     string `toml:"dir" comment:"Directory for file secrets"`
}

type suggestionsSchema struct {
	MaintenanceTypes []string `toml:"maintenance_types"`
	Locations        []string `toml:"locations"`
}

func starterSchema() fileSchema {
	suggestions := domain.DefaultSuggestions()
	return fileSchema{
		Telegram: telegramSchema{TokenRef: DefaultTokenRef, PollTimeout: "30s"},
		Store: storeSchema{
			Table:         "maintenance_logs",
			KeyRef:        DefaultKeyRef,
			CreatedColumn: "created_at",
			Timeout:       "15s",
			PageSize:      500,
		},
		Health:  healthSchema{Addr: "0.0.0.0:8080"},
		Log:     logSchema{Level: "info", Format: "json"},
		Secrets: secretsSchema{Backend: SecretsBackendAuto, Dir: defaultSecretsDir()},
		Suggestions: suggestionsSchema{
			MaintenanceTypes: suggestions.MaintenanceTypes,
			Locations:        suggestions.Locations,
		},
	}
}

// WriteStarter writes a commented starter config to path. An existing file is only
// replaced when force is set.
func WriteStarter(path string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%w: %s", ErrConfigExists, path)
		} else if !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("stat config file: %w", err)
		}
	}

	data, err := toml.Marshal(starterSchema())
	if err != nil {
		return fmt.Errorf("encode config file: %w", err)
	}

	return writeFileAtomic(path, data)
}

func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, dirMode); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	tempFile, err := os.CreateTemp(dir, tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp config file: %w", err)
	}

	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tempName)
		}
	}()

	if err := tempFile.Chmod(fileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp config file: %w", err)
	}
	if _, err := tempFile.Write(data); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("write temp config file: %w", err)
	}
	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp config file: %w", err)
	}

	if err := os.Rename(tempName, path); err != nil {
		return fmt.Errorf("replace config file: %w", err)
	}
	cleanup = false

	return nil
}
