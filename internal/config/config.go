package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Config holds gridboard configuration.
type Config struct {
	Storage   StorageConfig
	Templates TemplatesConfig
	Log       LogConfig
}

// StorageConfig selects the key-value backend.
type StorageConfig struct {
	// DSN selects the backend, e.g. file:///path, sqlite:///path.db, postgres://...
	DSN string

	// Key is the key holding the saved layout collection
	Key string
}

// TemplatesConfig locates user-supplied default layouts.
type TemplatesConfig struct {
	Path string
}

// LogConfig holds diagnostic logging settings.
type LogConfig struct {
	Level string
}

// Load reads configuration from defaults, the config file and the
// environment. Env var overrides use prefix GRIDBOARD_ (e.g.
// GRIDBOARD_STORAGE_DSN). GRIDBOARD_CONFIG points at an alternate file.
func Load(paths *Paths) (Config, error) {
	v := viper.New()

	v.SetDefault("storage.dsn", "file://"+paths.Data)
	v.SetDefault("storage.key", "$widgetLayouts")
	v.SetDefault("templates.path", paths.Templates)
	v.SetDefault("log.level", "warn")

	v.SetConfigType("toml")
	if cfgPath := os.Getenv("GRIDBOARD_CONFIG"); cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.SetConfigFile(paths.Config)
	}

	v.SetEnvPrefix("GRIDBOARD")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !os.IsNotExist(err) {
			return Config{}, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return c, nil
}

// SlogLevel maps the configured level name to a slog level. Unknown names
// fall back to warn.
func (c LogConfig) SlogLevel() slog.Level {
	switch strings.ToLower(strings.TrimSpace(c.Level)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}
