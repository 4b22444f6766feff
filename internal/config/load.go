package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Load reads configuration from $XDG_CONFIG_HOME/prepdeck/config.yaml
// (if present) and PREPDECK_* environment variables, with env taking
// precedence. The result is validated before use.
func Load() (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if dir, err := configDir(); err == nil {
		v.AddConfigPath(dir)
	}

	v.SetEnvPrefix("PREPDECK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Keys without defaults need explicit binding for Unmarshal to see
	// their env values.
	for _, key := range []string{"database.path", "directory.base_url", "directory.token"} {
		_ = v.BindEnv(key)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
		// No file is fine; env vars and defaults carry the load.
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("directory.timeout_seconds", 15)
	v.SetDefault("session.allowed_durations", []int{30, 45, 90})
	v.SetDefault("session.default_duration", 45)
	v.SetDefault("session.review_window", 10)
	v.SetDefault("session.overdue_rank", 15)
	v.SetDefault("session.backoff_per_failure", 0.5)
	v.SetDefault("session.backoff_cap", 1.5)
}

// configDir resolves $XDG_CONFIG_HOME/prepdeck, falling back to
// ~/.config/prepdeck.
func configDir() (string, error) {
	if base := os.Getenv("XDG_CONFIG_HOME"); base != "" {
		return filepath.Join(base, "prepdeck"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}
	return filepath.Join(home, ".config", "prepdeck"), nil
}
