// Package config loads process-wide configuration from a config file
// and PREPDECK_* environment variables. Heuristic constants live here
// so components receive them by injection instead of reading ambient
// globals.
package config

// Config holds all application configuration.
type Config struct {
	Database  DatabaseConfig  `mapstructure:"database"`
	Directory DirectoryConfig `mapstructure:"directory" validate:"required"`
	Session   SessionConfig   `mapstructure:"session"`
}

// DatabaseConfig locates the local SQLite database.
type DatabaseConfig struct {
	// Path overrides the default XDG location when set.
	Path string `mapstructure:"path"`
}

// DirectoryConfig holds credentials for the external collections API.
type DirectoryConfig struct {
	BaseURL        string `mapstructure:"base_url" validate:"required,url"`
	Token          string `mapstructure:"token" validate:"required"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds" validate:"gte=0,lte=120"`
}

// SessionConfig carries the tunable scheduling heuristics. The values
// are tuned defaults, kept configurable rather than re-derived.
type SessionConfig struct {
	AllowedDurations  []int   `mapstructure:"allowed_durations" validate:"required,min=1,dive,gt=0"`
	DefaultDuration   int     `mapstructure:"default_duration" validate:"required,gt=0"`
	ReviewWindow      int     `mapstructure:"review_window" validate:"gt=0"`
	OverdueRank       int     `mapstructure:"overdue_rank" validate:"gt=0"`
	BackoffPerFailure float64 `mapstructure:"backoff_per_failure" validate:"gt=0"`
	BackoffCap        float64 `mapstructure:"backoff_cap" validate:"gt=0"`
}
