package config

import (
	"fmt"
	"time"

	"katalog/internal/catalog"
	"katalog/internal/notify"

	"github.com/spf13/viper"
)

// Config holds the application settings.
type Config struct {
	AppPort         string
	AppEnv          string
	LogLevel        string
	LogFile         string
	ToastDuration   time.Duration
	SearchDebounce  time.Duration
	DefaultPageSize int
	SeedProducts    bool
}

// SetDefaults registers default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("APP_PORT", ":8080")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FILE", "")
	v.SetDefault("TOAST_DURATION", notify.DefaultDuration)
	v.SetDefault("SEARCH_DEBOUNCE", 500*time.Millisecond)
	v.SetDefault("DEFAULT_PAGE_SIZE", catalog.DefaultPageSize)
	v.SetDefault("SEED_PRODUCTS", true)
}

// Load reads configuration from environment variables over the defaults.
func Load() (*Config, error) {
	v := viper.New()
	SetDefaults(v)
	v.AutomaticEnv() // Load environment variables
	return FromViper(v)
}

// FromViper builds a Config from v and validates it.
func FromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		AppPort:         v.GetString("APP_PORT"),
		AppEnv:          v.GetString("APP_ENV"),
		LogLevel:        v.GetString("LOG_LEVEL"),
		LogFile:         v.GetString("LOG_FILE"),
		ToastDuration:   v.GetDuration("TOAST_DURATION"),
		SearchDebounce:  v.GetDuration("SEARCH_DEBOUNCE"),
		DefaultPageSize: v.GetInt("DEFAULT_PAGE_SIZE"),
		SeedProducts:    v.GetBool("SEED_PRODUCTS"),
	}

	if !catalog.ValidPageSize(cfg.DefaultPageSize) {
		return nil, fmt.Errorf("DEFAULT_PAGE_SIZE %d is not one of %v", cfg.DefaultPageSize, catalog.PageSizes)
	}
	// A bare number such as "2000" parses as nanoseconds.
	if cfg.ToastDuration < time.Millisecond {
		return nil, fmt.Errorf("TOAST_DURATION must be at least 1ms (use a unit, e.g. 2s), got %s", cfg.ToastDuration)
	}
	if cfg.SearchDebounce < time.Millisecond {
		return nil, fmt.Errorf("SEARCH_DEBOUNCE must be at least 1ms (use a unit, e.g. 500ms), got %s", cfg.SearchDebounce)
	}
	return cfg, nil
}
