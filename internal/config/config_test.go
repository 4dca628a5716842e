package config_test

import (
	"testing"
	"time"

	"katalog/internal/config"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromViper_Defaults(t *testing.T) {
	v := viper.New()
	config.SetDefaults(v)

	cfg, err := config.FromViper(v)
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.AppPort)
	assert.Equal(t, 2*time.Second, cfg.ToastDuration)
	assert.Equal(t, 500*time.Millisecond, cfg.SearchDebounce)
	assert.Equal(t, 5, cfg.DefaultPageSize)
	assert.True(t, cfg.SeedProducts)
}

func TestFromViper_Overrides(t *testing.T) {
	v := viper.New()
	config.SetDefaults(v)
	v.Set("TOAST_DURATION", "3s")
	v.Set("DEFAULT_PAGE_SIZE", 8)
	v.Set("SEED_PRODUCTS", "false")

	cfg, err := config.FromViper(v)
	require.NoError(t, err)
	assert.Equal(t, 3*time.Second, cfg.ToastDuration)
	assert.Equal(t, 8, cfg.DefaultPageSize)
	assert.False(t, cfg.SeedProducts)
}

func TestFromViper_RejectsPageSizeOutsideEnum(t *testing.T) {
	v := viper.New()
	config.SetDefaults(v)
	v.Set("DEFAULT_PAGE_SIZE", 12)

	_, err := config.FromViper(v)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "DEFAULT_PAGE_SIZE")
}

func TestLoad_ReadsEnvironment(t *testing.T) {
	t.Setenv("APP_PORT", ":9090")
	t.Setenv("SEARCH_DEBOUNCE", "250ms")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.AppPort)
	assert.Equal(t, 250*time.Millisecond, cfg.SearchDebounce)
}

func TestFromViper_RejectsDurationsWithoutUnit(t *testing.T) {
	v := viper.New()
	config.SetDefaults(v)
	v.Set("TOAST_DURATION", "2000")

	_, err := config.FromViper(v)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "TOAST_DURATION")

	v.Set("TOAST_DURATION", "2s")
	v.Set("SEARCH_DEBOUNCE", "500")
	_, err = config.FromViper(v)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SEARCH_DEBOUNCE")
}
