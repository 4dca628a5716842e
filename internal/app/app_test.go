package app_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"katalog/internal/app"
	"katalog/internal/config"
	"katalog/internal/models"
	"katalog/internal/services"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(seed bool) *config.Config {
	return &config.Config{
		AppPort:         ":0",
		AppEnv:          "test",
		LogLevel:        "disabled",
		ToastDuration:   time.Hour,
		SearchDebounce:  time.Hour,
		DefaultPageSize: 5,
		SeedProducts:    seed,
	}
}

func TestNew_HealthCheck(t *testing.T) {
	application := app.New(testConfig(false), zerolog.Nop())
	t.Cleanup(func() { application.Session.Close() })

	resp, err := application.Server.Test(httptest.NewRequest(http.MethodGet, "/health", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	bodyBytes, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(bodyBytes), "\"status\":\"healthy\"")
}

func TestNew_SeedsCatalog(t *testing.T) {
	application := app.New(testConfig(true), zerolog.Nop())
	t.Cleanup(func() { application.Session.Close() })

	all, err := application.Repo.GetAll()
	require.NoError(t, err)
	assert.Len(t, all, 7)

	inactive := 0
	for _, p := range all {
		if !p.IsActive {
			inactive++
		}
	}
	assert.Equal(t, 2, inactive)

	resp, err := application.Server.Test(httptest.NewRequest(http.MethodGet, "/api/v1/catalog", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var view services.CatalogView
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&view))
	assert.Equal(t, 7, view.TotalItems)
	assert.Equal(t, 2, view.TotalPages)
	assert.Len(t, view.Products, 5)
	assert.Equal(t, models.ViewList, view.View)
}

func TestNew_WithoutSeed(t *testing.T) {
	application := app.New(testConfig(false), zerolog.Nop())
	t.Cleanup(func() { application.Session.Close() })

	all, err := application.Repo.GetAll()
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestShutdown(t *testing.T) {
	application := app.New(testConfig(false), zerolog.Nop())
	assert.NoError(t, application.Shutdown())
}
