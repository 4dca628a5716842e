package app

import (
	"time"

	"katalog/internal/config"
	"katalog/internal/forms"
	"katalog/internal/handlers"
	"katalog/internal/middleware"
	"katalog/internal/repositories"
	"katalog/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/rs/zerolog"
)

// App bundles the HTTP server with the catalog it serves.
type App struct {
	Server  *fiber.App
	Session *services.CatalogSession
	Repo    *repositories.MemoryProductRepository
}

// New wires the repository, services and handlers.
func New(cfg *config.Config, logger zerolog.Logger) *App {
	// --- Initialize Repository ---
	productRepo := repositories.NewMemoryProductRepository()

	// --- Initialize Services ---
	productService := services.NewProductService(productRepo, logger)
	session := services.NewCatalogSession(productService, services.SessionConfig{
		PageSize:       cfg.DefaultPageSize,
		SearchDebounce: cfg.SearchDebounce,
		ToastDuration:  cfg.ToastDuration,
	}, logger)

	if cfg.SeedProducts {
		SeedProducts(productService, logger)
	}

	// --- Initialize Fiber App ---
	server := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		Immutable:             true,
	})
	server.Use(recover.New())
	server.Use(middleware.RequestLogger(logger))

	// --- API Routes ---
	apiV1 := server.Group("/api/v1")
	handlers.NewCatalogHandler(session, logger).RegisterRoutes(apiV1)

	// --- Health Check Endpoint ---
	server.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	return &App{Server: server, Session: session, Repo: productRepo}
}

// Shutdown stops the HTTP server and the session timers.
func (a *App) Shutdown() error {
	defer a.Session.Close()
	return a.Server.Shutdown()
}

var seedForms = []forms.ProductForm{
	{Name: "Laptop", Price: "1200", Category: "Electronics", Stock: "10", Description: "High performance laptop", Tags: "work, portable"},
	{Name: "Mechanical Keyboard", Price: "75", Category: "Accessories", Stock: "25", Description: "Tactile switches", Tags: "typing"},
	{Name: "Wireless Mouse", Price: "25", Category: "Accessories", Stock: "50", Description: "Ergonomic wireless mouse"},
	{Name: "USB-C Hub", Price: "40", Category: "Accessories", Stock: "0", Tags: "usb, adapter"},
	{Name: "27in Monitor", Price: "320", Category: "Electronics", Stock: "8", Tags: "display"},
	{Name: "Desk Lamp", Price: "18.5", Category: "Office", Stock: "30"},
	{Name: "Laptop Stand", Price: "35", Category: "Office", Stock: "12", Tags: "ergonomic"},
}

// SeedProducts populates the catalog with sample data. Every third product
// starts inactive so the activity filter has something to hide.
func SeedProducts(service *services.ProductService, logger zerolog.Logger) {
	for i, form := range seedForms {
		input, err := form.ToInput()
		if err != nil {
			logger.Error().Err(err).Str("name", form.Name).Msg("invalid seed product")
			continue
		}
		if i%3 == 2 {
			inactive := false
			input.IsActive = &inactive
		}
		if _, err := service.CreateProduct(input); err != nil {
			logger.Error().Err(err).Str("name", form.Name).Msg("failed to seed product")
		}
	}
}
