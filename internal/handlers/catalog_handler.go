package handlers

import (
	"errors"

	"katalog/internal/forms"
	"katalog/internal/models"
	"katalog/internal/repositories"
	"katalog/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"github.com/rs/zerolog"
)

// CatalogHandler handles HTTP requests that drive a catalog session.
type CatalogHandler struct {
	session *services.CatalogSession
	logger  zerolog.Logger
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(session *services.CatalogSession, logger zerolog.Logger) *CatalogHandler {
	return &CatalogHandler{
		session: session,
		logger:  logger.With().Str("component", "CatalogHandler").Logger(),
	}
}

// RegisterRoutes registers the catalog and product routes.
func (h *CatalogHandler) RegisterRoutes(router fiber.Router) {
	catalogRoutes := router.Group("/catalog")
	catalogRoutes.Get("/", h.HandleGetView)
	catalogRoutes.Put("/search", h.HandleSearch)
	catalogRoutes.Post("/search/settle", h.HandleSettleSearch)
	catalogRoutes.Put("/filter", h.HandleSetFilter)
	catalogRoutes.Post("/filter/next", h.HandleCycleFilter)
	catalogRoutes.Put("/page", h.HandleGoToPage)
	catalogRoutes.Put("/page-size", h.HandleSetPageSize)
	catalogRoutes.Post("/view/toggle", h.HandleToggleView)
	catalogRoutes.Post("/form", h.HandleOpenCreate)
	catalogRoutes.Delete("/form", h.HandleCloseForm)
	catalogRoutes.Post("/delete/confirm", h.HandleConfirmDelete)
	catalogRoutes.Post("/delete/cancel", h.HandleCancelDelete)
	catalogRoutes.Delete("/toast", h.HandleDismissToast)

	productRoutes := router.Group("/products")
	productRoutes.Post("/", h.HandleCreateProduct)
	productRoutes.Get("/:id/form", h.HandleOpenEdit)
	productRoutes.Put("/:id", h.HandleUpdateProduct)
	productRoutes.Delete("/:id", h.HandleRequestDelete)
}

// HandleGetView returns the current page of the catalog.
func (h *CatalogHandler) HandleGetView(c *fiber.Ctx) error {
	return h.respondView(c, fiber.StatusOK)
}

// HandleSearch feeds raw search input. It applies once typing settles.
func (h *CatalogHandler) HandleSearch(c *fiber.Ctx) error {
	var req struct {
		Term string `json:"term"`
	}
	if err := c.BodyParser(&req); err != nil {
		return h.badBody(c, err)
	}
	h.session.TypeSearch(req.Term)
	return h.respondView(c, fiber.StatusAccepted)
}

// HandleSettleSearch applies pending search input now.
func (h *CatalogHandler) HandleSettleSearch(c *fiber.Ctx) error {
	h.session.SettleSearch()
	return h.respondView(c, fiber.StatusOK)
}

// HandleSetFilter sets the activity filter.
func (h *CatalogHandler) HandleSetFilter(c *fiber.Ctx) error {
	var req struct {
		Filter string `json:"filter"`
	}
	if err := c.BodyParser(&req); err != nil {
		return h.badBody(c, err)
	}
	filter, err := models.ParseActivityFilter(req.Filter)
	if err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"message": "Invalid activity filter",
			"error":   err.Error(),
		})
	}
	h.session.SetActivityFilter(filter)
	return h.respondView(c, fiber.StatusOK)
}

// HandleCycleFilter moves to the next activity filter.
func (h *CatalogHandler) HandleCycleFilter(c *fiber.Ctx) error {
	h.session.CycleActivityFilter()
	return h.respondView(c, fiber.StatusOK)
}

// HandleGoToPage navigates to a page.
func (h *CatalogHandler) HandleGoToPage(c *fiber.Ctx) error {
	var req struct {
		Page int `json:"page"`
	}
	if err := c.BodyParser(&req); err != nil {
		return h.badBody(c, err)
	}
	if err := h.session.GoToPage(req.Page); err != nil {
		return h.respondError(c, err)
	}
	return h.respondView(c, fiber.StatusOK)
}

// HandleSetPageSize changes the page size.
func (h *CatalogHandler) HandleSetPageSize(c *fiber.Ctx) error {
	var req struct {
		PageSize int `json:"pageSize"`
	}
	if err := c.BodyParser(&req); err != nil {
		return h.badBody(c, err)
	}
	if err := h.session.SetPageSize(req.PageSize); err != nil {
		return h.respondError(c, err)
	}
	return h.respondView(c, fiber.StatusOK)
}

// HandleToggleView flips list/card presentation.
func (h *CatalogHandler) HandleToggleView(c *fiber.Ctx) error {
	h.session.ToggleView()
	return h.respondView(c, fiber.StatusOK)
}

// HandleOpenCreate opens an empty product form.
func (h *CatalogHandler) HandleOpenCreate(c *fiber.Ctx) error {
	h.session.OpenCreate()
	return h.respondView(c, fiber.StatusOK)
}

// HandleCloseForm closes the product form.
func (h *CatalogHandler) HandleCloseForm(c *fiber.Ctx) error {
	h.session.CloseForm()
	return h.respondView(c, fiber.StatusOK)
}

// HandleCreateProduct validates the form and adds a product.
func (h *CatalogHandler) HandleCreateProduct(c *fiber.Ctx) error {
	var form forms.ProductForm
	if err := c.BodyParser(&form); err != nil {
		return h.badBody(c, err)
	}
	product, err := h.session.SaveProduct("", form)
	if err != nil {
		return h.respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(product)
}

// HandleOpenEdit makes a product the edit target and returns its form.
func (h *CatalogHandler) HandleOpenEdit(c *fiber.Ctx) error {
	form, err := h.session.OpenEdit(productID(c))
	if err != nil {
		return h.respondError(c, err)
	}
	return c.JSON(form)
}

// HandleUpdateProduct validates the form and updates the product.
func (h *CatalogHandler) HandleUpdateProduct(c *fiber.Ctx) error {
	var form forms.ProductForm
	if err := c.BodyParser(&form); err != nil {
		return h.badBody(c, err)
	}
	product, err := h.session.SaveProduct(productID(c), form)
	if err != nil {
		return h.respondError(c, err)
	}
	return c.JSON(product)
}

// HandleRequestDelete asks for confirmation before deleting a product.
func (h *CatalogHandler) HandleRequestDelete(c *fiber.Ctx) error {
	if err := h.session.RequestDelete(productID(c)); err != nil {
		return h.respondError(c, err)
	}
	return h.respondView(c, fiber.StatusAccepted)
}

// HandleConfirmDelete deletes the product awaiting confirmation.
func (h *CatalogHandler) HandleConfirmDelete(c *fiber.Ctx) error {
	product, err := h.session.ConfirmDelete()
	if err != nil {
		return h.respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Product " + product.ID + " deleted successfully",
		"product": product,
	})
}

// HandleCancelDelete abandons the pending delete.
func (h *CatalogHandler) HandleCancelDelete(c *fiber.Ctx) error {
	if err := h.session.CancelDelete(); err != nil {
		return h.respondError(c, err)
	}
	return h.respondView(c, fiber.StatusOK)
}

// HandleDismissToast hides the toast.
func (h *CatalogHandler) HandleDismissToast(c *fiber.Ctx) error {
	h.session.DismissToast()
	return h.respondView(c, fiber.StatusOK)
}

func (h *CatalogHandler) respondView(c *fiber.Ctx, status int) error {
	view, err := h.session.View()
	if err != nil {
		return h.respondError(c, err)
	}
	return c.Status(status).JSON(view)
}

func (h *CatalogHandler) badBody(c *fiber.Ctx, err error) error {
	h.logger.Warn().Err(err).Str("path", c.Path()).Msg("invalid request body")
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"message": "Invalid request body",
		"error":   err.Error(),
	})
}

func (h *CatalogHandler) respondError(c *fiber.Ctx, err error) error {
	var validationErr *forms.ValidationError
	switch {
	case errors.As(err, &validationErr):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  validationErr.Fields,
		})
	case errors.Is(err, repositories.ErrProductNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Product not found",
			"error":   err.Error(),
		})
	case errors.Is(err, services.ErrPageOutOfRange), errors.Is(err, services.ErrInvalidPageSize):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"message": "Request rejected",
			"error":   err.Error(),
		})
	case errors.Is(err, services.ErrNothingPending):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"message": "Nothing to confirm",
			"error":   err.Error(),
		})
	}

	h.logger.Error().Err(err).Str("path", c.Path()).Msg("request failed")
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"message": "Could not process request",
		"error":   err.Error(),
	})
}

// productID copies the :id route param out of the request buffer Fiber reuses.
func productID(c *fiber.Ctx) string {
	return utils.CopyString(c.Params("id"))
}
