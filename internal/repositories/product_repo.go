package repositories

import (
	"errors"

	"katalog/internal/models"
)

// ErrProductNotFound is returned when an operation references an unknown product ID.
var ErrProductNotFound = errors.New("product not found")

// ProductRepository defines the interface for product data access.
type ProductRepository interface {
	GetAll() ([]models.Product, error)
	GetByID(id string) (*models.Product, error)
	Create(input models.ProductInput) (*models.Product, error)
	Update(id string, patch models.ProductPatch) (*models.Product, error)
	Delete(id string) error
}
