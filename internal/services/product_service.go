package services

import (
	"fmt"

	"katalog/internal/catalog"
	"katalog/internal/models"
	"katalog/internal/repositories"

	"github.com/rs/zerolog"
)

// ProductService handles business logic related to products.
type ProductService struct {
	repo   repositories.ProductRepository
	logger zerolog.Logger
}

// NewProductService creates a new ProductService.
func NewProductService(repo repositories.ProductRepository, logger zerolog.Logger) *ProductService {
	return &ProductService{
		repo:   repo,
		logger: logger.With().Str("component", "ProductService").Logger(),
	}
}

// GetAllProducts retrieves all products in insertion order.
func (s *ProductService) GetAllProducts() ([]models.Product, error) {
	return s.repo.GetAll()
}

// GetProductByID retrieves a single product by its ID.
func (s *ProductService) GetProductByID(id string) (*models.Product, error) {
	return s.repo.GetByID(id)
}

// CreateProduct stores a new product built from input.
func (s *ProductService) CreateProduct(input models.ProductInput) (*models.Product, error) {
	product, err := s.repo.Create(input)
	if err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}
	s.logger.Info().
		Str("productId", product.ID).
		Str("name", product.Name).
		Msg("product created")
	return product, nil
}

// UpdateProduct applies patch to an existing product.
func (s *ProductService) UpdateProduct(id string, patch models.ProductPatch) (*models.Product, error) {
	product, err := s.repo.Update(id, patch)
	if err != nil {
		s.logger.Warn().Err(err).Str("productId", id).Msg("product update rejected")
		return nil, err
	}
	s.logger.Info().
		Str("productId", product.ID).
		Time("updatedAt", product.UpdatedAt).
		Msg("product updated")
	return product, nil
}

// DeleteProduct deletes a product by its ID. Unknown IDs are ignored.
func (s *ProductService) DeleteProduct(id string) error {
	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete product %s: %w", id, err)
	}
	s.logger.Info().Str("productId", id).Msg("product deleted")
	return nil
}

// ListProducts filters, sorts and slices the current catalog.
func (s *ProductService) ListProducts(criteria catalog.Criteria, page, pageSize int) (catalog.Page[models.Product], error) {
	all, err := s.repo.GetAll()
	if err != nil {
		return catalog.Page[models.Product]{}, fmt.Errorf("failed to list products: %w", err)
	}
	return catalog.Paginate(catalog.Filter(all, criteria), page, pageSize), nil
}
