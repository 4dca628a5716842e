package repositories

import (
	"fmt"
	"slices"
	"sync"
	"time"

	"katalog/internal/models"

	"github.com/google/uuid"
)

// MemoryProductRepository is the in-memory implementation of ProductRepository.
// It keeps insertion order alongside the ID index.
type MemoryProductRepository struct {
	products map[string]models.Product
	order    []string
	now      func() time.Time
	newID    func() string
	mu       sync.RWMutex
}

// Option configures a MemoryProductRepository.
type Option func(*MemoryProductRepository)

// WithClock overrides the time source used for createdAt/updatedAt.
func WithClock(now func() time.Time) Option {
	return func(r *MemoryProductRepository) {
		r.now = now
	}
}

// WithIDGenerator overrides product ID generation.
func WithIDGenerator(newID func() string) Option {
	return func(r *MemoryProductRepository) {
		r.newID = newID
	}
}

// NewMemoryProductRepository creates a new instance of MemoryProductRepository.
func NewMemoryProductRepository(opts ...Option) *MemoryProductRepository {
	r := &MemoryProductRepository{
		products: make(map[string]models.Product),
		now:      time.Now,
		newID:    newProductID,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// newProductID returns a UUIDv7. v7 values generated by one process are
// strictly increasing, even within the same millisecond.
func newProductID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}

// GetAll returns a snapshot of all products in insertion order.
func (r *MemoryProductRepository) GetAll() ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	productList := make([]models.Product, 0, len(r.order))
	for _, id := range r.order {
		productList = append(productList, r.products[id].Clone())
	}
	return productList, nil
}

// GetByID returns a product by its ID.
func (r *MemoryProductRepository) GetByID(id string) (*models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	product, ok := r.products[id]
	if !ok {
		return nil, fmt.Errorf("product with ID %s: %w", id, ErrProductNotFound)
	}
	product = product.Clone()
	return &product, nil
}

// Create adds a new product. It never fails for well-formed input.
func (r *MemoryProductRepository) Create(input models.ProductInput) (*models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	product := models.Product{
		ID:          r.newID(),
		Name:        input.Name,
		Price:       input.Price,
		Category:    input.Category,
		Stock:       input.Stock,
		Description: input.Description,
		Tags:        slices.Clone(input.Tags),
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if product.Tags == nil {
		product.Tags = []string{}
	}
	if input.IsActive != nil {
		product.IsActive = *input.IsActive
	}

	r.products[product.ID] = product
	r.order = append(r.order, product.ID)

	created := product.Clone()
	return &created, nil
}

// Update merges patch over an existing product and stamps UpdatedAt.
func (r *MemoryProductRepository) Update(id string, patch models.ProductPatch) (*models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	product, ok := r.products[id]
	if !ok {
		return nil, fmt.Errorf("product with ID %s not updated: %w", id, ErrProductNotFound)
	}

	patch.Apply(&product)
	product.UpdatedAt = r.now()
	if product.UpdatedAt.Before(product.CreatedAt) {
		product.UpdatedAt = product.CreatedAt
	}
	r.products[product.ID] = product

	updated := product.Clone()
	return &updated, nil
}

// Delete removes a product by its ID. Deleting an absent ID is a no-op.
func (r *MemoryProductRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.products[id]; !ok {
		return nil
	}
	delete(r.products, id)
	r.order = slices.DeleteFunc(r.order, func(v string) bool { return v == id })
	return nil
}
