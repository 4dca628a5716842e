package models

import (
	"slices"
	"time"

	"github.com/shopspring/decimal"
)

// Product represents a catalog item.
type Product struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category"`
	Stock       int             `json:"stock"`
	Description string          `json:"description"`
	Tags        []string        `json:"tags"`
	IsActive    bool            `json:"isActive"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// Clone returns a copy that shares no memory with p.
func (p Product) Clone() Product {
	p.Tags = slices.Clone(p.Tags)
	if p.Tags == nil {
		p.Tags = []string{}
	}
	return p
}

// ProductInput carries the editable fields of a new product.
// A nil IsActive means the product starts active.
type ProductInput struct {
	Name        string
	Price       decimal.Decimal
	Category    string
	Stock       int
	Description string
	Tags        []string
	IsActive    *bool
}

// ProductPatch is a partial update; nil fields are left untouched.
type ProductPatch struct {
	Name        *string
	Price       *decimal.Decimal
	Category    *string
	Stock       *int
	Description *string
	Tags        []string
	SetTags     bool // Tags is applied only when set, so an empty list can clear tags
	IsActive    *bool
}

// Apply merges the supplied fields over p. ID and timestamps are not touched.
func (patch ProductPatch) Apply(p *Product) {
	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.Price != nil {
		p.Price = *patch.Price
	}
	if patch.Category != nil {
		p.Category = *patch.Category
	}
	if patch.Stock != nil {
		p.Stock = *patch.Stock
	}
	if patch.Description != nil {
		p.Description = *patch.Description
	}
	if patch.SetTags {
		p.Tags = slices.Clone(patch.Tags)
		if p.Tags == nil {
			p.Tags = []string{}
		}
	}
	if patch.IsActive != nil {
		p.IsActive = *patch.IsActive
	}
}
