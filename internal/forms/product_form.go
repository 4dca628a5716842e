// Package forms converts raw product form submissions into store inputs.
package forms

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"

	"katalog/internal/models"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// ProductForm is the raw, string-typed product form.
type ProductForm struct {
	Name        string `json:"name" validate:"required"`
	Price       string `json:"price" validate:"required"`
	Category    string `json:"category" validate:"required"`
	Stock       string `json:"stock"`
	Description string `json:"description"`
	Tags        string `json:"tags"`
	IsActive    *bool  `json:"isActive,omitempty"`
}

// ValidationError maps form field names to messages.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return fmt.Sprintf("validation failed on %s", strings.Join(keys, ", "))
}

var requiredMessages = map[string]string{
	"name":     "Name required",
	"price":    "Price required",
	"category": "Category required",
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Normalize trims the single-line fields.
func (f ProductForm) Normalize() ProductForm {
	f.Name = strings.TrimSpace(f.Name)
	f.Price = strings.TrimSpace(f.Price)
	f.Category = strings.TrimSpace(f.Category)
	f.Stock = strings.TrimSpace(f.Stock)
	return f
}

// Validate checks required fields and numeric formats. It returns a
// *ValidationError keyed by field name, or nil.
func (f ProductForm) Validate() error {
	f = f.Normalize()
	fields := make(map[string]string)

	if err := validate.Struct(f); err != nil {
		var validationErrors validator.ValidationErrors
		if !errors.As(err, &validationErrors) {
			return fmt.Errorf("validate product form: %w", err)
		}
		for _, e := range validationErrors {
			msg, ok := requiredMessages[e.Field()]
			if !ok || e.Tag() != "required" {
				msg = fmt.Sprintf("Field '%s' failed on the '%s' tag", e.Field(), e.Tag())
			}
			fields[e.Field()] = msg
		}
	}

	if _, ok := fields["price"]; !ok {
		if _, err := decimal.NewFromString(f.Price); err != nil {
			fields["price"] = "Price must be a number"
		}
	}
	if f.Stock != "" {
		if _, err := strconv.Atoi(f.Stock); err != nil {
			fields["stock"] = "Stock must be a whole number"
		}
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

// ToInput validates the form and converts it for ProductStore.Create.
func (f ProductForm) ToInput() (models.ProductInput, error) {
	if err := f.Validate(); err != nil {
		return models.ProductInput{}, err
	}
	f = f.Normalize()

	price, _ := decimal.NewFromString(f.Price)
	stock := parseStock(f.Stock)
	return models.ProductInput{
		Name:        f.Name,
		Price:       price,
		Category:    f.Category,
		Stock:       stock,
		Description: f.Description,
		Tags:        TextToTags(f.Tags),
		IsActive:    f.IsActive,
	}, nil
}

// ToPatch validates the form and converts it into a full-field patch for
// ProductStore.Update.
func (f ProductForm) ToPatch() (models.ProductPatch, error) {
	if err := f.Validate(); err != nil {
		return models.ProductPatch{}, err
	}
	f = f.Normalize()

	price, _ := decimal.NewFromString(f.Price)
	stock := parseStock(f.Stock)
	return models.ProductPatch{
		Name:        &f.Name,
		Price:       &price,
		Category:    &f.Category,
		Stock:       &stock,
		Description: &f.Description,
		Tags:        TextToTags(f.Tags),
		SetTags:     true,
		IsActive:    f.IsActive,
	}, nil
}

// FromProduct seeds an edit form with the product's current values.
func FromProduct(p models.Product) ProductForm {
	active := p.IsActive
	return ProductForm{
		Name:        p.Name,
		Price:       p.Price.String(),
		Category:    p.Category,
		Stock:       strconv.Itoa(p.Stock),
		Description: p.Description,
		Tags:        TagsToText(p.Tags),
		IsActive:    &active,
	}
}

func parseStock(s string) int {
	if s == "" {
		return 0
	}
	n, _ := strconv.Atoi(s)
	return n
}
