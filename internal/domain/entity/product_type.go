// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// ProductType represents an entry in the product master list referenced by
// sale line items.
type ProductType struct {
	ID          uuid.UUID
	Name        string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewProductType creates a new ProductType entity.
func NewProductType(name, description string) *ProductType {
	now := time.Now().UTC()

	return &ProductType{
		ID:          uuid.New(),
		Name:        name,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}
