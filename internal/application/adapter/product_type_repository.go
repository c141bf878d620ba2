// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/scraptrade/backend/internal/domain/entity"
)

// ProductTypeRepository defines the interface for product type persistence operations.
type ProductTypeRepository interface {
	// Create creates a new product type in the database.
	Create(ctx context.Context, productType *entity.ProductType) error

	// FindByID retrieves a product type by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.ProductType, error)

	// FindAll retrieves all product types ordered by name.
	FindAll(ctx context.Context) ([]*entity.ProductType, error)

	// ExistsByName checks whether a product type with the given name exists.
	ExistsByName(ctx context.Context, name string) (bool, error)

	// Update updates an existing product type in the database.
	Update(ctx context.Context, productType *entity.ProductType) error

	// Delete removes a product type from the database.
	Delete(ctx context.Context, id uuid.UUID) error

	// IsReferenced checks whether any sale item references the product type.
	IsReferenced(ctx context.Context, id uuid.UUID) (bool, error)
}
