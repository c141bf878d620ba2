// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/scraptrade/backend/internal/domain/entity"
)

// BuyerFilter holds list filters for buyers.
type BuyerFilter struct {
	// Search matches name or phone as a case-insensitive substring.
	Search string
	Skip   int
	// Limit of 0 means no limit.
	Limit int
}

// BuyerRepository defines the interface for buyer persistence operations.
type BuyerRepository interface {
	// Create creates a new buyer in the database.
	Create(ctx context.Context, buyer *entity.Buyer) error

	// FindByID retrieves a buyer by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Buyer, error)

	// FindAll retrieves buyers matching the filter, ordered by name.
	FindAll(ctx context.Context, filter BuyerFilter) ([]*entity.Buyer, error)

	// Update updates an existing buyer in the database.
	Update(ctx context.Context, buyer *entity.Buyer) error

	// Delete removes a buyer from the database.
	Delete(ctx context.Context, id uuid.UUID) error
}
