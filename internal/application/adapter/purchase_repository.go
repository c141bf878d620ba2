// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/scraptrade/backend/internal/domain/entity"
)

// PurchaseFilter holds list filters for purchases.
type PurchaseFilter struct {
	StartDate  *time.Time
	EndDate    *time.Time
	SellerName string
	Skip       int
	// Limit of 0 means no limit.
	Limit int
}

// TransportExpenseSync describes the derived-expense write that must happen
// atomically with a purchase update. At most one field is set.
type TransportExpenseSync struct {
	Create *entity.Expense
	Update *entity.Expense
	Delete *uuid.UUID
}

// PurchaseRepository defines the interface for purchase persistence operations.
type PurchaseRepository interface {
	// Create creates a purchase and, when transportExpense is non-nil, its
	// derived expense within one transaction.
	Create(ctx context.Context, purchase *entity.Purchase, transportExpense *entity.Expense) error

	// FindByID retrieves a purchase by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Purchase, error)

	// FindAll retrieves purchases matching the filter, ordered by date descending.
	FindAll(ctx context.Context, filter PurchaseFilter) ([]*entity.Purchase, error)

	// Update saves a purchase and applies the derived-expense sync within one
	// transaction.
	Update(ctx context.Context, purchase *entity.Purchase, sync TransportExpenseSync) error

	// Delete removes a purchase and, when linkedExpenseID is non-nil, its
	// derived expense within one transaction.
	Delete(ctx context.Context, id uuid.UUID, linkedExpenseID *uuid.UUID) error

	// SumTotalCost sums total purchase cost over the inclusive date range.
	// Nil bounds mean unbounded.
	SumTotalCost(ctx context.Context, startDate, endDate *time.Time) (decimal.Decimal, error)
}
