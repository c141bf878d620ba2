// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/scraptrade/backend/internal/domain/entity"
)

// PaymentRepository defines the interface for payment persistence operations.
type PaymentRepository interface {
	// Create creates a new payment in the database.
	Create(ctx context.Context, payment *entity.Payment) error

	// FindByBuyer retrieves all payments for a buyer, newest first.
	FindByBuyer(ctx context.Context, buyerID uuid.UUID) ([]*entity.Payment, error)

	// FindByBuyerInRange retrieves a buyer's payments within the inclusive
	// date range, ordered by date then creation time.
	FindByBuyerInRange(ctx context.Context, buyerID uuid.UUID, startDate, endDate *time.Time) ([]*entity.Payment, error)

	// ExistsByBuyer checks whether the buyer has any payments.
	ExistsByBuyer(ctx context.Context, buyerID uuid.UUID) (bool, error)

	// SumAmountByBuyer sums all payment amounts for one buyer.
	SumAmountByBuyer(ctx context.Context, buyerID uuid.UUID) (decimal.Decimal, error)

	// TotalsByBuyer returns the all-time payment total per buyer.
	TotalsByBuyer(ctx context.Context) (map[uuid.UUID]decimal.Decimal, error)
}
