// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/scraptrade/backend/internal/domain/entity"
)

// SaleFilter holds list filters for sales.
type SaleFilter struct {
	StartDate   *time.Time
	EndDate     *time.Time
	BuyerID     *uuid.UUID
	PaymentType *entity.PaymentType
	Skip        int
	// Limit of 0 means no limit.
	Limit int
}

// ProductSalesRow is one aggregated row of the per-product sales report.
type ProductSalesRow struct {
	ProductName   string
	TotalQuantity float64
	TotalAmount   decimal.Decimal
}

// SaleRepository defines the interface for sale persistence operations.
type SaleRepository interface {
	// Create creates a sale with its items and, when autoPayment is non-nil,
	// the payment derived from payment_received_now, all in one transaction.
	Create(ctx context.Context, sale *entity.Sale, autoPayment *entity.Payment) error

	// FindByID retrieves a sale with its items by ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Sale, error)

	// FindAll retrieves sales matching the filter, ordered by date descending.
	FindAll(ctx context.Context, filter SaleFilter) ([]*entity.Sale, error)

	// FindByBuyerInRange retrieves a buyer's sales within the inclusive date
	// range, ordered by date then creation time.
	FindByBuyerInRange(ctx context.Context, buyerID uuid.UUID, startDate, endDate *time.Time) ([]*entity.Sale, error)

	// Update saves the sale row. Items are not touched.
	Update(ctx context.Context, sale *entity.Sale) error

	// Delete removes a sale and its items in one transaction.
	Delete(ctx context.Context, id uuid.UUID) error

	// ExistsByBuyer checks whether the buyer has any sales.
	ExistsByBuyer(ctx context.Context, buyerID uuid.UUID) (bool, error)

	// SumAmount sums total sale amounts over the inclusive date range.
	// Nil bounds mean unbounded.
	SumAmount(ctx context.Context, startDate, endDate *time.Time) (decimal.Decimal, error)

	// SumAmountByBuyer sums all sale amounts for one buyer.
	SumAmountByBuyer(ctx context.Context, buyerID uuid.UUID) (decimal.Decimal, error)

	// TotalsByBuyer returns the all-time sale total per buyer.
	TotalsByBuyer(ctx context.Context) (map[uuid.UUID]decimal.Decimal, error)

	// ProductSalesTotals aggregates sold quantity and amount per product type
	// over sales whose date falls in the inclusive range.
	ProductSalesTotals(ctx context.Context, startDate, endDate *time.Time) ([]ProductSalesRow, error)
}
