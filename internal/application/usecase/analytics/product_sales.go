package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/scraptrade/backend/internal/application/adapter"
	"github.com/scraptrade/backend/internal/domain/entity"
)

// ProductSalesInput represents the input for the per-product sales report.
type ProductSalesInput struct {
	StartDate *time.Time
	EndDate   *time.Time
}

// ProductSalesOutput represents sold quantity and revenue per product type.
type ProductSalesOutput struct {
	Products []adapter.ProductSalesRow
}

// ProductSalesUseCase aggregates sale line items per product type.
type ProductSalesUseCase struct {
	saleRepo adapter.SaleRepository
}

// NewProductSalesUseCase creates a new ProductSalesUseCase instance.
func NewProductSalesUseCase(saleRepo adapter.SaleRepository) *ProductSalesUseCase {
	return &ProductSalesUseCase{saleRepo: saleRepo}
}

// Execute returns per-product totals over sales whose date falls in the
// optional inclusive range.
func (uc *ProductSalesUseCase) Execute(ctx context.Context, input ProductSalesInput) (*ProductSalesOutput, error) {
	rows, err := uc.saleRepo.ProductSalesTotals(ctx, normalizeBound(input.StartDate), normalizeBound(input.EndDate))
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate product sales: %w", err)
	}

	return &ProductSalesOutput{Products: rows}, nil
}

// normalizeBound aligns an optional range bound to midnight UTC.
func normalizeBound(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	normalized := entity.NormalizeDate(*t)
	return &normalized
}
