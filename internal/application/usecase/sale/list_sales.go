package sale

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/scraptrade/backend/internal/application/adapter"
	"github.com/scraptrade/backend/internal/domain/entity"
)

// List pagination bounds.
const (
	defaultListLimit = 100
	maxListLimit     = 500
)

// ListSalesInput represents the input for listing sales.
type ListSalesInput struct {
	StartDate   *time.Time
	EndDate     *time.Time
	BuyerID     *uuid.UUID
	PaymentType *entity.PaymentType
	Skip        int
	Limit       int
}

// ListSalesOutput represents the output with the matching sales.
type ListSalesOutput struct {
	Sales []*entity.Sale
}

// ListSalesUseCase lists sales filtered by date range, buyer and payment
// type, newest first.
type ListSalesUseCase struct {
	saleRepo adapter.SaleRepository
}

// NewListSalesUseCase creates a new ListSalesUseCase instance.
func NewListSalesUseCase(saleRepo adapter.SaleRepository) *ListSalesUseCase {
	return &ListSalesUseCase{saleRepo: saleRepo}
}

// Execute returns sales matching the filter.
func (uc *ListSalesUseCase) Execute(ctx context.Context, input ListSalesInput) (*ListSalesOutput, error) {
	filter := adapter.SaleFilter{
		StartDate:   normalizeBound(input.StartDate),
		EndDate:     normalizeBound(input.EndDate),
		BuyerID:     input.BuyerID,
		PaymentType: input.PaymentType,
		Skip:        input.Skip,
		Limit:       input.Limit,
	}
	if filter.Skip < 0 {
		filter.Skip = 0
	}
	if filter.Limit <= 0 {
		filter.Limit = defaultListLimit
	}
	if filter.Limit > maxListLimit {
		filter.Limit = maxListLimit
	}

	sales, err := uc.saleRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list sales: %w", err)
	}

	return &ListSalesOutput{Sales: sales}, nil
}

// normalizeBound aligns an optional range bound to midnight UTC.
func normalizeBound(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	normalized := entity.NormalizeDate(*t)
	return &normalized
}
