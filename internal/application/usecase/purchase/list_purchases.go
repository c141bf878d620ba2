package purchase

import (
	"context"
	"fmt"
	"time"

	"github.com/scraptrade/backend/internal/application/adapter"
	"github.com/scraptrade/backend/internal/domain/entity"
)

// List pagination bounds.
const (
	defaultListLimit = 100
	maxListLimit     = 500
)

// ListPurchasesInput represents the input for listing purchases.
type ListPurchasesInput struct {
	StartDate  *time.Time
	EndDate    *time.Time
	SellerName string
	Skip       int
	Limit      int
}

// ListPurchasesOutput represents the output with the matching purchases.
type ListPurchasesOutput struct {
	Purchases []*entity.Purchase
}

// ListPurchasesUseCase lists purchases filtered by date range and seller,
// newest first.
type ListPurchasesUseCase struct {
	purchaseRepo adapter.PurchaseRepository
}

// NewListPurchasesUseCase creates a new ListPurchasesUseCase instance.
func NewListPurchasesUseCase(purchaseRepo adapter.PurchaseRepository) *ListPurchasesUseCase {
	return &ListPurchasesUseCase{purchaseRepo: purchaseRepo}
}

// Execute returns purchases matching the filter.
func (uc *ListPurchasesUseCase) Execute(ctx context.Context, input ListPurchasesInput) (*ListPurchasesOutput, error) {
	filter := adapter.PurchaseFilter{
		StartDate:  normalizeBound(input.StartDate),
		EndDate:    normalizeBound(input.EndDate),
		SellerName: input.SellerName,
		Skip:       input.Skip,
		Limit:      input.Limit,
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

	purchases, err := uc.purchaseRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list purchases: %w", err)
	}

	return &ListPurchasesOutput{Purchases: purchases}, nil
}

// normalizeBound aligns an optional range bound to midnight UTC.
func normalizeBound(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	normalized := entity.NormalizeDate(*t)
	return &normalized
}
