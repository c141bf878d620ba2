// Package buyer contains buyer-related use cases, including the ledger engine.
package buyer

import (
	"context"
	"fmt"

	"github.com/scraptrade/backend/internal/application/adapter"
	"github.com/scraptrade/backend/internal/domain/entity"
)

const (
	defaultListLimit = 100
	maxListLimit     = 500
)

// ListBuyersInput represents the input for listing buyers.
type ListBuyersInput struct {
	Search string
	Skip   int
	Limit  int
}

// ListBuyersOutput represents the output of listing buyers.
type ListBuyersOutput struct {
	Buyers []*entity.BuyerWithBalance
}

// ListBuyersUseCase handles buyer listing logic with computed balances.
type ListBuyersUseCase struct {
	buyerRepo   adapter.BuyerRepository
	saleRepo    adapter.SaleRepository
	paymentRepo adapter.PaymentRepository
}

// NewListBuyersUseCase creates a new ListBuyersUseCase instance.
func NewListBuyersUseCase(
	buyerRepo adapter.BuyerRepository,
	saleRepo adapter.SaleRepository,
	paymentRepo adapter.PaymentRepository,
) *ListBuyersUseCase {
	return &ListBuyersUseCase{
		buyerRepo:   buyerRepo,
		saleRepo:    saleRepo,
		paymentRepo: paymentRepo,
	}
}

// Execute performs the buyer listing. Outstanding balances are recomputed from
// the related records on every call.
func (uc *ListBuyersUseCase) Execute(ctx context.Context, input ListBuyersInput) (*ListBuyersOutput, error) {
	limit := input.Limit
	if limit < 1 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	skip := input.Skip
	if skip < 0 {
		skip = 0
	}

	buyers, err := uc.buyerRepo.FindAll(ctx, adapter.BuyerFilter{
		Search: input.Search,
		Skip:   skip,
		Limit:  limit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list buyers: %w", err)
	}

	saleTotals, err := uc.saleRepo.TotalsByBuyer(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load sale totals: %w", err)
	}
	paymentTotals, err := uc.paymentRepo.TotalsByBuyer(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load payment totals: %w", err)
	}

	result := make([]*entity.BuyerWithBalance, len(buyers))
	for i, b := range buyers {
		totalSales := saleTotals[b.ID]
		totalPayments := paymentTotals[b.ID]
		result[i] = &entity.BuyerWithBalance{
			Buyer:              b,
			TotalSales:         totalSales,
			TotalPayments:      totalPayments,
			OutstandingBalance: b.OutstandingBalance(totalSales, totalPayments),
		}
	}

	return &ListBuyersOutput{
		Buyers: result,
	}, nil
}
