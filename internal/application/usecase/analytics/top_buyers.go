package analytics

import (
	"context"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/scraptrade/backend/internal/application/adapter"
)

// Top buyer ranking bounds.
const (
	defaultTopBuyers = 10
	maxTopBuyers     = 50
)

// TopBuyersInput represents the input for the top buyers ranking.
type TopBuyersInput struct {
	Limit int
}

// TopBuyer is one ranked buyer with money still owed.
type TopBuyer struct {
	BuyerName         string
	OutstandingAmount decimal.Decimal
}

// TopBuyersOutput represents the ranking, largest debt first.
type TopBuyersOutput struct {
	Buyers []TopBuyer
}

// TopBuyersUseCase ranks buyers by outstanding balance. Buyers who owe
// nothing are excluded.
type TopBuyersUseCase struct {
	buyerRepo   adapter.BuyerRepository
	saleRepo    adapter.SaleRepository
	paymentRepo adapter.PaymentRepository
}

// NewTopBuyersUseCase creates a new TopBuyersUseCase instance.
func NewTopBuyersUseCase(
	buyerRepo adapter.BuyerRepository,
	saleRepo adapter.SaleRepository,
	paymentRepo adapter.PaymentRepository,
) *TopBuyersUseCase {
	return &TopBuyersUseCase{
		buyerRepo:   buyerRepo,
		saleRepo:    saleRepo,
		paymentRepo: paymentRepo,
	}
}

// Execute computes every buyer's outstanding balance, keeps the positive
// ones and returns the top entries by amount.
func (uc *TopBuyersUseCase) Execute(ctx context.Context, input TopBuyersInput) (*TopBuyersOutput, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = defaultTopBuyers
	}
	if limit > maxTopBuyers {
		limit = maxTopBuyers
	}

	buyers, err := uc.buyerRepo.FindAll(ctx, adapter.BuyerFilter{})
	if err != nil {
		return nil, fmt.Errorf("failed to list buyers: %w", err)
	}
	saleTotals, err := uc.saleRepo.TotalsByBuyer(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate sales by buyer: %w", err)
	}
	paymentTotals, err := uc.paymentRepo.TotalsByBuyer(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate payments by buyer: %w", err)
	}

	ranked := make([]TopBuyer, 0, len(buyers))
	for _, buyer := range buyers {
		outstanding := buyer.OutstandingBalance(saleTotals[buyer.ID], paymentTotals[buyer.ID])
		if outstanding.IsPositive() {
			ranked = append(ranked, TopBuyer{
				BuyerName:         buyer.Name,
				OutstandingAmount: outstanding,
			})
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].OutstandingAmount.GreaterThan(ranked[j].OutstandingAmount)
	})
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}

	return &TopBuyersOutput{Buyers: ranked}, nil
}
