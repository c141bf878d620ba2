package purchase

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/scraptrade/backend/internal/application/adapter"
	"github.com/scraptrade/backend/internal/domain/entity"
)

// TodayStatsOutput represents today's purchase totals.
type TodayStatsOutput struct {
	Date      time.Time
	TotalCost decimal.Decimal
}

// TodayStatsUseCase sums today's purchase spend.
type TodayStatsUseCase struct {
	purchaseRepo adapter.PurchaseRepository
}

// NewTodayStatsUseCase creates a new TodayStatsUseCase instance.
func NewTodayStatsUseCase(purchaseRepo adapter.PurchaseRepository) *TodayStatsUseCase {
	return &TodayStatsUseCase{purchaseRepo: purchaseRepo}
}

// Execute returns the total cost of purchases dated today.
func (uc *TodayStatsUseCase) Execute(ctx context.Context) (*TodayStatsOutput, error) {
	today := entity.NormalizeDate(time.Now())
	total, err := uc.purchaseRepo.SumTotalCost(ctx, &today, &today)
	if err != nil {
		return nil, fmt.Errorf("failed to sum today's purchases: %w", err)
	}

	return &TodayStatsOutput{Date: today, TotalCost: total}, nil
}
