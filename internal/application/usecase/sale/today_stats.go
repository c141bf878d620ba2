package sale

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/scraptrade/backend/internal/application/adapter"
	"github.com/scraptrade/backend/internal/domain/entity"
)

// TodayStatsOutput represents today's sale totals.
type TodayStatsOutput struct {
	Date        time.Time
	TotalAmount decimal.Decimal
}

// TodayStatsUseCase sums today's sales.
type TodayStatsUseCase struct {
	saleRepo adapter.SaleRepository
}

// NewTodayStatsUseCase creates a new TodayStatsUseCase instance.
func NewTodayStatsUseCase(saleRepo adapter.SaleRepository) *TodayStatsUseCase {
	return &TodayStatsUseCase{saleRepo: saleRepo}
}

// Execute returns the total amount of sales dated today.
func (uc *TodayStatsUseCase) Execute(ctx context.Context) (*TodayStatsOutput, error) {
	today := entity.NormalizeDate(time.Now())
	total, err := uc.saleRepo.SumAmount(ctx, &today, &today)
	if err != nil {
		return nil, fmt.Errorf("failed to sum today's sales: %w", err)
	}

	return &TodayStatsOutput{Date: today, TotalAmount: total}, nil
}
