package expense

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/scraptrade/backend/internal/application/adapter"
	"github.com/scraptrade/backend/internal/domain/entity"
)

// TodayStatsOutput represents today's expense totals.
type TodayStatsOutput struct {
	Date        time.Time
	TotalAmount decimal.Decimal
}

// TodayStatsUseCase sums today's expenses.
type TodayStatsUseCase struct {
	expenseRepo adapter.ExpenseRepository
}

// NewTodayStatsUseCase creates a new TodayStatsUseCase instance.
func NewTodayStatsUseCase(expenseRepo adapter.ExpenseRepository) *TodayStatsUseCase {
	return &TodayStatsUseCase{expenseRepo: expenseRepo}
}

// Execute returns the total amount of expenses dated today.
func (uc *TodayStatsUseCase) Execute(ctx context.Context) (*TodayStatsOutput, error) {
	today := entity.NormalizeDate(time.Now())
	total, err := uc.expenseRepo.SumAmount(ctx, &today, &today)
	if err != nil {
		return nil, fmt.Errorf("failed to sum today's expenses: %w", err)
	}

	return &TodayStatsOutput{Date: today, TotalAmount: total}, nil
}
