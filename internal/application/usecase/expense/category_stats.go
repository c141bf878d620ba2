package expense

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/scraptrade/backend/internal/application/adapter"
)

// CategoryStatsInput represents the input for the by-category expense report.
type CategoryStatsInput struct {
	StartDate *time.Time
	EndDate   *time.Time
}

// CategoryStatsOutput represents the by-category expense report.
type CategoryStatsOutput struct {
	Categories []adapter.ExpenseCategoryTotal
	Total      decimal.Decimal
}

// CategoryStatsUseCase aggregates expense totals per category.
type CategoryStatsUseCase struct {
	expenseRepo adapter.ExpenseRepository
}

// NewCategoryStatsUseCase creates a new CategoryStatsUseCase instance.
func NewCategoryStatsUseCase(expenseRepo adapter.ExpenseRepository) *CategoryStatsUseCase {
	return &CategoryStatsUseCase{expenseRepo: expenseRepo}
}

// Execute returns per-category totals and the grand total over the optional
// inclusive date range.
func (uc *CategoryStatsUseCase) Execute(ctx context.Context, input CategoryStatsInput) (*CategoryStatsOutput, error) {
	totals, err := uc.expenseRepo.TotalsByCategory(ctx, normalizeBound(input.StartDate), normalizeBound(input.EndDate))
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate expenses by category: %w", err)
	}

	grandTotal := decimal.Zero
	for _, row := range totals {
		grandTotal = grandTotal.Add(row.Total)
	}

	return &CategoryStatsOutput{Categories: totals, Total: grandTotal}, nil
}
