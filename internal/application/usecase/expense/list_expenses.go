package expense

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

// ListExpensesInput represents the input for listing expenses.
type ListExpensesInput struct {
	StartDate *time.Time
	EndDate   *time.Time
	Category  *entity.ExpenseCategory
	Skip      int
	Limit     int
}

// ListExpensesOutput represents the output with the matching expenses.
type ListExpensesOutput struct {
	Expenses []*entity.Expense
}

// ListExpensesUseCase lists expenses filtered by date range and category,
// newest first.
type ListExpensesUseCase struct {
	expenseRepo adapter.ExpenseRepository
}

// NewListExpensesUseCase creates a new ListExpensesUseCase instance.
func NewListExpensesUseCase(expenseRepo adapter.ExpenseRepository) *ListExpensesUseCase {
	return &ListExpensesUseCase{expenseRepo: expenseRepo}
}

// Execute returns expenses matching the filter.
func (uc *ListExpensesUseCase) Execute(ctx context.Context, input ListExpensesInput) (*ListExpensesOutput, error) {
	filter := adapter.ExpenseFilter{
		StartDate: normalizeBound(input.StartDate),
		EndDate:   normalizeBound(input.EndDate),
		Category:  input.Category,
		Skip:      input.Skip,
		Limit:     input.Limit,
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

	expenses, err := uc.expenseRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}

	return &ListExpensesOutput{Expenses: expenses}, nil
}

// normalizeBound aligns an optional range bound to midnight UTC.
func normalizeBound(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	normalized := entity.NormalizeDate(*t)
	return &normalized
}
