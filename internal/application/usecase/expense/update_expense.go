package expense

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/scraptrade/backend/internal/application/adapter"
	"github.com/scraptrade/backend/internal/domain/entity"
	domainerror "github.com/scraptrade/backend/internal/domain/error"
)

// UpdateExpenseInput represents the input for updating an expense. Nil
// fields are left unchanged.
type UpdateExpenseInput struct {
	ID          uuid.UUID
	Date        *time.Time
	Category    *entity.ExpenseCategory
	Amount      *decimal.Decimal
	Description *string
}

// UpdateExpenseOutput represents the output after updating an expense.
type UpdateExpenseOutput struct {
	Expense *entity.Expense
}

// UpdateExpenseUseCase applies a partial update to an expense. Derived
// transport expenses can be edited like any other; edits may detach them
// from their purchase.
type UpdateExpenseUseCase struct {
	expenseRepo adapter.ExpenseRepository
}

// NewUpdateExpenseUseCase creates a new UpdateExpenseUseCase instance.
func NewUpdateExpenseUseCase(expenseRepo adapter.ExpenseRepository) *UpdateExpenseUseCase {
	return &UpdateExpenseUseCase{expenseRepo: expenseRepo}
}

// Execute updates the provided fields.
func (uc *UpdateExpenseUseCase) Execute(ctx context.Context, input UpdateExpenseInput) (*UpdateExpenseOutput, error) {
	expense, err := uc.expenseRepo.FindByID(ctx, input.ID)
	if err != nil {
		if errors.Is(err, domainerror.ErrExpenseNotFound) {
			return nil, domainerror.NewExpenseError(
				domainerror.ErrCodeExpenseNotFound,
				"expense not found",
				domainerror.ErrExpenseNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find expense: %w", err)
	}

	if input.Date != nil {
		expense.Date = entity.NormalizeDate(*input.Date)
	}
	if input.Category != nil {
		if !entity.IsValidExpenseCategory(*input.Category) {
			return nil, domainerror.NewExpenseError(
				domainerror.ErrCodeInvalidExpenseCategory,
				fmt.Sprintf("invalid expense category %q", *input.Category),
				domainerror.ErrInvalidExpenseCategory,
			)
		}
		expense.Category = *input.Category
	}
	if input.Amount != nil {
		expense.Amount = *input.Amount
	}
	if input.Description != nil {
		expense.Description = *input.Description
	}
	expense.UpdatedAt = time.Now().UTC()

	if err := uc.expenseRepo.Update(ctx, expense); err != nil {
		return nil, fmt.Errorf("failed to update expense: %w", err)
	}

	return &UpdateExpenseOutput{Expense: expense}, nil
}
