package purchase

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/scraptrade/backend/internal/application/adapter"
	domainerror "github.com/scraptrade/backend/internal/domain/error"
)

// DeletePurchaseInput represents the input for deleting a purchase.
type DeletePurchaseInput struct {
	ID uuid.UUID
}

// DeletePurchaseUseCase deletes a purchase and its derived transport expense.
type DeletePurchaseUseCase struct {
	purchaseRepo adapter.PurchaseRepository
	expenseRepo  adapter.ExpenseRepository
}

// NewDeletePurchaseUseCase creates a new DeletePurchaseUseCase instance.
func NewDeletePurchaseUseCase(
	purchaseRepo adapter.PurchaseRepository,
	expenseRepo adapter.ExpenseRepository,
) *DeletePurchaseUseCase {
	return &DeletePurchaseUseCase{
		purchaseRepo: purchaseRepo,
		expenseRepo:  expenseRepo,
	}
}

// Execute deletes the purchase. When the purchase carried a transport cost,
// the matching derived expense is removed in the same transaction.
func (uc *DeletePurchaseUseCase) Execute(ctx context.Context, input DeletePurchaseInput) error {
	purchase, err := uc.purchaseRepo.FindByID(ctx, input.ID)
	if err != nil {
		if errors.Is(err, domainerror.ErrPurchaseNotFound) {
			return domainerror.NewPurchaseError(
				domainerror.ErrCodePurchaseNotFound,
				"purchase not found",
				domainerror.ErrPurchaseNotFound,
			)
		}
		return fmt.Errorf("failed to find purchase: %w", err)
	}

	var linkedExpenseID *uuid.UUID
	if purchase.TransportCost.IsPositive() {
		expense, err := uc.expenseRepo.FindTransportForPurchase(ctx, purchase.Date, purchase.SellerName)
		if err != nil {
			return fmt.Errorf("failed to find transport expense: %w", err)
		}
		if expense != nil {
			id := expense.ID
			linkedExpenseID = &id
		}
	}

	if err := uc.purchaseRepo.Delete(ctx, input.ID, linkedExpenseID); err != nil {
		return fmt.Errorf("failed to delete purchase: %w", err)
	}

	return nil
}
