package purchase

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/scraptrade/backend/internal/application/adapter"
	"github.com/scraptrade/backend/internal/domain/entity"
	domainerror "github.com/scraptrade/backend/internal/domain/error"
)

// GetPurchaseInput represents the input for fetching a purchase.
type GetPurchaseInput struct {
	ID uuid.UUID
}

// GetPurchaseOutput represents the output with the purchase.
type GetPurchaseOutput struct {
	Purchase *entity.Purchase
}

// GetPurchaseUseCase fetches a single purchase by id.
type GetPurchaseUseCase struct {
	purchaseRepo adapter.PurchaseRepository
}

// NewGetPurchaseUseCase creates a new GetPurchaseUseCase instance.
func NewGetPurchaseUseCase(purchaseRepo adapter.PurchaseRepository) *GetPurchaseUseCase {
	return &GetPurchaseUseCase{purchaseRepo: purchaseRepo}
}

// Execute returns the purchase or a not-found error.
func (uc *GetPurchaseUseCase) Execute(ctx context.Context, input GetPurchaseInput) (*GetPurchaseOutput, error) {
	purchase, err := uc.purchaseRepo.FindByID(ctx, input.ID)
	if err != nil {
		if errors.Is(err, domainerror.ErrPurchaseNotFound) {
			return nil, domainerror.NewPurchaseError(
				domainerror.ErrCodePurchaseNotFound,
				"purchase not found",
				domainerror.ErrPurchaseNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find purchase: %w", err)
	}

	return &GetPurchaseOutput{Purchase: purchase}, nil
}
