// Package buyer contains buyer-related use cases, including the ledger engine.
package buyer

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

// UpdateBuyerInput represents the input for a partial buyer update. Only
// non-nil fields are applied.
type UpdateBuyerInput struct {
	BuyerID        uuid.UUID
	Name           *string
	Phone          *string
	Address        *string
	Notes          *string
	OpeningBalance *decimal.Decimal
}

// UpdateBuyerOutput represents the output of buyer update.
type UpdateBuyerOutput struct {
	Buyer *entity.Buyer
}

// UpdateBuyerUseCase handles buyer update logic.
type UpdateBuyerUseCase struct {
	buyerRepo adapter.BuyerRepository
}

// NewUpdateBuyerUseCase creates a new UpdateBuyerUseCase instance.
func NewUpdateBuyerUseCase(buyerRepo adapter.BuyerRepository) *UpdateBuyerUseCase {
	return &UpdateBuyerUseCase{
		buyerRepo: buyerRepo,
	}
}

// Execute performs the buyer update.
func (uc *UpdateBuyerUseCase) Execute(ctx context.Context, input UpdateBuyerInput) (*UpdateBuyerOutput, error) {
	buyer, err := uc.buyerRepo.FindByID(ctx, input.BuyerID)
	if err != nil {
		if errors.Is(err, domainerror.ErrBuyerNotFound) {
			return nil, domainerror.NewBuyerError(
				domainerror.ErrCodeBuyerNotFound,
				"buyer not found",
				domainerror.ErrBuyerNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find buyer: %w", err)
	}

	if input.Name != nil {
		buyer.Name = *input.Name
	}
	if input.Phone != nil {
		buyer.Phone = *input.Phone
	}
	if input.Address != nil {
		buyer.Address = *input.Address
	}
	if input.Notes != nil {
		buyer.Notes = *input.Notes
	}
	if input.OpeningBalance != nil {
		buyer.OpeningBalance = *input.OpeningBalance
	}
	buyer.UpdatedAt = time.Now().UTC()

	if err := uc.buyerRepo.Update(ctx, buyer); err != nil {
		return nil, fmt.Errorf("failed to update buyer: %w", err)
	}

	return &UpdateBuyerOutput{
		Buyer: buyer,
	}, nil
}
