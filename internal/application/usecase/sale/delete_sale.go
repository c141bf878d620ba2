package sale

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/scraptrade/backend/internal/application/adapter"
	domainerror "github.com/scraptrade/backend/internal/domain/error"
)

// DeleteSaleInput represents the input for deleting a sale.
type DeleteSaleInput struct {
	ID uuid.UUID
}

// DeleteSaleUseCase deletes a sale together with its line items. Payments
// recorded against the buyer are kept.
type DeleteSaleUseCase struct {
	saleRepo adapter.SaleRepository
}

// NewDeleteSaleUseCase creates a new DeleteSaleUseCase instance.
func NewDeleteSaleUseCase(saleRepo adapter.SaleRepository) *DeleteSaleUseCase {
	return &DeleteSaleUseCase{saleRepo: saleRepo}
}

// Execute deletes the sale and its items.
func (uc *DeleteSaleUseCase) Execute(ctx context.Context, input DeleteSaleInput) error {
	if _, err := uc.saleRepo.FindByID(ctx, input.ID); err != nil {
		if errors.Is(err, domainerror.ErrSaleNotFound) {
			return domainerror.NewSaleError(
				domainerror.ErrCodeSaleNotFound,
				"sale not found",
				domainerror.ErrSaleNotFound,
			)
		}
		return fmt.Errorf("failed to find sale: %w", err)
	}

	if err := uc.saleRepo.Delete(ctx, input.ID); err != nil {
		return fmt.Errorf("failed to delete sale: %w", err)
	}

	return nil
}
