package sale

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/scraptrade/backend/internal/application/adapter"
	"github.com/scraptrade/backend/internal/domain/entity"
	domainerror "github.com/scraptrade/backend/internal/domain/error"
)

// GetSaleInput represents the input for fetching a sale.
type GetSaleInput struct {
	ID uuid.UUID
}

// GetSaleOutput represents the output with the sale and its items.
type GetSaleOutput struct {
	Sale *entity.Sale
}

// GetSaleUseCase fetches a single sale with its line items.
type GetSaleUseCase struct {
	saleRepo adapter.SaleRepository
}

// NewGetSaleUseCase creates a new GetSaleUseCase instance.
func NewGetSaleUseCase(saleRepo adapter.SaleRepository) *GetSaleUseCase {
	return &GetSaleUseCase{saleRepo: saleRepo}
}

// Execute returns the sale or a not-found error.
func (uc *GetSaleUseCase) Execute(ctx context.Context, input GetSaleInput) (*GetSaleOutput, error) {
	sale, err := uc.saleRepo.FindByID(ctx, input.ID)
	if err != nil {
		if errors.Is(err, domainerror.ErrSaleNotFound) {
			return nil, domainerror.NewSaleError(
				domainerror.ErrCodeSaleNotFound,
				"sale not found",
				domainerror.ErrSaleNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find sale: %w", err)
	}

	return &GetSaleOutput{Sale: sale}, nil
}
