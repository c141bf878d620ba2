package producttype

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/scraptrade/backend/internal/application/adapter"
	domainerror "github.com/scraptrade/backend/internal/domain/error"
)

// DeleteProductTypeInput represents the input for deleting a product type.
type DeleteProductTypeInput struct {
	ID uuid.UUID
}

// DeleteProductTypeUseCase deletes a product type unless sale items still
// reference it.
type DeleteProductTypeUseCase struct {
	productTypeRepo adapter.ProductTypeRepository
}

// NewDeleteProductTypeUseCase creates a new DeleteProductTypeUseCase instance.
func NewDeleteProductTypeUseCase(productTypeRepo adapter.ProductTypeRepository) *DeleteProductTypeUseCase {
	return &DeleteProductTypeUseCase{productTypeRepo: productTypeRepo}
}

// Execute deletes the product type, failing with a conflict while any sale
// item references it.
func (uc *DeleteProductTypeUseCase) Execute(ctx context.Context, input DeleteProductTypeInput) error {
	if _, err := uc.productTypeRepo.FindByID(ctx, input.ID); err != nil {
		if errors.Is(err, domainerror.ErrProductTypeNotFound) {
			return domainerror.NewProductTypeError(
				domainerror.ErrCodeProductTypeNotFound,
				"product type not found",
				domainerror.ErrProductTypeNotFound,
			)
		}
		return fmt.Errorf("failed to find product type: %w", err)
	}

	referenced, err := uc.productTypeRepo.IsReferenced(ctx, input.ID)
	if err != nil {
		return fmt.Errorf("failed to check product type references: %w", err)
	}
	if referenced {
		return domainerror.NewProductTypeError(
			domainerror.ErrCodeProductTypeInUse,
			"product type is used in existing sales",
			domainerror.ErrProductTypeInUse,
		)
	}

	if err := uc.productTypeRepo.Delete(ctx, input.ID); err != nil {
		return fmt.Errorf("failed to delete product type: %w", err)
	}

	return nil
}
