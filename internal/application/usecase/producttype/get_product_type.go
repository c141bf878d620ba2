package producttype

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/scraptrade/backend/internal/application/adapter"
	"github.com/scraptrade/backend/internal/domain/entity"
	domainerror "github.com/scraptrade/backend/internal/domain/error"
)

// GetProductTypeInput represents the input for fetching a product type.
type GetProductTypeInput struct {
	ID uuid.UUID
}

// GetProductTypeOutput represents the output with the product type.
type GetProductTypeOutput struct {
	ProductType *entity.ProductType
}

// GetProductTypeUseCase fetches a single product type by id.
type GetProductTypeUseCase struct {
	productTypeRepo adapter.ProductTypeRepository
}

// NewGetProductTypeUseCase creates a new GetProductTypeUseCase instance.
func NewGetProductTypeUseCase(productTypeRepo adapter.ProductTypeRepository) *GetProductTypeUseCase {
	return &GetProductTypeUseCase{productTypeRepo: productTypeRepo}
}

// Execute returns the product type or a not-found error.
func (uc *GetProductTypeUseCase) Execute(ctx context.Context, input GetProductTypeInput) (*GetProductTypeOutput, error) {
	productType, err := uc.productTypeRepo.FindByID(ctx, input.ID)
	if err != nil {
		if errors.Is(err, domainerror.ErrProductTypeNotFound) {
			return nil, domainerror.NewProductTypeError(
				domainerror.ErrCodeProductTypeNotFound,
				"product type not found",
				domainerror.ErrProductTypeNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find product type: %w", err)
	}

	return &GetProductTypeOutput{ProductType: productType}, nil
}
