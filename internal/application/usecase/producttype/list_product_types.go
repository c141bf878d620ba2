package producttype

import (
	"context"
	"fmt"

	"github.com/scraptrade/backend/internal/application/adapter"
	"github.com/scraptrade/backend/internal/domain/entity"
)

// ListProductTypesOutput represents the output with all product types.
type ListProductTypesOutput struct {
	ProductTypes []*entity.ProductType
}

// ListProductTypesUseCase lists product types ordered by name.
type ListProductTypesUseCase struct {
	productTypeRepo adapter.ProductTypeRepository
}

// NewListProductTypesUseCase creates a new ListProductTypesUseCase instance.
func NewListProductTypesUseCase(productTypeRepo adapter.ProductTypeRepository) *ListProductTypesUseCase {
	return &ListProductTypesUseCase{productTypeRepo: productTypeRepo}
}

// Execute returns all product types.
func (uc *ListProductTypesUseCase) Execute(ctx context.Context) (*ListProductTypesOutput, error) {
	productTypes, err := uc.productTypeRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list product types: %w", err)
	}

	return &ListProductTypesOutput{ProductTypes: productTypes}, nil
}
