// Package producttype contains product type catalog use cases.
package producttype

import (
	"context"
	"fmt"
	"strings"

	"github.com/scraptrade/backend/internal/application/adapter"
	"github.com/scraptrade/backend/internal/domain/entity"
	domainerror "github.com/scraptrade/backend/internal/domain/error"
)

// CreateProductTypeInput represents the input for creating a product type.
type CreateProductTypeInput struct {
	Name        string
	Description string
}

// CreateProductTypeOutput represents the output after creating a product type.
type CreateProductTypeOutput struct {
	ProductType *entity.ProductType
}

// CreateProductTypeUseCase creates a named product type. Names are unique.
type CreateProductTypeUseCase struct {
	productTypeRepo adapter.ProductTypeRepository
}

// NewCreateProductTypeUseCase creates a new CreateProductTypeUseCase instance.
func NewCreateProductTypeUseCase(productTypeRepo adapter.ProductTypeRepository) *CreateProductTypeUseCase {
	return &CreateProductTypeUseCase{productTypeRepo: productTypeRepo}
}

// Execute validates the name, rejects duplicates and persists the product type.
func (uc *CreateProductTypeUseCase) Execute(ctx context.Context, input CreateProductTypeInput) (*CreateProductTypeOutput, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerror.NewProductTypeError(
			domainerror.ErrCodeMissingProductFields,
			"product type name is required",
			nil,
		)
	}

	exists, err := uc.productTypeRepo.ExistsByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to check product type name: %w", err)
	}
	if exists {
		return nil, domainerror.NewProductTypeError(
			domainerror.ErrCodeProductTypeNameExists,
			fmt.Sprintf("product type %q already exists", name),
			domainerror.ErrProductTypeNameExists,
		)
	}

	productType := entity.NewProductType(name, strings.TrimSpace(input.Description))
	if err := uc.productTypeRepo.Create(ctx, productType); err != nil {
		return nil, fmt.Errorf("failed to create product type: %w", err)
	}

	return &CreateProductTypeOutput{ProductType: productType}, nil
}
