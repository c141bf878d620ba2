package producttype

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/scraptrade/backend/internal/application/adapter"
	"github.com/scraptrade/backend/internal/domain/entity"
	domainerror "github.com/scraptrade/backend/internal/domain/error"
)

// UpdateProductTypeInput represents the input for updating a product type.
// Nil fields are left unchanged.
type UpdateProductTypeInput struct {
	ID          uuid.UUID
	Name        *string
	Description *string
}

// UpdateProductTypeOutput represents the output after updating a product type.
type UpdateProductTypeOutput struct {
	ProductType *entity.ProductType
}

// UpdateProductTypeUseCase applies a partial update to a product type.
type UpdateProductTypeUseCase struct {
	productTypeRepo adapter.ProductTypeRepository
}

// NewUpdateProductTypeUseCase creates a new UpdateProductTypeUseCase instance.
func NewUpdateProductTypeUseCase(productTypeRepo adapter.ProductTypeRepository) *UpdateProductTypeUseCase {
	return &UpdateProductTypeUseCase{productTypeRepo: productTypeRepo}
}

// Execute updates the provided fields. Renaming to an existing name is a
// conflict.
func (uc *UpdateProductTypeUseCase) Execute(ctx context.Context, input UpdateProductTypeInput) (*UpdateProductTypeOutput, error) {
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

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, domainerror.NewProductTypeError(
				domainerror.ErrCodeMissingProductFields,
				"product type name is required",
				nil,
			)
		}
		if !strings.EqualFold(name, productType.Name) {
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
		}
		productType.Name = name
	}
	if input.Description != nil {
		productType.Description = strings.TrimSpace(*input.Description)
	}
	productType.UpdatedAt = time.Now().UTC()

	if err := uc.productTypeRepo.Update(ctx, productType); err != nil {
		return nil, fmt.Errorf("failed to update product type: %w", err)
	}

	return &UpdateProductTypeOutput{ProductType: productType}, nil
}
