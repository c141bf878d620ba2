package sale

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/scraptrade/backend/internal/application/adapter"
	"github.com/scraptrade/backend/internal/domain/entity"
	domainerror "github.com/scraptrade/backend/internal/domain/error"
)

// UpdateSaleInput represents the input for updating a sale. Nil fields are
// left unchanged. Line items are immutable after creation; to change them,
// delete the sale and record a new one.
type UpdateSaleInput struct {
	ID          uuid.UUID
	Date        *time.Time
	PaymentType *entity.PaymentType
	Notes       *string
}

// UpdateSaleOutput represents the output after updating a sale.
type UpdateSaleOutput struct {
	Sale *entity.Sale
}

// UpdateSaleUseCase applies a partial update to a sale's scalar fields.
type UpdateSaleUseCase struct {
	saleRepo adapter.SaleRepository
}

// NewUpdateSaleUseCase creates a new UpdateSaleUseCase instance.
func NewUpdateSaleUseCase(saleRepo adapter.SaleRepository) *UpdateSaleUseCase {
	return &UpdateSaleUseCase{saleRepo: saleRepo}
}

// Execute updates the provided fields. The stored total and the items are
// untouched, and payments recorded at sale time are never adjusted.
func (uc *UpdateSaleUseCase) Execute(ctx context.Context, input UpdateSaleInput) (*UpdateSaleOutput, error) {
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

	if input.Date != nil {
		sale.Date = entity.NormalizeDate(*input.Date)
	}
	if input.PaymentType != nil {
		switch *input.PaymentType {
		case entity.PaymentTypePaid, entity.PaymentTypePartial, entity.PaymentTypeCredit:
			sale.PaymentType = *input.PaymentType
		default:
			return nil, domainerror.NewSaleError(
				domainerror.ErrCodeInvalidPaymentType,
				fmt.Sprintf("invalid payment type %q", *input.PaymentType),
				domainerror.ErrInvalidPaymentType,
			)
		}
	}
	if input.Notes != nil {
		sale.Notes = *input.Notes
	}
	sale.UpdatedAt = time.Now().UTC()

	if err := uc.saleRepo.Update(ctx, sale); err != nil {
		return nil, fmt.Errorf("failed to update sale: %w", err)
	}

	return &UpdateSaleOutput{Sale: sale}, nil
}
