// Package sale contains sale use cases, including the automatic payment
// recorded when money changes hands at sale time.
package sale

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

// CreateSaleItemInput is one line of a new sale.
type CreateSaleItemInput struct {
	ProductTypeID uuid.UUID
	Quantity      float64
	Unit          string
	PricePerUnit  decimal.Decimal
}

// CreateSaleInput represents the input for recording a sale.
type CreateSaleInput struct {
	Date               time.Time
	BuyerID            uuid.UUID
	PaymentType        entity.PaymentType
	PaymentReceivedNow decimal.Decimal
	Notes              string
	Items              []CreateSaleItemInput
}

// CreateSaleOutput represents the output after recording a sale.
type CreateSaleOutput struct {
	Sale *entity.Sale
}

// CreateSaleUseCase records a sale with its line items. Money received at
// sale time becomes a payment in the same transaction.
type CreateSaleUseCase struct {
	saleRepo        adapter.SaleRepository
	buyerRepo       adapter.BuyerRepository
	productTypeRepo adapter.ProductTypeRepository
}

// NewCreateSaleUseCase creates a new CreateSaleUseCase instance.
func NewCreateSaleUseCase(
	saleRepo adapter.SaleRepository,
	buyerRepo adapter.BuyerRepository,
	productTypeRepo adapter.ProductTypeRepository,
) *CreateSaleUseCase {
	return &CreateSaleUseCase{
		saleRepo:        saleRepo,
		buyerRepo:       buyerRepo,
		productTypeRepo: productTypeRepo,
	}
}

// Execute validates the buyer, payment type and items, derives the per-item
// and sale totals, and persists everything atomically.
func (uc *CreateSaleUseCase) Execute(ctx context.Context, input CreateSaleInput) (*CreateSaleOutput, error) {
	if _, err := uc.buyerRepo.FindByID(ctx, input.BuyerID); err != nil {
		if errors.Is(err, domainerror.ErrBuyerNotFound) {
			return nil, domainerror.NewBuyerError(
				domainerror.ErrCodeBuyerNotFound,
				"buyer not found",
				domainerror.ErrBuyerNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find buyer: %w", err)
	}

	switch input.PaymentType {
	case entity.PaymentTypePaid, entity.PaymentTypePartial, entity.PaymentTypeCredit:
	default:
		return nil, domainerror.NewSaleError(
			domainerror.ErrCodeInvalidPaymentType,
			fmt.Sprintf("invalid payment type %q", input.PaymentType),
			domainerror.ErrInvalidPaymentType,
		)
	}

	if len(input.Items) == 0 {
		return nil, domainerror.NewSaleError(
			domainerror.ErrCodeSaleItemsRequired,
			"sale requires at least one item",
			domainerror.ErrSaleItemsRequired,
		)
	}

	sale := entity.NewSale(input.Date, input.BuyerID, input.PaymentType, input.PaymentReceivedNow, input.Notes)

	items := make([]*entity.SaleItem, 0, len(input.Items))
	for _, itemInput := range input.Items {
		if itemInput.Quantity <= 0 {
			return nil, domainerror.NewSaleError(
				domainerror.ErrCodeMissingSaleFields,
				"item quantity must be positive",
				nil,
			)
		}
		if _, err := uc.productTypeRepo.FindByID(ctx, itemInput.ProductTypeID); err != nil {
			if errors.Is(err, domainerror.ErrProductTypeNotFound) {
				return nil, domainerror.NewProductTypeError(
					domainerror.ErrCodeProductTypeNotFound,
					"product type not found",
					domainerror.ErrProductTypeNotFound,
				)
			}
			return nil, fmt.Errorf("failed to find product type: %w", err)
		}
		items = append(items, entity.NewSaleItem(sale.ID, itemInput.ProductTypeID, itemInput.Quantity, itemInput.Unit, itemInput.PricePerUnit))
	}
	sale.SetItems(items)

	var autoPayment *entity.Payment
	if sale.PaymentReceivedNow.IsPositive() {
		autoPayment = entity.NewPayment(
			sale.BuyerID,
			sale.Date,
			sale.PaymentReceivedNow,
			entity.DefaultPaymentMethod,
			fmt.Sprintf("Payment for Sale #%s", sale.ID.String()[:8]),
		)
	}

	if err := uc.saleRepo.Create(ctx, sale, autoPayment); err != nil {
		return nil, fmt.Errorf("failed to create sale: %w", err)
	}

	return &CreateSaleOutput{Sale: sale}, nil
}
