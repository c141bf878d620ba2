// Package purchase contains purchase use cases, including the automatic
// transport expense derivation.
package purchase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/scraptrade/backend/internal/application/adapter"
	"github.com/scraptrade/backend/internal/domain/entity"
	domainerror "github.com/scraptrade/backend/internal/domain/error"
)

// CreatePurchaseInput represents the input for recording a purchase.
type CreatePurchaseInput struct {
	Date             time.Time
	SellerName       string
	SellerPhone      string
	PickupLocation   string
	ScrapType        string
	TransportService string
	TransportCost    decimal.Decimal
	Quantity         float64
	Unit             string
	PricePerUnit     decimal.Decimal
	Notes            string
}

// CreatePurchaseOutput represents the output after recording a purchase.
type CreatePurchaseOutput struct {
	Purchase *entity.Purchase
}

// CreatePurchaseUseCase records a purchase. A positive transport cost also
// creates a Transport expense in the same transaction.
type CreatePurchaseUseCase struct {
	purchaseRepo adapter.PurchaseRepository
}

// NewCreatePurchaseUseCase creates a new CreatePurchaseUseCase instance.
func NewCreatePurchaseUseCase(purchaseRepo adapter.PurchaseRepository) *CreatePurchaseUseCase {
	return &CreatePurchaseUseCase{purchaseRepo: purchaseRepo}
}

// Execute validates the input, derives the total cost and persists the
// purchase together with its transport expense when one applies.
func (uc *CreatePurchaseUseCase) Execute(ctx context.Context, input CreatePurchaseInput) (*CreatePurchaseOutput, error) {
	if strings.TrimSpace(input.SellerName) == "" || strings.TrimSpace(input.ScrapType) == "" {
		return nil, domainerror.NewPurchaseError(
			domainerror.ErrCodeMissingPurchaseFields,
			"seller name and scrap type are required",
			nil,
		)
	}
	if input.Quantity <= 0 {
		return nil, domainerror.NewPurchaseError(
			domainerror.ErrCodeInvalidPurchaseQuantity,
			"quantity must be positive",
			domainerror.ErrInvalidPurchaseQuantity,
		)
	}

	purchase := entity.NewPurchase(
		input.Date,
		strings.TrimSpace(input.SellerName),
		input.SellerPhone,
		input.PickupLocation,
		strings.TrimSpace(input.ScrapType),
		input.TransportService,
		input.TransportCost,
		input.Quantity,
		input.Unit,
		input.PricePerUnit,
		input.Notes,
	)

	var transportExpense *entity.Expense
	if purchase.TransportCost.IsPositive() {
		transportExpense = entity.NewExpense(
			purchase.Date,
			entity.ExpenseCategoryTransport,
			purchase.TransportCost,
			entity.TransportExpenseDescription(purchase.SellerName, purchase.TransportService),
		)
	}

	if err := uc.purchaseRepo.Create(ctx, purchase, transportExpense); err != nil {
		return nil, fmt.Errorf("failed to create purchase: %w", err)
	}

	return &CreatePurchaseOutput{Purchase: purchase}, nil
}
