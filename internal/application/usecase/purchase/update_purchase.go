package purchase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/scraptrade/backend/internal/application/adapter"
	"github.com/scraptrade/backend/internal/domain/entity"
	domainerror "github.com/scraptrade/backend/internal/domain/error"
)

// UpdatePurchaseInput represents the input for updating a purchase. Nil
// fields are left unchanged.
type UpdatePurchaseInput struct {
	ID               uuid.UUID
	Date             *time.Time
	SellerName       *string
	SellerPhone      *string
	PickupLocation   *string
	ScrapType        *string
	TransportService *string
	TransportCost    *decimal.Decimal
	Quantity         *float64
	Unit             *string
	PricePerUnit     *decimal.Decimal
	Notes            *string
}

// UpdatePurchaseOutput represents the output after updating a purchase.
type UpdatePurchaseOutput struct {
	Purchase *entity.Purchase
}

// UpdatePurchaseUseCase applies a partial update to a purchase and keeps
// its derived transport expense in sync.
type UpdatePurchaseUseCase struct {
	purchaseRepo adapter.PurchaseRepository
	expenseRepo  adapter.ExpenseRepository
}

// NewUpdatePurchaseUseCase creates a new UpdatePurchaseUseCase instance.
func NewUpdatePurchaseUseCase(
	purchaseRepo adapter.PurchaseRepository,
	expenseRepo adapter.ExpenseRepository,
) *UpdatePurchaseUseCase {
	return &UpdatePurchaseUseCase{
		purchaseRepo: purchaseRepo,
		expenseRepo:  expenseRepo,
	}
}

// Execute updates the provided fields and re-derives the total cost. The
// derived transport expense is reconciled only when the update carries a
// transport cost; edits that leave it out never touch the expense:
//
//	expense found, cost > 0  -> update amount and description
//	expense found, cost == 0 -> delete
//	expense missing, cost > 0 -> create
//	expense missing, cost == 0 -> nothing
//
// The expense lookup runs against the purchase's new date and seller, so an
// edit that changes those together with the transport cost leaves the old
// expense orphaned and creates a fresh one. That mirrors how these records
// have always been linked; purchases and expenses carry no foreign key
// between them.
func (uc *UpdatePurchaseUseCase) Execute(ctx context.Context, input UpdatePurchaseInput) (*UpdatePurchaseOutput, error) {
	purchase, err := uc.purchaseRepo.FindByID(ctx, input.ID)
	if err != nil {
		if errors.Is(err, domainerror.ErrPurchaseNotFound) {
			return nil, domainerror.NewPurchaseError(
				domainerror.ErrCodePurchaseNotFound,
				"purchase not found",
				domainerror.ErrPurchaseNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find purchase: %w", err)
	}

	if input.Date != nil {
		purchase.Date = entity.NormalizeDate(*input.Date)
	}
	if input.SellerName != nil {
		name := strings.TrimSpace(*input.SellerName)
		if name == "" {
			return nil, domainerror.NewPurchaseError(
				domainerror.ErrCodeMissingPurchaseFields,
				"seller name is required",
				nil,
			)
		}
		purchase.SellerName = name
	}
	if input.SellerPhone != nil {
		purchase.SellerPhone = *input.SellerPhone
	}
	if input.PickupLocation != nil {
		purchase.PickupLocation = *input.PickupLocation
	}
	if input.ScrapType != nil {
		scrapType := strings.TrimSpace(*input.ScrapType)
		if scrapType == "" {
			return nil, domainerror.NewPurchaseError(
				domainerror.ErrCodeMissingPurchaseFields,
				"scrap type is required",
				nil,
			)
		}
		purchase.ScrapType = scrapType
	}
	if input.TransportService != nil {
		purchase.TransportService = *input.TransportService
	}
	if input.TransportCost != nil {
		purchase.TransportCost = *input.TransportCost
	}
	if input.Quantity != nil {
		if *input.Quantity <= 0 {
			return nil, domainerror.NewPurchaseError(
				domainerror.ErrCodeInvalidPurchaseQuantity,
				"quantity must be positive",
				domainerror.ErrInvalidPurchaseQuantity,
			)
		}
		purchase.Quantity = *input.Quantity
	}
	if input.Unit != nil {
		purchase.Unit = *input.Unit
		if purchase.Unit == "" {
			purchase.Unit = entity.DefaultUnit
		}
	}
	if input.PricePerUnit != nil {
		purchase.PricePerUnit = *input.PricePerUnit
	}
	if input.Notes != nil {
		purchase.Notes = *input.Notes
	}

	purchase.TotalPurchaseCost = entity.PurchaseTotalCost(purchase.Quantity, purchase.PricePerUnit, purchase.TransportCost)
	purchase.UpdatedAt = time.Now().UTC()

	var sync adapter.TransportExpenseSync
	if input.TransportCost != nil {
		sync, err = uc.reconcileTransportExpense(ctx, purchase)
		if err != nil {
			return nil, err
		}
	}

	if err := uc.purchaseRepo.Update(ctx, purchase, sync); err != nil {
		return nil, fmt.Errorf("failed to update purchase: %w", err)
	}

	return &UpdatePurchaseOutput{Purchase: purchase}, nil
}

func (uc *UpdatePurchaseUseCase) reconcileTransportExpense(ctx context.Context, purchase *entity.Purchase) (adapter.TransportExpenseSync, error) {
	var sync adapter.TransportExpenseSync

	existing, err := uc.expenseRepo.FindTransportForPurchase(ctx, purchase.Date, purchase.SellerName)
	if err != nil {
		return sync, fmt.Errorf("failed to find transport expense: %w", err)
	}

	switch {
	case existing != nil && purchase.TransportCost.IsPositive():
		existing.Amount = purchase.TransportCost
		existing.Description = entity.TransportExpenseDescription(purchase.SellerName, purchase.TransportService)
		existing.UpdatedAt = time.Now().UTC()
		sync.Update = existing
	case existing != nil:
		id := existing.ID
		sync.Delete = &id
	case purchase.TransportCost.IsPositive():
		sync.Create = entity.NewExpense(
			purchase.Date,
			entity.ExpenseCategoryTransport,
			purchase.TransportCost,
			entity.TransportExpenseDescription(purchase.SellerName, purchase.TransportService),
		)
	}

	return sync, nil
}
