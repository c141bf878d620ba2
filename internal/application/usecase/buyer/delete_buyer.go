// Package buyer contains buyer-related use cases, including the ledger engine.
package buyer

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/scraptrade/backend/internal/application/adapter"
	domainerror "github.com/scraptrade/backend/internal/domain/error"
)

// DeleteBuyerInput represents the input for buyer deletion.
type DeleteBuyerInput struct {
	BuyerID uuid.UUID
}

// DeleteBuyerOutput represents the output of buyer deletion.
type DeleteBuyerOutput struct {
	Success bool
}

// DeleteBuyerUseCase handles buyer deletion. Deletion is blocked while the
// buyer has sales or payments, to preserve referential integrity without
// cascading business data loss.
type DeleteBuyerUseCase struct {
	buyerRepo   adapter.BuyerRepository
	saleRepo    adapter.SaleRepository
	paymentRepo adapter.PaymentRepository
}

// NewDeleteBuyerUseCase creates a new DeleteBuyerUseCase instance.
func NewDeleteBuyerUseCase(
	buyerRepo adapter.BuyerRepository,
	saleRepo adapter.SaleRepository,
	paymentRepo adapter.PaymentRepository,
) *DeleteBuyerUseCase {
	return &DeleteBuyerUseCase{
		buyerRepo:   buyerRepo,
		saleRepo:    saleRepo,
		paymentRepo: paymentRepo,
	}
}

// Execute performs the buyer deletion.
func (uc *DeleteBuyerUseCase) Execute(ctx context.Context, input DeleteBuyerInput) (*DeleteBuyerOutput, error) {
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

	hasSales, err := uc.saleRepo.ExistsByBuyer(ctx, input.BuyerID)
	if err != nil {
		return nil, fmt.Errorf("failed to check buyer sales: %w", err)
	}
	hasPayments, err := uc.paymentRepo.ExistsByBuyer(ctx, input.BuyerID)
	if err != nil {
		return nil, fmt.Errorf("failed to check buyer payments: %w", err)
	}
	if hasSales || hasPayments {
		return nil, domainerror.NewBuyerError(
			domainerror.ErrCodeBuyerHasRecords,
			"cannot delete buyer with existing sales or payments",
			domainerror.ErrBuyerHasRecords,
		)
	}

	if err := uc.buyerRepo.Delete(ctx, input.BuyerID); err != nil {
		return nil, fmt.Errorf("failed to delete buyer: %w", err)
	}

	return &DeleteBuyerOutput{
		Success: true,
	}, nil
}
