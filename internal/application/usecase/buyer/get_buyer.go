// Package buyer contains buyer-related use cases, including the ledger engine.
package buyer

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/scraptrade/backend/internal/application/adapter"
	"github.com/scraptrade/backend/internal/domain/entity"
	domainerror "github.com/scraptrade/backend/internal/domain/error"
)

// GetBuyerInput represents the input for retrieving a buyer.
type GetBuyerInput struct {
	BuyerID uuid.UUID
}

// GetBuyerOutput represents the output of retrieving a buyer.
type GetBuyerOutput struct {
	Buyer *entity.BuyerWithBalance
}

// GetBuyerUseCase handles single buyer retrieval with its computed balance.
type GetBuyerUseCase struct {
	buyerRepo   adapter.BuyerRepository
	saleRepo    adapter.SaleRepository
	paymentRepo adapter.PaymentRepository
}

// NewGetBuyerUseCase creates a new GetBuyerUseCase instance.
func NewGetBuyerUseCase(
	buyerRepo adapter.BuyerRepository,
	saleRepo adapter.SaleRepository,
	paymentRepo adapter.PaymentRepository,
) *GetBuyerUseCase {
	return &GetBuyerUseCase{
		buyerRepo:   buyerRepo,
		saleRepo:    saleRepo,
		paymentRepo: paymentRepo,
	}
}

// Execute retrieves the buyer and recomputes its outstanding balance.
func (uc *GetBuyerUseCase) Execute(ctx context.Context, input GetBuyerInput) (*GetBuyerOutput, error) {
	buyer, err := uc.buyerRepo.FindByID(ctx, input.BuyerID)
	if err != nil {
		if errors.Is(err, domainerror.ErrBuyerNotFound) {
			return nil, domainerror.NewBuyerError(
				domainerror.ErrCodeBuyerNotFound,
				"buyer not found",
				domainerror.ErrBuyerNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find buyer: %w", err)
	}

	totalSales, err := uc.saleRepo.SumAmountByBuyer(ctx, buyer.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to sum sales: %w", err)
	}
	totalPayments, err := uc.paymentRepo.SumAmountByBuyer(ctx, buyer.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to sum payments: %w", err)
	}

	return &GetBuyerOutput{
		Buyer: &entity.BuyerWithBalance{
			Buyer:              buyer,
			TotalSales:         totalSales,
			TotalPayments:      totalPayments,
			OutstandingBalance: buyer.OutstandingBalance(totalSales, totalPayments),
		},
	}, nil
}
