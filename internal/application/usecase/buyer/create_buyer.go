// Package buyer contains buyer-related use cases, including the ledger engine.
package buyer

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/scraptrade/backend/internal/application/adapter"
	"github.com/scraptrade/backend/internal/domain/entity"
	domainerror "github.com/scraptrade/backend/internal/domain/error"
)

// CreateBuyerInput represents the input for buyer creation.
type CreateBuyerInput struct {
	Name           string
	Phone          string
	Address        string
	Notes          string
	OpeningBalance decimal.Decimal
}

// CreateBuyerOutput represents the output of buyer creation.
type CreateBuyerOutput struct {
	Buyer *entity.Buyer
}

// CreateBuyerUseCase handles buyer creation logic.
type CreateBuyerUseCase struct {
	buyerRepo adapter.BuyerRepository
}

// NewCreateBuyerUseCase creates a new CreateBuyerUseCase instance.
func NewCreateBuyerUseCase(buyerRepo adapter.BuyerRepository) *CreateBuyerUseCase {
	return &CreateBuyerUseCase{
		buyerRepo: buyerRepo,
	}
}

// Execute performs the buyer creation.
func (uc *CreateBuyerUseCase) Execute(ctx context.Context, input CreateBuyerInput) (*CreateBuyerOutput, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, domainerror.NewBuyerError(
			domainerror.ErrCodeBuyerNameRequired,
			"buyer name is required",
			domainerror.ErrBuyerNameRequired,
		)
	}

	buyer := entity.NewBuyer(input.Name, input.Phone, input.Address, input.Notes, input.OpeningBalance)

	if err := uc.buyerRepo.Create(ctx, buyer); err != nil {
		return nil, fmt.Errorf("failed to create buyer: %w", err)
	}

	return &CreateBuyerOutput{
		Buyer: buyer,
	}, nil
}
