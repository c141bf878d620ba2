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

// ListPaymentsInput represents the input for listing a buyer's payments.
type ListPaymentsInput struct {
	BuyerID uuid.UUID
}

// ListPaymentsOutput represents the output with the buyer's payment history.
type ListPaymentsOutput struct {
	Payments []*entity.Payment
}

// ListPaymentsUseCase lists a buyer's payments, newest first.
type ListPaymentsUseCase struct {
	buyerRepo   adapter.BuyerRepository
	paymentRepo adapter.PaymentRepository
}

// NewListPaymentsUseCase creates a new ListPaymentsUseCase instance.
func NewListPaymentsUseCase(
	buyerRepo adapter.BuyerRepository,
	paymentRepo adapter.PaymentRepository,
) *ListPaymentsUseCase {
	return &ListPaymentsUseCase{
		buyerRepo:   buyerRepo,
		paymentRepo: paymentRepo,
	}
}

// Execute validates the buyer exists and returns their payments.
func (uc *ListPaymentsUseCase) Execute(ctx context.Context, input ListPaymentsInput) (*ListPaymentsOutput, error) {
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

	payments, err := uc.paymentRepo.FindByBuyer(ctx, input.BuyerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}

	return &ListPaymentsOutput{Payments: payments}, nil
}
