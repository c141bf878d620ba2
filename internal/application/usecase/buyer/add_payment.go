package buyer

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

// AddPaymentInput represents the input for recording a buyer payment.
type AddPaymentInput struct {
	BuyerID       uuid.UUID
	Date          time.Time
	Amount        decimal.Decimal
	PaymentMethod string
	Notes         string
}

// AddPaymentOutput represents the output after recording a payment.
type AddPaymentOutput struct {
	Payment *entity.Payment
}

// AddPaymentUseCase records a payment against a buyer, reducing their
// outstanding balance.
type AddPaymentUseCase struct {
	buyerRepo   adapter.BuyerRepository
	paymentRepo adapter.PaymentRepository
}

// NewAddPaymentUseCase creates a new AddPaymentUseCase instance.
func NewAddPaymentUseCase(
	buyerRepo adapter.BuyerRepository,
	paymentRepo adapter.PaymentRepository,
) *AddPaymentUseCase {
	return &AddPaymentUseCase{
		buyerRepo:   buyerRepo,
		paymentRepo: paymentRepo,
	}
}

// Execute validates the buyer exists and persists the payment.
func (uc *AddPaymentUseCase) Execute(ctx context.Context, input AddPaymentInput) (*AddPaymentOutput, error) {
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

	payment := entity.NewPayment(input.BuyerID, input.Date, input.Amount, input.PaymentMethod, input.Notes)
	if err := uc.paymentRepo.Create(ctx, payment); err != nil {
		return nil, fmt.Errorf("failed to create payment: %w", err)
	}

	return &AddPaymentOutput{Payment: payment}, nil
}
