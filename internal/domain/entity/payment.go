// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DefaultPaymentMethod is used when no method is supplied.
const DefaultPaymentMethod = "Cash"

// Payment represents money received from a buyer. It credits the buyer's
// running balance.
type Payment struct {
	ID            uuid.UUID
	BuyerID       uuid.UUID
	Date          time.Time
	Amount        decimal.Decimal
	PaymentMethod string
	Notes         string
	CreatedAt     time.Time
}

// NewPayment creates a new Payment entity.
func NewPayment(buyerID uuid.UUID, date time.Time, amount decimal.Decimal, paymentMethod, notes string) *Payment {
	if paymentMethod == "" {
		paymentMethod = DefaultPaymentMethod
	}

	return &Payment{
		ID:            uuid.New(),
		BuyerID:       buyerID,
		Date:          NormalizeDate(date),
		Amount:        amount,
		PaymentMethod: paymentMethod,
		Notes:         notes,
		CreatedAt:     time.Now().UTC(),
	}
}
