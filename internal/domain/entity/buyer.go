// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Buyer represents a customer who purchases scrap material on account.
type Buyer struct {
	ID             uuid.UUID
	Name           string
	Phone          string
	Address        string
	Notes          string
	OpeningBalance decimal.Decimal
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// NewBuyer creates a new Buyer entity.
func NewBuyer(name, phone, address, notes string, openingBalance decimal.Decimal) *Buyer {
	now := time.Now().UTC()

	return &Buyer{
		ID:             uuid.New(),
		Name:           name,
		Phone:          phone,
		Address:        address,
		Notes:          notes,
		OpeningBalance: openingBalance,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// OutstandingBalance computes what the buyer currently owes from unfiltered
// sale and payment totals. Never persisted; sales and payments mutate
// independently.
func (b *Buyer) OutstandingBalance(totalSales, totalPayments decimal.Decimal) decimal.Decimal {
	return b.OpeningBalance.Add(totalSales).Sub(totalPayments)
}

// BuyerWithBalance represents a buyer together with the computed balance
// figures used by list and detail views.
type BuyerWithBalance struct {
	Buyer              *Buyer
	TotalSales         decimal.Decimal
	TotalPayments      decimal.Decimal
	OutstandingBalance decimal.Decimal
}
