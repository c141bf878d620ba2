// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentType represents how a sale was settled at the time of sale.
type PaymentType string

const (
	PaymentTypePaid    PaymentType = "Paid"
	PaymentTypePartial PaymentType = "Partial"
	PaymentTypeCredit  PaymentType = "Credit"
)

// Sale represents a sale to a buyer. The total amount is the sum of its line
// item totals, computed once at write time and stored.
type Sale struct {
	ID                 uuid.UUID
	Date               time.Time
	BuyerID            uuid.UUID
	PaymentType        PaymentType
	PaymentReceivedNow decimal.Decimal
	TotalAmount        decimal.Decimal
	Notes              string
	Items              []*SaleItem
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// SaleItem represents one line of a sale. It belongs to exactly one sale and
// references one product type; it is deleted together with its sale.
type SaleItem struct {
	ID            uuid.UUID
	SaleID        uuid.UUID
	ProductTypeID uuid.UUID
	Quantity      float64
	Unit          string
	PricePerUnit  decimal.Decimal
	TotalPrice    decimal.Decimal
}

// NewSaleItem creates a sale line item with its total derived at construction.
func NewSaleItem(saleID, productTypeID uuid.UUID, quantity float64, unit string, pricePerUnit decimal.Decimal) *SaleItem {
	if unit == "" {
		unit = DefaultUnit
	}

	return &SaleItem{
		ID:            uuid.New(),
		SaleID:        saleID,
		ProductTypeID: productTypeID,
		Quantity:      quantity,
		Unit:          unit,
		PricePerUnit:  pricePerUnit,
		TotalPrice:    pricePerUnit.Mul(decimal.NewFromFloat(quantity)),
	}
}

// NewSale creates a new Sale entity. The caller attaches items and the stored
// total via SetItems.
func NewSale(date time.Time, buyerID uuid.UUID, paymentType PaymentType, paymentReceivedNow decimal.Decimal, notes string) *Sale {
	now := time.Now().UTC()

	return &Sale{
		ID:                 uuid.New(),
		Date:               NormalizeDate(date),
		BuyerID:            buyerID,
		PaymentType:        paymentType,
		PaymentReceivedNow: paymentReceivedNow,
		TotalAmount:        decimal.Zero,
		Notes:              notes,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
}

// SetItems attaches line items and recomputes the stored total amount.
func (s *Sale) SetItems(items []*SaleItem) {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.TotalPrice)
	}
	s.Items = items
	s.TotalAmount = total
}
