// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DefaultUnit is the default measurement unit for quantities.
const DefaultUnit = "kg"

// Purchase represents a scrap purchase from a seller. The total cost is
// computed once at write time and stored, so historical records stay stable.
type Purchase struct {
	ID                uuid.UUID
	Date              time.Time
	SellerName        string
	SellerPhone       string
	PickupLocation    string
	ScrapType         string
	TransportService  string
	TransportCost     decimal.Decimal
	Quantity          float64
	Unit              string
	PricePerUnit      decimal.Decimal
	TotalPurchaseCost decimal.Decimal
	Notes             string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// PurchaseTotalCost derives the stored total from quantity, unit price and
// transport cost.
func PurchaseTotalCost(quantity float64, pricePerUnit, transportCost decimal.Decimal) decimal.Decimal {
	return pricePerUnit.Mul(decimal.NewFromFloat(quantity)).Add(transportCost)
}

// NewPurchase creates a new Purchase entity with the total cost derived at
// construction time.
func NewPurchase(
	date time.Time,
	sellerName, sellerPhone, pickupLocation, scrapType, transportService string,
	transportCost decimal.Decimal,
	quantity float64,
	unit string,
	pricePerUnit decimal.Decimal,
	notes string,
) *Purchase {
	now := time.Now().UTC()
	if unit == "" {
		unit = DefaultUnit
	}

	return &Purchase{
		ID:                uuid.New(),
		Date:              NormalizeDate(date),
		SellerName:        sellerName,
		SellerPhone:       sellerPhone,
		PickupLocation:    pickupLocation,
		ScrapType:         scrapType,
		TransportService:  transportService,
		TransportCost:     transportCost,
		Quantity:          quantity,
		Unit:              unit,
		PricePerUnit:      pricePerUnit,
		TotalPurchaseCost: PurchaseTotalCost(quantity, pricePerUnit, transportCost),
		Notes:             notes,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
}

// NormalizeDate truncates a timestamp to midnight UTC so that date columns
// compare consistently across drivers.
func NormalizeDate(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
