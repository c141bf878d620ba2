package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/scraptrade/backend/internal/domain/entity"
)

// PurchaseModel represents the purchases table in the database.
type PurchaseModel struct {
	ID                uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Date              time.Time       `gorm:"type:date;not null;index"`
	SellerName        string          `gorm:"type:varchar(255);not null;index"`
	SellerPhone       string          `gorm:"type:varchar(50)"`
	PickupLocation    string          `gorm:"type:varchar(255)"`
	ScrapType         string          `gorm:"type:varchar(100);not null"`
	TransportService  string          `gorm:"type:varchar(255)"`
	TransportCost     decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"`
	Quantity          float64         `gorm:"not null"`
	Unit              string          `gorm:"type:varchar(20);not null"`
	PricePerUnit      decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	TotalPurchaseCost decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Notes             string          `gorm:"type:text"`
	CreatedAt         time.Time       `gorm:"not null"`
	UpdatedAt         time.Time       `gorm:"not null"`
}

// TableName returns the table name for the PurchaseModel.
func (PurchaseModel) TableName() string {
	return "purchases"
}

// ToEntity converts a PurchaseModel to a domain Purchase entity.
func (m *PurchaseModel) ToEntity() *entity.Purchase {
	return &entity.Purchase{
		ID:                m.ID,
		Date:              entity.NormalizeDate(m.Date),
		SellerName:        m.SellerName,
		SellerPhone:       m.SellerPhone,
		PickupLocation:    m.PickupLocation,
		ScrapType:         m.ScrapType,
		TransportService:  m.TransportService,
		TransportCost:     m.TransportCost,
		Quantity:          m.Quantity,
		Unit:              m.Unit,
		PricePerUnit:      m.PricePerUnit,
		TotalPurchaseCost: m.TotalPurchaseCost,
		Notes:             m.Notes,
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
	}
}

// PurchaseFromEntity creates a PurchaseModel from a domain Purchase entity.
func PurchaseFromEntity(purchase *entity.Purchase) *PurchaseModel {
	return &PurchaseModel{
		ID:                purchase.ID,
		Date:              purchase.Date,
		SellerName:        purchase.SellerName,
		SellerPhone:       purchase.SellerPhone,
		PickupLocation:    purchase.PickupLocation,
		ScrapType:         purchase.ScrapType,
		TransportService:  purchase.TransportService,
		TransportCost:     purchase.TransportCost,
		Quantity:          purchase.Quantity,
		Unit:              purchase.Unit,
		PricePerUnit:      purchase.PricePerUnit,
		TotalPurchaseCost: purchase.TotalPurchaseCost,
		Notes:             purchase.Notes,
		CreatedAt:         purchase.CreatedAt,
		UpdatedAt:         purchase.UpdatedAt,
	}
}
