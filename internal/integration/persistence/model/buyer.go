package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/scraptrade/backend/internal/domain/entity"
)

// BuyerModel represents the buyers table in the database.
type BuyerModel struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name           string          `gorm:"type:varchar(255);not null;index"`
	Phone          string          `gorm:"type:varchar(50)"`
	Address        string          `gorm:"type:text"`
	Notes          string          `gorm:"type:text"`
	OpeningBalance decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"`
	CreatedAt      time.Time       `gorm:"not null"`
	UpdatedAt      time.Time       `gorm:"not null"`
}

// TableName returns the table name for the BuyerModel.
func (BuyerModel) TableName() string {
	return "buyers"
}

// ToEntity converts a BuyerModel to a domain Buyer entity.
func (m *BuyerModel) ToEntity() *entity.Buyer {
	return &entity.Buyer{
		ID:             m.ID,
		Name:           m.Name,
		Phone:          m.Phone,
		Address:        m.Address,
		Notes:          m.Notes,
		OpeningBalance: m.OpeningBalance,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

// BuyerFromEntity creates a BuyerModel from a domain Buyer entity.
func BuyerFromEntity(buyer *entity.Buyer) *BuyerModel {
	return &BuyerModel{
		ID:             buyer.ID,
		Name:           buyer.Name,
		Phone:          buyer.Phone,
		Address:        buyer.Address,
		Notes:          buyer.Notes,
		OpeningBalance: buyer.OpeningBalance,
		CreatedAt:      buyer.CreatedAt,
		UpdatedAt:      buyer.UpdatedAt,
	}
}
