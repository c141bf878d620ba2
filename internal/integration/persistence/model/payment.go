package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/scraptrade/backend/internal/domain/entity"
)

// PaymentModel represents the payments table in the database.
type PaymentModel struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	BuyerID       uuid.UUID       `gorm:"type:uuid;not null;index"`
	Date          time.Time       `gorm:"type:date;not null;index"`
	Amount        decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	PaymentMethod string          `gorm:"type:varchar(50);not null"`
	Notes         string          `gorm:"type:text"`
	CreatedAt     time.Time       `gorm:"not null"`
}

// TableName returns the table name for the PaymentModel.
func (PaymentModel) TableName() string {
	return "payments"
}

// ToEntity converts a PaymentModel to a domain Payment entity.
func (m *PaymentModel) ToEntity() *entity.Payment {
	return &entity.Payment{
		ID:            m.ID,
		BuyerID:       m.BuyerID,
		Date:          entity.NormalizeDate(m.Date),
		Amount:        m.Amount,
		PaymentMethod: m.PaymentMethod,
		Notes:         m.Notes,
		CreatedAt:     m.CreatedAt,
	}
}

// PaymentFromEntity creates a PaymentModel from a domain Payment entity.
func PaymentFromEntity(payment *entity.Payment) *PaymentModel {
	return &PaymentModel{
		ID:            payment.ID,
		BuyerID:       payment.BuyerID,
		Date:          payment.Date,
		Amount:        payment.Amount,
		PaymentMethod: payment.PaymentMethod,
		Notes:         payment.Notes,
		CreatedAt:     payment.CreatedAt,
	}
}
