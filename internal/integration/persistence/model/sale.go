package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/scraptrade/backend/internal/domain/entity"
)

// SaleModel represents the sales table in the database.
type SaleModel struct {
	ID                 uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Date               time.Time       `gorm:"type:date;not null;index"`
	BuyerID            uuid.UUID       `gorm:"type:uuid;not null;index"`
	PaymentType        string          `gorm:"type:varchar(20);not null"`
	PaymentReceivedNow decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"`
	TotalAmount        decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Notes              string          `gorm:"type:text"`
	CreatedAt          time.Time       `gorm:"not null"`
	UpdatedAt          time.Time       `gorm:"not null"`

	Items []SaleItemModel `gorm:"foreignKey:SaleID"`
}

// TableName returns the table name for the SaleModel.
func (SaleModel) TableName() string {
	return "sales"
}

// SaleItemModel represents the sale_items table in the database.
type SaleItemModel struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	SaleID        uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductTypeID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Quantity      float64         `gorm:"not null"`
	Unit          string          `gorm:"type:varchar(20);not null"`
	PricePerUnit  decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	TotalPrice    decimal.Decimal `gorm:"type:decimal(15,2);not null"`
}

// TableName returns the table name for the SaleItemModel.
func (SaleItemModel) TableName() string {
	return "sale_items"
}

// ToEntity converts a SaleModel with its items to a domain Sale entity.
func (m *SaleModel) ToEntity() *entity.Sale {
	items := make([]*entity.SaleItem, len(m.Items))
	for i, im := range m.Items {
		items[i] = im.ToEntity()
	}

	return &entity.Sale{
		ID:                 m.ID,
		Date:               entity.NormalizeDate(m.Date),
		BuyerID:            m.BuyerID,
		PaymentType:        entity.PaymentType(m.PaymentType),
		PaymentReceivedNow: m.PaymentReceivedNow,
		TotalAmount:        m.TotalAmount,
		Notes:              m.Notes,
		Items:              items,
		CreatedAt:          m.CreatedAt,
		UpdatedAt:          m.UpdatedAt,
	}
}

// ToEntity converts a SaleItemModel to a domain SaleItem entity.
func (m *SaleItemModel) ToEntity() *entity.SaleItem {
	return &entity.SaleItem{
		ID:            m.ID,
		SaleID:        m.SaleID,
		ProductTypeID: m.ProductTypeID,
		Quantity:      m.Quantity,
		Unit:          m.Unit,
		PricePerUnit:  m.PricePerUnit,
		TotalPrice:    m.TotalPrice,
	}
}

// SaleFromEntity creates a SaleModel from a domain Sale entity. Items are
// converted separately so transactional writes control their insertion.
func SaleFromEntity(sale *entity.Sale) *SaleModel {
	return &SaleModel{
		ID:                 sale.ID,
		Date:               sale.Date,
		BuyerID:            sale.BuyerID,
		PaymentType:        string(sale.PaymentType),
		PaymentReceivedNow: sale.PaymentReceivedNow,
		TotalAmount:        sale.TotalAmount,
		Notes:              sale.Notes,
		CreatedAt:          sale.CreatedAt,
		UpdatedAt:          sale.UpdatedAt,
	}
}

// SaleItemFromEntity creates a SaleItemModel from a domain SaleItem entity.
func SaleItemFromEntity(item *entity.SaleItem) *SaleItemModel {
	return &SaleItemModel{
		ID:            item.ID,
		SaleID:        item.SaleID,
		ProductTypeID: item.ProductTypeID,
		Quantity:      item.Quantity,
		Unit:          item.Unit,
		PricePerUnit:  item.PricePerUnit,
		TotalPrice:    item.TotalPrice,
	}
}
