package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/scraptrade/backend/internal/domain/entity"
)

// ProductTypeModel represents the product_types table in the database.
type ProductTypeModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	Description string    `gorm:"type:text"`
	CreatedAt   time.Time `gorm:"not null"`
	UpdatedAt   time.Time `gorm:"not null"`
}

// TableName returns the table name for the ProductTypeModel.
func (ProductTypeModel) TableName() string {
	return "product_types"
}

// ToEntity converts a ProductTypeModel to a domain ProductType entity.
func (m *ProductTypeModel) ToEntity() *entity.ProductType {
	return &entity.ProductType{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// ProductTypeFromEntity creates a ProductTypeModel from a domain ProductType entity.
func ProductTypeFromEntity(productType *entity.ProductType) *ProductTypeModel {
	return &ProductTypeModel{
		ID:          productType.ID,
		Name:        productType.Name,
		Description: productType.Description,
		CreatedAt:   productType.CreatedAt,
		UpdatedAt:   productType.UpdatedAt,
	}
}
