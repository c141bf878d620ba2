package dto

import (
	"time"

	"github.com/scraptrade/backend/internal/domain/entity"
)

// CreateProductTypeRequest represents the request body for product type creation.
type CreateProductTypeRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=255"`
	Description string `json:"description,omitempty"`
}

// UpdateProductTypeRequest represents the request body for product type update.
type UpdateProductTypeRequest struct {
	Name        *string `json:"name,omitempty" binding:"omitempty,min=1,max=255"`
	Description *string `json:"description,omitempty"`
}

// ProductTypeResponse represents a single product type in API responses.
type ProductTypeResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ProductTypeListResponse represents the response for listing product types.
type ProductTypeListResponse struct {
	ProductTypes []ProductTypeResponse `json:"product_types"`
}

// ToProductTypeResponse converts a domain ProductType entity to its DTO.
func ToProductTypeResponse(pt *entity.ProductType) ProductTypeResponse {
	return ProductTypeResponse{
		ID:          pt.ID.String(),
		Name:        pt.Name,
		Description: pt.Description,
		CreatedAt:   pt.CreatedAt,
		UpdatedAt:   pt.UpdatedAt,
	}
}

// ToProductTypeListResponse converts product types to a list response.
func ToProductTypeListResponse(productTypes []*entity.ProductType) ProductTypeListResponse {
	out := make([]ProductTypeResponse, len(productTypes))
	for i, pt := range productTypes {
		out[i] = ToProductTypeResponse(pt)
	}
	return ProductTypeListResponse{ProductTypes: out}
}
