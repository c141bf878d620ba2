package dto

import (
	"time"

	"github.com/scraptrade/backend/internal/domain/entity"
)

// CreateSaleItemRequest is one line item of a new sale.
type CreateSaleItemRequest struct {
	ProductTypeID string  `json:"product_type_id" binding:"required,uuid"`
	Quantity      float64 `json:"quantity" binding:"required,gt=0"`
	Unit          string  `json:"unit,omitempty"`
	PricePerUnit  float64 `json:"price_per_unit" binding:"required,gte=0"`
}

// CreateSaleRequest represents the request body for recording a sale.
type CreateSaleRequest struct {
	Date               string                  `json:"date" binding:"required"`
	BuyerID            string                  `json:"buyer_id" binding:"required,uuid"`
	PaymentType        string                  `json:"payment_type" binding:"required,oneof=Paid Partial Credit"`
	PaymentReceivedNow float64                 `json:"payment_received_now" binding:"omitempty,gte=0"`
	Notes              string                  `json:"notes,omitempty"`
	Items              []CreateSaleItemRequest `json:"items" binding:"required,min=1,dive"`
}

// UpdateSaleRequest represents the request body for updating a sale.
type UpdateSaleRequest struct {
	Date        *string `json:"date,omitempty"`
	PaymentType *string `json:"payment_type,omitempty" binding:"omitempty,oneof=Paid Partial Credit"`
	Notes       *string `json:"notes,omitempty"`
}

// SaleItemResponse represents a single sale line item in API responses.
type SaleItemResponse struct {
	ID            string  `json:"id"`
	ProductTypeID string  `json:"product_type_id"`
	Quantity      float64 `json:"quantity"`
	Unit          string  `json:"unit"`
	PricePerUnit  string  `json:"price_per_unit"`
	TotalPrice    string  `json:"total_price"`
}

// SaleResponse represents a single sale in API responses.
type SaleResponse struct {
	ID                 string             `json:"id"`
	Date               string             `json:"date"`
	BuyerID            string             `json:"buyer_id"`
	PaymentType        string             `json:"payment_type"`
	PaymentReceivedNow string             `json:"payment_received_now"`
	TotalAmount        string             `json:"total_amount"`
	Notes              string             `json:"notes"`
	Items              []SaleItemResponse `json:"items"`
	CreatedAt          time.Time          `json:"created_at"`
	UpdatedAt          time.Time          `json:"updated_at"`
}

// SaleListResponse represents the response for listing sales.
type SaleListResponse struct {
	Sales []SaleResponse `json:"sales"`
}

// TodaySaleStatsResponse represents today's sale totals.
type TodaySaleStatsResponse struct {
	Date        string `json:"date"`
	TotalAmount string `json:"total_amount"`
}

// ToSaleResponse converts a domain Sale entity to its DTO.
func ToSaleResponse(s *entity.Sale) SaleResponse {
	items := make([]SaleItemResponse, len(s.Items))
	for i, item := range s.Items {
		items[i] = SaleItemResponse{
			ID:            item.ID.String(),
			ProductTypeID: item.ProductTypeID.String(),
			Quantity:      item.Quantity,
			Unit:          item.Unit,
			PricePerUnit:  item.PricePerUnit.String(),
			TotalPrice:    item.TotalPrice.String(),
		}
	}

	return SaleResponse{
		ID:                 s.ID.String(),
		Date:               s.Date.Format("2006-01-02"),
		BuyerID:            s.BuyerID.String(),
		PaymentType:        string(s.PaymentType),
		PaymentReceivedNow: s.PaymentReceivedNow.String(),
		TotalAmount:        s.TotalAmount.String(),
		Notes:              s.Notes,
		Items:              items,
		CreatedAt:          s.CreatedAt,
		UpdatedAt:          s.UpdatedAt,
	}
}

// ToSaleListResponse converts sales to a list response.
func ToSaleListResponse(sales []*entity.Sale) SaleListResponse {
	out := make([]SaleResponse, len(sales))
	for i, s := range sales {
		out[i] = ToSaleResponse(s)
	}
	return SaleListResponse{Sales: out}
}
