package dto

import (
	"time"

	"github.com/scraptrade/backend/internal/domain/entity"
)

// CreatePurchaseRequest represents the request body for recording a purchase.
type CreatePurchaseRequest struct {
	Date             string  `json:"date" binding:"required"`
	SellerName       string  `json:"seller_name" binding:"required,min=1,max=255"`
	SellerPhone      string  `json:"seller_phone,omitempty"`
	PickupLocation   string  `json:"pickup_location,omitempty"`
	ScrapType        string  `json:"scrap_type" binding:"required,min=1,max=100"`
	TransportService string  `json:"transport_service,omitempty"`
	TransportCost    float64 `json:"transport_cost" binding:"omitempty,gte=0"`
	Quantity         float64 `json:"quantity" binding:"required,gt=0"`
	Unit             string  `json:"unit,omitempty"`
	PricePerUnit     float64 `json:"price_per_unit" binding:"required,gte=0"`
	Notes            string  `json:"notes,omitempty"`
}

// UpdatePurchaseRequest represents the request body for updating a purchase.
type UpdatePurchaseRequest struct {
	Date             *string  `json:"date,omitempty"`
	SellerName       *string  `json:"seller_name,omitempty" binding:"omitempty,min=1,max=255"`
	SellerPhone      *string  `json:"seller_phone,omitempty"`
	PickupLocation   *string  `json:"pickup_location,omitempty"`
	ScrapType        *string  `json:"scrap_type,omitempty" binding:"omitempty,min=1,max=100"`
	TransportService *string  `json:"transport_service,omitempty"`
	TransportCost    *float64 `json:"transport_cost,omitempty" binding:"omitempty,gte=0"`
	Quantity         *float64 `json:"quantity,omitempty" binding:"omitempty,gt=0"`
	Unit             *string  `json:"unit,omitempty"`
	PricePerUnit     *float64 `json:"price_per_unit,omitempty" binding:"omitempty,gte=0"`
	Notes            *string  `json:"notes,omitempty"`
}

// PurchaseResponse represents a single purchase in API responses.
type PurchaseResponse struct {
	ID                string    `json:"id"`
	Date              string    `json:"date"`
	SellerName        string    `json:"seller_name"`
	SellerPhone       string    `json:"seller_phone"`
	PickupLocation    string    `json:"pickup_location"`
	ScrapType         string    `json:"scrap_type"`
	TransportService  string    `json:"transport_service"`
	TransportCost     string    `json:"transport_cost"`
	Quantity          float64   `json:"quantity"`
	Unit              string    `json:"unit"`
	PricePerUnit      string    `json:"price_per_unit"`
	TotalPurchaseCost string    `json:"total_purchase_cost"`
	Notes             string    `json:"notes"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// PurchaseListResponse represents the response for listing purchases.
type PurchaseListResponse struct {
	Purchases []PurchaseResponse `json:"purchases"`
}

// TodayPurchaseStatsResponse represents today's purchase totals.
type TodayPurchaseStatsResponse struct {
	Date      string `json:"date"`
	TotalCost string `json:"total_cost"`
}

// ToPurchaseResponse converts a domain Purchase entity to its DTO.
func ToPurchaseResponse(p *entity.Purchase) PurchaseResponse {
	return PurchaseResponse{
		ID:                p.ID.String(),
		Date:              p.Date.Format("2006-01-02"),
		SellerName:        p.SellerName,
		SellerPhone:       p.SellerPhone,
		PickupLocation:    p.PickupLocation,
		ScrapType:         p.ScrapType,
		TransportService:  p.TransportService,
		TransportCost:     p.TransportCost.String(),
		Quantity:          p.Quantity,
		Unit:              p.Unit,
		PricePerUnit:      p.PricePerUnit.String(),
		TotalPurchaseCost: p.TotalPurchaseCost.String(),
		Notes:             p.Notes,
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
	}
}

// ToPurchaseListResponse converts purchases to a list response.
func ToPurchaseListResponse(purchases []*entity.Purchase) PurchaseListResponse {
	out := make([]PurchaseResponse, len(purchases))
	for i, p := range purchases {
		out[i] = ToPurchaseResponse(p)
	}
	return PurchaseListResponse{Purchases: out}
}
