package dto

import (
	"time"

	"github.com/scraptrade/backend/internal/application/usecase/buyer"
	"github.com/scraptrade/backend/internal/domain/entity"
)

// CreateBuyerRequest represents the request body for buyer creation.
type CreateBuyerRequest struct {
	Name           string  `json:"name" binding:"required,min=1,max=255"`
	Phone          string  `json:"phone,omitempty"`
	Address        string  `json:"address,omitempty"`
	Notes          string  `json:"notes,omitempty"`
	OpeningBalance float64 `json:"opening_balance"`
}

// UpdateBuyerRequest represents the request body for buyer update.
type UpdateBuyerRequest struct {
	Name           *string  `json:"name,omitempty" binding:"omitempty,min=1,max=255"`
	Phone          *string  `json:"phone,omitempty"`
	Address        *string  `json:"address,omitempty"`
	Notes          *string  `json:"notes,omitempty"`
	OpeningBalance *float64 `json:"opening_balance,omitempty"`
}

// AddPaymentRequest represents the request body for recording a payment.
type AddPaymentRequest struct {
	Date          string  `json:"date" binding:"required"`
	Amount        float64 `json:"amount" binding:"required,gt=0"`
	PaymentMethod string  `json:"payment_method,omitempty"`
	Notes         string  `json:"notes,omitempty"`
}

// BuyerResponse represents a single buyer in API responses.
type BuyerResponse struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Phone          string    `json:"phone"`
	Address        string    `json:"address"`
	Notes          string    `json:"notes"`
	OpeningBalance string    `json:"opening_balance"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// BuyerWithBalanceResponse represents a buyer with computed balance figures.
type BuyerWithBalanceResponse struct {
	BuyerResponse
	TotalSales         string `json:"total_sales"`
	TotalPayments      string `json:"total_payments"`
	OutstandingBalance string `json:"outstanding_balance"`
}

// BuyerListResponse represents the response for listing buyers.
type BuyerListResponse struct {
	Buyers []BuyerWithBalanceResponse `json:"buyers"`
}

// PaymentResponse represents a single payment in API responses.
type PaymentResponse struct {
	ID            string    `json:"id"`
	BuyerID       string    `json:"buyer_id"`
	Date          string    `json:"date"`
	Amount        string    `json:"amount"`
	PaymentMethod string    `json:"payment_method"`
	Notes         string    `json:"notes"`
	CreatedAt     time.Time `json:"created_at"`
}

// PaymentListResponse represents the response for listing payments.
type PaymentListResponse struct {
	Payments []PaymentResponse `json:"payments"`
}

// LedgerEntryResponse represents one ledger row in API responses.
type LedgerEntryResponse struct {
	Date        string `json:"date"`
	Type        string `json:"type"`
	Description string `json:"description"`
	Debit       string `json:"debit"`
	Credit      string `json:"credit"`
	Balance     string `json:"balance"`
}

// LedgerResponse represents a buyer's ledger in API responses.
type LedgerResponse struct {
	BuyerID        string                `json:"buyer_id"`
	BuyerName      string                `json:"buyer_name"`
	OpeningBalance string                `json:"opening_balance"`
	ClosingBalance string                `json:"closing_balance"`
	Entries        []LedgerEntryResponse `json:"entries"`
}

// BuyerSummaryResponse is one compact row of the buyer picker list.
type BuyerSummaryResponse struct {
	ID                 string `json:"id"`
	Name               string `json:"name"`
	Phone              string `json:"phone"`
	OutstandingBalance string `json:"outstanding_balance"`
}

// ToBuyerResponse converts a domain Buyer entity to a BuyerResponse DTO.
func ToBuyerResponse(b *entity.Buyer) BuyerResponse {
	return BuyerResponse{
		ID:             b.ID.String(),
		Name:           b.Name,
		Phone:          b.Phone,
		Address:        b.Address,
		Notes:          b.Notes,
		OpeningBalance: b.OpeningBalance.String(),
		CreatedAt:      b.CreatedAt,
		UpdatedAt:      b.UpdatedAt,
	}
}

// ToBuyerWithBalanceResponse converts a BuyerWithBalance to its DTO.
func ToBuyerWithBalanceResponse(bw *entity.BuyerWithBalance) BuyerWithBalanceResponse {
	return BuyerWithBalanceResponse{
		BuyerResponse:      ToBuyerResponse(bw.Buyer),
		TotalSales:         bw.TotalSales.String(),
		TotalPayments:      bw.TotalPayments.String(),
		OutstandingBalance: bw.OutstandingBalance.String(),
	}
}

// ToBuyerListResponse converts buyers with balances to a list response.
func ToBuyerListResponse(buyers []*entity.BuyerWithBalance) BuyerListResponse {
	out := make([]BuyerWithBalanceResponse, len(buyers))
	for i, bw := range buyers {
		out[i] = ToBuyerWithBalanceResponse(bw)
	}
	return BuyerListResponse{Buyers: out}
}

// ToBuyerSummaryList converts buyers with balances to the compact dropdown
// rows returned by GET /buyers/list.
func ToBuyerSummaryList(buyers []*entity.BuyerWithBalance) []BuyerSummaryResponse {
	out := make([]BuyerSummaryResponse, len(buyers))
	for i, bw := range buyers {
		out[i] = BuyerSummaryResponse{
			ID:                 bw.Buyer.ID.String(),
			Name:               bw.Buyer.Name,
			Phone:              bw.Buyer.Phone,
			OutstandingBalance: bw.OutstandingBalance.String(),
		}
	}
	return out
}

// ToPaymentResponse converts a domain Payment entity to a PaymentResponse DTO.
func ToPaymentResponse(p *entity.Payment) PaymentResponse {
	return PaymentResponse{
		ID:            p.ID.String(),
		BuyerID:       p.BuyerID.String(),
		Date:          p.Date.Format("2006-01-02"),
		Amount:        p.Amount.String(),
		PaymentMethod: p.PaymentMethod,
		Notes:         p.Notes,
		CreatedAt:     p.CreatedAt,
	}
}

// ToPaymentListResponse converts payments to a list response.
func ToPaymentListResponse(payments []*entity.Payment) PaymentListResponse {
	out := make([]PaymentResponse, len(payments))
	for i, p := range payments {
		out[i] = ToPaymentResponse(p)
	}
	return PaymentListResponse{Payments: out}
}

// ToLedgerResponse converts ledger output to its DTO.
func ToLedgerResponse(output *buyer.GetLedgerOutput) LedgerResponse {
	entries := make([]LedgerEntryResponse, len(output.Entries))
	for i, e := range output.Entries {
		entries[i] = LedgerEntryResponse{
			Date:        e.Date.Format("2006-01-02"),
			Type:        e.Type,
			Description: e.Description,
			Debit:       e.Debit.String(),
			Credit:      e.Credit.String(),
			Balance:     e.Balance.String(),
		}
	}

	return LedgerResponse{
		BuyerID:        output.Buyer.ID.String(),
		BuyerName:      output.Buyer.Name,
		OpeningBalance: output.OpeningBalance.String(),
		ClosingBalance: output.ClosingBalance.String(),
		Entries:        entries,
	}
}
