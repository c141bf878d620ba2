// Package buyer contains buyer-related use cases, including the ledger engine.
package buyer

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/scraptrade/backend/internal/application/adapter"
	"github.com/scraptrade/backend/internal/domain/entity"
	domainerror "github.com/scraptrade/backend/internal/domain/error"
)

// Ledger entry types.
const (
	LedgerEntryTypeSale    = "SALE"
	LedgerEntryTypePayment = "PAYMENT"
)

// LedgerEntry is one row of a buyer's ledger: a sale (debit) or a payment
// (credit) with the running balance after it.
type LedgerEntry struct {
	Date        time.Time
	Type        string
	Description string
	Debit       decimal.Decimal
	Credit      decimal.Decimal
	Balance     decimal.Decimal
}

// GetLedgerInput represents the input for building a buyer ledger.
type GetLedgerInput struct {
	BuyerID   uuid.UUID
	StartDate *time.Time
	EndDate   *time.Time
}

// GetLedgerOutput represents a buyer's ledger over the requested window.
type GetLedgerOutput struct {
	Buyer          *entity.Buyer
	Entries        []LedgerEntry
	OpeningBalance decimal.Decimal
	ClosingBalance decimal.Decimal
}

// GetLedgerUseCase builds a buyer's chronological ledger. Nothing is
// persisted; the ledger is recomputed on every read.
type GetLedgerUseCase struct {
	buyerRepo   adapter.BuyerRepository
	saleRepo    adapter.SaleRepository
	paymentRepo adapter.PaymentRepository
}

// NewGetLedgerUseCase creates a new GetLedgerUseCase instance.
func NewGetLedgerUseCase(
	buyerRepo adapter.BuyerRepository,
	saleRepo adapter.SaleRepository,
	paymentRepo adapter.PaymentRepository,
) *GetLedgerUseCase {
	return &GetLedgerUseCase{
		buyerRepo:   buyerRepo,
		saleRepo:    saleRepo,
		paymentRepo: paymentRepo,
	}
}

// ledgerRow is an internal merge record before the balance fold.
type ledgerRow struct {
	date        time.Time
	entryType   string
	description string
	debit       decimal.Decimal
	credit      decimal.Decimal
	createdAt   time.Time
	id          uuid.UUID
}

// Execute builds the ledger. Sales debit and payments credit the balance,
// which is seeded from the buyer's opening balance.
//
// The closing balance mixes the global opening balance with the filtered
// sums, so when a date range excludes earlier transactions it intentionally
// differs from the last entry's running balance, which is local to the
// window.
func (uc *GetLedgerUseCase) Execute(ctx context.Context, input GetLedgerInput) (*GetLedgerOutput, error) {
	buyer, err := uc.buyerRepo.FindByID(ctx, input.BuyerID)
	if err != nil {
		if errors.Is(err, domainerror.ErrBuyerNotFound) {
			return nil, domainerror.NewBuyerError(
				domainerror.ErrCodeBuyerNotFound,
				"buyer not found",
				domainerror.ErrBuyerNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find buyer: %w", err)
	}

	sales, err := uc.saleRepo.FindByBuyerInRange(ctx, input.BuyerID, input.StartDate, input.EndDate)
	if err != nil {
		return nil, fmt.Errorf("failed to load sales: %w", err)
	}
	payments, err := uc.paymentRepo.FindByBuyerInRange(ctx, input.BuyerID, input.StartDate, input.EndDate)
	if err != nil {
		return nil, fmt.Errorf("failed to load payments: %w", err)
	}

	rows := make([]ledgerRow, 0, len(sales)+len(payments))
	totalSales := decimal.Zero
	totalPayments := decimal.Zero

	for _, sale := range sales {
		rows = append(rows, ledgerRow{
			date:        sale.Date,
			entryType:   LedgerEntryTypeSale,
			description: fmt.Sprintf("Sale #%s - %s", shortID(sale.ID), sale.PaymentType),
			debit:       sale.TotalAmount,
			credit:      decimal.Zero,
			createdAt:   sale.CreatedAt,
			id:          sale.ID,
		})
		totalSales = totalSales.Add(sale.TotalAmount)
	}

	for _, payment := range payments {
		rows = append(rows, ledgerRow{
			date:        payment.Date,
			entryType:   LedgerEntryTypePayment,
			description: fmt.Sprintf("Payment - %s", payment.PaymentMethod),
			debit:       decimal.Zero,
			credit:      payment.Amount,
			createdAt:   payment.CreatedAt,
			id:          payment.ID,
		})
		totalPayments = totalPayments.Add(payment.Amount)
	}

	// Deterministic ordering: date, then sales before payments, then creation
	// time, then id. Same-date ordering is contractual here, not an accident
	// of retrieval order.
	sort.SliceStable(rows, func(i, j int) bool {
		if !rows[i].date.Equal(rows[j].date) {
			return rows[i].date.Before(rows[j].date)
		}
		if rows[i].entryType != rows[j].entryType {
			return rows[i].entryType == LedgerEntryTypeSale
		}
		if !rows[i].createdAt.Equal(rows[j].createdAt) {
			return rows[i].createdAt.Before(rows[j].createdAt)
		}
		return rows[i].id.String() < rows[j].id.String()
	})

	entries := make([]LedgerEntry, 0, len(rows))
	balance := buyer.OpeningBalance
	for _, row := range rows {
		balance = balance.Add(row.debit).Sub(row.credit)
		entries = append(entries, LedgerEntry{
			Date:        row.date,
			Type:        row.entryType,
			Description: row.description,
			Debit:       row.debit,
			Credit:      row.credit,
			Balance:     balance,
		})
	}

	closingBalance := buyer.OpeningBalance.Add(totalSales).Sub(totalPayments)

	return &GetLedgerOutput{
		Buyer:          buyer,
		Entries:        entries,
		OpeningBalance: buyer.OpeningBalance,
		ClosingBalance: closingBalance,
	}, nil
}

// shortID renders the first uuid group for human-readable references.
func shortID(id uuid.UUID) string {
	return id.String()[:8]
}
