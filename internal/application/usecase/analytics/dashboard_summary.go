// Package analytics contains cross-entity reporting use cases. Every figure
// is computed from the transactional records at read time; nothing here is
// persisted.
package analytics

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/scraptrade/backend/internal/application/adapter"
)

// DashboardSummaryOutput represents the headline business figures.
type DashboardSummaryOutput struct {
	TodayPurchases  decimal.Decimal
	TodaySales      decimal.Decimal
	TodayExpenses   decimal.Decimal
	TotalPurchases  decimal.Decimal
	TotalSales      decimal.Decimal
	TotalExpenses   decimal.Decimal
	TotalProfit     decimal.Decimal
	TotalReceivable decimal.Decimal
}

// DashboardSummaryUseCase aggregates the all-time and today totals shown on
// the dashboard.
type DashboardSummaryUseCase struct {
	purchaseRepo adapter.PurchaseRepository
	saleRepo     adapter.SaleRepository
	expenseRepo  adapter.ExpenseRepository
	buyerRepo    adapter.BuyerRepository
	paymentRepo  adapter.PaymentRepository
}

// NewDashboardSummaryUseCase creates a new DashboardSummaryUseCase instance.
func NewDashboardSummaryUseCase(
	purchaseRepo adapter.PurchaseRepository,
	saleRepo adapter.SaleRepository,
	expenseRepo adapter.ExpenseRepository,
	buyerRepo adapter.BuyerRepository,
	paymentRepo adapter.PaymentRepository,
) *DashboardSummaryUseCase {
	return &DashboardSummaryUseCase{
		purchaseRepo: purchaseRepo,
		saleRepo:     saleRepo,
		expenseRepo:  expenseRepo,
		buyerRepo:    buyerRepo,
		paymentRepo:  paymentRepo,
	}
}

// Execute computes the summary. Profit is sales minus purchases minus
// expenses; receivable sums the outstanding balance of every buyer, so
// overpaid buyers reduce it.
func (uc *DashboardSummaryUseCase) Execute(ctx context.Context) (*DashboardSummaryOutput, error) {
	totalPurchases, err := uc.purchaseRepo.SumTotalCost(ctx, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to sum purchases: %w", err)
	}
	totalSales, err := uc.saleRepo.SumAmount(ctx, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to sum sales: %w", err)
	}
	totalExpenses, err := uc.expenseRepo.SumAmount(ctx, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to sum expenses: %w", err)
	}

	receivable, err := uc.totalReceivable(ctx)
	if err != nil {
		return nil, err
	}

	today := todayUTC()
	todayPurchases, err := uc.purchaseRepo.SumTotalCost(ctx, &today, &today)
	if err != nil {
		return nil, fmt.Errorf("failed to sum today's purchases: %w", err)
	}
	todaySales, err := uc.saleRepo.SumAmount(ctx, &today, &today)
	if err != nil {
		return nil, fmt.Errorf("failed to sum today's sales: %w", err)
	}
	todayExpenses, err := uc.expenseRepo.SumAmount(ctx, &today, &today)
	if err != nil {
		return nil, fmt.Errorf("failed to sum today's expenses: %w", err)
	}

	return &DashboardSummaryOutput{
		TodayPurchases:  todayPurchases,
		TodaySales:      todaySales,
		TodayExpenses:   todayExpenses,
		TotalPurchases:  totalPurchases,
		TotalSales:      totalSales,
		TotalExpenses:   totalExpenses,
		TotalProfit:     totalSales.Sub(totalPurchases).Sub(totalExpenses),
		TotalReceivable: receivable,
	}, nil
}

func (uc *DashboardSummaryUseCase) totalReceivable(ctx context.Context) (decimal.Decimal, error) {
	buyers, err := uc.buyerRepo.FindAll(ctx, adapter.BuyerFilter{})
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to list buyers: %w", err)
	}
	saleTotals, err := uc.saleRepo.TotalsByBuyer(ctx)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to aggregate sales by buyer: %w", err)
	}
	paymentTotals, err := uc.paymentRepo.TotalsByBuyer(ctx)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to aggregate payments by buyer: %w", err)
	}

	receivable := decimal.Zero
	for _, buyer := range buyers {
		receivable = receivable.Add(buyer.OutstandingBalance(saleTotals[buyer.ID], paymentTotals[buyer.ID]))
	}
	return receivable, nil
}
