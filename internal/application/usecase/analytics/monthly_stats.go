package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/scraptrade/backend/internal/application/adapter"
	"github.com/scraptrade/backend/internal/domain/entity"
)

// Month window bounds.
const (
	defaultMonths = 12
	maxMonths     = 24
)

// MonthlyStatsInput represents the input for the monthly chart series.
type MonthlyStatsInput struct {
	Months int
}

// MonthlyStat is one month of aggregated figures.
type MonthlyStat struct {
	Month     string
	Purchases decimal.Decimal
	Sales     decimal.Decimal
	Expenses  decimal.Decimal
	Profit    decimal.Decimal
}

// MonthlyStatsOutput represents the chart series, oldest month first.
type MonthlyStatsOutput struct {
	Stats []MonthlyStat
}

// MonthlyStatsUseCase builds the trailing monthly purchase/sale/expense
// series for charts. Months without activity appear with zero values.
type MonthlyStatsUseCase struct {
	purchaseRepo adapter.PurchaseRepository
	saleRepo     adapter.SaleRepository
	expenseRepo  adapter.ExpenseRepository
}

// NewMonthlyStatsUseCase creates a new MonthlyStatsUseCase instance.
func NewMonthlyStatsUseCase(
	purchaseRepo adapter.PurchaseRepository,
	saleRepo adapter.SaleRepository,
	expenseRepo adapter.ExpenseRepository,
) *MonthlyStatsUseCase {
	return &MonthlyStatsUseCase{
		purchaseRepo: purchaseRepo,
		saleRepo:     saleRepo,
		expenseRepo:  expenseRepo,
	}
}

// Execute returns the last N calendar months ending at the current month.
// The month grouping happens here rather than in SQL so that the same code
// serves every supported database.
func (uc *MonthlyStatsUseCase) Execute(ctx context.Context, input MonthlyStatsInput) (*MonthlyStatsOutput, error) {
	months := input.Months
	if months <= 0 {
		months = defaultMonths
	}
	if months > maxMonths {
		months = maxMonths
	}

	now := todayUTC()
	firstMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -(months - 1), 0)

	purchaseTotals, err := uc.monthlyPurchases(ctx, firstMonth)
	if err != nil {
		return nil, err
	}
	saleTotals, err := uc.monthlySales(ctx, firstMonth)
	if err != nil {
		return nil, err
	}
	expenseTotals, err := uc.monthlyExpenses(ctx, firstMonth)
	if err != nil {
		return nil, err
	}

	stats := make([]MonthlyStat, 0, months)
	for i := 0; i < months; i++ {
		month := firstMonth.AddDate(0, i, 0)
		key := monthKey(month)
		purchases := purchaseTotals[key]
		sales := saleTotals[key]
		expenses := expenseTotals[key]
		stats = append(stats, MonthlyStat{
			Month:     month.Format("Jan 2006"),
			Purchases: purchases,
			Sales:     sales,
			Expenses:  expenses,
			Profit:    sales.Sub(purchases).Sub(expenses),
		})
	}

	return &MonthlyStatsOutput{Stats: stats}, nil
}

func (uc *MonthlyStatsUseCase) monthlyPurchases(ctx context.Context, since time.Time) (map[string]decimal.Decimal, error) {
	purchases, err := uc.purchaseRepo.FindAll(ctx, adapter.PurchaseFilter{StartDate: &since})
	if err != nil {
		return nil, fmt.Errorf("failed to load purchases: %w", err)
	}
	totals := make(map[string]decimal.Decimal)
	for _, p := range purchases {
		key := monthKey(p.Date)
		totals[key] = totals[key].Add(p.TotalPurchaseCost)
	}
	return totals, nil
}

func (uc *MonthlyStatsUseCase) monthlySales(ctx context.Context, since time.Time) (map[string]decimal.Decimal, error) {
	sales, err := uc.saleRepo.FindAll(ctx, adapter.SaleFilter{StartDate: &since})
	if err != nil {
		return nil, fmt.Errorf("failed to load sales: %w", err)
	}
	totals := make(map[string]decimal.Decimal)
	for _, s := range sales {
		key := monthKey(s.Date)
		totals[key] = totals[key].Add(s.TotalAmount)
	}
	return totals, nil
}

func (uc *MonthlyStatsUseCase) monthlyExpenses(ctx context.Context, since time.Time) (map[string]decimal.Decimal, error) {
	expenses, err := uc.expenseRepo.FindAll(ctx, adapter.ExpenseFilter{StartDate: &since})
	if err != nil {
		return nil, fmt.Errorf("failed to load expenses: %w", err)
	}
	totals := make(map[string]decimal.Decimal)
	for _, e := range expenses {
		key := monthKey(e.Date)
		totals[key] = totals[key].Add(e.Amount)
	}
	return totals, nil
}

// monthKey buckets a date into its calendar month.
func monthKey(t time.Time) string {
	return t.UTC().Format("2006-01")
}

// todayUTC is the current date at midnight UTC.
func todayUTC() time.Time {
	return entity.NormalizeDate(time.Now())
}
