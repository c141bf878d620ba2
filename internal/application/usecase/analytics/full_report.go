package analytics

import (
	"context"

	"github.com/scraptrade/backend/internal/application/adapter"
)

// FullReportInput represents the input for the combined analytics report.
type FullReportInput struct {
	Months int
}

// FullReportOutput bundles the monthly series, product sales and top buyers
// into one response.
type FullReportOutput struct {
	MonthlyStats []MonthlyStat
	ProductSales []adapter.ProductSalesRow
	TopBuyers    []TopBuyer
}

// FullReportUseCase composes the three standalone analytics reports.
type FullReportUseCase struct {
	monthlyStats *MonthlyStatsUseCase
	productSales *ProductSalesUseCase
	topBuyers    *TopBuyersUseCase
}

// NewFullReportUseCase creates a new FullReportUseCase instance.
func NewFullReportUseCase(
	monthlyStats *MonthlyStatsUseCase,
	productSales *ProductSalesUseCase,
	topBuyers *TopBuyersUseCase,
) *FullReportUseCase {
	return &FullReportUseCase{
		monthlyStats: monthlyStats,
		productSales: productSales,
		topBuyers:    topBuyers,
	}
}

// Execute runs the three reports with their defaults: the requested month
// window, all-time product sales and the top ten buyers.
func (uc *FullReportUseCase) Execute(ctx context.Context, input FullReportInput) (*FullReportOutput, error) {
	monthly, err := uc.monthlyStats.Execute(ctx, MonthlyStatsInput{Months: input.Months})
	if err != nil {
		return nil, err
	}
	products, err := uc.productSales.Execute(ctx, ProductSalesInput{})
	if err != nil {
		return nil, err
	}
	buyers, err := uc.topBuyers.Execute(ctx, TopBuyersInput{})
	if err != nil {
		return nil, err
	}

	return &FullReportOutput{
		MonthlyStats: monthly.Stats,
		ProductSales: products.Products,
		TopBuyers:    buyers.Buyers,
	}, nil
}
