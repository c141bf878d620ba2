package dto

import (
	"github.com/scraptrade/backend/internal/application/adapter"
	"github.com/scraptrade/backend/internal/application/usecase/analytics"
)

// DashboardSummaryResponse represents the dashboard headline figures.
type DashboardSummaryResponse struct {
	TodayPurchases  string `json:"today_purchases"`
	TodaySales      string `json:"today_sales"`
	TodayExpenses   string `json:"today_expenses"`
	TotalPurchases  string `json:"total_purchases"`
	TotalSales      string `json:"total_sales"`
	TotalExpenses   string `json:"total_expenses"`
	TotalProfit     string `json:"total_profit"`
	TotalReceivable string `json:"total_receivable"`
}

// MonthlyStatResponse is one month of the chart series.
type MonthlyStatResponse struct {
	Month     string `json:"month"`
	Purchases string `json:"purchases"`
	Sales     string `json:"sales"`
	Expenses  string `json:"expenses"`
	Profit    string `json:"profit"`
}

// ProductSalesResponse is one aggregated product row.
type ProductSalesResponse struct {
	ProductName   string  `json:"product_name"`
	TotalQuantity float64 `json:"total_quantity"`
	TotalAmount   string  `json:"total_amount"`
}

// TopBuyerResponse is one ranked buyer with money owed.
type TopBuyerResponse struct {
	BuyerName         string `json:"buyer_name"`
	OutstandingAmount string `json:"outstanding_amount"`
}

// FullReportResponse bundles the analytics reports into one payload.
type FullReportResponse struct {
	MonthlyStats []MonthlyStatResponse  `json:"monthly_stats"`
	ProductSales []ProductSalesResponse `json:"product_sales"`
	TopBuyers    []TopBuyerResponse     `json:"top_buyers"`
}

// ToDashboardSummaryResponse converts the dashboard output to its DTO.
func ToDashboardSummaryResponse(output *analytics.DashboardSummaryOutput) DashboardSummaryResponse {
	return DashboardSummaryResponse{
		TodayPurchases:  output.TodayPurchases.String(),
		TodaySales:      output.TodaySales.String(),
		TodayExpenses:   output.TodayExpenses.String(),
		TotalPurchases:  output.TotalPurchases.String(),
		TotalSales:      output.TotalSales.String(),
		TotalExpenses:   output.TotalExpenses.String(),
		TotalProfit:     output.TotalProfit.String(),
		TotalReceivable: output.TotalReceivable.String(),
	}
}

// ToMonthlyStatsResponse converts the monthly series to its DTO.
func ToMonthlyStatsResponse(stats []analytics.MonthlyStat) []MonthlyStatResponse {
	out := make([]MonthlyStatResponse, len(stats))
	for i, s := range stats {
		out[i] = MonthlyStatResponse{
			Month:     s.Month,
			Purchases: s.Purchases.String(),
			Sales:     s.Sales.String(),
			Expenses:  s.Expenses.String(),
			Profit:    s.Profit.String(),
		}
	}
	return out
}

// ToProductSalesResponse converts aggregated product rows to their DTO.
func ToProductSalesResponse(rows []adapter.ProductSalesRow) []ProductSalesResponse {
	out := make([]ProductSalesResponse, len(rows))
	for i, row := range rows {
		out[i] = ProductSalesResponse{
			ProductName:   row.ProductName,
			TotalQuantity: row.TotalQuantity,
			TotalAmount:   row.TotalAmount.String(),
		}
	}
	return out
}

// ToTopBuyersResponse converts the top-buyer ranking to its DTO.
func ToTopBuyersResponse(buyers []analytics.TopBuyer) []TopBuyerResponse {
	out := make([]TopBuyerResponse, len(buyers))
	for i, b := range buyers {
		out[i] = TopBuyerResponse{
			BuyerName:         b.BuyerName,
			OutstandingAmount: b.OutstandingAmount.String(),
		}
	}
	return out
}

// ToFullReportResponse converts the combined report to its DTO.
func ToFullReportResponse(output *analytics.FullReportOutput) FullReportResponse {
	return FullReportResponse{
		MonthlyStats: ToMonthlyStatsResponse(output.MonthlyStats),
		ProductSales: ToProductSalesResponse(output.ProductSales),
		TopBuyers:    ToTopBuyersResponse(output.TopBuyers),
	}
}
