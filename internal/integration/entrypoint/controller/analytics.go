package controller

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/scraptrade/backend/internal/application/usecase/analytics"
	"github.com/scraptrade/backend/internal/integration/entrypoint/dto"
)

// AnalyticsController handles reporting endpoints.
type AnalyticsController struct {
	dashboardUseCase    *analytics.DashboardSummaryUseCase
	monthlyStatsUseCase *analytics.MonthlyStatsUseCase
	productSalesUseCase *analytics.ProductSalesUseCase
	topBuyersUseCase    *analytics.TopBuyersUseCase
	fullReportUseCase   *analytics.FullReportUseCase
}

// NewAnalyticsController creates a new analytics controller instance.
func NewAnalyticsController(
	dashboardUseCase *analytics.DashboardSummaryUseCase,
	monthlyStatsUseCase *analytics.MonthlyStatsUseCase,
	productSalesUseCase *analytics.ProductSalesUseCase,
	topBuyersUseCase *analytics.TopBuyersUseCase,
	fullReportUseCase *analytics.FullReportUseCase,
) *AnalyticsController {
	return &AnalyticsController{
		dashboardUseCase:    dashboardUseCase,
		monthlyStatsUseCase: monthlyStatsUseCase,
		productSalesUseCase: productSalesUseCase,
		topBuyersUseCase:    topBuyersUseCase,
		fullReportUseCase:   fullReportUseCase,
	}
}

// DashboardSummary handles GET /analytics/dashboard-summary requests.
func (c *AnalyticsController) DashboardSummary(ctx *gin.Context) {
	output, err := c.dashboardUseCase.Execute(ctx.Request.Context())
	if err != nil {
		c.handleAnalyticsError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToDashboardSummaryResponse(output))
}

// MonthlyStats handles GET /analytics/monthly-stats requests.
func (c *AnalyticsController) MonthlyStats(ctx *gin.Context) {
	output, err := c.monthlyStatsUseCase.Execute(ctx.Request.Context(), analytics.MonthlyStatsInput{
		Months: parseIntQuery(ctx, "months"),
	})
	if err != nil {
		c.handleAnalyticsError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"monthly_stats": dto.ToMonthlyStatsResponse(output.Stats)})
}

// ProductSales handles GET /analytics/product-sales requests.
func (c *AnalyticsController) ProductSales(ctx *gin.Context) {
	output, err := c.productSalesUseCase.Execute(ctx.Request.Context(), analytics.ProductSalesInput{
		StartDate: parseDateQuery(ctx, "start_date"),
		EndDate:   parseDateQuery(ctx, "end_date"),
	})
	if err != nil {
		c.handleAnalyticsError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"product_sales": dto.ToProductSalesResponse(output.Products)})
}

// TopBuyers handles GET /analytics/top-buyers requests.
func (c *AnalyticsController) TopBuyers(ctx *gin.Context) {
	output, err := c.topBuyersUseCase.Execute(ctx.Request.Context(), analytics.TopBuyersInput{
		Limit: parseIntQuery(ctx, "limit"),
	})
	if err != nil {
		c.handleAnalyticsError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"top_buyers": dto.ToTopBuyersResponse(output.Buyers)})
}

// FullReport handles GET /analytics/full-report requests.
func (c *AnalyticsController) FullReport(ctx *gin.Context) {
	output, err := c.fullReportUseCase.Execute(ctx.Request.Context(), analytics.FullReportInput{
		Months: parseIntQuery(ctx, "months"),
	})
	if err != nil {
		c.handleAnalyticsError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToFullReportResponse(output))
}

// handleAnalyticsError logs the failure and responds with a generic 500. The
// reporting use cases only surface repository errors, so there is nothing to
// map to a more specific status.
func (c *AnalyticsController) handleAnalyticsError(ctx *gin.Context, err error) {
	slog.Error("Analytics request failed", "path", ctx.FullPath(), "error", err)
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}
