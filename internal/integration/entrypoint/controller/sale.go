package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/scraptrade/backend/internal/application/usecase/sale"
	"github.com/scraptrade/backend/internal/domain/entity"
	domainerror "github.com/scraptrade/backend/internal/domain/error"
	"github.com/scraptrade/backend/internal/integration/entrypoint/dto"
)

// SaleController handles sale endpoints.
type SaleController struct {
	createUseCase     *sale.CreateSaleUseCase
	listUseCase       *sale.ListSalesUseCase
	getUseCase        *sale.GetSaleUseCase
	updateUseCase     *sale.UpdateSaleUseCase
	deleteUseCase     *sale.DeleteSaleUseCase
	todayStatsUseCase *sale.TodayStatsUseCase
}

// NewSaleController creates a new sale controller instance.
func NewSaleController(
	createUseCase *sale.CreateSaleUseCase,
	listUseCase *sale.ListSalesUseCase,
	getUseCase *sale.GetSaleUseCase,
	updateUseCase *sale.UpdateSaleUseCase,
	deleteUseCase *sale.DeleteSaleUseCase,
	todayStatsUseCase *sale.TodayStatsUseCase,
) *SaleController {
	return &SaleController{
		createUseCase:     createUseCase,
		listUseCase:       listUseCase,
		getUseCase:        getUseCase,
		updateUseCase:     updateUseCase,
		deleteUseCase:     deleteUseCase,
		todayStatsUseCase: todayStatsUseCase,
	}
}

// Create handles POST /sales requests.
func (c *SaleController) Create(ctx *gin.Context) {
	var req dto.CreateSaleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid date format, expected YYYY-MM-DD",
		})
		return
	}

	buyerID, err := uuid.Parse(req.BuyerID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid buyer ID format",
		})
		return
	}

	items := make([]sale.CreateSaleItemInput, 0, len(req.Items))
	for _, itemReq := range req.Items {
		productTypeID, err := uuid.Parse(itemReq.ProductTypeID)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid product type ID format",
			})
			return
		}
		items = append(items, sale.CreateSaleItemInput{
			ProductTypeID: productTypeID,
			Quantity:      itemReq.Quantity,
			Unit:          itemReq.Unit,
			PricePerUnit:  decimal.NewFromFloat(itemReq.PricePerUnit),
		})
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), sale.CreateSaleInput{
		Date:               date,
		BuyerID:            buyerID,
		PaymentType:        entity.PaymentType(req.PaymentType),
		PaymentReceivedNow: decimal.NewFromFloat(req.PaymentReceivedNow),
		Notes:              req.Notes,
		Items:              items,
	})
	if err != nil {
		c.handleSaleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToSaleResponse(output.Sale))
}

// List handles GET /sales requests.
func (c *SaleController) List(ctx *gin.Context) {
	input := sale.ListSalesInput{
		StartDate: parseDateQuery(ctx, "start_date"),
		EndDate:   parseDateQuery(ctx, "end_date"),
		Skip:      parseIntQuery(ctx, "skip"),
		Limit:     parseIntQuery(ctx, "limit"),
	}
	if buyerIDStr := ctx.Query("buyer_id"); buyerIDStr != "" {
		buyerID, err := uuid.Parse(buyerIDStr)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid buyer ID format",
			})
			return
		}
		input.BuyerID = &buyerID
	}
	if paymentType := ctx.Query("payment_type"); paymentType != "" {
		pt := entity.PaymentType(paymentType)
		input.PaymentType = &pt
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleSaleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSaleListResponse(output.Sales))
}

// Get handles GET /sales/:id requests.
func (c *SaleController) Get(ctx *gin.Context) {
	saleID, ok := parseUUIDParam(ctx, "Invalid sale ID format")
	if !ok {
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), sale.GetSaleInput{ID: saleID})
	if err != nil {
		c.handleSaleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSaleResponse(output.Sale))
}

// Update handles PATCH /sales/:id requests.
func (c *SaleController) Update(ctx *gin.Context) {
	saleID, ok := parseUUIDParam(ctx, "Invalid sale ID format")
	if !ok {
		return
	}

	var req dto.UpdateSaleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	input := sale.UpdateSaleInput{
		ID:    saleID,
		Notes: req.Notes,
	}
	if req.Date != nil {
		date, err := time.Parse(dateLayout, *req.Date)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid date format, expected YYYY-MM-DD",
			})
			return
		}
		input.Date = &date
	}
	if req.PaymentType != nil {
		pt := entity.PaymentType(*req.PaymentType)
		input.PaymentType = &pt
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleSaleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSaleResponse(output.Sale))
}

// Delete handles DELETE /sales/:id requests.
func (c *SaleController) Delete(ctx *gin.Context) {
	saleID, ok := parseUUIDParam(ctx, "Invalid sale ID format")
	if !ok {
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), sale.DeleteSaleInput{ID: saleID}); err != nil {
		c.handleSaleError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// TodayStats handles GET /sales/stats/today requests.
func (c *SaleController) TodayStats(ctx *gin.Context) {
	output, err := c.todayStatsUseCase.Execute(ctx.Request.Context())
	if err != nil {
		c.handleSaleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.TodaySaleStatsResponse{
		Date:        output.Date.Format(dateLayout),
		TotalAmount: output.TotalAmount.String(),
	})
}

// handleSaleError maps sale errors to HTTP responses. Sale creation can also
// surface buyer and product type errors.
func (c *SaleController) handleSaleError(ctx *gin.Context, err error) {
	var saleErr *domainerror.SaleError
	if errors.As(err, &saleErr) {
		ctx.JSON(c.getStatusCodeForSaleError(saleErr.Code), dto.ErrorResponse{
			Error: saleErr.Message,
			Code:  string(saleErr.Code),
		})
		return
	}

	var buyerErr *domainerror.BuyerError
	if errors.As(err, &buyerErr) {
		status := http.StatusInternalServerError
		if buyerErr.Code == domainerror.ErrCodeBuyerNotFound {
			status = http.StatusNotFound
		}
		ctx.JSON(status, dto.ErrorResponse{
			Error: buyerErr.Message,
			Code:  string(buyerErr.Code),
		})
		return
	}

	var ptErr *domainerror.ProductTypeError
	if errors.As(err, &ptErr) {
		status := http.StatusInternalServerError
		if ptErr.Code == domainerror.ErrCodeProductTypeNotFound {
			status = http.StatusNotFound
		}
		ctx.JSON(status, dto.ErrorResponse{
			Error: ptErr.Message,
			Code:  string(ptErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForSaleError maps sale error codes to HTTP status codes.
func (c *SaleController) getStatusCodeForSaleError(code domainerror.SaleErrorCode) int {
	switch code {
	case domainerror.ErrCodeSaleNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeSaleItemsRequired,
		domainerror.ErrCodeInvalidPaymentType,
		domainerror.ErrCodeMissingSaleFields:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
