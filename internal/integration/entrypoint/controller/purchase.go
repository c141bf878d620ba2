package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/scraptrade/backend/internal/application/usecase/purchase"
	domainerror "github.com/scraptrade/backend/internal/domain/error"
	"github.com/scraptrade/backend/internal/integration/entrypoint/dto"
)

// PurchaseController handles purchase endpoints.
type PurchaseController struct {
	createUseCase     *purchase.CreatePurchaseUseCase
	listUseCase       *purchase.ListPurchasesUseCase
	getUseCase        *purchase.GetPurchaseUseCase
	updateUseCase     *purchase.UpdatePurchaseUseCase
	deleteUseCase     *purchase.DeletePurchaseUseCase
	todayStatsUseCase *purchase.TodayStatsUseCase
}

// NewPurchaseController creates a new purchase controller instance.
func NewPurchaseController(
	createUseCase *purchase.CreatePurchaseUseCase,
	listUseCase *purchase.ListPurchasesUseCase,
	getUseCase *purchase.GetPurchaseUseCase,
	updateUseCase *purchase.UpdatePurchaseUseCase,
	deleteUseCase *purchase.DeletePurchaseUseCase,
	todayStatsUseCase *purchase.TodayStatsUseCase,
) *PurchaseController {
	return &PurchaseController{
		createUseCase:     createUseCase,
		listUseCase:       listUseCase,
		getUseCase:        getUseCase,
		updateUseCase:     updateUseCase,
		deleteUseCase:     deleteUseCase,
		todayStatsUseCase: todayStatsUseCase,
	}
}

// Create handles POST /purchases requests.
func (c *PurchaseController) Create(ctx *gin.Context) {
	var req dto.CreatePurchaseRequest
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

	output, err := c.createUseCase.Execute(ctx.Request.Context(), purchase.CreatePurchaseInput{
		Date:             date,
		SellerName:       req.SellerName,
		SellerPhone:      req.SellerPhone,
		PickupLocation:   req.PickupLocation,
		ScrapType:        req.ScrapType,
		TransportService: req.TransportService,
		TransportCost:    decimal.NewFromFloat(req.TransportCost),
		Quantity:         req.Quantity,
		Unit:             req.Unit,
		PricePerUnit:     decimal.NewFromFloat(req.PricePerUnit),
		Notes:            req.Notes,
	})
	if err != nil {
		c.handlePurchaseError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToPurchaseResponse(output.Purchase))
}

// List handles GET /purchases requests.
func (c *PurchaseController) List(ctx *gin.Context) {
	input := purchase.ListPurchasesInput{
		StartDate:  parseDateQuery(ctx, "start_date"),
		EndDate:    parseDateQuery(ctx, "end_date"),
		SellerName: ctx.Query("seller_name"),
		Skip:       parseIntQuery(ctx, "skip"),
		Limit:      parseIntQuery(ctx, "limit"),
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handlePurchaseError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToPurchaseListResponse(output.Purchases))
}

// Get handles GET /purchases/:id requests.
func (c *PurchaseController) Get(ctx *gin.Context) {
	purchaseID, ok := parseUUIDParam(ctx, "Invalid purchase ID format")
	if !ok {
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), purchase.GetPurchaseInput{ID: purchaseID})
	if err != nil {
		c.handlePurchaseError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToPurchaseResponse(output.Purchase))
}

// Update handles PATCH /purchases/:id requests.
func (c *PurchaseController) Update(ctx *gin.Context) {
	purchaseID, ok := parseUUIDParam(ctx, "Invalid purchase ID format")
	if !ok {
		return
	}

	var req dto.UpdatePurchaseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	input := purchase.UpdatePurchaseInput{
		ID:               purchaseID,
		SellerName:       req.SellerName,
		SellerPhone:      req.SellerPhone,
		PickupLocation:   req.PickupLocation,
		ScrapType:        req.ScrapType,
		TransportService: req.TransportService,
		Quantity:         req.Quantity,
		Unit:             req.Unit,
		Notes:            req.Notes,
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
	if req.TransportCost != nil {
		transportCost := decimal.NewFromFloat(*req.TransportCost)
		input.TransportCost = &transportCost
	}
	if req.PricePerUnit != nil {
		pricePerUnit := decimal.NewFromFloat(*req.PricePerUnit)
		input.PricePerUnit = &pricePerUnit
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handlePurchaseError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToPurchaseResponse(output.Purchase))
}

// Delete handles DELETE /purchases/:id requests.
func (c *PurchaseController) Delete(ctx *gin.Context) {
	purchaseID, ok := parseUUIDParam(ctx, "Invalid purchase ID format")
	if !ok {
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), purchase.DeletePurchaseInput{ID: purchaseID}); err != nil {
		c.handlePurchaseError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// TodayStats handles GET /purchases/stats/today requests.
func (c *PurchaseController) TodayStats(ctx *gin.Context) {
	output, err := c.todayStatsUseCase.Execute(ctx.Request.Context())
	if err != nil {
		c.handlePurchaseError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.TodayPurchaseStatsResponse{
		Date:      output.Date.Format(dateLayout),
		TotalCost: output.TotalCost.String(),
	})
}

// handlePurchaseError maps purchase errors to HTTP responses.
func (c *PurchaseController) handlePurchaseError(ctx *gin.Context, err error) {
	var purchaseErr *domainerror.PurchaseError
	if errors.As(err, &purchaseErr) {
		ctx.JSON(c.getStatusCodeForPurchaseError(purchaseErr.Code), dto.ErrorResponse{
			Error: purchaseErr.Message,
			Code:  string(purchaseErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForPurchaseError maps purchase error codes to HTTP status codes.
func (c *PurchaseController) getStatusCodeForPurchaseError(code domainerror.PurchaseErrorCode) int {
	switch code {
	case domainerror.ErrCodePurchaseNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeInvalidPurchaseQuantity,
		domainerror.ErrCodeMissingPurchaseFields:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
