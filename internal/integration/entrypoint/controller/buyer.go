package controller

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/scraptrade/backend/internal/application/usecase/buyer"
	domainerror "github.com/scraptrade/backend/internal/domain/error"
	"github.com/scraptrade/backend/internal/integration/entrypoint/dto"
)

// dateLayout is the wire format for all date fields.
const dateLayout = "2006-01-02"

// BuyerController handles buyer endpoints.
type BuyerController struct {
	createUseCase       *buyer.CreateBuyerUseCase
	listUseCase         *buyer.ListBuyersUseCase
	getUseCase          *buyer.GetBuyerUseCase
	updateUseCase       *buyer.UpdateBuyerUseCase
	deleteUseCase       *buyer.DeleteBuyerUseCase
	getLedgerUseCase    *buyer.GetLedgerUseCase
	addPaymentUseCase   *buyer.AddPaymentUseCase
	listPaymentsUseCase *buyer.ListPaymentsUseCase
}

// NewBuyerController creates a new buyer controller instance.
func NewBuyerController(
	createUseCase *buyer.CreateBuyerUseCase,
	listUseCase *buyer.ListBuyersUseCase,
	getUseCase *buyer.GetBuyerUseCase,
	updateUseCase *buyer.UpdateBuyerUseCase,
	deleteUseCase *buyer.DeleteBuyerUseCase,
	getLedgerUseCase *buyer.GetLedgerUseCase,
	addPaymentUseCase *buyer.AddPaymentUseCase,
	listPaymentsUseCase *buyer.ListPaymentsUseCase,
) *BuyerController {
	return &BuyerController{
		createUseCase:       createUseCase,
		listUseCase:         listUseCase,
		getUseCase:          getUseCase,
		updateUseCase:       updateUseCase,
		deleteUseCase:       deleteUseCase,
		getLedgerUseCase:    getLedgerUseCase,
		addPaymentUseCase:   addPaymentUseCase,
		listPaymentsUseCase: listPaymentsUseCase,
	}
}

// Create handles POST /buyers requests.
func (c *BuyerController) Create(ctx *gin.Context) {
	var req dto.CreateBuyerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), buyer.CreateBuyerInput{
		Name:           req.Name,
		Phone:          req.Phone,
		Address:        req.Address,
		Notes:          req.Notes,
		OpeningBalance: decimal.NewFromFloat(req.OpeningBalance),
	})
	if err != nil {
		c.handleBuyerError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToBuyerResponse(output.Buyer))
}

// List handles GET /buyers requests.
func (c *BuyerController) List(ctx *gin.Context) {
	input := buyer.ListBuyersInput{
		Search: ctx.Query("search"),
		Skip:   parseIntQuery(ctx, "skip"),
		Limit:  parseIntQuery(ctx, "limit"),
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleBuyerError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBuyerListResponse(output.Buyers))
}

// ListSimple handles GET /buyers/list requests. It returns every buyer as a
// compact row for dropdowns, without pagination.
func (c *BuyerController) ListSimple(ctx *gin.Context) {
	output, err := c.listUseCase.Execute(ctx.Request.Context(), buyer.ListBuyersInput{Limit: 500})
	if err != nil {
		c.handleBuyerError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBuyerSummaryList(output.Buyers))
}

// Get handles GET /buyers/:id requests.
func (c *BuyerController) Get(ctx *gin.Context) {
	buyerID, ok := parseUUIDParam(ctx, "Invalid buyer ID format")
	if !ok {
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), buyer.GetBuyerInput{BuyerID: buyerID})
	if err != nil {
		c.handleBuyerError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBuyerWithBalanceResponse(output.Buyer))
}

// Update handles PATCH /buyers/:id requests.
func (c *BuyerController) Update(ctx *gin.Context) {
	buyerID, ok := parseUUIDParam(ctx, "Invalid buyer ID format")
	if !ok {
		return
	}

	var req dto.UpdateBuyerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	input := buyer.UpdateBuyerInput{
		BuyerID: buyerID,
		Name:    req.Name,
		Phone:   req.Phone,
		Address: req.Address,
		Notes:   req.Notes,
	}
	if req.OpeningBalance != nil {
		openingBalance := decimal.NewFromFloat(*req.OpeningBalance)
		input.OpeningBalance = &openingBalance
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleBuyerError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBuyerResponse(output.Buyer))
}

// Delete handles DELETE /buyers/:id requests.
func (c *BuyerController) Delete(ctx *gin.Context) {
	buyerID, ok := parseUUIDParam(ctx, "Invalid buyer ID format")
	if !ok {
		return
	}

	if _, err := c.deleteUseCase.Execute(ctx.Request.Context(), buyer.DeleteBuyerInput{BuyerID: buyerID}); err != nil {
		c.handleBuyerError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// GetLedger handles GET /buyers/:id/ledger requests.
func (c *BuyerController) GetLedger(ctx *gin.Context) {
	buyerID, ok := parseUUIDParam(ctx, "Invalid buyer ID format")
	if !ok {
		return
	}

	input := buyer.GetLedgerInput{
		BuyerID:   buyerID,
		StartDate: parseDateQuery(ctx, "start_date"),
		EndDate:   parseDateQuery(ctx, "end_date"),
	}

	output, err := c.getLedgerUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleBuyerError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToLedgerResponse(output))
}

// AddPayment handles POST /buyers/:id/payments requests.
func (c *BuyerController) AddPayment(ctx *gin.Context) {
	buyerID, ok := parseUUIDParam(ctx, "Invalid buyer ID format")
	if !ok {
		return
	}

	var req dto.AddPaymentRequest
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

	output, err := c.addPaymentUseCase.Execute(ctx.Request.Context(), buyer.AddPaymentInput{
		BuyerID:       buyerID,
		Date:          date,
		Amount:        decimal.NewFromFloat(req.Amount),
		PaymentMethod: req.PaymentMethod,
		Notes:         req.Notes,
	})
	if err != nil {
		c.handleBuyerError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToPaymentResponse(output.Payment))
}

// ListPayments handles GET /buyers/:id/payments requests.
func (c *BuyerController) ListPayments(ctx *gin.Context) {
	buyerID, ok := parseUUIDParam(ctx, "Invalid buyer ID format")
	if !ok {
		return
	}

	output, err := c.listPaymentsUseCase.Execute(ctx.Request.Context(), buyer.ListPaymentsInput{BuyerID: buyerID})
	if err != nil {
		c.handleBuyerError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToPaymentListResponse(output.Payments))
}

// handleBuyerError maps buyer errors to HTTP responses.
func (c *BuyerController) handleBuyerError(ctx *gin.Context, err error) {
	var buyerErr *domainerror.BuyerError
	if errors.As(err, &buyerErr) {
		ctx.JSON(c.getStatusCodeForBuyerError(buyerErr.Code), dto.ErrorResponse{
			Error: buyerErr.Message,
			Code:  string(buyerErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForBuyerError maps buyer error codes to HTTP status codes.
func (c *BuyerController) getStatusCodeForBuyerError(code domainerror.BuyerErrorCode) int {
	switch code {
	case domainerror.ErrCodeBuyerNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeBuyerHasRecords:
		return http.StatusConflict
	case domainerror.ErrCodeBuyerNameRequired,
		domainerror.ErrCodeMissingBuyerField:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// parseUUIDParam parses the :id path parameter, writing a 400 on failure.
func parseUUIDParam(ctx *gin.Context, message string) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: message,
		})
		return uuid.Nil, false
	}
	return id, true
}

// parseDateQuery parses an optional YYYY-MM-DD query parameter. Malformed
// values are ignored, matching lenient query handling elsewhere.
func parseDateQuery(ctx *gin.Context, name string) *time.Time {
	value := ctx.Query(name)
	if value == "" {
		return nil
	}
	date, err := time.Parse(dateLayout, value)
	if err != nil {
		return nil
	}
	return &date
}

// parseIntQuery parses an optional integer query parameter, defaulting to 0.
func parseIntQuery(ctx *gin.Context, name string) int {
	value := ctx.Query(name)
	if value == "" {
		return 0
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0
	}
	return n
}
