package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/scraptrade/backend/internal/application/usecase/producttype"
	domainerror "github.com/scraptrade/backend/internal/domain/error"
	"github.com/scraptrade/backend/internal/integration/entrypoint/dto"
)

// ProductTypeController handles product type endpoints.
type ProductTypeController struct {
	createUseCase *producttype.CreateProductTypeUseCase
	listUseCase   *producttype.ListProductTypesUseCase
	getUseCase    *producttype.GetProductTypeUseCase
	updateUseCase *producttype.UpdateProductTypeUseCase
	deleteUseCase *producttype.DeleteProductTypeUseCase
}

// NewProductTypeController creates a new product type controller instance.
func NewProductTypeController(
	createUseCase *producttype.CreateProductTypeUseCase,
	listUseCase *producttype.ListProductTypesUseCase,
	getUseCase *producttype.GetProductTypeUseCase,
	updateUseCase *producttype.UpdateProductTypeUseCase,
	deleteUseCase *producttype.DeleteProductTypeUseCase,
) *ProductTypeController {
	return &ProductTypeController{
		createUseCase: createUseCase,
		listUseCase:   listUseCase,
		getUseCase:    getUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// Create handles POST /product-types requests.
func (c *ProductTypeController) Create(ctx *gin.Context) {
	var req dto.CreateProductTypeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), producttype.CreateProductTypeInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		c.handleProductTypeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToProductTypeResponse(output.ProductType))
}

// List handles GET /product-types requests.
func (c *ProductTypeController) List(ctx *gin.Context) {
	output, err := c.listUseCase.Execute(ctx.Request.Context())
	if err != nil {
		c.handleProductTypeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProductTypeListResponse(output.ProductTypes))
}

// Get handles GET /product-types/:id requests.
func (c *ProductTypeController) Get(ctx *gin.Context) {
	productTypeID, ok := parseUUIDParam(ctx, "Invalid product type ID format")
	if !ok {
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), producttype.GetProductTypeInput{ID: productTypeID})
	if err != nil {
		c.handleProductTypeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProductTypeResponse(output.ProductType))
}

// Update handles PATCH /product-types/:id requests.
func (c *ProductTypeController) Update(ctx *gin.Context) {
	productTypeID, ok := parseUUIDParam(ctx, "Invalid product type ID format")
	if !ok {
		return
	}

	var req dto.UpdateProductTypeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), producttype.UpdateProductTypeInput{
		ID:          productTypeID,
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		c.handleProductTypeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProductTypeResponse(output.ProductType))
}

// Delete handles DELETE /product-types/:id requests.
func (c *ProductTypeController) Delete(ctx *gin.Context) {
	productTypeID, ok := parseUUIDParam(ctx, "Invalid product type ID format")
	if !ok {
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), producttype.DeleteProductTypeInput{ID: productTypeID}); err != nil {
		c.handleProductTypeError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// handleProductTypeError maps product type errors to HTTP responses.
func (c *ProductTypeController) handleProductTypeError(ctx *gin.Context, err error) {
	var ptErr *domainerror.ProductTypeError
	if errors.As(err, &ptErr) {
		ctx.JSON(c.getStatusCodeForProductTypeError(ptErr.Code), dto.ErrorResponse{
			Error: ptErr.Message,
			Code:  string(ptErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForProductTypeError maps product type error codes to HTTP status codes.
func (c *ProductTypeController) getStatusCodeForProductTypeError(code domainerror.ProductTypeErrorCode) int {
	switch code {
	case domainerror.ErrCodeProductTypeNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeProductTypeNameExists,
		domainerror.ErrCodeProductTypeInUse:
		return http.StatusConflict
	case domainerror.ErrCodeMissingProductFields:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
