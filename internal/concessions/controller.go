package concessions

import (
	"errors"
	"net/http"

	"cineplex/internal/shared/utils/response"
	"cineplex/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type Controller struct {
	service   Service
	validator *validator.Validate
}

func NewController(service Service) *Controller {
	return &Controller{service: service, validator: validator.New()}
}

// ListItems handles GET /api/v1/concessions?category=&q=
func (c *Controller) ListItems(ctx *gin.Context) {
	var query ListQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid query parameters", nil, err.Error())
		return
	}

	items, err := c.service.ListItems(ctx.Request.Context(), query)
	if err != nil {
		c.handleError(ctx, err, "Failed to get concessions")
		return
	}
	response.RespondJSON(ctx, "success", http.StatusOK, "Concessions retrieved successfully", items, nil)
}

// Categories handles GET /api/v1/concessions/categories
func (c *Controller) Categories(ctx *gin.Context) {
	categories, err := c.service.Categories(ctx.Request.Context())
	if err != nil {
		c.handleError(ctx, err, "Failed to get categories")
		return
	}
	response.RespondJSON(ctx, "success", http.StatusOK, "Categories retrieved successfully", categories, nil)
}

// AdminListItems handles GET /api/v1/admin/concessions
func (c *Controller) AdminListItems(ctx *gin.Context) {
	items, err := c.service.AllItems(ctx.Request.Context())
	if err != nil {
		c.handleError(ctx, err, "Failed to get concessions")
		return
	}
	response.RespondJSON(ctx, "success", http.StatusOK, "Concessions retrieved successfully", items, nil)
}

// UpdateItem handles PATCH /api/v1/admin/concessions/:id
func (c *Controller) UpdateItem(ctx *gin.Context) {
	var req UpdateItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request data", nil, err.Error())
		return
	}
	if err := c.validator.Struct(req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Validation failed", nil, err.Error())
		return
	}

	item, err := c.service.UpdateItem(ctx.Request.Context(), ctx.Param("id"), req)
	if err != nil {
		c.handleError(ctx, err, "Failed to update concession item")
		return
	}
	response.RespondJSON(ctx, "success", http.StatusOK, "Concession item updated successfully", item, nil)
}

func (c *Controller) handleError(ctx *gin.Context, err error, message string) {
	switch {
	case errors.Is(err, ErrItemNotFound):
		response.RespondJSON(ctx, "error", http.StatusNotFound, "Concession item not found", nil, nil)
	default:
		logger.GetDefault().LogHTTPError(ctx, err, http.StatusInternalServerError)
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, message, nil, err.Error())
	}
}
