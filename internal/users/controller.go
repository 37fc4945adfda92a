package users

import (
	"errors"
	"net/http"

	"cineplex/internal/shared/middleware"
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

// ListUsers handles GET /api/v1/admin/users?q=&role=
func (c *Controller) ListUsers(ctx *gin.Context) {
	var query AdminListQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid query parameters", nil, err.Error())
		return
	}

	list, err := c.service.ListUsers(ctx.Request.Context(), query)
	if err != nil {
		c.handleError(ctx, err, "Failed to get users")
		return
	}
	response.RespondJSON(ctx, "success", http.StatusOK, "Users retrieved successfully", list, nil)
}

// GetUser handles GET /api/v1/admin/users/:id
func (c *Controller) GetUser(ctx *gin.Context) {
	user, err := c.service.GetUser(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		c.handleError(ctx, err, "Failed to get user")
		return
	}
	response.RespondJSON(ctx, "success", http.StatusOK, "User retrieved successfully", user, nil)
}

// CreateUser handles POST /api/v1/admin/users
func (c *Controller) CreateUser(ctx *gin.Context) {
	var req CreateUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}
	if err := c.validator.Struct(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Validation failed", nil, err.Error())
		return
	}

	user, err := c.service.CreateUser(ctx.Request.Context(), req)
	if err != nil {
		c.handleError(ctx, err, "Failed to create user")
		return
	}
	response.RespondJSON(ctx, "success", http.StatusCreated, "User created successfully", user, nil)
}

// UpdateUser handles PUT /api/v1/admin/users/:id
func (c *Controller) UpdateUser(ctx *gin.Context) {
	var req UpdateUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}
	if err := c.validator.Struct(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Validation failed", nil, err.Error())
		return
	}

	user, err := c.service.UpdateUser(ctx.Request.Context(), ctx.Param("id"), req)
	if err != nil {
		c.handleError(ctx, err, "Failed to update user")
		return
	}
	response.RespondJSON(ctx, "success", http.StatusOK, "User updated successfully", user, nil)
}

// DeleteUser handles DELETE /api/v1/admin/users/:id
func (c *Controller) DeleteUser(ctx *gin.Context) {
	actorID, _ := middleware.CurrentUserID(ctx)

	if err := c.service.DeleteUser(ctx.Request.Context(), ctx.Param("id"), actorID); err != nil {
		c.handleError(ctx, err, "Failed to delete user")
		return
	}
	response.RespondJSON(ctx, "success", http.StatusOK, "User deleted successfully", nil, nil)
}

func (c *Controller) handleError(ctx *gin.Context, err error, message string) {
	switch {
	case errors.Is(err, ErrUserNotFound):
		response.RespondJSON(ctx, "error", http.StatusNotFound, "User not found", nil, nil)
	case errors.Is(err, ErrEmailTaken):
		response.RespondJSON(ctx, "error", http.StatusConflict, err.Error(), nil, nil)
	case errors.Is(err, ErrCannotDeleteSelf):
		response.RespondJSON(ctx, "error", http.StatusBadRequest, err.Error(), nil, nil)
	default:
		logger.GetDefault().LogHTTPError(ctx, err, http.StatusInternalServerError)
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, message, nil, err.Error())
	}
}
