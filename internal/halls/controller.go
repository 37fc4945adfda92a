package halls

import (
	"errors"
	"net/http"

	"cineplex/internal/shared/utils/response"

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

func (c *Controller) ListCinemas(ctx *gin.Context) {
	cinemas, err := c.service.ListCinemas(ctx.Request.Context())
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to get cinemas", nil, err.Error())
		return
	}
	response.RespondJSON(ctx, "success", http.StatusOK, "Cinemas retrieved successfully", cinemas, nil)
}

func (c *Controller) GetHallSeats(ctx *gin.Context) {
	layout, err := c.service.GetSeatLayout(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		if errors.Is(err, ErrHallNotFound) {
			response.RespondJSON(ctx, "error", http.StatusNotFound, "Hall not found", nil, nil)
			return
		}
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to get seat layout", nil, err.Error())
		return
	}
	response.RespondJSON(ctx, "success", http.StatusOK, "Seat layout retrieved successfully", layout, nil)
}

func (c *Controller) UpdateHallStatus(ctx *gin.Context) {
	var req UpdateHallStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}
	if err := c.validator.Struct(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Validation failed", nil, err.Error())
		return
	}

	hall, err := c.service.UpdateHallStatus(ctx.Request.Context(), ctx.Param("id"), req.Status)
	if err != nil {
		if errors.Is(err, ErrHallNotFound) {
			response.RespondJSON(ctx, "error", http.StatusNotFound, "Hall not found", nil, nil)
			return
		}
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to update hall", nil, err.Error())
		return
	}
	response.RespondJSON(ctx, "success", http.StatusOK, "Hall status updated", hall, nil)
}
