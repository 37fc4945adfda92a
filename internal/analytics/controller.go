package analytics

import (
	"net/http"
	"strconv"

	"cineplex/internal/shared/utils/response"

	"github.com/gin-gonic/gin"
)

// Controller defines the analytics controller interface
type Controller interface {
	GetDashboard(c *gin.Context)
	GetReports(c *gin.Context)
}

// controller implements the Controller interface
type controller struct {
	service Service
}

// NewController creates a new analytics controller instance
func NewController(service Service) Controller {
	return &controller{service: service}
}

func (ctrl *controller) GetDashboard(c *gin.Context) {
	dashboard, err := ctrl.service.GetDashboard(c.Request.Context())
	if err != nil {
		response.RespondJSON(c, "error", http.StatusInternalServerError, "Failed to get dashboard analytics", nil, err.Error())
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Dashboard analytics retrieved successfully", dashboard, nil)
}

func (ctrl *controller) GetReports(c *gin.Context) {
	days := defaultReportDays
	if daysStr := c.Query("days"); daysStr != "" {
		parsed, err := strconv.Atoi(daysStr)
		if err != nil || parsed < 1 || parsed > maxReportDays {
			response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid days parameter (1-90)", nil, nil)
			return
		}
		days = parsed
	}

	reports, err := ctrl.service.GetReports(c.Request.Context(), days)
	if err != nil {
		response.RespondJSON(c, "error", http.StatusInternalServerError, "Failed to get reports", nil, err.Error())
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Reports retrieved successfully", reports, nil)
}
