package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/fervo-app/fervo-backend-go/internal/models"
	"github.com/fervo-app/fervo-backend-go/internal/service"
	"github.com/fervo-app/fervo-backend-go/pkg/response"
)

// CheckinHandler handles HTTP requests for live check-ins
type CheckinHandler struct {
	service *service.CheckinService
}

// NewCheckinHandler creates a new checkin handler
func NewCheckinHandler(service *service.CheckinService) *CheckinHandler {
	return &CheckinHandler{service: service}
}

// PostCheckin handles POST /api/v1/checkins
func (h *CheckinHandler) PostCheckin(c *gin.Context) {
	var req models.CheckinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	checkin, err := h.service.Record(c.Request.Context(), &req, time.Now())
	if err != nil {
		fail(c, "Failed to record checkin", err)
		return
	}
	response.Success(c, checkin)
}
