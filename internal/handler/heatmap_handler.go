package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/fervo-app/fervo-backend-go/internal/models"
	"github.com/fervo-app/fervo-backend-go/internal/service"
	"github.com/fervo-app/fervo-backend-go/pkg/response"
)

// HeatmapHandler handles HTTP requests for heatmap layers
type HeatmapHandler struct {
	service *service.HeatmapService
}

// NewHeatmapHandler creates a new heatmap handler
func NewHeatmapHandler(service *service.HeatmapService) *HeatmapHandler {
	return &HeatmapHandler{service: service}
}

// GetLive handles GET /api/v1/heatmap/live
func (h *HeatmapHandler) GetLive(c *gin.Context) {
	filter, at, ok := bindHeatmapFilter(c)
	if !ok {
		return
	}

	result, err := h.service.Live(c.Request.Context(), at, filter)
	if err != nil {
		fail(c, "Failed to build live heatmap", err)
		return
	}
	response.Success(c, result)
}

// GetPrediction handles GET /api/v1/heatmap/prediction
func (h *HeatmapHandler) GetPrediction(c *gin.Context) {
	filter, at, ok := bindHeatmapFilter(c)
	if !ok {
		return
	}

	result, err := h.service.Prediction(at, filter)
	if err != nil {
		fail(c, "Failed to build prediction heatmap", err)
		return
	}
	response.Success(c, result)
}

func bindHeatmapFilter(c *gin.Context) (models.HeatmapFilter, time.Time, bool) {
	var filter models.HeatmapFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid query parameters", err)
		return filter, time.Time{}, false
	}

	at := time.Now()
	if filter.At > 0 {
		at = time.Unix(filter.At, 0)
	}
	return filter, at, true
}
