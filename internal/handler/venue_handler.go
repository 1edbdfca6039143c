package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/fervo-app/fervo-backend-go/internal/models"
	"github.com/fervo-app/fervo-backend-go/internal/service"
	"github.com/fervo-app/fervo-backend-go/pkg/response"
)

// VenueHandler handles HTTP requests for venues and popularity data
type VenueHandler struct {
	service *service.VenueService
}

// NewVenueHandler creates a new venue handler
func NewVenueHandler(service *service.VenueService) *VenueHandler {
	return &VenueHandler{service: service}
}

// GetPlaces handles GET /api/v1/places
func (h *VenueHandler) GetPlaces(c *gin.Context) {
	var filter models.VenueFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid query parameters", err)
		return
	}

	venues, err := h.service.List(filter)
	if err != nil {
		fail(c, "Failed to list venues", err)
		return
	}

	response.Success(c, gin.H{
		"data":  venues,
		"count": len(venues),
	})
}

// GetPlace handles GET /api/v1/places/:id
func (h *VenueHandler) GetPlace(c *gin.Context) {
	venue, err := h.service.Get(c.Param("id"))
	if err != nil {
		fail(c, "Failed to get venue", err)
		return
	}
	response.Success(c, venue)
}

// GetPlaceStatus handles GET /api/v1/places/:id/status.
// The optional t parameter (unix seconds) is the moment to evaluate;
// the server clock is sampled here when it is absent.
func (h *VenueHandler) GetPlaceStatus(c *gin.Context) {
	at := evaluationTime(c)

	status, err := h.service.Status(c.Param("id"), at)
	if err != nil {
		fail(c, "Failed to resolve venue status", err)
		return
	}
	response.Success(c, status)
}

// CreatePlace handles POST /api/v1/places (admin)
func (h *VenueHandler) CreatePlace(c *gin.Context) {
	var venue models.Venue
	if err := c.ShouldBindJSON(&venue); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if venue.ID == "" {
		venue.ID = uuid.NewString()
	}

	if err := h.service.Create(&venue); err != nil {
		fail(c, "Failed to create venue", err)
		return
	}
	response.Success(c, venue)
}

// popularTimesRequest is the PUT /places/:id/popular-times body
type popularTimesRequest struct {
	PopularTimes models.PopularityTable `json:"popularTimes" binding:"required"`
	DataSource   models.DataSource      `json:"dataSource"`
}

// PutPopularTimes handles PUT /api/v1/places/:id/popular-times (admin).
// Persists an edited table; provenance defaults to manual.
func (h *VenueHandler) PutPopularTimes(c *gin.Context) {
	var req popularTimesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if req.DataSource == "" {
		req.DataSource = models.DataSourceManual
	}

	if err := h.service.SavePopularTimes(c.Param("id"), &req.PopularTimes, req.DataSource); err != nil {
		fail(c, "Failed to save popular times", err)
		return
	}
	response.Success(c, gin.H{"id": c.Param("id"), "dataSource": req.DataSource})
}

// GeneratePopularTimes handles POST /api/v1/places/:id/generate (admin).
// Fills the venue's table from its category curves; refuses to replace
// manually entered data.
func (h *VenueHandler) GeneratePopularTimes(c *gin.Context) {
	table, err := h.service.GenerateDefault(c.Param("id"))
	if err != nil {
		fail(c, "Failed to generate popular times", err)
		return
	}
	response.Success(c, gin.H{"id": c.Param("id"), "popularTimes": table})
}

// evaluationTime reads the optional t query parameter, falling back to
// the server clock. This is the single wall-clock read on the request
// path; everything below takes the moment as an explicit parameter.
func evaluationTime(c *gin.Context) time.Time {
	if raw := c.Query("t"); raw != "" {
		if ts, err := strconv.ParseInt(raw, 10, 64); err == nil && ts > 0 {
			return time.Unix(ts, 0)
		}
	}
	return time.Now()
}
