package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fervo-app/fervo-backend-go/internal/models"
	"github.com/fervo-app/fervo-backend-go/internal/service"
	"github.com/fervo-app/fervo-backend-go/pkg/response"
)

// EventHandler handles HTTP requests for user-created events
type EventHandler struct {
	service *service.EventService
}

// NewEventHandler creates a new event handler
func NewEventHandler(service *service.EventService) *EventHandler {
	return &EventHandler{service: service}
}

// GetEvents handles GET /api/v1/events. Only approved events are visible
// here; pending and rejected ones appear on the admin listing.
func (h *EventHandler) GetEvents(c *gin.Context) {
	h.list(c, false)
}

// GetEventsAdmin handles GET /api/v1/admin/events (admin), which honors
// the status filter
func (h *EventHandler) GetEventsAdmin(c *gin.Context) {
	h.list(c, true)
}

func (h *EventHandler) list(c *gin.Context, admin bool) {
	var filter models.EventFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid query parameters", err)
		return
	}

	events, err := h.service.List(filter, admin)
	if err != nil {
		fail(c, "Failed to list events", err)
		return
	}

	response.Success(c, gin.H{
		"data":  events,
		"count": len(events),
	})
}

// PostEvent handles POST /api/v1/events; new events start pending
func (h *EventHandler) PostEvent(c *gin.Context) {
	var req models.EventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	event, err := h.service.Create(&req)
	if err != nil {
		fail(c, "Failed to create event", err)
		return
	}
	response.Success(c, event)
}

// statusRequest is the PUT /events/:id/status body
type statusRequest struct {
	Status models.EventStatus `json:"status" binding:"required"`
}

// PutEventStatus handles PUT /api/v1/events/:id/status (admin)
func (h *EventHandler) PutEventStatus(c *gin.Context) {
	var req statusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	if err := h.service.Moderate(c.Param("id"), req.Status); err != nil {
		fail(c, "Failed to update event status", err)
		return
	}
	response.Success(c, gin.H{"id": c.Param("id"), "status": req.Status})
}
