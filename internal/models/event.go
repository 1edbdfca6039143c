package models

import "fmt"

// EventCategory classifies a user-created event for prediction weighting
type EventCategory string

const (
	EventClubs EventCategory = "clubs"
	EventBars  EventCategory = "bars"
	EventShows EventCategory = "shows"
	EventFairs EventCategory = "fairs"
	EventFood  EventCategory = "food"
	EventOther EventCategory = "other"
)

// EventStatus gates event visibility outside admin views
type EventStatus string

const (
	EventPending  EventStatus = "pending"
	EventApproved EventStatus = "approved"
	EventRejected EventStatus = "rejected"
)

// Event represents a user-created event attached to a venue
type Event struct {
	ID             string        `json:"id" db:"id"`
	Name           string        `json:"name" db:"name"`
	Category       EventCategory `json:"category" db:"category"`
	VenueID        string        `json:"venueId" db:"venue_id"`
	StartTime      int64         `json:"startTime" db:"start_time"` // Unix timestamp in seconds
	EndTime        int64         `json:"endTime,omitempty" db:"end_time"` // 0 means open-ended
	Status         EventStatus   `json:"status" db:"status"`
	ConfirmedCount int           `json:"confirmedCount" db:"confirmed_count"`
	CreatedAt      int64         `json:"createdAt,omitempty" db:"created_at"`
}

// Validate checks the event time invariants
func (e *Event) Validate() error {
	if e.StartTime == 0 {
		return fmt.Errorf("event start time is required")
	}
	if e.EndTime != 0 && e.EndTime <= e.StartTime {
		return fmt.Errorf("event end time must be after start time")
	}
	return nil
}

// EventRequest is the POST /events body
type EventRequest struct {
	Name      string        `json:"name" binding:"required"`
	Category  EventCategory `json:"category" binding:"required"`
	VenueID   string        `json:"venueId" binding:"required"`
	StartTime int64         `json:"startTime" binding:"required"`
	EndTime   int64         `json:"endTime"`
}
