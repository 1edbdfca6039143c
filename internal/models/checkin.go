package models

// Checkin represents an ephemeral user presence signal. Check-ins are
// written once, read within the trailing live window, and never updated.
type Checkin struct {
	ID        string  `json:"id" db:"id"`
	VenueID   string  `json:"venueId,omitempty" db:"venue_id"` // empty for anonymous off-venue check-ins
	Latitude  float64 `json:"latitude" db:"latitude"`
	Longitude float64 `json:"longitude" db:"longitude"`
	CreatedAt int64   `json:"createdAt" db:"created_at"` // Unix timestamp in seconds
	Anonymous bool    `json:"anonymous" db:"anonymous"`
}

// CheckinRequest is the POST /checkins body
type CheckinRequest struct {
	VenueID   string  `json:"venueId"`
	Latitude  float64 `json:"latitude" binding:"required"`
	Longitude float64 `json:"longitude" binding:"required"`
	Anonymous bool    `json:"anonymous"`
}
