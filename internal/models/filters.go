package models

// VenueFilter represents filter parameters for querying venues
type VenueFilter struct {
	Category string  `form:"category"` // bar, nightclub, restaurant, cafe, theater, other
	Lat      float64 `form:"lat"`      // Near-filter center
	Lng      float64 `form:"lng"`
	RadiusKm float64 `form:"radiusKm"` // 0 disables the near-filter
	Limit    int     `form:"limit"`
}

// HeatmapFilter represents query parameters for the heatmap endpoints
type HeatmapFilter struct {
	At        int64   `form:"t"` // Unix timestamp; 0 means "now" sampled by the serving layer
	MinLat    float64 `form:"minLat"`
	MaxLat    float64 `form:"maxLat"`
	MinLng    float64 `form:"minLng"`
	MaxLng    float64 `form:"maxLng"`
	Replicate bool    `form:"replicate"` // emit replicated unit points for density-only renderers
}

// EventFilter represents filter parameters for querying events
type EventFilter struct {
	Status  string `form:"status"` // admin only; public listings are always approved
	VenueID string `form:"venueId"`
	After   int64  `form:"after"` // Unix timestamp, events starting after this
	Limit   int    `form:"limit"`
}
