package models

// HeatmapPoint represents a single weighted point in the heatmap.
// Points are rebuilt on every aggregation call and never persisted;
// venues, events and check-ins remain the source of truth.
type HeatmapPoint struct {
	Lat    float64 `json:"lat"`
	Lng    float64 `json:"lng"`
	Weight float64 `json:"weight"` // Normalized 0-1
}

// HeatmapResponse represents the heatmap API response
type HeatmapResponse struct {
	Points      []HeatmapPoint `json:"points"`
	Count       int            `json:"count"`
	Mode        string         `json:"mode"` // "live" or "prediction"
	GeneratedAt int64          `json:"generated_at"`
}
