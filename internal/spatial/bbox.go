package spatial

import (
	"github.com/golang/geo/s2"
)

// BoundingBox is a latitude/longitude viewport used to clip heatmap output
type BoundingBox struct {
	MinLat float64
	MaxLat float64
	MinLng float64
	MaxLng float64
}

// IsZero reports whether no viewport was supplied
func (b BoundingBox) IsZero() bool {
	return b.MinLat == 0 && b.MaxLat == 0 && b.MinLng == 0 && b.MaxLng == 0
}

// Contains reports whether the point lies inside the box. Built on
// s2.Rect so boxes crossing the antimeridian behave correctly.
func (b BoundingBox) Contains(lat, lng float64) bool {
	rect := s2.RectFromLatLng(s2.LatLngFromDegrees(b.MinLat, b.MinLng))
	rect = rect.AddPoint(s2.LatLngFromDegrees(b.MaxLat, b.MaxLng))
	return rect.ContainsLatLng(s2.LatLngFromDegrees(lat, lng))
}
