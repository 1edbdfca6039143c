package heatmap

import (
	"math"
	"time"

	"github.com/fervo-app/fervo-backend-go/internal/models"
	"github.com/fervo-app/fervo-backend-go/internal/popularity"
)

const (
	// CheckinBaseWeight is the fixed weight contributed by a single live
	// check-in, independent of the venue's historical pattern.
	CheckinBaseWeight = 0.5

	// DefaultReplication is the point multiplier used by Replicate for
	// renderers without native per-point weight support.
	DefaultReplication = 10
)

// Aggregate resolves every venue at the given moment and emits one
// weighted point per open venue (weight = value/100) plus one fixed-weight
// point per supplied check-in. Closed venues and zero-value venues
// contribute no heat. Filtering check-ins to the live recency window is
// the caller's responsibility.
//
// The function is deterministic and idempotent: it never reads the wall
// clock, so identical inputs yield an identical multiset of points.
func Aggregate(venues []models.Venue, at time.Time, hour int, checkins []models.Checkin) ([]models.HeatmapPoint, error) {
	points := make([]models.HeatmapPoint, 0, len(venues)+len(checkins))

	for i := range venues {
		res, err := popularity.Resolve(&venues[i], at, hour)
		if err != nil {
			return nil, err
		}
		if res.IsClosed || res.Value == 0 {
			continue
		}
		points = append(points, models.HeatmapPoint{
			Lat:    venues[i].Latitude,
			Lng:    venues[i].Longitude,
			Weight: float64(res.Value) / 100,
		})
	}

	for _, c := range checkins {
		points = append(points, models.HeatmapPoint{
			Lat:    c.Latitude,
			Lng:    c.Longitude,
			Weight: CheckinBaseWeight,
		})
	}

	return points, nil
}

// Replicate expands weighted points into ceil(weight*k) unit points each.
// This approximates a weighted heatmap on rendering surfaces that only
// understand point density. The weighted output of Aggregate is the
// primary representation; replication is a derived view.
func Replicate(points []models.HeatmapPoint, k int) []models.HeatmapPoint {
	if k <= 0 {
		k = DefaultReplication
	}

	var out []models.HeatmapPoint
	for _, p := range points {
		n := int(math.Ceil(p.Weight * float64(k)))
		for i := 0; i < n; i++ {
			out = append(out, models.HeatmapPoint{Lat: p.Lat, Lng: p.Lng, Weight: 1})
		}
	}
	return out
}
