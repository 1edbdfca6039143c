package heatmap

import (
	"fmt"
	"math"
	"time"

	"github.com/fervo-app/fervo-backend-go/internal/models"
	"github.com/fervo-app/fervo-backend-go/internal/popularity"
)

// Category weights for prediction scoring
var categoryWeights = map[models.EventCategory]float64{
	models.EventClubs: 2.0,
	models.EventBars:  1.5,
	models.EventShows: 1.0,
	models.EventFairs: 1.0,
	models.EventFood:  0.5,
	models.EventOther: 0.5,
}

// ScoreEvent computes the forward-looking intensity of an upcoming event
// for prediction-mode rendering:
//
//	raw = attendees + (venuePopularity/100)*0.8 + categoryWeight
//	intensity = min(raw/10, 1)
//
// venuePopularity is the ambient busyness value (0-100) of the event's
// venue at the event start. Events lacking a venue reference or a start
// time are rejected; eligibility filtering (approved, future start) is
// the caller's responsibility.
func ScoreEvent(event *models.Event, attendees int, venuePopularity int) (float64, error) {
	if event.VenueID == "" {
		return 0, fmt.Errorf("%w: event %q has no venue reference", popularity.ErrInvalidInput, event.ID)
	}
	if event.StartTime == 0 {
		return 0, fmt.Errorf("%w: event %q has no start time", popularity.ErrInvalidInput, event.ID)
	}

	weight, ok := categoryWeights[event.Category]
	if !ok {
		weight = categoryWeights[models.EventOther]
	}

	raw := float64(attendees) + float64(venuePopularity)/100*0.8 + weight
	return math.Min(raw/10, 1.0), nil
}

// EligibleEvents filters events down to those that may be scored:
// approved and starting strictly after the caller-supplied now
func EligibleEvents(events []models.Event, now time.Time) []models.Event {
	eligible := make([]models.Event, 0, len(events))
	for _, e := range events {
		if e.Status != models.EventApproved {
			continue
		}
		if e.StartTime <= now.Unix() {
			continue
		}
		eligible = append(eligible, e)
	}
	return eligible
}
