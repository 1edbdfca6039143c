package service

import (
	"context"
	"time"

	"github.com/fervo-app/fervo-backend-go/internal/models"
)

// VenueRepository is the storage surface the services need for venues
type VenueRepository interface {
	List(filter models.VenueFilter) ([]models.Venue, error)
	GetByID(id string) (*models.Venue, error)
	Create(v *models.Venue) error
	SavePopularTimes(id string, table *models.PopularityTable, source models.DataSource) error
}

// EventRepository is the storage surface the services need for events
type EventRepository interface {
	Create(e *models.Event) error
	List(filter models.EventFilter) ([]models.Event, error)
	UpcomingApproved(after int64) ([]models.Event, error)
	UpdateStatus(id string, status models.EventStatus) error
}

// CheckinStore is the storage surface for ephemeral check-ins
type CheckinStore interface {
	Add(ctx context.Context, checkin *models.Checkin) error
	Live(ctx context.Context, now time.Time, window time.Duration) ([]models.Checkin, error)
}
