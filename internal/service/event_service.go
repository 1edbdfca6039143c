package service

import (
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/fervo-app/fervo-backend-go/internal/models"
	"github.com/fervo-app/fervo-backend-go/internal/popularity"
)

// EventService handles business logic for user-created events
type EventService struct {
	repo   EventRepository
	venues VenueRepository
	logger *zap.Logger
}

// NewEventService creates a new event service
func NewEventService(repo EventRepository, venues VenueRepository, logger *zap.Logger) *EventService {
	return &EventService{repo: repo, venues: venues, logger: logger}
}

// Create registers a new event in pending state. The venue reference must
// resolve and the time invariants must hold.
func (s *EventService) Create(req *models.EventRequest) (*models.Event, error) {
	event := &models.Event{
		ID:        uuid.NewString(),
		Name:      req.Name,
		Category:  req.Category,
		VenueID:   req.VenueID,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Status:    models.EventPending,
	}

	if err := event.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", popularity.ErrInvalidInput, err)
	}
	if _, err := s.venues.GetByID(req.VenueID); err != nil {
		return nil, err
	}

	if err := s.repo.Create(event); err != nil {
		return nil, err
	}

	s.logger.Info("event created",
		zap.String("event", event.ID),
		zap.String("venue", event.VenueID),
	)
	return event, nil
}

// List retrieves events. Outside admin views only approved events are
// visible, so an empty status filter is forced to approved.
func (s *EventService) List(filter models.EventFilter, admin bool) ([]models.Event, error) {
	if !admin {
		filter.Status = string(models.EventApproved)
	}
	return s.repo.List(filter)
}

// Moderate moves an event to approved or rejected
func (s *EventService) Moderate(id string, status models.EventStatus) error {
	if status != models.EventApproved && status != models.EventRejected {
		return fmt.Errorf("%w: status must be approved or rejected, got %q", popularity.ErrInvalidInput, status)
	}
	if err := s.repo.UpdateStatus(id, status); err != nil {
		return err
	}

	s.logger.Info("event moderated",
		zap.String("event", id),
		zap.String("status", string(status)),
	)
	return nil
}
