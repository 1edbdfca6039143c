package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/fervo-app/fervo-backend-go/internal/models"
)

// CheckinService handles business logic for live check-ins
type CheckinService struct {
	store  CheckinStore
	logger *zap.Logger
}

// NewCheckinService creates a new checkin service
func NewCheckinService(store CheckinStore, logger *zap.Logger) *CheckinService {
	return &CheckinService{store: store, logger: logger}
}

// Record stores a check-in stamped with the caller-supplied moment
func (s *CheckinService) Record(ctx context.Context, req *models.CheckinRequest, at time.Time) (*models.Checkin, error) {
	checkin := &models.Checkin{
		ID:        uuid.NewString(),
		VenueID:   req.VenueID,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
		CreatedAt: at.Unix(),
		Anonymous: req.Anonymous,
	}

	if err := s.store.Add(ctx, checkin); err != nil {
		return nil, err
	}

	s.logger.Debug("checkin recorded",
		zap.String("checkin", checkin.ID),
		zap.String("venue", checkin.VenueID),
	)
	return checkin, nil
}
