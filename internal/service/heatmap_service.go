package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/fervo-app/fervo-backend-go/internal/config"
	"github.com/fervo-app/fervo-backend-go/internal/heatmap"
	"github.com/fervo-app/fervo-backend-go/internal/models"
	"github.com/fervo-app/fervo-backend-go/internal/popularity"
	"github.com/fervo-app/fervo-backend-go/internal/spatial"
)

// HeatmapService assembles the storage snapshot and feeds it to the pure
// aggregation core. It samples nothing itself: the evaluation moment
// comes in from the handler and is interpreted once, in the configured
// reference timezone.
type HeatmapService struct {
	venues   VenueRepository
	events   EventRepository
	checkins CheckinStore
	cfg      *config.Config
	logger   *zap.Logger
}

// NewHeatmapService creates a new heatmap service
func NewHeatmapService(venues VenueRepository, events EventRepository, checkins CheckinStore, cfg *config.Config, logger *zap.Logger) *HeatmapService {
	return &HeatmapService{
		venues:   venues,
		events:   events,
		checkins: checkins,
		cfg:      cfg,
		logger:   logger,
	}
}

// Live builds the live-mode heatmap: resolved venue busyness at `at` plus
// check-ins from the trailing live window
func (s *HeatmapService) Live(ctx context.Context, at time.Time, filter models.HeatmapFilter) (*models.HeatmapResponse, error) {
	venues, err := s.venues.List(models.VenueFilter{})
	if err != nil {
		return nil, err
	}

	checkins, err := s.checkins.Live(ctx, at, s.cfg.LiveWindow)
	if err != nil {
		return nil, err
	}

	local := at.In(s.cfg.Timezone)
	points, err := heatmap.Aggregate(venues, local, local.Hour(), checkins)
	if err != nil {
		return nil, err
	}

	points = s.finish(points, filter)
	return &models.HeatmapResponse{
		Points:      points,
		Count:       len(points),
		Mode:        "live",
		GeneratedAt: at.Unix(),
	}, nil
}

// Prediction builds the prediction-mode heatmap: one weighted point per
// eligible upcoming event at its venue's coordinates
func (s *HeatmapService) Prediction(at time.Time, filter models.HeatmapFilter) (*models.HeatmapResponse, error) {
	events, err := s.events.UpcomingApproved(at.Unix())
	if err != nil {
		return nil, err
	}
	events = heatmap.EligibleEvents(events, at)

	venues, err := s.venues.List(models.VenueFilter{})
	if err != nil {
		return nil, err
	}
	byID := make(map[string]models.Venue, len(venues))
	for _, v := range venues {
		byID[v.ID] = v
	}

	points := make([]models.HeatmapPoint, 0, len(events))
	for _, e := range events {
		venue, ok := byID[e.VenueID]
		if !ok {
			s.logger.Warn("skipping event with unknown venue",
				zap.String("event", e.ID),
				zap.String("venue", e.VenueID),
			)
			continue
		}

		// Ambient venue busyness at the event start, local time
		start := time.Unix(e.StartTime, 0).In(s.cfg.Timezone)
		res, err := popularity.Resolve(&venue, start, start.Hour())
		if err != nil {
			return nil, err
		}

		intensity, err := heatmap.ScoreEvent(&e, e.ConfirmedCount, res.Value)
		if err != nil {
			s.logger.Warn("skipping unscorable event",
				zap.String("event", e.ID),
				zap.Error(err),
			)
			continue
		}

		points = append(points, models.HeatmapPoint{
			Lat:    venue.Latitude,
			Lng:    venue.Longitude,
			Weight: intensity,
		})
	}

	points = s.finish(points, filter)
	return &models.HeatmapResponse{
		Points:      points,
		Count:       len(points),
		Mode:        "prediction",
		GeneratedAt: at.Unix(),
	}, nil
}

// finish applies the optional viewport clip and density replication
func (s *HeatmapService) finish(points []models.HeatmapPoint, filter models.HeatmapFilter) []models.HeatmapPoint {
	bbox := spatial.BoundingBox{
		MinLat: filter.MinLat,
		MaxLat: filter.MaxLat,
		MinLng: filter.MinLng,
		MaxLng: filter.MaxLng,
	}
	if !bbox.IsZero() {
		clipped := make([]models.HeatmapPoint, 0, len(points))
		for _, p := range points {
			if bbox.Contains(p.Lat, p.Lng) {
				clipped = append(clipped, p)
			}
		}
		points = clipped
	}

	if filter.Replicate {
		points = heatmap.Replicate(points, s.cfg.HeatmapReplication)
	}
	return points
}
