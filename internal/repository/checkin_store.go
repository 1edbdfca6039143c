package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/fervo-app/fervo-backend-go/internal/models"
)

// CheckinStore persists ephemeral check-ins and serves the trailing live
// window. Check-ins are written once and never updated; entries outside
// the window are pruned by the store.
type CheckinStore interface {
	Add(ctx context.Context, checkin *models.Checkin) error
	Live(ctx context.Context, now time.Time, window time.Duration) ([]models.Checkin, error)
}

// NewCheckinStore returns a redis-backed store when a client is
// available, falling back to sqlite otherwise
func NewCheckinStore(client *redis.Client, db *sql.DB) CheckinStore {
	if client != nil {
		return &RedisCheckinStore{client: client}
	}
	return &SQLiteCheckinStore{db: db}
}

const checkinKey = "checkins:live"

// RedisCheckinStore keeps live check-ins in a sorted set scored by their
// creation timestamp, so the live window is a single range read.
type RedisCheckinStore struct {
	client *redis.Client
}

// Add records a check-in and prunes entries more than an hour old
func (s *RedisCheckinStore) Add(ctx context.Context, checkin *models.Checkin) error {
	data, err := json.Marshal(checkin)
	if err != nil {
		return fmt.Errorf("failed to encode checkin: %w", err)
	}

	pipe := s.client.TxPipeline()
	pipe.ZAdd(ctx, checkinKey, redis.Z{
		Score:  float64(checkin.CreatedAt),
		Member: string(data),
	})
	pipe.ZRemRangeByScore(ctx, checkinKey, "-inf",
		fmt.Sprintf("%d", checkin.CreatedAt-3600))
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("%w: failed to store checkin: %v", ErrUpstream, err)
	}
	return nil
}

// Live returns check-ins created within the trailing window ending at now
func (s *RedisCheckinStore) Live(ctx context.Context, now time.Time, window time.Duration) ([]models.Checkin, error) {
	cutoff := now.Add(-window).Unix()
	members, err := s.client.ZRangeByScore(ctx, checkinKey, &redis.ZRangeBy{
		Min: fmt.Sprintf("%d", cutoff),
		Max: fmt.Sprintf("%d", now.Unix()),
	}).Result()
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read live checkins: %v", ErrUpstream, err)
	}

	checkins := make([]models.Checkin, 0, len(members))
	for _, m := range members {
		var c models.Checkin
		if err := json.Unmarshal([]byte(m), &c); err != nil {
			return nil, fmt.Errorf("failed to decode checkin: %w", err)
		}
		checkins = append(checkins, c)
	}
	return checkins, nil
}

// SQLiteCheckinStore is the fallback store when redis is not configured
type SQLiteCheckinStore struct {
	db *sql.DB
}

// Add records a check-in
func (s *SQLiteCheckinStore) Add(ctx context.Context, checkin *models.Checkin) error {
	query := `INSERT INTO checkins (id, venue_id, latitude, longitude, created_at, anonymous)
		VALUES (?, ?, ?, ?, ?, ?)`
	_, err := s.db.ExecContext(ctx, query,
		checkin.ID, checkin.VenueID, checkin.Latitude, checkin.Longitude,
		checkin.CreatedAt, checkin.Anonymous,
	)
	if err != nil {
		return fmt.Errorf("%w: failed to insert checkin: %v", ErrUpstream, err)
	}
	return nil
}

// Live returns check-ins created within the trailing window ending at now
func (s *SQLiteCheckinStore) Live(ctx context.Context, now time.Time, window time.Duration) ([]models.Checkin, error) {
	cutoff := now.Add(-window).Unix()
	query := `SELECT id, venue_id, latitude, longitude, created_at, anonymous
		FROM checkins WHERE created_at >= ? AND created_at <= ?
		ORDER BY created_at ASC`

	rows, err := s.db.QueryContext(ctx, query, cutoff, now.Unix())
	if err != nil {
		return nil, fmt.Errorf("%w: failed to query live checkins: %v", ErrUpstream, err)
	}
	defer rows.Close()

	var checkins []models.Checkin
	for rows.Next() {
		var c models.Checkin
		var venueID sql.NullString
		if err := rows.Scan(&c.ID, &venueID, &c.Latitude, &c.Longitude, &c.CreatedAt, &c.Anonymous); err != nil {
			return nil, fmt.Errorf("failed to scan checkin: %w", err)
		}
		c.VenueID = venueID.String
		checkins = append(checkins, c)
	}

	return checkins, rows.Err()
}
