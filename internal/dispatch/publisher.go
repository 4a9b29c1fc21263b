package dispatch

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/resqnet/sos_coordination_system/internal/models"
)

const (
	alertQueueKey = "volunteer_alerts"
)

// Alert is a single volunteer notification for a new SOS event. It carries
// the category and human-readable hints rather than raw coordinates so the
// push transport can render it directly.
type Alert struct {
	VolunteerID  uuid.UUID            `json:"volunteer_id"`
	EventID      uuid.UUID            `json:"event_id"`
	Category     models.EventCategory `json:"category"`
	DistanceHint string               `json:"distance_hint"`
	LocationHint string               `json:"location_hint"`
	CreatedAt    time.Time            `json:"created_at"`
}

// AlertPublisher enqueues alerts for asynchronous delivery.
type AlertPublisher interface {
	Publish(ctx context.Context, alert Alert) error
}

// RedisAlertPublisher is an AlertPublisher backed by a Redis list.
type RedisAlertPublisher struct {
	redisClient *redis.Client
}

// NewRedisAlertPublisher creates a new RedisAlertPublisher.
func NewRedisAlertPublisher(client *redis.Client) *RedisAlertPublisher {
	return &RedisAlertPublisher{
		redisClient: client,
	}
}

// Publish pushes the alert onto the Redis delivery queue.
func (p *RedisAlertPublisher) Publish(ctx context.Context, alert Alert) error {
	payload, err := json.Marshal(alert)
	if err != nil {
		return fmt.Errorf("failed to marshal alert: %w", err)
	}

	if err := p.redisClient.LPush(ctx, alertQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish alert to Redis: %w", err)
	}
	return nil
}
