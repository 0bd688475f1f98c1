package webhook

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/NITHEESH-14/CrisisSync/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	webhookQueueKey = "webhook_events"

	EventIncidentCreated = "incident.created"
)

// IncidentEvent - тело вебхука для внешних служб реагирования
type IncidentEvent struct {
	Event     string           `json:"event"`
	Incident  *models.Incident `json:"incident"`
	Notified  []string         `json:"notifiedServices"`
	Timestamp time.Time        `json:"timestamp"`
}

// RedisWebhookPublisher ставит события в очередь Redis, откуда их забирает WebhookWorker
type RedisWebhookPublisher struct {
	redisClient *redis.Client
	now         func() time.Time
}

func NewRedisWebhookPublisher(client *redis.Client) *RedisWebhookPublisher {
	return &RedisWebhookPublisher{
		redisClient: client,
		now:         time.Now,
	}
}

// NotifyCreated ставит в очередь событие о новом происшествии
func (p *RedisWebhookPublisher) NotifyCreated(ctx context.Context, incident *models.Incident) error {
	return p.Publish(ctx, IncidentEvent{
		Event:     EventIncidentCreated,
		Incident:  incident,
		Notified:  models.NotifiedServicesFor(incident.Type),
		Timestamp: p.now().UTC(),
	})
}

// Publish публикует событие вебхука в очередь Redis
func (p *RedisWebhookPublisher) Publish(ctx context.Context, event IncidentEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal webhook event: %w", err)
	}

	// LPUSH в голову, воркер забирает BRPOP с хвоста
	if err := p.redisClient.LPush(ctx, webhookQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish webhook event to Redis: %w", err)
	}
	return nil
}
