package webhook

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/emergency_locator/internal/models"
)

//go:generate mockgen -source=publisher.go -destination=mocks/mock_publisher.go -package=mocks

const (
	eventQueueKey = "service_events"
)

// Action - вид изменения записи
type Action string

const (
	ActionCreated Action = "created"
	ActionUpdated Action = "updated"
	ActionDeleted Action = "deleted"
)

// ServiceEvent - событие об изменении записи экстренной службы
type ServiceEvent struct {
	Action      Action             `json:"action"`
	ServiceID   uuid.UUID          `json:"service_id"`
	ServiceType models.ServiceType `json:"service_type"`
	Name        string             `json:"name"`
	Timestamp   time.Time          `json:"timestamp"`
}

// EventPublisher - интерфейс для публикации событий
type EventPublisher interface {
	Publish(ctx context.Context, event ServiceEvent) error
}

// RedisEventPublisher - реализация EventPublisher, использующая список Redis как очередь
type RedisEventPublisher struct {
	redisClient *redis.Client
}

// NewRedisEventPublisher создает новый RedisEventPublisher
func NewRedisEventPublisher(client *redis.Client) *RedisEventPublisher {
	return &RedisEventPublisher{
		redisClient: client,
	}
}

// Publish публикует событие в очередь Redis
func (p *RedisEventPublisher) Publish(ctx context.Context, event ServiceEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal service event: %w", err)
	}

	// LPUSH добавляет в голову списка, воркер забирает с хвоста через BRPOP
	if err := p.redisClient.LPush(ctx, eventQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish service event to Redis: %w", err)
	}
	return nil
}
