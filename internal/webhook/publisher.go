package webhook

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/panic_alert_system/internal/models"
)

const (
	notificationQueueKey = "panic_alert_notifications"
)

// NotificationPayload - тело вызова функции notify-panic-alert
type NotificationPayload struct {
	PanicAlertID uuid.UUID        `json:"panicAlertId"`
	UserLocation *models.Location `json:"userLocation"`
	UserName     string           `json:"userName"`
	UserID       uuid.UUID        `json:"userId"`
	DistrictID   *uuid.UUID       `json:"districtId,omitempty"`
	Timestamp    time.Time        `json:"timestamp"`
}

// Notifier - интерфейс для вызова функции оповещения
//
//go:generate mockgen -destination=mocks/mock_notifier.go -package=mocks github.com/shenikar/panic_alert_system/internal/webhook Notifier
type Notifier interface {
	Notify(ctx context.Context, payload NotificationPayload) error
}

type queuePusher interface {
	LPush(ctx context.Context, key string, values ...interface{}) *redis.IntCmd
}

// RedisQueueNotifier - реализация Notifier, которая кладет вызов в очередь Redis.
// Доставку с повторами выполняет Worker.
type RedisQueueNotifier struct {
	redisClient queuePusher
}

// NewRedisQueueNotifier создает новый RedisQueueNotifier
func NewRedisQueueNotifier(client *redis.Client) *RedisQueueNotifier {
	return &RedisQueueNotifier{
		redisClient: client,
	}
}

// Notify публикует вызов в очередь Redis
func (p *RedisQueueNotifier) Notify(ctx context.Context, payload NotificationPayload) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal notification payload: %w", err)
	}

	// Используем LPUSH для добавления события в левую часть списка (очереди)
	if err := p.redisClient.LPush(ctx, notificationQueueKey, data).Err(); err != nil {
		return fmt.Errorf("failed to enqueue notification to Redis: %w", err)
	}
	return nil
}
