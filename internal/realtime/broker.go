package realtime

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// ChannelName - канал Pub/Sub с изменениями строк panic_alerts
const ChannelName = "panic-alerts-changes"

// Виды изменений строки
const (
	EventInsert = "INSERT"
	EventUpdate = "UPDATE"
)

// ChangeEvent - уведомление "тревога изменилась". Подписчики не разбирают содержимое,
// а перечитывают список целиком.
type ChangeEvent struct {
	EventType  string     `json:"eventType"`
	Table      string     `json:"table"`
	AlertID    uuid.UUID  `json:"alertId"`
	DistrictID *uuid.UUID `json:"districtId,omitempty"`
	Timestamp  time.Time  `json:"commitTimestamp"`
}

// Filter - аналог фильтра postgres_changes: вид события и район
type Filter struct {
	// Events пустой - все события
	Events []string
	// DistrictID nil - все районы
	DistrictID *uuid.UUID
}

// Match проверяет, подходит ли событие под фильтр
func (f Filter) Match(ev ChangeEvent) bool {
	if len(f.Events) > 0 && !slices.Contains(f.Events, ev.EventType) {
		return false
	}
	if f.DistrictID != nil {
		return ev.DistrictID != nil && *ev.DistrictID == *f.DistrictID
	}
	return true
}

// Broker публикует и раздает события изменений через Redis Pub/Sub.
// Доставка at-most-once: пока подписчик отключен, события теряются.
type Broker struct {
	client *redis.Client
	logger *logrus.Logger
}

func NewBroker(client *redis.Client, logger *logrus.Logger) *Broker {
	return &Broker{client: client, logger: logger}
}

// Publish отправляет событие всем подписчикам всех экземпляров сервиса
func (b *Broker) Publish(ctx context.Context, ev ChangeEvent) error {
	if ev.Table == "" {
		ev.Table = "panic_alerts"
	}
	if ev.Timestamp.IsZero() {
		ev.Timestamp = time.Now().UTC()
	}
	data, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("failed to marshal change event: %w", err)
	}
	if err := b.client.Publish(ctx, ChannelName, data).Err(); err != nil {
		return fmt.Errorf("failed to publish change event: %w", err)
	}
	return nil
}

// Subscribe открывает подписку, которая живет до отмены ctx
func (b *Broker) Subscribe(ctx context.Context, filter Filter) (<-chan ChangeEvent, error) {
	sub := b.client.Subscribe(ctx, ChannelName)
	// Дожидаемся подтверждения подписки, чтобы ошибка соединения вернулась сразу
	if _, err := sub.Receive(ctx); err != nil {
		sub.Close()
		return nil, fmt.Errorf("failed to subscribe to %s: %w", ChannelName, err)
	}

	out := make(chan ChangeEvent, 16)
	go func() {
		defer close(out)
		defer sub.Close()
		messages := sub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-messages:
				if !ok {
					return
				}
				ev, err := decodeEvent(msg.Payload)
				if err != nil {
					b.logger.WithError(err).Warn("Skipping malformed change event")
					continue
				}
				if !filter.Match(ev) {
					continue
				}
				select {
				case out <- ev:
				case <-ctx.Done():
					return
				}
			}
		}
	}()
	return out, nil
}

func decodeEvent(payload string) (ChangeEvent, error) {
	var ev ChangeEvent
	if err := json.Unmarshal([]byte(payload), &ev); err != nil {
		return ChangeEvent{}, fmt.Errorf("failed to unmarshal change event: %w", err)
	}
	return ev, nil
}
