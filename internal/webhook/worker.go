package webhook

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/panic_alert_system/internal/config"
	"github.com/sirupsen/logrus"
)

// deliverer - получатель сериализованных вызовов
type deliverer interface {
	Deliver(ctx context.Context, rawPayload []byte) error
}

// Worker - структура для разбора очереди оповещений и доставки их в функцию
type Worker struct {
	redisClient *redis.Client
	target      deliverer
	logger      *logrus.Logger
	maxRetries  int
	baseDelay   time.Duration
	done        chan struct{}
}

// NewWorker создает новый Worker
func NewWorker(redisClient *redis.Client, target deliverer, logger *logrus.Logger, cfg *config.Config) *Worker {
	maxRetries := cfg.WebhookMaxRetries
	if maxRetries < 1 {
		maxRetries = 1
	}
	return &Worker{
		redisClient: redisClient,
		target:      target,
		logger:      logger,
		maxRetries:  maxRetries,
		baseDelay:   cfg.WebhookBaseDelay,
		done:        make(chan struct{}),
	}
}

// Start запускает горутину для обработки очереди
func (w *Worker) Start(ctx context.Context) {
	w.logger.Info("Starting notification worker...")
	go func() {
		defer close(w.done)
		for {
			if ctx.Err() != nil {
				w.logger.Info("Stopping notification worker.")
				return
			}
			// BRPOP - блокирующее извлечение из правой части списка (очереди)
			result, err := w.redisClient.BRPop(ctx, 5*time.Second, notificationQueueKey).Result()
			if err != nil {
				if errors.Is(err, redis.Nil) || errors.Is(err, context.Canceled) {
					continue
				}
				w.logger.WithError(err).Error("Failed to pop notification from Redis")
				sleepCtx(ctx, w.baseDelay) // Ждем перед повторной попыткой
				continue
			}

			// result[0] - ключ, result[1] - значение
			w.process(ctx, []byte(result[1]))
		}
	}()
}

// Done закрывается после остановки воркера
func (w *Worker) Done() <-chan struct{} {
	return w.done
}

func (w *Worker) process(ctx context.Context, rawPayload []byte) bool {
	var payload NotificationPayload
	if err := json.Unmarshal(rawPayload, &payload); err != nil {
		w.logger.WithError(err).Error("Failed to unmarshal notification from Redis")
		return false
	}

	log := w.logger.WithField("panic_alert_id", payload.PanicAlertID)
	log.Debug("Processing notification...")

	delay := w.baseDelay
	for i := 0; i < w.maxRetries; i++ {
		err := w.target.Deliver(ctx, rawPayload)
		if err == nil {
			log.Info("Notification delivered successfully.")
			return true
		}
		left := w.maxRetries - 1 - i
		if left == 0 {
			log.WithError(err).Warn("Notification delivery attempt failed.")
			break
		}
		log.WithError(err).Warnf("Notification delivery failed. Retrying in %v. Retries left: %d", delay, left)
		if !sleepCtx(ctx, delay) {
			return false
		}
		delay *= 2 // Экспоненциальная задержка
	}

	log.Errorf("Failed to deliver notification after %d attempts.", w.maxRetries)
	return false
}

// sleepCtx ждет d или отмены контекста; false - контекст отменен
func sleepCtx(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
