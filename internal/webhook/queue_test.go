package webhook

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingTarget struct {
	delivered chan []byte
}

func (r *recordingTarget) Deliver(_ context.Context, rawPayload []byte) error {
	r.delivered <- rawPayload
	return nil
}

func setupTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return mr, client
}

func TestQueue_NotifyThenWorkerDelivers(t *testing.T) {
	// Подготовка
	mr, client := setupTestRedis(t)
	target := &recordingTarget{delivered: make(chan []byte, 1)}
	worker := newTestWorker(target, 3)
	worker.redisClient = client
	notifier := NewRedisQueueNotifier(client)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	alertID := uuid.New()

	// Действие
	require.NoError(t, notifier.Notify(ctx, NotificationPayload{PanicAlertID: alertID, UserName: "Ivan"}))
	worker.Start(ctx)

	// Проверки
	select {
	case raw := <-target.delivered:
		var got NotificationPayload
		require.NoError(t, json.Unmarshal(raw, &got))
		assert.Equal(t, alertID, got.PanicAlertID)
		assert.Equal(t, "Ivan", got.UserName)
	case <-time.After(3 * time.Second):
		t.Fatal("notification was not delivered from the queue")
	}

	// Очередь разобрана
	assert.False(t, mr.Exists(notificationQueueKey))
}

func TestWorker_StopsOnContextCancel(t *testing.T) {
	_, client := setupTestRedis(t)
	worker := newTestWorker(&recordingTarget{delivered: make(chan []byte, 1)}, 1)
	worker.redisClient = client

	ctx, cancel := context.WithCancel(context.Background())
	worker.Start(ctx)
	cancel()

	// BRPOP может дождаться своего таймаута, прежде чем воркер заметит отмену
	select {
	case <-worker.Done():
	case <-time.After(10 * time.Second):
		t.Fatal("worker did not stop after context cancel")
	}
}
