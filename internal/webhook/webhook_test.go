package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/panic_alert_system/internal/config"
	"github.com/shenikar/panic_alert_system/internal/models"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFunctionClient_Notify(t *testing.T) {
	// Подготовка
	alertID := uuid.New()
	var gotBody []byte
	var gotSignature, gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/notify-panic-alert", r.URL.Path)
		gotAuth = r.Header.Get("Authorization")
		gotSignature = r.Header.Get("X-Webhook-Signature")
		gotBody, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := NewFunctionClient(srv.URL, "service-key", "secret", time.Second)

	// Действие
	err := client.Notify(context.Background(), NotificationPayload{
		PanicAlertID: alertID,
		UserLocation: &models.Location{Latitude: 41.3, Longitude: 69.2},
		UserName:     "Aziz",
	})

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, "Bearer service-key", gotAuth)
	assert.Equal(t, generateHMACSHA256(gotBody, "secret"), gotSignature)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(gotBody, &decoded))
	assert.Equal(t, alertID.String(), decoded["panicAlertId"])
	assert.Equal(t, "Aziz", decoded["userName"])
	assert.NotNil(t, decoded["userLocation"])
}

func TestFunctionClient_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	client := NewFunctionClient(srv.URL, "", "", time.Second)

	err := client.Notify(context.Background(), NotificationPayload{PanicAlertID: uuid.New()})

	require.Error(t, err)
	assert.ErrorContains(t, err, "502")
}

type fakePusher struct {
	key    string
	values []interface{}
	err    error
}

func (p *fakePusher) LPush(_ context.Context, key string, values ...interface{}) *redis.IntCmd {
	p.key = key
	p.values = values
	return redis.NewIntResult(int64(len(values)), p.err)
}

func TestRedisQueueNotifier_Notify(t *testing.T) {
	pusher := &fakePusher{}
	n := &RedisQueueNotifier{redisClient: pusher}
	alertID := uuid.New()

	err := n.Notify(context.Background(), NotificationPayload{PanicAlertID: alertID, UserName: "Aziz"})

	require.NoError(t, err)
	assert.Equal(t, notificationQueueKey, pusher.key)
	require.Len(t, pusher.values, 1)
	assert.Contains(t, string(pusher.values[0].([]byte)), alertID.String())
}

func TestRedisQueueNotifier_PushError(t *testing.T) {
	n := &RedisQueueNotifier{redisClient: &fakePusher{err: errors.New("connection refused")}}

	err := n.Notify(context.Background(), NotificationPayload{PanicAlertID: uuid.New()})

	require.Error(t, err)
	assert.ErrorContains(t, err, "failed to enqueue")
}

type flakyTarget struct {
	failures int
	calls    int
}

func (f *flakyTarget) Deliver(_ context.Context, _ []byte) error {
	f.calls++
	if f.calls <= f.failures {
		return errors.New("temporary failure")
	}
	return nil
}

func newTestWorker(target deliverer, retries int) *Worker {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})
	cfg := &config.Config{WebhookMaxRetries: retries, WebhookBaseDelay: time.Millisecond}
	return NewWorker(nil, target, logger, cfg)
}

func TestWorker_ProcessRetriesUntilSuccess(t *testing.T) {
	target := &flakyTarget{failures: 2}
	w := newTestWorker(target, 5)
	raw, _ := json.Marshal(NotificationPayload{PanicAlertID: uuid.New()})

	ok := w.process(context.Background(), raw)

	assert.True(t, ok)
	assert.Equal(t, 3, target.calls)
}

func TestWorker_ProcessGivesUp(t *testing.T) {
	target := &flakyTarget{failures: 10}
	w := newTestWorker(target, 3)
	raw, _ := json.Marshal(NotificationPayload{PanicAlertID: uuid.New()})

	ok := w.process(context.Background(), raw)

	assert.False(t, ok)
	assert.Equal(t, 3, target.calls)
}

func TestWorker_ProcessInvalidPayload(t *testing.T) {
	target := &flakyTarget{}
	w := newTestWorker(target, 3)

	ok := w.process(context.Background(), []byte("{not json"))

	assert.False(t, ok)
	assert.Equal(t, 0, target.calls)
}
