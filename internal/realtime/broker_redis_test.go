package realtime

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBroker(t *testing.T) (*miniredis.Miniredis, *Broker) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})
	return mr, NewBroker(client, logger)
}

func receive(t *testing.T, events <-chan ChangeEvent) ChangeEvent {
	t.Helper()
	select {
	case ev, ok := <-events:
		require.True(t, ok, "events channel closed")
		return ev
	case <-time.After(2 * time.Second):
		t.Fatal("no change event received")
	}
	return ChangeEvent{}
}

func TestBroker_PublishSubscribeFiltersByDistrict(t *testing.T) {
	// Подготовка
	_, broker := newTestBroker(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	district, other := uuid.New(), uuid.New()

	events, err := broker.Subscribe(ctx, Filter{Events: []string{EventInsert, EventUpdate}, DistrictID: &district})
	require.NoError(t, err)

	// Действие: чужой район и тревога без района отфильтровываются
	foreign, own := uuid.New(), uuid.New()
	require.NoError(t, broker.Publish(ctx, ChangeEvent{EventType: EventInsert, AlertID: foreign, DistrictID: &other}))
	require.NoError(t, broker.Publish(ctx, ChangeEvent{EventType: EventInsert, AlertID: uuid.New()}))
	require.NoError(t, broker.Publish(ctx, ChangeEvent{EventType: EventUpdate, AlertID: own, DistrictID: &district}))

	// Проверки
	ev := receive(t, events)
	assert.Equal(t, own, ev.AlertID)
	assert.Equal(t, EventUpdate, ev.EventType)
	assert.Equal(t, "panic_alerts", ev.Table)
	assert.False(t, ev.Timestamp.IsZero())
}

func TestBroker_SkipsMalformedPayload(t *testing.T) {
	mr, broker := newTestBroker(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events, err := broker.Subscribe(ctx, Filter{})
	require.NoError(t, err)

	mr.Publish(ChannelName, "{not json")
	id := uuid.New()
	require.NoError(t, broker.Publish(ctx, ChangeEvent{EventType: EventInsert, AlertID: id}))

	assert.Equal(t, id, receive(t, events).AlertID)
}

func TestBroker_ChannelClosesOnCancel(t *testing.T) {
	_, broker := newTestBroker(t)
	ctx, cancel := context.WithCancel(context.Background())

	events, err := broker.Subscribe(ctx, Filter{})
	require.NoError(t, err)
	cancel()

	select {
	case _, ok := <-events:
		assert.False(t, ok)
	case <-time.After(2 * time.Second):
		t.Fatal("events channel was not closed after cancel")
	}
}

func TestBroker_SubscribeFailsWhenRedisDown(t *testing.T) {
	mr, broker := newTestBroker(t)
	mr.Close()

	_, err := broker.Subscribe(context.Background(), Filter{})

	assert.Error(t, err)
}
