package geolocation

import (
	"bytes"
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/panic_alert_system/internal/models"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProvider struct {
	mu    sync.Mutex
	calls int
	loc   *models.Location
	err   error
}

func (p *fakeProvider) CurrentPosition(_ context.Context, _ PositionRequest) (*models.Location, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.calls++
	if p.err != nil {
		return nil, p.err
	}
	loc := *p.loc
	return &loc, nil
}

func (p *fakeProvider) Calls() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.calls
}

type fakeGeocoder struct {
	address string
	err     error
	delay   time.Duration
	calls   atomic.Int32
}

func (g *fakeGeocoder) Reverse(_ context.Context, _, _ float64) (string, error) {
	g.calls.Add(1)
	time.Sleep(g.delay)
	return g.address, g.err
}

func newTestResolver(provider PositionProvider, geocoder ReverseGeocoder, now time.Time) *Resolver {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	r := NewResolver([]PositionProvider{provider}, geocoder, logger, Options{
		Freshness:  5 * time.Minute,
		FixTimeout: time.Second,
	})
	r.now = func() time.Time { return now }
	return r
}

func TestResolve_FreshCacheSkipsProvider(t *testing.T) {
	// Подготовка
	now := time.Now()
	provider := &fakeProvider{loc: &models.Location{Latitude: 1, Longitude: 2, Timestamp: now}}
	r := newTestResolver(provider, nil, now)
	userID := uuid.New()
	r.Store(userID, &models.Location{Latitude: 41.31, Longitude: 69.24, Timestamp: now.Add(-4 * time.Minute)})

	// Действие
	loc := r.Resolve(context.Background(), PositionRequest{UserID: userID}, false).Location

	// Проверки
	require.NotNil(t, loc)
	assert.Equal(t, 41.31, loc.Latitude)
	assert.Equal(t, 0, provider.Calls())
}

func TestResolve_StaleCacheRequestsFix(t *testing.T) {
	now := time.Now()
	provider := &fakeProvider{loc: &models.Location{Latitude: 55.75, Longitude: 37.61, Timestamp: now}}
	r := newTestResolver(provider, nil, now)
	userID := uuid.New()
	r.Store(userID, &models.Location{Latitude: 41.31, Longitude: 69.24, Timestamp: now.Add(-6 * time.Minute)})

	loc := r.Resolve(context.Background(), PositionRequest{UserID: userID}, false).Location

	require.NotNil(t, loc)
	assert.Equal(t, 55.75, loc.Latitude)
	assert.Equal(t, 1, provider.Calls())
}

func TestResolve_ForceRefreshIgnoresFreshCache(t *testing.T) {
	now := time.Now()
	provider := &fakeProvider{loc: &models.Location{Latitude: 55.75, Longitude: 37.61, Timestamp: now}}
	r := newTestResolver(provider, nil, now)
	userID := uuid.New()
	r.Store(userID, &models.Location{Latitude: 41.31, Longitude: 69.24, Timestamp: now.Add(-time.Minute)})

	loc := r.Resolve(context.Background(), PositionRequest{UserID: userID}, true).Location

	require.NotNil(t, loc)
	assert.Equal(t, 55.75, loc.Latitude)
	assert.Equal(t, 1, provider.Calls())
}

func TestResolve_FailureFallsBackToCache(t *testing.T) {
	now := time.Now()
	provider := &fakeProvider{err: errors.New("permission denied")}
	r := newTestResolver(provider, nil, now)
	userID := uuid.New()
	r.Store(userID, &models.Location{Latitude: 41.31, Longitude: 69.24, Timestamp: now.Add(-time.Hour)})

	res := r.Resolve(context.Background(), PositionRequest{UserID: userID}, true)

	require.NotNil(t, res.Location)
	assert.Equal(t, 41.31, res.Location.Latitude)
	assert.True(t, res.Stale)
}

func TestResolve_FailureWithoutCacheReturnsNil(t *testing.T) {
	provider := &fakeProvider{err: errors.New("position unavailable")}
	r := newTestResolver(provider, nil, time.Now())

	res := r.Resolve(context.Background(), PositionRequest{UserID: uuid.New()}, false)

	assert.Nil(t, res.Location)
	assert.False(t, res.Stale)
}

func TestResolve_ReverseGeocodeMergesAddress(t *testing.T) {
	now := time.Now()
	provider := &fakeProvider{loc: &models.Location{Latitude: 55.75, Longitude: 37.61, Timestamp: now}}
	r := newTestResolver(provider, &fakeGeocoder{address: "Красная площадь, Москва"}, now)
	userID := uuid.New()

	loc := r.Resolve(context.Background(), PositionRequest{UserID: userID}, true).Location
	require.NotNil(t, loc)
	r.Wait()

	cached := r.Cached(userID)
	require.NotNil(t, cached)
	assert.Equal(t, "Красная площадь, Москва", cached.Address)
}

func TestResolve_ReverseGeocodeFailureLeavesAddressEmpty(t *testing.T) {
	now := time.Now()
	provider := &fakeProvider{loc: &models.Location{Latitude: 55.75, Longitude: 37.61, Timestamp: now}}
	r := newTestResolver(provider, &fakeGeocoder{err: errors.New("rate limited")}, now)
	userID := uuid.New()

	r.Resolve(context.Background(), PositionRequest{UserID: userID}, true)
	r.Wait()

	cached := r.Cached(userID)
	require.NotNil(t, cached)
	assert.Empty(t, cached.Address)
}

func TestResolve_FreshFixIsNotStale(t *testing.T) {
	now := time.Now()
	provider := &fakeProvider{loc: &models.Location{Latitude: 55.75, Longitude: 37.61, Timestamp: now}}
	r := newTestResolver(provider, nil, now)

	res := r.Resolve(context.Background(), PositionRequest{UserID: uuid.New()}, true)

	require.NotNil(t, res.Location)
	assert.False(t, res.Stale)
}

func TestReverseGeocode_SharesLookupForSamePoint(t *testing.T) {
	// Подготовка
	now := time.Now()
	provider := &fakeProvider{loc: &models.Location{Latitude: 55.75, Longitude: 37.61, Timestamp: now}}
	geocoder := &fakeGeocoder{address: "Красная площадь, Москва", delay: 50 * time.Millisecond}
	r := newTestResolver(provider, geocoder, now)
	userID := uuid.New()

	// Действие: фоновое геокодирование из Resolve и синхронный запрос той же точки
	r.Resolve(context.Background(), PositionRequest{UserID: userID}, true)
	address, err := r.ReverseGeocode(context.Background(), 55.75, 37.61)
	r.Wait()

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, "Красная площадь, Москва", address)

	again, err := r.ReverseGeocode(context.Background(), 55.750001, 37.610001)
	require.NoError(t, err)
	assert.Equal(t, address, again)
	assert.Equal(t, int32(1), geocoder.calls.Load())
}

func TestReverseGeocode_ErrorNotCached(t *testing.T) {
	geocoder := &fakeGeocoder{err: errors.New("rate limited")}
	r := newTestResolver(&fakeProvider{}, geocoder, time.Now())

	_, err := r.ReverseGeocode(context.Background(), 1, 2)
	require.Error(t, err)
	_, err = r.ReverseGeocode(context.Background(), 1, 2)
	require.Error(t, err)

	assert.Equal(t, int32(2), geocoder.calls.Load())
}

func TestDeviceProvider(t *testing.T) {
	p := NewDeviceProvider()

	_, err := p.CurrentPosition(context.Background(), PositionRequest{})
	assert.ErrorIs(t, err, ErrNoFix)

	loc, err := p.CurrentPosition(context.Background(), PositionRequest{Fix: &models.Location{Latitude: 1, Longitude: 2}})
	require.NoError(t, err)
	assert.Equal(t, SourceDevice, loc.Source)
	assert.False(t, loc.Timestamp.IsZero())
}
