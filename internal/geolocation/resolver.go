package geolocation

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"
	"github.com/shenikar/panic_alert_system/internal/models"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"
)

// ErrNoFix - провайдер не смог дать координаты
var ErrNoFix = errors.New("no position fix available")

// PositionRequest - данные, по которым провайдеры определяют положение
type PositionRequest struct {
	UserID   uuid.UUID
	ClientIP string
	// Fix - координаты, присланные устройством вместе с запросом
	Fix *models.Location
}

// Resolution - результат определения положения
type Resolution struct {
	Location *models.Location
	// Stale - свежую точку получить не удалось, отдана последняя известная
	Stale bool
}

// PositionProvider - источник свежих координат
type PositionProvider interface {
	CurrentPosition(ctx context.Context, req PositionRequest) (*models.Location, error)
}

// ReverseGeocoder переводит координаты в адрес
type ReverseGeocoder interface {
	Reverse(ctx context.Context, lat, lon float64) (string, error)
}

// Options - пороги резолвера
type Options struct {
	// Freshness - сколько кешированная точка считается свежей
	Freshness time.Duration
	// FixTimeout - таймаут запроса свежих координат
	FixTimeout time.Duration
	// GeocodeTimeout - таймаут фонового обратного геокодирования
	GeocodeTimeout time.Duration
}

// Resolver выдает текущее положение пользователя: из кеша, если оно свежее, иначе от провайдеров
type Resolver struct {
	providers []PositionProvider
	geocoder  ReverseGeocoder
	logger    *logrus.Logger
	opts      Options

	cache *gocache.Cache
	mu    sync.Mutex
	wg    sync.WaitGroup

	// адреса по округленным координатам; одновременные запросы одной точки склеиваются
	addresses *gocache.Cache
	lookups   singleflight.Group

	now func() time.Time
}

// NewResolver создает резолвер. geocoder может быть nil - тогда адрес не определяется.
func NewResolver(providers []PositionProvider, geocoder ReverseGeocoder, logger *logrus.Logger, opts Options) *Resolver {
	if opts.Freshness <= 0 {
		opts.Freshness = 5 * time.Minute
	}
	if opts.FixTimeout <= 0 {
		opts.FixTimeout = 15 * time.Second
	}
	if opts.GeocodeTimeout <= 0 {
		opts.GeocodeTimeout = 10 * time.Second
	}
	return &Resolver{
		providers: providers,
		geocoder:  geocoder,
		logger:    logger,
		opts:      opts,
		// Устаревшие точки держим дольше порога свежести: они нужны как запасной вариант
		cache:     gocache.New(24*time.Hour, time.Hour),
		addresses: gocache.New(time.Hour, 10*time.Minute),
		now:       time.Now,
	}
}

// Resolve возвращает положение пользователя. Location равен nil, если его нет ни в кеше, ни у провайдеров.
// Если свежую точку получить не удалось, отдается кеш с флагом Stale.
func (r *Resolver) Resolve(ctx context.Context, req PositionRequest, forceRefresh bool) Resolution {
	log := r.logger.WithFields(logrus.Fields{
		"component": "geolocation",
		"user_id":   req.UserID,
		"force":     forceRefresh,
	})

	cached := r.Cached(req.UserID)
	if cached != nil && !forceRefresh && cached.Age(r.now()) < r.opts.Freshness {
		log.Debug("Using cached location")
		return Resolution{Location: cached}
	}

	loc, err := r.requestFix(ctx, req)
	if err != nil {
		log.WithError(err).Warn("Failed to get a fresh position fix")
		return Resolution{Location: cached, Stale: cached != nil}
	}

	r.Store(req.UserID, loc)
	r.geocodeAsync(req.UserID, loc)
	return Resolution{Location: r.Cached(req.UserID)}
}

// Cached возвращает последнюю известную точку пользователя независимо от ее возраста
func (r *Resolver) Cached(userID uuid.UUID) *models.Location {
	v, ok := r.cache.Get(userID.String())
	if !ok {
		return nil
	}
	loc := v.(models.Location)
	return &loc
}

// Store сохраняет точку в кеш
func (r *Resolver) Store(userID uuid.UUID, loc *models.Location) {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored := *loc
	if stored.Timestamp.IsZero() {
		stored.Timestamp = r.now()
	}
	r.cache.SetDefault(userID.String(), stored)
}

// ReverseGeocode синхронно определяет адрес.
// Результат кешируется, параллельные запросы одной точки уходят в геокодер один раз.
func (r *Resolver) ReverseGeocode(ctx context.Context, lat, lon float64) (string, error) {
	if r.geocoder == nil {
		return "", errors.New("reverse geocoder is not configured")
	}
	key := geocodeKey(lat, lon)
	if v, ok := r.addresses.Get(key); ok {
		return v.(string), nil
	}

	v, err, _ := r.lookups.Do(key, func() (any, error) {
		// запрос общий для всех ожидающих, отмена одного из них его не прерывает
		lookupCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), r.opts.GeocodeTimeout)
		defer cancel()
		address, err := r.geocoder.Reverse(lookupCtx, lat, lon)
		if err != nil {
			return "", err
		}
		r.addresses.SetDefault(key, address)
		return address, nil
	})
	if err != nil {
		return "", err
	}
	return v.(string), nil
}

// geocodeKey округляет координаты примерно до метра
func geocodeKey(lat, lon float64) string {
	return fmt.Sprintf("%.5f,%.5f", lat, lon)
}

// Wait дожидается фоновых запросов геокодирования
func (r *Resolver) Wait() {
	r.wg.Wait()
}

func (r *Resolver) requestFix(ctx context.Context, req PositionRequest) (*models.Location, error) {
	if len(r.providers) == 0 {
		return nil, ErrNoFix
	}
	ctx, cancel := context.WithTimeout(ctx, r.opts.FixTimeout)
	defer cancel()

	var errs []error
	for _, p := range r.providers {
		loc, err := p.CurrentPosition(ctx, req)
		if err == nil && loc != nil {
			return loc, nil
		}
		if err == nil {
			err = ErrNoFix
		}
		errs = append(errs, err)
		if ctx.Err() != nil {
			break
		}
	}
	return nil, fmt.Errorf("all position providers failed: %w", errors.Join(errs...))
}

// geocodeAsync дополняет кешированную точку адресом, не блокируя Resolve
func (r *Resolver) geocodeAsync(userID uuid.UUID, loc *models.Location) {
	if r.geocoder == nil || loc.Address != "" {
		return
	}
	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		address, err := r.ReverseGeocode(context.Background(), loc.Latitude, loc.Longitude)
		if err != nil {
			r.logger.WithError(err).WithField("user_id", userID).Warn("Reverse geocoding failed")
			return
		}
		r.mergeAddress(userID, loc.Timestamp, address)
	}()
}

// mergeAddress записывает адрес, только если в кеше все еще та же точка
func (r *Resolver) mergeAddress(userID uuid.UUID, fixTime time.Time, address string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	v, ok := r.cache.Get(userID.String())
	if !ok {
		return
	}
	loc := v.(models.Location)
	if !loc.Timestamp.Equal(fixTime) {
		return
	}
	loc.Address = address
	r.cache.SetDefault(userID.String(), loc)
}
