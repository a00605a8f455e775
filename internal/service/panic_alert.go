package service

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/panic_alert_system/internal/config"
	"github.com/shenikar/panic_alert_system/internal/geolocation"
	"github.com/shenikar/panic_alert_system/internal/models"
	"github.com/shenikar/panic_alert_system/internal/realtime"
	"github.com/shenikar/panic_alert_system/internal/telegram"
	"github.com/shenikar/panic_alert_system/internal/webhook"
	"github.com/shenikar/panic_alert_system/pkg/i18n"
	"github.com/shenikar/panic_alert_system/pkg/metrics"
	"github.com/sirupsen/logrus"
)

//go:generate mockgen -destination=mocks/mock_service.go -package=mocks github.com/shenikar/panic_alert_system/internal/service ChangeBroker,LocationResolver,PanicAlertRepository,PanicAlertService,ProfileRepository,ResponderMessenger

// PanicAlertRepository определяет контракт для работы с бд тревог
type PanicAlertRepository interface {
	Create(ctx context.Context, alert *models.PanicAlert) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.PanicAlert, error)
	Query(ctx context.Context, filter models.AlertFilter) ([]*models.PanicAlert, error)
	UpdateStatus(ctx context.Context, upd models.StatusUpdate) (*models.PanicAlert, error)
	SetAddress(ctx context.Context, id uuid.UUID, address string) error
}

// ProfileRepository определяет контракт для чтения профилей
type ProfileRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.Profile, error)
	GetByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*models.Profile, error)
	ListResponders(ctx context.Context, districtID *uuid.UUID) ([]*models.Profile, error)
}

// LocationResolver - источник координат пользователя
type LocationResolver interface {
	Resolve(ctx context.Context, req geolocation.PositionRequest, forceRefresh bool) geolocation.Resolution
	Cached(userID uuid.UUID) *models.Location
	Store(userID uuid.UUID, loc *models.Location)
	ReverseGeocode(ctx context.Context, lat, lon float64) (string, error)
}

// ResponderMessenger - чат-бот для оповещения ответственных
type ResponderMessenger interface {
	Enabled() bool
	SendMessage(ctx context.Context, chatID int64, text string) error
	SendLocation(ctx context.Context, chatID int64, lat, lon float64) error
}

// ChangeBroker - канал событий изменения тревог
type ChangeBroker interface {
	Publish(ctx context.Context, ev realtime.ChangeEvent) error
	Subscribe(ctx context.Context, filter realtime.Filter) (<-chan realtime.ChangeEvent, error)
}

// PanicAlertService определяет контракт бизнес-логики тревог
type PanicAlertService interface {
	Trigger(ctx context.Context, session models.Session, req models.TriggerRequest) (*models.TriggerResult, error)
	StoreLocation(ctx context.Context, session models.Session, loc models.Location) (*models.Location, error)
	ListInbox(ctx context.Context, session models.Session) ([]*models.PanicAlert, error)
	SubscribeInbox(ctx context.Context, session models.Session) (<-chan []*models.PanicAlert, error)
	QueryAlerts(ctx context.Context, session models.Session, filter models.AlertFilter) (*models.AlertQueryResult, error)
	UpdateStatus(ctx context.Context, session models.Session, id uuid.UUID, status models.AlertStatus, notes *string, expectedUpdatedAt *time.Time) (*models.PanicAlert, error)
}

type panicAlertService struct {
	alerts    PanicAlertRepository
	profiles  ProfileRepository
	resolver  LocationResolver
	messenger ResponderMessenger
	notifier  webhook.Notifier
	broker     ChangeBroker
	translator telegram.Localizer
	metrics    *metrics.Metrics
	logger     *logrus.Logger
	cfg        *config.Config

	// фоновые задачи, которые переживают запрос
	wg sync.WaitGroup
}

func NewPanicAlertService(
	alerts PanicAlertRepository,
	profiles ProfileRepository,
	resolver LocationResolver,
	messenger ResponderMessenger,
	notifier webhook.Notifier,
	broker ChangeBroker,
	translator telegram.Localizer,
	m *metrics.Metrics,
	logger *logrus.Logger,
	cfg *config.Config,
) PanicAlertService {
	return &panicAlertService{
		alerts:    alerts,
		profiles:  profiles,
		resolver:  resolver,
		messenger: messenger,
		notifier:  notifier,
		broker:     broker,
		translator: translator,
		metrics:    m,
		logger:     logger,
		cfg:        cfg,
	}
}

// Trigger выполняет конвейер тревоги. Фатальна только ошибка записи в бд,
// остальные шаги логируются и попадают в Notices.
func (s *panicAlertService) Trigger(ctx context.Context, session models.Session, req models.TriggerRequest) (*models.TriggerResult, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "panic_alert",
		"method":  "Trigger",
		"user_id": session.UserID,
	})
	log.Info("Panic alert triggered")
	s.metrics.AlertsTriggered.Inc()

	result := &models.TriggerResult{}

	// 1-2. Местоположение
	resolution := s.resolveLocation(ctx, session, req)
	loc := resolution.Location
	if loc == nil {
		log.Warn("Location unavailable, sending alert without coordinates")
		result.Notices = append(result.Notices, i18n.MsgLocationUnavailable)
	} else {
		result.Location = loc
		result.LocationAge = loc.Age(time.Now())
		if resolution.Stale {
			log.WithField("location_age", result.LocationAge).Warn("Fresh location unavailable, using last known location")
			result.Notices = append(result.Notices, i18n.MsgLocationStale)
		}
	}

	// 3. Запись тревоги
	alert := &models.PanicAlert{
		UserID:      session.UserID,
		AlertStatus: models.AlertStatusActive,
		DistrictID:  session.DistrictID,
	}
	if loc != nil {
		lat, lon := loc.Latitude, loc.Longitude
		alert.LocationLatitude = &lat
		alert.LocationLongitude = &lon
		if loc.Address != "" {
			address := loc.Address
			alert.LocationAddress = &address
		}
	}
	if err := s.alerts.Create(ctx, alert); err != nil {
		s.metrics.AlertInsertErrors.Inc()
		log.WithError(err).Error("Failed to create panic alert in repository")
		return nil, fmt.Errorf("service: could not create panic alert: %w", err)
	}
	result.Alert = alert
	log = log.WithField("alert_id", alert.ID)
	log.Info("Panic alert created")

	s.publish(ctx, realtime.EventInsert, alert)
	if alert.HasCoordinates() && alert.LocationAddress == nil {
		s.backfillAddress(alert)
	}

	reporterName := s.reporterName(ctx, session)

	// 4-5. Оповещение ответственных в чат-боте
	responders, err := s.profiles.ListResponders(ctx, alert.DistrictID)
	if err != nil {
		log.WithError(err).Warn("Failed to load responder roster")
	}
	if len(responders) == 0 {
		log.Warn("No responders found for district")
		result.Notices = append(result.Notices, i18n.MsgNoResponders)
	} else {
		result.MessagesSent, result.MessagesFailed = s.notifyResponders(ctx, alert, reporterName, loc, responders)
		log.WithFields(logrus.Fields{
			"sent":   result.MessagesSent,
			"failed": result.MessagesFailed,
		}).Info("Responder fan-out completed")
	}

	// 6. Функция оповещения
	payload := webhook.NotificationPayload{
		PanicAlertID: alert.ID,
		UserLocation: loc,
		UserName:     reporterName,
		UserID:       session.UserID,
		DistrictID:   alert.DistrictID,
		Timestamp:    alert.CreatedAt,
	}
	if err := s.notifier.Notify(ctx, payload); err != nil {
		s.metrics.Notifications.WithLabelValues(s.cfg.NotifyDelivery, "error").Inc()
		log.WithError(err).Warn("Failed to invoke notification function")
		result.Notices = append(result.Notices, i18n.MsgNotificationDelayed)
	} else {
		s.metrics.Notifications.WithLabelValues(s.cfg.NotifyDelivery, "ok").Inc()
	}

	return result, nil
}

// resolveLocation запрашивает свежие координаты, но не дольше LocationRaceTimeout.
// По таймауту берется последняя известная точка с флагом Stale.
func (s *panicAlertService) resolveLocation(ctx context.Context, session models.Session, req models.TriggerRequest) geolocation.Resolution {
	posReq := geolocation.PositionRequest{
		UserID:   session.UserID,
		ClientIP: session.ClientIP,
		Fix:      req.Fix,
	}

	resolved := make(chan geolocation.Resolution, 1)
	go func() {
		resolved <- s.resolver.Resolve(ctx, posReq, true)
	}()

	timer := time.NewTimer(s.cfg.LocationRaceTimeout)
	defer timer.Stop()

	select {
	case res := <-resolved:
		return res
	case <-timer.C:
		s.logger.WithField("user_id", session.UserID).Warn("Location lookup timed out, using cached location")
	case <-ctx.Done():
	}
	cached := s.resolver.Cached(session.UserID)
	return geolocation.Resolution{Location: cached, Stale: cached != nil}
}

func (s *panicAlertService) reporterName(ctx context.Context, session models.Session) string {
	if session.UserName != "" {
		return session.UserName
	}
	profile, err := s.profiles.GetByID(ctx, session.UserID)
	if err != nil || profile.FullName == "" {
		return "Unknown"
	}
	return profile.FullName
}

// notifyResponders рассылает сообщения параллельно; ошибки по одному ответственному не влияют на других
func (s *panicAlertService) notifyResponders(ctx context.Context, alert *models.PanicAlert, reporterName string, loc *models.Location, responders []*models.Profile) (int, int) {
	if !s.messenger.Enabled() {
		s.logger.Warn("Responder messenger is not configured, skipping fan-out")
		return 0, 0
	}

	// карточка на языке каждого ответственного, собираем по разу на язык
	texts := make(map[string]string)
	for _, responder := range responders {
		lang := s.responderLanguage(responder)
		if _, ok := texts[lang]; !ok {
			texts[lang] = telegram.FormatAlert(s.translator, lang, alert, reporterName, loc)
		}
	}

	var sent, failed atomic.Int64
	var wg sync.WaitGroup
	for _, responder := range responders {
		if responder.TelegramChatID == nil {
			continue
		}
		chatID := *responder.TelegramChatID
		text := texts[s.responderLanguage(responder)]
		wg.Add(1)
		go func(responderID uuid.UUID) {
			defer wg.Done()
			log := s.logger.WithFields(logrus.Fields{
				"alert_id":     alert.ID,
				"responder_id": responderID,
			})

			if err := s.messenger.SendMessage(ctx, chatID, text); err != nil {
				failed.Add(1)
				s.metrics.ResponderSends.WithLabelValues("message", "error").Inc()
				log.WithError(err).Warn("Failed to send alert message to responder")
				return
			}
			sent.Add(1)
			s.metrics.ResponderSends.WithLabelValues("message", "ok").Inc()

			if !alert.HasCoordinates() {
				return
			}
			if err := s.messenger.SendLocation(ctx, chatID, *alert.LocationLatitude, *alert.LocationLongitude); err != nil {
				failed.Add(1)
				s.metrics.ResponderSends.WithLabelValues("location", "error").Inc()
				log.WithError(err).Warn("Failed to send alert location to responder")
				return
			}
			sent.Add(1)
			s.metrics.ResponderSends.WithLabelValues("location", "ok").Inc()
		}(responder.ID)
	}
	wg.Wait()
	return int(sent.Load()), int(failed.Load())
}

func (s *panicAlertService) responderLanguage(p *models.Profile) string {
	if p.Language != "" {
		return p.Language
	}
	return s.cfg.DefaultLanguage
}

// backfillAddress дописывает адрес в фоне, когда геокодер не успел до записи тревоги
func (s *panicAlertService) backfillAddress(alert *models.PanicAlert) {
	id, districtID := alert.ID, alert.DistrictID
	lat, lon := *alert.LocationLatitude, *alert.LocationLongitude

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ctx := context.Background()
		log := s.logger.WithField("alert_id", id)

		address, err := s.resolver.ReverseGeocode(ctx, lat, lon)
		if err != nil || address == "" {
			log.WithError(err).Warn("Address back-fill skipped")
			return
		}
		if err := s.alerts.SetAddress(ctx, id, address); err != nil {
			log.WithError(err).Warn("Failed to store back-filled address")
			return
		}
		s.publish(ctx, realtime.EventUpdate, &models.PanicAlert{ID: id, DistrictID: districtID})
	}()
}

// Wait дожидается фоновых задач
func (s *panicAlertService) Wait() {
	s.wg.Wait()
}

func (s *panicAlertService) publish(ctx context.Context, kind string, alert *models.PanicAlert) {
	ev := realtime.ChangeEvent{
		EventType:  kind,
		AlertID:    alert.ID,
		DistrictID: alert.DistrictID,
	}
	if err := s.broker.Publish(ctx, ev); err != nil {
		s.logger.WithError(err).WithField("alert_id", alert.ID).Warn("Failed to publish change event")
	}
}

// StoreLocation сохраняет координаты, присланные устройством
func (s *panicAlertService) StoreLocation(_ context.Context, session models.Session, loc models.Location) (*models.Location, error) {
	if loc.Latitude < -90 || loc.Latitude > 90 || loc.Longitude < -180 || loc.Longitude > 180 {
		return nil, fmt.Errorf("service: coordinates out of range")
	}
	if loc.Source == "" {
		loc.Source = "device"
	}
	if loc.Timestamp.IsZero() {
		loc.Timestamp = time.Now()
	}
	s.resolver.Store(session.UserID, &loc)
	return s.resolver.Cached(session.UserID), nil
}

// ListInbox возвращает последние тревоги, видимые оператору
func (s *panicAlertService) ListInbox(ctx context.Context, session models.Session) ([]*models.PanicAlert, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "panic_alert",
		"method":  "ListInbox",
		"user_id": session.UserID,
	})
	if !session.IsOperator() {
		return nil, fmt.Errorf("service: list inbox: %w", models.ErrForbidden)
	}

	alerts, err := s.alerts.Query(ctx, scopedFilter(session, models.AlertFilter{
		Status: models.StatusAll,
		Range:  models.RangeAll,
		Limit:  s.cfg.InboxLimit,
	}))
	if err != nil {
		log.WithError(err).Error("Failed to list panic alerts from repository")
		return nil, fmt.Errorf("service: could not list panic alerts: %w", err)
	}

	s.mergeNames(ctx, alerts)
	log.WithField("count", len(alerts)).Debug("Inbox listed")
	return alerts, nil
}

// SubscribeInbox шлет полный снимок инбокса при подключении и после каждого события
func (s *panicAlertService) SubscribeInbox(ctx context.Context, session models.Session) (<-chan []*models.PanicAlert, error) {
	if !session.IsOperator() {
		return nil, fmt.Errorf("service: subscribe inbox: %w", models.ErrForbidden)
	}

	filter := realtime.Filter{Events: []string{realtime.EventInsert, realtime.EventUpdate}}
	if !session.IsGlobal() {
		filter.DistrictID = session.DistrictID
	}
	events, err := s.broker.Subscribe(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("service: could not subscribe to alert changes: %w", err)
	}

	snapshots := make(chan []*models.PanicAlert, 1)
	go func() {
		defer close(snapshots)
		s.metrics.RealtimeClients.Inc()
		defer s.metrics.RealtimeClients.Dec()

		push := func() bool {
			alerts, err := s.ListInbox(ctx, session)
			if err != nil {
				s.logger.WithError(err).Warn("Failed to refresh inbox snapshot")
				return true
			}
			select {
			case snapshots <- alerts:
				return true
			case <-ctx.Done():
				return false
			}
		}

		if !push() {
			return
		}
		for range events {
			if !push() {
				return
			}
		}
	}()
	return snapshots, nil
}

// QueryAlerts выполняет выборку админки и считает агрегаты по полученным строкам
func (s *panicAlertService) QueryAlerts(ctx context.Context, session models.Session, filter models.AlertFilter) (*models.AlertQueryResult, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "panic_alert",
		"method":  "QueryAlerts",
		"status":  filter.Status,
		"range":   filter.Range,
	})
	if !session.IsOperator() {
		return nil, fmt.Errorf("service: query alerts: %w", models.ErrForbidden)
	}

	if filter.Status == "" {
		filter.Status = models.StatusAll
	}
	if filter.Range == "" {
		filter.Range = models.RangeAll
	}
	if filter.Limit <= 0 || filter.Limit > s.cfg.AdminQueryLimit {
		filter.Limit = s.cfg.AdminQueryLimit
	}

	alerts, err := s.alerts.Query(ctx, scopedFilter(session, filter))
	if err != nil {
		log.WithError(err).Error("Failed to query panic alerts from repository")
		return nil, fmt.Errorf("service: could not query panic alerts: %w", err)
	}
	s.mergeNames(ctx, alerts)

	log.WithField("count", len(alerts)).Info("Panic alerts queried")
	return &models.AlertQueryResult{
		Alerts: alerts,
		Stats:  models.CountByStatus(alerts),
	}, nil
}

// UpdateStatus меняет статус тревоги оператором
func (s *panicAlertService) UpdateStatus(ctx context.Context, session models.Session, id uuid.UUID, status models.AlertStatus, notes *string, expectedUpdatedAt *time.Time) (*models.PanicAlert, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "panic_alert",
		"method":   "UpdateStatus",
		"alert_id": id,
		"status":   status,
	})
	log.Info("Attempting to update panic alert status")

	fail := func(err error) (*models.PanicAlert, error) {
		s.metrics.StatusUpdates.WithLabelValues(string(status), "error").Inc()
		return nil, err
	}

	if !session.IsOperator() {
		log.Warn("Status update rejected for non-operator")
		return fail(fmt.Errorf("service: update status: %w", models.ErrForbidden))
	}
	if !status.Valid() {
		return fail(fmt.Errorf("service: unknown status %q: %w", status, models.ErrInvalidTransition))
	}

	current, err := s.alerts.GetByID(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Attempted to update a non-existent panic alert")
		return fail(fmt.Errorf("service: could not load panic alert: %w", err))
	}
	if !session.CanAccessDistrict(current.DistrictID) {
		log.Warn("Status update rejected for foreign district")
		return fail(fmt.Errorf("service: update status: %w", models.ErrForbidden))
	}
	if !models.CanTransition(current.AlertStatus, status) {
		log.WithField("from", current.AlertStatus).Warn("Invalid status transition")
		return fail(fmt.Errorf("service: %s -> %s: %w", current.AlertStatus, status, models.ErrInvalidTransition))
	}

	updated, err := s.alerts.UpdateStatus(ctx, models.StatusUpdate{
		AlertID:           id,
		Status:            status,
		Notes:             notes,
		OperatorID:        session.UserID,
		SetResponse:       status != models.AlertStatusActive,
		ExpectedUpdatedAt: expectedUpdatedAt,
	})
	if err != nil {
		log.WithError(err).Error("Failed to update panic alert status in repository")
		return fail(fmt.Errorf("service: could not update panic alert status: %w", err))
	}

	s.metrics.StatusUpdates.WithLabelValues(string(status), "ok").Inc()
	s.publish(ctx, realtime.EventUpdate, updated)
	s.mergeNames(ctx, []*models.PanicAlert{updated})

	log.Info("Panic alert status updated successfully")
	return updated, nil
}

// scopedFilter подставляет район из сессии, игнорируя то, что прислал клиент
func scopedFilter(session models.Session, filter models.AlertFilter) models.AlertFilter {
	filter.AllDistricts = session.IsGlobal()
	filter.DistrictID = session.DistrictID
	return filter
}

// mergeNames дополняет тревоги именами вторым запросом к profiles.
// Ошибка не мешает вернуть список, только без имен.
func (s *panicAlertService) mergeNames(ctx context.Context, alerts []*models.PanicAlert) {
	if len(alerts) == 0 {
		return
	}
	seen := make(map[uuid.UUID]struct{})
	ids := make([]uuid.UUID, 0, len(alerts))
	add := func(id uuid.UUID) {
		if _, ok := seen[id]; !ok {
			seen[id] = struct{}{}
			ids = append(ids, id)
		}
	}
	for _, a := range alerts {
		add(a.UserID)
		if a.RespondedBy != nil {
			add(*a.RespondedBy)
		}
	}

	profiles, err := s.profiles.GetByIDs(ctx, ids)
	if err != nil {
		s.logger.WithError(err).Warn("Failed to load profile names")
		return
	}
	for _, a := range alerts {
		if p, ok := profiles[a.UserID]; ok {
			a.ReporterName = p.FullName
		}
		if a.RespondedBy != nil {
			if p, ok := profiles[*a.RespondedBy]; ok {
				a.ResponderName = p.FullName
			}
		}
	}
}
