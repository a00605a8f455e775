package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics - бизнес-метрики конвейера тревог
type Metrics struct {
	AlertsTriggered   prometheus.Counter
	AlertInsertErrors prometheus.Counter
	ResponderSends    *prometheus.CounterVec
	Notifications     *prometheus.CounterVec
	StatusUpdates     *prometheus.CounterVec
	RealtimeClients   prometheus.Gauge
}

// New регистрирует метрики в переданном реестре
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		AlertsTriggered: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "panic_alerts_triggered_total",
			Help: "Total number of panic alert submissions",
		}),
		AlertInsertErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "panic_alert_insert_errors_total",
			Help: "Total number of failed panic alert inserts",
		}),
		ResponderSends: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "panic_alert_responder_sends_total",
			Help: "Chat-bot messages sent to responders",
		}, []string{"kind", "outcome"}),
		Notifications: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "panic_alert_notifications_total",
			Help: "Notification function invocations",
		}, []string{"delivery", "outcome"}),
		StatusUpdates: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "panic_alert_status_updates_total",
			Help: "Panic alert status updates",
		}, []string{"status", "outcome"}),
		RealtimeClients: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "panic_alert_realtime_clients",
			Help: "Connected realtime inbox clients",
		}),
	}
	reg.MustRegister(
		m.AlertsTriggered,
		m.AlertInsertErrors,
		m.ResponderSends,
		m.Notifications,
		m.StatusUpdates,
		m.RealtimeClients,
	)
	return m
}

// NewNop - метрики без глобальной регистрации, для тестов
func NewNop() *Metrics {
	return New(prometheus.NewRegistry())
}
