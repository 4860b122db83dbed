package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics коллекторы Prometheus сервиса
type Metrics struct {
	serviceName string

	// HTTPRequestsTotal счетчик HTTP запросов по методу, маршруту и статусу
	HTTPRequestsTotal *prometheus.CounterVec

	// HTTPRequestDuration гистограмма длительности HTTP запросов
	HTTPRequestDuration *prometheus.HistogramVec

	// HTTPRequestsInFlight количество запросов в обработке
	HTTPRequestsInFlight prometheus.Gauge

	// SlotConflictsTotal счетчик отклонённых из-за конфликта слота операций
	SlotConflictsTotal *prometheus.CounterVec
}

// New регистрирует и возвращает коллекторы сервиса serviceName
func New(serviceName string) *Metrics {
	return &Metrics{
		serviceName: serviceName,
		HTTPRequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"service", "method", "path", "status"},
		),
		HTTPRequestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"service", "method", "path"},
		),
		HTTPRequestsInFlight: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name:        "http_requests_in_flight",
				Help:        "Current number of HTTP requests being served",
				ConstLabels: prometheus.Labels{"service": serviceName},
			},
		),
		SlotConflictsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "booking_slot_conflicts_total",
				Help: "Total number of operations rejected due to a slot conflict",
			},
			[]string{"service", "operation"},
		),
	}
}

// IncSlotConflict инкрементирует счетчик конфликтов слота для операции
func (m *Metrics) IncSlotConflict(operation string) {
	m.SlotConflictsTotal.WithLabelValues(m.serviceName, operation).Inc()
}
