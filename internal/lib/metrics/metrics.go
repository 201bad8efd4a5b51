// Package metrics provides the prometheus collectors exported on /metrics.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "pizzeria"

// Metrics owns a private registry so tests can build independent instances.
type Metrics struct {
	registry *prometheus.Registry

	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	cacheLookups         *prometheus.CounterVec
	restaurantPizzasMade prometheus.Counter
	restaurantsDeleted   prometheus.Counter
	validationFailures   prometheus.Counter
}

func New() *Metrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	auto := promauto.With(registry)

	return &Metrics{
		registry: registry,

		httpRequests: auto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "http",
				Name:      "requests_total",
				Help:      "Total number of HTTP requests by route, method and status code",
			},
			[]string{"route", "method", "status_code"},
		),

		httpRequestDuration: auto.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "http",
				Name:      "request_duration_seconds",
				Help:      "HTTP request duration in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"route", "method", "status_code"},
		),

		cacheLookups: auto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "cache",
				Name:      "lookups_total",
				Help:      "Cache lookups by key and result (hit, miss, error)",
			},
			[]string{"key", "result"},
		),

		restaurantPizzasMade: auto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "restaurant_pizzas_created_total",
			Help:      "Restaurant pizzas created",
		}),

		restaurantsDeleted: auto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "restaurants_deleted_total",
			Help:      "Restaurants deleted",
		}),

		validationFailures: auto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "validation_failures_total",
			Help:      "Requests rejected with a validation error",
		}),
	}
}

// Handler serves the registry in the prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *Metrics) RecordHTTPRequest(route, method, statusCode string, seconds float64) {
	m.httpRequests.WithLabelValues(route, method, statusCode).Inc()
	m.httpRequestDuration.WithLabelValues(route, method, statusCode).Observe(seconds)
}

func (m *Metrics) RecordCacheLookup(key, result string) {
	m.cacheLookups.WithLabelValues(key, result).Inc()
}

func (m *Metrics) RecordRestaurantPizzaCreated() {
	m.restaurantPizzasMade.Inc()
}

func (m *Metrics) RecordRestaurantDeleted() {
	m.restaurantsDeleted.Inc()
}

func (m *Metrics) RecordValidationFailure() {
	m.validationFailures.Inc()
}
