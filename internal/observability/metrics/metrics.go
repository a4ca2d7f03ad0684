// Package metrics exposes Prometheus instruments for the conversation
// pipeline. All methods are nil-safe so callers never need to guard.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// ConversationMetrics instruments turns, provider calls, and search.
type ConversationMetrics struct {
	turnsTotal      *prometheus.CounterVec
	providerLatency *prometheus.HistogramVec
	fallbackTotal   prometheus.Counter
	searchQueries   prometheus.Counter
	bookingsTotal   *prometheus.CounterVec
}

// NewConversationMetrics registers the instruments on the given registerer.
func NewConversationMetrics(reg prometheus.Registerer) *ConversationMetrics {
	m := &ConversationMetrics{
		turnsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "carebot_turns_total",
			Help: "Conversation turns processed, by intent and response type.",
		}, []string{"intent", "response_type"}),
		providerLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "carebot_provider_latency_seconds",
			Help:    "Model provider call latency.",
			Buckets: prometheus.DefBuckets,
		}, []string{"model"}),
		fallbackTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "carebot_model_fallback_total",
			Help: "Turns answered by the static fallback because no provider was available.",
		}),
		searchQueries: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "carebot_search_queries_total",
			Help: "Content search queries executed.",
		}),
		bookingsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "carebot_bookings_total",
			Help: "Booking submissions, by outcome.",
		}, []string{"outcome"}),
	}
	reg.MustRegister(m.turnsTotal, m.providerLatency, m.fallbackTotal, m.searchQueries, m.bookingsTotal)
	return m
}

func (m *ConversationMetrics) RecordTurn(intent, responseType string) {
	if m == nil {
		return
	}
	m.turnsTotal.WithLabelValues(intent, responseType).Inc()
}

func (m *ConversationMetrics) ObserveProviderLatency(model string, seconds float64) {
	if m == nil {
		return
	}
	m.providerLatency.WithLabelValues(model).Observe(seconds)
}

func (m *ConversationMetrics) RecordFallback() {
	if m == nil {
		return
	}
	m.fallbackTotal.Inc()
}

func (m *ConversationMetrics) RecordSearchQuery() {
	if m == nil {
		return
	}
	m.searchQueries.Inc()
}

func (m *ConversationMetrics) RecordBooking(outcome string) {
	if m == nil {
		return
	}
	m.bookingsTotal.WithLabelValues(outcome).Inc()
}
