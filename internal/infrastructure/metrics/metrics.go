package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// OrderMetrics collects the order lifecycle counters. All record methods are
// nil-receiver safe so usecases under test can run without a registry.
type OrderMetrics struct {
	OrdersCreatedTotal   prometheus.CounterVec
	OrdersCompletedTotal prometheus.CounterVec
	OrdersCancelledTotal prometheus.CounterVec

	EscrowLockedGauge prometheus.GaugeVec

	DisputesOpenedTotal   prometheus.CounterVec
	DisputesResolvedTotal prometheus.CounterVec

	OrderLifetimeSeconds prometheus.HistogramVec

	ProviderErrorsTotal prometheus.CounterVec
}

func NewOrderMetrics() *OrderMetrics {
	return &OrderMetrics{
		OrdersCreatedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "orders_created_total",
				Help: "Orders created, by currency",
			},
			[]string{"currency"},
		),

		OrdersCompletedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "orders_completed_total",
				Help: "Orders confirmed by the buyer with funds released",
			},
			[]string{"currency"},
		),

		OrdersCancelledTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "orders_cancelled_total",
				Help: "Orders cancelled, by reason (user, escrow_expired)",
			},
			[]string{"reason"},
		),

		EscrowLockedGauge: *promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "orders_escrow_locked",
				Help: "Orders currently holding funds in escrow",
			},
			[]string{"currency"},
		),

		DisputesOpenedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "disputes_opened_total",
				Help: "Disputes opened by buyers",
			},
			[]string{"currency"},
		),

		DisputesResolvedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "disputes_resolved_total",
				Help: "Disputes resolved, by verdict",
			},
			[]string{"verdict"},
		),

		OrderLifetimeSeconds: *promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "order_lifetime_seconds",
				Help:    "Time from order creation to a terminal status",
				Buckets: prometheus.ExponentialBuckets(60, 2, 12),
			},
			[]string{"status"},
		),

		ProviderErrorsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "escrow_provider_errors_total",
				Help: "Escrow provider call failures, by operation",
			},
			[]string{"operation"},
		),
	}
}

func (m *OrderMetrics) RecordOrderCreated(currency string) {
	if m == nil {
		return
	}
	m.OrdersCreatedTotal.WithLabelValues(currency).Inc()
}

func (m *OrderMetrics) RecordEscrowLocked(currency string) {
	if m == nil {
		return
	}
	m.EscrowLockedGauge.WithLabelValues(currency).Inc()
}

func (m *OrderMetrics) RecordEscrowReleased(currency string) {
	if m == nil {
		return
	}
	m.EscrowLockedGauge.WithLabelValues(currency).Dec()
}

func (m *OrderMetrics) RecordOrderCompleted(currency string, lifetimeSeconds float64) {
	if m == nil {
		return
	}
	m.OrdersCompletedTotal.WithLabelValues(currency).Inc()
	m.OrderLifetimeSeconds.WithLabelValues("completed").Observe(lifetimeSeconds)
}

func (m *OrderMetrics) RecordOrderCancelled(reason string, lifetimeSeconds float64) {
	if m == nil {
		return
	}
	m.OrdersCancelledTotal.WithLabelValues(reason).Inc()
	m.OrderLifetimeSeconds.WithLabelValues("cancelled").Observe(lifetimeSeconds)
}

func (m *OrderMetrics) RecordDisputeOpened(currency string) {
	if m == nil {
		return
	}
	m.DisputesOpenedTotal.WithLabelValues(currency).Inc()
}

func (m *OrderMetrics) RecordDisputeResolved(verdict string) {
	if m == nil {
		return
	}
	m.DisputesResolvedTotal.WithLabelValues(verdict).Inc()
}

func (m *OrderMetrics) RecordProviderError(operation string) {
	if m == nil {
		return
	}
	m.ProviderErrorsTotal.WithLabelValues(operation).Inc()
}
