package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// OrderMetrics tracks the flash-sale order flow.
type OrderMetrics struct {
	OrdersCreatedTotal   prometheus.CounterVec
	OrdersListedTotal    prometheus.CounterVec
	OrdersSplitTotal     prometheus.CounterVec
	OrdersAssignedTotal  prometheus.CounterVec
	OrdersCompletedTotal prometheus.CounterVec
	OrdersCancelledTotal prometheus.CounterVec

	CreateRejectedTotal prometheus.CounterVec

	SalePhase prometheus.GaugeVec

	CreateOrderDuration prometheus.HistogramVec
}

func NewOrderMetrics() *OrderMetrics {
	return &OrderMetrics{
		OrdersCreatedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "flash_orders_created_total",
				Help: "Orders created during the flash sale",
			},
			[]string{"product_id", "source"},
		),

		OrdersListedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "flash_orders_listed_total",
				Help: "Orders marked paid and listed",
			},
			[]string{"product_id"},
		),

		OrdersSplitTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "flash_orders_split_total",
				Help: "Parent orders split into children",
			},
			[]string{"product_id"},
		),

		OrdersAssignedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "flash_orders_assigned_total",
				Help: "Orders assigned to an operator",
			},
			[]string{"product_id"},
		),

		OrdersCompletedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "flash_orders_completed_total",
				Help: "Orders completed",
			},
			[]string{"product_id"},
		),

		OrdersCancelledTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "flash_orders_cancelled_total",
				Help: "Orders cancelled before payment",
			},
			[]string{"product_id", "reason"},
		),

		CreateRejectedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "flash_order_create_rejected_total",
				Help: "Create-order submissions rejected by a guard",
			},
			[]string{"reason"},
		),

		SalePhase: *promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "flash_sale_phase",
				Help: "Current sale phase (1 for the active phase, 0 otherwise)",
			},
			[]string{"phase"},
		),

		CreateOrderDuration: *promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "flash_order_create_duration_seconds",
				Help:    "End-to-end create-order handling time",
				Buckets: prometheus.ExponentialBuckets(0.01, 2, 10),
			},
			[]string{"outcome"},
		),
	}
}

func (m *OrderMetrics) RecordOrderCreated(productID, source string) {
	m.OrdersCreatedTotal.WithLabelValues(productID, source).Inc()
}

func (m *OrderMetrics) RecordOrderListed(productID string) {
	m.OrdersListedTotal.WithLabelValues(productID).Inc()
}

func (m *OrderMetrics) RecordOrderSplit(productID string) {
	m.OrdersSplitTotal.WithLabelValues(productID).Inc()
}

func (m *OrderMetrics) RecordOrderAssigned(productID string) {
	m.OrdersAssignedTotal.WithLabelValues(productID).Inc()
}

func (m *OrderMetrics) RecordOrderCompleted(productID string) {
	m.OrdersCompletedTotal.WithLabelValues(productID).Inc()
}

func (m *OrderMetrics) RecordOrderCancelled(productID, reason string) {
	m.OrdersCancelledTotal.WithLabelValues(productID, reason).Inc()
}

func (m *OrderMetrics) RecordCreateRejected(reason string) {
	m.CreateRejectedTotal.WithLabelValues(reason).Inc()
}

func (m *OrderMetrics) RecordSalePhase(activePhase string, phases []string) {
	for _, phase := range phases {
		v := 0.0
		if phase == activePhase {
			v = 1.0
		}
		m.SalePhase.WithLabelValues(phase).Set(v)
	}
}

func (m *OrderMetrics) RecordCreateDuration(outcome string, seconds float64) {
	m.CreateOrderDuration.WithLabelValues(outcome).Observe(seconds)
}
