// Package metrics содержит метрики Prometheus сервера заказов.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	OrdersCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "store_orders_created_total",
		Help: "Total number of orders created",
	})

	OrdersRejectedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "store_orders_rejected_total",
		Help: "Total number of rejected order submissions",
	}, []string{"reason"})

	OrderValue = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "store_order_value",
		Help:    "Order totals in currency units",
		Buckets: []float64{100, 250, 500, 1000, 2500, 5000},
	})

	StatusChangesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "store_order_status_changes_total",
		Help: "Total number of applied order status changes",
	}, []string{"status"})

	StatusChangesRejectedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "store_order_status_changes_rejected_total",
		Help: "Total number of rejected order status changes",
	}, []string{"reason"})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "HTTP request latency",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})
)
