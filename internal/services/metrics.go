package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics
var (
	settlementsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "shell_settlements_total",
		Help: "Settlement operations by outcome",
	}, []string{"operation", "result"})

	settlementLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "shell_settlement_duration_seconds",
		Help:    "Settlement latency including retries",
		Buckets: []float64{0.005, 0.01, 0.05, 0.1, 0.5, 1},
	}, []string{"operation"})

	settledVolume = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "shell_settled_volume_minor_total",
		Help: "Settled amounts in minor units",
	}, []string{"operation"})

	webhookEventsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "shell_provider_webhook_events_total",
		Help: "Payment provider webhook events by type and result",
	}, []string{"type", "result"})
)

func observeSettlement(operation string, start time.Time, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	settlementsTotal.WithLabelValues(operation, result).Inc()
	settlementLatency.WithLabelValues(operation).Observe(time.Since(start).Seconds())
}
