package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	KafkaMessagesConsumed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kafka_messages_consumed_total",
			Help: "Number of library events fetched from Kafka",
		},
		[]string{"topic"},
	)
	KafkaMessagesProcessed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kafka_messages_processed_total",
			Help: "Number of library events processed successfully",
		},
		[]string{"topic"},
	)
	KafkaMessagesFailed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kafka_messages_failed_total",
			Help: "Number of library events failed to process",
		},
		[]string{"topic"},
	)
)

var (
	CacheOps = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "content_cache_operations_total",
			Help: "Content cache operations",
		},
		[]string{"op"}, // hit|miss|snapshot_hit|snapshot_miss|evicted|cleared|remote_error
	)
	CacheSize = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "content_cache_size",
			Help: "Number of pages currently in the in-memory content cache",
		},
	)
)

var (
	OrderFlushes = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "order_flushes_total",
			Help: "Batched order upserts by entity kind and result",
		},
		[]string{"kind", "result"}, // kind: category|trick; result: ok|error
	)
	OrderFlushedRows = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "order_flushed_rows_total",
			Help: "Number of order rows written by flushes",
		},
		[]string{"kind"},
	)
	OrderPendingUpdates = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "order_pending_updates",
			Help: "Number of coalesced order updates waiting for the next flush",
		},
	)
)

var registerOnce sync.Once

// MustRegister — регистрирует метрики в глобальном реестре (повторный вызов безопасен).
func MustRegister() {
	registerOnce.Do(func() {
		prometheus.MustRegister(
			KafkaMessagesConsumed, KafkaMessagesProcessed, KafkaMessagesFailed,
			CacheOps, CacheSize,
			OrderFlushes, OrderFlushedRows, OrderPendingUpdates,
		)
	})
}
