package metrics_test

import (
	"testing"

	"github.com/Gunvolt24/trickbook/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMustRegister_IsIdempotent(t *testing.T) {
	// Должно выполняться без паники даже при повторном вызове.
	t.Helper()
	metrics.MustRegister()
	metrics.MustRegister()
}

func TestKafkaCounters_Inc(t *testing.T) {
	metrics.MustRegister()

	beforeConsumed := testutil.ToFloat64(metrics.KafkaMessagesConsumed.WithLabelValues("library-events"))
	beforeFailed := testutil.ToFloat64(metrics.KafkaMessagesFailed.WithLabelValues("library-events"))

	metrics.KafkaMessagesConsumed.WithLabelValues("library-events").Inc()
	metrics.KafkaMessagesFailed.WithLabelValues("library-events").Inc()

	if got := testutil.ToFloat64(metrics.KafkaMessagesConsumed.WithLabelValues("library-events")); got != beforeConsumed+1 {
		t.Fatalf("KafkaMessagesConsumed: got=%v want=%v", got, beforeConsumed+1)
	}
	if got := testutil.ToFloat64(metrics.KafkaMessagesFailed.WithLabelValues("library-events")); got != beforeFailed+1 {
		t.Fatalf("KafkaMessagesFailed: got=%v want=%v", got, beforeFailed+1)
	}
}

func TestCacheOps_CountersByLabel(t *testing.T) {
	metrics.MustRegister()

	hitBefore := testutil.ToFloat64(metrics.CacheOps.WithLabelValues("hit"))
	missBefore := testutil.ToFloat64(metrics.CacheOps.WithLabelValues("miss"))

	metrics.CacheOps.WithLabelValues("hit").Inc()
	metrics.CacheOps.WithLabelValues("hit").Inc()

	if got := testutil.ToFloat64(metrics.CacheOps.WithLabelValues("hit")); got != hitBefore+2 {
		t.Fatalf("CacheOps(hit): got=%v want=%v", got, hitBefore+2)
	}
	if got := testutil.ToFloat64(metrics.CacheOps.WithLabelValues("miss")); got != missBefore {
		t.Fatalf("CacheOps(miss): got=%v want=%v", got, missBefore)
	}
}

func TestOrderFlushes_ByKindAndResult(t *testing.T) {
	metrics.MustRegister()

	okBefore := testutil.ToFloat64(metrics.OrderFlushes.WithLabelValues("trick", "ok"))
	errBefore := testutil.ToFloat64(metrics.OrderFlushes.WithLabelValues("trick", "error"))

	metrics.OrderFlushes.WithLabelValues("trick", "ok").Inc()

	if got := testutil.ToFloat64(metrics.OrderFlushes.WithLabelValues("trick", "ok")); got != okBefore+1 {
		t.Fatalf("OrderFlushes(trick,ok): got=%v want=%v", got, okBefore+1)
	}
	if got := testutil.ToFloat64(metrics.OrderFlushes.WithLabelValues("trick", "error")); got != errBefore {
		t.Fatalf("OrderFlushes(trick,error): got=%v want=%v", got, errBefore)
	}
}

func TestGauges_Set(t *testing.T) {
	metrics.MustRegister()

	cur := testutil.ToFloat64(metrics.CacheSize)
	metrics.CacheSize.Set(cur + 5)
	if got := testutil.ToFloat64(metrics.CacheSize); got != cur+5 {
		t.Fatalf("CacheSize after +5: got=%v want=%v", got, cur+5)
	}
	metrics.CacheSize.Set(cur) // вернуть как было

	pending := testutil.ToFloat64(metrics.OrderPendingUpdates)
	metrics.OrderPendingUpdates.Set(pending + 3)
	if got := testutil.ToFloat64(metrics.OrderPendingUpdates); got != pending+3 {
		t.Fatalf("OrderPendingUpdates after +3: got=%v want=%v", got, pending+3)
	}
	metrics.OrderPendingUpdates.Set(pending)
}
