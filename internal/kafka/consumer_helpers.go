package kafka

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/Gunvolt24/trickbook/pkg/ctxmeta"
	"github.com/Gunvolt24/trickbook/pkg/metrics"
	"github.com/Gunvolt24/trickbook/pkg/telemetry"
	"github.com/Gunvolt24/trickbook/pkg/validate"
	"github.com/segmentio/kafka-go"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// Заголовки сообщения, которые продюсер может проставить для сквозных логов.
const (
	HeaderRequestID = "x-request-id"
	HeaderUserID    = "x-user-id"
)

// messageContext — контекст обработки: request_id/user_id из заголовков попадают в логи.
func messageContext(ctx context.Context, msg *kafka.Message) context.Context {
	for _, h := range msg.Headers {
		v := string(h.Value)
		if v == "" {
			continue
		}
		switch strings.ToLower(h.Key) {
		case HeaderRequestID:
			ctx = ctxmeta.WithRequestID(ctx, v)
		case HeaderUserID:
			ctx = ctxmeta.WithUserID(ctx, v)
		}
	}
	return ctx
}

// handleMessage — одно событие библиотеки; true — оффсет можно коммитить.
func (c *Consumer) handleMessage(ctx context.Context, topic string, msg *kafka.Message) bool {
	ctx, span := telemetry.StartSpan(messageContext(ctx, msg), "library_event.handle",
		attribute.String("messaging.destination", topic),
		attribute.Int("messaging.kafka.partition", msg.Partition),
		attribute.Int64("messaging.kafka.offset", msg.Offset),
	)
	defer span.End()

	procCtx, cancel := context.WithTimeout(ctx, c.processTimeout)
	err := c.handler.HandleMessage(procCtx, msg.Value)
	cancel()

	if err == nil {
		metrics.KafkaMessagesProcessed.WithLabelValues(topic).Inc()
		return true
	}

	metrics.KafkaMessagesFailed.WithLabelValues(topic).Inc()
	span.SetStatus(codes.Error, err.Error())
	if errors.Is(err, validate.ErrInvalidEvent) {
		c.log.Warnf(ctx, "library event skipped partition=%d offset=%d: %v", msg.Partition, msg.Offset, err)
		return true
	}
	// хранилище недоступно или таймаут: оффсет не двигаем, событие придёт снова
	c.log.Warnf(ctx, "library event failed partition=%d offset=%d: %v (retry)", msg.Partition, msg.Offset, err)
	return false
}

// commitSafely — ошибка коммита только логируется: повтор события идемпотентен.
func (c *Consumer) commitSafely(ctx context.Context, msg *kafka.Message) {
	if err := c.reader.CommitMessages(ctx, *msg); err != nil {
		c.log.Warnf(ctx, "commit failed partition=%d offset=%d: %v", msg.Partition, msg.Offset, err)
	}
}

// sleepWithBackoff — пауза d; false, если контекст отменён раньше.
func (c *Consumer) sleepWithBackoff(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}

func (c *Consumer) nextBackoff(current time.Duration) time.Duration {
	return min(current*2, c.retryMax)
}

// withJitterEqual — половина d фиксирована, вторая случайна.
func (c *Consumer) withJitterEqual(d time.Duration) time.Duration {
	if d <= 0 {
		return 0
	}
	half := d / 2
	return half + time.Duration(c.jitterRand.Int63n(int64(d-half)+1))
}
