package kafka

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/Gunvolt24/trickbook/internal/ports"
	"github.com/Gunvolt24/trickbook/pkg/metrics"
	"github.com/segmentio/kafka-go"
)

// Проверка, что Consumer удовлетворяет интерфейсу верхнего уровня (порт приложения).
var _ ports.MessageConsumer = (*Consumer)(nil)

// reader — минимальный контракт над kafka.Reader (подменяется моками в тестах).
type reader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Config() kafka.ReaderConfig
	Close() error
}

// eventHandler — обработчик события библиотеки (usecase.LibraryEventService).
type eventHandler interface {
	HandleMessage(ctx context.Context, raw []byte) error
}

// Consumer — чтение событий библиотеки с ручным коммитом (at-least-once).
type Consumer struct {
	reader         reader
	handler        eventHandler
	log            ports.Logger
	processTimeout time.Duration
	retryInitial   time.Duration
	retryMax       time.Duration
	jitterRand     *rand.Rand
	closeOnce      sync.Once
}

// NewConsumer — конструктор поверх kafka.Reader.
func NewConsumer(cfg *ConsumerConfig, handler eventHandler, log ports.Logger) *Consumer {
	return newConsumer(kafka.NewReader(cfg.ReaderConfig()), cfg, handler, log)
}

func newConsumer(r reader, cfg *ConsumerConfig, handler eventHandler, log ports.Logger) *Consumer {
	pt := cfg.ProcessTimeout
	if pt <= 0 {
		pt = 5 * time.Second
	}
	rInit := cfg.RetryInitial
	if rInit <= 0 {
		rInit = time.Second
	}
	rMax := cfg.RetryMax
	if rMax < rInit {
		rMax = 30 * time.Second
	}

	return &Consumer{
		reader:         r,
		handler:        handler,
		log:            log,
		processTimeout: pt,
		retryInitial:   rInit,
		retryMax:       rMax,
		jitterRand:     rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Run — основной цикл до отмены контекста:
//   - событие обработано → коммит;
//   - событие невалидно (validate.ErrInvalidEvent) → лог и коммит, повтор бессмысленен;
//   - временная ошибка → без коммита, пауза с джиттером, событие придёт снова.
func (c *Consumer) Run(ctx context.Context) error {
	rc := c.reader.Config()
	c.log.Infof(ctx, "library events consumer started topic=%s group_id=%s brokers=%v", rc.Topic, rc.GroupID, rc.Brokers)

	retry := c.retryInitial
	for {
		msg, fetchErr := c.reader.FetchMessage(ctx)
		if fetchErr != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			// брокер/сеть: экспоненциальная пауза с equal-jitter
			sleep := c.withJitterEqual(retry)
			c.log.Warnf(ctx, "fetch failed: %v (will retry in %s)", fetchErr, sleep)
			if !c.sleepWithBackoff(ctx, sleep) {
				return ctx.Err()
			}
			retry = c.nextBackoff(retry)
			continue
		}

		retry = c.retryInitial
		metrics.KafkaMessagesConsumed.WithLabelValues(rc.Topic).Inc()

		if c.handleMessage(ctx, rc.Topic, &msg) {
			c.commitSafely(ctx, &msg)
			continue
		}
		// разносим повторы во времени, чтобы не долбить упавшую зависимость
		_ = c.sleepWithBackoff(ctx, c.withJitterEqual(min(c.retryInitial, 500*time.Millisecond)))
	}
}

// Close — закрывает reader (повторный вызов безопасен).
func (c *Consumer) Close() (retErr error) {
	c.closeOnce.Do(func() {
		retErr = c.reader.Close()
	})
	return retErr
}
