package kafka

import (
	"errors"
	"strings"
	"time"

	"github.com/segmentio/kafka-go"
)

// ErrConsumerConfig — неполная конфигурация потребителя.
var ErrConsumerConfig = errors.New("invalid kafka consumer config")

// ConsumerConfig — параметры потребителя событий библиотеки.
type ConsumerConfig struct {
	Brokers     []string
	Topic       string
	GroupID     string
	StartOffset string        // first|last (регистр и пробелы не важны)
	MaxWait     time.Duration // long-poll брокера; 0 — дефолт kafka-go

	ProcessTimeout time.Duration
	RetryInitial   time.Duration
	RetryMax       time.Duration
}

// Validate — брокеры, топик и группа обязательны: без группы нет коммита оффсетов.
func (c *ConsumerConfig) Validate() error {
	var missing []string
	if len(cleanBrokers(c.Brokers)) == 0 {
		missing = append(missing, "brokers")
	}
	if strings.TrimSpace(c.Topic) == "" {
		missing = append(missing, "topic")
	}
	if strings.TrimSpace(c.GroupID) == "" {
		missing = append(missing, "group_id")
	}
	if len(missing) > 0 {
		return errors.Join(ErrConsumerConfig, errors.New("missing "+strings.Join(missing, ", ")))
	}
	return nil
}

// ReaderConfig — kafka.ReaderConfig с ручным коммитом (CommitInterval = 0).
func (c *ConsumerConfig) ReaderConfig() kafka.ReaderConfig {
	rc := kafka.ReaderConfig{
		Brokers:        cleanBrokers(c.Brokers),
		GroupID:        strings.TrimSpace(c.GroupID),
		Topic:          strings.TrimSpace(c.Topic),
		CommitInterval: 0,
		MaxWait:        c.MaxWait,
		StartOffset:    kafka.LastOffset,
	}
	if strings.EqualFold(strings.TrimSpace(c.StartOffset), "first") {
		rc.StartOffset = kafka.FirstOffset
	}
	return rc
}

// cleanBrokers — envconfig отдаёт "a, b" как ["a", " b"]; пустые адреса выбрасываются.
func cleanBrokers(in []string) []string {
	out := make([]string, 0, len(in))
	for _, b := range in {
		if b = strings.TrimSpace(b); b != "" {
			out = append(out, b)
		}
	}
	return out
}
