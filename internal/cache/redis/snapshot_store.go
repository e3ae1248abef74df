package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Gunvolt24/trickbook/internal/ports"
	goredis "github.com/redis/go-redis/v9"
)

// Проверка, что SnapshotStore удовлетворяет интерфейсу ports.SnapshotStore.
var _ ports.SnapshotStore = (*SnapshotStore)(nil)

// Config — параметры подключения к Redis.
type Config struct {
	Addr     string
	DB       int
	Password string
	// Namespace — префикс ключей; все снимки живут под ним.
	Namespace string
	// TTL — срок жизни снимка; 0 — без истечения.
	TTL time.Duration
}

// SnapshotStore — снимки страниц в Redis (вариант для нескольких инстансов сервиса).
type SnapshotStore struct {
	rdb       goredis.UniversalClient
	namespace string
	ttl       time.Duration
}

// New — создаёт клиент и проверяет соединение.
func New(ctx context.Context, cfg Config) (*SnapshotStore, error) {
	rdb := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Addr,
		DB:       cfg.DB,
		Password: cfg.Password,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return NewWithClient(rdb, cfg.Namespace, cfg.TTL), nil
}

// NewWithClient — обёртка над готовым клиентом.
func NewWithClient(rdb goredis.UniversalClient, namespace string, ttl time.Duration) *SnapshotStore {
	if namespace == "" {
		namespace = "trickbook:snapshots"
	}
	return &SnapshotStore{rdb: rdb, namespace: namespace, ttl: ttl}
}

func (s *SnapshotStore) Load(ctx context.Context, key string) ([]byte, bool, error) {
	b, err := s.rdb.Get(ctx, s.key(key)).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get: %w", err)
	}
	return b, true, nil
}

func (s *SnapshotStore) Save(ctx context.Context, key string, data []byte) error {
	if err := s.rdb.Set(ctx, s.key(key), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

func (s *SnapshotStore) Close() error {
	return s.rdb.Close()
}

func (s *SnapshotStore) key(k string) string { return s.namespace + ":" + k }
