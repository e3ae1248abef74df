package bolt

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/Gunvolt24/trickbook/internal/ports"
	bbolt "go.etcd.io/bbolt"
)

// Проверка, что SnapshotStore удовлетворяет интерфейсу ports.SnapshotStore.
var _ ports.SnapshotStore = (*SnapshotStore)(nil)

var bucketSnapshots = []byte("snapshots")

// SnapshotStore — снимки страниц в локальном файле BoltDB (одно пространство имён — бакет snapshots).
type SnapshotStore struct {
	db *bbolt.DB
}

// Open — открывает (создаёт) файл базы и бакет снимков.
func Open(path string) (*SnapshotStore, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create snapshot dir: %w", err)
		}
	}

	db, err := bbolt.Open(path, 0o600, &bbolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("open bolt db: %w", err)
	}

	if err := db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketSnapshots)
		return err
	}); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create bucket: %w", err)
	}

	return &SnapshotStore{db: db}, nil
}

// Load — читает снимок; значение копируется, т.к. срез bbolt живёт только внутри транзакции.
func (s *SnapshotStore) Load(_ context.Context, key string) ([]byte, bool, error) {
	var data []byte
	err := s.db.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket(bucketSnapshots)
		if b == nil {
			return nil
		}
		if v := b.Get([]byte(key)); v != nil {
			data = bytes.Clone(v)
		}
		return nil
	})
	if err != nil {
		return nil, false, fmt.Errorf("bolt view: %w", err)
	}
	return data, data != nil, nil
}

func (s *SnapshotStore) Save(_ context.Context, key string, data []byte) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketSnapshots).Put([]byte(key), data)
	})
}

// Keys — ключи с заданным префиксом (пустой префикс — все), в лексикографическом порядке.
func (s *SnapshotStore) Keys(prefix string) ([]string, error) {
	var keys []string
	err := s.db.View(func(tx *bbolt.Tx) error {
		c := tx.Bucket(bucketSnapshots).Cursor()
		p := []byte(prefix)
		for k, _ := c.Seek(p); k != nil && bytes.HasPrefix(k, p); k, _ = c.Next() {
			keys = append(keys, string(k))
		}
		return nil
	})
	return keys, err
}

// DeleteFunc — удаляет ключи, для которых match вернул true; возвращает число удалённых.
func (s *SnapshotStore) DeleteFunc(match func(key string) bool) (int, error) {
	removed := 0
	err := s.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket(bucketSnapshots)
		var doomed [][]byte
		c := b.Cursor()
		for k, _ := c.First(); k != nil; k, _ = c.Next() {
			if match(string(k)) {
				doomed = append(doomed, bytes.Clone(k))
			}
		}
		for _, k := range doomed {
			if err := b.Delete(k); err != nil {
				return err
			}
		}
		removed = len(doomed)
		return nil
	})
	return removed, err
}

func (s *SnapshotStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}
