package memory

import (
	"container/list"
	"context"
	"strings"
	"sync"

	"github.com/Gunvolt24/trickbook/internal/domain"
	"github.com/Gunvolt24/trickbook/internal/ports"
	"github.com/Gunvolt24/trickbook/pkg/metrics"
)

// Проверка, что ContentCache удовлетворяет интерфейсу ports.ContentCache.
var _ ports.ContentCache = (*ContentCache)(nil)

// DefaultCapacity — ёмкость кэша страниц по умолчанию.
const DefaultCapacity = 100

type entry struct {
	key  string
	page *domain.PaginatedContent
}

// ContentCache — ограниченный FIFO-кэш страниц библиотеки.
// Вытесняется самая старая по вставке запись; чтение порядок не меняет (это не LRU).
type ContentCache struct {
	capacity int

	ll    *list.List // голова — самая старая вставка
	index map[string]*list.Element

	mu sync.Mutex
}

// NewContentCache — конструктор; capacity <= 0 заменяется на DefaultCapacity.
func NewContentCache(capacity int) *ContentCache {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &ContentCache{
		capacity: capacity,
		ll:       list.New(),
		index:    make(map[string]*list.Element),
	}
}

func (c *ContentCache) Get(_ context.Context, key string) (*domain.PaginatedContent, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	elem, ok := c.index[key]
	if !ok {
		return nil, false
	}
	return elem.Value.(*entry).page.Clone(), true
}

// Set — сохраняет копию страницы. Перезапись существующего ключа сохраняет его место в очереди.
func (c *ContentCache) Set(_ context.Context, key string, page *domain.PaginatedContent) {
	if key == "" || page == nil {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.index[key]; ok {
		elem.Value.(*entry).page = page.Clone()
		return
	}

	c.index[key] = c.ll.PushBack(&entry{key: key, page: page.Clone()})

	for c.ll.Len() > c.capacity {
		c.evictOldest()
	}
	metrics.CacheSize.Set(float64(c.ll.Len()))
}

func (c *ContentCache) DeletePrefix(_ context.Context, prefix string) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	removed := 0
	for elem := c.ll.Front(); elem != nil; {
		next := elem.Next()
		if strings.HasPrefix(elem.Value.(*entry).key, prefix) {
			c.removeElement(elem)
			removed++
		}
		elem = next
	}
	if removed > 0 {
		metrics.CacheOps.WithLabelValues("cleared").Add(float64(removed))
		metrics.CacheSize.Set(float64(c.ll.Len()))
	}
	return removed
}

func (c *ContentCache) Clear(_ context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if n := c.ll.Len(); n > 0 {
		metrics.CacheOps.WithLabelValues("cleared").Add(float64(n))
	}
	c.ll.Init()
	c.index = make(map[string]*list.Element)
	metrics.CacheSize.Set(0)
}

func (c *ContentCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ll.Len()
}

// Keys — ключи в порядке вставки (для диагностики и тестов).
func (c *ContentCache) Keys() []string {
	c.mu.Lock()
	defer c.mu.Unlock()

	keys := make([]string, 0, c.ll.Len())
	for elem := c.ll.Front(); elem != nil; elem = elem.Next() {
		keys = append(keys, elem.Value.(*entry).key)
	}
	return keys
}

// evictOldest — удаляет самую раннюю вставку.
func (c *ContentCache) evictOldest() {
	if front := c.ll.Front(); front != nil {
		c.removeElement(front)
		metrics.CacheOps.WithLabelValues("evicted").Inc()
	}
}

func (c *ContentCache) removeElement(elem *list.Element) {
	ent := elem.Value.(*entry)
	delete(c.index, ent.key)
	c.ll.Remove(elem)
}
