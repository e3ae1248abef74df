package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/Gunvolt24/trickbook/internal/domain"
	"github.com/Gunvolt24/trickbook/internal/ports"
	"github.com/Gunvolt24/trickbook/pkg/metrics"
	"github.com/Gunvolt24/trickbook/pkg/telemetry"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// DefaultPageSize — размер окна для страниц с номером > 0.
const DefaultPageSize = 20

// ContentService — постраничное чтение библиотеки через двухуровневый кэш:
// память процесса, затем персистентные снимки, затем удалённый источник.
type ContentService struct {
	source    ports.ContentSource  // удалённый источник
	cache     ports.ContentCache   // in-memory уровень
	snapshots ports.SnapshotStore  // персистентный уровень; nil — отключён
	log       ports.Logger         // логгер
	pageSize  int                  // размер окна страниц > 0
}

// NewContentService — DI-конструктор. snapshots может быть nil.
func NewContentService(
	source ports.ContentSource,
	cache ports.ContentCache,
	snapshots ports.SnapshotStore,
	log ports.Logger,
	pageSize int,
) *ContentService {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &ContentService{
		source:    source,
		cache:     cache,
		snapshots: snapshots,
		log:       log,
		pageSize:  pageSize,
	}
}

// GetSnapshot — «показать хоть что-то» при холодном старте: память, затем снимок.
// Никогда не ходит в удалённый источник и не заполняет уровни кэша. nil — полный промах.
func (s *ContentService) GetSnapshot(
	ctx context.Context,
	userID string,
	page int,
	categoryIDs []string,
	query string,
	filters *domain.ContentFilters,
) *domain.PaginatedContent {
	key := BuildCacheKey(userID, page, categoryIDs, query, filters)

	if cached, ok := s.cache.Get(ctx, key); ok {
		metrics.CacheOps.WithLabelValues("hit").Inc()
		return cached
	}
	if s.snapshots == nil {
		return nil
	}

	raw, ok, err := s.snapshots.Load(ctx, key)
	if err != nil {
		s.log.Warnf(ctx, "snapshot load failed key=%s err=%v", key, err)
		return nil
	}
	if !ok {
		metrics.CacheOps.WithLabelValues("snapshot_miss").Inc()
		return nil
	}

	var snapshot domain.PaginatedContent
	if err := json.Unmarshal(raw, &snapshot); err != nil {
		s.log.Warnf(ctx, "snapshot decode failed key=%s err=%v", key, err)
		return nil
	}
	if snapshot.Version != domain.SnapshotSchemaVersion {
		s.log.Infof(ctx, "snapshot schema mismatch key=%s got=%d want=%d", key, snapshot.Version, domain.SnapshotSchemaVersion)
		return nil
	}

	metrics.CacheOps.WithLabelValues("snapshot_hit").Inc()
	return &snapshot
}

// SaveSnapshot — запись в оба уровня. Ошибки персистентного уровня логируются и не пробрасываются.
func (s *ContentService) SaveSnapshot(
	ctx context.Context,
	userID string,
	page int,
	categoryIDs []string,
	query string,
	filters *domain.ContentFilters,
	value *domain.PaginatedContent,
) {
	s.saveByKey(ctx, BuildCacheKey(userID, page, categoryIDs, query, filters), value)
}

// GetUserContentPaginated — основной путь чтения.
// Попадание в память возвращается сразу; при промахе — параллельные запросы к источнику,
// фильтр по тегам в памяти и запись в оба уровня. Ошибки источника превращаются в пустой результат.
func (s *ContentService) GetUserContentPaginated(
	ctx context.Context,
	userID string,
	page int,
	categoryIDs []string,
	query string,
	filters *domain.ContentFilters,
) *domain.PaginatedContent {
	if page < 0 {
		page = 0
	}
	key := BuildCacheKey(userID, page, categoryIDs, query, filters)

	if cached, ok := s.cache.Get(ctx, key); ok {
		metrics.CacheOps.WithLabelValues("hit").Inc()
		return cached
	}
	metrics.CacheOps.WithLabelValues("miss").Inc()

	start := time.Now()
	result, err := s.fetch(ctx, userID, page, categoryIDs, query, filters)
	if err != nil {
		metrics.CacheOps.WithLabelValues("remote_error").Inc()
		s.log.Errorf(ctx, "content fetch failed user=%s page=%d err=%v", userID, page, err)
		return domain.EmptyContent(page)
	}

	s.saveByKey(ctx, key, result)
	s.log.Debugf(ctx, "content fetched user=%s page=%d tricks=%d took=%s", userID, page, len(result.Tricks), time.Since(start))
	return result
}

// ClearUserCache — удаляет из памяти все страницы пользователя. Снимки не трогаются:
// при следующем холодном старте они по-прежнему доступны.
func (s *ContentService) ClearUserCache(ctx context.Context, userID string) {
	n := s.cache.DeletePrefix(ctx, UserKeyPrefix(userID))
	s.log.Infof(ctx, "content cache cleared user=%s entries=%d", userID, n)
}

// ClearAllCache — полная очистка in-memory уровня (например, при выходе из аккаунта).
func (s *ContentService) ClearAllCache(ctx context.Context) {
	s.cache.Clear(ctx)
	s.log.Infof(ctx, "content cache cleared completely")
}

// CacheSize — число страниц в памяти.
func (s *ContentService) CacheSize() int { return s.cache.Len() }

// WarmUp — прогрев первой страницы для списка пользователей.
func (s *ContentService) WarmUp(ctx context.Context, userIDs []string) {
	for _, userID := range userIDs {
		if ctx.Err() != nil {
			return
		}
		if userID = strings.TrimSpace(userID); userID == "" {
			continue
		}
		s.GetUserContentPaginated(ctx, userID, 0, nil, "", nil)
	}
}

func (s *ContentService) saveByKey(ctx context.Context, key string, value *domain.PaginatedContent) {
	if value == nil {
		return
	}
	s.cache.Set(ctx, key, value)

	if s.snapshots == nil {
		return
	}
	if value.Version == 0 {
		v := *value
		v.Version = domain.SnapshotSchemaVersion
		value = &v
	}
	raw, err := json.Marshal(value)
	if err != nil {
		s.log.Warnf(ctx, "snapshot encode failed key=%s err=%v", key, err)
		return
	}
	if err := s.snapshots.Save(ctx, key, raw); err != nil {
		s.log.Warnf(ctx, "snapshot save failed key=%s err=%v", key, err)
	}
}

// fetch — сборка страницы из удалённого источника.
func (s *ContentService) fetch(
	ctx context.Context,
	userID string,
	page int,
	categoryIDs []string,
	query string,
	filters *domain.ContentFilters,
) (_ *domain.PaginatedContent, err error) {
	ctx, span := telemetry.StartSpan(ctx, "content.fetch",
		attribute.Int("content.page", page),
		attribute.Int("content.categories", len(categoryIDs)),
	)
	defer func() {
		if err != nil {
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	f := NormalizeFilters(filters)
	trickQuery := &domain.TrickQuery{
		UserID:  userID,
		Search:  strings.TrimSpace(query),
		Filters: f,
	}
	if page > 0 {
		trickQuery.Limit = s.pageSize
		trickQuery.Offset = page * s.pageSize
	}

	var (
		categories []domain.Category
		tricks     []domain.Trick
	)

	g, gctx := errgroup.WithContext(ctx)

	// Категории — всегда полный список без фильтров.
	g.Go(func() error {
		list, err := s.source.ListCategories(gctx, userID)
		if err != nil {
			return fmt.Errorf("list categories: %w", err)
		}
		categories = list
		return nil
	})

	g.Go(func() error {
		if cats := normalizeIDs(categoryIDs); len(cats) > 0 {
			ids, err := s.trickIDsInCategories(gctx, cats)
			if err != nil {
				return err
			}
			if len(ids) == 0 {
				tricks = []domain.Trick{}
				return nil
			}
			trickQuery.TrickIDs = ids
		}

		list, err := s.source.QueryTricks(gctx, trickQuery)
		if err != nil {
			return fmt.Errorf("query tricks: %w", err)
		}
		tricks = list
		return nil
	})

	if err = g.Wait(); err != nil {
		return nil, err
	}

	hasMore := false
	if page > 0 {
		hasMore = len(tricks) == s.pageSize
	}

	result := domain.EmptyContent(page)
	if categories != nil {
		result.Categories = categories
	}
	result.Tricks = filterByTags(tricks, f.Tags, f.TagMode)
	if result.Tricks == nil {
		result.Tricks = []domain.Trick{}
	}
	result.HasMore = hasMore
	return result, nil
}

// trickIDsInCategories — объединение (без повторов) id трюков по всем категориям.
func (s *ContentService) trickIDsInCategories(ctx context.Context, categoryIDs []string) ([]string, error) {
	sets := make([][]string, 0, len(categoryIDs))
	for _, categoryID := range categoryIDs {
		ids, err := s.source.TrickIDsInCategory(ctx, categoryID)
		if err != nil {
			return nil, fmt.Errorf("trick ids in category %s: %w", categoryID, err)
		}
		sets = append(sets, ids)
	}
	return unionIDs(sets...), nil
}
