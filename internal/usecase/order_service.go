package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/Gunvolt24/trickbook/internal/domain"
	"github.com/Gunvolt24/trickbook/internal/ports"
	"github.com/Gunvolt24/trickbook/pkg/metrics"
	"github.com/Gunvolt24/trickbook/pkg/telemetry"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// DefaultFlushDelay — окно тишины, после которого накопленные изменения порядка уходят в хранилище.
const DefaultFlushDelay = 1500 * time.Millisecond

var (
	// ErrInvalidPosition — отрицательная позиция.
	ErrInvalidPosition = errors.New("invalid position")
	// ErrOrderServiceClosed — сервис остановлен, новые изменения не принимаются.
	ErrOrderServiceClosed = errors.New("order service closed")
)

// favoritesAliases — названия псевдокатегории «избранное» (сравнение без учёта регистра).
var favoritesAliases = map[string]struct{}{
	"favorites":  {},
	"favourites": {},
	"favoritos":  {},
	"favoris":    {},
	"favoriten":  {},
	"preferiti":  {},
	"избранное":  {},
}

// IsFavoritesCategory — является ли имя категории псевдокатегорией «избранное».
func IsFavoritesCategory(name string) bool {
	_, ok := favoritesAliases[strings.ToLower(strings.TrimSpace(name))]
	return ok
}

// OrderConfig — параметры отложенной записи.
type OrderConfig struct {
	FlushDelay   time.Duration // окно тишины перед записью
	FlushTimeout time.Duration // таймаут записи, запущенной таймером
}

type flushState int

const (
	stateIdle flushState = iota
	statePending
	stateFlushing
)

func (s flushState) String() string {
	switch s {
	case statePending:
		return "pending"
	case stateFlushing:
		return "flushing"
	default:
		return "idle"
	}
}

// OrderService — пользовательский порядок категорий и трюков.
// Частые изменения (перетаскивание) копятся в pending-картах и пишутся пачкой
// после FlushDelay тишины; каждое новое изменение перезапускает таймер.
type OrderService struct {
	repo    ports.OrderRepository
	library ports.LibraryRepository
	log     ports.Logger
	cfg     OrderConfig

	mu                sync.Mutex
	state             flushState
	timer             *time.Timer
	generation        uint64 // отличает актуальный таймер от уже отменённого
	pendingCategories map[string]domain.CategoryOrder
	pendingTricks     map[string]domain.TrickOrder
	closed            bool

	// flushMu — запись пачек строго по очереди: last-write-wins сохраняется между соседними сбросами.
	flushMu sync.Mutex
}

// NewOrderService — DI-конструктор.
func NewOrderService(
	repo ports.OrderRepository,
	library ports.LibraryRepository,
	log ports.Logger,
	cfg OrderConfig,
) *OrderService {
	if cfg.FlushDelay <= 0 {
		cfg.FlushDelay = DefaultFlushDelay
	}
	if cfg.FlushTimeout <= 0 {
		cfg.FlushTimeout = 10 * time.Second
	}
	return &OrderService{
		repo:              repo,
		library:           library,
		log:               log,
		cfg:               cfg,
		pendingCategories: make(map[string]domain.CategoryOrder),
		pendingTricks:     make(map[string]domain.TrickOrder),
	}
}

// GetUserCategoryOrder — сохранённый порядок категорий.
func (s *OrderService) GetUserCategoryOrder(ctx context.Context, userID string) ([]domain.CategoryOrder, error) {
	return s.repo.CategoryOrder(ctx, userID)
}

// GetUserTrickOrder — сохранённый порядок трюков в категории.
func (s *OrderService) GetUserTrickOrder(ctx context.Context, userID, categoryID string) ([]domain.TrickOrder, error) {
	return s.repo.TrickOrder(ctx, userID, categoryID)
}

// GetAllUserTrickOrders — порядок трюков во всех категориях пользователя.
func (s *OrderService) GetAllUserTrickOrders(ctx context.Context, userID string) ([]domain.TrickOrder, error) {
	return s.repo.AllTrickOrders(ctx, userID)
}

// UpdateCategoryOrder — отложенное изменение позиции категории.
func (s *OrderService) UpdateCategoryOrder(ctx context.Context, userID, categoryID string, position int) error {
	if position < 0 {
		return fmt.Errorf("category %s position %d: %w", categoryID, position, ErrInvalidPosition)
	}
	return s.schedule(ctx, []domain.CategoryOrder{{UserID: userID, CategoryID: categoryID, Position: position}}, nil)
}

// UpdateTrickOrder — отложенное изменение позиции трюка в категории.
func (s *OrderService) UpdateTrickOrder(ctx context.Context, userID, categoryID, trickID string, position int) error {
	if position < 0 {
		return fmt.Errorf("trick %s position %d: %w", trickID, position, ErrInvalidPosition)
	}
	return s.schedule(ctx, nil, []domain.TrickOrder{{UserID: userID, CategoryID: categoryID, TrickID: trickID, Position: position}})
}

// MoveTrickToCategory — перенос трюка между категориями.
// Шаги не транзакционны: ошибка любого шага возвращается вызывающему, уже выполненные шаги не откатываются.
//  1. связь трюка с категорией (кроме переноса в «избранное»);
//  2. снятие/установка отметки избранного;
//  3. удаление старой позиции и отложенная запись новой;
//  4. перенумерация оставшихся трюков исходной категории с нуля.
func (s *OrderService) MoveTrickToCategory(
	ctx context.Context,
	userID, trickID, fromCategoryID, toCategoryID string,
	newPosition int,
) error {
	if newPosition < 0 {
		return fmt.Errorf("trick %s position %d: %w", trickID, newPosition, ErrInvalidPosition)
	}
	if fromCategoryID == toCategoryID {
		return s.UpdateTrickOrder(ctx, userID, toCategoryID, trickID, newPosition)
	}

	toFavorites, err := s.isFavorites(ctx, userID, toCategoryID)
	if err != nil {
		return err
	}
	fromFavorites, err := s.isFavorites(ctx, userID, fromCategoryID)
	if err != nil {
		return err
	}

	if !toFavorites {
		if err := s.library.MoveTrickCategory(ctx, trickID, fromCategoryID, toCategoryID); err != nil {
			return fmt.Errorf("move trick %s to category %s: %w", trickID, toCategoryID, err)
		}
	}
	if fromFavorites {
		if err := s.library.RemoveFavorite(ctx, userID, trickID); err != nil {
			return fmt.Errorf("remove favorite %s: %w", trickID, err)
		}
	}
	if toFavorites {
		if err := s.library.AddFavorite(ctx, userID, trickID); err != nil {
			return fmt.Errorf("add favorite %s: %w", trickID, err)
		}
	}

	if err := s.repo.DeleteTrickOrder(ctx, userID, fromCategoryID, trickID); err != nil {
		return fmt.Errorf("delete trick order %s/%s: %w", fromCategoryID, trickID, err)
	}
	s.dropPending(func(o domain.TrickOrder) bool {
		return o.UserID == userID && o.CategoryID == fromCategoryID && o.TrickID == trickID
	}, nil)

	if err := s.UpdateTrickOrder(ctx, userID, toCategoryID, trickID, newPosition); err != nil {
		return err
	}

	if err := s.reindexCategory(ctx, userID, fromCategoryID, trickID); err != nil {
		return err
	}

	s.log.Infof(ctx, "trick moved user=%s trick=%s from=%s to=%s position=%d", userID, trickID, fromCategoryID, toCategoryID, newPosition)
	return nil
}

// InitializeCategoryOrder — новая категория в конец списка (max+1 или 0). Пишется сразу, без отложенной записи.
// Повторный вызов для уже упорядоченной категории ничего не меняет.
func (s *OrderService) InitializeCategoryOrder(ctx context.Context, userID, categoryID string) error {
	existing, err := s.repo.CategoryOrder(ctx, userID)
	if err != nil {
		return fmt.Errorf("load category order: %w", err)
	}

	position := 0
	for _, o := range existing {
		if o.CategoryID == categoryID {
			s.log.Debugf(ctx, "category order already initialized user=%s category=%s", userID, categoryID)
			return nil
		}
		if o.Position >= position {
			position = o.Position + 1
		}
	}

	order := domain.CategoryOrder{UserID: userID, CategoryID: categoryID, Position: position}
	if err := s.repo.UpsertCategoryOrders(ctx, []domain.CategoryOrder{order}); err != nil {
		return fmt.Errorf("upsert category order: %w", err)
	}
	return nil
}

// InitializeTrickOrder — новый трюк на позицию 0, остальные сдвигаются на одну вниз.
// Сдвиги идут через отложенную запись, затем принудительный сброс: к возврату позиция уже сохранена.
func (s *OrderService) InitializeTrickOrder(ctx context.Context, userID, categoryID, trickID string) error {
	existing, err := s.repo.TrickOrder(ctx, userID, categoryID)
	if err != nil {
		return fmt.Errorf("load trick order: %w", err)
	}
	effective := s.effectivePositions(userID, categoryID, existing)
	for _, o := range effective {
		if o.TrickID == trickID {
			s.log.Debugf(ctx, "trick order already initialized user=%s category=%s trick=%s", userID, categoryID, trickID)
			return nil
		}
	}

	// подряд с единицы: позиции после сдвига уникальны, даже если pending-строки совпадали
	shifted := make([]domain.TrickOrder, 0, len(effective)+1)
	for i, o := range effective {
		o.Position = i + 1
		shifted = append(shifted, o)
	}
	shifted = append(shifted, domain.TrickOrder{UserID: userID, CategoryID: categoryID, TrickID: trickID, Position: 0})

	if err := s.schedule(ctx, nil, shifted); err != nil {
		return err
	}
	return s.Flush(ctx)
}

// CleanupCategoryOrder — удалить порядок категории и трюков в ней. Пишется сразу.
func (s *OrderService) CleanupCategoryOrder(ctx context.Context, userID, categoryID string) error {
	s.dropPending(
		func(o domain.TrickOrder) bool { return o.UserID == userID && o.CategoryID == categoryID },
		func(o domain.CategoryOrder) bool { return o.UserID == userID && o.CategoryID == categoryID },
	)
	if err := s.repo.DeleteCategoryOrders(ctx, userID, categoryID); err != nil {
		return fmt.Errorf("delete category order %s: %w", categoryID, err)
	}
	return nil
}

// Flush — немедленный сброс накопленных изменений (таймер отменяется).
func (s *OrderService) Flush(ctx context.Context) error {
	return s.flush(ctx, 0)
}

// Close — остановить таймер и дописать накопленное. После Close изменения отклоняются.
func (s *OrderService) Close(ctx context.Context) error {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()
	return s.Flush(ctx)
}

// Pending — число изменений, ожидающих записи.
func (s *OrderService) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pendingCategories) + len(s.pendingTricks)
}

// schedule — положить изменения в pending-карты (перезаписью по ключу) и перевзвести таймер.
func (s *OrderService) schedule(ctx context.Context, categories []domain.CategoryOrder, tricks []domain.TrickOrder) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrOrderServiceClosed
	}

	for _, o := range categories {
		s.pendingCategories[o.Key()] = o
	}
	for _, o := range tricks {
		s.pendingTricks[o.Key()] = o
	}
	metrics.OrderPendingUpdates.Set(float64(len(s.pendingCategories) + len(s.pendingTricks)))

	if s.timer != nil {
		s.timer.Stop()
	}
	s.generation++
	gen := s.generation
	s.timer = time.AfterFunc(s.cfg.FlushDelay, func() { s.onTimer(gen) })

	if s.state != stateFlushing {
		s.state = statePending
	}
	s.log.Debugf(ctx, "order flush rescheduled pending=%d delay=%s", len(s.pendingCategories)+len(s.pendingTricks), s.cfg.FlushDelay)
	return nil
}

func (s *OrderService) onTimer(gen uint64) {
	ctx, cancel := context.WithTimeout(context.Background(), s.cfg.FlushTimeout)
	defer cancel()

	// Ошибки уже залогированы: отложенная запись их не пробрасывает и не повторяет.
	_ = s.flush(ctx, gen)
}

// flush — swap-and-clear pending-карт под мьютексом и пакетная запись вне его.
// gen == 0 — принудительный сброс; иначе срабатывание таймера поколения gen.
func (s *OrderService) flush(ctx context.Context, gen uint64) error {
	s.flushMu.Lock()
	defer s.flushMu.Unlock()

	s.mu.Lock()
	if gen != 0 && gen != s.generation {
		// таймер перевзведён или уже отработал принудительный сброс
		s.mu.Unlock()
		return nil
	}
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.generation++

	categories := make([]domain.CategoryOrder, 0, len(s.pendingCategories))
	for _, o := range s.pendingCategories {
		categories = append(categories, o)
	}
	tricks := make([]domain.TrickOrder, 0, len(s.pendingTricks))
	for _, o := range s.pendingTricks {
		tricks = append(tricks, o)
	}
	s.pendingCategories = make(map[string]domain.CategoryOrder)
	s.pendingTricks = make(map[string]domain.TrickOrder)
	metrics.OrderPendingUpdates.Set(0)

	if len(categories) == 0 && len(tricks) == 0 {
		s.state = stateIdle
		s.mu.Unlock()
		return nil
	}
	s.state = stateFlushing
	s.mu.Unlock()

	sort.Slice(categories, func(i, j int) bool { return categories[i].Key() < categories[j].Key() })
	sort.Slice(tricks, func(i, j int) bool { return tricks[i].Key() < tricks[j].Key() })

	ctx, span := telemetry.StartSpan(ctx, "order.flush",
		attribute.Int("order.categories", len(categories)),
		attribute.Int("order.tricks", len(tricks)),
	)
	defer span.End()

	var errs []error
	if len(categories) > 0 {
		if err := s.repo.UpsertCategoryOrders(ctx, categories); err != nil {
			s.log.Errorf(ctx, "category order flush failed rows=%d err=%v", len(categories), err)
			metrics.OrderFlushes.WithLabelValues("category", "error").Inc()
			errs = append(errs, fmt.Errorf("upsert category orders: %w", err))
		} else {
			metrics.OrderFlushes.WithLabelValues("category", "ok").Inc()
			metrics.OrderFlushedRows.WithLabelValues("category").Add(float64(len(categories)))
		}
	}
	if len(tricks) > 0 {
		if err := s.repo.UpsertTrickOrders(ctx, tricks); err != nil {
			s.log.Errorf(ctx, "trick order flush failed rows=%d err=%v", len(tricks), err)
			metrics.OrderFlushes.WithLabelValues("trick", "error").Inc()
			errs = append(errs, fmt.Errorf("upsert trick orders: %w", err))
		} else {
			metrics.OrderFlushes.WithLabelValues("trick", "ok").Inc()
			metrics.OrderFlushedRows.WithLabelValues("trick").Add(float64(len(tricks)))
		}
	}

	s.mu.Lock()
	// Изменения, пришедшие во время записи, уже лежат в новых картах и взвели свой таймер.
	if s.timer != nil {
		s.state = statePending
	} else {
		s.state = stateIdle
	}
	s.mu.Unlock()

	s.log.Debugf(ctx, "order flush done categories=%d tricks=%d", len(categories), len(tricks))
	if err := errors.Join(errs...); err != nil {
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	return nil
}

func (s *OrderService) currentState() flushState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// dropPending — выбросить устаревшие pending-записи (перенос, удаление категории).
func (s *OrderService) dropPending(trick func(domain.TrickOrder) bool, category func(domain.CategoryOrder) bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if trick != nil {
		for k, o := range s.pendingTricks {
			if trick(o) {
				delete(s.pendingTricks, k)
			}
		}
	}
	if category != nil {
		for k, o := range s.pendingCategories {
			if category(o) {
				delete(s.pendingCategories, k)
			}
		}
	}
	metrics.OrderPendingUpdates.Set(float64(len(s.pendingCategories) + len(s.pendingTricks)))
}

// effectivePositions — трюки категории с учётом ещё не записанных изменений:
// сохранённые строки с pending-позициями плюс трюки, которые пока есть только в pending.
// Результат упорядочен по позиции (при равенстве — по id трюка).
func (s *OrderService) effectivePositions(userID, categoryID string, stored []domain.TrickOrder) []domain.TrickOrder {
	s.mu.Lock()
	byKey := make(map[string]domain.TrickOrder, len(stored)+len(s.pendingTricks))
	for _, o := range stored {
		byKey[o.Key()] = o
	}
	for k, o := range s.pendingTricks {
		if o.UserID == userID && o.CategoryID == categoryID {
			byKey[k] = o
		}
	}
	s.mu.Unlock()

	out := make([]domain.TrickOrder, 0, len(byKey))
	for _, o := range byKey {
		out = append(out, o)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Position != out[j].Position {
			return out[i].Position < out[j].Position
		}
		return out[i].TrickID < out[j].TrickID
	})
	return out
}

// reindexCategory — перенумеровать трюки категории подряд с нуля (без excludeTrickID).
func (s *OrderService) reindexCategory(ctx context.Context, userID, categoryID, excludeTrickID string) error {
	stored, err := s.repo.TrickOrder(ctx, userID, categoryID)
	if err != nil {
		return fmt.Errorf("load trick order %s: %w", categoryID, err)
	}

	remaining := make([]domain.TrickOrder, 0, len(stored))
	for _, o := range s.effectivePositions(userID, categoryID, stored) {
		if o.TrickID != excludeTrickID {
			remaining = append(remaining, o)
		}
	}
	for i := range remaining {
		remaining[i].Position = i
	}
	if len(remaining) == 0 {
		return nil
	}
	return s.schedule(ctx, nil, remaining)
}

// isFavorites — ведёт ли id на псевдокатегорию «избранное» (по имени категории).
func (s *OrderService) isFavorites(ctx context.Context, userID, categoryID string) (bool, error) {
	category, err := s.library.CategoryByID(ctx, userID, categoryID)
	if err != nil {
		return false, fmt.Errorf("load category %s: %w", categoryID, err)
	}
	if category == nil {
		return false, nil
	}
	return IsFavoritesCategory(category.Name), nil
}
