//go:build integration

package kafka_test

import (
	"context"
	"encoding/json"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	cachemem "github.com/Gunvolt24/trickbook/internal/cache/memory"
	"github.com/Gunvolt24/trickbook/internal/domain"
	ikafka "github.com/Gunvolt24/trickbook/internal/kafka"
	pgrepo "github.com/Gunvolt24/trickbook/internal/repo/postgres"
	"github.com/Gunvolt24/trickbook/internal/testutil"
	"github.com/Gunvolt24/trickbook/internal/usecase"
	"github.com/Gunvolt24/trickbook/pkg/logger"
	"github.com/Gunvolt24/trickbook/pkg/validate"
)

var reUnsafe = regexp.MustCompile(`[^a-zA-Z0-9._-]+`)

func safe(t *testing.T) string { return reUnsafe.ReplaceAllString(t.Name(), "-") }

// stack — Postgres + Redpanda + сервисы приложения.
type stack struct {
	ctx     context.Context
	pool    *pgxpool.Pool
	kf      *testutil.KafkaEnv
	orders  *pgrepo.OrderRepository
	content *usecase.ContentService
	events  *usecase.LibraryEventService
}

func newStack(t *testing.T) *stack {
	t.Helper()

	// длинный контекст — на контейнеры
	ctxStart, cancelStart := context.WithTimeout(context.Background(), 2*time.Minute)
	t.Cleanup(cancelStart)

	pg, stopPG, err := testutil.StartPostgresTC(ctxStart)
	require.NoError(t, err)
	t.Cleanup(func() { _ = stopPG(context.Background()) })
	require.NoError(t, testutil.ApplyMigrationsGoose(pg.DSN))

	kf, stopKF, err := testutil.StartKafkaTC(ctxStart, "library-itc")
	require.NoError(t, err)
	t.Cleanup(func() { _ = stopKF(context.Background()) })

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	t.Cleanup(cancel)

	pool, err := pgxpool.New(ctx, pg.DSN)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	logg, closer, err := logger.NewZapLogger(false)
	require.NoError(t, err)
	t.Cleanup(func() { _ = closer() })

	orderRepo := pgrepo.NewOrderRepository(pool)
	orderSvc := usecase.NewOrderService(orderRepo, pgrepo.NewLibraryRepository(pool), logg,
		usecase.OrderConfig{FlushDelay: 100 * time.Millisecond})
	t.Cleanup(func() { _ = orderSvc.Close(context.Background()) })

	contentSvc := usecase.NewContentService(pgrepo.NewContentSource(pool), cachemem.NewContentCache(100), nil, logg, 0)

	return &stack{
		ctx:     ctx,
		pool:    pool,
		kf:      kf,
		orders:  orderRepo,
		content: contentSvc,
		events:  usecase.NewLibraryEventService(contentSvc, orderSvc, validate.NewEventValidator(), logg),
	}
}

func (s *stack) runConsumer(t *testing.T, topic, group string) {
	t.Helper()

	logg := logger.NewNop()
	consumer := ikafka.NewConsumer(&ikafka.ConsumerConfig{
		Brokers:        s.kf.Brokers,
		Topic:          topic,
		GroupID:        group,
		StartOffset:    "first",
		ProcessTimeout: 5 * time.Second,
		RetryInitial:   200 * time.Millisecond,
		RetryMax:       2 * time.Second,
	}, s.events, logg)

	runCtx, cancelRun := context.WithCancel(s.ctx)
	t.Cleanup(cancelRun)
	go func() { _ = consumer.Run(runCtx) }()
}

func event(t *testing.T, e domain.LibraryEvent) []byte {
	t.Helper()
	raw, err := json.Marshal(e)
	require.NoError(t, err)
	return raw
}

// waitFor — опрос условия до дедлайна.
func waitFor(t *testing.T, d time.Duration, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(d)
	for !cond() {
		if time.Now().After(deadline) {
			t.Fatalf("condition not met in %s", d)
		}
		time.Sleep(200 * time.Millisecond)
	}
}

// 1) category_created: появляется позиция категории, кэш пользователя сброшен
func TestKafka_CategoryCreated_InitializesOrder_TC(t *testing.T) {
	s := newStack(t)

	topic, group := testutil.UniqueTopicAndGroup(s.kf.BaseTopic + "-" + safe(t))
	require.NoError(t, testutil.EnsureTopic(s.ctx, s.kf.Brokers[0], topic))

	user := testutil.NewUserID()
	cat, err := testutil.InsertCategory(s.ctx, s.pool, user, "Cards")
	require.NoError(t, err)

	// прогреваем кэш: страница должна исчезнуть после события
	s.content.GetUserContentPaginated(s.ctx, user, 0, nil, "", nil)
	require.Equal(t, 1, s.content.CacheSize())

	s.runConsumer(t, topic, group)

	require.NoError(t, testutil.WriteEvent(s.ctx, s.kf.Brokers, topic, event(t, domain.LibraryEvent{
		Type:       domain.EventCategoryCreated,
		UserID:     user,
		CategoryID: cat.ID,
		OccurredAt: time.Now().UTC(),
	})))

	waitFor(t, 20*time.Second, func() bool {
		got, err := s.orders.CategoryOrder(s.ctx, user)
		require.NoError(t, err)
		return len(got) == 1
	})
	got, err := s.orders.CategoryOrder(s.ctx, user)
	require.NoError(t, err)
	require.Equal(t, domain.CategoryOrder{UserID: user, CategoryID: cat.ID, Position: 0}, got[0])
	require.Zero(t, s.content.CacheSize())
}

// 2) Мусор и невалидное событие пропускаются, следующее валидное применяется
func TestKafka_SkipInvalid_ThenApplyValid_TC(t *testing.T) {
	s := newStack(t)

	topic, group := testutil.UniqueTopicAndGroup(s.kf.BaseTopic + "-invalid-" + safe(t))
	require.NoError(t, testutil.EnsureTopic(s.ctx, s.kf.Brokers[0], topic))

	s.runConsumer(t, topic, group)

	user := testutil.NewUserID()
	require.NoError(t, testutil.WriteEvent(s.ctx, s.kf.Brokers, topic, []byte("not-a-json")))
	require.NoError(t, testutil.WriteEvent(s.ctx, s.kf.Brokers, topic, event(t, domain.LibraryEvent{
		Type:   domain.EventTrickCreated, // без trick_id
		UserID: user,
	})))
	require.NoError(t, testutil.WriteEvent(s.ctx, s.kf.Brokers, topic, event(t, domain.LibraryEvent{
		Type:        domain.EventTrickCreated,
		UserID:      user,
		TrickID:     "t1",
		CategoryIDs: []string{"c1", "c2"},
	})))

	waitFor(t, 20*time.Second, func() bool {
		got, err := s.orders.AllTrickOrders(s.ctx, user)
		require.NoError(t, err)
		return len(got) == 2
	})
}

// 3) Повторная доставка category_created не плодит позиций
func TestKafka_CategoryCreated_Idempotent_TC(t *testing.T) {
	s := newStack(t)

	topic, group := testutil.UniqueTopicAndGroup(s.kf.BaseTopic + "-dup-" + safe(t))
	require.NoError(t, testutil.EnsureTopic(s.ctx, s.kf.Brokers[0], topic))

	user := testutil.NewUserID()
	raw := event(t, domain.LibraryEvent{Type: domain.EventCategoryCreated, UserID: user, CategoryID: "c1"})
	require.NoError(t, testutil.WriteEvent(s.ctx, s.kf.Brokers, topic, raw))
	require.NoError(t, testutil.WriteEvent(s.ctx, s.kf.Brokers, topic, raw))
	// маркер конца: после него оба дубля точно обработаны
	require.NoError(t, testutil.WriteEvent(s.ctx, s.kf.Brokers, topic, event(t, domain.LibraryEvent{
		Type: domain.EventCategoryCreated, UserID: user, CategoryID: "c2",
	})))

	s.runConsumer(t, topic, group)

	waitFor(t, 20*time.Second, func() bool {
		got, err := s.orders.CategoryOrder(s.ctx, user)
		require.NoError(t, err)
		return len(got) == 2
	})
	got, err := s.orders.CategoryOrder(s.ctx, user)
	require.NoError(t, err)
	require.Equal(t, []domain.CategoryOrder{
		{UserID: user, CategoryID: "c1", Position: 0},
		{UserID: user, CategoryID: "c2", Position: 1},
	}, got)
}
