package usecase_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/Gunvolt24/trickbook/internal/cache/bolt"
	"github.com/Gunvolt24/trickbook/internal/cache/memory"
	"github.com/Gunvolt24/trickbook/internal/domain"
	"github.com/Gunvolt24/trickbook/internal/ports/mocks"
	"github.com/Gunvolt24/trickbook/internal/usecase"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const userID = "u1"

func makeTricks(n int) []domain.Trick {
	out := make([]domain.Trick, n)
	for i := range out {
		out[i] = domain.Trick{ID: fmt.Sprintf("t%d", i), UserID: userID, Title: fmt.Sprintf("trick %d", i)}
	}
	return out
}

func TestGetUserContentPaginated_CacheHit(t *testing.T) {
	ctrl := gomock.NewController(t)

	source := mocks.NewMockContentSource(ctrl)
	cache := mocks.NewMockContentCache(ctrl)
	page := domain.EmptyContent(0)

	cache.EXPECT().Get(gomock.Any(), usecase.BuildCacheKey(userID, 0, nil, "", nil)).Return(page, true)

	svc := usecase.NewContentService(source, cache, nil, noopLogger{}, 20)
	got := svc.GetUserContentPaginated(context.Background(), userID, 0, nil, "", nil)
	require.Same(t, page, got)
}

func TestGetUserContentPaginated_WriteThrough(t *testing.T) {
	ctrl := gomock.NewController(t)

	source := mocks.NewMockContentSource(ctrl)
	snapshots, err := bolt.Open(filepath.Join(t.TempDir(), "snapshots.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = snapshots.Close() })

	cats := []domain.Category{{ID: "c1", UserID: userID, Name: "Cards"}}
	source.EXPECT().ListCategories(gomock.Any(), userID).Return(cats, nil).Times(1)
	source.EXPECT().QueryTricks(gomock.Any(), gomock.Any()).Return(makeTricks(3), nil).Times(1)

	svc := usecase.NewContentService(source, memory.NewContentCache(10), snapshots, noopLogger{}, 20)

	first := svc.GetUserContentPaginated(context.Background(), userID, 0, nil, "", nil)
	require.Len(t, first.Tricks, 3)
	require.Equal(t, cats, first.Categories)
	require.Equal(t, 1, first.NextPage)

	// второй вызов — из памяти, без удалённого источника
	second := svc.GetUserContentPaginated(context.Background(), userID, 0, nil, "", nil)
	require.Equal(t, first, second)
	require.Equal(t, 1, svc.CacheSize())

	// холодный старт: пустая память, но снимок на диске
	cold := usecase.NewContentService(source, memory.NewContentCache(10), snapshots, noopLogger{}, 20)
	snap := cold.GetSnapshot(context.Background(), userID, 0, nil, "", nil)
	require.NotNil(t, snap)
	require.Len(t, snap.Tricks, 3)
	require.Equal(t, 0, cold.CacheSize(), "GetSnapshot must not populate memory")
}

func TestGetSnapshot_FromPersistentTier(t *testing.T) {
	ctrl := gomock.NewController(t)

	source := mocks.NewMockContentSource(ctrl) // вызовов быть не должно
	cache := mocks.NewMockContentCache(ctrl)
	snapshots := mocks.NewMockSnapshotStore(ctrl)

	key := usecase.BuildCacheKey(userID, 0, []string{"c1"}, "", nil)
	stored := domain.EmptyContent(0)
	stored.Tricks = makeTricks(2)
	raw, err := json.Marshal(stored)
	require.NoError(t, err)

	gomock.InOrder(
		cache.EXPECT().Get(gomock.Any(), key).Return(nil, false),
		snapshots.EXPECT().Load(gomock.Any(), key).Return(raw, true, nil),
	)

	svc := usecase.NewContentService(source, cache, snapshots, noopLogger{}, 20)
	got := svc.GetSnapshot(context.Background(), userID, 0, []string{"c1"}, "", nil)
	require.NotNil(t, got)
	assert.Len(t, got.Tricks, 2)
}

func TestGetSnapshot_Misses(t *testing.T) {
	ctx := context.Background()

	t.Run("no persistent tier", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		cache := mocks.NewMockContentCache(ctrl)
		cache.EXPECT().Get(gomock.Any(), gomock.Any()).Return(nil, false)

		svc := usecase.NewContentService(mocks.NewMockContentSource(ctrl), cache, nil, noopLogger{}, 20)
		assert.Nil(t, svc.GetSnapshot(ctx, userID, 0, nil, "", nil))
	})

	t.Run("key absent", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		cache := mocks.NewMockContentCache(ctrl)
		snapshots := mocks.NewMockSnapshotStore(ctrl)
		cache.EXPECT().Get(gomock.Any(), gomock.Any()).Return(nil, false)
		snapshots.EXPECT().Load(gomock.Any(), gomock.Any()).Return(nil, false, nil)

		svc := usecase.NewContentService(mocks.NewMockContentSource(ctrl), cache, snapshots, noopLogger{}, 20)
		assert.Nil(t, svc.GetSnapshot(ctx, userID, 0, nil, "", nil))
	})

	t.Run("load error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		cache := mocks.NewMockContentCache(ctrl)
		snapshots := mocks.NewMockSnapshotStore(ctrl)
		log := &recLogger{}
		cache.EXPECT().Get(gomock.Any(), gomock.Any()).Return(nil, false)
		snapshots.EXPECT().Load(gomock.Any(), gomock.Any()).Return(nil, false, errors.New("disk"))

		svc := usecase.NewContentService(mocks.NewMockContentSource(ctrl), cache, snapshots, log, 20)
		assert.Nil(t, svc.GetSnapshot(ctx, userID, 0, nil, "", nil))
		assert.Len(t, log.warns, 1)
	})

	t.Run("corrupted json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		cache := mocks.NewMockContentCache(ctrl)
		snapshots := mocks.NewMockSnapshotStore(ctrl)
		cache.EXPECT().Get(gomock.Any(), gomock.Any()).Return(nil, false)
		snapshots.EXPECT().Load(gomock.Any(), gomock.Any()).Return([]byte("{not json"), true, nil)

		svc := usecase.NewContentService(mocks.NewMockContentSource(ctrl), cache, snapshots, noopLogger{}, 20)
		assert.Nil(t, svc.GetSnapshot(ctx, userID, 0, nil, "", nil))
	})

	t.Run("schema mismatch", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		cache := mocks.NewMockContentCache(ctrl)
		snapshots := mocks.NewMockSnapshotStore(ctrl)
		cache.EXPECT().Get(gomock.Any(), gomock.Any()).Return(nil, false)
		snapshots.EXPECT().Load(gomock.Any(), gomock.Any()).Return([]byte(`{"version":0,"tricks":[]}`), true, nil)

		svc := usecase.NewContentService(mocks.NewMockContentSource(ctrl), cache, snapshots, noopLogger{}, 20)
		assert.Nil(t, svc.GetSnapshot(ctx, userID, 0, nil, "", nil))
	})
}

func TestGetUserContentPaginated_FirstPageNeverHasMore(t *testing.T) {
	ctrl := gomock.NewController(t)

	source := mocks.NewMockContentSource(ctrl)
	cache := memory.NewContentCache(10)

	source.EXPECT().ListCategories(gomock.Any(), userID).Return(nil, nil)
	source.EXPECT().QueryTricks(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, q *domain.TrickQuery) ([]domain.Trick, error) {
			assert.Equal(t, 0, q.Limit, "page 0 is fetched unbounded")
			assert.Equal(t, 0, q.Offset)
			assert.Nil(t, q.TrickIDs)
			return makeTricks(50), nil
		})

	svc := usecase.NewContentService(source, cache, nil, noopLogger{}, 20)
	got := svc.GetUserContentPaginated(context.Background(), userID, 0, nil, "", nil)

	require.Len(t, got.Tricks, 50)
	assert.False(t, got.HasMore)
	assert.Equal(t, 1, got.NextPage)
	assert.Equal(t, []domain.Category{}, got.Categories)
	assert.Empty(t, got.Techniques)
	assert.Empty(t, got.Gimmicks)
}

func TestGetUserContentPaginated_WindowedPages(t *testing.T) {
	cases := []struct {
		name    string
		rows    int
		hasMore bool
	}{
		{name: "full window", rows: 20, hasMore: true},
		{name: "short window", rows: 7, hasMore: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			source := mocks.NewMockContentSource(ctrl)

			source.EXPECT().ListCategories(gomock.Any(), userID).Return(nil, nil)
			source.EXPECT().QueryTricks(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, q *domain.TrickQuery) ([]domain.Trick, error) {
					assert.Equal(t, 20, q.Limit)
					assert.Equal(t, 40, q.Offset)
					assert.Equal(t, "coin", q.Search)
					return makeTricks(tc.rows), nil
				})

			svc := usecase.NewContentService(source, memory.NewContentCache(10), nil, noopLogger{}, 20)
			got := svc.GetUserContentPaginated(context.Background(), userID, 2, nil, " coin ", nil)
			assert.Equal(t, tc.hasMore, got.HasMore)
			assert.Equal(t, 3, got.NextPage)
		})
	}
}

func TestGetUserContentPaginated_CategoryUnion(t *testing.T) {
	ctrl := gomock.NewController(t)
	source := mocks.NewMockContentSource(ctrl)

	source.EXPECT().ListCategories(gomock.Any(), userID).Return(nil, nil)
	source.EXPECT().TrickIDsInCategory(gomock.Any(), "c1").Return([]string{"t1", "t2"}, nil)
	source.EXPECT().TrickIDsInCategory(gomock.Any(), "c2").Return([]string{"t2", "t3"}, nil)
	source.EXPECT().QueryTricks(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, q *domain.TrickQuery) ([]domain.Trick, error) {
			assert.ElementsMatch(t, []string{"t1", "t2", "t3"}, q.TrickIDs)
			return makeTricks(3), nil
		})

	svc := usecase.NewContentService(source, memory.NewContentCache(10), nil, noopLogger{}, 20)
	got := svc.GetUserContentPaginated(context.Background(), userID, 0, []string{"c2", "c1", "c1"}, "", nil)
	assert.Len(t, got.Tricks, 3)
}

func TestGetUserContentPaginated_EmptyCategoriesShortCircuit(t *testing.T) {
	ctrl := gomock.NewController(t)
	source := mocks.NewMockContentSource(ctrl)

	source.EXPECT().ListCategories(gomock.Any(), userID).Return(nil, nil)
	source.EXPECT().TrickIDsInCategory(gomock.Any(), "c1").Return(nil, nil)
	// QueryTricks не ожидается

	svc := usecase.NewContentService(source, memory.NewContentCache(10), nil, noopLogger{}, 20)
	got := svc.GetUserContentPaginated(context.Background(), userID, 0, []string{"c1"}, "", nil)
	require.NotNil(t, got)
	assert.Empty(t, got.Tricks)
	assert.NotNil(t, got.Tricks)
}

func TestGetUserContentPaginated_TagModes(t *testing.T) {
	rows := []domain.Trick{
		{ID: "ab", TagIDs: []string{"A", "B"}},
		{ID: "a", TagIDs: []string{"A"}},
		{ID: "b", TagIDs: []string{"B"}},
		{ID: "none"},
	}

	cases := []struct {
		mode domain.TagMode
		want []string
	}{
		{mode: domain.TagModeAnd, want: []string{"ab"}},
		{mode: domain.TagModeOr, want: []string{"ab", "a", "b"}},
	}

	for _, tc := range cases {
		t.Run(string(tc.mode), func(t *testing.T) {
			ctrl := gomock.NewController(t)
			source := mocks.NewMockContentSource(ctrl)
			source.EXPECT().ListCategories(gomock.Any(), userID).Return(nil, nil)
			source.EXPECT().QueryTricks(gomock.Any(), gomock.Any()).Return(rows, nil)

			svc := usecase.NewContentService(source, memory.NewContentCache(10), nil, noopLogger{}, 20)
			got := svc.GetUserContentPaginated(context.Background(), userID, 0, nil, "",
				&domain.ContentFilters{Tags: []string{"A", "B"}, TagMode: tc.mode})

			ids := make([]string, 0, len(got.Tricks))
			for _, tr := range got.Tricks {
				ids = append(ids, tr.ID)
			}
			assert.Equal(t, tc.want, ids)
		})
	}
}

func TestGetUserContentPaginated_RemoteErrorNotCached(t *testing.T) {
	ctrl := gomock.NewController(t)

	source := mocks.NewMockContentSource(ctrl)
	cache := mocks.NewMockContentCache(ctrl)
	snapshots := mocks.NewMockSnapshotStore(ctrl) // Save не ожидается
	log := &recLogger{}

	cache.EXPECT().Get(gomock.Any(), gomock.Any()).Return(nil, false)
	source.EXPECT().ListCategories(gomock.Any(), userID).Return(nil, errors.New("network down"))
	source.EXPECT().QueryTricks(gomock.Any(), gomock.Any()).Return(makeTricks(1), nil).AnyTimes()

	svc := usecase.NewContentService(source, cache, snapshots, log, 20)
	got := svc.GetUserContentPaginated(context.Background(), userID, 1, nil, "", nil)

	require.Equal(t, domain.EmptyContent(1), got)
	assert.Equal(t, 1, log.errorCount())
}

func TestGetUserContentPaginated_SnapshotSaveErrorIsLogged(t *testing.T) {
	ctrl := gomock.NewController(t)

	source := mocks.NewMockContentSource(ctrl)
	cache := mocks.NewMockContentCache(ctrl)
	snapshots := mocks.NewMockSnapshotStore(ctrl)
	log := &recLogger{}
	key := usecase.BuildCacheKey(userID, 0, nil, "", nil)

	gomock.InOrder(
		cache.EXPECT().Get(gomock.Any(), key).Return(nil, false),
		cache.EXPECT().Set(gomock.Any(), key, gomock.Any()),
		snapshots.EXPECT().Save(gomock.Any(), key, gomock.Any()).Return(errors.New("disk full")),
	)
	source.EXPECT().ListCategories(gomock.Any(), userID).Return(nil, nil)
	source.EXPECT().QueryTricks(gomock.Any(), gomock.Any()).Return(makeTricks(1), nil)

	svc := usecase.NewContentService(source, cache, snapshots, log, 20)
	got := svc.GetUserContentPaginated(context.Background(), userID, 0, nil, "", nil)

	assert.Len(t, got.Tricks, 1)
	assert.Len(t, log.warns, 1)
}

func TestSaveSnapshot_BothTiers(t *testing.T) {
	ctrl := gomock.NewController(t)

	cache := mocks.NewMockContentCache(ctrl)
	snapshots := mocks.NewMockSnapshotStore(ctrl)
	key := usecase.BuildCacheKey(userID, 1, nil, "q", nil)
	page := domain.EmptyContent(1)

	cache.EXPECT().Set(gomock.Any(), key, page)
	snapshots.EXPECT().Save(gomock.Any(), key, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, data []byte) error {
			var decoded domain.PaginatedContent
			require.NoError(t, json.Unmarshal(data, &decoded))
			assert.Equal(t, domain.SnapshotSchemaVersion, decoded.Version)
			return nil
		})

	svc := usecase.NewContentService(mocks.NewMockContentSource(ctrl), cache, snapshots, noopLogger{}, 20)
	svc.SaveSnapshot(context.Background(), userID, 1, nil, "q", nil, page)
}

func TestClearUserCache_OnlyThatUser(t *testing.T) {
	cache := memory.NewContentCache(10)
	ctx := context.Background()
	cache.Set(ctx, usecase.BuildCacheKey("u1", 0, nil, "", nil), domain.EmptyContent(0))
	cache.Set(ctx, usecase.BuildCacheKey("u1", 1, nil, "", nil), domain.EmptyContent(1))
	cache.Set(ctx, usecase.BuildCacheKey("u10", 0, nil, "", nil), domain.EmptyContent(0))

	ctrl := gomock.NewController(t)
	svc := usecase.NewContentService(mocks.NewMockContentSource(ctrl), cache, nil, noopLogger{}, 20)

	svc.ClearUserCache(ctx, "u1")
	assert.Equal(t, 1, svc.CacheSize())

	svc.ClearAllCache(ctx)
	assert.Equal(t, 0, svc.CacheSize())
}

func TestWarmUp_FirstPagePerUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	source := mocks.NewMockContentSource(ctrl)

	source.EXPECT().ListCategories(gomock.Any(), "u1").Return(nil, nil)
	source.EXPECT().ListCategories(gomock.Any(), "u2").Return(nil, nil)
	source.EXPECT().QueryTricks(gomock.Any(), gomock.Any()).Return(nil, nil).Times(2)

	svc := usecase.NewContentService(source, memory.NewContentCache(10), nil, noopLogger{}, 20)
	svc.WarmUp(context.Background(), []string{"u1", " ", "u2"})
	assert.Equal(t, 2, svc.CacheSize())
}

// Отрицательная страница на всех входах ведёт на один и тот же ключ.
func TestNegativePage_SameKeyOnAllPaths(t *testing.T) {
	ctrl := gomock.NewController(t)
	source := mocks.NewMockContentSource(ctrl) // вызовов быть не должно

	svc := usecase.NewContentService(source, memory.NewContentCache(10), nil, noopLogger{}, 20)
	ctx := context.Background()

	saved := domain.EmptyContent(0)
	saved.Tricks = makeTricks(2)
	svc.SaveSnapshot(ctx, userID, -1, nil, "", nil, saved)

	require.NotNil(t, svc.GetSnapshot(ctx, userID, -5, nil, "", nil))
	require.NotNil(t, svc.GetSnapshot(ctx, userID, 0, nil, "", nil))
	got := svc.GetUserContentPaginated(ctx, userID, -2, nil, "", nil)
	require.Len(t, got.Tricks, 2)
	require.Equal(t, 1, svc.CacheSize())
}
