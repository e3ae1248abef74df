package usecase_test

import (
	"strings"
	"testing"

	"github.com/Gunvolt24/trickbook/internal/domain"
	"github.com/Gunvolt24/trickbook/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildCacheKey_NoFilters(t *testing.T) {
	got := usecase.BuildCacheKey("u1", 0, nil, "", nil)
	assert.Equal(t, "u1:v1:p0:all:no-query:no-filters", got)

	// пустые фильтры и пробельный запрос — то же самое
	assert.Equal(t, got, usecase.BuildCacheKey("u1", 0, []string{" "}, "   ", &domain.ContentFilters{}))
}

func TestBuildCacheKey_NegativePageIsFirstPage(t *testing.T) {
	assert.Equal(t, usecase.BuildCacheKey("u1", 0, nil, "", nil), usecase.BuildCacheKey("u1", -3, nil, "", nil))
}

func TestBuildCacheKey_Deterministic(t *testing.T) {
	f1 := &domain.ContentFilters{
		Difficulties: []int{3, 1, 3},
		Angles:       []string{"side", "front"},
		Tags:         []string{"b", "a"},
		DurationMax:  intPtr(10),
	}
	f2 := &domain.ContentFilters{
		Difficulties: []int{1, 3},
		Angles:       []string{"front", "side", "front"},
		Tags:         []string{"a", "b"},
		TagMode:      domain.TagModeAnd,
		DurationMax:  intPtr(10),
		SortOrder:    domain.SortRecentFirst,
	}

	k1 := usecase.BuildCacheKey("u1", 2, []string{"c2", "c1", "c2"}, " Coin ", f1)
	k2 := usecase.BuildCacheKey("u1", 2, []string{"c1", "c2"}, "coin", f2)
	require.Equal(t, k1, k2)
	require.True(t, strings.HasPrefix(k1, "u1:v1:p2:c1,c2:coin:"))
}

func TestBuildCacheKey_DistinguishesInputs(t *testing.T) {
	base := usecase.BuildCacheKey("u1", 1, []string{"c1"}, "coin", nil)

	others := []string{
		usecase.BuildCacheKey("u2", 1, []string{"c1"}, "coin", nil),
		usecase.BuildCacheKey("u1", 2, []string{"c1"}, "coin", nil),
		usecase.BuildCacheKey("u1", 1, []string{"c2"}, "coin", nil),
		usecase.BuildCacheKey("u1", 1, []string{"c1"}, "card", nil),
		usecase.BuildCacheKey("u1", 1, []string{"c1"}, "coin", &domain.ContentFilters{IsPublic: boolPtr(false)}),
		usecase.BuildCacheKey("u1", 1, []string{"c1"}, "coin", &domain.ContentFilters{Tags: []string{"a"}, TagMode: domain.TagModeOr}),
		usecase.BuildCacheKey("u1", 1, []string{"c1"}, "coin", &domain.ContentFilters{SortOrder: domain.SortLastFirst}),
	}
	seen := map[string]bool{base: true}
	for _, k := range others {
		assert.False(t, seen[k], "collision: %s", k)
		seen[k] = true
	}
}

func TestBuildCacheKey_EscapesSeparators(t *testing.T) {
	// ':' и ',' в частях не должны давать одинаковых ключей
	a := usecase.BuildCacheKey("u1", 0, []string{"a,b"}, "", nil)
	b := usecase.BuildCacheKey("u1", 0, []string{"a", "b"}, "", nil)
	assert.NotEqual(t, a, b)

	c := usecase.BuildCacheKey("u1", 0, nil, "x:no-filters", nil)
	assert.Equal(t, 6, strings.Count(c, ":")+1)
}

func TestUserKeyPrefix_NoCrossUserMatch(t *testing.T) {
	k10 := usecase.BuildCacheKey("u10", 0, nil, "", nil)
	assert.False(t, strings.HasPrefix(k10, usecase.UserKeyPrefix("u1")))
	assert.True(t, strings.HasPrefix(usecase.BuildCacheKey("u1", 3, nil, "", nil), usecase.UserKeyPrefix("u1")))
}

func TestNormalizeFilters(t *testing.T) {
	n := usecase.NormalizeFilters(&domain.ContentFilters{
		Difficulties: []int{5, 2, 5},
		Tags:         []string{" t2", "t1", ""},
		Angles:       []string{},
	})
	assert.Equal(t, []int{2, 5}, n.Difficulties)
	assert.Equal(t, []string{"t1", "t2"}, n.Tags)
	assert.Nil(t, n.Angles)
	assert.Equal(t, domain.TagModeAnd, n.TagMode)

	// режим тегов без тегов ничего не значит
	n = usecase.NormalizeFilters(&domain.ContentFilters{TagMode: domain.TagModeOr})
	assert.True(t, n.IsZero())

	n = usecase.NormalizeFilters(nil)
	assert.True(t, n.IsZero())
}

func TestKeySchemaVersion(t *testing.T) {
	key := usecase.BuildCacheKey("user:with:colons", 2, []string{"c1"}, "q", nil)
	v, ok := usecase.KeySchemaVersion(key)
	require.True(t, ok)
	assert.Equal(t, domain.SnapshotSchemaVersion, v)
	assert.False(t, usecase.IsStaleKey(key))

	assert.True(t, usecase.IsStaleKey("u1:v0:p0:all:no-query:no-filters"))
	assert.True(t, usecase.IsStaleKey("garbage"))

	_, ok = usecase.KeySchemaVersion("u1:vX:p0")
	assert.False(t, ok)
}
