//go:build integration

package redis_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	rediscache "github.com/Gunvolt24/trickbook/internal/cache/redis"
	"github.com/Gunvolt24/trickbook/internal/testutil"
)

func TestRedisSnapshotStore_SaveLoad_TC(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	endpoint, stop, err := testutil.StartRedisTC(ctx)
	require.NoError(t, err)
	t.Cleanup(func() { _ = stop(context.Background()) })

	store, err := rediscache.New(ctx, rediscache.Config{Addr: endpoint, Namespace: "test"})
	require.NoError(t, err)
	defer store.Close()

	_, ok, err := store.Load(ctx, "u1:v1:p0")
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, store.Save(ctx, "u1:v1:p0", []byte(`{"has_more":true}`)))

	got, ok, err := store.Load(ctx, "u1:v1:p0")
	require.NoError(t, err)
	require.True(t, ok)
	require.JSONEq(t, `{"has_more":true}`, string(got))
}
