package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cachedUser struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
}

func setupMiniredis(t *testing.T) *miniredis.Miniredis {
	t.Helper()
	mr := miniredis.RunT(t)
	SetClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	t.Cleanup(func() { SetClient(nil) })
	return mr
}

func TestAside_MissFetchesAndStores(t *testing.T) {
	mr := setupMiniredis(t)
	ctx := context.Background()

	fetched := 0
	var out cachedUser
	err := Aside(ctx, UserKey(7), &out, UserTTL, func() error {
		fetched++
		out = cachedUser{ID: 7, Username: "alice"}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 1, fetched)
	assert.Equal(t, "alice", out.Username)

	// Key must now exist in Redis
	assert.True(t, mr.Exists(UserKey(7)))

	// Second read is served from cache, fetch not called again
	var again cachedUser
	err = Aside(ctx, UserKey(7), &again, UserTTL, func() error {
		fetched++
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 1, fetched)
	assert.Equal(t, "alice", again.Username)
}

func TestAside_ExpiredEntryRefetches(t *testing.T) {
	mr := setupMiniredis(t)
	ctx := context.Background()

	var out cachedUser
	require.NoError(t, Aside(ctx, PostKey(1), &out, time.Minute, func() error {
		out = cachedUser{ID: 1}
		return nil
	}))

	mr.FastForward(2 * time.Minute)

	fetched := 0
	require.NoError(t, Aside(ctx, PostKey(1), &out, time.Minute, func() error {
		fetched++
		return nil
	}))
	assert.Equal(t, 1, fetched)
}

func TestAside_NilClientAlwaysFetches(t *testing.T) {
	SetClient(nil)
	ctx := context.Background()

	fetched := 0
	var out cachedUser
	for i := 0; i < 2; i++ {
		require.NoError(t, Aside(ctx, UserKey(1), &out, UserTTL, func() error {
			fetched++
			return nil
		}))
	}
	assert.Equal(t, 2, fetched)
}

func TestInvalidateUser(t *testing.T) {
	mr := setupMiniredis(t)
	ctx := context.Background()

	require.NoError(t, SetJSON(ctx, UserKey(3), cachedUser{ID: 3}, UserTTL))
	require.True(t, mr.Exists(UserKey(3)))

	InvalidateUser(ctx, 3)
	assert.False(t, mr.Exists(UserKey(3)))
}
