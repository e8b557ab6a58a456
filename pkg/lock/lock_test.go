package lock_test

import (
	"context"
	"testing"
	"time"

	"github.com/Astemirdum/restaurant-reservation/pkg/lock"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func newLocker(t *testing.T) (lock.Locker, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return lock.NewRedisLocker(rdb, time.Minute), mr
}

func TestRedisLocker_Lock(t *testing.T) {
	ctx := context.Background()
	l, mr := newLocker(t)

	release, err := l.Lock(ctx, "email:a@b.com", "", "phone:18009999999")
	require.NoError(t, err)
	require.True(t, mr.Exists("contact_lock:email:a@b.com"))
	require.True(t, mr.Exists("contact_lock:phone:18009999999"))

	_, err = l.Lock(ctx, "phone:18009999999")
	require.ErrorIs(t, err, lock.ErrBusy)

	release()
	require.False(t, mr.Exists("contact_lock:email:a@b.com"))
	require.False(t, mr.Exists("contact_lock:phone:18009999999"))

	release2, err := l.Lock(ctx, "phone:18009999999")
	require.NoError(t, err)
	release2()
}

func TestRedisLocker_PartialAcquireIsRolledBack(t *testing.T) {
	ctx := context.Background()
	l, mr := newLocker(t)

	require.NoError(t, mr.Set("contact_lock:phone:1", "someone-else"))

	_, err := l.Lock(ctx, "email:x@y.z", "phone:1")
	require.ErrorIs(t, err, lock.ErrBusy)
	require.False(t, mr.Exists("contact_lock:email:x@y.z"))

	got, err := mr.Get("contact_lock:phone:1")
	require.NoError(t, err)
	require.Equal(t, "someone-else", got)
}

func TestRedisLocker_Expires(t *testing.T) {
	ctx := context.Background()
	l, mr := newLocker(t)

	_, err := l.Lock(ctx, "email:a@b.com")
	require.NoError(t, err)
	mr.FastForward(2 * time.Minute)

	release, err := l.Lock(ctx, "email:a@b.com")
	require.NoError(t, err)
	release()
}

func TestNoop(t *testing.T) {
	release, err := lock.NewNoop().Lock(context.Background(), "a")
	require.NoError(t, err)
	release()
}
