package locker

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type memoryRedis struct {
	mu      sync.Mutex
	values  map[string]string
	expires map[string]time.Duration

	// plainDeletes counts unconditional Delete calls.
	plainDeletes int
}

func newMemoryRedis() *memoryRedis {
	return &memoryRedis{values: map[string]string{}, expires: map[string]time.Duration{}}
}

func (m *memoryRedis) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.plainDeletes++
	delete(m.values, key)
	return nil
}

func (m *memoryRedis) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = string(raw)
	m.expires[key] = exp
	return nil
}

func (m *memoryRedis) Get(ctx context.Context, key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.values[key], nil
}

func (m *memoryRedis) TrySetNX(ctx context.Context, key string, value interface{}, exp time.Duration) (bool, error) {
	m.mu.Lock()
	_, exists := m.values[key]
	m.mu.Unlock()
	if exists {
		return false, nil
	}
	return true, m.Set(ctx, key, value, exp)
}

func (m *memoryRedis) DeleteIfEquals(ctx context.Context, key string, value interface{}) (bool, error) {
	raw, err := json.Marshal(value)
	if err != nil {
		return false, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.values[key] != string(raw) {
		return false, nil
	}
	delete(m.values, key)
	return true, nil
}

func (m *memoryRedis) ExpireIfEquals(ctx context.Context, key string, value interface{}, exp time.Duration) (bool, error) {
	raw, err := json.Marshal(value)
	if err != nil {
		return false, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.values[key] != string(raw) {
		return false, nil
	}
	m.expires[key] = exp
	return true, nil
}

// expire drops key as if its TTL ran out.
func (m *memoryRedis) expire(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.values, key)
	delete(m.expires, key)
}

func TestLockService(t *testing.T) {
	ctx := context.Background()
	const key = "timetable:audit:leader"

	t.Run("Acquire Is Exclusive", func(t *testing.T) {
		svc := NewLockService(newMemoryRedis(), zap.NewNop())

		acquired, token, err := svc.TryLock(ctx, key, time.Minute)
		require.NoError(t, err)
		assert.True(t, acquired)
		assert.NotEmpty(t, token)

		acquired, other, err := svc.TryLock(ctx, key, time.Minute)
		require.NoError(t, err)
		assert.False(t, acquired, "second caller should not get the lock")
		assert.Empty(t, other)
	})

	t.Run("Unlock Releases Owned Lock", func(t *testing.T) {
		repo := newMemoryRedis()
		svc := NewLockService(repo, zap.NewNop())

		_, token, err := svc.TryLock(ctx, key, time.Minute)
		require.NoError(t, err)
		require.NoError(t, svc.Unlock(ctx, key, token))

		acquired, _, err := svc.TryLock(ctx, key, time.Minute)
		require.NoError(t, err)
		assert.True(t, acquired, "lock should be free after unlock")
	})

	t.Run("Unlock Rejects Foreign Token", func(t *testing.T) {
		repo := newMemoryRedis()
		svc := NewLockService(repo, zap.NewNop())

		_, _, err := svc.TryLock(ctx, key, time.Minute)
		require.NoError(t, err)

		err = svc.Unlock(ctx, key, "someone-else")
		assert.Error(t, err)
		assert.NotEmpty(t, repo.values[key], "lock should survive a foreign unlock")
	})

	t.Run("Unlock Missing Lock Is Noop", func(t *testing.T) {
		svc := NewLockService(newMemoryRedis(), zap.NewNop())
		assert.NoError(t, svc.Unlock(ctx, key, "token"))
	})

	t.Run("Refresh Extends Owned Lock", func(t *testing.T) {
		repo := newMemoryRedis()
		svc := NewLockService(repo, zap.NewNop())

		_, token, err := svc.TryLock(ctx, key, time.Minute)
		require.NoError(t, err)

		require.NoError(t, svc.Refresh(ctx, key, token, 5*time.Minute))
		assert.Equal(t, 5*time.Minute, repo.expires[key])
	})

	t.Run("Refresh Fails When Lock Lost", func(t *testing.T) {
		repo := newMemoryRedis()
		svc := NewLockService(repo, zap.NewNop())

		assert.Error(t, svc.Refresh(ctx, key, "token", time.Minute))

		_, _, err := svc.TryLock(ctx, key, time.Minute)
		require.NoError(t, err)
		assert.Error(t, svc.Refresh(ctx, key, "not-the-owner", time.Minute))
	})

	t.Run("Stale Owner Cannot Touch Successor Lock", func(t *testing.T) {
		repo := newMemoryRedis()
		stale := NewLockService(repo, zap.NewNop())
		successor := NewLockService(repo, zap.NewNop())

		_, staleToken, err := stale.TryLock(ctx, key, time.Minute)
		require.NoError(t, err)

		repo.expire(key)
		acquired, successorToken, err := successor.TryLock(ctx, key, time.Minute)
		require.NoError(t, err)
		require.True(t, acquired)

		assert.Error(t, stale.Refresh(ctx, key, staleToken, 10*time.Minute))
		assert.Equal(t, time.Minute, repo.expires[key], "successor TTL must not be extended by the stale owner")

		assert.Error(t, stale.Unlock(ctx, key, staleToken))
		assert.NotEmpty(t, repo.values[key], "successor lock must survive the stale unlock")

		require.NoError(t, successor.Unlock(ctx, key, successorToken))
		assert.Empty(t, repo.values[key])
		assert.Zero(t, repo.plainDeletes, "lock release must only delete through the owner check")
	})
}
