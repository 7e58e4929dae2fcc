package cache_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"travely/internal/cache"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeCache is an in-memory Cache implementation for tests.
type fakeCache struct {
	data    map[string][]byte
	setErr  error
	getErr  error
	delErr  error
	deleted []string
}

func newFakeCache() *fakeCache {
	return &fakeCache{data: map[string][]byte{}}
}

func (f *fakeCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	if f.setErr != nil {
		return f.setErr
	}
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	f.data[key] = b
	return nil
}

func (f *fakeCache) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	if f.getErr != nil {
		return false, f.getErr
	}
	b, ok := f.data[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(b, dest)
}

func (f *fakeCache) Delete(ctx context.Context, key string) error {
	if f.delErr != nil {
		return f.delErr
	}
	f.deleted = append(f.deleted, key)
	delete(f.data, key)
	return nil
}

func TestResetTokenStore_CreateAndGet(t *testing.T) {
	ctx := context.Background()
	fc := newFakeCache()
	store := cache.NewResetTokenStore(fc)

	data := &cache.ResetTokenData{UserID: "user123", CreatedAt: time.Now().UTC()}

	err := store.Create(ctx, "abc123hash", data, time.Hour)
	require.NoError(t, err)

	// Stored under the hash-scoped key, never the raw token
	_, ok := fc.data["reset_token:abc123hash"]
	assert.True(t, ok)

	got, err := store.Get(ctx, "abc123hash")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "user123", got.UserID)
}

func TestResetTokenStore_GetMissing(t *testing.T) {
	ctx := context.Background()
	store := cache.NewResetTokenStore(newFakeCache())

	got, err := store.Get(ctx, "nonexistent")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestResetTokenStore_GetError(t *testing.T) {
	ctx := context.Background()
	fc := newFakeCache()
	fc.getErr = errors.New("redis down")
	store := cache.NewResetTokenStore(fc)

	got, err := store.Get(ctx, "abc")
	assert.Error(t, err)
	assert.Nil(t, got)
}

func TestResetTokenStore_Consume(t *testing.T) {
	ctx := context.Background()
	fc := newFakeCache()
	store := cache.NewResetTokenStore(fc)

	require.NoError(t, store.Create(ctx, "abc123hash", &cache.ResetTokenData{UserID: "user123"}, time.Hour))
	require.NoError(t, store.Consume(ctx, "abc123hash"))

	// Token is single use: gone after consumption
	got, err := store.Get(ctx, "abc123hash")
	require.NoError(t, err)
	assert.Nil(t, got)
	assert.Contains(t, fc.deleted, "reset_token:abc123hash")
}
