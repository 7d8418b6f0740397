package idempotency

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckAndSet(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	exists, _, err := s.CheckAndSet(ctx, "key-1", nil, time.Hour)
	require.NoError(t, err)
	assert.False(t, exists)

	// Second call sees the placeholder.
	exists, value, err := s.CheckAndSet(ctx, "key-1", nil, time.Hour)
	require.NoError(t, err)
	assert.True(t, exists)
	assert.Equal(t, []byte("processing"), value)
}

func TestUpdate(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	_, _, err := s.CheckAndSet(ctx, "key-1", nil, time.Hour)
	require.NoError(t, err)

	require.NoError(t, s.Update(ctx, "key-1", []byte(`{"ok":true}`), time.Hour))

	exists, value, err := s.CheckAndSet(ctx, "key-1", nil, time.Hour)
	require.NoError(t, err)
	assert.True(t, exists)
	assert.Equal(t, []byte(`{"ok":true}`), value)
}

func TestExpiry(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	current := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return current }

	_, _, err := s.CheckAndSet(ctx, "key-1", []byte("cached"), time.Minute)
	require.NoError(t, err)

	current = current.Add(2 * time.Minute)

	exists, _, err := s.CheckAndSet(ctx, "key-1", nil, time.Minute)
	require.NoError(t, err)
	assert.False(t, exists, "expired entry should be evicted")
}
