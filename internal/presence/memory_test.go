package presence

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryTracker(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown user is offline", func(t *testing.T) {
		tracker := NewMemoryTracker(time.Minute)

		online, err := tracker.IsOnline(ctx, "ghost")
		require.NoError(t, err)
		assert.False(t, online)
	})

	t.Run("mark online then offline", func(t *testing.T) {
		tracker := NewMemoryTracker(time.Minute)

		require.NoError(t, tracker.MarkOnline(ctx, "u1"))
		online, err := tracker.IsOnline(ctx, "u1")
		require.NoError(t, err)
		assert.True(t, online)

		require.NoError(t, tracker.MarkOffline(ctx, "u1"))
		online, err = tracker.IsOnline(ctx, "u1")
		require.NoError(t, err)
		assert.False(t, online)
	})

	t.Run("entry expires after ttl", func(t *testing.T) {
		tracker := NewMemoryTracker(time.Minute)
		clock := time.Now()
		tracker.(*memoryTracker).now = func() time.Time { return clock }

		require.NoError(t, tracker.MarkOnline(ctx, "u1"))

		clock = clock.Add(2 * time.Minute)
		online, err := tracker.IsOnline(ctx, "u1")
		require.NoError(t, err)
		assert.False(t, online)
	})

	t.Run("mark offline is idempotent", func(t *testing.T) {
		tracker := NewMemoryTracker(time.Minute)

		require.NoError(t, tracker.MarkOffline(ctx, "u1"))
		require.NoError(t, tracker.MarkOffline(ctx, "u1"))
	})
}
