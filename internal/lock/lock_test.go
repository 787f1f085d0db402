package lock

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoop(t *testing.T) {
	var l Locker = Noop{}

	release, ok, err := l.TryLock(context.Background(), "campaign:1", time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)
	release()

	// Noop never excludes a second holder.
	_, ok, err = l.TryLock(context.Background(), "campaign:1", time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestNewRedisClient_Unreachable(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	_, err := NewRedisClient(ctx, "127.0.0.1:1", "", 0)
	assert.Error(t, err)
}
