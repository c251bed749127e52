package relay

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ipropixel/leadfinder/pkg/cache"
	"github.com/ipropixel/leadfinder/pkg/logger"
)

func setupCache(t *testing.T) *cache.Client {
	t.Helper()

	mr := miniredis.RunT(t)
	c, err := cache.NewClient("redis://" + mr.Addr())
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func TestChannelName(t *testing.T) {
	assert.Equal(t, "scrape:logs:run-42", ChannelName("run-42"))
}

func TestRunPublishDeliversToListener(t *testing.T) {
	c := setupCache(t)
	ctx := context.Background()

	events, cancel, err := Listen(ctx, c, "run-1")
	require.NoError(t, err)
	defer cancel()

	run, err := Open(ctx, c, "run-1", time.Hour, logger.Default())
	require.NoError(t, err)
	defer run.Close()

	run.Publish("Starting search...", KindInfo)

	select {
	case ev := <-events:
		assert.Equal(t, "Starting search...", ev.Message)
		assert.Equal(t, KindInfo, ev.Kind)
		assert.False(t, ev.Timestamp.IsZero())
	case <-time.After(2 * time.Second):
		t.Fatal("no event received")
	}
}

func TestRunHeartbeat(t *testing.T) {
	c := setupCache(t)
	ctx := context.Background()

	events, cancel, err := Listen(ctx, c, "run-hb")
	require.NoError(t, err)
	defer cancel()

	run, err := Open(ctx, c, "run-hb", 20*time.Millisecond, logger.Default())
	require.NoError(t, err)
	defer run.Close()

	select {
	case ev := <-events:
		assert.Equal(t, KindHeartbeat, ev.Kind)
		assert.Empty(t, ev.Message)
	case <-time.After(2 * time.Second):
		t.Fatal("no heartbeat received")
	}
}

func TestRunCloseIsIdempotent(t *testing.T) {
	c := setupCache(t)

	run, err := Open(context.Background(), c, "run-close", time.Hour, logger.Default())
	require.NoError(t, err)

	run.Close()
	run.Close()

	// Publishing after Close is a no-op, never a panic.
	run.Publish("after close", KindInfo)
}

func TestRunCloseStopsHeartbeat(t *testing.T) {
	c := setupCache(t)
	ctx := context.Background()

	events, cancel, err := Listen(ctx, c, "run-hb-stop")
	require.NoError(t, err)
	defer cancel()

	run, err := Open(ctx, c, "run-hb-stop", 20*time.Millisecond, logger.Default())
	require.NoError(t, err)

	// Let the ticker fire at least once so the loop is provably running.
	select {
	case ev := <-events:
		assert.Equal(t, KindHeartbeat, ev.Kind)
	case <-time.After(2 * time.Second):
		t.Fatal("no heartbeat received")
	}

	run.Close()

	// Absorb anything already in flight when Close was called.
	absorb := time.After(100 * time.Millisecond)
absorbing:
	for {
		select {
		case <-events:
		case <-absorb:
			break absorbing
		}
	}

	// Ten intervals of silence: the heartbeat loop is gone.
	select {
	case ev := <-events:
		t.Fatalf("event after close: %+v", ev)
	case <-time.After(200 * time.Millisecond):
	}
}

func TestRunPublishSwallowsBrokenTransport(t *testing.T) {
	mr := miniredis.RunT(t)
	c, err := cache.NewClient("redis://" + mr.Addr())
	require.NoError(t, err)

	run, err := Open(context.Background(), c, "run-broken", time.Hour, logger.Default())
	require.NoError(t, err)
	defer run.Close()

	mr.Close()

	// The relay is best-effort: a dead transport must not surface.
	run.Publish("lost", KindError)
}

func TestListenCancelStopsStream(t *testing.T) {
	c := setupCache(t)
	ctx := context.Background()

	events, cancel, err := Listen(ctx, c, "run-cancel")
	require.NoError(t, err)
	cancel()

	select {
	case _, ok := <-events:
		assert.False(t, ok)
	case <-time.After(2 * time.Second):
		t.Fatal("event stream did not close")
	}
}
