package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestRedis creates a test Redis client using miniredis
func setupTestRedis(t *testing.T) (*Client, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)

	client, err := NewClient("redis://" + mr.Addr())
	require.NoError(t, err)

	return client, mr
}

func TestClient_SetGet(t *testing.T) {
	client, _ := setupTestRedis(t)
	defer client.Close()

	ctx := context.Background()

	err := client.Set(ctx, "stats:dashboard", `{"total":12}`, 1*time.Hour)
	require.NoError(t, err)

	val, err := client.Get(ctx, "stats:dashboard")
	require.NoError(t, err)
	assert.Equal(t, `{"total":12}`, val)
}

func TestClient_Get_Missing(t *testing.T) {
	client, _ := setupTestRedis(t)
	defer client.Close()

	_, err := client.Get(context.Background(), "no:such:key")
	assert.Error(t, err)
}

func TestClient_Delete(t *testing.T) {
	client, _ := setupTestRedis(t)
	defer client.Close()

	ctx := context.Background()

	_ = client.Set(ctx, "rescrape:in_progress:dentist:Tirana", "1", 1*time.Hour)
	_ = client.Set(ctx, "rescrape:in_progress:barber:Tirana", "1", 1*time.Hour)

	err := client.Delete(ctx, "rescrape:in_progress:dentist:Tirana", "rescrape:in_progress:barber:Tirana")
	require.NoError(t, err)

	exists, err := client.Exists(ctx, "rescrape:in_progress:dentist:Tirana")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestClient_DeletePattern(t *testing.T) {
	client, _ := setupTestRedis(t)
	defer client.Close()

	ctx := context.Background()

	_ = client.Set(ctx, "stats:dashboard", "a", 1*time.Hour)
	_ = client.Set(ctx, "stats:categories", "b", 1*time.Hour)
	_ = client.Set(ctx, "other:key", "c", 1*time.Hour)

	err := client.DeletePattern(ctx, "stats:*")
	require.NoError(t, err)

	exists, err := client.Exists(ctx, "stats:dashboard")
	require.NoError(t, err)
	assert.False(t, exists)

	exists, err = client.Exists(ctx, "other:key")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestClient_Exists(t *testing.T) {
	client, _ := setupTestRedis(t)
	defer client.Close()

	ctx := context.Background()

	exists, err := client.Exists(ctx, "stats:dashboard")
	require.NoError(t, err)
	assert.False(t, exists)

	_ = client.Set(ctx, "stats:dashboard", "x", 1*time.Hour)

	exists, err = client.Exists(ctx, "stats:dashboard")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestClient_TTL(t *testing.T) {
	client, _ := setupTestRedis(t)
	defer client.Close()

	ctx := context.Background()

	_ = client.Set(ctx, "stats:dashboard", "x", 5*time.Minute)

	ttl, err := client.TTL(ctx, "stats:dashboard")
	require.NoError(t, err)
	assert.Greater(t, ttl, 4*time.Minute)
	assert.LessOrEqual(t, ttl, 5*time.Minute)
}

func TestClient_PublishSubscribe(t *testing.T) {
	client, _ := setupTestRedis(t)
	defer client.Close()

	ctx := context.Background()

	sub := client.Subscribe(ctx, "scrape:logs:test-run")
	defer sub.Close()

	// Wait for the subscription ack before publishing.
	_, err := sub.Receive(ctx)
	require.NoError(t, err)

	require.NoError(t, client.Publish(ctx, "scrape:logs:test-run", []byte(`{"kind":"info"}`)))

	select {
	case msg := <-sub.Channel():
		assert.Equal(t, "scrape:logs:test-run", msg.Channel)
		assert.Equal(t, `{"kind":"info"}`, msg.Payload)
	case <-time.After(2 * time.Second):
		t.Fatal("no message received")
	}
}

func TestNewClient_BadURL(t *testing.T) {
	_, err := NewClient("not-a-redis-url")
	assert.Error(t, err)
}
