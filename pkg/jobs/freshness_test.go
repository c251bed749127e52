package jobs

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/ipropixel/leadfinder/ent"
	"github.com/ipropixel/leadfinder/ent/enttest"
	"github.com/ipropixel/leadfinder/pkg/cache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "github.com/mattn/go-sqlite3"
)

func setupMonitor(t *testing.T) (*ent.Client, *FreshnessMonitor, func()) {
	client := enttest.Open(t, "sqlite3", "file:jobs?mode=memory&cache=shared&_fk=1")

	mr := miniredis.RunT(t)
	cacheClient, err := cache.NewClient("redis://" + mr.Addr())
	require.NoError(t, err)

	monitor := NewFreshnessMonitor(client, cacheClient, nil, nil)
	cleanup := func() {
		cacheClient.Close()
		client.Close()
	}
	return client, monitor, cleanup
}

func seedWithAge(t *testing.T, client *ent.Client, query string, age time.Duration) {
	t.Helper()
	_, err := client.Business.Create().
		SetName(query + " shop").
		SetSearchQuery(query).
		SetScrapedAt(time.Now().Add(-age)).
		Save(context.Background())
	require.NoError(t, err)
}

func TestDetectStaleQueries(t *testing.T) {
	client, monitor, cleanup := setupMonitor(t)
	defer cleanup()

	seedWithAge(t, client, "dentist tirana", 45*24*time.Hour)
	seedWithAge(t, client, "barber tirana", time.Hour)
	// A fresh record for a stale query makes the whole query fresh.
	seedWithAge(t, client, "spa tirana", 60*24*time.Hour)
	seedWithAge(t, client, "spa tirana", 2*time.Hour)

	stale, err := monitor.DetectStaleQueries(context.Background(), 30*24*time.Hour)
	require.NoError(t, err)

	require.Len(t, stale, 1)
	assert.Equal(t, "dentist tirana", stale[0].SearchQuery)
	assert.Equal(t, 1, stale[0].Count)
}

func TestDetectStaleQueries_Empty(t *testing.T) {
	_, monitor, cleanup := setupMonitor(t)
	defer cleanup()

	stale, err := monitor.DetectStaleQueries(context.Background(), 30*24*time.Hour)
	require.NoError(t, err)
	assert.Empty(t, stale)
}

func TestRescrapeMarkers(t *testing.T) {
	_, monitor, cleanup := setupMonitor(t)
	defer cleanup()

	ctx := context.Background()

	inProgress, err := monitor.IsRescrapeInProgress(ctx, "dentist", "Tirana")
	require.NoError(t, err)
	assert.False(t, inProgress)

	require.NoError(t, monitor.MarkRescrapeInProgress(ctx, "dentist", "Tirana"))

	inProgress, err = monitor.IsRescrapeInProgress(ctx, "dentist", "Tirana")
	require.NoError(t, err)
	assert.True(t, inProgress)

	require.NoError(t, monitor.ClearRescrapeStatus(ctx, "dentist", "Tirana"))

	inProgress, err = monitor.IsRescrapeInProgress(ctx, "dentist", "Tirana")
	require.NoError(t, err)
	assert.False(t, inProgress)
}
