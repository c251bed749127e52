package scrape

import (
	"context"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ipropixel/leadfinder/ent"
	"github.com/ipropixel/leadfinder/ent/enttest"
	"github.com/ipropixel/leadfinder/pkg/models"
)

func setupClient(t *testing.T) *ent.Client {
	t.Helper()
	client := enttest.Open(t, "sqlite3", "file:scrape?mode=memory&cache=shared&_fk=1")
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func TestPersisterInsertAll(t *testing.T) {
	client := setupClient(t)
	ctx := context.Background()

	now := time.Now().UTC()
	records := []Record{
		{Name: "Alpha", Phone: "111", Latitude: 41.5, Longitude: 19.9, Categories: []string{}, Emails: []string{}, Phones: []string{}, SearchQuery: "cafes", ScrapedAt: now},
		{Name: "Beta", Latitude: FallbackLatitude, Longitude: FallbackLongitude, Categories: []string{}, Emails: []string{}, Phones: []string{}, SearchQuery: "cafes", ScrapedAt: now},
	}

	var stats models.ScrapeStats
	NewPersister(client, nil).InsertAll(ctx, records, &stats)

	assert.Equal(t, 2, stats.Inserted)
	assert.Equal(t, 0, stats.Failed)

	count, err := client.Business.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestPersisterInsertAllRowFallback(t *testing.T) {
	client := setupClient(t)
	ctx := context.Background()

	now := time.Now().UTC()
	records := []Record{
		{Name: "Good", Latitude: 1, Longitude: 1, Categories: []string{}, Emails: []string{}, Phones: []string{}, ScrapedAt: now},
		// Empty name violates the schema, failing the whole chunk first.
		{Name: "", Latitude: 1, Longitude: 1, Categories: []string{}, Emails: []string{}, Phones: []string{}, ScrapedAt: now},
	}

	var stats models.ScrapeStats
	NewPersister(client, nil).InsertAll(ctx, records, &stats)

	assert.Equal(t, 1, stats.Inserted)
	assert.Equal(t, 1, stats.Failed)

	count, err := client.Business.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestPersisterUpdatePhones(t *testing.T) {
	client := setupClient(t)
	ctx := context.Background()

	b, err := client.Business.Create().SetName("Alpha").Save(ctx)
	require.NoError(t, err)

	now := time.Now().UTC().Truncate(time.Second)
	var stats models.ScrapeStats
	NewPersister(client, nil).UpdatePhones(ctx, []PhoneUpdate{
		{ID: b.ID, Name: "Alpha", Phone: "+355691234567", PhoneUnformatted: "355691234567"},
	}, now, &stats)

	assert.Equal(t, 1, stats.Updated)
	assert.Equal(t, 0, stats.Failed)

	updated, err := client.Business.Get(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, "+355691234567", updated.Phone)
	assert.Equal(t, "355691234567", updated.PhoneUnformatted)
	assert.WithinDuration(t, now, updated.ScrapedAt, time.Second)
}

func TestPersisterUpdatePhonesMissingRow(t *testing.T) {
	client := setupClient(t)

	var stats models.ScrapeStats
	NewPersister(client, nil).UpdatePhones(context.Background(), []PhoneUpdate{
		{ID: 999, Name: "Ghost", Phone: "111"},
	}, time.Now(), &stats)

	assert.Equal(t, 0, stats.Updated)
	assert.Equal(t, 1, stats.Failed)
}
