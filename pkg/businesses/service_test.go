package businesses

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ipropixel/leadfinder/ent"
	"github.com/ipropixel/leadfinder/ent/enttest"
	"github.com/ipropixel/leadfinder/pkg/cache"
	"github.com/ipropixel/leadfinder/pkg/logger"
	"github.com/ipropixel/leadfinder/pkg/models"
)

func setupService(t *testing.T) *Service {
	t.Helper()

	client := enttest.Open(t, "sqlite3", "file:businesses?mode=memory&cache=shared&_fk=1")
	t.Cleanup(func() { _ = client.Close() })

	mr := miniredis.RunT(t)
	cc, err := cache.NewClient("redis://" + mr.Addr())
	require.NoError(t, err)
	t.Cleanup(func() { _ = cc.Close() })

	return NewService(client, cc, "AL", logger.Default())
}

func seed(t *testing.T, s *Service, builders ...func(*ent.BusinessCreate)) []*ent.Business {
	t.Helper()
	out := make([]*ent.Business, len(builders))
	for i, build := range builders {
		c := s.client.Business.Create()
		build(c)
		b, err := c.Save(context.Background())
		require.NoError(t, err)
		out[i] = b
	}
	return out
}

func TestListFiltersAndSorts(t *testing.T) {
	s := setupService(t)
	seed(t, s,
		func(c *ent.BusinessCreate) { c.SetName("Alpha Cafe").SetSearchQuery("cafes").SetRating(4.8) },
		func(c *ent.BusinessCreate) { c.SetName("Beta Bar").SetSearchQuery("bars").SetRating(4.2) },
		func(c *ent.BusinessCreate) { c.SetName("Gamma Cafe").SetSearchQuery("cafes").SetRating(3.9) },
	)
	ctx := context.Background()

	resp, err := s.List(ctx, &models.BusinessListRequest{SearchQuery: "cafes", SortBy: "rating", SortOrder: "desc"})
	require.NoError(t, err)
	require.Len(t, resp.Data, 2)
	assert.Equal(t, "Alpha Cafe", resp.Data[0].Name)
	assert.Equal(t, 2, resp.Pagination.Total)

	resp, err = s.List(ctx, &models.BusinessListRequest{Name: "gamma"})
	require.NoError(t, err)
	require.Len(t, resp.Data, 1)
	assert.Equal(t, "Gamma Cafe", resp.Data[0].Name)
}

func TestListUnknownSortFallsBack(t *testing.T) {
	s := setupService(t)
	seed(t, s, func(c *ent.BusinessCreate) { c.SetName("Only") })

	resp, err := s.List(context.Background(), &models.BusinessListRequest{SortBy: "evil_column"})
	require.NoError(t, err)
	assert.Len(t, resp.Data, 1)
}

func TestListPagination(t *testing.T) {
	s := setupService(t)
	for _, name := range []string{"A", "B", "C", "D", "E"} {
		name := name
		seed(t, s, func(c *ent.BusinessCreate) { c.SetName(name) })
	}

	resp, err := s.List(context.Background(), &models.BusinessListRequest{SortBy: "name", SortOrder: "asc", Page: 2, Limit: 2})
	require.NoError(t, err)
	require.Len(t, resp.Data, 2)
	assert.Equal(t, "C", resp.Data[0].Name)
	assert.Equal(t, 3, resp.Pagination.TotalPages)
	assert.True(t, resp.Pagination.HasNext)
	assert.True(t, resp.Pagination.HasPrev)
}

func TestDelete(t *testing.T) {
	s := setupService(t)
	rows := seed(t, s, func(c *ent.BusinessCreate) { c.SetName("Doomed") })
	ctx := context.Background()

	require.NoError(t, s.Delete(ctx, rows[0].ID))

	_, err := s.GetByID(ctx, rows[0].ID)
	assert.True(t, ent.IsNotFound(err))
}

func TestUpdateOutreachFlags(t *testing.T) {
	s := setupService(t)
	rows := seed(t, s, func(c *ent.BusinessCreate) { c.SetName("Target") })
	ctx := context.Background()

	yes := true
	resp, err := s.UpdateOutreachFlags(ctx, rows[0].ID, &models.OutreachFlagsUpdate{EmailSent: &yes})
	require.NoError(t, err)
	assert.True(t, resp.EmailSent)
	assert.NotEmpty(t, resp.EmailSentAt)
	assert.False(t, resp.SMSSent)

	no := false
	resp, err = s.UpdateOutreachFlags(ctx, rows[0].ID, &models.OutreachFlagsUpdate{EmailSent: &no})
	require.NoError(t, err)
	assert.False(t, resp.EmailSent)
	assert.Empty(t, resp.EmailSentAt)
}

func TestEmailTargets(t *testing.T) {
	s := setupService(t)
	seed(t, s,
		func(c *ent.BusinessCreate) { c.SetName("Has Email").SetEmails([]string{"a@b.com"}) },
		func(c *ent.BusinessCreate) { c.SetName("Empty Emails").SetEmails([]string{""}) },
		func(c *ent.BusinessCreate) { c.SetName("No Emails") },
		func(c *ent.BusinessCreate) {
			c.SetName("Already Sent").SetEmails([]string{"x@y.com"}).SetEmailSent(true).SetEmailSentAt(time.Now())
		},
	)
	ctx := context.Background()

	resp, err := s.EmailTargets(ctx, &models.TargetListRequest{})
	require.NoError(t, err)
	require.Len(t, resp.Data, 1)
	assert.Equal(t, "Has Email", resp.Data[0].Name)

	resp, err = s.EmailTargets(ctx, &models.TargetListRequest{Filter: "sent"})
	require.NoError(t, err)
	require.Len(t, resp.Data, 1)
	assert.Equal(t, "Already Sent", resp.Data[0].Name)
}

func TestPhoneTargets(t *testing.T) {
	s := setupService(t)
	seed(t, s,
		func(c *ent.BusinessCreate) { c.SetName("Has Phone").SetPhone("+3551") },
		func(c *ent.BusinessCreate) { c.SetName("No Phone") },
		func(c *ent.BusinessCreate) { c.SetName("Phone No Site").SetPhone("+3552") },
		func(c *ent.BusinessCreate) { c.SetName("Phone With Site").SetPhone("+3553").SetWebsite("https://x.al") },
		func(c *ent.BusinessCreate) { c.SetName("Sent Already").SetPhone("+3554").SetSmsSent(true) },
	)
	ctx := context.Background()

	resp, err := s.PhoneTargets(ctx, &models.TargetListRequest{})
	require.NoError(t, err)
	assert.Len(t, resp.Data, 3)

	resp, err = s.PhoneTargets(ctx, &models.TargetListRequest{NoWebsite: true})
	require.NoError(t, err)
	require.Len(t, resp.Data, 2)
	for _, row := range resp.Data {
		assert.Empty(t, row.Website)
	}

	resp, err = s.PhoneTargets(ctx, &models.TargetListRequest{Filter: "sent"})
	require.NoError(t, err)
	require.Len(t, resp.Data, 1)
	assert.Equal(t, "Sent Already", resp.Data[0].Name)
}

func TestPhoneTargetsAnnotatesValidity(t *testing.T) {
	s := setupService(t)
	seed(t, s,
		func(c *ent.BusinessCreate) { c.SetName("Real Mobile").SetPhone("069 123 4567") },
		func(c *ent.BusinessCreate) { c.SetName("Junk Number").SetPhone("+3551") },
	)
	ctx := context.Background()

	resp, err := s.PhoneTargets(ctx, &models.TargetListRequest{})
	require.NoError(t, err)
	require.Len(t, resp.Data, 2)

	byName := map[string]models.PhoneTarget{}
	for _, row := range resp.Data {
		byName[row.Name] = row
	}

	real := byName["Real Mobile"]
	assert.True(t, real.PhoneValid)
	assert.Equal(t, "+355691234567", real.PhoneE164)

	junk := byName["Junk Number"]
	assert.False(t, junk.PhoneValid)
}

func TestStats(t *testing.T) {
	s := setupService(t)
	seed(t, s,
		func(c *ent.BusinessCreate) {
			c.SetName("Top").SetRating(4.9).SetReviewCount(120).SetPhone("+3551").
				SetWebsite("https://top.al").SetInstagram("top").SetCategoryName("Cafe").
				SetEmails([]string{"top@cafe.al"})
		},
		func(c *ent.BusinessCreate) {
			c.SetName("Mid").SetRating(4.1).SetReviewCount(30).SetCategoryName("Cafe")
		},
		func(c *ent.BusinessCreate) {
			c.SetName("Closed").SetPermanentlyClosed(true).SetCategoryName("Bar")
		},
	)
	ctx := context.Background()

	stats, err := s.Stats(ctx)
	require.NoError(t, err)

	assert.Equal(t, 3, stats.TotalBusinesses)
	assert.InDelta(t, 4.5, stats.AvgRating, 0.01)
	assert.Equal(t, 150, stats.TotalReviews)
	require.NotNil(t, stats.TopRated)
	assert.Equal(t, "Top", stats.TopRated.Name)
	assert.Equal(t, 1, stats.WithPhone)
	assert.Equal(t, 1, stats.WithEmail)
	assert.Equal(t, 1, stats.WithWebsite)
	assert.Equal(t, 1, stats.WithSocial)
	assert.Equal(t, 1, stats.ClosedCount)
	require.NotEmpty(t, stats.TopCategories)
	assert.Equal(t, "Cafe", stats.TopCategories[0].Name)
	assert.Equal(t, 2, stats.TopCategories[0].Count)
}

func TestStatsServedFromCache(t *testing.T) {
	s := setupService(t)
	seed(t, s, func(c *ent.BusinessCreate) { c.SetName("Cached") })
	ctx := context.Background()

	first, err := s.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, first.TotalBusinesses)

	// A direct write bypassing the service is invisible until the TTL
	// lapses or a service mutation invalidates the cache.
	_, err = s.client.Business.Create().SetName("Fresh").Save(ctx)
	require.NoError(t, err)

	second, err := s.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, second.TotalBusinesses)
}

func TestStatsEmptyDataset(t *testing.T) {
	s := setupService(t)

	stats, err := s.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, stats.TotalBusinesses)
	assert.Nil(t, stats.TopRated)
	assert.Empty(t, stats.TopCategories)
}
