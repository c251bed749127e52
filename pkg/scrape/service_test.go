package scrape

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ipropixel/leadfinder/config"
	"github.com/ipropixel/leadfinder/ent/scraperun"
	"github.com/ipropixel/leadfinder/pkg/apify"
	"github.com/ipropixel/leadfinder/pkg/cache"
	"github.com/ipropixel/leadfinder/pkg/logger"
	"github.com/ipropixel/leadfinder/pkg/models"
)

type fakeInvoker struct {
	status   string
	items    []apify.PlaceResult
	logLines []string
	startErr error
}

func (f *fakeInvoker) StartRun(ctx context.Context, actorID string, input interface{}) (*apify.Run, error) {
	if f.startErr != nil {
		return nil, f.startErr
	}
	return &apify.Run{ID: "fake-run", ActorID: actorID, Status: "RUNNING", DefaultDatasetID: "fake-dataset"}, nil
}

func (f *fakeInvoker) StreamLog(ctx context.Context, runID string, handle func(line string)) error {
	for _, line := range f.logLines {
		handle(line)
	}
	return nil
}

func (f *fakeInvoker) WaitForFinish(ctx context.Context, runID string, interval time.Duration) (*apify.Run, error) {
	status := f.status
	if status == "" {
		status = apify.StatusSucceeded
	}
	return &apify.Run{ID: runID, Status: status, DefaultDatasetID: "fake-dataset"}, nil
}

func (f *fakeInvoker) ListItems(ctx context.Context, datasetID string) ([]apify.PlaceResult, error) {
	return f.items, nil
}

func setupService(t *testing.T, invoker Invoker) *Service {
	t.Helper()

	client := setupClient(t)
	mr := miniredis.RunT(t)
	cc, err := cache.NewClient("redis://" + mr.Addr())
	require.NoError(t, err)
	t.Cleanup(func() { _ = cc.Close() })

	cfg := config.Load()
	cfg.ApifyAPIKey = "test-token"
	cfg.RelayHeartbeatInterval = time.Hour

	s := NewService(client, cc, cfg, logger.Default())
	s.invokers = func(string) Invoker { return invoker }
	s.pollInterval = time.Millisecond
	return s
}

func TestRunEndToEnd(t *testing.T) {
	invoker := &fakeInvoker{
		items: []apify.PlaceResult{
			{Title: "Alpha Cafe", Phone: "+35541111111", CategoryName: "Cafe"},
			{Title: "Beta Bar", CategoryName: "Bar"},
			{Title: "Alpha Cafe", Phone: "+35542222222"},
		},
	}
	s := setupService(t, invoker)
	ctx := context.Background()

	resp, err := s.Run(ctx, &models.ScrapeRequest{
		SearchQuery:    "cafes",
		City:           "Tirana",
		SkipDuplicates: true,
	})
	require.NoError(t, err)

	assert.True(t, resp.Success)
	assert.Equal(t, 3, resp.Stats.Scraped)
	assert.Equal(t, 2, resp.Stats.Inserted)
	assert.Equal(t, 1, resp.Stats.Duplicates)
	assert.Equal(t, 0, resp.Stats.Failed)
	assert.Len(t, resp.Sample, 2)

	count, err := s.client.Business.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	run, err := s.client.ScrapeRun.Query().Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, scraperun.StatusDone, run.Status)
	assert.Equal(t, 2, run.Inserted)
	assert.NotNil(t, run.FinishedAt)
}

func TestRunSecondPassDeduplicates(t *testing.T) {
	invoker := &fakeInvoker{
		items: []apify.PlaceResult{{Title: "Alpha Cafe", Phone: "+3554111"}},
	}
	s := setupService(t, invoker)
	ctx := context.Background()

	req := &models.ScrapeRequest{SearchQuery: "cafes", City: "Tirana", SkipDuplicates: true}

	resp, err := s.Run(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Stats.Inserted)

	resp, err = s.Run(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, 0, resp.Stats.Inserted)
	assert.Equal(t, 1, resp.Stats.Duplicates)
}

func TestRunMissingAPIKey(t *testing.T) {
	s := setupService(t, &fakeInvoker{})
	s.cfg.ApifyAPIKey = ""

	resp, err := s.Run(context.Background(), &models.ScrapeRequest{
		SearchQuery: "cafes",
		City:        "Tirana",
	})
	assert.ErrorIs(t, err, ErrMissingAPIKey)
	assert.False(t, resp.Success)
	assert.Equal(t, models.ScrapeStats{}, resp.Stats)
}

func TestRunActorNonSuccessStillFetchesResults(t *testing.T) {
	invoker := &fakeInvoker{
		status: apify.StatusTimedOut,
		items:  []apify.PlaceResult{{Title: "Partial Result"}},
	}
	s := setupService(t, invoker)

	resp, err := s.Run(context.Background(), &models.ScrapeRequest{
		SearchQuery: "cafes",
		City:        "Tirana",
	})
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, 1, resp.Stats.Inserted)
}

func TestRunZeroResultsIsValid(t *testing.T) {
	s := setupService(t, &fakeInvoker{})

	resp, err := s.Run(context.Background(), &models.ScrapeRequest{
		SearchQuery: "unicorn stores",
		City:        "Tirana",
	})
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, models.ScrapeStats{}, resp.Stats)
}

func TestRunStartFailureMarksRunFailed(t *testing.T) {
	s := setupService(t, &fakeInvoker{startErr: assert.AnError})
	ctx := context.Background()

	resp, err := s.Run(ctx, &models.ScrapeRequest{SearchQuery: "cafes", City: "Tirana"})
	require.NoError(t, err)
	assert.False(t, resp.Success)

	run, err := s.client.ScrapeRun.Query().Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, scraperun.StatusFailed, run.Status)
}

func TestBuildSearchStrings(t *testing.T) {
	assert.Equal(t, []string{"cafes"}, buildSearchStrings("cafes", "Tirana", nil))
	assert.Equal(t,
		[]string{"cafes Blloku Tirana", "cafes Qendra Tirana"},
		buildSearchStrings("cafes", "Tirana", []string{"Blloku", "Qendra"}))
	assert.Equal(t, []string{"cafes"}, buildSearchStrings("cafes", "Tirana", []string{""}))
}
