package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/ipropixel/leadfinder/config"
	"github.com/ipropixel/leadfinder/ent"
	"github.com/ipropixel/leadfinder/ent/enttest"
	"github.com/ipropixel/leadfinder/ent/scraperun"
	"github.com/ipropixel/leadfinder/pkg/cache"
	"github.com/ipropixel/leadfinder/pkg/logger"
	"github.com/ipropixel/leadfinder/pkg/models"
	"github.com/ipropixel/leadfinder/pkg/relay"
	"github.com/ipropixel/leadfinder/pkg/scrape"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "github.com/mattn/go-sqlite3"
)

func setupScrapeTest(t *testing.T) (*ent.Client, *cache.Client, *ScrapeHandler, func()) {
	client := enttest.Open(t, "sqlite3", "file:scrapehandler?mode=memory&cache=shared&_fk=1")

	mr := miniredis.RunT(t)
	cacheClient, err := cache.NewClient("redis://" + mr.Addr())
	require.NoError(t, err)

	cfg := &config.Config{
		RelayHeartbeatInterval: 20 * time.Second,
	}
	service := scrape.NewService(client, cacheClient, cfg, logger.Default())
	handler := NewScrapeHandler(service, cacheClient, nil)
	cleanup := func() {
		cacheClient.Close()
		client.Close()
	}
	return client, cacheClient, handler, cleanup
}

func TestScrapeHandler_Start_MissingQuery(t *testing.T) {
	_, _, handler, cleanup := setupScrapeTest(t)
	defer cleanup()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/scrapes", strings.NewReader(`{"city":"Tirana"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handler.StartScrape(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp models.ScrapeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, models.ScrapeStats{}, resp.Stats)
	assert.Empty(t, resp.Sample)
}

func TestScrapeHandler_Start_MissingAPIKey(t *testing.T) {
	_, _, handler, cleanup := setupScrapeTest(t)
	defer cleanup()

	e := echo.New()
	body := `{"search_query":"dentist","city":"Tirana"}`
	req := httptest.NewRequest(http.MethodPost, "/scrapes", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handler.StartScrape(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp models.ScrapeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Contains(t, resp.Message, "API key")
}

func TestScrapeHandler_ListRuns(t *testing.T) {
	client, _, handler, cleanup := setupScrapeTest(t)
	defer cleanup()

	ctx := context.Background()
	for _, q := range []string{"dentist", "barber"} {
		_, err := client.ScrapeRun.Create().
			SetSearchQuery(q).
			SetCity("Tirana").
			SetStatus(scraperun.StatusDone).
			Save(ctx)
		require.NoError(t, err)
	}

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/scrapes", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handler.ListRuns(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data  []models.ScrapeRunResponse `json:"data"`
		Total int                        `json:"total"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Total)
	require.Len(t, resp.Data, 2)
	assert.Equal(t, "done", resp.Data[0].Status)
}

func TestScrapeHandler_GetRun(t *testing.T) {
	client, _, handler, cleanup := setupScrapeTest(t)
	defer cleanup()

	ctx := context.Background()
	_, err := client.ScrapeRun.Create().
		SetRunID("run-abc").
		SetSearchQuery("dentist").
		SetCity("Tirana").
		SetStatus(scraperun.StatusDone).
		SetScraped(25).
		SetInserted(20).
		SetDuplicates(5).
		Save(ctx)
	require.NoError(t, err)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/scrapes/run-abc", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("run_id")
	c.SetParamValues("run-abc")

	require.NoError(t, handler.GetRun(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp models.ScrapeRunResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "run-abc", resp.RunID)
	assert.Equal(t, "done", resp.Status)
	assert.Equal(t, 25, resp.Stats.Scraped)
	assert.Equal(t, 20, resp.Stats.Inserted)
}

func TestScrapeHandler_GetRun_NotFound(t *testing.T) {
	_, _, handler, cleanup := setupScrapeTest(t)
	defer cleanup()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/scrapes/nope", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("run_id")
	c.SetParamValues("nope")

	require.NoError(t, handler.GetRun(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestScrapeHandler_StreamLogs(t *testing.T) {
	_, cacheClient, handler, cleanup := setupScrapeTest(t)
	defer cleanup()

	const runID = "stream-test"

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/scrapes/"+runID+"/logs", nil)
	ctx, cancel := context.WithCancel(context.Background())
	req = req.WithContext(ctx)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("run_id")
	c.SetParamValues(runID)

	done := make(chan error, 1)
	go func() {
		done <- handler.StreamLogs(c)
	}()

	// The subscriber joins asynchronously; publish repeatedly so at least
	// one event lands after the join, then close the stream and inspect.
	ev := relay.Event{Message: "[+] Denta Plus | Dentist | Phone: +355691111111", Kind: relay.KindItemNew, Timestamp: time.Now()}
	payload, err := json.Marshal(ev)
	require.NoError(t, err)
	for i := 0; i < 20; i++ {
		require.NoError(t, cacheClient.Publish(context.Background(), relay.ChannelName(runID), payload))
		time.Sleep(25 * time.Millisecond)
	}

	cancel()
	require.NoError(t, <-done)

	body := rec.Body.String()
	assert.Contains(t, body, "data:")
	assert.Contains(t, body, "Denta Plus")
	assert.Contains(t, body, `"kind":"item-new"`)
	assert.Equal(t, "text/event-stream", rec.Header().Get(echo.HeaderContentType))
}
