package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/ipropixel/leadfinder/ent"
	"github.com/ipropixel/leadfinder/ent/enttest"
	entexport "github.com/ipropixel/leadfinder/ent/export"
	"github.com/ipropixel/leadfinder/pkg/businesses"
	"github.com/ipropixel/leadfinder/pkg/cache"
	exportpkg "github.com/ipropixel/leadfinder/pkg/export"
	"github.com/ipropixel/leadfinder/pkg/logger"
	"github.com/ipropixel/leadfinder/pkg/models"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "github.com/mattn/go-sqlite3"
)

// setupExportTest creates a test database and export handler
func setupExportTest(t *testing.T) (*ent.Client, *ExportHandler, func()) {
	client := enttest.Open(t, "sqlite3", "file:exporthandler?mode=memory&cache=shared&_fk=1")

	mr := miniredis.RunT(t)
	cacheClient, err := cache.NewClient("redis://" + mr.Addr())
	require.NoError(t, err)

	businessService := businesses.NewService(client, cacheClient, "AL", logger.Default())
	exportService := exportpkg.NewService(client, businessService, t.TempDir(), logger.Default())
	handler := NewExportHandler(exportService, nil)
	cleanup := func() {
		// Allow async export processing goroutines to complete before closing DB
		time.Sleep(100 * time.Millisecond)
		cacheClient.Close()
		client.Close()
	}
	return client, handler, cleanup
}

func TestExportHandler_Create(t *testing.T) {
	client, handler, cleanup := setupExportTest(t)
	defer cleanup()

	_, err := client.Business.Create().
		SetName("Denta Plus").
		SetSearchQuery("dentist tirana").
		SetScrapedAt(time.Now()).
		Save(context.Background())
	require.NoError(t, err)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/exports", strings.NewReader(`{"format":"csv"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handler.Create(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp models.ExportResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "csv", resp.Format)
	assert.NotZero(t, resp.ID)
}

func TestExportHandler_Create_BadFormat(t *testing.T) {
	_, handler, cleanup := setupExportTest(t)
	defer cleanup()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/exports", strings.NewReader(`{"format":"pdf"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handler.Create(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestExportHandler_Download_CompletedExport(t *testing.T) {
	client, handler, cleanup := setupExportTest(t)
	defer cleanup()

	_, err := client.Business.Create().
		SetName("Denta Plus").
		SetPhone("+355691111111").
		SetSearchQuery("dentist tirana").
		SetScrapedAt(time.Now()).
		Save(context.Background())
	require.NoError(t, err)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/exports", strings.NewReader(`{"format":"csv"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	require.NoError(t, handler.Create(e.NewContext(req, rec)))

	var created models.ExportResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))

	// Wait for the background generation to finish.
	require.Eventually(t, func() bool {
		exp, err := client.Export.Get(context.Background(), created.ID)
		return err == nil && exp.Status == entexport.StatusCompleted
	}, 5*time.Second, 50*time.Millisecond)

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	rec = httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(strconv.Itoa(created.ID))

	require.NoError(t, handler.Download(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Denta Plus")
}

func TestExportHandler_Download_NotReady(t *testing.T) {
	client, handler, cleanup := setupExportTest(t)
	defer cleanup()

	exp, err := client.Export.Create().
		SetFormat(entexport.FormatCsv).
		SetStatus(entexport.StatusPending).
		Save(context.Background())
	require.NoError(t, err)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(strconv.Itoa(exp.ID))

	require.NoError(t, handler.Download(c))
	assert.Equal(t, http.StatusGone, rec.Code)
}

func TestExportHandler_List(t *testing.T) {
	client, handler, cleanup := setupExportTest(t)
	defer cleanup()

	for i := 0; i < 3; i++ {
		_, err := client.Export.Create().
			SetFormat(entexport.FormatCsv).
			SetStatus(entexport.StatusCompleted).
			Save(context.Background())
		require.NoError(t, err)
	}

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/exports?limit=2", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handler.List(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp models.ExportListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp.Data, 2)
	assert.Equal(t, 3, resp.Pagination.Total)
}

func TestExportHandler_Delete_NotFound(t *testing.T) {
	_, handler, cleanup := setupExportTest(t)
	defer cleanup()

	e := echo.New()
	req := httptest.NewRequest(http.MethodDelete, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("9999")

	require.NoError(t, handler.Delete(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
