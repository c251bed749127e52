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
	"github.com/ipropixel/leadfinder/pkg/businesses"
	"github.com/ipropixel/leadfinder/pkg/cache"
	"github.com/ipropixel/leadfinder/pkg/logger"
	"github.com/ipropixel/leadfinder/pkg/models"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "github.com/mattn/go-sqlite3"
)

// setupBusinessTest creates a test database and business handler
func setupBusinessTest(t *testing.T) (*ent.Client, *BusinessHandler, func()) {
	client := enttest.Open(t, "sqlite3", "file:handlers?mode=memory&cache=shared&_fk=1")

	mr := miniredis.RunT(t)
	cacheClient, err := cache.NewClient("redis://" + mr.Addr())
	require.NoError(t, err)

	service := businesses.NewService(client, cacheClient, "AL", logger.Default())
	handler := NewBusinessHandler(service)
	cleanup := func() {
		cacheClient.Close()
		client.Close()
	}
	return client, handler, cleanup
}

func seedBusiness(t *testing.T, client *ent.Client, name, phone string, rating float64) *ent.Business {
	t.Helper()
	b, err := client.Business.Create().
		SetName(name).
		SetPhone(phone).
		SetRating(rating).
		SetSearchQuery("dentist tirana").
		SetScrapedAt(time.Now()).
		Save(context.Background())
	require.NoError(t, err)
	return b
}

func TestBusinessHandler_List(t *testing.T) {
	client, handler, cleanup := setupBusinessTest(t)
	defer cleanup()

	seedBusiness(t, client, "Denta Plus", "+355691111111", 4.8)
	seedBusiness(t, client, "Smile Clinic", "+355692222222", 4.2)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/businesses?sort_by=rating&sort_order=desc", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handler.ListBusinesses(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp models.BusinessListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 2)
	assert.Equal(t, "Denta Plus", resp.Data[0].Name)
	assert.Equal(t, 2, resp.Pagination.Total)
}

func TestBusinessHandler_List_InvalidSort(t *testing.T) {
	_, handler, cleanup := setupBusinessTest(t)
	defer cleanup()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/businesses?sort_by=password", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handler.ListBusinesses(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "validation_error", resp.Error)
}

func TestBusinessHandler_Get(t *testing.T) {
	client, handler, cleanup := setupBusinessTest(t)
	defer cleanup()

	b := seedBusiness(t, client, "Denta Plus", "+355691111111", 4.8)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(strconv.Itoa(b.ID))

	require.NoError(t, handler.GetBusiness(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp models.BusinessResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Denta Plus", resp.Name)
}

func TestBusinessHandler_Get_NotFound(t *testing.T) {
	_, handler, cleanup := setupBusinessTest(t)
	defer cleanup()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("9999")

	require.NoError(t, handler.GetBusiness(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestBusinessHandler_Delete(t *testing.T) {
	client, handler, cleanup := setupBusinessTest(t)
	defer cleanup()

	b := seedBusiness(t, client, "Gone Soon", "+355693333333", 3.0)

	e := echo.New()
	req := httptest.NewRequest(http.MethodDelete, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(strconv.Itoa(b.ID))

	require.NoError(t, handler.DeleteBusiness(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	count, err := client.Business.Query().Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestBusinessHandler_UpdateOutreachFlags(t *testing.T) {
	client, handler, cleanup := setupBusinessTest(t)
	defer cleanup()

	b := seedBusiness(t, client, "Denta Plus", "+355691111111", 4.8)

	e := echo.New()
	body := `{"email_sent": true}`
	req := httptest.NewRequest(http.MethodPatch, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(strconv.Itoa(b.ID))

	require.NoError(t, handler.UpdateOutreachFlags(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp models.BusinessResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.EmailSent)
	assert.NotEmpty(t, resp.EmailSentAt)
	assert.False(t, resp.SMSSent)
}

func TestBusinessHandler_Stats(t *testing.T) {
	client, handler, cleanup := setupBusinessTest(t)
	defer cleanup()

	seedBusiness(t, client, "Denta Plus", "+355691111111", 4.8)
	seedBusiness(t, client, "Smile Clinic", "+355692222222", 4.2)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/businesses/stats", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handler.GetStats(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp models.StatsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.TotalBusinesses)
	assert.Equal(t, 2, resp.WithPhone)
}

func TestBusinessHandler_PhoneTargets(t *testing.T) {
	client, handler, cleanup := setupBusinessTest(t)
	defer cleanup()

	seedBusiness(t, client, "Denta Plus", "+355691111111", 4.8)
	_, err := client.Business.Create().
		SetName("No Phone Spa").
		SetSearchQuery("spa tirana").
		SetScrapedAt(time.Now()).
		Save(context.Background())
	require.NoError(t, err)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/businesses/phone-targets", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handler.ListPhoneTargets(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp models.TargetListResponse[models.PhoneTarget]
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 1)
	assert.Equal(t, "Denta Plus", resp.Data[0].Name)
}
