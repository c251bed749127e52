package apify

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStartRun(t *testing.T) {
	var gotInput ActorInput
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v2/acts/nwua9Gu5YrADL7ZDj/runs", r.URL.Path)
		assert.Equal(t, "test-token", r.URL.Query().Get("token"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotInput))

		w.WriteHeader(http.StatusCreated)
		fmt.Fprint(w, `{"data":{"id":"run-123","actId":"nwua9Gu5YrADL7ZDj","status":"RUNNING","defaultDatasetId":"ds-456"}}`)
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-token")
	run, err := client.StartRun(context.Background(), "nwua9Gu5YrADL7ZDj", ActorInput{
		LocationQuery:      "Tirana, Albania",
		SearchStringsArray: []string{"dentist"},
		Language:           "en",
	})
	require.NoError(t, err)

	assert.Equal(t, "run-123", run.ID)
	assert.Equal(t, "ds-456", run.DefaultDatasetID)
	assert.False(t, run.Finished())
	assert.Equal(t, "Tirana, Albania", gotInput.LocationQuery)
	assert.Equal(t, []string{"dentist"}, gotInput.SearchStringsArray)
}

func TestStartRun_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		fmt.Fprint(w, `{"error":{"type":"token-not-found"}}`)
	}))
	defer server.Close()

	client := NewClient(server.URL, "bad-token")
	_, err := client.StartRun(context.Background(), "nwua9Gu5YrADL7ZDj", ActorInput{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "401")
	assert.Contains(t, err.Error(), "token-not-found")
}

func TestWaitForFinish(t *testing.T) {
	var polls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v2/actor-runs/run-123", r.URL.Path)

		status := "RUNNING"
		if atomic.AddInt32(&polls, 1) >= 3 {
			status = StatusSucceeded
		}
		fmt.Fprintf(w, `{"data":{"id":"run-123","status":"%s","defaultDatasetId":"ds-456"}}`, status)
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-token")
	run, err := client.WaitForFinish(context.Background(), "run-123", 10*time.Millisecond)
	require.NoError(t, err)

	assert.Equal(t, StatusSucceeded, run.Status)
	assert.True(t, run.Finished())
	assert.GreaterOrEqual(t, atomic.LoadInt32(&polls), int32(3))
}

func TestWaitForFinish_ContextCancelled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"data":{"id":"run-123","status":"RUNNING"}}`)
	}))
	defer server.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	client := NewClient(server.URL, "test-token")
	_, err := client.WaitForFinish(ctx, "run-123", 10*time.Millisecond)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestStreamLog(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v2/logs/run-123", r.URL.Path)
		assert.Equal(t, "1", r.URL.Query().Get("stream"))

		flusher := w.(http.Flusher)
		fmt.Fprint(w, "2026-08-29 INFO  Starting scrape\n")
		flusher.Flush()
		fmt.Fprint(w, "2026-08-29 INFO  Found 25 places\r\n")
		flusher.Flush()
		// Trailing partial line without newline still reaches the handler.
		fmt.Fprint(w, "2026-08-29 INFO  Done")
	}))
	defer server.Close()

	var lines []string
	client := NewClient(server.URL, "test-token")
	err := client.StreamLog(context.Background(), "run-123", func(line string) {
		lines = append(lines, line)
	})
	require.NoError(t, err)

	require.Len(t, lines, 3)
	assert.Equal(t, "2026-08-29 INFO  Starting scrape", lines[0])
	assert.Equal(t, "2026-08-29 INFO  Found 25 places", lines[1])
	assert.Equal(t, "2026-08-29 INFO  Done", lines[2])
}

func TestListItems(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v2/datasets/ds-456/items", r.URL.Path)
		assert.Equal(t, "true", r.URL.Query().Get("clean"))
		assert.Equal(t, "json", r.URL.Query().Get("format"))

		fmt.Fprint(w, `[
			{"title":"Denta Plus","categoryName":"Dentist","city":"Tirana","phone":"+355 69 123 4567","totalScore":4.8,"reviewsCount":120,"location":{"lat":41.3275,"lng":19.8187}},
			{"title":"Smile Clinic","categoryName":"Dentist","city":"Tirana","website":"https://smile.al"}
		]`)
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-token")
	items, err := client.ListItems(context.Background(), "ds-456")
	require.NoError(t, err)

	require.Len(t, items, 2)
	assert.Equal(t, "Denta Plus", items[0].Title)
	assert.Equal(t, "+355 69 123 4567", items[0].Phone)
	require.NotNil(t, items[0].TotalScore)
	assert.InDelta(t, 4.8, *items[0].TotalScore, 0.001)
	assert.Equal(t, 120, items[0].ReviewsCount)
	require.NotNil(t, items[0].Location)
	assert.InDelta(t, 41.3275, items[0].Location.Lat, 0.0001)
	assert.Equal(t, "https://smile.al", items[1].Website)
	assert.Nil(t, items[1].TotalScore)
}

func TestListItems_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		fmt.Fprint(w, `{"error":{"type":"record-not-found"}}`)
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-token")
	_, err := client.ListItems(context.Background(), "missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")
}
