package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/ipropixel/leadfinder/ent"
	"github.com/ipropixel/leadfinder/pkg/api/errors"
	"github.com/ipropixel/leadfinder/pkg/cache"
	"github.com/ipropixel/leadfinder/pkg/metrics"
	"github.com/ipropixel/leadfinder/pkg/models"
	"github.com/ipropixel/leadfinder/pkg/relay"
	"github.com/ipropixel/leadfinder/pkg/scrape"
	"github.com/labstack/echo/v4"
)

// ScrapeHandler handles ingestion run endpoints
type ScrapeHandler struct {
	scrapeService *scrape.Service
	cache         *cache.Client
	metrics       *metrics.Metrics
	validator     *validator.Validate
}

// NewScrapeHandler creates a new scrape handler. metrics may be nil.
func NewScrapeHandler(scrapeService *scrape.Service, cacheClient *cache.Client, m *metrics.Metrics) *ScrapeHandler {
	return &ScrapeHandler{
		scrapeService: scrapeService,
		cache:         cacheClient,
		metrics:       m,
		validator:     validator.New(),
	}
}

// StartScrape godoc
// @Summary Start an ingestion run
// @Description Scrapes Google Maps for the given query and city, reconciles the results against the database and persists new businesses. Blocks until the run finishes.
// @Tags Scrapes
// @Accept json
// @Produce json
// @Param request body models.ScrapeRequest true "Run parameters"
// @Success 200 {object} models.ScrapeResponse "Final run stats and sample"
// @Failure 400 {object} models.ScrapeResponse "Missing query, city or API key"
// @Failure 500 {object} models.ErrorResponse "Run failed before any work happened"
// @Router /scrapes [post]
func (h *ScrapeHandler) StartScrape(c echo.Context) error {
	var req models.ScrapeRequest
	if err := c.Bind(&req); err != nil {
		return errors.ValidationError(c, err)
	}

	if req.SearchQuery == "" || req.City == "" {
		return c.JSON(http.StatusBadRequest, models.ScrapeResponse{
			Success: false,
			Message: "search_query and city are required",
			Sample:  []models.ScrapeSample{},
		})
	}
	if err := h.validator.Struct(req); err != nil {
		return errors.ValidationError(c, err)
	}

	start := time.Now()
	resp, err := h.scrapeService.Run(c.Request().Context(), &req)
	if err != nil {
		if err == scrape.ErrMissingAPIKey {
			return c.JSON(http.StatusBadRequest, resp)
		}
		return errors.InternalError(c, err)
	}

	if h.metrics != nil {
		h.metrics.RecordScrapeRun(resp.Success, time.Since(start),
			resp.Stats.Inserted, resp.Stats.Updated, resp.Stats.Duplicates, resp.Stats.Failed)
	}

	return c.JSON(http.StatusOK, resp)
}

// ListRuns godoc
// @Summary List past ingestion runs
// @Description Returns recent runs, most recent first
// @Tags Scrapes
// @Produce json
// @Param limit query int false "Maximum runs to return (default 20, max 100)"
// @Success 200 {object} map[string]interface{} "Runs with total count"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /scrapes [get]
func (h *ScrapeHandler) ListRuns(c echo.Context) error {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	runs, err := h.scrapeService.ListRuns(c.Request().Context(), limit)
	if err != nil {
		return errors.DatabaseError(c, err)
	}

	out := make([]models.ScrapeRunResponse, 0, len(runs))
	for _, r := range runs {
		out = append(out, runToResponse(r))
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"data":  out,
		"total": len(out),
	})
}

// GetRun godoc
// @Summary Get an ingestion run
// @Description Returns the persisted state and final stats of a run
// @Tags Scrapes
// @Produce json
// @Param run_id path string true "Run identifier"
// @Success 200 {object} models.ScrapeRunResponse "Run record"
// @Failure 404 {object} models.ErrorResponse "Run not found"
// @Router /scrapes/{run_id} [get]
func (h *ScrapeHandler) GetRun(c echo.Context) error {
	runID := c.Param("run_id")
	if runID == "" {
		return errors.ValidationError(c, fmt.Errorf("run_id is required"))
	}

	run, err := h.scrapeService.GetRun(c.Request().Context(), runID)
	if err != nil {
		if ent.IsNotFound(err) {
			return errors.NotFoundError(c, "scrape run")
		}
		return errors.DatabaseError(c, err)
	}

	return c.JSON(http.StatusOK, runToResponse(run))
}

// StreamLogs godoc
// @Summary Stream live run logs
// @Description Server-sent events stream of log lines for a run. Heartbeats keep the connection alive while the run is idle.
// @Tags Scrapes
// @Produce text/event-stream
// @Param run_id path string true "Run identifier"
// @Success 200 {string} string "SSE stream of log events"
// @Router /scrapes/{run_id}/logs [get]
func (h *ScrapeHandler) StreamLogs(c echo.Context) error {
	runID := c.Param("run_id")
	if runID == "" {
		return errors.ValidationError(c, fmt.Errorf("run_id is required"))
	}

	events, cancel, err := relay.Listen(c.Request().Context(), h.cache, runID)
	if err != nil {
		return errors.UpstreamError(c, err)
	}
	defer cancel()

	res := c.Response()
	res.Header().Set(echo.HeaderContentType, "text/event-stream")
	res.Header().Set("Cache-Control", "no-cache")
	res.Header().Set("Connection", "keep-alive")
	res.WriteHeader(http.StatusOK)
	res.Flush()

	for {
		select {
		case <-c.Request().Context().Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if ev.Kind == relay.KindHeartbeat {
				// Comment lines keep proxies from closing idle streams.
				fmt.Fprint(res, ": heartbeat\n\n")
				res.Flush()
				continue
			}
			payload, err := json.Marshal(ev)
			if err != nil {
				continue
			}
			fmt.Fprintf(res, "data: %s\n\n", payload)
			res.Flush()
		}
	}
}

func runToResponse(r *ent.ScrapeRun) models.ScrapeRunResponse {
	out := models.ScrapeRunResponse{
		ID:             r.ID,
		RunID:          r.RunID,
		SearchQuery:    r.SearchQuery,
		City:           r.City,
		Neighborhoods:  r.Neighborhoods,
		MaxResults:     r.MaxResults,
		SkipDuplicates: r.SkipDuplicates,
		Status:         string(r.Status),
		Stats: models.ScrapeStats{
			Scraped:    r.Scraped,
			Inserted:   r.Inserted,
			Updated:    r.Updated,
			Duplicates: r.Duplicates,
			Failed:     r.Failed,
		},
		Message:   r.Message,
		StartedAt: r.StartedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
	if r.FinishedAt != nil {
		out.FinishedAt = r.FinishedAt.Format("2006-01-02T15:04:05Z07:00")
	}
	return out
}
