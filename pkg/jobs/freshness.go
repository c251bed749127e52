package jobs

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/ipropixel/leadfinder/ent"
	"github.com/ipropixel/leadfinder/pkg/cache"
	"github.com/ipropixel/leadfinder/pkg/models"
	"github.com/ipropixel/leadfinder/pkg/scrape"
)

// StaleQuery represents an ingestion query whose data has gone stale
type StaleQuery struct {
	SearchQuery  string    `json:"search_query"`
	Count        int       `json:"count"`
	NewestScrape time.Time `json:"newest_scrape"`
}

// FreshnessMonitor re-runs ingestion for queries whose data has aged out
type FreshnessMonitor struct {
	db      *ent.Client
	cache   *cache.Client
	scraper *scrape.Service
	logger  *log.Logger
}

// NewFreshnessMonitor creates a new freshness monitor instance
func NewFreshnessMonitor(db *ent.Client, cacheClient *cache.Client, scraper *scrape.Service, logger *log.Logger) *FreshnessMonitor {
	if logger == nil {
		logger = log.Default()
	}

	return &FreshnessMonitor{
		db:      db,
		cache:   cacheClient,
		scraper: scraper,
		logger:  logger,
	}
}

// DetectStaleQueries finds search queries whose newest record is older than maxAge
func (m *FreshnessMonitor) DetectStaleQueries(ctx context.Context, maxAge time.Duration) ([]StaleQuery, error) {
	m.logger.Printf("Detecting queries with no fresh data in the last %s...", maxAge)

	businesses, err := m.db.Business.Query().All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query businesses: %w", err)
	}

	// Group by search query manually, keeping the newest scrape time
	newest := make(map[string]StaleQuery)
	for _, b := range businesses {
		if b.SearchQuery == "" {
			continue
		}
		sq, exists := newest[b.SearchQuery]
		if !exists {
			sq = StaleQuery{SearchQuery: b.SearchQuery}
		}
		sq.Count++
		if b.ScrapedAt.After(sq.NewestScrape) {
			sq.NewestScrape = b.ScrapedAt
		}
		newest[b.SearchQuery] = sq
	}

	cutoff := time.Now().Add(-maxAge)
	var stale []StaleQuery
	for _, sq := range newest {
		if sq.NewestScrape.Before(cutoff) {
			stale = append(stale, sq)
		}
	}

	m.logger.Printf("Found %d stale queries", len(stale))
	return stale, nil
}

// TriggerRescrape runs one ingestion for a query, guarded by a cache marker
// so overlapping schedules never run the same query twice.
func (m *FreshnessMonitor) TriggerRescrape(ctx context.Context, query, city string, maxResults int) error {
	inProgress, err := m.IsRescrapeInProgress(ctx, query, city)
	if err == nil && inProgress {
		m.logger.Printf("Skipping %s / %s: rescrape already in progress", query, city)
		return nil
	}

	if err := m.MarkRescrapeInProgress(ctx, query, city); err != nil {
		m.logger.Printf("Warning: could not mark rescrape in progress: %v", err)
	}
	defer m.ClearRescrapeStatus(ctx, query, city)

	resp, err := m.scraper.Run(ctx, &models.ScrapeRequest{
		SearchQuery:    query,
		City:           city,
		MaxResults:     maxResults,
		SkipDuplicates: true,
	})
	if err != nil {
		return fmt.Errorf("rescrape of %q failed: %w", query, err)
	}

	m.logger.Printf("Rescrape of %q: scraped=%d inserted=%d updated=%d",
		query, resp.Stats.Scraped, resp.Stats.Inserted, resp.Stats.Updated)
	return nil
}

// TriggerRescrapeBatch re-scrapes queries with bounded concurrency
func (m *FreshnessMonitor) TriggerRescrapeBatch(ctx context.Context, queries []string, city string, maxResults, maxConcurrent int) error {
	if maxConcurrent <= 0 {
		maxConcurrent = 1
	}

	sem := make(chan struct{}, maxConcurrent)
	var wg sync.WaitGroup
	var mu sync.Mutex
	var errs []error

	for _, q := range queries {
		q := q
		wg.Add(1)
		sem <- struct{}{}
		go func() {
			defer wg.Done()
			defer func() { <-sem }()

			if err := m.TriggerRescrape(ctx, q, city, maxResults); err != nil {
				mu.Lock()
				errs = append(errs, err)
				mu.Unlock()
			}
		}()
	}

	wg.Wait()

	if len(errs) > 0 {
		return fmt.Errorf("%d of %d rescrapes failed: %v", len(errs), len(queries), errs[0])
	}
	return nil
}

// CacheKey builds the in-progress marker key for a query/city pair
func (m *FreshnessMonitor) CacheKey(query, city string) string {
	return fmt.Sprintf("rescrape:in_progress:%s:%s", query, city)
}

// MarkRescrapeInProgress sets the in-progress marker with a safety TTL
func (m *FreshnessMonitor) MarkRescrapeInProgress(ctx context.Context, query, city string) error {
	return m.cache.Set(ctx, m.CacheKey(query, city), "1", 1*time.Hour)
}

// IsRescrapeInProgress reports whether the marker is set
func (m *FreshnessMonitor) IsRescrapeInProgress(ctx context.Context, query, city string) (bool, error) {
	return m.cache.Exists(ctx, m.CacheKey(query, city))
}

// ClearRescrapeStatus removes the marker
func (m *FreshnessMonitor) ClearRescrapeStatus(ctx context.Context, query, city string) error {
	return m.cache.Delete(ctx, m.CacheKey(query, city))
}
