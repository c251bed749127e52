package importer

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/ipropixel/leadfinder/ent"
	"github.com/ipropixel/leadfinder/ent/business"
	"github.com/ipropixel/leadfinder/pkg/apify"
	"github.com/ipropixel/leadfinder/pkg/logger"
	"github.com/ipropixel/leadfinder/pkg/models"
	"github.com/ipropixel/leadfinder/pkg/relay"
	"github.com/ipropixel/leadfinder/pkg/scrape"
)

// Config holds configuration for a dataset import
type Config struct {
	SearchQuery    string // recorded on every imported row
	SkipDuplicates bool
	ValidateOnly   bool // parse and reconcile, but do not write
}

// Result holds the outcome of a dataset import
type Result struct {
	TotalItems int                   `json:"total_items"`
	Stats      models.ScrapeStats    `json:"stats"`
	Sample     []models.ScrapeSample `json:"sample"`
	Duration   string                `json:"duration"`
}

// Service imports Apify dataset exports without going through the actor.
// Useful for backfills and for datasets downloaded from the Apify console.
type Service struct {
	client *ent.Client
	log    logger.Logger
}

// NewService creates a new dataset import service
func NewService(client *ent.Client, log logger.Logger) *Service {
	if log == nil {
		log = logger.Default()
	}
	return &Service{client: client, log: log}
}

// ImportDataset reads a JSON array of places from r and runs it through the
// same reconcile and persist pipeline a live run uses.
func (s *Service) ImportDataset(ctx context.Context, r io.Reader, cfg Config) (*Result, error) {
	startTime := time.Now()

	var items []apify.PlaceResult
	if err := json.NewDecoder(r).Decode(&items); err != nil {
		return nil, fmt.Errorf("failed to decode dataset: %w", err)
	}

	existing, err := s.loadExisting(ctx, cfg.SkipDuplicates)
	if err != nil {
		return nil, err
	}

	emit := func(message string, kind relay.Kind) {
		s.log.Info(message)
	}

	rec := scrape.NewReconciler(existing, cfg.SkipDuplicates, emit)
	outcome := rec.Reconcile(items, cfg.SearchQuery, startTime)

	if !cfg.ValidateOnly {
		persister := scrape.NewPersister(s.client, emit)
		persister.InsertAll(ctx, outcome.ToInsert, &outcome.Stats)
		persister.UpdatePhones(ctx, outcome.ToUpdate, startTime, &outcome.Stats)
	}

	return &Result{
		TotalItems: len(items),
		Stats:      outcome.Stats,
		Sample:     outcome.Sample,
		Duration:   fmt.Sprintf("%.1fs", time.Since(startTime).Seconds()),
	}, nil
}

func (s *Service) loadExisting(ctx context.Context, skipDuplicates bool) (map[string]scrape.Existing, error) {
	existing := make(map[string]scrape.Existing)
	if !skipDuplicates {
		return existing, nil
	}

	rows, err := s.client.Business.Query().
		Select(business.FieldID, business.FieldName, business.FieldPhone).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load existing businesses: %w", err)
	}

	for _, b := range rows {
		existing[strings.ToLower(b.Name)] = scrape.Existing{ID: b.ID, Phone: b.Phone}
	}
	return existing, nil
}
