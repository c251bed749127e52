package scrape

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ipropixel/leadfinder/config"
	"github.com/ipropixel/leadfinder/ent"
	"github.com/ipropixel/leadfinder/ent/scraperun"
	"github.com/ipropixel/leadfinder/pkg/apify"
	"github.com/ipropixel/leadfinder/pkg/cache"
	"github.com/ipropixel/leadfinder/pkg/logger"
	"github.com/ipropixel/leadfinder/pkg/models"
	"github.com/ipropixel/leadfinder/pkg/relay"
)

// ErrMissingAPIKey is returned when neither the request nor the server
// configuration provides a scrape provider token.
var ErrMissingAPIKey = errors.New("apify API key is required")

const separator = "======================================================================"

// Invoker is the external scrape provider contract. The production
// implementation is the Apify client; tests substitute fakes.
type Invoker interface {
	StartRun(ctx context.Context, actorID string, input interface{}) (*apify.Run, error)
	StreamLog(ctx context.Context, runID string, handle func(line string)) error
	WaitForFinish(ctx context.Context, runID string, interval time.Duration) (*apify.Run, error)
	ListItems(ctx context.Context, datasetID string) ([]apify.PlaceResult, error)
}

// InvokerFactory builds an Invoker bound to an API token. Tokens can come
// per-request, so the invoker cannot be constructed once at startup.
type InvokerFactory func(token string) Invoker

// Service orchestrates a full ingestion run: invoke the external
// scraper, relay its progress, reconcile results against the dataset and
// persist the outcome.
type Service struct {
	client       *ent.Client
	cache        *cache.Client
	cfg          *config.Config
	log          logger.Logger
	invokers     InvokerFactory
	pollInterval time.Duration
}

// NewService creates a scrape service using the real Apify client.
func NewService(client *ent.Client, cacheClient *cache.Client, cfg *config.Config, log logger.Logger) *Service {
	return &Service{
		client: client,
		cache:  cacheClient,
		cfg:    cfg,
		log:    log,
		invokers: func(token string) Invoker {
			return apify.NewClient(cfg.ApifyBaseURL, token)
		},
		pollInterval: 5 * time.Second,
	}
}

// Run executes one ingestion run end to end. It always returns a response
// with final stats; err is non-nil only for failures before any work
// happened (bad input, provider unreachable).
func (s *Service) Run(ctx context.Context, req *models.ScrapeRequest) (*models.ScrapeResponse, error) {
	startTime := time.Now()

	token := req.ApifyAPIKey
	if token == "" {
		token = s.cfg.ApifyAPIKey
	}
	if token == "" {
		return zeroResponse("Apify API key is required. Provide it in the request or set APIFY_API_KEY."), ErrMissingAPIKey
	}

	runID := req.RunID
	if runID == "" {
		runID = uuid.NewString()
	}

	maxPlaces := req.MaxResults
	if maxPlaces <= 0 {
		maxPlaces = 100
	}

	// The relay is best-effort: a broken Redis never blocks ingestion.
	var logRun *relay.Run
	if r, err := relay.Open(ctx, s.cache, runID, s.cfg.RelayHeartbeatInterval, s.log); err != nil {
		s.log.Warn("log relay unavailable, continuing without live logs", "run_id", runID, "error", err)
	} else {
		logRun = r
		defer logRun.Close()
	}
	emit := func(message string, kind relay.Kind) {
		s.log.Info(message, "run_id", runID)
		if logRun != nil {
			logRun.Publish(message, kind)
		}
	}

	run, err := s.client.ScrapeRun.Create().
		SetRunID(runID).
		SetSearchQuery(req.SearchQuery).
		SetCity(req.City).
		SetNeighborhoods(req.Neighborhoods).
		SetMaxResults(maxPlaces).
		SetSkipDuplicates(req.SkipDuplicates).
		SetStatus(scraperun.StatusPending).
		Save(ctx)
	if err != nil {
		return zeroResponse("failed to record run"), fmt.Errorf("failed to create scrape run: %w", err)
	}

	resp := s.execute(ctx, req, run, token, maxPlaces, startTime, emit)

	status := scraperun.StatusDone
	if !resp.Success {
		status = scraperun.StatusFailed
	}
	s.finishRun(ctx, run.ID, status, resp)

	return resp, nil
}

func (s *Service) execute(ctx context.Context, req *models.ScrapeRequest, run *ent.ScrapeRun, token string, maxPlaces int, startTime time.Time, emit LogFunc) *models.ScrapeResponse {
	searchStrings := buildSearchStrings(req.SearchQuery, req.City, req.Neighborhoods)

	emit(separator, relay.KindInfo)
	emit(fmt.Sprintf("[SCRAPE START] %q in %s", req.SearchQuery, req.City), relay.KindInfo)
	emit(fmt.Sprintf("[CONFIG] Max results: %d | Skip duplicates: %t", maxPlaces, req.SkipDuplicates), relay.KindInfo)
	emit(fmt.Sprintf("[CONFIG] Neighborhoods: %s", neighborhoodsLabel(req.Neighborhoods)), relay.KindInfo)
	emit(separator, relay.KindInfo)

	existing, err := s.loadExisting(ctx, req.SkipDuplicates, emit)
	if err != nil {
		// Matches the reconciliation contract: a failed snapshot load is
		// reported but the run proceeds as if nothing existed.
		emit(fmt.Sprintf("[DB] Error loading existing: %s", err), relay.KindError)
		existing = map[string]Existing{}
	}

	invoker := s.invokers(token)

	input := &apify.ActorInput{
		Language:                  "en",
		LocationQuery:             req.City,
		MaxCrawledPlacesPerSearch: maxPlaces,
		MaxImages:                 1,
		ScrapeContacts:            true,
		ScrapePlaceDetailPage:     true,
		SearchStringsArray:        searchStrings,
	}

	emit(" Starting Google Maps Scraper actor...", relay.KindInfo)
	emit(fmt.Sprintf(" Search queries: %s", strings.Join(searchStrings, ", ")), relay.KindInfo)

	actorRun, err := invoker.StartRun(ctx, s.cfg.ApifyActorID, input)
	if err != nil {
		emit(fmt.Sprintf("[ERROR] %s", err), relay.KindError)
		return zeroResponse(err.Error())
	}
	s.markStatus(ctx, run.ID, scraperun.StatusScraping)

	emit(fmt.Sprintf(" Run started (%s). Streaming logs...", actorRun.ID), relay.KindInfo)

	// Actor log lines are forwarded while we wait for the run to finish.
	streamDone := make(chan struct{})
	streamCtx, stopStream := context.WithCancel(ctx)
	go func() {
		defer close(streamDone)
		if err := invoker.StreamLog(streamCtx, actorRun.ID, func(line string) {
			emit("[ACTOR] "+line, relay.KindInfo)
		}); err != nil {
			s.log.Warn("actor log stream failed", "run_id", actorRun.ID, "error", err)
		}
	}()

	finished, err := invoker.WaitForFinish(ctx, actorRun.ID, s.pollInterval)
	stopStream()
	<-streamDone
	if err != nil {
		emit(fmt.Sprintf("[ERROR] %s", err), relay.KindError)
		return zeroResponse(err.Error())
	}

	if finished.Status != apify.StatusSucceeded {
		// Non-success still yields a dataset; report and keep going.
		emit(fmt.Sprintf(" Actor run ended with status: %s", finished.Status), relay.KindError)
	}

	emit(" Actor run completed. Fetching results...", relay.KindInfo)

	items, err := invoker.ListItems(ctx, actorRun.DefaultDatasetID)
	if err != nil {
		emit(fmt.Sprintf("[ERROR] %s", err), relay.KindError)
		return zeroResponse(err.Error())
	}

	emit(fmt.Sprintf(" Found %d places", len(items)), relay.KindSuccess)

	s.markStatus(ctx, run.ID, scraperun.StatusReconciling)
	now := time.Now().UTC()
	outcome := NewReconciler(existing, req.SkipDuplicates, emit).Reconcile(items, req.SearchQuery, now)

	s.markStatus(ctx, run.ID, scraperun.StatusPersisting)
	persister := NewPersister(s.client, emit)
	persister.InsertAll(ctx, outcome.ToInsert, &outcome.Stats)
	persister.UpdatePhones(ctx, outcome.ToUpdate, now, &outcome.Stats)

	duration := time.Since(startTime).Seconds()
	emit(separator, relay.KindInfo)
	emit(fmt.Sprintf("[SCRAPE COMPLETE] Duration: %.1fs", duration), relay.KindSuccess)
	emit(fmt.Sprintf("[RESULTS] Scraped: %d | Inserted: %d | Updated: %d | Duplicates: %d | Failed: %d",
		outcome.Stats.Scraped, outcome.Stats.Inserted, outcome.Stats.Updated, outcome.Stats.Duplicates, outcome.Stats.Failed), relay.KindSuccess)
	emit(separator, relay.KindInfo)

	return &models.ScrapeResponse{
		Success: true,
		Message: fmt.Sprintf("Scraped %d in %.1fs. Inserted: %d, Updated: %d, Duplicates: %d, Failed: %d",
			outcome.Stats.Scraped, duration, outcome.Stats.Inserted, outcome.Stats.Updated, outcome.Stats.Duplicates, outcome.Stats.Failed),
		Stats:  outcome.Stats,
		Sample: outcome.Sample,
	}
}

// loadExisting snapshots the current dataset as a lowercased-name index.
// Skipped entirely when duplicates are not being deduplicated.
func (s *Service) loadExisting(ctx context.Context, skipDuplicates bool, emit LogFunc) (map[string]Existing, error) {
	existing := map[string]Existing{}
	if !skipDuplicates {
		return existing, nil
	}

	emit("[DB] Loading existing businesses...", relay.KindInfo)
	rows, err := s.client.Business.Query().All(ctx)
	if err != nil {
		return nil, err
	}
	for _, b := range rows {
		if b.Name != "" {
			existing[strings.ToLower(b.Name)] = Existing{ID: b.ID, Phone: b.Phone}
		}
	}
	emit(fmt.Sprintf("[DB] Loaded %d existing businesses", len(rows)), relay.KindInfo)
	return existing, nil
}

func (s *Service) markStatus(ctx context.Context, id int, status scraperun.Status) {
	if err := s.client.ScrapeRun.UpdateOneID(id).SetStatus(status).Exec(ctx); err != nil {
		s.log.Warn("failed to update run status", "id", id, "status", status, "error", err)
	}
}

func (s *Service) finishRun(ctx context.Context, id int, status scraperun.Status, resp *models.ScrapeResponse) {
	err := s.client.ScrapeRun.UpdateOneID(id).
		SetStatus(status).
		SetScraped(resp.Stats.Scraped).
		SetInserted(resp.Stats.Inserted).
		SetUpdated(resp.Stats.Updated).
		SetDuplicates(resp.Stats.Duplicates).
		SetFailed(resp.Stats.Failed).
		SetMessage(resp.Message).
		SetFinishedAt(time.Now().UTC()).
		Exec(ctx)
	if err != nil {
		s.log.Warn("failed to finalize run record", "id", id, "error", err)
	}
}

// GetRun returns the persisted record for a run identifier.
func (s *Service) GetRun(ctx context.Context, runID string) (*ent.ScrapeRun, error) {
	return s.client.ScrapeRun.Query().
		Where(scraperun.RunID(runID)).
		Only(ctx)
}

// ListRuns returns recent runs, newest first.
func (s *Service) ListRuns(ctx context.Context, limit int) ([]*ent.ScrapeRun, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	return s.client.ScrapeRun.Query().
		Order(ent.Desc(scraperun.FieldStartedAt)).
		Limit(limit).
		All(ctx)
}

func buildSearchStrings(query, city string, neighborhoods []string) []string {
	if len(neighborhoods) == 0 {
		return []string{query}
	}
	out := make([]string, 0, len(neighborhoods))
	for _, n := range neighborhoods {
		if n != "" {
			out = append(out, fmt.Sprintf("%s %s %s", query, n, city))
		}
	}
	if len(out) == 0 {
		return []string{query}
	}
	return out
}

func neighborhoodsLabel(neighborhoods []string) string {
	if len(neighborhoods) == 0 {
		return "city-wide"
	}
	return fmt.Sprintf("%d", len(neighborhoods))
}

func zeroResponse(message string) *models.ScrapeResponse {
	return &models.ScrapeResponse{
		Success: false,
		Message: message,
		Stats:   models.ScrapeStats{},
		Sample:  []models.ScrapeSample{},
	}
}
