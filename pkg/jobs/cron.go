package jobs

import (
	"context"
	"log"
	"time"

	"github.com/ipropixel/leadfinder/config"
	"github.com/ipropixel/leadfinder/ent"
	"github.com/ipropixel/leadfinder/pkg/cache"
	"github.com/ipropixel/leadfinder/pkg/export"
	"github.com/ipropixel/leadfinder/pkg/scrape"
	"github.com/robfig/cron/v3"
)

// CronManager manages scheduled jobs
type CronManager struct {
	cron    *cron.Cron
	monitor *FreshnessMonitor
	exports *export.Service
	cfg     *config.Config
	logger  *log.Logger
}

// NewCronManager creates a new cron manager
func NewCronManager(db *ent.Client, cacheClient *cache.Client, scraper *scrape.Service, exports *export.Service, cfg *config.Config, logger *log.Logger) *CronManager {
	if logger == nil {
		logger = log.Default()
	}

	return &CronManager{
		cron:    cron.New(),
		monitor: NewFreshnessMonitor(db, cacheClient, scraper, logger),
		exports: exports,
		cfg:     cfg,
		logger:  logger,
	}
}

// SetupJobs configures all scheduled jobs
func (cm *CronManager) SetupJobs() error {
	cm.logger.Println("Setting up cron jobs...")

	// Daily at 2 AM: re-scrape the configured standing queries
	_, err := cm.cron.AddFunc("0 2 * * *", func() {
		if len(cm.cfg.ScheduledQueries) == 0 {
			return
		}
		cm.logger.Println("🕐 Running scheduled ingestion job...")

		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Hour)
		defer cancel()

		if err := cm.monitor.TriggerRescrapeBatch(ctx, cm.cfg.ScheduledQueries, cm.cfg.ScheduledCity, 200, 1); err != nil {
			cm.logger.Printf("⚠️ Scheduled ingestion completed with errors: %v", err)
			return
		}

		cm.logger.Println("✅ Scheduled ingestion job completed")
	})

	if err != nil {
		return err
	}

	// Weekly on Sunday at 3 AM: refresh queries whose data went stale
	_, err = cm.cron.AddFunc("0 3 * * 0", func() {
		cm.logger.Println("🕐 Running weekly freshness job...")

		ctx, cancel := context.WithTimeout(context.Background(), 4*time.Hour)
		defer cancel()

		stale, err := cm.monitor.DetectStaleQueries(ctx, 30*24*time.Hour)
		if err != nil {
			cm.logger.Printf("❌ Failed to detect stale queries: %v", err)
			return
		}

		if len(stale) == 0 {
			cm.logger.Println("✅ No stale queries found")
			return
		}

		// Refresh the ten most stale queries, one at a time
		count := 10
		if len(stale) < count {
			count = len(stale)
		}
		queries := make([]string, 0, count)
		for _, sq := range stale[:count] {
			queries = append(queries, sq.SearchQuery)
		}

		cm.logger.Printf("Refreshing %d stale queries...", count)
		if err := cm.monitor.TriggerRescrapeBatch(ctx, queries, cm.cfg.ScheduledCity, 200, 1); err != nil {
			cm.logger.Printf("⚠️ Freshness job completed with errors: %v", err)
			return
		}

		cm.logger.Println("✅ Weekly freshness job completed")
	})

	if err != nil {
		return err
	}

	// Hourly: remove expired export files
	_, err = cm.cron.AddFunc("0 * * * *", func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel()

		removed, err := cm.exports.CleanupExpired(ctx)
		if err != nil {
			cm.logger.Printf("❌ Export cleanup failed: %v", err)
			return
		}
		if removed > 0 {
			cm.logger.Printf("🧹 Removed %d expired exports", removed)
		}
	})

	if err != nil {
		return err
	}

	cm.logger.Println("✅ Cron jobs configured successfully")
	cm.logger.Println("  - Daily at 2 AM: Scheduled ingestion")
	cm.logger.Println("  - Weekly on Sunday at 3 AM: Refresh stale queries")
	cm.logger.Println("  - Hourly: Export cleanup")

	return nil
}

// Start starts the cron scheduler
func (cm *CronManager) Start() {
	cm.logger.Println("🚀 Starting cron scheduler...")
	cm.cron.Start()
}

// Stop stops the cron scheduler
func (cm *CronManager) Stop() {
	cm.logger.Println("🛑 Stopping cron scheduler...")
	cm.cron.Stop()
}

// GetMonitor returns the freshness monitor (for manual triggers)
func (cm *CronManager) GetMonitor() *FreshnessMonitor {
	return cm.monitor
}
