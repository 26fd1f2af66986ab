package scheduler

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/aristath/copilot/internal/events"
	"github.com/aristath/copilot/internal/modules/dedup"
	"github.com/aristath/copilot/internal/modules/ledger"
	"github.com/aristath/copilot/internal/modules/offers"
)

// RolloverJob touches today's ledger at midnight so the day rolls over even
// when no offer arrives, and tells the overlay about the fresh day.
type RolloverJob struct {
	ledger *ledger.Repository
	bus    *events.Bus
	log    zerolog.Logger
}

// NewRolloverJob creates the midnight rollover job.
func NewRolloverJob(ledgerRepo *ledger.Repository, bus *events.Bus, log zerolog.Logger) *RolloverJob {
	return &RolloverJob{
		ledger: ledgerRepo,
		bus:    bus,
		log:    log.With().Str("job", "ledger_rollover").Logger(),
	}
}

// Name returns the job name.
func (j *RolloverJob) Name() string { return "ledger_rollover" }

// Run loads today's (fresh) ledger and publishes the rollover.
func (j *RolloverJob) Run() error {
	stats, err := j.ledger.LoadToday()
	if err != nil {
		return fmt.Errorf("rollover touch failed: %w", err)
	}

	j.log.Info().Str("day", stats.Day).Msg("Ledger rolled over")
	j.bus.Publish(&events.LedgerRolledOverData{Day: stats.Day})
	return nil
}

// DedupPruneJob drops seen-set entries older than maxAge.
type DedupPruneJob struct {
	store  *dedup.Store
	maxAge time.Duration
	log    zerolog.Logger
}

// NewDedupPruneJob creates the hourly dedup prune job.
func NewDedupPruneJob(store *dedup.Store, maxAge time.Duration, log zerolog.Logger) *DedupPruneJob {
	return &DedupPruneJob{
		store:  store,
		maxAge: maxAge,
		log:    log.With().Str("job", "dedup_prune").Logger(),
	}
}

// Name returns the job name.
func (j *DedupPruneJob) Name() string { return "dedup_prune" }

// Run prunes stale identities.
func (j *DedupPruneJob) Run() error {
	if removed := j.store.Prune(j.maxAge); removed > 0 {
		j.log.Info().Int("removed", removed).Msg("Pruned stale identities")
	}
	return nil
}

// OffersCleanupJob trims the evaluated-offer feed.
type OffersCleanupJob struct {
	repo      *offers.Repository
	retention time.Duration
	log       zerolog.Logger
}

// NewOffersCleanupJob creates the daily feed cleanup job.
func NewOffersCleanupJob(repo *offers.Repository, retention time.Duration, log zerolog.Logger) *OffersCleanupJob {
	return &OffersCleanupJob{
		repo:      repo,
		retention: retention,
		log:       log.With().Str("job", "offers_cleanup").Logger(),
	}
}

// Name returns the job name.
func (j *OffersCleanupJob) Name() string { return "offers_cleanup" }

// Run deletes feed entries older than the retention window.
func (j *OffersCleanupJob) Run() error {
	deleted, err := j.repo.DeleteOlderThan(j.retention)
	if err != nil {
		return err
	}
	if deleted > 0 {
		j.log.Info().Int64("deleted", deleted).Msg("Cleaned up old offer records")
	}
	return nil
}
