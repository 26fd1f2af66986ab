// Package ledger maintains the per-day running ledger of considered,
// accepted and rejected offers and their monetary totals.
package ledger

import (
	"database/sql"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Repository handles daily stats stored in ledger.db, one row per calendar
// day. The load-mutate-persist sequence for every counter update runs under
// a single mutex: producers invoke the pipeline concurrently and unserialized
// increments would lose updates.
//
// Past days are kept as history; the rollover is implicit in the day key.
type Repository struct {
	db  *sql.DB // ledger.db - daily_stats table
	mu  sync.Mutex
	log zerolog.Logger
	now func() time.Time // Injected for rollover tests
}

// NewRepository creates a new ledger repository.
func NewRepository(db *sql.DB, log zerolog.Logger) *Repository {
	return &Repository{
		db:  db,
		log: log.With().Str("repository", "ledger").Logger(),
		now: time.Now,
	}
}

// todayKey returns the device-local date key.
func (r *Repository) todayKey() string {
	return r.now().Format("2006-01-02")
}

// LoadToday returns today's stats, zero-valued if no offer has been counted
// yet today. A stale stored day never leaks out: the day key addresses the
// row, so a new day reads as a fresh ledger.
func (r *Repository) LoadToday() (DailyStats, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.loadDay(r.todayKey())
}

// loadDay reads one day's row. Callers hold the mutex.
func (r *Repository) loadDay(day string) (DailyStats, error) {
	stats := DailyStats{Day: day}
	err := r.db.QueryRow(`
		SELECT total_net, total_fare, accepted, rejected, considered
		FROM daily_stats WHERE day = ?
	`, day).Scan(&stats.TotalNetCOP, &stats.TotalFareCOP, &stats.Accepted, &stats.Rejected, &stats.Considered)
	if err == sql.ErrNoRows {
		return stats, nil
	}
	if err != nil {
		return stats, fmt.Errorf("failed to load daily stats for %s: %w", day, err)
	}
	return stats, nil
}

// apply increments today's row atomically via upsert. Callers hold the mutex.
func (r *Repository) apply(net, fare float64, accepted, rejected, considered int) (DailyStats, error) {
	day := r.todayKey()
	_, err := r.db.Exec(`
		INSERT INTO daily_stats (day, total_net, total_fare, accepted, rejected, considered, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(day) DO UPDATE SET
			total_net  = total_net + excluded.total_net,
			total_fare = total_fare + excluded.total_fare,
			accepted   = accepted + excluded.accepted,
			rejected   = rejected + excluded.rejected,
			considered = considered + excluded.considered,
			updated_at = excluded.updated_at
	`, day, net, fare, accepted, rejected, considered, r.now().Unix())
	if err != nil {
		return DailyStats{Day: day}, fmt.Errorf("failed to update daily stats for %s: %w", day, err)
	}
	return r.loadDay(day)
}

// AddAccepted records an accepted offer's net margin and fare.
func (r *Repository) AddAccepted(netCOP, fareCOP float64) (DailyStats, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.apply(netCOP, fareCOP, 1, 0, 0)
}

// AddRejected records a rejected offer.
func (r *Repository) AddRejected() (DailyStats, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.apply(0, 0, 0, 1, 0)
}

// AddConsidered records that an offer reached the decision engine.
func (r *Repository) AddConsidered() (DailyStats, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.apply(0, 0, 0, 0, 1)
}

// ProgressSummary renders today's progress against the daily goal.
// Percent is clamped to [0, 100]; a non-positive goal reads as 0%.
func (r *Repository) ProgressSummary(goalCOP int) (Progress, error) {
	stats, err := r.LoadToday()
	if err != nil {
		return Progress{}, err
	}

	percent := 0.0
	if goalCOP > 0 {
		percent = math.Min(100, math.Max(0, stats.TotalNetCOP/float64(goalCOP)*100))
	}

	text := fmt.Sprintf("Meta: %.0f/%d COP (%.0f%%) · Viajes: %d/%d A/R",
		stats.TotalNetCOP, goalCOP, percent, stats.Accepted, stats.Rejected)

	return Progress{Text: text, Percent: percent}, nil
}

// History returns the most recent days, newest first.
func (r *Repository) History(limit int) ([]DailyStats, error) {
	if limit <= 0 {
		limit = 30
	}

	rows, err := r.db.Query(`
		SELECT day, total_net, total_fare, accepted, rejected, considered
		FROM daily_stats ORDER BY day DESC LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to load ledger history: %w", err)
	}
	defer rows.Close()

	var history []DailyStats
	for rows.Next() {
		var s DailyStats
		if err := rows.Scan(&s.Day, &s.TotalNetCOP, &s.TotalFareCOP, &s.Accepted, &s.Rejected, &s.Considered); err != nil {
			return nil, fmt.Errorf("failed to scan ledger row: %w", err)
		}
		history = append(history, s)
	}
	return history, rows.Err()
}
