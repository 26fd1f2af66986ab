// Package offers stores the feed of evaluated offers in cache.db so the
// overlay client can show recent verdicts and the heuristics can be tuned
// against real captures. The feed is ephemeral; a maintenance job trims it.
package offers

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/vmihailenco/msgpack/v5"
)

// Repository handles CRUD operations for the evaluated-offer feed.
// Database: cache.db (offers table), records serialized with msgpack.
type Repository struct {
	db  *sql.DB // cache.db
	log zerolog.Logger
}

// NewRepository creates a new offers repository.
func NewRepository(db *sql.DB, log zerolog.Logger) *Repository {
	return &Repository{
		db:  db,
		log: log.With().Str("repository", "offers").Logger(),
	}
}

// Store persists one evaluated offer.
func (r *Repository) Store(rec Record) error {
	blob, err := msgpack.Marshal(rec)
	if err != nil {
		return fmt.Errorf("failed to marshal offer record: %w", err)
	}

	_, err = r.db.Exec(`
		INSERT OR REPLACE INTO offers (uuid, source, verdict, data, created_at)
		VALUES (?, ?, ?, ?, ?)
	`, rec.UUID, rec.Source, string(rec.Result.Verdict), blob, rec.CreatedAt.Unix())
	if err != nil {
		return fmt.Errorf("failed to store offer record: %w", err)
	}
	return nil
}

// Recent returns the latest evaluated offers, newest first.
func (r *Repository) Recent(limit int) ([]Record, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	rows, err := r.db.Query(`
		SELECT data FROM offers ORDER BY created_at DESC, uuid LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query recent offers: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var blob []byte
		if err := rows.Scan(&blob); err != nil {
			return nil, fmt.Errorf("failed to scan offer row: %w", err)
		}
		var rec Record
		if err := msgpack.Unmarshal(blob, &rec); err != nil {
			// A corrupt blob should not take down the whole feed.
			r.log.Warn().Err(err).Msg("Skipping undecodable offer record")
			continue
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// DeleteOlderThan removes feed entries created before the cutoff and returns
// how many were deleted.
func (r *Repository) DeleteOlderThan(age time.Duration) (int64, error) {
	cutoff := time.Now().Add(-age).Unix()
	res, err := r.db.Exec("DELETE FROM offers WHERE created_at < ?", cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to delete old offers: %w", err)
	}
	return res.RowsAffected()
}
