package database

// schemas maps database names to their bootstrap DDL.
// All statements must be idempotent (IF NOT EXISTS) since Migrate runs on
// every startup.
var schemas = map[string]string{
	// config.db: key-value settings (decision thresholds, daily goal, alerts)
	"config": `
CREATE TABLE IF NOT EXISTS settings (
    key         TEXT PRIMARY KEY,
    value       TEXT NOT NULL,
    description TEXT,
    updated_at  INTEGER NOT NULL
);`,

	// ledger.db: one row per calendar day of accept/reject counters and totals
	"ledger": `
CREATE TABLE IF NOT EXISTS daily_stats (
    day         TEXT PRIMARY KEY,
    total_net   REAL NOT NULL DEFAULT 0,
    total_fare  REAL NOT NULL DEFAULT 0,
    accepted    INTEGER NOT NULL DEFAULT 0,
    rejected    INTEGER NOT NULL DEFAULT 0,
    considered  INTEGER NOT NULL DEFAULT 0,
    updated_at  INTEGER NOT NULL
);`,

	// cache.db: evaluated-offer feed, msgpack blobs keyed by uuid
	"cache": `
CREATE TABLE IF NOT EXISTS offers (
    uuid       TEXT PRIMARY KEY,
    source     TEXT NOT NULL,
    verdict    TEXT NOT NULL,
    data       BLOB NOT NULL,
    created_at INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_offers_created_at ON offers(created_at);`,
}
