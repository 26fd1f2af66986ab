// Package settings provides the repository for runtime-configurable
// application settings. Settings are key-value pairs stored in config.db
// (decision thresholds, the daily goal, overlay alert preferences) and can
// be changed through the API without restarting the service.
package settings

import (
	"database/sql"
	"fmt"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/aristath/copilot/internal/modules/decision"
)

// Repository handles settings database operations.
//
// Settings are stored as strings and converted to appropriate types when
// retrieved. Unset keys fall back to SettingDefaults, so a fresh database
// behaves identically to one seeded with every default.
type Repository struct {
	db  *sql.DB // config.db - settings table
	log zerolog.Logger
}

// NewRepository creates a new settings repository.
//
// Parameters:
//   - db: Database connection to config.db
//   - log: Structured logger
//
// Returns:
//   - *Repository: Initialized repository instance
func NewRepository(db *sql.DB, log zerolog.Logger) *Repository {
	return &Repository{
		db:  db,
		log: log.With().Str("repository", "settings").Logger(),
	}
}

// Get retrieves a setting value by key.
// Returns nil if the setting doesn't exist (not an error).
//
// Parameters:
//   - key: Setting key (e.g., "max_pickup_km")
//
// Returns:
//   - *string: Setting value if found, nil if not found
//   - error: Error if query fails
func (r *Repository) Get(key string) (*string, error) {
	var value string
	err := r.db.QueryRow("SELECT value FROM settings WHERE key = ?", key).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get setting %s: %w", key, err)
	}
	return &value, nil
}

// Set sets a setting value.
// Uses an upsert so insert and update are a single operation.
//
// Parameters:
//   - key: Setting key
//   - value: Setting value (stored as string)
//
// Returns:
//   - error: Error if database operation fails
func (r *Repository) Set(key, value string) error {
	now := time.Now().Unix()

	description := SettingDescriptions[key]
	_, err := r.db.Exec(`
		INSERT INTO settings (key, value, description, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET
			value = excluded.value,
			description = excluded.description,
			updated_at = excluded.updated_at
	`, key, value, description, now)
	if err != nil {
		return fmt.Errorf("failed to set setting %s: %w", key, err)
	}
	return nil
}

// GetAll retrieves all settings as a map, with defaults filled in for keys
// that were never written.
//
// Returns:
//   - map[string]string: Map of setting keys to values
//   - error: Error if query fails
func (r *Repository) GetAll() (map[string]string, error) {
	result := make(map[string]string, len(SettingDefaults))
	for key, def := range SettingDefaults {
		result[key] = fmt.Sprintf("%v", def)
	}

	rows, err := r.db.Query("SELECT key, value FROM settings")
	if err != nil {
		return nil, fmt.Errorf("failed to get all settings: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			r.log.Warn().Err(err).Msg("Failed to scan setting row")
			continue
		}
		result[key] = value
	}
	return result, rows.Err()
}

// GetFloat retrieves a setting as float64, falling back to the default map
// and then to the provided fallback.
func (r *Repository) GetFloat(key string, fallback float64) float64 {
	value, err := r.Get(key)
	if err != nil {
		r.log.Warn().Err(err).Str("key", key).Msg("Setting lookup failed, using fallback")
		return fallback
	}
	if value == nil {
		if def, ok := SettingDefaults[key].(float64); ok {
			return def
		}
		return fallback
	}
	v, err := strconv.ParseFloat(*value, 64)
	if err != nil {
		r.log.Warn().Str("key", key).Str("value", *value).Msg("Setting is not a number, using fallback")
		return fallback
	}
	return v
}

// GetInt retrieves a setting as int via the float path (all numeric settings
// are stored in a uniform representation).
func (r *Repository) GetInt(key string, fallback int) int {
	return int(r.GetFloat(key, float64(fallback)))
}

// GetBool retrieves a setting as bool; any non-zero numeric value is true.
func (r *Repository) GetBool(key string, fallback bool) bool {
	f := 0.0
	if fallback {
		f = 1.0
	}
	return r.GetFloat(key, f) != 0
}

// DecisionConfig loads an immutable snapshot of the decision thresholds.
// Called once per evaluation; never cached across evaluations so threshold
// changes apply to the next offer immediately.
func (r *Repository) DecisionConfig() decision.Config {
	def := decision.DefaultConfig()
	return decision.Config{
		FuelCostPerKmCOP: r.GetFloat("fuel_cost_per_km_cop", def.FuelCostPerKmCOP),
		MaxPickupKm:      r.GetFloat("max_pickup_km", def.MaxPickupKm),
		MinNetCOP:        r.GetInt("min_net_cop", def.MinNetCOP),
		MinRatePerMinCOP: r.GetInt("min_rate_per_min_cop", def.MinRatePerMinCOP),
		MinTripKm:        r.GetFloat("min_trip_km", def.MinTripKm),
	}
}

// DailyGoal returns the configured daily net earnings goal in COP.
func (r *Repository) DailyGoal() int {
	return r.GetInt("daily_goal_cop", 120000)
}

// AlertPrefs returns the overlay alert preferences.
func (r *Repository) AlertPrefs() AlertPrefs {
	return AlertPrefs{
		Vibrate:      r.GetBool("alert_vibrate", true),
		Sound:        r.GetBool("alert_sound", false),
		AutoHideSecs: r.GetInt("overlay_autohide_secs", 8),
	}
}
