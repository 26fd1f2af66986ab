// Package decision evaluates assembled ride offers against configurable
// economic thresholds and produces an accept/reject verdict with a
// deterministic reason.
package decision

// Verdict is the binary recommendation shown to the driver.
type Verdict string

const (
	VerdictAccept Verdict = "accept"
	VerdictReject Verdict = "reject"
)

// Config holds the decision thresholds. Read as an immutable snapshot at
// evaluation time; the settings module owns the persisted values.
type Config struct {
	FuelCostPerKmCOP float64 `json:"fuel_cost_per_km_cop"`
	MaxPickupKm      float64 `json:"max_pickup_km"`
	MinNetCOP        int     `json:"min_net_cop"`
	MinRatePerMinCOP int     `json:"min_rate_per_min_cop"`
	MinTripKm        float64 `json:"min_trip_km"`
}

// DefaultConfig returns the stock thresholds for Bogotá driving economics.
func DefaultConfig() Config {
	return Config{
		FuelCostPerKmCOP: 500,
		MaxPickupKm:      2.0,
		MinNetCOP:        3000,
		MinRatePerMinCOP: 400,
		MinTripKm:        1.0,
	}
}

// Result is the outcome of evaluating one offer. Immutable; consumed by the
// overlay renderer and the daily ledger.
type Result struct {
	Verdict       Verdict `json:"verdict"`
	Reason        string  `json:"reason"`
	NetCOP        float64 `json:"net_cop"`          // Fare minus estimated fuel cost
	RatePerMinCOP float64 `json:"rate_per_min_cop"` // Fare / duration throughput proxy
	TotalKm       float64 `json:"total_km"`         // Pickup + trip, floored at 0.1
}
