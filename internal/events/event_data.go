package events

// EventData is the interface that all event data types must implement
// This allows for type-safe event data while maintaining flexibility
type EventData interface {
	// EventType returns the event type this data is associated with
	EventType() EventType
}

// OfferEvaluatedData contains data for OfferEvaluated events
type OfferEvaluatedData struct {
	UUID          string  `json:"uuid"`
	Source        string  `json:"source"`
	Verdict       string  `json:"verdict"`
	Reason        string  `json:"reason"`
	FareCOP       int     `json:"fare_cop"`
	Minutes       int     `json:"minutes"`
	PickupKm      float64 `json:"pickup_km"`
	TripKm        float64 `json:"trip_km"`
	NetCOP        float64 `json:"net_cop"`
	RatePerMinCOP float64 `json:"rate_per_min_cop"`
}

// EventType returns the event type for OfferEvaluatedData
func (d *OfferEvaluatedData) EventType() EventType {
	return OfferEvaluated
}

// LedgerUpdatedData contains data for LedgerUpdated events
type LedgerUpdatedData struct {
	Day          string  `json:"day"`
	TotalNetCOP  float64 `json:"total_net_cop"`
	TotalFareCOP float64 `json:"total_fare_cop"`
	Accepted     int     `json:"accepted"`
	Rejected     int     `json:"rejected"`
	Considered   int     `json:"considered"`
}

// EventType returns the event type for LedgerUpdatedData
func (d *LedgerUpdatedData) EventType() EventType {
	return LedgerUpdated
}

// LedgerRolledOverData contains data for LedgerRolledOver events
type LedgerRolledOverData struct {
	Day string `json:"day"`
}

// EventType returns the event type for LedgerRolledOverData
func (d *LedgerRolledOverData) EventType() EventType {
	return LedgerRolledOver
}
