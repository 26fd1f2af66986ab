package ledger

// DailyStats is the running performance ledger for one calendar day.
// A row is valid only for its own day key; reads on a stale key roll over to
// a fresh zeroed row before any mutation.
type DailyStats struct {
	Day          string  `json:"day"` // Device-local date, "2006-01-02"
	TotalNetCOP  float64 `json:"total_net_cop"`
	TotalFareCOP float64 `json:"total_fare_cop"`
	Accepted     int     `json:"accepted"`
	Rejected     int     `json:"rejected"`
	Considered   int     `json:"considered"`
}

// Progress is the goal-tracking summary rendered on the overlay.
type Progress struct {
	Text    string  `json:"text"`
	Percent float64 `json:"percent"`
}
