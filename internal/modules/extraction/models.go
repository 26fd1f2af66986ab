// Package extraction turns flattened UI text from the driver app into
// structured ride-offer candidates. It is a best-effort heuristic classifier:
// every function is total, unparseable input degrades to zero-valued fields
// and never to an error.
package extraction

// CandidateOffer is a ride offer assembled from one text blob.
// All fields are non-negative; zero means the field was not observable.
// At least one field is strictly positive, otherwise the assembler
// returns no offer at all.
type CandidateOffer struct {
	FareCOP  int     `json:"fare_cop"`  // Total fare in COP (minor-unit-free)
	Minutes  int     `json:"minutes"`   // Estimated trip duration
	PickupKm float64 `json:"pickup_km"` // Driver position -> pickup point
	TripKm   float64 `json:"trip_km"`   // Passenger-carrying leg
}

// isZero reports whether no field carries a signal.
func (o CandidateOffer) isZero() bool {
	return o.FareCOP <= 0 && o.Minutes <= 0 && o.PickupKm <= 0 && o.TripKm <= 0
}
