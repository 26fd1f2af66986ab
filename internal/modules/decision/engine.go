package decision

import (
	"fmt"
	"math"

	"github.com/aristath/copilot/internal/modules/extraction"
)

// minTotalKm floors the total distance to avoid division artifacts when both
// distances are unobservable.
const minTotalKm = 0.1

// Evaluate applies the four threshold gates to an offer. Pure and
// deterministic: the same offer and config always yield the same result,
// including the reason string.
//
// Reject reasons follow a fixed priority, first failing gate wins:
// trip too short, pickup too far, rate too low, net too low.
func Evaluate(offer extraction.CandidateOffer, cfg Config) Result {
	totalKm := math.Max(minTotalKm, math.Max(0, offer.PickupKm)+math.Max(0, offer.TripKm))
	cost := totalKm * cfg.FuelCostPerKmCOP
	net := float64(offer.FareCOP) - cost

	var rate float64
	if offer.Minutes > 0 {
		rate = float64(offer.FareCOP) / float64(offer.Minutes)
	}

	pickupOk := offer.PickupKm <= cfg.MaxPickupKm
	netOk := net >= float64(cfg.MinNetCOP)
	rateOk := rate >= float64(cfg.MinRatePerMinCOP)
	tripOk := offer.TripKm >= cfg.MinTripKm

	if pickupOk && netOk && rateOk && tripOk {
		return Result{
			Verdict:       VerdictAccept,
			Reason:        fmt.Sprintf("Margen %.0f COP · %.0f COP/min · Recogida %.1f km", net, rate, offer.PickupKm),
			NetCOP:        net,
			RatePerMinCOP: rate,
			TotalKm:       totalKm,
		}
	}

	var reason string
	switch {
	case !tripOk:
		reason = fmt.Sprintf("Viaje corto (%.1f km)", offer.TripKm)
	case !pickupOk:
		reason = fmt.Sprintf("Recogida alta (%.1f km)", offer.PickupKm)
	case !rateOk:
		reason = fmt.Sprintf("COP/min bajo (%.0f)", rate)
	case !netOk:
		reason = fmt.Sprintf("Margen bajo (%.0f COP)", net)
	default:
		// Unreachable: all gates passed above.
		reason = "Debajo de umbrales"
	}

	return Result{
		Verdict:       VerdictReject,
		Reason:        reason,
		NetCOP:        net,
		RatePerMinCOP: rate,
		TotalKm:       totalKm,
	}
}
