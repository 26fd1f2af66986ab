package extraction

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Precompiled patterns, tuned against the DiDi driver UI. These are domain
// guesses that held up against observed layouts, not a guaranteed parse.
var (
	// "$138.200", "COP 6.500", "$ 6,500"
	rxPrefixedAmount = regexp.MustCompile(`(?i)(?:cop|\$)\s*([0-9][0-9.,]{3,})`)

	// Bare runs of 5+ digits are assumed to be fares (COP has no cents)
	rxDigitRun = regexp.MustCompile(`[0-9]+`)

	// "8 min", "12mins", "10 minutos"
	rxMinutes = regexp.MustCompile(`(?i)\b([0-9]{1,2})\s*(?:minutos|mins|min)\b`)

	// "3.2 km", "1,8km"
	rxKm = regexp.MustCompile(`(?i)([0-9]+(?:[.,][0-9]+)?)\s*km\b`)

	// Distance mentioned right after the pickup keyword: "recogida a 0.8 km"
	rxPickupKm = regexp.MustCompile(`(?i)recogida[^0-9]{0,12}([0-9]+(?:[.,][0-9]+)?)\s*km`)
)

// ExtractFare returns the fare amount in COP, or 0 when no amount is found.
// All currency-prefixed runs and bare 5+ digit runs are collected and the
// numerically largest candidate wins: the total fare dominates sub-amounts
// like surcharges or tips.
func ExtractFare(text string) int {
	var amounts []float64

	for _, m := range rxPrefixedAmount.FindAllStringSubmatch(text, -1) {
		if v := NormalizeNumber(m[1]); v > 0 {
			amounts = append(amounts, v)
		}
	}

	// rxDigitRun matches are maximal, so a length check is a safe stand-in
	// for word boundaries around the run.
	for _, run := range rxDigitRun.FindAllString(text, -1) {
		if len(run) < 5 {
			continue
		}
		if v, err := strconv.ParseFloat(run, 64); err == nil && v > 0 {
			amounts = append(amounts, v)
		}
	}

	if len(amounts) == 0 {
		return 0
	}

	best := amounts[0]
	for _, v := range amounts[1:] {
		if v > best {
			best = v
		}
	}
	return int(math.Round(best))
}

// ExtractMinutes returns the first duration match in minutes, or 0.
func ExtractMinutes(text string) int {
	m := rxMinutes.FindStringSubmatch(text)
	if m == nil {
		return 0
	}
	v, err := strconv.Atoi(m[1])
	if err != nil {
		return 0
	}
	return v
}

// ExtractDistances returns the pickup and trip distances in km.
//
// With two or more distances in the text the smallest is the pickup leg and
// the largest the trip leg (pickup legs are short by assumption). A single
// distance is the pickup only when it sits within 12 characters of the word
// "recogida"; otherwise it is the trip. No match leaves both at 0.
func ExtractDistances(text string) (pickupKm, tripKm float64) {
	var kms []float64
	for _, m := range rxKm.FindAllStringSubmatch(text, -1) {
		if v := NormalizeNumber(m[1]); v > 0 {
			kms = append(kms, v)
		}
	}

	switch {
	case len(kms) >= 2:
		pickupKm, tripKm = kms[0], kms[0]
		for _, v := range kms[1:] {
			if v < pickupKm {
				pickupKm = v
			}
			if v > tripKm {
				tripKm = v
			}
		}

	case len(kms) == 1:
		if m := rxPickupKm.FindStringSubmatch(text); m != nil {
			pickupKm = NormalizeNumber(m[1])
		} else {
			tripKm = kms[0]
		}
	}

	return pickupKm, tripKm
}

// hasNumericSignal reports whether the text carries any of the numeric
// shapes an offer would have (an amount, a duration or a distance).
func hasNumericSignal(text string) bool {
	if rxPrefixedAmount.MatchString(text) || rxMinutes.MatchString(text) || rxKm.MatchString(text) {
		return true
	}
	for _, run := range rxDigitRun.FindAllString(text, -1) {
		if len(run) >= 5 {
			return true
		}
	}
	return false
}

// CleanText lowercases, flattens newlines and collapses whitespace. Producers
// are expected to hand in flattened text already; this keeps the extractors
// safe when they do not.
func CleanText(text string) string {
	text = strings.ToLower(text)
	text = strings.ReplaceAll(text, "\n", " ")
	text = strings.ReplaceAll(text, "\r", " ")
	return strings.Join(strings.Fields(text), " ")
}
