package extraction

import (
	"strconv"
	"strings"
)

// NormalizeNumber converts a locale-ambiguous numeric token to a canonical
// value. Both "." and "," appear in the wild as thousands separators and as
// decimal points ("$6.500" vs "6,500" vs "1.234,56").
//
// Rules:
//   - Both separators present: the last-occurring one is the decimal point,
//     the other is a thousands separator.
//   - One separator type: a final group of exactly three digits means
//     thousands ("6.500" -> 6500), anything else means decimal ("1,8" -> 1.8).
//
// Returns 0 for anything that still fails to parse.
func NormalizeNumber(raw string) float64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0
	}

	lastDot := strings.LastIndex(raw, ".")
	lastComma := strings.LastIndex(raw, ",")

	switch {
	case lastDot >= 0 && lastComma >= 0:
		if lastDot > lastComma {
			raw = strings.ReplaceAll(raw, ",", "")
		} else {
			raw = strings.ReplaceAll(raw, ".", "")
			raw = strings.Replace(raw, ",", ".", 1)
		}

	case lastDot >= 0:
		raw = collapseSingleSeparator(raw, ".")

	case lastComma >= 0:
		raw = collapseSingleSeparator(raw, ",")
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || v < 0 {
		return 0
	}
	return v
}

// collapseSingleSeparator resolves a token that uses only one separator type.
// A final three-digit group is a thousands grouping to absorb; otherwise the
// separator is a decimal point.
func collapseSingleSeparator(raw, sep string) string {
	parts := strings.Split(raw, sep)
	if len(parts) > 1 && len(parts[len(parts)-1]) == 3 {
		return strings.Join(parts, "")
	}
	return strings.Replace(raw, sep, ".", 1)
}
