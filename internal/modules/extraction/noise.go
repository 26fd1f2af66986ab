package extraction

import "strings"

// noisePhrases are connectivity/status/promo texts the driver app emits that
// are never offers. Matching any of them short-circuits extraction.
var noisePhrases = []string{
	"estás conectado", "estas conectado",
	"espera una solicitud de viaje",
	"has dejado de recibir arrendamientos",
	"haz clic para esperar arrendamientos",
	"tienes un mensaje nuevo",
	"completa arrendamientos",
	"multiplica tus ganancias",
	"promoción", "promo", "recompensa", "bono", "bonificación",
	"didi moto", "informa", "tips", "consejos",
}

// offerHints are words that co-occur with real job offers. They feed the
// looks-like-offer diagnostic, not the assembly decision.
var offerHints = []string{
	"nueva solicitud", "nueva orden", "nueva oferta",
	"solicitud de viaje", "pedido", "viaje",
	"recogida", "pickup",
}

// IsNoise reports whether the blob is promotional or status chatter rather
// than an offer. Case-insensitive; wins over any numeric content the blob
// may also carry.
func IsNoise(text string) bool {
	lower := strings.ToLower(text)
	for _, phrase := range noisePhrases {
		if strings.Contains(lower, phrase) {
			return true
		}
	}
	return false
}

// LooksLikeOffer reports whether the blob mentions offer vocabulary together
// with at least one numeric signal. Diagnostic only: weak blobs are still
// assembled when any field parses.
func LooksLikeOffer(text string) bool {
	lower := strings.ToLower(text)

	hasHint := false
	for _, hint := range offerHints {
		if strings.Contains(lower, hint) {
			hasHint = true
			break
		}
	}

	return hasHint && hasNumericSignal(lower)
}
