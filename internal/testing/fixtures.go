package testing

// Realistic text blobs as the producers hand them in, used across the
// extraction and pipeline tests. Captured shapes, not verbatim captures.
const (
	// GoodOfferText passes every default threshold:
	// fare 14000, 12 min, pickup 0.8 km, trip 4.5 km.
	GoodOfferText = "Nueva solicitud de viaje $14.000 12 min Recogida a 0.8 km Viaje de 4.5 km"

	// ShortTripOfferText fails the minimum trip gate under defaults.
	ShortTripOfferText = "Nueva solicitud $5.000 10 min Recogida a 0.5 km Viaje de 0.5 km"

	// NoiseText is connectivity chatter the classifier must drop.
	NoiseText = "Estás conectado. Espera una solicitud de viaje"

	// PromoNoiseText carries numbers but is still promotional noise.
	PromoNoiseText = "Promoción: completa 10 viajes y gana un bono de $20.000"

	// NoSignalText mentions offer vocabulary without any parseable field.
	NoSignalText = "Nueva solicitud de viaje cerca de ti"
)
