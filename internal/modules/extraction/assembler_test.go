package extraction

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractOffer_FullBlob(t *testing.T) {
	offer, hint := ExtractOffer("Nueva solicitud de viaje $14.000 12 min Recogida a 0.8 km Viaje de 4.5 km")
	require.NotNil(t, offer)
	assert.True(t, hint)

	assert.Equal(t, 14000, offer.FareCOP)
	assert.Equal(t, 12, offer.Minutes)
	assert.Equal(t, 0.8, offer.PickupKm)
	assert.Equal(t, 4.5, offer.TripKm)
}

func TestExtractOffer_PartialBlob(t *testing.T) {
	// OCR often yields a fare and nothing else; one positive field is
	// enough to assemble.
	offer, _ := ExtractOffer("$ 13,800")
	require.NotNil(t, offer)
	assert.Equal(t, 13800, offer.FareCOP)
	assert.Equal(t, 0, offer.Minutes)
	assert.Equal(t, 0.0, offer.PickupKm)
	assert.Equal(t, 0.0, offer.TripKm)
}

func TestExtractOffer_NoFields(t *testing.T) {
	offer, hint := ExtractOffer("Nueva solicitud de viaje cerca de ti")
	assert.Nil(t, offer)
	assert.False(t, hint)

	offer, hint = ExtractOffer("")
	assert.Nil(t, offer)
	assert.False(t, hint)
}

func TestExtractOffer_MessyWhitespace(t *testing.T) {
	offer, _ := ExtractOffer("Nueva\nsolicitud\n$6.500\n8 min\nrecogida a 1,2 km")
	require.NotNil(t, offer)
	assert.Equal(t, 6500, offer.FareCOP)
	assert.Equal(t, 8, offer.Minutes)
	assert.Equal(t, 1.2, offer.PickupKm)
	assert.Equal(t, 0.0, offer.TripKm)
}
