package extraction

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractFare(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected int
	}{
		{"dollar prefix dot thousands", "nueva solicitud $14.000", 14000},
		{"cop prefix", "cop 6.500 por este viaje", 6500},
		{"spaced prefix comma thousands", "$ 6,500", 6500},
		{"bare five digit run", "tarifa 13800 al completar", 13800},
		{"bare four digit run ignored", "tarifa 9800", 0},
		{"largest candidate wins", "$8.200 de tarifa base, total $14.500 con bono 20000", 20000},
		{"no amount", "nueva solicitud de viaje", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExtractFare(CleanText(tt.text)))
		})
	}
}

func TestExtractMinutes(t *testing.T) {
	assert.Equal(t, 12, ExtractMinutes("12 min de viaje"))
	assert.Equal(t, 8, ExtractMinutes("llega en 8min"))
	assert.Equal(t, 10, ExtractMinutes("10 minutos"))
	assert.Equal(t, 5, ExtractMinutes("5 mins"))
	assert.Equal(t, 0, ExtractMinutes("sin duracion"))

	// First match wins when several durations appear.
	assert.Equal(t, 3, ExtractMinutes("recogida en 3 min, viaje de 15 min"))
}

func TestExtractDistances_TwoValues(t *testing.T) {
	pickup, trip := ExtractDistances("recogida a 1.2 km, viaje de 4.5 km")
	assert.Equal(t, 1.2, pickup)
	assert.Equal(t, 4.5, trip)

	// Order in the text does not matter, magnitude does.
	pickup, trip = ExtractDistances("5.1 km de viaje tras 0.6 km de recogida")
	assert.Equal(t, 0.6, pickup)
	assert.Equal(t, 5.1, trip)
}

func TestExtractDistances_SingleValue(t *testing.T) {
	// Anchored to the pickup keyword: it is the pickup leg.
	pickup, trip := ExtractDistances("recogida a 0.8 km")
	assert.Equal(t, 0.8, pickup)
	assert.Equal(t, 0.0, trip)

	// Unanchored: assume it is the trip leg.
	pickup, trip = ExtractDistances("viaje de 3,2 km")
	assert.Equal(t, 0.0, pickup)
	assert.Equal(t, 3.2, trip)
}

func TestExtractDistances_NoValues(t *testing.T) {
	pickup, trip := ExtractDistances("nueva solicitud de viaje")
	assert.Equal(t, 0.0, pickup)
	assert.Equal(t, 0.0, trip)
}

func TestCleanText(t *testing.T) {
	assert.Equal(t, "nueva solicitud $14.000", CleanText("  Nueva   Solicitud\n$14.000\r\n"))
	assert.Equal(t, "", CleanText("   \n\r  "))
}
