package extraction

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsNoise(t *testing.T) {
	assert.True(t, IsNoise("Estás conectado"))
	assert.True(t, IsNoise("espera una solicitud de viaje"))
	assert.True(t, IsNoise("Multiplica tus ganancias este fin de semana"))

	// Promos are noise even when they carry amounts.
	assert.True(t, IsNoise("Promoción: gana un bono de $20.000"))

	assert.False(t, IsNoise("Nueva solicitud $14.000 12 min"))
	assert.False(t, IsNoise(""))
}

func TestLooksLikeOffer(t *testing.T) {
	// Vocabulary plus a numeric signal.
	assert.True(t, LooksLikeOffer("nueva solicitud $14.000"))
	assert.True(t, LooksLikeOffer("recogida a 0.8 km"))
	assert.True(t, LooksLikeOffer("pedido listo en 5 min"))

	// Vocabulary alone is not enough.
	assert.False(t, LooksLikeOffer("nueva solicitud de viaje cerca de ti"))

	// Numbers without vocabulary are not enough either.
	assert.False(t, LooksLikeOffer("codigo 48213"))
}
