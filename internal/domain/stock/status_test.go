package stock_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/inventario-admin/internal/domain/stock"
)

// La clasificación es derivada: LOW si qty <= min, MEDIUM si min < qty <= 2*min,
// HIGH en el resto. Los bordes exactos son los casos que importan.
func TestStatus_Clasificacion(t *testing.T) {
	cases := []struct {
		name     string
		quantity int
		minStock int
		want     string
	}{
		{"cantidad cero", 0, 10, stock.StatusLow},
		{"bajo el mínimo", 5, 10, stock.StatusLow},
		{"exactamente el mínimo es LOW", 10, 10, stock.StatusLow},
		{"apenas sobre el mínimo", 11, 10, stock.StatusMedium},
		{"exactamente el doble es MEDIUM", 20, 10, stock.StatusMedium},
		{"sobre el doble", 21, 10, stock.StatusHigh},
		{"min_stock cero con stock", 1, 0, stock.StatusHigh},
		{"min_stock cero sin stock", 0, 0, stock.StatusLow},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, stock.Status(tc.quantity, tc.minStock))
		})
	}
}

func TestValidStatus(t *testing.T) {
	assert.True(t, stock.ValidStatus(stock.StatusLow))
	assert.True(t, stock.ValidStatus(stock.StatusMedium))
	assert.True(t, stock.ValidStatus(stock.StatusHigh))
	assert.False(t, stock.ValidStatus("low"))
	assert.False(t, stock.ValidStatus("AGOTADO"))
	assert.False(t, stock.ValidStatus(""))
}
