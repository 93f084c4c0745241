// Package stock clasifica la cantidad de un producto contra su stock mínimo.
package stock

// Estados posibles del stock de un producto.
const (
	StatusLow    = "LOW"
	StatusMedium = "MEDIUM"
	StatusHigh   = "HIGH"
)

// Status clasifica quantity contra minStock:
//
//	LOW    ⇔ quantity <= minStock
//	MEDIUM ⇔ minStock < quantity <= 2×minStock
//	HIGH   ⇔ quantity > 2×minStock
//
// Bordes: quantity == minStock → LOW; quantity == 2×minStock → MEDIUM.
func Status(quantity, minStock int) string {
	switch {
	case quantity <= minStock:
		return StatusLow
	case quantity <= 2*minStock:
		return StatusMedium
	default:
		return StatusHigh
	}
}

// ValidStatus reporta si s es un filtro de stock válido.
func ValidStatus(s string) bool {
	return s == StatusLow || s == StatusMedium || s == StatusHigh
}
