package entity

import "time"

// Tipos de movimiento de inventario.
const (
	MovementTypeCreate   = "CREATE"
	MovementTypeUpdate   = "UPDATE"
	MovementTypeDelete   = "DELETE"
	MovementTypeStockIn  = "STOCK_IN"
	MovementTypeStockOut = "STOCK_OUT"
)

// ValidMovementType reporta si el tipo es uno de los conocidos.
func ValidMovementType(t string) bool {
	switch t {
	case MovementTypeCreate, MovementTypeUpdate, MovementTypeDelete,
		MovementTypeStockIn, MovementTypeStockOut:
		return true
	}
	return false
}

// InventoryMovement es el registro inmutable de auditoría de un cambio de
// cantidad. Se crea exactamente una vez por mutación de producto, siempre
// dentro de la misma transacción que la mutación que documenta.
type InventoryMovement struct {
	ID              string
	ProductID       string
	UserID          string
	MovementType    string
	QuantityBefore  int
	QuantityAfter   int
	QuantityChanged int // QuantityAfter - QuantityBefore
	Reason          string
	Notes           string
	CreatedAt       time.Time

	// Derivados (JOIN) en lecturas de historial.
	ProductName  string
	CategoryName string
	Username     string
}
