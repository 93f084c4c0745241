package dto

import "time"

// MovementResponse salida de un movimiento de inventario (con joins resueltos).
type MovementResponse struct {
	ID              string    `json:"id"`
	ProductID       string    `json:"product_id"`
	ProductName     string    `json:"product_name,omitempty"`
	CategoryName    string    `json:"category_name,omitempty"`
	Username        string    `json:"username,omitempty"`
	MovementType    string    `json:"movement_type"`
	QuantityBefore  int       `json:"quantity_before"`
	QuantityAfter   int       `json:"quantity_after"`
	QuantityChanged int       `json:"quantity_changed"`
	Reason          string    `json:"reason,omitempty"`
	Notes           string    `json:"notes,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

// MovementListRequest filtros del historial de movimientos.
type MovementListRequest struct {
	ProductID    string `query:"product_id"`
	MovementType string `query:"movement_type"`
	PageRequest
}

// MovementListResponse historial paginado de movimientos.
type MovementListResponse struct {
	Movements  []MovementResponse `json:"movements"`
	Pagination Pagination         `json:"pagination"`
}
