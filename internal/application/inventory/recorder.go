// Package inventory contiene el contrato transaccional y la construcción de
// los movimientos de auditoría de inventario.
package inventory

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/inventario-admin/internal/domain/entity"
)

// NewMovement construye el registro inmutable que documenta un cambio de
// cantidad. QuantityChanged se deriva siempre de before/after; el caller no
// puede fijarlo de forma inconsistente.
func NewMovement(productID, userID, movementType string, before, after int, reason, notes string) *entity.InventoryMovement {
	return &entity.InventoryMovement{
		ID:              uuid.New().String(),
		ProductID:       productID,
		UserID:          userID,
		MovementType:    movementType,
		QuantityBefore:  before,
		QuantityAfter:   after,
		QuantityChanged: after - before,
		Reason:          reason,
		Notes:           notes,
		CreatedAt:       time.Now(),
	}
}
