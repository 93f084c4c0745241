package repository

import (
	"context"

	"github.com/jhoicas/inventario-admin/internal/domain/entity"
)

// MovementFilter filtros del historial de movimientos.
type MovementFilter struct {
	ProductID    string
	MovementType string
	Limit        int
	Offset       int
}

// InventoryMovementRepository define el puerto de persistencia para movimientos.
// La tabla es append-only: no existen Update ni Delete.
type InventoryMovementRepository interface {
	Create(ctx context.Context, movement *entity.InventoryMovement) error
	// List devuelve la página (con product/category/username resueltos) y el total.
	List(ctx context.Context, filter MovementFilter) ([]*entity.InventoryMovement, int, error)
}
