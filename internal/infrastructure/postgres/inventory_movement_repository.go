package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/inventario-admin/internal/domain/entity"
	"github.com/jhoicas/inventario-admin/internal/domain/repository"
)

var _ repository.InventoryMovementRepository = (*InventoryMovementRepo)(nil)

// InventoryMovementRepo implementación del puerto de movimientos sobre
// PostgreSQL. Acepta un Querier para operar dentro de la misma transacción
// que la mutación del producto.
type InventoryMovementRepo struct {
	q Querier
}

// NewInventoryMovementRepository construye el adaptador de persistencia de movimientos.
func NewInventoryMovementRepository(q Querier) *InventoryMovementRepo {
	return &InventoryMovementRepo{q: q}
}

// Create inserta un movimiento. La tabla es append-only.
func (r *InventoryMovementRepo) Create(ctx context.Context, movement *entity.InventoryMovement) error {
	query := `
		INSERT INTO inventory_movements (id, product_id, user_id, movement_type,
		                                 quantity_before, quantity_after, quantity_changed,
		                                 reason, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(ctx, query,
		movement.ID, movement.ProductID, movement.UserID, movement.MovementType,
		movement.QuantityBefore, movement.QuantityAfter, movement.QuantityChanged,
		movement.Reason, movement.Notes, movement.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert inventory movement: %w", err)
	}
	return nil
}

// List devuelve la página del historial (más recientes primero) con los
// nombres de producto, categoría y usuario resueltos, más el total.
func (r *InventoryMovementRepo) List(ctx context.Context, filter repository.MovementFilter) ([]*entity.InventoryMovement, int, error) {
	var conds []string
	var args []any

	if filter.ProductID != "" {
		args = append(args, filter.ProductID)
		conds = append(conds, fmt.Sprintf("m.product_id = $%d", len(args)))
	}
	if filter.MovementType != "" {
		args = append(args, filter.MovementType)
		conds = append(conds, fmt.Sprintf("m.movement_type = $%d", len(args)))
	}
	where := ""
	if len(conds) > 0 {
		where = "WHERE " + strings.Join(conds, " AND ")
	}

	var total int
	countQuery := `SELECT COUNT(*) FROM inventory_movements m ` + where
	if err := r.q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count inventory movements: %w", err)
	}

	args = append(args, filter.Limit, filter.Offset)
	query := fmt.Sprintf(`
		SELECT m.id, m.product_id, m.user_id, m.movement_type,
		       m.quantity_before, m.quantity_after, m.quantity_changed,
		       m.reason, m.notes, m.created_at,
		       COALESCE(p.name, ''), COALESCE(c.name, ''), COALESCE(u.username, '')
		FROM inventory_movements m
		LEFT JOIN products p ON p.id = m.product_id
		LEFT JOIN categories c ON c.id = p.category_id
		LEFT JOIN users u ON u.id = m.user_id
		%s
		ORDER BY m.created_at DESC
		LIMIT $%d OFFSET $%d`, where, len(args)-1, len(args))

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list inventory movements: %w", err)
	}
	defer rows.Close()

	var list []*entity.InventoryMovement
	for rows.Next() {
		var m entity.InventoryMovement
		if err := rows.Scan(
			&m.ID, &m.ProductID, &m.UserID, &m.MovementType,
			&m.QuantityBefore, &m.QuantityAfter, &m.QuantityChanged,
			&m.Reason, &m.Notes, &m.CreatedAt,
			&m.ProductName, &m.CategoryName, &m.Username,
		); err != nil {
			return nil, 0, fmt.Errorf("scan inventory movement: %w", err)
		}
		list = append(list, &m)
	}
	return list, total, rows.Err()
}
