package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/inventario-admin/internal/domain/entity"
	"github.com/jhoicas/inventario-admin/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo consultas agregadas de solo lectura sobre PostgreSQL. Todas las
// agregaciones consideran únicamente filas activas.
type ReportRepo struct {
	q Querier
}

// NewReportRepository construye el adaptador de reportes.
func NewReportRepository(q Querier) *ReportRepo {
	return &ReportRepo{q: q}
}

// DashboardStats totales generales del dashboard en una sola consulta.
func (r *ReportRepo) DashboardStats(ctx context.Context) (*repository.DashboardStats, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM products WHERE is_active = true),
			(SELECT COUNT(*) FROM categories WHERE is_active = true),
			(SELECT COUNT(*) FROM users WHERE is_active = true),
			(SELECT COALESCE(SUM(price * quantity), 0) FROM products WHERE is_active = true),
			(SELECT COUNT(*) FROM products WHERE is_active = true AND quantity <= min_stock)`
	var s repository.DashboardStats
	err := r.q.QueryRow(ctx, query).Scan(
		&s.TotalProducts, &s.TotalCategories, &s.TotalUsers,
		&s.TotalInventoryValue, &s.LowStockCount,
	)
	if err != nil {
		return nil, fmt.Errorf("dashboard stats: %w", err)
	}
	return &s, nil
}

// LowStockProducts productos en o bajo el stock mínimo, ratio ascendente.
func (r *ReportRepo) LowStockProducts(ctx context.Context, limit int) ([]repository.LowStockProduct, error) {
	query := `
		SELECT p.id, p.name, p.quantity, p.min_stock, COALESCE(c.name, ''),
		       CASE WHEN p.min_stock > 0 THEN p.quantity::float / p.min_stock ELSE 0 END AS stock_ratio
		FROM products p
		LEFT JOIN categories c ON c.id = p.category_id
		WHERE p.is_active = true AND p.quantity <= p.min_stock
		ORDER BY stock_ratio ASC
		LIMIT $1`
	rows, err := r.q.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("low stock products: %w", err)
	}
	defer rows.Close()
	var list []repository.LowStockProduct
	for rows.Next() {
		var p repository.LowStockProduct
		if err := rows.Scan(&p.ID, &p.Name, &p.Quantity, &p.MinStock, &p.CategoryName, &p.StockRatio); err != nil {
			return nil, fmt.Errorf("scan low stock product: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// MostValuableProducts productos ordenados por valor total (price × quantity).
func (r *ReportRepo) MostValuableProducts(ctx context.Context, limit int) ([]repository.ValuableProduct, error) {
	query := `
		SELECT p.id, p.name, p.price, p.quantity, p.price * p.quantity AS total_value,
		       COALESCE(c.name, '')
		FROM products p
		LEFT JOIN categories c ON c.id = p.category_id
		WHERE p.is_active = true
		ORDER BY total_value DESC
		LIMIT $1`
	rows, err := r.q.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("most valuable products: %w", err)
	}
	defer rows.Close()
	var list []repository.ValuableProduct
	for rows.Next() {
		var p repository.ValuableProduct
		if err := rows.Scan(&p.ID, &p.Name, &p.Price, &p.Quantity, &p.TotalValue, &p.CategoryName); err != nil {
			return nil, fmt.Errorf("scan valuable product: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// CategoryDistribution agregados de productos activos por categoría activa.
func (r *ReportRepo) CategoryDistribution(ctx context.Context) ([]repository.CategoryDistribution, error) {
	query := `
		SELECT c.name, COUNT(p.id), COALESCE(SUM(p.quantity), 0),
		       COALESCE(SUM(p.price * p.quantity), 0)
		FROM categories c
		LEFT JOIN products p ON p.category_id = c.id AND p.is_active = true
		WHERE c.is_active = true
		GROUP BY c.id, c.name
		ORDER BY COUNT(p.id) DESC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("category distribution: %w", err)
	}
	defer rows.Close()
	var list []repository.CategoryDistribution
	for rows.Next() {
		var d repository.CategoryDistribution
		if err := rows.Scan(&d.Name, &d.ProductCount, &d.TotalQuantity, &d.TotalValue); err != nil {
			return nil, fmt.Errorf("scan category distribution: %w", err)
		}
		list = append(list, d)
	}
	return list, rows.Err()
}

// RecentMovements últimos movimientos con nombres resueltos.
func (r *ReportRepo) RecentMovements(ctx context.Context, limit int) ([]*entity.InventoryMovement, error) {
	query := `
		SELECT m.id, m.product_id, m.user_id, m.movement_type,
		       m.quantity_before, m.quantity_after, m.quantity_changed,
		       m.reason, m.notes, m.created_at,
		       COALESCE(p.name, ''), COALESCE(c.name, ''), COALESCE(u.username, '')
		FROM inventory_movements m
		LEFT JOIN products p ON p.id = m.product_id
		LEFT JOIN categories c ON c.id = p.category_id
		LEFT JOIN users u ON u.id = m.user_id
		ORDER BY m.created_at DESC
		LIMIT $1`
	rows, err := r.q.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("recent movements: %w", err)
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
			return nil, fmt.Errorf("scan recent movement: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}

// InventoryListing listado completo filtrado, ordenado por nombre.
func (r *ReportRepo) InventoryListing(ctx context.Context, categoryID, stockStatus string) ([]*entity.Product, error) {
	query := `
		SELECT p.id, p.name, p.description, p.category_id, p.price, p.quantity, p.min_stock,
		       COALESCE(p.barcode, ''), p.is_active, p.created_by, p.created_at, p.updated_at,
		       COALESCE(c.name, '')
		FROM products p
		LEFT JOIN categories c ON c.id = p.category_id
		WHERE p.is_active = true`
	var args []any
	if categoryID != "" {
		args = append(args, categoryID)
		query += fmt.Sprintf(" AND p.category_id = $%d", len(args))
	}
	if cond := stockStatusPredicate(stockStatus); cond != "" {
		query += " AND " + cond
	}
	query += " ORDER BY p.name ASC"

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("inventory listing: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		p, err := scanProduct(rows, "scan inventory listing")
		if err != nil {
			return nil, err
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// QuickStats agregados rápidos sobre productos activos.
func (r *ReportRepo) QuickStats(ctx context.Context) (*repository.QuickStats, error) {
	query := `
		SELECT COUNT(*), COALESCE(SUM(quantity), 0),
		       COALESCE(SUM(price * quantity), 0), COALESCE(AVG(price), 0),
		       COUNT(*) FILTER (WHERE quantity <= min_stock)
		FROM products
		WHERE is_active = true`
	var s repository.QuickStats
	err := r.q.QueryRow(ctx, query).Scan(
		&s.TotalProducts, &s.TotalQuantity, &s.TotalInventoryValue,
		&s.AveragePrice, &s.LowStockCount,
	)
	if err != nil {
		return nil, fmt.Errorf("quick stats: %w", err)
	}
	return &s, nil
}
