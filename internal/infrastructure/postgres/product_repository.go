package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/inventario-admin/internal/domain"
	"github.com/jhoicas/inventario-admin/internal/domain/entity"
	"github.com/jhoicas/inventario-admin/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL.
// Acepta un Querier para poder operar dentro de una transacción (TxRunner).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos.
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste un nuevo producto. El barcode vacío se almacena como NULL
// para no chocar con el índice único parcial.
func (r *ProductRepo) Create(ctx context.Context, product *entity.Product) error {
	query := `
		INSERT INTO products (id, name, description, category_id, price, quantity, min_stock,
		                      barcode, is_active, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NULLIF($8, ''), $9, $10, $11, $12)`
	_, err := r.q.Exec(ctx, query,
		product.ID, product.Name, product.Description, product.CategoryID,
		product.Price, product.Quantity, product.MinStock, product.Barcode,
		product.IsActive, product.CreatedBy, product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		if isForeignKeyViolation(err) {
			return domain.ErrCategoryNotFound
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto activo por ID, con el nombre de su categoría.
func (r *ProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	query := `
		SELECT p.id, p.name, p.description, p.category_id, p.price, p.quantity, p.min_stock,
		       COALESCE(p.barcode, ''), p.is_active, p.created_by, p.created_at, p.updated_at,
		       COALESCE(c.name, '')
		FROM products p
		LEFT JOIN categories c ON c.id = p.category_id
		WHERE p.id = $1 AND p.is_active = true`
	return scanProduct(r.q.QueryRow(ctx, query, id), "get product")
}

// GetByBarcode busca por código de barras entre productos activos.
func (r *ProductRepo) GetByBarcode(ctx context.Context, barcode string) (*entity.Product, error) {
	query := `
		SELECT p.id, p.name, p.description, p.category_id, p.price, p.quantity, p.min_stock,
		       COALESCE(p.barcode, ''), p.is_active, p.created_by, p.created_at, p.updated_at,
		       COALESCE(c.name, '')
		FROM products p
		LEFT JOIN categories c ON c.id = p.category_id
		WHERE p.barcode = $1 AND p.is_active = true`
	return scanProduct(r.q.QueryRow(ctx, query, barcode), "get product by barcode")
}

// Update actualiza el registro completo del producto.
func (r *ProductRepo) Update(ctx context.Context, product *entity.Product) error {
	query := `
		UPDATE products
		SET name = $2, description = $3, category_id = $4, price = $5, quantity = $6,
		    min_stock = $7, barcode = NULLIF($8, ''), updated_at = $9
		WHERE id = $1 AND is_active = true`
	_, err := r.q.Exec(ctx, query,
		product.ID, product.Name, product.Description, product.CategoryID,
		product.Price, product.Quantity, product.MinStock, product.Barcode,
		product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		if isForeignKeyViolation(err) {
			return domain.ErrCategoryNotFound
		}
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// SoftDelete desactiva el producto (is_active=false); nunca borra la fila.
func (r *ProductRepo) SoftDelete(ctx context.Context, id string, at time.Time) error {
	_, err := r.q.Exec(ctx,
		`UPDATE products SET is_active = false, updated_at = $2 WHERE id = $1`,
		id, at,
	)
	if err != nil {
		return fmt.Errorf("soft delete product: %w", err)
	}
	return nil
}

// List devuelve la página de productos activos que satisfacen el filtro y el
// total de filas. Los predicados se arman dinámicamente con posicionales $n.
func (r *ProductRepo) List(ctx context.Context, filter repository.ProductFilter) ([]*entity.Product, int, error) {
	var conds []string
	var args []any
	conds = append(conds, "p.is_active = true")

	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		n := len(args)
		conds = append(conds, fmt.Sprintf("(p.name ILIKE $%d OR p.description ILIKE $%d)", n, n))
	}
	if filter.CategoryID != "" {
		args = append(args, filter.CategoryID)
		conds = append(conds, fmt.Sprintf("p.category_id = $%d", len(args)))
	}
	if cond := stockStatusPredicate(filter.StockStatus); cond != "" {
		conds = append(conds, cond)
	}
	where := "WHERE " + strings.Join(conds, " AND ")

	var total int
	countQuery := `SELECT COUNT(*) FROM products p ` + where
	if err := r.q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count products: %w", err)
	}

	args = append(args, filter.Limit, filter.Offset)
	query := fmt.Sprintf(`
		SELECT p.id, p.name, p.description, p.category_id, p.price, p.quantity, p.min_stock,
		       COALESCE(p.barcode, ''), p.is_active, p.created_by, p.created_at, p.updated_at,
		       COALESCE(c.name, '')
		FROM products p
		LEFT JOIN categories c ON c.id = p.category_id
		%s
		ORDER BY p.created_at DESC
		LIMIT $%d OFFSET $%d`, where, len(args)-1, len(args))

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	var list []*entity.Product
	for rows.Next() {
		p, err := scanProduct(rows, "scan product")
		if err != nil {
			return nil, 0, err
		}
		list = append(list, p)
	}
	return list, total, rows.Err()
}

// CountByCreator cuenta los productos activos creados por un usuario.
func (r *ProductRepo) CountByCreator(ctx context.Context, userID string) (int, error) {
	var count int
	err := r.q.QueryRow(ctx,
		`SELECT COUNT(*) FROM products WHERE created_by = $1 AND is_active = true`,
		userID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count products by creator: %w", err)
	}
	return count, nil
}

// stockStatusPredicate traduce el estado derivado de stock a su predicado SQL.
func stockStatusPredicate(status string) string {
	switch status {
	case "LOW":
		return "p.quantity <= p.min_stock"
	case "MEDIUM":
		return "p.quantity > p.min_stock AND p.quantity <= p.min_stock * 2"
	case "HIGH":
		return "p.quantity > p.min_stock * 2"
	}
	return ""
}

func scanProduct(row pgx.Row, op string) (*entity.Product, error) {
	var p entity.Product
	err := row.Scan(
		&p.ID, &p.Name, &p.Description, &p.CategoryID, &p.Price, &p.Quantity,
		&p.MinStock, &p.Barcode, &p.IsActive, &p.CreatedBy, &p.CreatedAt,
		&p.UpdatedAt, &p.CategoryName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &p, nil
}
