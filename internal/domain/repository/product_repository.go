package repository

import (
	"context"
	"time"

	"github.com/jhoicas/inventario-admin/internal/domain/entity"
)

// ProductFilter filtros del listado de productos. StockStatus se traduce a un
// predicado sobre quantity/min_stock en la query (derivado, no almacenado).
type ProductFilter struct {
	Search      string // substring case-insensitive sobre name + description
	CategoryID  string
	StockStatus string // LOW | MEDIUM | HIGH
	Limit       int
	Offset      int
}

// ProductRepository define el puerto de persistencia para Product (DIP).
// Las lecturas consideran solo productos activos.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	// GetByBarcode busca por código de barras entre productos activos.
	GetByBarcode(ctx context.Context, barcode string) (*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	SoftDelete(ctx context.Context, id string, at time.Time) error
	// List devuelve la página y el total de filas que satisfacen el filtro.
	List(ctx context.Context, filter ProductFilter) ([]*entity.Product, int, error)
	CountByCreator(ctx context.Context, userID string) (int, error)
}
