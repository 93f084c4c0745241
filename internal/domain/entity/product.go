package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// DefaultMinStock stock mínimo cuando el cliente no lo envía.
const DefaultMinStock = 10

// Product representa un producto del inventario. Quantity y MinStock son
// enteros no negativos; StockStatus y TotalValue se derivan, nunca se almacenan.
type Product struct {
	ID          string
	Name        string
	Description string
	CategoryID  string
	Price       decimal.Decimal // precio de venta, >= 0
	Quantity    int
	MinStock    int
	Barcode     string // opcional; único entre productos activos
	IsActive    bool
	CreatedBy   string // FK -> users.id
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// CategoryName es derivado (JOIN con categories) en lecturas.
	CategoryName string
}

// TotalValue devuelve price × quantity.
func (p *Product) TotalValue() decimal.Decimal {
	return p.Price.Mul(decimal.NewFromInt(int64(p.Quantity)))
}
