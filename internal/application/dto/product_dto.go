package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto. MinStock usa puntero
// para distinguir 0 explícito del default (10).
type CreateProductRequest struct {
	Name        string          `json:"name" validate:"required,min=2,max=255"`
	Description string          `json:"description" validate:"max=2000"`
	CategoryID  string          `json:"category_id" validate:"required"`
	Price       decimal.Decimal `json:"price"`
	Quantity    int             `json:"quantity" validate:"min=0"`
	MinStock    *int            `json:"min_stock" validate:"omitempty,min=0"`
	Barcode     string          `json:"barcode" validate:"max=100"`
}

// UpdateProductRequest entrada para actualizar (reenvío del registro completo;
// no hay updates parciales). MovementType opcional etiqueta el movimiento de
// auditoría cuando cambia la cantidad: UPDATE (default), STOCK_IN o STOCK_OUT.
type UpdateProductRequest struct {
	Name         string          `json:"name" validate:"required,min=2,max=255"`
	Description  string          `json:"description" validate:"max=2000"`
	CategoryID   string          `json:"category_id" validate:"required"`
	Price        decimal.Decimal `json:"price"`
	Quantity     int             `json:"quantity" validate:"min=0"`
	MinStock     *int            `json:"min_stock" validate:"omitempty,min=0"`
	Barcode      string          `json:"barcode" validate:"max=100"`
	MovementType string          `json:"movement_type" validate:"omitempty,oneof=UPDATE STOCK_IN STOCK_OUT"`
	Reason       string          `json:"reason" validate:"max=255"`
	Notes        string          `json:"notes" validate:"max=1000"`
}

// ProductListRequest filtros del listado de productos.
type ProductListRequest struct {
	Search      string `query:"search"`
	CategoryID  string `query:"category_id"`
	StockStatus string `query:"stock_status"`
	PageRequest
}

// ProductResponse salida de un producto, con los campos derivados calculados.
type ProductResponse struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	CategoryID   string          `json:"category_id"`
	CategoryName string          `json:"category_name,omitempty"`
	Price        decimal.Decimal `json:"price"`
	Quantity     int             `json:"quantity"`
	MinStock     int             `json:"min_stock"`
	Barcode      string          `json:"barcode,omitempty"`
	StockStatus  string          `json:"stock_status"`
	TotalValue   decimal.Decimal `json:"total_value"`
	IsActive     bool            `json:"is_active"`
	CreatedBy    string          `json:"created_by"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// ProductListResponse lista paginada de productos.
type ProductListResponse struct {
	Products   []ProductResponse `json:"products"`
	Pagination Pagination        `json:"pagination"`
}
