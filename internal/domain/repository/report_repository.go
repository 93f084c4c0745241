package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-admin/internal/domain/entity"
)

// DashboardStats totales generales del dashboard (solo filas activas).
type DashboardStats struct {
	TotalProducts       int
	TotalCategories     int
	TotalUsers          int
	TotalInventoryValue decimal.Decimal
	LowStockCount       int
}

// LowStockProduct producto con stock en o bajo el mínimo, con su ratio.
type LowStockProduct struct {
	ID           string
	Name         string
	Quantity     int
	MinStock     int
	CategoryName string
	StockRatio   float64 // quantity / min_stock, ascendente en el listado
}

// ValuableProduct producto ordenado por valor total de inventario.
type ValuableProduct struct {
	ID           string
	Name         string
	Price        decimal.Decimal
	Quantity     int
	TotalValue   decimal.Decimal
	CategoryName string
}

// CategoryDistribution agregado de productos por categoría activa.
type CategoryDistribution struct {
	Name          string
	ProductCount  int
	TotalQuantity int
	TotalValue    decimal.Decimal
}

// QuickStats agregados rápidos sobre productos activos.
type QuickStats struct {
	TotalProducts       int
	TotalQuantity       int
	TotalInventoryValue decimal.Decimal
	AveragePrice        decimal.Decimal
	LowStockCount       int
}

// ReportRepository consultas de solo lectura para reportes. Ninguna operación
// muta estado; todas las agregaciones consideran únicamente filas activas.
type ReportRepository interface {
	DashboardStats(ctx context.Context) (*DashboardStats, error)
	LowStockProducts(ctx context.Context, limit int) ([]LowStockProduct, error)
	MostValuableProducts(ctx context.Context, limit int) ([]ValuableProduct, error)
	CategoryDistribution(ctx context.Context) ([]CategoryDistribution, error)
	RecentMovements(ctx context.Context, limit int) ([]*entity.InventoryMovement, error)
	// InventoryListing listado completo filtrado para el reporte de inventario (ordenado por nombre).
	InventoryListing(ctx context.Context, categoryID, stockStatus string) ([]*entity.Product, error)
	QuickStats(ctx context.Context) (*QuickStats, error)
}
