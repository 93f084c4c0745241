package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// DashboardStatsDTO totales generales del dashboard.
type DashboardStatsDTO struct {
	TotalProducts       int             `json:"total_products"`
	TotalCategories     int             `json:"total_categories"`
	TotalUsers          int             `json:"total_users"`
	TotalInventoryValue decimal.Decimal `json:"total_inventory_value"`
	LowStockCount       int             `json:"low_stock_count"`
}

// LowStockProductDTO producto con stock bajo, ordenado por ratio ascendente.
type LowStockProductDTO struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Quantity     int     `json:"quantity"`
	MinStock     int     `json:"min_stock"`
	CategoryName string  `json:"category_name,omitempty"`
	StockRatio   float64 `json:"stock_ratio"`
}

// ValuableProductDTO producto ordenado por valor total descendente.
type ValuableProductDTO struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Price        decimal.Decimal `json:"price"`
	Quantity     int             `json:"quantity"`
	TotalValue   decimal.Decimal `json:"total_value"`
	CategoryName string          `json:"category_name,omitempty"`
}

// CategoryDistributionDTO agregado por categoría activa.
type CategoryDistributionDTO struct {
	Name          string          `json:"name"`
	ProductCount  int             `json:"product_count"`
	TotalQuantity int             `json:"total_quantity"`
	TotalValue    decimal.Decimal `json:"total_value"`
}

// DashboardResponse respuesta de GET /reports/dashboard.
type DashboardResponse struct {
	Stats                DashboardStatsDTO         `json:"stats"`
	LowStockProducts     []LowStockProductDTO      `json:"low_stock_products"`
	ValuableProducts     []ValuableProductDTO      `json:"valuable_products"`
	CategoryDistribution []CategoryDistributionDTO `json:"category_distribution"`
	RecentMovements      []MovementResponse        `json:"recent_movements"`
}

// InventoryReportSummary resumen calculado sobre el listado filtrado.
type InventoryReportSummary struct {
	TotalProducts    int             `json:"total_products"`
	TotalValue       decimal.Decimal `json:"total_value"`
	TotalQuantity    int             `json:"total_quantity"`
	LowStockCount    int             `json:"low_stock_count"`
	MediumStockCount int             `json:"medium_stock_count"`
	HighStockCount   int             `json:"high_stock_count"`
}

// InventoryReportFilters filtros aplicados, ecoados en la respuesta.
type InventoryReportFilters struct {
	CategoryID  string `json:"category_id,omitempty"`
	StockStatus string `json:"stock_status,omitempty"`
}

// InventoryReportResponse respuesta de GET /reports/inventory.
type InventoryReportResponse struct {
	Products    []ProductResponse      `json:"products"`
	Summary     InventoryReportSummary `json:"summary"`
	Filters     InventoryReportFilters `json:"filters"`
	GeneratedAt time.Time              `json:"generated_at"`
}

// QuickStatsResponse respuesta de GET /reports/stats.
type QuickStatsResponse struct {
	TotalProducts       int             `json:"total_products"`
	TotalQuantity       int             `json:"total_quantity"`
	TotalInventoryValue decimal.Decimal `json:"total_inventory_value"`
	AveragePrice        decimal.Decimal `json:"average_price"`
	LowStockCount       int             `json:"low_stock_count"`
}
