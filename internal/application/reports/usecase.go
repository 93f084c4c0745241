// Package reports contiene los casos de uso de solo lectura: dashboard,
// reporte de inventario, historial de movimientos y estadísticas rápidas.
package reports

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-admin/internal/application/dto"
	"github.com/jhoicas/inventario-admin/internal/domain"
	"github.com/jhoicas/inventario-admin/internal/domain/entity"
	"github.com/jhoicas/inventario-admin/internal/domain/repository"
	"github.com/jhoicas/inventario-admin/internal/domain/stock"
)

const (
	dashboardTopProducts = 10 // filas en los widgets de stock bajo y más valiosos
	dashboardRecentMovs  = 10
)

// ReportUseCase genera los reportes agregados. Solo lecturas; ninguna
// operación muta estado.
type ReportUseCase struct {
	reportRepo repository.ReportRepository
	movRepo    repository.InventoryMovementRepository
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(reportRepo repository.ReportRepository, movRepo repository.InventoryMovementRepository) *ReportUseCase {
	return &ReportUseCase{reportRepo: reportRepo, movRepo: movRepo}
}

// Dashboard construye la respuesta de GET /reports/dashboard.
//
// Cinco consultas en paralelo:
//  1. DashboardStats          → totales generales
//  2. LowStockProducts(10)    → stock bajo por ratio ascendente
//  3. MostValuableProducts(10)→ mayor valor de inventario
//  4. CategoryDistribution    → agregado por categoría
//  5. RecentMovements(10)     → últimos movimientos
func (uc *ReportUseCase) Dashboard(ctx context.Context) (*dto.DashboardResponse, error) {
	type statsResult struct {
		stats *repository.DashboardStats
		err   error
	}
	type lowStockResult struct {
		rows []repository.LowStockProduct
		err  error
	}
	type valuableResult struct {
		rows []repository.ValuableProduct
		err  error
	}
	type distResult struct {
		rows []repository.CategoryDistribution
		err  error
	}
	type movsResult struct {
		rows []*entity.InventoryMovement
		err  error
	}

	statsCh := make(chan statsResult, 1)
	lowCh := make(chan lowStockResult, 1)
	valCh := make(chan valuableResult, 1)
	distCh := make(chan distResult, 1)
	movsCh := make(chan movsResult, 1)

	go func() {
		s, err := uc.reportRepo.DashboardStats(ctx)
		statsCh <- statsResult{s, err}
	}()
	go func() {
		rows, err := uc.reportRepo.LowStockProducts(ctx, dashboardTopProducts)
		lowCh <- lowStockResult{rows, err}
	}()
	go func() {
		rows, err := uc.reportRepo.MostValuableProducts(ctx, dashboardTopProducts)
		valCh <- valuableResult{rows, err}
	}()
	go func() {
		rows, err := uc.reportRepo.CategoryDistribution(ctx)
		distCh <- distResult{rows, err}
	}()
	go func() {
		rows, err := uc.reportRepo.RecentMovements(ctx, dashboardRecentMovs)
		movsCh <- movsResult{rows, err}
	}()

	stats := <-statsCh
	low := <-lowCh
	val := <-valCh
	dist := <-distCh
	movs := <-movsCh

	if stats.err != nil {
		return nil, fmt.Errorf("dashboard: totales: %w", stats.err)
	}
	if low.err != nil {
		return nil, fmt.Errorf("dashboard: stock bajo: %w", low.err)
	}
	if val.err != nil {
		return nil, fmt.Errorf("dashboard: más valiosos: %w", val.err)
	}
	if dist.err != nil {
		return nil, fmt.Errorf("dashboard: distribución: %w", dist.err)
	}
	if movs.err != nil {
		return nil, fmt.Errorf("dashboard: movimientos recientes: %w", movs.err)
	}

	out := &dto.DashboardResponse{
		Stats: dto.DashboardStatsDTO{
			TotalProducts:       stats.stats.TotalProducts,
			TotalCategories:     stats.stats.TotalCategories,
			TotalUsers:          stats.stats.TotalUsers,
			TotalInventoryValue: stats.stats.TotalInventoryValue.Round(2),
			LowStockCount:       stats.stats.LowStockCount,
		},
		LowStockProducts:     make([]dto.LowStockProductDTO, 0, len(low.rows)),
		ValuableProducts:     make([]dto.ValuableProductDTO, 0, len(val.rows)),
		CategoryDistribution: make([]dto.CategoryDistributionDTO, 0, len(dist.rows)),
		RecentMovements:      make([]dto.MovementResponse, 0, len(movs.rows)),
	}
	for _, r := range low.rows {
		out.LowStockProducts = append(out.LowStockProducts, dto.LowStockProductDTO{
			ID: r.ID, Name: r.Name, Quantity: r.Quantity, MinStock: r.MinStock,
			CategoryName: r.CategoryName, StockRatio: r.StockRatio,
		})
	}
	for _, r := range val.rows {
		out.ValuableProducts = append(out.ValuableProducts, dto.ValuableProductDTO{
			ID: r.ID, Name: r.Name, Price: r.Price, Quantity: r.Quantity,
			TotalValue: r.TotalValue.Round(2), CategoryName: r.CategoryName,
		})
	}
	for _, r := range dist.rows {
		out.CategoryDistribution = append(out.CategoryDistribution, dto.CategoryDistributionDTO{
			Name: r.Name, ProductCount: r.ProductCount,
			TotalQuantity: r.TotalQuantity, TotalValue: r.TotalValue.Round(2),
		})
	}
	for _, m := range movs.rows {
		out.RecentMovements = append(out.RecentMovements, toMovementResponse(m))
	}
	return out, nil
}

// Inventory construye el reporte completo de inventario filtrado por
// categoría y/o estado de stock, con resumen calculado sobre el resultado.
func (uc *ReportUseCase) Inventory(ctx context.Context, categoryID, stockStatus string) (*dto.InventoryReportResponse, error) {
	if stockStatus != "" && !stock.ValidStatus(stockStatus) {
		return nil, domain.ErrInvalidInput
	}
	products, err := uc.reportRepo.InventoryListing(ctx, categoryID, stockStatus)
	if err != nil {
		return nil, err
	}

	out := &dto.InventoryReportResponse{
		Products: make([]dto.ProductResponse, 0, len(products)),
		Summary: dto.InventoryReportSummary{
			TotalProducts: len(products),
			TotalValue:    decimal.Zero,
		},
		Filters:     dto.InventoryReportFilters{CategoryID: categoryID, StockStatus: stockStatus},
		GeneratedAt: time.Now(),
	}
	for _, p := range products {
		status := stock.Status(p.Quantity, p.MinStock)
		totalValue := p.TotalValue()
		out.Products = append(out.Products, dto.ProductResponse{
			ID:           p.ID,
			Name:         p.Name,
			Description:  p.Description,
			CategoryID:   p.CategoryID,
			CategoryName: p.CategoryName,
			Price:        p.Price,
			Quantity:     p.Quantity,
			MinStock:     p.MinStock,
			Barcode:      p.Barcode,
			StockStatus:  status,
			TotalValue:   totalValue,
			IsActive:     p.IsActive,
			CreatedBy:    p.CreatedBy,
			CreatedAt:    p.CreatedAt,
			UpdatedAt:    p.UpdatedAt,
		})
		out.Summary.TotalValue = out.Summary.TotalValue.Add(totalValue)
		out.Summary.TotalQuantity += p.Quantity
		switch status {
		case stock.StatusLow:
			out.Summary.LowStockCount++
		case stock.StatusMedium:
			out.Summary.MediumStockCount++
		default:
			out.Summary.HighStockCount++
		}
	}
	out.Summary.TotalValue = out.Summary.TotalValue.Round(2)
	return out, nil
}

// Movements devuelve el historial paginado de movimientos (más nuevos primero).
func (uc *ReportUseCase) Movements(ctx context.Context, in dto.MovementListRequest) (*dto.MovementListResponse, error) {
	if in.MovementType != "" && !entity.ValidMovementType(in.MovementType) {
		return nil, domain.ErrInvalidInput
	}
	in.Normalize(50, 200)
	filter := repository.MovementFilter{
		ProductID:    in.ProductID,
		MovementType: in.MovementType,
		Limit:        in.Limit,
		Offset:       in.Offset(),
	}
	list, total, err := uc.movRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	movements := make([]dto.MovementResponse, 0, len(list))
	for _, m := range list {
		movements = append(movements, toMovementResponse(m))
	}
	return &dto.MovementListResponse{
		Movements:  movements,
		Pagination: dto.NewPagination(in.Page, in.Limit, total),
	}, nil
}

// QuickStats agregados rápidos sobre productos activos.
func (uc *ReportUseCase) QuickStats(ctx context.Context) (*dto.QuickStatsResponse, error) {
	stats, err := uc.reportRepo.QuickStats(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.QuickStatsResponse{
		TotalProducts:       stats.TotalProducts,
		TotalQuantity:       stats.TotalQuantity,
		TotalInventoryValue: stats.TotalInventoryValue.Round(2),
		AveragePrice:        stats.AveragePrice.Round(2),
		LowStockCount:       stats.LowStockCount,
	}, nil
}

func toMovementResponse(m *entity.InventoryMovement) dto.MovementResponse {
	return dto.MovementResponse{
		ID:              m.ID,
		ProductID:       m.ProductID,
		ProductName:     m.ProductName,
		CategoryName:    m.CategoryName,
		Username:        m.Username,
		MovementType:    m.MovementType,
		QuantityBefore:  m.QuantityBefore,
		QuantityAfter:   m.QuantityAfter,
		QuantityChanged: m.QuantityChanged,
		Reason:          m.Reason,
		Notes:           m.Notes,
		CreatedAt:       m.CreatedAt,
	}
}
