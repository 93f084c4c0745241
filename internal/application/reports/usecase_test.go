package reports_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-admin/internal/application/dto"
	"github.com/jhoicas/inventario-admin/internal/application/reports"
	"github.com/jhoicas/inventario-admin/internal/domain"
	"github.com/jhoicas/inventario-admin/internal/domain/entity"
	"github.com/jhoicas/inventario-admin/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeReportRepo struct {
	stats     repository.DashboardStats
	lowStock  []repository.LowStockProduct
	valuable  []repository.ValuableProduct
	dist      []repository.CategoryDistribution
	recent    []*entity.InventoryMovement
	inventory []*entity.Product
	quick     repository.QuickStats
}

func (f *fakeReportRepo) DashboardStats(_ context.Context) (*repository.DashboardStats, error) {
	s := f.stats
	return &s, nil
}

func (f *fakeReportRepo) LowStockProducts(_ context.Context, limit int) ([]repository.LowStockProduct, error) {
	if len(f.lowStock) > limit {
		return f.lowStock[:limit], nil
	}
	return f.lowStock, nil
}

func (f *fakeReportRepo) MostValuableProducts(_ context.Context, limit int) ([]repository.ValuableProduct, error) {
	if len(f.valuable) > limit {
		return f.valuable[:limit], nil
	}
	return f.valuable, nil
}

func (f *fakeReportRepo) CategoryDistribution(_ context.Context) ([]repository.CategoryDistribution, error) {
	return f.dist, nil
}

func (f *fakeReportRepo) RecentMovements(_ context.Context, limit int) ([]*entity.InventoryMovement, error) {
	if len(f.recent) > limit {
		return f.recent[:limit], nil
	}
	return f.recent, nil
}

func (f *fakeReportRepo) InventoryListing(_ context.Context, categoryID, stockStatus string) ([]*entity.Product, error) {
	return f.inventory, nil
}

func (f *fakeReportRepo) QuickStats(_ context.Context) (*repository.QuickStats, error) {
	q := f.quick
	return &q, nil
}

type fakeMovementList struct {
	movements []*entity.InventoryMovement
	gotFilter repository.MovementFilter
}

func (f *fakeMovementList) Create(_ context.Context, _ *entity.InventoryMovement) error {
	return nil
}

func (f *fakeMovementList) List(_ context.Context, filter repository.MovementFilter) ([]*entity.InventoryMovement, int, error) {
	f.gotFilter = filter
	return f.movements, len(f.movements), nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestDashboard_ArmaTodasLasSecciones(t *testing.T) {
	repo := &fakeReportRepo{
		stats: repository.DashboardStats{
			TotalProducts: 12, TotalCategories: 3, TotalUsers: 5,
			TotalInventoryValue: decimal.NewFromFloat(1234.567),
			LowStockCount:       2,
		},
		lowStock: []repository.LowStockProduct{
			{ID: "p1", Name: "Cable HDMI", Quantity: 2, MinStock: 10, StockRatio: 0.2},
		},
		valuable: []repository.ValuableProduct{
			{ID: "p2", Name: "Portátil", Price: decimal.NewFromInt(900), Quantity: 4,
				TotalValue: decimal.NewFromInt(3600)},
		},
		dist: []repository.CategoryDistribution{
			{Name: "Electrónica", ProductCount: 8, TotalQuantity: 40,
				TotalValue: decimal.NewFromInt(5000)},
		},
		recent: []*entity.InventoryMovement{
			{ID: "m1", MovementType: entity.MovementTypeCreate, QuantityAfter: 5},
		},
	}
	uc := reports.NewReportUseCase(repo, &fakeMovementList{})

	out, err := uc.Dashboard(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 12, out.Stats.TotalProducts)
	assert.True(t, decimal.NewFromFloat(1234.57).Equal(out.Stats.TotalInventoryValue),
		"el valor total se redondea a 2 decimales")
	require.Len(t, out.LowStockProducts, 1)
	assert.InDelta(t, 0.2, out.LowStockProducts[0].StockRatio, 0.0001)
	require.Len(t, out.ValuableProducts, 1)
	require.Len(t, out.CategoryDistribution, 1)
	require.Len(t, out.RecentMovements, 1)
	assert.Equal(t, entity.MovementTypeCreate, out.RecentMovements[0].MovementType)
}

func TestInventory_ResumenCalculadoSobreElResultado(t *testing.T) {
	repo := &fakeReportRepo{
		inventory: []*entity.Product{
			{ID: "p1", Name: "A", Price: decimal.NewFromInt(10), Quantity: 5, MinStock: 10, IsActive: true},  // LOW
			{ID: "p2", Name: "B", Price: decimal.NewFromInt(20), Quantity: 15, MinStock: 10, IsActive: true}, // MEDIUM
			{ID: "p3", Name: "C", Price: decimal.NewFromInt(30), Quantity: 50, MinStock: 10, IsActive: true}, // HIGH
		},
	}
	uc := reports.NewReportUseCase(repo, &fakeMovementList{})

	out, err := uc.Inventory(context.Background(), "", "")
	require.NoError(t, err)

	assert.Equal(t, 3, out.Summary.TotalProducts)
	assert.Equal(t, 70, out.Summary.TotalQuantity)
	assert.True(t, decimal.NewFromInt(1850).Equal(out.Summary.TotalValue)) // 50+300+1500
	assert.Equal(t, 1, out.Summary.LowStockCount)
	assert.Equal(t, 1, out.Summary.MediumStockCount)
	assert.Equal(t, 1, out.Summary.HighStockCount)
	assert.False(t, out.GeneratedAt.IsZero())
}

func TestInventory_FiltroDeStockInvalido(t *testing.T) {
	uc := reports.NewReportUseCase(&fakeReportRepo{}, &fakeMovementList{})
	_, err := uc.Inventory(context.Background(), "", "AGOTADO")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestMovements_NormalizaPaginacionYValidaTipo(t *testing.T) {
	movs := &fakeMovementList{}
	uc := reports.NewReportUseCase(&fakeReportRepo{}, movs)

	_, err := uc.Movements(context.Background(), dto.MovementListRequest{MovementType: "VENTA"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Movements(context.Background(), dto.MovementListRequest{
		MovementType: entity.MovementTypeStockOut,
		PageRequest:  dto.PageRequest{Page: 0, Limit: 999},
	})
	require.NoError(t, err)
	assert.Equal(t, 200, movs.gotFilter.Limit, "el límite se recorta al máximo 200")
	assert.Equal(t, 0, movs.gotFilter.Offset)
	assert.Equal(t, entity.MovementTypeStockOut, movs.gotFilter.MovementType)
}

func TestQuickStats_Redondeo(t *testing.T) {
	repo := &fakeReportRepo{quick: repository.QuickStats{
		TotalProducts:       10,
		TotalQuantity:       120,
		TotalInventoryValue: decimal.NewFromFloat(999.999),
		AveragePrice:        decimal.NewFromFloat(33.333),
		LowStockCount:       4,
	}}
	uc := reports.NewReportUseCase(repo, &fakeMovementList{})

	out, err := uc.QuickStats(context.Background())
	require.NoError(t, err)
	assert.True(t, decimal.NewFromFloat(1000.00).Equal(out.TotalInventoryValue))
	assert.True(t, decimal.NewFromFloat(33.33).Equal(out.AveragePrice))
	assert.Equal(t, 4, out.LowStockCount)
}
