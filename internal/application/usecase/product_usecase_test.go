package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-admin/internal/application/dto"
	"github.com/jhoicas/inventario-admin/internal/application/usecase"
	"github.com/jhoicas/inventario-admin/internal/domain"
	"github.com/jhoicas/inventario-admin/internal/domain/entity"
)

const (
	creatorID = "00000000-0000-0000-0000-00000000000a"
	otherID   = "00000000-0000-0000-0000-00000000000b"
)

type productFixture struct {
	uc        *usecase.ProductUseCase
	products  *fakeProductRepo
	catRepo   *fakeCategoryRepo
	movements *fakeMovementRepo
	catID     string
}

func newProductFixture(t *testing.T) *productFixture {
	t.Helper()
	products := newFakeProductRepo()
	movements := &fakeMovementRepo{}
	catRepo := newFakeCategoryRepo()
	catID := "cat-1"
	require.NoError(t, catRepo.Create(context.Background(), &entity.Category{
		ID: catID, Name: "Electrónica", IsActive: true,
		CreatedAt: time.Now(), UpdatedAt: time.Now(),
	}))
	tx := &fakeTxRunner{products: products, movements: movements}
	return &productFixture{
		uc:        usecase.NewProductUseCase(products, catRepo, tx),
		products:  products,
		catRepo:   catRepo,
		movements: movements,
		catID:     catID,
	}
}

func createRequest(f *productFixture, qty int) dto.CreateProductRequest {
	return dto.CreateProductRequest{
		Name:       "Teclado mecánico",
		CategoryID: f.catID,
		Price:      decimal.NewFromFloat(45.50),
		Quantity:   qty,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Create
// ──────────────────────────────────────────────────────────────────────────────

func TestProductCreate_RegistraMovimientoCREATE(t *testing.T) {
	f := newProductFixture(t)

	out, err := f.uc.Create(context.Background(), creatorID, createRequest(f, 15))
	require.NoError(t, err)

	assert.Equal(t, creatorID, out.CreatedBy)
	assert.Equal(t, entity.DefaultMinStock, out.MinStock, "min_stock debe tomar el default 10")
	assert.Equal(t, "MEDIUM", out.StockStatus, "15 con min 10 está entre min y 2*min")
	assert.Equal(t, "Electrónica", out.CategoryName)
	assert.True(t, decimal.NewFromFloat(682.5).Equal(out.TotalValue))

	require.Len(t, f.movements.movements, 1)
	mov := f.movements.movements[0]
	assert.Equal(t, entity.MovementTypeCreate, mov.MovementType)
	assert.Equal(t, 0, mov.QuantityBefore)
	assert.Equal(t, 15, mov.QuantityAfter)
	assert.Equal(t, 15, mov.QuantityChanged)
}

// Si el insert del movimiento falla, el producto tampoco debe quedar creado:
// ambos escriben dentro de la misma transacción.
func TestProductCreate_FalloDeMovimientoRevierteTodo(t *testing.T) {
	f := newProductFixture(t)
	f.movements.failCreate = true

	_, err := f.uc.Create(context.Background(), creatorID, createRequest(f, 5))
	require.Error(t, err)

	assert.Empty(t, f.products.products, "el producto no debe quedar persistido")
	assert.Empty(t, f.movements.movements, "tampoco debe quedar movimiento alguno")
}

func TestProductCreate_CategoriaInexistente(t *testing.T) {
	f := newProductFixture(t)
	in := createRequest(f, 5)
	in.CategoryID = "no-existe"

	_, err := f.uc.Create(context.Background(), creatorID, in)
	assert.ErrorIs(t, err, domain.ErrCategoryNotFound)
	assert.Empty(t, f.movements.movements)
}

func TestProductCreate_BarcodeDuplicado(t *testing.T) {
	f := newProductFixture(t)
	in := createRequest(f, 5)
	in.Barcode = "7701234567890"
	_, err := f.uc.Create(context.Background(), creatorID, in)
	require.NoError(t, err)

	in2 := createRequest(f, 3)
	in2.Barcode = "7701234567890"
	_, err = f.uc.Create(context.Background(), creatorID, in2)
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestProductCreate_PrecioNegativo(t *testing.T) {
	f := newProductFixture(t)
	in := createRequest(f, 5)
	in.Price = decimal.NewFromInt(-1)

	_, err := f.uc.Create(context.Background(), creatorID, in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Update
// ──────────────────────────────────────────────────────────────────────────────

func updateRequest(f *productFixture, qty int) dto.UpdateProductRequest {
	return dto.UpdateProductRequest{
		Name:       "Teclado mecánico",
		CategoryID: f.catID,
		Price:      decimal.NewFromFloat(45.50),
		Quantity:   qty,
	}
}

func TestProductUpdate_CambioDeCantidadRegistraMovimiento(t *testing.T) {
	f := newProductFixture(t)
	created, err := f.uc.Create(context.Background(), creatorID, createRequest(f, 10))
	require.NoError(t, err)

	in := updateRequest(f, 25)
	in.Reason = "Reposición de proveedor"
	in.MovementType = entity.MovementTypeStockIn
	out, err := f.uc.Update(context.Background(), creatorID, entity.RoleUser, created.ID, in)
	require.NoError(t, err)
	assert.Equal(t, 25, out.Quantity)

	require.Len(t, f.movements.movements, 2, "CREATE inicial + STOCK_IN")
	mov := f.movements.movements[1]
	assert.Equal(t, entity.MovementTypeStockIn, mov.MovementType)
	assert.Equal(t, 10, mov.QuantityBefore)
	assert.Equal(t, 25, mov.QuantityAfter)
	assert.Equal(t, 15, mov.QuantityChanged)
	assert.Equal(t, "Reposición de proveedor", mov.Reason)
}

func TestProductUpdate_SinCambioDeCantidadNoRegistraMovimiento(t *testing.T) {
	f := newProductFixture(t)
	created, err := f.uc.Create(context.Background(), creatorID, createRequest(f, 10))
	require.NoError(t, err)

	in := updateRequest(f, 10)
	in.Name = "Teclado mecánico RGB"
	_, err = f.uc.Update(context.Background(), creatorID, entity.RoleUser, created.ID, in)
	require.NoError(t, err)

	assert.Len(t, f.movements.movements, 1, "solo debe existir el CREATE inicial")
}

func TestProductUpdate_EtiquetaStockInConBajaEsInvalida(t *testing.T) {
	f := newProductFixture(t)
	created, err := f.uc.Create(context.Background(), creatorID, createRequest(f, 10))
	require.NoError(t, err)

	in := updateRequest(f, 4) // baja de cantidad etiquetada como entrada
	in.MovementType = entity.MovementTypeStockIn
	_, err = f.uc.Update(context.Background(), creatorID, entity.RoleUser, created.ID, in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProductUpdate_SoloCreadorOAdmin(t *testing.T) {
	f := newProductFixture(t)
	created, err := f.uc.Create(context.Background(), creatorID, createRequest(f, 10))
	require.NoError(t, err)

	_, err = f.uc.Update(context.Background(), otherID, entity.RoleUser, created.ID, updateRequest(f, 12))
	assert.ErrorIs(t, err, domain.ErrForbidden, "otro user no puede modificar")

	_, err = f.uc.Update(context.Background(), otherID, entity.RoleAdmin, created.ID, updateRequest(f, 12))
	assert.NoError(t, err, "un admin sí puede modificar productos ajenos")
}

// ──────────────────────────────────────────────────────────────────────────────
// Delete
// ──────────────────────────────────────────────────────────────────────────────

func TestProductDelete_SoftDeleteConMovimientoDELETE(t *testing.T) {
	f := newProductFixture(t)
	created, err := f.uc.Create(context.Background(), creatorID, createRequest(f, 8))
	require.NoError(t, err)

	require.NoError(t, f.uc.Delete(context.Background(), creatorID, entity.RoleUser, created.ID))

	stored := f.products.products[created.ID]
	require.NotNil(t, stored, "soft delete: la fila sigue existiendo")
	assert.False(t, stored.IsActive)

	require.Len(t, f.movements.movements, 2)
	mov := f.movements.movements[1]
	assert.Equal(t, entity.MovementTypeDelete, mov.MovementType)
	assert.Equal(t, 8, mov.QuantityBefore)
	assert.Equal(t, 0, mov.QuantityAfter)

	// Tras el soft delete el producto desaparece de las lecturas.
	_, err = f.uc.GetByID(context.Background(), created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProductDelete_OtroUserNoPuede(t *testing.T) {
	f := newProductFixture(t)
	created, err := f.uc.Create(context.Background(), creatorID, createRequest(f, 8))
	require.NoError(t, err)

	err = f.uc.Delete(context.Background(), otherID, entity.RoleUser, created.ID)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

// ──────────────────────────────────────────────────────────────────────────────
// List
// ──────────────────────────────────────────────────────────────────────────────

func TestProductList_FiltroDeStockInvalido(t *testing.T) {
	f := newProductFixture(t)
	_, err := f.uc.List(context.Background(), dto.ProductListRequest{StockStatus: "AGOTADO"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProductList_PaginacionNormalizada(t *testing.T) {
	f := newProductFixture(t)
	for i := 0; i < 3; i++ {
		_, err := f.uc.Create(context.Background(), creatorID, createRequest(f, i+1))
		require.NoError(t, err)
	}

	out, err := f.uc.List(context.Background(), dto.ProductListRequest{})
	require.NoError(t, err)
	assert.Len(t, out.Products, 3)
	assert.Equal(t, 1, out.Pagination.CurrentPage)
	assert.Equal(t, 20, out.Pagination.ItemsPerPage)
	assert.Equal(t, 3, out.Pagination.TotalItems)
}
