package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/inventario-admin/internal/application/dto"
	"github.com/jhoicas/inventario-admin/internal/application/inventory"
	"github.com/jhoicas/inventario-admin/internal/domain"
	"github.com/jhoicas/inventario-admin/internal/domain/entity"
	"github.com/jhoicas/inventario-admin/internal/domain/repository"
	"github.com/jhoicas/inventario-admin/internal/domain/stock"
)

// ProductUseCase casos de uso CRUD para productos. Toda mutación que afecta
// la cantidad registra su movimiento de auditoría dentro de la misma
// transacción (inventory.TxRunner).
type ProductUseCase struct {
	repo         repository.ProductRepository
	categoryRepo repository.CategoryRepository
	tx           inventory.TxRunner
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, categoryRepo repository.CategoryRepository, tx inventory.TxRunner) *ProductUseCase {
	return &ProductUseCase{repo: repo, categoryRepo: categoryRepo, tx: tx}
}

// Create crea un producto y su movimiento CREATE (before=0, after=quantity)
// en una sola transacción. CreatedBy queda fijado al usuario autenticado.
func (uc *ProductUseCase) Create(ctx context.Context, callerID string, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.Price.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	category, err := uc.categoryRepo.GetByID(ctx, in.CategoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrCategoryNotFound
	}
	if in.Barcode != "" {
		existing, err := uc.repo.GetByBarcode(ctx, in.Barcode)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, domain.ErrDuplicate
		}
	}
	minStock := entity.DefaultMinStock
	if in.MinStock != nil {
		minStock = *in.MinStock
	}
	now := time.Now()
	product := &entity.Product{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Description: in.Description,
		CategoryID:  in.CategoryID,
		Price:       in.Price,
		Quantity:    in.Quantity,
		MinStock:    minStock,
		Barcode:     in.Barcode,
		IsActive:    true,
		CreatedBy:   callerID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	err = uc.tx.Run(ctx, func(productRepo repository.ProductRepository, movRepo repository.InventoryMovementRepository) error {
		if err := productRepo.Create(ctx, product); err != nil {
			return err
		}
		mov := inventory.NewMovement(product.ID, callerID, entity.MovementTypeCreate,
			0, product.Quantity, "Creación de producto", "")
		return movRepo.Create(ctx, mov)
	})
	if err != nil {
		return nil, err
	}
	product.CategoryName = category.Name
	return toProductResponse(product), nil
}

// GetByID obtiene un producto activo por ID.
func (uc *ProductUseCase) GetByID(ctx context.Context, id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return toProductResponse(product), nil
}

// Update reemplaza el registro completo (no hay updates parciales). Solo el
// creador o un admin pueden modificar; si la cantidad cambia se registra el
// movimiento con before/after en la misma transacción.
func (uc *ProductUseCase) Update(ctx context.Context, callerID, callerRole, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	if in.Price.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if callerRole != entity.RoleAdmin && product.CreatedBy != callerID {
		return nil, domain.ErrForbidden
	}
	category, err := uc.categoryRepo.GetByID(ctx, in.CategoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrCategoryNotFound
	}
	if in.Barcode != "" {
		existing, err := uc.repo.GetByBarcode(ctx, in.Barcode)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ID != id {
			return nil, domain.ErrDuplicate
		}
	}

	before := product.Quantity
	after := in.Quantity
	movementType, err := resolveMovementType(in.MovementType, before, after)
	if err != nil {
		return nil, err
	}

	product.Name = in.Name
	product.Description = in.Description
	product.CategoryID = in.CategoryID
	product.Price = in.Price
	product.Quantity = after
	if in.MinStock != nil {
		product.MinStock = *in.MinStock
	}
	product.Barcode = in.Barcode
	product.UpdatedAt = time.Now()

	err = uc.tx.Run(ctx, func(productRepo repository.ProductRepository, movRepo repository.InventoryMovementRepository) error {
		if err := productRepo.Update(ctx, product); err != nil {
			return err
		}
		if before == after {
			return nil
		}
		reason := in.Reason
		if reason == "" {
			reason = "Actualización de producto"
		}
		mov := inventory.NewMovement(product.ID, callerID, movementType, before, after, reason, in.Notes)
		return movRepo.Create(ctx, mov)
	})
	if err != nil {
		return nil, err
	}
	product.CategoryName = category.Name
	return toProductResponse(product), nil
}

// Delete desactiva el producto (soft delete) y registra el movimiento DELETE
// (after=0) en la misma transacción. Mismo chequeo creador-o-admin que Update.
func (uc *ProductUseCase) Delete(ctx context.Context, callerID, callerRole, id string) error {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	if callerRole != entity.RoleAdmin && product.CreatedBy != callerID {
		return domain.ErrForbidden
	}
	now := time.Now()
	return uc.tx.Run(ctx, func(productRepo repository.ProductRepository, movRepo repository.InventoryMovementRepository) error {
		if err := productRepo.SoftDelete(ctx, id, now); err != nil {
			return err
		}
		mov := inventory.NewMovement(id, callerID, entity.MovementTypeDelete,
			product.Quantity, 0, "Eliminación de producto", "")
		return movRepo.Create(ctx, mov)
	})
}

// List lista productos activos con filtros y paginación (más nuevos primero).
func (uc *ProductUseCase) List(ctx context.Context, in dto.ProductListRequest) (*dto.ProductListResponse, error) {
	if in.StockStatus != "" && !stock.ValidStatus(in.StockStatus) {
		return nil, domain.ErrInvalidInput
	}
	in.Normalize(20, 100)
	filter := repository.ProductFilter{
		Search:      in.Search,
		CategoryID:  in.CategoryID,
		StockStatus: in.StockStatus,
		Limit:       in.Limit,
		Offset:      in.Offset(),
	}
	list, total, err := uc.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	products := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		products = append(products, *toProductResponse(p))
	}
	return &dto.ProductListResponse{
		Products:   products,
		Pagination: dto.NewPagination(in.Page, in.Limit, total),
	}, nil
}

// resolveMovementType valida la etiqueta del movimiento contra la dirección
// real del cambio. Default: UPDATE.
func resolveMovementType(requested string, before, after int) (string, error) {
	if requested == "" || requested == entity.MovementTypeUpdate {
		return entity.MovementTypeUpdate, nil
	}
	if requested == entity.MovementTypeStockIn && after > before {
		return entity.MovementTypeStockIn, nil
	}
	if requested == entity.MovementTypeStockOut && after < before {
		return entity.MovementTypeStockOut, nil
	}
	return "", domain.ErrInvalidInput
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:           p.ID,
		Name:         p.Name,
		Description:  p.Description,
		CategoryID:   p.CategoryID,
		CategoryName: p.CategoryName,
		Price:        p.Price,
		Quantity:     p.Quantity,
		MinStock:     p.MinStock,
		Barcode:      p.Barcode,
		StockStatus:  stock.Status(p.Quantity, p.MinStock),
		TotalValue:   p.TotalValue(),
		IsActive:     p.IsActive,
		CreatedBy:    p.CreatedBy,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}
