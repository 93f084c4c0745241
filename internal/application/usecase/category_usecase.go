package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/inventario-admin/internal/application/dto"
	"github.com/jhoicas/inventario-admin/internal/domain"
	"github.com/jhoicas/inventario-admin/internal/domain/entity"
	"github.com/jhoicas/inventario-admin/internal/domain/repository"
)

// CategoryUseCase casos de uso CRUD para categorías. El nombre es único
// (case-insensitive) entre categorías activas; la eliminación es soft y se
// rechaza mientras existan productos activos asociados.
type CategoryUseCase struct {
	repo repository.CategoryRepository
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(repo repository.CategoryRepository) *CategoryUseCase {
	return &CategoryUseCase{repo: repo}
}

// Create crea una categoría. Nombre duplicado (sin distinguir mayúsculas) → ErrDuplicate.
func (uc *CategoryUseCase) Create(ctx context.Context, in dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	existing, err := uc.repo.GetByName(ctx, in.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	category := &entity.Category{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Description: in.Description,
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(ctx, category); err != nil {
		return nil, err
	}
	return toCategoryResponse(category, nil), nil
}

// GetByID obtiene una categoría activa con su conteo de productos.
func (uc *CategoryUseCase) GetByID(ctx context.Context, id string) (*dto.CategoryResponse, error) {
	category, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrNotFound
	}
	count, err := uc.repo.CountActiveProducts(ctx, id)
	if err != nil {
		return nil, err
	}
	return toCategoryResponse(category, &count), nil
}

// Update reemplaza nombre y descripción. Re-valida unicidad excluyéndose a sí misma.
func (uc *CategoryUseCase) Update(ctx context.Context, id string, in dto.UpdateCategoryRequest) (*dto.CategoryResponse, error) {
	category, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrNotFound
	}
	existing, err := uc.repo.GetByName(ctx, in.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil && existing.ID != id {
		return nil, domain.ErrDuplicate
	}
	category.Name = in.Name
	category.Description = in.Description
	category.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, category); err != nil {
		return nil, err
	}
	return toCategoryResponse(category, nil), nil
}

// Delete desactiva la categoría. Se rechaza con CategoryInUseError (y el
// conteo exacto) mientras haya productos activos que la referencien.
func (uc *CategoryUseCase) Delete(ctx context.Context, id string) error {
	category, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if category == nil {
		return domain.ErrNotFound
	}
	count, err := uc.repo.CountActiveProducts(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return &domain.CategoryInUseError{Count: count}
	}
	return uc.repo.SoftDelete(ctx, id, time.Now())
}

// List lista las categorías activas (más nuevas primero); con withStats
// incluye el conteo de productos de cada una.
func (uc *CategoryUseCase) List(ctx context.Context, withStats bool) (*dto.CategoryListResponse, error) {
	list, err := uc.repo.List(ctx, withStats)
	if err != nil {
		return nil, err
	}
	categories := make([]dto.CategoryResponse, 0, len(list))
	for _, c := range list {
		var count *int
		if withStats {
			n := c.ProductCount
			count = &n
		}
		categories = append(categories, *toCategoryResponse(c, count))
	}
	return &dto.CategoryListResponse{Categories: categories}, nil
}

func toCategoryResponse(c *entity.Category, productCount *int) *dto.CategoryResponse {
	if c == nil {
		return nil
	}
	return &dto.CategoryResponse{
		ID:           c.ID,
		Name:         c.Name,
		Description:  c.Description,
		IsActive:     c.IsActive,
		ProductCount: productCount,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}
