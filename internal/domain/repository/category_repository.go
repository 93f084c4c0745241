package repository

import (
	"context"
	"time"

	"github.com/jhoicas/inventario-admin/internal/domain/entity"
)

// CategoryRepository define el puerto de persistencia para Category (DIP).
// Todas las lecturas consideran solo categorías activas.
type CategoryRepository interface {
	Create(ctx context.Context, category *entity.Category) error
	GetByID(ctx context.Context, id string) (*entity.Category, error)
	// GetByName busca por nombre sin distinguir mayúsculas, entre activas.
	GetByName(ctx context.Context, name string) (*entity.Category, error)
	Update(ctx context.Context, category *entity.Category) error
	SoftDelete(ctx context.Context, id string, at time.Time) error
	List(ctx context.Context, withStats bool) ([]*entity.Category, error)
	// CountActiveProducts cuenta productos activos que referencian la categoría.
	CountActiveProducts(ctx context.Context, categoryID string) (int, error)
}
