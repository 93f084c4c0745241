package usecase

import (
	"context"
	"time"

	"github.com/jhoicas/inventario-admin/internal/application/auth"
	"github.com/jhoicas/inventario-admin/internal/application/dto"
	"github.com/jhoicas/inventario-admin/internal/domain"
	"github.com/jhoicas/inventario-admin/internal/domain/entity"
	"github.com/jhoicas/inventario-admin/internal/domain/repository"
)

// UserUseCase gestión de usuarios (rutas solo-admin). Los usuarios nunca se
// eliminan físicamente: la baja es IsActive=false.
type UserUseCase struct {
	repo repository.UserRepository
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(repo repository.UserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

// List lista usuarios con paginación (más nuevos primero).
func (uc *UserUseCase) List(ctx context.Context, page dto.PageRequest) (*dto.UserListResponse, error) {
	page.Normalize(20, 100)
	list, total, err := uc.repo.List(ctx, page.Limit, page.Offset())
	if err != nil {
		return nil, err
	}
	users := make([]dto.UserResponse, 0, len(list))
	for _, u := range list {
		users = append(users, *auth.ToUserResponse(u))
	}
	return &dto.UserListResponse{
		Users:      users,
		Pagination: dto.NewPagination(page.Page, page.Limit, total),
	}, nil
}

// UpdateRole cambia el rol de otro usuario. Un admin no puede cambiar su
// propio rol (el rol es inmutable para uno mismo).
func (uc *UserUseCase) UpdateRole(ctx context.Context, callerID, targetID, role string) (*dto.UserResponse, error) {
	if !entity.ValidRole(role) {
		return nil, domain.ErrInvalidInput
	}
	if callerID == targetID {
		return nil, domain.ErrForbidden
	}
	user, err := uc.repo.GetByID(ctx, targetID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	user.Role = role
	user.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, user); err != nil {
		return nil, err
	}
	return auth.ToUserResponse(user), nil
}

// UpdateStatus activa o desactiva una cuenta. Un admin no puede desactivarse
// a sí mismo.
func (uc *UserUseCase) UpdateStatus(ctx context.Context, callerID, targetID string, isActive bool) (*dto.UserResponse, error) {
	if callerID == targetID {
		return nil, domain.ErrForbidden
	}
	user, err := uc.repo.GetByID(ctx, targetID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	user.IsActive = isActive
	user.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, user); err != nil {
		return nil, err
	}
	return auth.ToUserResponse(user), nil
}
