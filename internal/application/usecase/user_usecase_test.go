package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-admin/internal/application/dto"
	"github.com/jhoicas/inventario-admin/internal/application/usecase"
	"github.com/jhoicas/inventario-admin/internal/domain"
	"github.com/jhoicas/inventario-admin/internal/domain/entity"
)

func seedUser(t *testing.T, repo *fakeUserRepo, id, role string) {
	t.Helper()
	now := time.Now()
	require.NoError(t, repo.Create(context.Background(), &entity.User{
		ID: id, Username: "u-" + id, Email: id + "@example.com",
		Role: role, IsActive: true, CreatedAt: now, UpdatedAt: now,
	}))
}

func TestUserUpdateRole_AdminCambiaOtroUsuario(t *testing.T) {
	repo := newFakeUserRepo()
	uc := usecase.NewUserUseCase(repo)
	seedUser(t, repo, "admin-1", entity.RoleAdmin)
	seedUser(t, repo, "user-1", entity.RoleUser)

	out, err := uc.UpdateRole(context.Background(), "admin-1", "user-1", entity.RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, out.Role)
}

// El rol propio es inmutable, incluso para un admin.
func TestUserUpdateRole_PropioRolProhibido(t *testing.T) {
	repo := newFakeUserRepo()
	uc := usecase.NewUserUseCase(repo)
	seedUser(t, repo, "admin-1", entity.RoleAdmin)

	_, err := uc.UpdateRole(context.Background(), "admin-1", "admin-1", entity.RoleUser)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestUserUpdateRole_RolInvalido(t *testing.T) {
	repo := newFakeUserRepo()
	uc := usecase.NewUserUseCase(repo)
	seedUser(t, repo, "admin-1", entity.RoleAdmin)
	seedUser(t, repo, "user-1", entity.RoleUser)

	_, err := uc.UpdateRole(context.Background(), "admin-1", "user-1", "superadmin")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUserUpdateStatus_DesactivarOtro(t *testing.T) {
	repo := newFakeUserRepo()
	uc := usecase.NewUserUseCase(repo)
	seedUser(t, repo, "admin-1", entity.RoleAdmin)
	seedUser(t, repo, "user-1", entity.RoleUser)

	out, err := uc.UpdateStatus(context.Background(), "admin-1", "user-1", false)
	require.NoError(t, err)
	assert.False(t, out.IsActive)
}

// Un admin no puede desactivarse a sí mismo.
func TestUserUpdateStatus_AutoDesactivacionProhibida(t *testing.T) {
	repo := newFakeUserRepo()
	uc := usecase.NewUserUseCase(repo)
	seedUser(t, repo, "admin-1", entity.RoleAdmin)

	_, err := uc.UpdateStatus(context.Background(), "admin-1", "admin-1", false)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestUserList_Paginado(t *testing.T) {
	repo := newFakeUserRepo()
	uc := usecase.NewUserUseCase(repo)
	for i := 0; i < 5; i++ {
		seedUser(t, repo, string(rune('a'+i)), entity.RoleUser)
	}

	out, err := uc.List(context.Background(), dto.PageRequest{Page: 1, Limit: 3})
	require.NoError(t, err)
	assert.Len(t, out.Users, 3)
	assert.Equal(t, 5, out.Pagination.TotalItems)
	assert.Equal(t, 2, out.Pagination.TotalPages)
	assert.True(t, out.Pagination.HasNext)
}
