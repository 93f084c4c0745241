// Package auth contiene los casos de uso de autenticación: registro, login,
// refresh y perfil.
package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/inventario-admin/internal/application/dto"
	"github.com/jhoicas/inventario-admin/internal/domain"
	"github.com/jhoicas/inventario-admin/internal/domain/entity"
	"github.com/jhoicas/inventario-admin/internal/domain/repository"
	"github.com/jhoicas/inventario-admin/pkg/config"
	pkgjwt "github.com/jhoicas/inventario-admin/pkg/jwt"
)

// bcryptCost costo de hashing de contraseñas.
const bcryptCost = 12

// AuthUseCase casos de uso de autenticación.
type AuthUseCase struct {
	userRepo    repository.UserRepository
	productRepo repository.ProductRepository // solo para products_created en el perfil
	jwtCfg      config.JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, productRepo repository.ProductRepository, jwtCfg config.JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, productRepo: productRepo, jwtCfg: jwtCfg}
}

// Register crea un usuario con rol "user": hashea la contraseña con bcrypt,
// persiste y emite el par de tokens. Devuelve ErrEmailAlreadyExists si el
// username o el email ya están registrados.
func (uc *AuthUseCase) Register(ctx context.Context, in dto.RegisterRequest) (*dto.AuthResponse, error) {
	existing, err := uc.userRepo.GetByUsernameOrEmail(ctx, in.Username, in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcryptCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: string(hash),
		Role:         entity.RoleUser,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	tokens, err := pkgjwt.GeneratePair(uc.jwtCfg, user.ID, user.Email, user.Role)
	if err != nil {
		return nil, err
	}
	return &dto.AuthResponse{
		User:   *ToUserResponse(user),
		Tokens: dto.TokensResponse{AccessToken: tokens.AccessToken, RefreshToken: tokens.RefreshToken},
	}, nil
}

// Login verifica email/password y emite un par de tokens NUEVO en cada llamada.
// Cuenta inactiva o credenciales malas → ErrUserInactive / ErrUnauthorized (ambos 401).
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := uc.userRepo.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if !user.IsActive {
		return nil, domain.ErrUserInactive
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	tokens, err := pkgjwt.GeneratePair(uc.jwtCfg, user.ID, user.Email, user.Role)
	if err != nil {
		return nil, err
	}
	return &dto.AuthResponse{
		User:   *ToUserResponse(user),
		Tokens: dto.TokensResponse{AccessToken: tokens.AccessToken, RefreshToken: tokens.RefreshToken},
	}, nil
}

// Refresh valida el refresh token, re-verifica que el usuario siga activo y
// emite un access token nuevo. Cualquier fallo → ErrUnauthorized.
func (uc *AuthUseCase) Refresh(ctx context.Context, refreshToken string) (*dto.RefreshResponse, error) {
	claims, err := pkgjwt.ParseRefresh(uc.jwtCfg, refreshToken)
	if err != nil {
		return nil, domain.ErrUnauthorized
	}
	user, err := uc.userRepo.GetByID(ctx, claims.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil || !user.IsActive {
		return nil, domain.ErrUnauthorized
	}
	access, err := pkgjwt.GenerateAccess(uc.jwtCfg, user.ID, user.Email, user.Role)
	if err != nil {
		return nil, err
	}
	return &dto.RefreshResponse{AccessToken: access}, nil
}

// Profile devuelve el usuario con el conteo de productos que ha creado.
func (uc *AuthUseCase) Profile(ctx context.Context, userID string) (*dto.UserResponse, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	count, err := uc.productRepo.CountByCreator(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := ToUserResponse(user)
	out.ProductsCreated = &count
	return out, nil
}

// ToUserResponse mapea la entidad al DTO de salida (sin el hash).
func ToUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		Role:      u.Role,
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
