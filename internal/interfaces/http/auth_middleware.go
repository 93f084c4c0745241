package http

import (
	"context"
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-admin/internal/application/dto"
	"github.com/jhoicas/inventario-admin/internal/domain/entity"
	"github.com/jhoicas/inventario-admin/pkg/config"
	"github.com/jhoicas/inventario-admin/pkg/jwt"
)

// Locals keys que el middleware de auth deja en el contexto Fiber.
const (
	LocalUserID = "user_id"
	LocalEmail  = "email"
	LocalRole   = "role"
	LocalUser   = "user"
)

// userFinder es lo único que el middleware necesita del repositorio de usuarios.
type userFinder interface {
	GetByID(ctx context.Context, id string) (*entity.User, error)
}

// AuthMiddleware valida el Bearer token de acceso, verifica que el usuario
// siga existiendo y activo, y deja la identidad en c.Locals. Las cuatro
// fallas se distinguen por mensaje: sin token, inválido, expirado, usuario
// no encontrado o inactivo.
func AuthMiddleware(jwtCfg config.JWTConfig, users userFinder) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return respondError(c, fiber.StatusUnauthorized, "Token de acceso requerido")
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
			return respondError(c, fiber.StatusUnauthorized, "Token de acceso requerido")
		}

		claims, err := jwt.ParseAccess(jwtCfg, strings.TrimSpace(parts[1]))
		if err != nil {
			if errors.Is(err, jwt.ErrTokenExpired) {
				return respondError(c, fiber.StatusUnauthorized, "Token expirado")
			}
			return respondError(c, fiber.StatusUnauthorized, "Token inválido")
		}

		user, err := users.GetByID(c.Context(), claims.UserID)
		if err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(dto.Response{
				Success: false, Message: "Servicio de base de datos no disponible",
			})
		}
		if user == nil || !user.IsActive {
			return respondError(c, fiber.StatusUnauthorized, "Usuario no encontrado o inactivo")
		}

		c.Locals(LocalUserID, user.ID)
		c.Locals(LocalEmail, user.Email)
		c.Locals(LocalRole, user.Role)
		c.Locals(LocalUser, user)
		return c.Next()
	}
}

// RequireRole exige que el rol autenticado esté en la lista (corre después de
// AuthMiddleware).
func RequireRole(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := UserRole(c)
		for _, r := range roles {
			if role == r {
				return c.Next()
			}
		}
		return respondError(c, fiber.StatusForbidden, "No tienes permisos para realizar esta acción")
	}
}

// UserID devuelve el ID autenticado (después del middleware de auth).
func UserID(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalUserID).(string)
	return s
}

// UserEmail devuelve el email autenticado.
func UserEmail(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalEmail).(string)
	return s
}

// UserRole devuelve el rol autenticado.
func UserRole(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalRole).(string)
	return s
}

// CurrentUser devuelve la entidad completa dejada por el middleware.
func CurrentUser(c *fiber.Ctx) *entity.User {
	u, _ := c.Locals(LocalUser).(*entity.User)
	return u
}
