package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-admin/internal/application/auth"
	"github.com/jhoicas/inventario-admin/internal/application/dto"
	"github.com/jhoicas/inventario-admin/pkg/logger"
)

// AuthHandler maneja registro, login y sesión.
type AuthHandler struct {
	uc  *auth.AuthUseCase
	log *logger.Logger
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase, log *logger.Logger) *AuthHandler {
	return &AuthHandler{uc: uc, log: log}
}

// Register godoc
// @Summary      Registrar usuario
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterRequest  true  "username, email, password"
// @Success      201   {object}  dto.Response
// @Failure      400   {object}  dto.Response
// @Failure      409   {object}  dto.Response
// @Router       /api/v1/auth/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterRequest
	if err := c.BodyParser(&in); err != nil {
		return respondError(c, fiber.StatusBadRequest, "Cuerpo de la petición inválido")
	}
	if fieldErrors := validateStruct(in); fieldErrors != nil {
		return respondValidation(c, fieldErrors)
	}
	out, err := h.uc.Register(c.Context(), in)
	if err != nil {
		return handleError(c, h.log, err, errText{Duplicate: "El usuario o email ya están registrados"})
	}
	return respondCreated(c, "Usuario registrado exitosamente", out)
}

// Login godoc
// @Summary      Iniciar sesión
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "email, password"
// @Success      200   {object}  dto.Response
// @Failure      401   {object}  dto.Response
// @Router       /api/v1/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return respondError(c, fiber.StatusBadRequest, "Cuerpo de la petición inválido")
	}
	if fieldErrors := validateStruct(in); fieldErrors != nil {
		return respondValidation(c, fieldErrors)
	}
	out, err := h.uc.Login(c.Context(), in)
	if err != nil {
		return handleError(c, h.log, err, errText{})
	}
	return respondOK(c, "Inicio de sesión exitoso", out)
}

// Refresh godoc
// @Summary      Renovar access token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RefreshRequest  true  "refresh_token"
// @Success      200   {object}  dto.Response
// @Failure      401   {object}  dto.Response
// @Router       /api/v1/auth/refresh [post]
func (h *AuthHandler) Refresh(c *fiber.Ctx) error {
	var in dto.RefreshRequest
	if err := c.BodyParser(&in); err != nil {
		return respondError(c, fiber.StatusBadRequest, "Cuerpo de la petición inválido")
	}
	if fieldErrors := validateStruct(in); fieldErrors != nil {
		return respondValidation(c, fieldErrors)
	}
	out, err := h.uc.Refresh(c.Context(), in.RefreshToken)
	if err != nil {
		return handleError(c, h.log, err, errText{})
	}
	return respondOK(c, "Token renovado exitosamente", out)
}

// Profile godoc
// @Summary      Perfil del usuario autenticado
// @Tags         auth
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.Response
// @Failure      401  {object}  dto.Response
// @Router       /api/v1/auth/profile [get]
func (h *AuthHandler) Profile(c *fiber.Ctx) error {
	out, err := h.uc.Profile(c.Context(), UserID(c))
	if err != nil {
		return handleError(c, h.log, err, errText{NotFound: "Usuario no encontrado"})
	}
	return respondOK(c, "", fiber.Map{"user": out})
}

// VerifyToken godoc
// @Summary      Verificar validez del token
// @Tags         auth
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.Response
// @Failure      401  {object}  dto.Response
// @Router       /api/v1/auth/verify-token [get]
func (h *AuthHandler) VerifyToken(c *fiber.Ctx) error {
	// Si llegó hasta acá el middleware ya validó todo.
	user := auth.ToUserResponse(CurrentUser(c))
	return respondOK(c, "Token válido", fiber.Map{"user": user})
}

// Logout godoc
// @Summary      Cerrar sesión
// @Tags         auth
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.Response
// @Router       /api/v1/auth/logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	// Stateless: el cliente descarta sus tokens; no hay estado que invalidar.
	return respondOK(c, "Sesión cerrada exitosamente", nil)
}
