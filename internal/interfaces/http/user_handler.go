package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-admin/internal/application/dto"
	"github.com/jhoicas/inventario-admin/internal/application/usecase"
	"github.com/jhoicas/inventario-admin/pkg/logger"
)

// UserHandler administración de usuarios (solo admin).
type UserHandler struct {
	uc  *usecase.UserUseCase
	log *logger.Logger
}

// NewUserHandler construye el handler.
func NewUserHandler(uc *usecase.UserUseCase, log *logger.Logger) *UserHandler {
	return &UserHandler{uc: uc, log: log}
}

// List godoc
// @Summary      Listar usuarios
// @Tags         users
// @Security     Bearer
// @Produce      json
// @Param        page   query  int  false  "Página"  default(1)
// @Param        limit  query  int  false  "Tamaño de página"  default(20)
// @Success      200  {object}  dto.Response
// @Failure      403  {object}  dto.Response
// @Router       /api/v1/users [get]
func (h *UserHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return respondError(c, fiber.StatusBadRequest, "Parámetros de consulta inválidos")
	}
	out, err := h.uc.List(c.Context(), page)
	if err != nil {
		return handleError(c, h.log, err, errText{})
	}
	return respondOK(c, "", out)
}

// UpdateRole godoc
// @Summary      Cambiar rol de un usuario
// @Tags         users
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del usuario"
// @Param        body  body  dto.UpdateUserRoleRequest  true  "Nuevo rol"
// @Success      200   {object}  dto.Response
// @Failure      403   {object}  dto.Response
// @Failure      404   {object}  dto.Response
// @Router       /api/v1/users/{id}/role [put]
func (h *UserHandler) UpdateRole(c *fiber.Ctx) error {
	var in dto.UpdateUserRoleRequest
	if err := c.BodyParser(&in); err != nil {
		return respondError(c, fiber.StatusBadRequest, "Cuerpo de la petición inválido")
	}
	if fieldErrors := validateStruct(in); fieldErrors != nil {
		return respondValidation(c, fieldErrors)
	}
	out, err := h.uc.UpdateRole(c.Context(), UserID(c), c.Params("id"), in.Role)
	if err != nil {
		return handleError(c, h.log, err, errText{NotFound: "Usuario no encontrado"})
	}
	return respondOK(c, "Rol actualizado exitosamente", fiber.Map{"user": out})
}

// UpdateStatus godoc
// @Summary      Activar o desactivar un usuario
// @Tags         users
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del usuario"
// @Param        body  body  dto.UpdateUserStatusRequest  true  "Nuevo estado"
// @Success      200   {object}  dto.Response
// @Failure      403   {object}  dto.Response
// @Failure      404   {object}  dto.Response
// @Router       /api/v1/users/{id}/status [put]
func (h *UserHandler) UpdateStatus(c *fiber.Ctx) error {
	var in dto.UpdateUserStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return respondError(c, fiber.StatusBadRequest, "Cuerpo de la petición inválido")
	}
	if fieldErrors := validateStruct(in); fieldErrors != nil {
		return respondValidation(c, fieldErrors)
	}
	out, err := h.uc.UpdateStatus(c.Context(), UserID(c), c.Params("id"), *in.IsActive)
	if err != nil {
		return handleError(c, h.log, err, errText{NotFound: "Usuario no encontrado"})
	}
	return respondOK(c, "Estado del usuario actualizado exitosamente", fiber.Map{"user": out})
}
