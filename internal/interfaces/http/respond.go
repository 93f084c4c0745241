package http

import (
	"errors"
	"syscall"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-admin/internal/application/dto"
	"github.com/jhoicas/inventario-admin/internal/domain"
	"github.com/jhoicas/inventario-admin/pkg/logger"
)

// respondOK 200 con mensaje y data opcionales.
func respondOK(c *fiber.Ctx, message string, data any) error {
	return c.JSON(dto.Response{Success: true, Message: message, Data: data})
}

// respondCreated 201 con mensaje y data.
func respondCreated(c *fiber.Ctx, message string, data any) error {
	return c.Status(fiber.StatusCreated).JSON(dto.Response{Success: true, Message: message, Data: data})
}

// respondError fallo con un único mensaje.
func respondError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(dto.Response{Success: false, Message: message})
}

// respondValidation 400 con el detalle por campo.
func respondValidation(c *fiber.Ctx, fieldErrors []dto.FieldError) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.Response{
		Success: false,
		Message: "Datos de entrada inválidos",
		Errors:  fieldErrors,
	})
}

// errText mensajes específicos del recurso para los fallos más comunes.
type errText struct {
	NotFound  string
	Duplicate string
}

// handleError traduce errores de dominio al código HTTP y mensaje del sobre.
// El detalle de errores inesperados solo se loguea, nunca se expone.
func handleError(c *fiber.Ctx, log *logger.Logger, err error, txt errText) error {
	if txt.NotFound == "" {
		txt.NotFound = "Recurso no encontrado"
	}
	if txt.Duplicate == "" {
		txt.Duplicate = "El recurso ya existe"
	}

	var inUse *domain.CategoryInUseError
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return respondError(c, fiber.StatusNotFound, txt.NotFound)
	case errors.Is(err, domain.ErrUserNotFound):
		return respondError(c, fiber.StatusNotFound, "Usuario no encontrado")
	case errors.Is(err, domain.ErrDuplicate), errors.Is(err, domain.ErrEmailAlreadyExists):
		return respondError(c, fiber.StatusConflict, txt.Duplicate)
	case errors.Is(err, domain.ErrCategoryNotFound):
		return respondError(c, fiber.StatusBadRequest, "La categoría seleccionada no existe")
	case errors.As(err, &inUse):
		return respondError(c, fiber.StatusBadRequest, inUse.Error())
	case errors.Is(err, domain.ErrInvalidInput):
		return respondError(c, fiber.StatusBadRequest, "Datos de entrada inválidos")
	case errors.Is(err, domain.ErrUserInactive):
		return respondError(c, fiber.StatusUnauthorized, "Cuenta desactivada. Contacta al administrador")
	case errors.Is(err, domain.ErrUnauthorized):
		return respondError(c, fiber.StatusUnauthorized, "Credenciales inválidas")
	case errors.Is(err, domain.ErrForbidden):
		return respondError(c, fiber.StatusForbidden, "No tienes permisos para realizar esta acción")
	case errors.Is(err, domain.ErrDBUnavailable), errors.Is(err, syscall.ECONNREFUSED):
		return respondError(c, fiber.StatusServiceUnavailable, "Servicio de base de datos no disponible")
	}

	log.Error().Err(err).Str("path", c.Path()).Msg("error interno")
	return respondError(c, fiber.StatusInternalServerError, "Error interno del servidor")
}
