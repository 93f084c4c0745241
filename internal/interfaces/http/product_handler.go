package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-admin/internal/application/dto"
	"github.com/jhoicas/inventario-admin/internal/application/usecase"
	"github.com/jhoicas/inventario-admin/pkg/logger"
)

// ProductHandler maneja las peticiones HTTP para Product (protegido).
type ProductHandler struct {
	uc  *usecase.ProductUseCase
	log *logger.Logger
}

// NewProductHandler construye el handler.
func NewProductHandler(uc *usecase.ProductUseCase, log *logger.Logger) *ProductHandler {
	return &ProductHandler{uc: uc, log: log}
}

func (h *ProductHandler) errText() errText {
	return errText{
		NotFound:  "Producto no encontrado",
		Duplicate: "El código de barras ya está registrado",
	}
}

// List godoc
// @Summary      Listar productos
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        search        query  string  false  "Búsqueda en nombre y descripción"
// @Param        category_id   query  string  false  "Filtrar por categoría"
// @Param        stock_status  query  string  false  "LOW | MEDIUM | HIGH"
// @Param        page          query  int     false  "Página"  default(1)
// @Param        limit         query  int     false  "Tamaño de página (máx 100)"  default(20)
// @Success      200  {object}  dto.Response
// @Router       /api/v1/products [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	var in dto.ProductListRequest
	if err := c.QueryParser(&in); err != nil {
		return respondError(c, fiber.StatusBadRequest, "Parámetros de consulta inválidos")
	}
	out, err := h.uc.List(c.Context(), in)
	if err != nil {
		return handleError(c, h.log, err, h.errText())
	}
	return respondOK(c, "", out)
}

// GetByID godoc
// @Summary      Obtener producto por ID
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del producto"
// @Success      200  {object}  dto.Response
// @Failure      404  {object}  dto.Response
// @Router       /api/v1/products/{id} [get]
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return handleError(c, h.log, err, h.errText())
	}
	return respondOK(c, "", fiber.Map{"product": out})
}

// Create godoc
// @Summary      Crear producto
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProductRequest  true  "Datos del producto"
// @Success      201   {object}  dto.Response
// @Failure      400   {object}  dto.Response
// @Failure      409   {object}  dto.Response
// @Router       /api/v1/products [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return respondError(c, fiber.StatusBadRequest, "Cuerpo de la petición inválido")
	}
	if fieldErrors := validateStruct(in); fieldErrors != nil {
		return respondValidation(c, fieldErrors)
	}
	out, err := h.uc.Create(c.Context(), UserID(c), in)
	if err != nil {
		return handleError(c, h.log, err, h.errText())
	}
	return respondCreated(c, "Producto creado exitosamente", fiber.Map{"product": out})
}

// Update godoc
// @Summary      Actualizar producto
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del producto"
// @Param        body  body  dto.UpdateProductRequest  true  "Registro completo del producto"
// @Success      200   {object}  dto.Response
// @Failure      403   {object}  dto.Response
// @Failure      404   {object}  dto.Response
// @Router       /api/v1/products/{id} [put]
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return respondError(c, fiber.StatusBadRequest, "Cuerpo de la petición inválido")
	}
	if fieldErrors := validateStruct(in); fieldErrors != nil {
		return respondValidation(c, fieldErrors)
	}
	out, err := h.uc.Update(c.Context(), UserID(c), UserRole(c), c.Params("id"), in)
	if err != nil {
		return handleError(c, h.log, err, h.errText())
	}
	return respondOK(c, "Producto actualizado exitosamente", fiber.Map{"product": out})
}

// Delete godoc
// @Summary      Eliminar producto (soft delete)
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del producto"
// @Success      200  {object}  dto.Response
// @Failure      403  {object}  dto.Response
// @Failure      404  {object}  dto.Response
// @Router       /api/v1/products/{id} [delete]
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), UserID(c), UserRole(c), c.Params("id")); err != nil {
		return handleError(c, h.log, err, h.errText())
	}
	return respondOK(c, "Producto eliminado exitosamente", nil)
}
