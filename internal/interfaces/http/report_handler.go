package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-admin/internal/application/dto"
	"github.com/jhoicas/inventario-admin/internal/application/reports"
	"github.com/jhoicas/inventario-admin/pkg/logger"
)

// ReportHandler reportes y agregados de solo lectura (protegido).
type ReportHandler struct {
	uc  *reports.ReportUseCase
	log *logger.Logger
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *reports.ReportUseCase, log *logger.Logger) *ReportHandler {
	return &ReportHandler{uc: uc, log: log}
}

// Dashboard godoc
// @Summary      Dashboard con totales, stock bajo y distribución
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.Response
// @Router       /api/v1/reports/dashboard [get]
func (h *ReportHandler) Dashboard(c *fiber.Ctx) error {
	out, err := h.uc.Dashboard(c.Context())
	if err != nil {
		return handleError(c, h.log, err, errText{})
	}
	return respondOK(c, "", out)
}

// Inventory godoc
// @Summary      Reporte completo de inventario
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        category_id   query  string  false  "Filtrar por categoría"
// @Param        stock_status  query  string  false  "LOW | MEDIUM | HIGH"
// @Success      200  {object}  dto.Response
// @Router       /api/v1/reports/inventory [get]
func (h *ReportHandler) Inventory(c *fiber.Ctx) error {
	out, err := h.uc.Inventory(c.Context(), c.Query("category_id"), c.Query("stock_status"))
	if err != nil {
		return handleError(c, h.log, err, errText{})
	}
	return respondOK(c, "", out)
}

// Movements godoc
// @Summary      Historial paginado de movimientos
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        product_id     query  string  false  "Filtrar por producto"
// @Param        movement_type  query  string  false  "CREATE | UPDATE | DELETE | STOCK_IN | STOCK_OUT"
// @Param        page           query  int     false  "Página"  default(1)
// @Param        limit          query  int     false  "Tamaño de página (máx 200)"  default(50)
// @Success      200  {object}  dto.Response
// @Router       /api/v1/reports/movements [get]
func (h *ReportHandler) Movements(c *fiber.Ctx) error {
	var in dto.MovementListRequest
	if err := c.QueryParser(&in); err != nil {
		return respondError(c, fiber.StatusBadRequest, "Parámetros de consulta inválidos")
	}
	out, err := h.uc.Movements(c.Context(), in)
	if err != nil {
		return handleError(c, h.log, err, errText{})
	}
	return respondOK(c, "", out)
}

// Stats godoc
// @Summary      Estadísticas rápidas del inventario
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.Response
// @Router       /api/v1/reports/stats [get]
func (h *ReportHandler) Stats(c *fiber.Ctx) error {
	out, err := h.uc.QuickStats(c.Context())
	if err != nil {
		return handleError(c, h.log, err, errText{})
	}
	return respondOK(c, "", out)
}
