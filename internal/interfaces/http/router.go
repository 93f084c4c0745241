package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-admin/internal/application/auth"
	"github.com/jhoicas/inventario-admin/internal/application/reports"
	"github.com/jhoicas/inventario-admin/internal/application/usecase"
	"github.com/jhoicas/inventario-admin/internal/domain/entity"
	"github.com/jhoicas/inventario-admin/pkg/config"
	"github.com/jhoicas/inventario-admin/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC     *auth.AuthUseCase
	UserUC     *usecase.UserUseCase
	CategoryUC *usecase.CategoryUseCase
	ProductUC  *usecase.ProductUseCase
	ReportUC   *reports.ReportUseCase
	UserFinder userFinder
	JWTConfig  config.JWTConfig
	Log        *logger.Logger
}

// Router registra las rutas de la API bajo /api/v1.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", healthHandler)

	api := app.Group("/api/v1")
	api.Get("/health", healthHandler)

	requireAuth := AuthMiddleware(deps.JWTConfig, deps.UserFinder)

	// Auth
	authHandler := NewAuthHandler(deps.AuthUC, deps.Log)
	authGroup := api.Group("/auth")
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/refresh", authHandler.Refresh)
	authGroup.Get("/profile", requireAuth, authHandler.Profile)
	authGroup.Get("/verify-token", requireAuth, authHandler.VerifyToken)
	authGroup.Post("/logout", requireAuth, authHandler.Logout)

	// Users (solo admin)
	userHandler := NewUserHandler(deps.UserUC, deps.Log)
	users := api.Group("/users", requireAuth, RequireRole(entity.RoleAdmin))
	users.Get("/", userHandler.List)
	users.Put("/:id/role", userHandler.UpdateRole)
	users.Put("/:id/status", userHandler.UpdateStatus)

	// Categories (protegido)
	categoryHandler := NewCategoryHandler(deps.CategoryUC, deps.Log)
	categories := api.Group("/categories", requireAuth)
	categories.Get("/", categoryHandler.List)
	categories.Get("/:id", categoryHandler.GetByID)
	categories.Post("/", categoryHandler.Create)
	categories.Put("/:id", categoryHandler.Update)
	categories.Delete("/:id", categoryHandler.Delete)

	// Products (protegido)
	productHandler := NewProductHandler(deps.ProductUC, deps.Log)
	products := api.Group("/products", requireAuth)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Post("/", productHandler.Create)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	// Reports (protegido, solo lectura)
	reportHandler := NewReportHandler(deps.ReportUC, deps.Log)
	reportsGroup := api.Group("/reports", requireAuth)
	reportsGroup.Get("/dashboard", reportHandler.Dashboard)
	reportsGroup.Get("/inventory", reportHandler.Inventory)
	reportsGroup.Get("/movements", reportHandler.Movements)
	reportsGroup.Get("/stats", reportHandler.Stats)

	// Catch-all 404 con pista de endpoints disponibles.
	app.Use(notFoundHandler)
}

func healthHandler(c *fiber.Ctx) error {
	return respondOK(c, "API funcionando correctamente", fiber.Map{
		"timestamp": time.Now().UTC(),
	})
}

func notFoundHandler(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
		"success": false,
		"message": "Endpoint no encontrado",
		"available_endpoints": []string{
			"/api/v1/auth",
			"/api/v1/users",
			"/api/v1/categories",
			"/api/v1/products",
			"/api/v1/reports",
			"/health",
		},
	})
}
