package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/seller-service/internal/api/http/handlers"
	"github.com/spec-kit/seller-service/internal/auth"
	apperrors "github.com/spec-kit/seller-service/pkg/util/errorutil"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Sellers        *handlers.SellersHandler
	Departments    *handlers.DepartmentsHandler
	AuthMiddleware *auth.AuthMiddleware
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)
	app.Get("/metrics", cfg.Health.Metrics)

	sellers := app.Group("/sellers", cfg.AuthMiddleware.Handle)
	sellers.Get("/", auth.RequireReader(), cfg.Sellers.List)
	sellers.Get("/:id", auth.RequireReader(), cfg.Sellers.Get)
	sellers.Post("/", auth.RequireAdmin(), cfg.Sellers.Create)
	sellers.Put("/:id", auth.RequireAdmin(), cfg.Sellers.Update)
	sellers.Delete("/:id", auth.RequireAdmin(), cfg.Sellers.Delete)

	departments := app.Group("/departments", cfg.AuthMiddleware.Handle)
	departments.Get("/", auth.RequireReader(), cfg.Departments.List)
	departments.Get("/:id", auth.RequireReader(), cfg.Departments.Get)
	departments.Get("/:id/sellers", auth.RequireReader(), cfg.Departments.Sellers)
	departments.Post("/", auth.RequireAdmin(), cfg.Departments.Create)
	departments.Put("/:id", auth.RequireAdmin(), cfg.Departments.Update)
	departments.Delete("/:id", auth.RequireAdmin(), cfg.Departments.Delete)

	app.Use(func(c *fiber.Ctx) error {
		return apperrors.NewNotFound("route", map[string]any{"path": c.Path()})
	})
}
