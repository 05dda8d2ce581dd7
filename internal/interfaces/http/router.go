package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/finance-dashboard/internal/application/analytics"
	"github.com/jhoicas/finance-dashboard/internal/infrastructure/chart"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	DashboardUC *analytics.DashboardUseCase
	Charts      *chart.SVGRenderer
}

// Router registra las rutas de la página y de la API.
func Router(app *fiber.App, deps RouterDeps) {
	// Página HTML
	pageHandler := NewPageHandler(deps.DashboardUC, deps.Charts)
	app.Get("/", pageHandler.Dashboard)

	// Gráficos SVG sueltos
	chartHandler := NewChartHandler(deps.DashboardUC, deps.Charts)
	app.Get("/charts/:name", chartHandler.Get)

	// API JSON
	api := app.Group("/api")
	dashboard := api.Group("/dashboard")
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	dashboard.Get("/", dashboardHandler.Get)
	dashboard.Post("/render", dashboardHandler.Render)
	dashboard.Get("/customers", dashboardHandler.Customers)
}
