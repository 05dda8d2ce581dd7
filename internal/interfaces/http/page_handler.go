package http

import (
	"bytes"
	"html/template"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/finance-dashboard/internal/application/analytics"
	"github.com/jhoicas/finance-dashboard/internal/application/dto"
	"github.com/jhoicas/finance-dashboard/internal/infrastructure/chart"
	"github.com/jhoicas/finance-dashboard/pkg/money"
	"github.com/jhoicas/finance-dashboard/web"
)

var templateFuncs = template.FuncMap{
	"date":   func(t time.Time) string { return t.Format("2006-01-02") },
	"amount": func(d decimal.Decimal) string { return money.FormatAmount(d) },
	"selected": func(selected []string, customer string) bool {
		for _, s := range selected {
			if s == customer {
				return true
			}
		}
		return false
	},
}

var dashboardTemplate = template.Must(
	template.New("dashboard.html").Funcs(templateFuncs).ParseFS(web.TemplatesFS, "templates/dashboard.html"),
)

// pageData datos de la plantilla dashboard.html.
type pageData struct {
	View   *dto.DashboardViewDTO
	Charts []renderedChart
}

// PageHandler renderiza la página HTML del dashboard.
type PageHandler struct {
	uc     *analytics.DashboardUseCase
	charts *chart.SVGRenderer
}

// NewPageHandler construye el handler.
func NewPageHandler(uc *analytics.DashboardUseCase, charts *chart.SVGRenderer) *PageHandler {
	return &PageHandler{uc: uc, charts: charts}
}

// Dashboard GET / — título, selector, KPIs, tres gráficos y tabla de detalle.
// Cada petición ejecuta el pipeline completo con la selección de la query.
func (h *PageHandler) Dashboard(c *fiber.Ctx) error {
	view, err := h.uc.Render(c.Context(), dashboardRequestFromQuery(c))
	if err != nil {
		return writeError(c, err)
	}

	charts, err := renderDashboardCharts(h.charts, view)
	if err != nil {
		return writeError(c, err)
	}

	var buf bytes.Buffer
	if err := dashboardTemplate.Execute(&buf, pageData{View: view, Charts: charts}); err != nil {
		return writeError(c, err)
	}
	c.Type("html", "utf-8")
	return c.Send(buf.Bytes())
}
