package http

import (
	"bytes"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/finance-dashboard/internal/application/analytics"
	"github.com/jhoicas/finance-dashboard/internal/infrastructure/chart"
)

// ChartHandler sirve cada gráfico del dashboard como SVG independiente.
type ChartHandler struct {
	uc     *analytics.DashboardUseCase
	charts *chart.SVGRenderer
}

// NewChartHandler construye el handler.
func NewChartHandler(uc *analytics.DashboardUseCase, charts *chart.SVGRenderer) *ChartHandler {
	return &ChartHandler{uc: uc, charts: charts}
}

// Get GET /charts/:name.svg con la misma query que la página (customer, applied).
// name: invoice-by-month | cash-by-month | top-customers.
func (h *ChartHandler) Get(c *fiber.Ctx) error {
	name := strings.TrimSuffix(c.Params("name"), ".svg")
	if _, ok := lookupChart(name); !ok {
		return writeError(c, errUnknownChart)
	}

	view, err := h.uc.Render(c.Context(), dashboardRequestFromQuery(c))
	if err != nil {
		return writeError(c, err)
	}

	var buf bytes.Buffer
	if err := drawChart(h.charts, name, view, &buf); err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "image/svg+xml")
	return c.Send(buf.Bytes())
}
