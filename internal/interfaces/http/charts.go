package http

import (
	"bytes"
	"errors"
	"html/template"
	"io"

	"github.com/jhoicas/finance-dashboard/internal/application/dto"
	"github.com/jhoicas/finance-dashboard/internal/infrastructure/chart"
)

// Nombres de gráfico usados en /charts/:name.svg y en los ids del HTML.
const (
	ChartInvoiceByMonth = "invoice-by-month"
	ChartCashByMonth    = "cash-by-month"
	ChartTopCustomers   = "top-customers"
)

var errUnknownChart = errors.New("gráfico desconocido")

// chartSpec título dentro del SVG y encabezado de sección en la página.
type chartSpec struct {
	Name    string
	Title   string
	Heading string
}

// dashboardCharts orden fijo de presentación.
var dashboardCharts = []chartSpec{
	{Name: ChartInvoiceByMonth, Title: "Monthly Invoice Amount", Heading: "Invoice Amount Over Time"},
	{Name: ChartCashByMonth, Title: "Monthly Cash Payments", Heading: "Cash Payments Over Time"},
	{Name: ChartTopCustomers, Title: "Top Customers", Heading: "Top 5 Customers by Invoice Amount"},
}

func lookupChart(name string) (chartSpec, bool) {
	for _, spec := range dashboardCharts {
		if spec.Name == name {
			return spec, true
		}
	}
	return chartSpec{}, false
}

// drawChart escribe el SVG del gráfico indicado; sin datos escribe el placeholder.
func drawChart(r *chart.SVGRenderer, name string, view *dto.DashboardViewDTO, w io.Writer) error {
	spec, ok := lookupChart(name)
	if !ok {
		return errUnknownChart
	}

	var err error
	switch spec.Name {
	case ChartInvoiceByMonth:
		err = r.Line(w, spec.Title, timePoints(view.InvoiceByMonth))
	case ChartCashByMonth:
		err = r.Bar(w, spec.Title, monthSlices(view.CashByMonth))
	case ChartTopCustomers:
		err = r.Pie(w, spec.Title, customerSlices(view.TopCustomers))
	}
	if errors.Is(err, chart.ErrNoData) {
		return r.Placeholder(w, spec.Title)
	}
	return err
}

// renderedChart gráfico listo para incrustar en la plantilla.
type renderedChart struct {
	chartSpec
	SVG template.HTML
}

// renderDashboardCharts dibuja los tres gráficos en orden.
func renderDashboardCharts(r *chart.SVGRenderer, view *dto.DashboardViewDTO) ([]renderedChart, error) {
	out := make([]renderedChart, 0, len(dashboardCharts))
	for _, spec := range dashboardCharts {
		var buf bytes.Buffer
		if err := drawChart(r, spec.Name, view, &buf); err != nil {
			return nil, err
		}
		// El SVG lo genera go-chart a partir de etiquetas conocidas (meses y clientes).
		out = append(out, renderedChart{chartSpec: spec, SVG: template.HTML(buf.String())})
	}
	return out, nil
}

func timePoints(in []dto.MonthAmountDTO) []chart.TimePoint {
	out := make([]chart.TimePoint, 0, len(in))
	for _, m := range in {
		out = append(out, chart.TimePoint{Time: m.Date, Value: m.Amount.InexactFloat64()})
	}
	return out
}

func monthSlices(in []dto.MonthAmountDTO) []chart.Slice {
	out := make([]chart.Slice, 0, len(in))
	for _, m := range in {
		out = append(out, chart.Slice{Label: m.Date.Format("2006-01"), Value: m.Amount.InexactFloat64()})
	}
	return out
}

func customerSlices(in []dto.CustomerAmountDTO) []chart.Slice {
	out := make([]chart.Slice, 0, len(in))
	for _, c := range in {
		out = append(out, chart.Slice{Label: c.Customer, Value: c.Amount.InexactFloat64()})
	}
	return out
}
